package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filedesk/internal/models"
	"github.com/dmitrijs2005/filedesk/internal/tree"
)

var (
	ErrUsage      = errors.New("wrong number of arguments")
	ErrNoSuchItem = errors.New("no such item")
)

func (a *App) List(ctx context.Context, _ []string) error {
	items, err := a.items.List(ctx, a.cwd)
	if err != nil {
		return err
	}
	a.printItems(ctx, items)
	return nil
}

// ChangeDir accepts a child folder name, ".." or "/".
func (a *App) ChangeDir(ctx context.Context, args []string) error {
	target, err := a.resolveFolder(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.cwd = target
	return nil
}

func (a *App) PrintDir(ctx context.Context) error {
	p, err := a.items.Breadcrumb(ctx, a.cwd)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, formatPath(p))
	return nil
}

func (a *App) MakeDir(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: mkdir <name>", ErrUsage)
	}
	_, err := a.items.CreateFolder(ctx, a.cwd, strings.Join(args, " "))
	return err
}

func (a *App) Touch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: touch <name>", ErrUsage)
	}
	_, err := a.items.CreateFile(ctx, a.cwd, strings.Join(args, " "), "")
	return err
}

func (a *App) Cat(ctx context.Context, args []string) error {
	item, err := a.child(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if item.IsFolder() {
		return fmt.Errorf("%s is a folder", item.Name)
	}
	fmt.Fprintln(a.out, item.Text())
	return nil
}

// Edit replaces the content of a file with the lines that follow, up to an
// empty line.
func (a *App) Edit(ctx context.Context, args []string) error {
	item, err := a.child(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if item.IsFolder() {
		return fmt.Errorf("%s is a folder", item.Name)
	}
	if a.prompt {
		fmt.Fprintln(a.out, "Enter content (empty line to finish)")
	}
	_, err = a.items.SaveContent(ctx, item.ID, readMultiline(a.reader))
	return err
}

func (a *App) Rename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: mv <name> <new name>", ErrUsage)
	}
	item, err := a.child(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = a.items.Rename(ctx, item.ID, strings.Join(args[1:], " "))
	return err
}

func (a *App) Move(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: move <name> <folder>|..|/", ErrUsage)
	}
	item, err := a.child(ctx, args[0])
	if err != nil {
		return err
	}
	dest, err := a.resolveFolder(ctx, args[1])
	if err != nil {
		return err
	}
	_, err = a.items.Move(ctx, item.ID, dest)
	return err
}

func (a *App) Remove(ctx context.Context, args []string) error {
	item, err := a.child(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return a.items.Delete(ctx, item.ID)
}

func (a *App) Find(ctx context.Context, args []string) error {
	items, err := a.items.Search(ctx, a.cwd, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printItems(ctx, items)
	return nil
}

func (a *App) Sync(ctx context.Context) error {
	if a.flusher == nil {
		return errors.New("sync is not configured")
	}
	n, err := a.flusher.Flush(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d item(s) synced\n", n)
	return nil
}

// child finds an item of the current folder by name.
func (a *App) child(ctx context.Context, name string) (*models.Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrUsage)
	}
	items, err := a.items.List(ctx, a.cwd)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Name == name {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSuchItem, name)
}

func (a *App) resolveFolder(ctx context.Context, name string) (string, error) {
	switch name {
	case "", "/":
		return models.RootID, nil
	case ".":
		return a.cwd, nil
	case "..":
		cur, err := a.items.Get(ctx, a.cwd)
		if err != nil {
			return "", err
		}
		if cur.IsRoot() {
			return models.RootID, nil
		}
		return cur.ParentID, nil
	}

	item, err := a.child(ctx, name)
	if err != nil {
		return "", err
	}
	if !item.IsFolder() {
		return "", fmt.Errorf("%s is not a folder", name)
	}
	return item.ID, nil
}

// printItems shows one line per item. Folders show their child count, files
// their modification date.
func (a *App) printItems(ctx context.Context, items []models.Item) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "(empty)")
		return
	}
	for i := range items {
		it := &items[i]
		meta := it.Metadata
		if it.IsFolder() {
			meta = a.folderMeta(ctx, it)
		}
		mark := ""
		if it.PendingSync {
			mark = " *"
		}
		fmt.Fprintf(a.out, "%-9s %-30s %s%s\n", "["+string(models.CategoryOf(it))+"]", it.Name, meta, mark)
	}
}

func (a *App) folderMeta(ctx context.Context, folder *models.Item) string {
	children, err := a.items.List(ctx, folder.ID)
	if err != nil {
		return folder.Metadata
	}
	return itemCount(len(children))
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

func formatPath(p tree.Path) string {
	s := strings.Join(p.Names(), "/")
	if p.Truncated {
		s = "…/" + s
	}
	return s
}
