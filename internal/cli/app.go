package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/filedesk/internal/models"
	"github.com/dmitrijs2005/filedesk/internal/services"
)

// Flusher pushes pending changes on demand. *syncer.Syncer satisfies it.
type Flusher interface {
	Flush(ctx context.Context) (int, error)
}

type App struct {
	items   services.ItemService
	flusher Flusher
	reader  *bufio.Reader
	out     io.Writer
	prompt  bool

	cwd string
}

// NewApp builds a shell reading commands from in and writing to out. When
// prompt is false no prompt is printed, which suits piped input.
func NewApp(items services.ItemService, flusher Flusher, in io.Reader, out io.Writer, prompt bool) *App {
	return &App{
		items:   items,
		flusher: flusher,
		reader:  bufio.NewReader(in),
		out:     out,
		prompt:  prompt,
		cwd:     models.RootID,
	}
}

func (a *App) Run(ctx context.Context) error {
	if err := a.items.Open(ctx); err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	if a.prompt {
		fmt.Fprintln(a.out, "filedesk (type 'help' for commands)")
	}
	runREPL(ctx, a, a.status, a.reader, a.prompt)
	return nil
}

func (a *App) status() string {
	p, err := a.items.Breadcrumb(context.Background(), a.cwd)
	if err != nil || len(p.Crumbs) == 0 {
		return a.cwd
	}
	return formatPath(p)
}
