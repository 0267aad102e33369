package tree

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/models"
)

var ErrNotFolder = errors.New("breadcrumb target is not a folder")

// Getter resolves a single item by id. A missing item is reported as nil
// without an error. *store.Store satisfies it.
type Getter interface {
	GetByID(ctx context.Context, id string) (*models.Item, error)
}

// Crumb is one segment of a breadcrumb path.
type Crumb struct {
	ID   string
	Name string
}

// Path is an ordered breadcrumb from the root down to a folder.
//
// When the ancestor chain is broken (a dangling parent id or a cycle) the walk
// stops, Truncated is set, and Crumbs holds only the part below the break.
// Such a path does not start at the root.
type Path struct {
	Crumbs    []Crumb
	Truncated bool
}

// Names returns the crumb names in order.
func (p Path) Names() []string {
	names := make([]string, len(p.Crumbs))
	for i, c := range p.Crumbs {
		names[i] = c.Name
	}
	return names
}

// Breadcrumb walks parent pointers from folderID up to the root and returns
// the path in root-first order. It always terminates. A broken chain is
// logged and reported through Path.Truncated rather than as an error; only
// lookup failures are returned.
func Breadcrumb(ctx context.Context, g Getter, log logging.Logger, folderID string) (Path, error) {
	if log == nil {
		log = logging.Nop()
	}

	var reversed []Crumb
	visited := map[string]struct{}{}

	for id := folderID; ; {
		if _, seen := visited[id]; seen {
			log.Warn(ctx, "breadcrumb truncated: cycle in parent chain", "folder", folderID, "at", id)
			return Path{Crumbs: reverse(reversed), Truncated: true}, nil
		}
		visited[id] = struct{}{}

		item, err := g.GetByID(ctx, id)
		if err != nil {
			return Path{}, err
		}
		if item == nil {
			if id == folderID {
				return Path{}, nil
			}
			log.Warn(ctx, "breadcrumb truncated: dangling parent", "folder", folderID, "missing", id)
			return Path{Crumbs: reverse(reversed), Truncated: true}, nil
		}
		if id == folderID && !item.IsFolder() {
			return Path{}, ErrNotFolder
		}

		reversed = append(reversed, Crumb{ID: item.ID, Name: item.Name})
		if item.IsRoot() {
			return Path{Crumbs: reverse(reversed)}, nil
		}
		id = item.ParentID
	}
}

func reverse(c []Crumb) []Crumb {
	out := make([]Crumb, len(c))
	for i := range c {
		out[len(c)-1-i] = c[i]
	}
	return out
}
