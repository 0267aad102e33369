package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/models"
)

var errParentCycle = errors.New("stored parent chain forms a cycle")

type deleteFrame struct {
	id       string
	expanded bool
}

// DeleteRecursive deletes the item and all of its descendants. The walk is
// post-order over an explicit stack: a folder's children are listed, pushed
// and deleted before the folder itself. Only one folder's children are read
// at a time.
//
// The cascade is not atomic. On failure the already deleted part of the
// subtree stays deleted and a single StoreError is returned; callers must
// re-list to learn what survived. Deleting an absent id succeeds. A stored
// parent cycle below id stops the walk with ErrReadFailed.
func (s *Store) DeleteRecursive(ctx context.Context, id string) error {
	repo, err := s.ready(opDelete)
	if err != nil {
		return err
	}
	if id == models.RootID {
		return common.NewStoreError(common.ErrInvalidOperation, opDelete, id, nil)
	}
	if id == "" {
		return common.NewStoreError(common.ErrInvalidOperation, opDelete, id, models.ErrEmptyID)
	}

	ctx = context.WithoutCancel(ctx)

	stack := []deleteFrame{{id: id}}
	seen := map[string]struct{}{id: {}}
	deleted := 0
	for len(stack) > 0 {
		top := len(stack) - 1
		if !stack[top].expanded {
			stack[top].expanded = true
			children, err := repo.ListByParent(ctx, stack[top].id)
			if err != nil {
				s.log.Warn(ctx, "cascading delete interrupted", "id", id, "deleted", deleted, "error", err)
				return common.NewStoreError(common.ErrReadFailed, opDelete, stack[top].id, err)
			}
			for _, child := range children {
				if _, dup := seen[child.ID]; dup {
					s.log.Warn(ctx, "cascading delete interrupted", "id", id, "deleted", deleted, "cycle_at", child.ID)
					return common.NewStoreError(common.ErrReadFailed, opDelete, child.ID, errParentCycle)
				}
				seen[child.ID] = struct{}{}
				// files have no children to list
				stack = append(stack, deleteFrame{id: child.ID, expanded: !child.IsFolder()})
			}
			continue
		}

		current := stack[top].id
		stack = stack[:top]
		if err := repo.DeleteByID(ctx, current); err != nil {
			s.log.Warn(ctx, "cascading delete interrupted", "id", id, "deleted", deleted, "error", err)
			return common.NewStoreError(common.ErrWriteFailed, opDelete, current, err)
		}
		deleted++
	}

	s.log.Debug(ctx, "item deleted", "id", id, "deleted", deleted)
	return nil
}
