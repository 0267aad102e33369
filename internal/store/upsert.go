package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/models"
	"github.com/dmitrijs2005/filedesk/internal/repositories/items"
)

var (
	errParentMissing   = errors.New("parent does not exist")
	errParentNotFolder = errors.New("parent is not a folder")
	errKindChanged     = errors.New("item kind cannot change")
	errCycle           = errors.New("folder cannot be moved into its own subtree")
)

// Upsert inserts item or overwrites the stored item sharing its ID, and
// returns the ID. The write is a single statement: either the whole record
// is stored or nothing is. item.Revision is updated to the stored revision.
// Upserting a record identical to the stored one writes nothing, so the
// revision and UpdatedAt stay as they were.
//
// Referential checks are advisory: the parent must exist and be a folder,
// a folder cannot be moved below itself, and an item keeps its kind. Engine
// failures, including those of the lookups behind these checks, are
// reported as ErrWriteFailed.
func (s *Store) Upsert(ctx context.Context, item *models.Item) (string, error) {
	repo, err := s.ready(opUpsert)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", common.NewStoreError(common.ErrInvalidOperation, opUpsert, "", errors.New("nil item"))
	}
	if err := item.Validate(); err != nil {
		return "", common.NewStoreError(common.ErrInvalidOperation, opUpsert, item.ID, err)
	}

	ctx = context.WithoutCancel(ctx)

	existing, err := s.lookup(ctx, repo, item.ID)
	if err != nil {
		return "", err
	}
	if existing != nil && sameRecord(existing, item) {
		item.Revision = existing.Revision
		item.UpdatedAt = existing.UpdatedAt
		return item.ID, nil
	}

	if err := s.checkPlacement(ctx, repo, item, existing); err != nil {
		return "", err
	}

	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now().UTC()
	}
	if err := repo.CreateOrUpdate(ctx, item); err != nil {
		return "", common.NewStoreError(common.ErrWriteFailed, opUpsert, item.ID, err)
	}
	return item.ID, nil
}

// sameRecord reports whether storing next would leave cur unchanged. A zero
// UpdatedAt on next matches any stored time.
func sameRecord(cur, next *models.Item) bool {
	if cur.Name != next.Name || cur.Kind != next.Kind || cur.ParentID != next.ParentID ||
		cur.Metadata != next.Metadata || cur.PendingSync != next.PendingSync {
		return false
	}
	if (cur.Content == nil) != (next.Content == nil) || cur.Text() != next.Text() {
		return false
	}
	return next.UpdatedAt.IsZero() || next.UpdatedAt.Equal(cur.UpdatedAt)
}

// lookup reads an item on behalf of Upsert, classifying failures as writes.
func (s *Store) lookup(ctx context.Context, repo items.Repository, id string) (*models.Item, error) {
	item, err := repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewStoreError(common.ErrWriteFailed, opUpsert, id, err)
	}
	return item, nil
}

func (s *Store) checkPlacement(ctx context.Context, repo items.Repository, item, existing *models.Item) error {
	if existing != nil && existing.Kind != item.Kind {
		return common.NewStoreError(common.ErrInvalidOperation, opUpsert, item.ID,
			fmt.Errorf("%w: %s -> %s", errKindChanged, existing.Kind, item.Kind))
	}

	if item.ParentID == models.RootID {
		return nil
	}

	parent, err := s.lookup(ctx, repo, item.ParentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return common.NewStoreError(common.ErrInvalidOperation, opUpsert, item.ID,
			fmt.Errorf("%w: %s", errParentMissing, item.ParentID))
	}
	if !parent.IsFolder() {
		return common.NewStoreError(common.ErrInvalidOperation, opUpsert, item.ID,
			fmt.Errorf("%w: %s", errParentNotFolder, item.ParentID))
	}

	// Only an existing folder can have descendants to collide with.
	if existing == nil || !item.IsFolder() || existing.ParentID == item.ParentID {
		return nil
	}
	return s.checkNoCycle(ctx, repo, item.ID, parent)
}

// checkNoCycle walks up from parent and fails if id is one of its ancestors.
func (s *Store) checkNoCycle(ctx context.Context, repo items.Repository, id string, parent *models.Item) error {
	visited := map[string]struct{}{}
	for cur := parent; cur != nil && cur.ID != models.RootID; {
		if cur.ID == id {
			return common.NewStoreError(common.ErrInvalidOperation, opUpsert, id, errCycle)
		}
		if _, seen := visited[cur.ID]; seen {
			return nil
		}
		visited[cur.ID] = struct{}{}
		if cur.ParentID == models.RootID {
			return nil
		}
		next, err := s.lookup(ctx, repo, cur.ParentID)
		if err != nil {
			return err
		}
		cur = next
	}
	return nil
}
