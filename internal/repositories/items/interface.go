package items

import (
	"context"

	"github.com/dmitrijs2005/filedesk/internal/models"
)

// Repository describes the storage operations for Item rows.
type Repository interface {
	// CreateOrUpdate inserts a new item or overwrites the one sharing its ID.
	// The stored revision is written back into item.Revision.
	CreateOrUpdate(ctx context.Context, item *models.Item) error

	// GetByID returns the item or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Item, error)

	// ListByParent returns the direct children of parentID. Order is unspecified.
	ListByParent(ctx context.Context, parentID string) ([]models.Item, error)

	// DeleteByID removes a single row. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id string) error

	// GetAllPending returns items with local changes not yet acknowledged.
	GetAllPending(ctx context.Context) ([]models.Item, error)

	// MarkSynced clears pending_sync if the stored revision still equals
	// revision. It reports whether the row was updated.
	MarkSynced(ctx context.Context, id string, revision int64) (bool, error)
}
