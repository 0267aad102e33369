package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/dbx"
	"github.com/dmitrijs2005/filedesk/internal/models"
)

const itemColumns = `id, name, kind, parent_id, content, metadata, pending_sync, revision, updated_at`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts an item by id in a single statement.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, e *models.Item) error {
	query := `INSERT INTO items (id, name, kind, parent_id, content, metadata, pending_sync, revision, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				kind = excluded.kind,
				parent_id = excluded.parent_id,
				content = excluded.content,
				metadata = excluded.metadata,
				pending_sync = excluded.pending_sync,
				revision = items.revision + 1,
				updated_at = excluded.updated_at
			RETURNING revision`

	var content sql.NullString
	if e.Content != nil {
		content = sql.NullString{String: *e.Content, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, query,
		e.ID, e.Name, string(e.Kind), e.ParentID, content, e.Metadata, e.PendingSync, e.UpdatedAt.UTC().UnixNano())

	var revision int64
	if err := row.Scan(&revision); err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}
	e.Revision = revision
	return nil
}

// GetByID returns a single item.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return item, nil
}

// ListByParent selects children through idx_items_parent_id.
func (r *SQLiteRepository) ListByParent(ctx context.Context, parentID string) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE parent_id = ?`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return collect(rows)
}

// DeleteByID hard-deletes a row.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// GetAllPending returns items flagged as pending_sync=1.
func (r *SQLiteRepository) GetAllPending(ctx context.Context) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE pending_sync = 1`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending items: %w", err)
	}
	return collect(rows)
}

// MarkSynced clears the pending flag for an acknowledged revision.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string, revision int64) (bool, error) {
	query := `UPDATE items SET pending_sync = 0 WHERE id = ? AND revision = ? AND pending_sync = 1`
	res, err := r.db.ExecContext(ctx, query, id, revision)
	if err != nil {
		return false, fmt.Errorf("failed to mark item synced: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra == 1, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	var (
		item      models.Item
		kind      string
		content   sql.NullString
		updatedAt int64
	)
	err := s.Scan(&item.ID, &item.Name, &kind, &item.ParentID, &content,
		&item.Metadata, &item.PendingSync, &item.Revision, &updatedAt)
	if err != nil {
		return nil, err
	}
	item.Kind = models.Kind(kind)
	if content.Valid {
		item.Content = models.StringPtr(content.String)
	}
	item.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &item, nil
}

func collect(rows *sql.Rows) ([]models.Item, error) {
	defer rows.Close()

	result := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item rows: %w", err)
	}
	return result, nil
}
