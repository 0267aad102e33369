// Package items provides the persistence layer for file and folder items.
//
// # Overview
//
// The package defines a Repository interface for upsert, lookup, child
// listing and deletion of Item models (see internal/models). The SQLite
// implementation (SQLiteRepository) works over a dbx.DBTX, so it can run on
// a *sql.DB or inside a transaction.
//
// # Data Model
//
// Rows live in the items table keyed by id, with a non-unique index on
// parent_id that serves ListByParent. content is NULL for folders. Every
// upsert bumps revision; pending_sync marks rows the remote has not
// acknowledged yet.
//
// Typical Usage
//
//	repo := items.NewSQLiteRepository(db)
//	_ = repo.CreateOrUpdate(ctx, item)
//	children, _ := repo.ListByParent(ctx, "root")
//	one, _ := repo.GetByID(ctx, id)
//	_ = repo.DeleteByID(ctx, id)
//	pend, _ := repo.GetAllPending(ctx)
package items
