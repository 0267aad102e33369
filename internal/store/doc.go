// Package store implements the hierarchical item store: durable local
// storage of files and folders organised as a tree under the virtual root.
//
// # Lifecycle
//
// A Store moves through Uninitialized → Opening → Ready. Open is idempotent
// and safe to call concurrently; every other operation fails with
// common.ErrNotInitialized until Open has completed.
//
// # Operations
//
//   - Upsert          insert or overwrite an item by id (single statement)
//   - GetByID         lookup; "root" is synthesized, absent ids return nil
//   - ListByParent    children of a folder via the parent_id index
//   - DeleteRecursive post-order cascading delete, best effort
//
// Operations are not cancellable once issued: the caller's context is
// detached from cancellation before storage calls are made, so abandoning a
// call never leaves it half-applied because of the caller.
//
// # Errors
//
// All failures are *common.StoreError values whose kind is one of
// ErrStoreUnavailable, ErrNotInitialized, ErrWriteFailed, ErrReadFailed or
// ErrInvalidOperation.
package store
