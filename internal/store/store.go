package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/dbx"
	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/models"
	"github.com/dmitrijs2005/filedesk/internal/repositories/items"
	"golang.org/x/sync/singleflight"
)

const (
	opOpen       = "open"
	opUpsert     = "upsert"
	opGet        = "get"
	opList       = "list"
	opDelete     = "delete"
	opPending    = "pending"
	opMarkSynced = "mark_synced"
)

// Store is the hierarchical item store. The zero value is not usable; call New.
type Store struct {
	dsn string
	log logging.Logger

	state atomic.Int32
	group singleflight.Group

	mu   sync.RWMutex
	db   *sql.DB
	repo items.Repository
}

// New returns an uninitialized store backed by the SQLite database at dsn.
func New(dsn string, log logging.Logger) *Store {
	return &Store{dsn: dsn, log: log.With("component", "store")}
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	return State(s.state.Load())
}

// Open initializes the backing storage. Calls after a successful open are
// no-ops; concurrent calls share one attempt. A failed attempt leaves the
// store uninitialized so a later call may retry.
func (s *Store) Open(ctx context.Context) error {
	if s.State() == StateReady {
		return nil
	}

	_, err, _ := s.group.Do(opOpen, func() (any, error) {
		if s.State() == StateReady {
			return nil, nil
		}
		s.state.Store(int32(StateOpening))

		db, err := openDatabase(context.WithoutCancel(ctx), s.dsn)
		if err != nil {
			s.state.Store(int32(StateUninitialized))
			s.log.Error(ctx, "failed to open store", "dsn", s.dsn, "error", err)
			return nil, common.NewStoreError(common.ErrStoreUnavailable, opOpen, "", err)
		}

		s.attach(db, items.NewSQLiteRepository(db))
		s.log.Info(ctx, "store opened", "dsn", s.dsn)
		return nil, nil
	})
	return err
}

// Close releases the storage handle and returns the store to Uninitialized.
// It is meant for process shutdown only.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Store(int32(StateUninitialized))
	s.repo = nil
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) attach(db *sql.DB, repo items.Repository) {
	s.mu.Lock()
	s.db = db
	s.repo = repo
	s.mu.Unlock()
	s.state.Store(int32(StateReady))
}

func (s *Store) ready(op string) (items.Repository, error) {
	repo, _, err := s.handles(op)
	return repo, err
}

// handles returns the repository and database handle taken under one lock,
// so a concurrent Close cannot leave one of them stale.
func (s *Store) handles(op string) (items.Repository, *sql.DB, error) {
	if s.State() != StateReady {
		return nil, nil, common.NewStoreError(common.ErrNotInitialized, op, "", nil)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.repo == nil || s.db == nil {
		return nil, nil, common.NewStoreError(common.ErrNotInitialized, op, "", nil)
	}
	return s.repo, s.db, nil
}

// GetByID returns the item with the given id, or nil if it does not exist.
// The root is synthesized without a storage lookup.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Item, error) {
	repo, err := s.ready(opGet)
	if err != nil {
		return nil, err
	}
	if id == models.RootID {
		return models.Root(), nil
	}
	return s.get(context.WithoutCancel(ctx), repo, id)
}

func (s *Store) get(ctx context.Context, repo items.Repository, id string) (*models.Item, error) {
	item, err := repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewStoreError(common.ErrReadFailed, opGet, id, err)
	}
	return item, nil
}

// ListByParent returns the direct children of parentID in no particular
// order. A folder without children yields an empty, non-nil slice.
func (s *Store) ListByParent(ctx context.Context, parentID string) ([]models.Item, error) {
	repo, err := s.ready(opList)
	if err != nil {
		return nil, err
	}
	children, err := repo.ListByParent(context.WithoutCancel(ctx), parentID)
	if err != nil {
		return nil, common.NewStoreError(common.ErrReadFailed, opList, parentID, err)
	}
	return children, nil
}

// PendingItems returns every item whose local changes are not yet
// acknowledged by the remote.
func (s *Store) PendingItems(ctx context.Context) ([]models.Item, error) {
	repo, err := s.ready(opPending)
	if err != nil {
		return nil, err
	}
	pending, err := repo.GetAllPending(context.WithoutCancel(ctx))
	if err != nil {
		return nil, common.NewStoreError(common.ErrReadFailed, opPending, "", err)
	}
	return pending, nil
}

// MarkSynced clears the pending flag of every acknowledged revision in one
// transaction. Items edited after the acknowledged revision stay pending.
// It returns the number of items cleared.
func (s *Store) MarkSynced(ctx context.Context, acks []models.SyncAck) (int, error) {
	_, db, err := s.handles(opMarkSynced)
	if err != nil {
		return 0, err
	}
	if len(acks) == 0 {
		return 0, nil
	}

	cleared := 0
	err = dbx.WithTx(context.WithoutCancel(ctx), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := items.NewSQLiteRepository(tx)
		cleared = 0
		for _, ack := range acks {
			ok, err := repo.MarkSynced(ctx, ack.ID, ack.Revision)
			if err != nil {
				return err
			}
			if ok {
				cleared++
			}
		}
		return nil
	})
	if err != nil {
		return 0, common.NewStoreError(common.ErrWriteFailed, opMarkSynced, "", err)
	}
	return cleared, nil
}
