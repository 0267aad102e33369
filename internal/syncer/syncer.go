package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/models"
)

// DefaultDebounce is the quiet period after the last notification before a
// flush starts.
const DefaultDebounce = 2 * time.Second

// PendingStore is the store side consumed by the syncer.
type PendingStore interface {
	PendingItems(ctx context.Context) ([]models.Item, error)
	MarkSynced(ctx context.Context, acks []models.SyncAck) (int, error)
}

// Remote receives pending items and acknowledges the revisions it accepted.
type Remote interface {
	Push(ctx context.Context, items []models.Item) ([]models.SyncAck, error)
}

type Syncer struct {
	store    PendingStore
	remote   Remote
	log      logging.Logger
	debounce time.Duration

	notify chan struct{}
	flush  sync.Mutex
}

func New(store PendingStore, remote Remote, debounce time.Duration, log logging.Logger) *Syncer {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Syncer{
		store:    store,
		remote:   remote,
		log:      log.With("component", "syncer"),
		debounce: debounce,
		notify:   make(chan struct{}, 1),
	}
}

// Notify records that local state changed. It never blocks; notifications
// arriving before Run picks up the previous one are coalesced.
func (s *Syncer) Notify() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Run waits for notifications and flushes once no new one has arrived for
// the debounce period. It returns when ctx is done. Flush errors are logged.
func (s *Syncer) Run(ctx context.Context) {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.notify:
			// a fresh timer per arm; the old channel is dropped with it
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(s.debounce)
			fire = timer.C
		case <-fire:
			timer, fire = nil, nil
			if _, err := s.Flush(ctx); err != nil {
				s.log.Error(ctx, "sync failed", "error", err)
			}
		}
	}
}

// Flush pushes every pending item to the remote and clears the pending flag
// of the acknowledged revisions. It returns the number of items cleared.
func (s *Syncer) Flush(ctx context.Context) (int, error) {
	s.flush.Lock()
	defer s.flush.Unlock()

	pending, err := s.store.PendingItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("error reading pending items: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	acks, err := s.remote.Push(ctx, pending)
	if err != nil {
		return 0, fmt.Errorf("error pushing items: %w", err)
	}

	cleared, err := s.store.MarkSynced(ctx, acks)
	if err != nil {
		return 0, fmt.Errorf("error marking items synced: %w", err)
	}

	s.log.Info(ctx, "sync flushed", "pending", len(pending), "acked", len(acks), "cleared", cleared)
	return cleared, nil
}
