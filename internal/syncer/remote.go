package syncer

import (
	"context"

	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/models"
)

// LogRemote stands in for a real remote. It logs what would be pushed and
// acknowledges nothing, so items stay pending.
type LogRemote struct {
	log logging.Logger
}

func NewLogRemote(log logging.Logger) *LogRemote {
	return &LogRemote{log: log.With("component", "remote")}
}

func (r *LogRemote) Push(ctx context.Context, items []models.Item) ([]models.SyncAck, error) {
	for _, it := range items {
		r.log.Debug(ctx, "would push item", "id", it.ID, "name", it.Name, "revision", it.Revision)
	}
	r.log.Info(ctx, "remote sync not configured, items left pending", "count", len(items))
	return nil, nil
}
