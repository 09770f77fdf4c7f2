package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"sockchat/contract"
)

var _ contract.Worker = (*BadgerGC)(nil)

// BadgerGC periodically reclaims value-log space. Badger only rewrites a
// log file when enough of it is stale, so ErrNoRewrite is the common,
// unremarkable outcome.
type BadgerGC struct {
	db       *badger.DB
	log      *slog.Logger
	interval time.Duration
}

func NewBadgerGC(db *badger.DB, log *slog.Logger, interval time.Duration) *BadgerGC {
	return &BadgerGC{db: db, log: log, interval: interval}
}

func (w *BadgerGC) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping badger GC")
			return ctx.Err()
		case <-ticker.C:
			// One successful rewrite often unlocks another; loop until
			// there is nothing left to reclaim.
			for {
				err := w.db.RunValueLogGC(0.5)
				if err == badger.ErrNoRewrite {
					break
				}
				if err != nil {
					w.log.Warn("Value log GC failed", "error", err)
					break
				}
				w.log.Debug("Value log file reclaimed")
			}
		}
	}
}
