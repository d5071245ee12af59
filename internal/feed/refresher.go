package feed

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Refresher fires a callback on a cron schedule, used to trigger periodic
// watchlist refreshes while the UI is running.
type Refresher struct {
	cron *cron.Cron
}

// NewRefresher registers the callback on the given cron spec (with seconds
// field). The schedule does not run until Start is called.
func NewRefresher(spec string, fn func()) (*Refresher, error) {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, fn); err != nil {
		return nil, fmt.Errorf("register refresh schedule: %w", err)
	}
	return &Refresher{cron: c}, nil
}

// Start begins scheduling in its own goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
	log.Info().Msg("auto-refresh schedule started")
}

// Stop stops the scheduler; running callbacks complete.
func (r *Refresher) Stop() {
	r.cron.Stop()
	log.Info().Msg("auto-refresh schedule stopped")
}
