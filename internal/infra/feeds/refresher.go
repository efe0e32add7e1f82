package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"staycal/internal/app/view"
)

// Refresher reloads the view controller's reservation set on a fixed
// interval so long-lived dashboards keep pace with upstream sync. Reloads
// are idempotent reads; a reload racing a user-triggered one is resolved
// by the controller's request token.
type Refresher struct {
	controller *view.Controller
	logger     *slog.Logger
	cron       *cron.Cron
}

// NewRefresher schedules a reload every interval. Interval zero disables
// scheduling; Start and Stop are then no-ops.
func NewRefresher(controller *view.Controller, interval time.Duration, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Refresher{controller: controller, logger: logger}
	if interval <= 0 {
		return r
	}
	r.cron = cron.New()
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := r.cron.AddFunc(spec, r.refresh); err != nil {
		logger.Error("refresh schedule invalid", "spec", spec, "error", err)
		r.cron = nil
	}
	return r
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := r.controller.Reload(ctx); err != nil {
		r.logger.Warn("scheduled reload failed", "error", err)
	}
}

// Start begins the background schedule.
func (r *Refresher) Start() {
	if r.cron != nil {
		r.cron.Start()
	}
}

// Stop halts the schedule and waits for a running reload to finish.
func (r *Refresher) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}
}
