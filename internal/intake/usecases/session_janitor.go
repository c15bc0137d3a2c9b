package usecases

import (
	"context"
	"log/slog"
	"time"

	"catalog-server/internal/infra/async"
)

func NewSessionJanitor(service *SimpleImportService, interval, ttl time.Duration) *SessionJanitor {
	return &SessionJanitor{
		service:  service,
		interval: interval,
		ttl:      ttl,
	}
}

var _ async.Worker = &SessionJanitor{}

// SessionJanitor periodically drops idle import sessions so abandoned
// uploads do not accumulate in memory.
type SessionJanitor struct {
	service  *SimpleImportService
	interval time.Duration
	ttl      time.Duration
}

func (j *SessionJanitor) Run(ctx context.Context, done func()) {
	slog.Debug("import session janitor started")
	defer done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("import session janitor cancelled")
			return
		case <-ticker.C:
			j.service.ExpireSessions(j.ttl)
		}
	}
}

func (j *SessionJanitor) Shutdown() {
	slog.Debug("import session janitor shutdown")
}
