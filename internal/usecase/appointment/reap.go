package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/lanavaja/barberia-api/internal/audit"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/metrics"
)

// ReapExpired cancels past-dated appointments that are still open. It runs
// ahead of every read that assumes no stale open rows remain (availability
// listings, barber day lists), and is safe to run again at any time: with
// no newly-stale rows it touches nothing.
type ReapExpired struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewReapExpired(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *ReapExpired {
	return &ReapExpired{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

// Execute is best-effort cleanup, never the caller's critical path:
// failures are logged, not propagated.
func (uc *ReapExpired) Execute(ctx context.Context, today schedule.Date) {
	n, err := uc.repo.ReapExpired(ctx, today)
	if err != nil {
		uc.logger.Warn("reaper run failed", zap.Error(err))
		return
	}
	if n == 0 {
		return
	}

	metrics.AppointmentsReaped.Add(float64(n))
	uc.logger.Info("reaped stale appointments",
		zap.Int64("count", n),
		zap.String("before", today.String()),
	)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointments_reaped",
		Entity:   "appointment",
		Metadata: map[string]any{"count": n, "before": today.String()},
	})
}
