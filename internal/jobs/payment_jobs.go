package jobs

import (
	"context"
	"database/sql"
	"time"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/metrics"
)

// ReportStalePendingPayments reports payments the gateway has not answered for
// longer than the configured threshold. It never changes payment state.
func (jr *JobRunner) ReportStalePendingPayments() {
	jr.runWithRecovery(JobReportStalePayments, func() {
		threshold := time.Duration(jr.config.Scheduler.StalePaymentAfterMinutes) * time.Minute
		count, oldest, err := jr.countStalePayments(context.Background(), threshold)
		if err != nil {
			logger.Error("Failed to count stale pending payments", "error", err)
			return
		}

		metrics.StalePendingPayments.Set(float64(count))
		if count == 0 {
			logger.Info("No stale pending payments", "threshold", threshold)
			return
		}
		logger.Warn("Stale pending payments found",
			"count", count,
			"threshold", threshold,
			"oldest_created_at", oldest)
	})
}

func (jr *JobRunner) countStalePayments(ctx context.Context, threshold time.Duration) (int, *time.Time, error) {
	query := `SELECT count(*), min(created_at) FROM payments WHERE status = $1 AND created_at < $2`
	cutoff := jr.now().Add(-threshold)

	var count int
	var oldest sql.NullTime
	if err := jr.db.QueryRowContext(ctx, query, domain.PaymentStatusPending, cutoff).Scan(&count, &oldest); err != nil {
		return 0, nil, err
	}
	if !oldest.Valid {
		return count, nil, nil
	}
	return count, &oldest.Time, nil
}
