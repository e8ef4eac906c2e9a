package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go4rent-backend/internal/config"
	"go4rent-backend/internal/metrics"
)

var jobNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newRunner(t *testing.T) (*JobRunner, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Scheduler.StalePaymentAfterMinutes = 60
	jr := NewJobRunner(db, cfg)
	jr.now = func() time.Time { return jobNow }
	return jr, mock
}

const (
	scanOrphans   = `SELECT e.id FROM equipment e WHERE e.status = \$1 AND NOT EXISTS`
	lockEquipment = `SELECT status FROM equipment WHERE id = \$1 FOR UPDATE`
	countHolding  = `SELECT count\(\*\) FROM rentals WHERE equipment_id = \$1`
	releaseUpdate = `UPDATE equipment SET status = \$1`
	historyInsert = `INSERT INTO status_history`
)

func TestReconcileEquipment(t *testing.T) {
	t.Run("Releases orphaned equipment", func(t *testing.T) {
		jr, mock := newRunner(t)
		before := testutil.ToFloat64(metrics.EquipmentStatusChanges.WithLabelValues("available", "system"))

		mock.ExpectQuery(scanOrphans).
			WithArgs("rented", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectBegin()
		mock.ExpectQuery(lockEquipment).WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("rented"))
		mock.ExpectQuery(countHolding).WithArgs(int32(10), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(releaseUpdate).WithArgs("available", jobNow, int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(historyInsert).
			WithArgs("equipment", int32(10), "rented", "available", "system", jobNow).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		released, err := jr.reconcileEquipment(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, released)
		assert.NoError(t, mock.ExpectationsWereMet())
		after := testutil.ToFloat64(metrics.EquipmentStatusChanges.WithLabelValues("available", "system"))
		assert.Equal(t, before+1, after)
	})

	t.Run("Keeps equipment reserved since the scan", func(t *testing.T) {
		jr, mock := newRunner(t)

		mock.ExpectQuery(scanOrphans).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectBegin()
		mock.ExpectQuery(lockEquipment).WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("rented"))
		mock.ExpectQuery(countHolding).WithArgs(int32(10), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		released, err := jr.reconcileEquipment(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Skips equipment no longer rented", func(t *testing.T) {
		jr, mock := newRunner(t)

		mock.ExpectQuery(scanOrphans).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectBegin()
		mock.ExpectQuery(lockEquipment).WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("maintenance"))
		mock.ExpectRollback()

		released, err := jr.reconcileEquipment(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("One failure does not stop the rest", func(t *testing.T) {
		jr, mock := newRunner(t)

		mock.ExpectQuery(scanOrphans).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
		mock.ExpectBegin()
		mock.ExpectQuery(lockEquipment).WithArgs(int32(10)).WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectQuery(lockEquipment).WithArgs(int32(11)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("rented"))
		mock.ExpectQuery(countHolding).WithArgs(int32(11), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(releaseUpdate).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(historyInsert).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		released, err := jr.reconcileEquipment(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Scan failure", func(t *testing.T) {
		jr, mock := newRunner(t)
		mock.ExpectQuery(scanOrphans).WillReturnError(errors.New("connection refused"))

		_, err := jr.reconcileEquipment(context.Background())
		assert.Error(t, err)
	})
}

func TestReportStalePendingPayments(t *testing.T) {
	const staleQuery = `SELECT count\(\*\), min\(created_at\) FROM payments WHERE status = \$1 AND created_at < \$2`

	t.Run("Sets the gauge", func(t *testing.T) {
		jr, mock := newRunner(t)
		oldest := jobNow.Add(-3 * time.Hour)
		mock.ExpectQuery(staleQuery).
			WithArgs("pending", jobNow.Add(-time.Hour)).
			WillReturnRows(sqlmock.NewRows([]string{"count", "min"}).AddRow(2, oldest))

		jr.ReportStalePendingPayments()
		assert.Equal(t, float64(2), testutil.ToFloat64(metrics.StalePendingPayments))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No stale payments", func(t *testing.T) {
		jr, mock := newRunner(t)
		mock.ExpectQuery(staleQuery).
			WillReturnRows(sqlmock.NewRows([]string{"count", "min"}).AddRow(0, nil))

		count, oldest, err := jr.countStalePayments(context.Background(), time.Hour)
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Nil(t, oldest)
	})
}

func TestRunJob(t *testing.T) {
	jr, mock := newRunner(t)
	mock.ExpectQuery(`SELECT count\(\*\), min\(created_at\) FROM payments`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "min"}).AddRow(0, nil))

	require.NoError(t, jr.RunJob(JobReportStalePayments))
	assert.NoError(t, mock.ExpectationsWereMet())

	err := jr.RunJob("SendBillReminders")
	assert.ErrorContains(t, err, "unknown job")
}

func TestRunWithRecovery(t *testing.T) {
	jr, _ := newRunner(t)
	assert.NotPanics(t, func() {
		jr.runWithRecovery("panicky", func() { panic("boom") })
	})
}
