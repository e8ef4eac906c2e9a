package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go4rent-backend/internal/config"
	"go4rent-backend/internal/jobs"
)

func TestNewScheduler(t *testing.T) {
	t.Run("Registers both jobs", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Scheduler.ReconcileEquipment = "0 */15 * * * *"
		cfg.Scheduler.ReportStalePayments = "0 0 * * * *"

		s, err := NewScheduler(jobs.NewJobRunner(nil, cfg))
		require.NoError(t, err)
		assert.Equal(t, 2, s.Entries())
	})

	t.Run("Rejects a bad schedule", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Scheduler.ReconcileEquipment = "every quarter hour"
		cfg.Scheduler.ReportStalePayments = "0 0 * * * *"

		_, err := NewScheduler(jobs.NewJobRunner(nil, cfg))
		assert.Error(t, err)
	})
}
