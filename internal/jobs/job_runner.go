package jobs

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"go4rent-backend/internal/config"
	"go4rent-backend/internal/logger"
)

const (
	JobReconcileEquipment  = "ReconcileEquipmentAvailability"
	JobReportStalePayments = "ReportStalePendingPayments"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db     *sql.DB
	config *config.Config
	now    func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		config: cfg,
		now:    time.Now,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// Jobs returns the registered jobs keyed by name
func (jr *JobRunner) Jobs() map[string]func() {
	return map[string]func(){
		JobReconcileEquipment:  jr.ReconcileEquipmentAvailability,
		JobReportStalePayments: jr.ReportStalePendingPayments,
	}
}

// RunJob runs a single job by name (for manual execution)
func (jr *JobRunner) RunJob(name string) error {
	job, ok := jr.Jobs()[name]
	if !ok {
		names := make([]string, 0, len(jr.Jobs()))
		for n := range jr.Jobs() {
			names = append(names, n)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown job %q, expected one of %v", name, names)
	}
	job()
	return nil
}

// RunAll runs every job once in a fixed order
func (jr *JobRunner) RunAll() {
	jr.ReconcileEquipmentAvailability()
	jr.ReportStalePendingPayments()
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	start := time.Now()
	jobFunc()
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
}
