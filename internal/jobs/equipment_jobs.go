package jobs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/metrics"
)

// reservingStatuses are the rental statuses that legitimately hold equipment
// in the rented state.
var reservingStatuses = []string{
	string(domain.RentalStatusApproved),
	string(domain.RentalStatusActive),
}

// ReconcileEquipmentAvailability releases equipment left rented without any
// approved or active rental, e.g. after a crashed external writer.
func (jr *JobRunner) ReconcileEquipmentAvailability() {
	jr.runWithRecovery(JobReconcileEquipment, func() {
		released, err := jr.reconcileEquipment(context.Background())
		if err != nil {
			logger.Error("Failed to reconcile equipment availability", "error", err, "released", released)
			return
		}
		logger.Info("Reconciled equipment availability", "released", released)
	})
}

func (jr *JobRunner) reconcileEquipment(ctx context.Context) (int, error) {
	query := `
		SELECT e.id
		FROM equipment e
		WHERE e.status = $1
		  AND NOT EXISTS (
		      SELECT 1 FROM rentals r
		      WHERE r.equipment_id = e.id AND r.status = ANY($2)
		  )
		ORDER BY e.id
	`
	rows, err := jr.db.QueryContext(ctx, query, domain.EquipmentStatusRented, pq.Array(reservingStatuses))
	if err != nil {
		return 0, fmt.Errorf("find orphaned equipment: %w", err)
	}
	var candidates []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan equipment id: %w", err)
		}
		candidates = append(candidates, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate orphaned equipment: %w", err)
	}

	released := 0
	for _, id := range candidates {
		ok, err := jr.releaseEquipment(ctx, id)
		if err != nil {
			logger.Error("Failed to release equipment", "equipment_id", id, "error", err)
			continue
		}
		if ok {
			released++
		}
	}
	return released, nil
}

// releaseEquipment re-checks one candidate under the equipment row lock, so a
// rental approved since the scan keeps its equipment.
func (jr *JobRunner) releaseEquipment(ctx context.Context, id int32) (released bool, err error) {
	tx, err := jr.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil || !released {
			_ = tx.Rollback()
		}
	}()

	var status domain.EquipmentStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM equipment WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if status != domain.EquipmentStatusRented {
		return false, nil
	}

	var holding int
	err = tx.QueryRowContext(ctx,
		`SELECT count(*) FROM rentals WHERE equipment_id = $1 AND status = ANY($2)`,
		id, pq.Array(reservingStatuses),
	).Scan(&holding)
	if err != nil {
		return false, err
	}
	if holding > 0 {
		return false, nil
	}

	now := jr.now()
	logger.DatabaseCall("UPDATE", "equipment", "equipmentID", id)
	if _, err = tx.ExecContext(ctx,
		`UPDATE equipment SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.EquipmentStatusAvailable, now, id,
	); err != nil {
		return false, err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO status_history (entity_type, entity_id, field, old_value, new_value, actor_id, source, created_at)
		 VALUES ($1, $2, 'status', $3, $4, NULL, $5, $6)`,
		domain.EntityEquipment, id, domain.EquipmentStatusRented, domain.EquipmentStatusAvailable, domain.SourceSystem, now,
	); err != nil {
		return false, err
	}
	if err = tx.Commit(); err != nil {
		return false, err
	}
	released = true

	metrics.EquipmentStatusChanges.WithLabelValues(string(domain.EquipmentStatusAvailable), string(domain.SourceSystem)).Inc()
	logger.Transition("equipment", id, string(domain.EquipmentStatusRented), string(domain.EquipmentStatusAvailable), "source", domain.SourceSystem)
	return true, nil
}
