package postgres

import (
	"context"
	"database/sql"
	"time"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/repository"
)

const equipmentColumns = `id, category_id, owner_id, barcode_value, status, min_rental_period_hours,
	max_rental_period_hours, rewards_points_acceptable, rental_counter, created_at, updated_at`

type equipmentRepository struct {
	q querier
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{q: db}
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	return r.get(ctx, "equipmentRepository.GetByID", `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)
}

func (r *equipmentRepository) LockByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	return r.get(ctx, "equipmentRepository.LockByID", `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1 FOR UPDATE`, id)
}

func (r *equipmentRepository) get(ctx context.Context, method, query string, id int32) (*domain.Equipment, error) {
	logger.EnterMethod(method, "equipmentID", id)

	eq := &domain.Equipment{}
	var ownerID sql.NullInt32
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&eq.ID, &eq.CategoryID, &ownerID, &eq.BarcodeValue, &eq.Status, &eq.MinRentalPeriodHours,
		&eq.MaxRentalPeriodHours, &eq.RewardsPointsAcceptable, &eq.RentalCounter, &eq.CreatedAt, &eq.UpdatedAt,
	)
	if err != nil {
		logger.ExitMethodWithError(method, err, "equipmentID", id)
		return nil, notFound(err, domain.ErrEquipmentNotFound, id)
	}
	if ownerID.Valid {
		owner := ownerID.Int32
		eq.OwnerID = &owner
	}

	logger.ExitMethod(method, "equipmentID", id, "status", eq.Status)
	return eq, nil
}

func (r *equipmentRepository) UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	logger.EnterMethod("equipmentRepository.UpdateStatus", "equipmentID", id, "status", status)

	query := `UPDATE equipment SET status = $1, updated_at = $2 WHERE id = $3`
	logger.DatabaseCall("UPDATE", "equipment", "equipmentID", id)
	res, err := r.q.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "equipmentID", id)
		logger.ExitMethodWithError("equipmentRepository.UpdateStatus", err, "equipmentID", id)
		return err
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, nil, "equipmentID", id)
	if n == 0 {
		return domain.ErrEquipmentNotFound.WithEntity(id)
	}

	logger.ExitMethod("equipmentRepository.UpdateStatus", "equipmentID", id)
	return nil
}

func (r *equipmentRepository) IncrementRentalCounter(ctx context.Context, id int32) error {
	logger.EnterMethod("equipmentRepository.IncrementRentalCounter", "equipmentID", id)

	query := `UPDATE equipment SET rental_counter = rental_counter + 1, updated_at = $1 WHERE id = $2`
	if _, err := r.q.ExecContext(ctx, query, time.Now(), id); err != nil {
		logger.ExitMethodWithError("equipmentRepository.IncrementRentalCounter", err, "equipmentID", id)
		return err
	}

	logger.ExitMethod("equipmentRepository.IncrementRentalCounter", "equipmentID", id)
	return nil
}
