package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/repository"
)

const rentalColumns = `r.id, r.renter_id, r.equipment_id, r.start_datetime, r.end_datetime, r.total_amount,
	r.status, r.payment_status, r.delivery_address, r.pickup_address, r.created_at, r.updated_at`

type rentalRepository struct {
	q querier
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{q: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRental(row rowScanner, rt *domain.Rental) error {
	return row.Scan(&rt.ID, &rt.RenterID, &rt.EquipmentID, &rt.StartDatetime, &rt.EndDatetime, &rt.TotalAmount,
		&rt.Status, &rt.PaymentStatus, &rt.DeliveryAddress, &rt.PickupAddress, &rt.CreatedAt, &rt.UpdatedAt)
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	logger.EnterMethod("rentalRepository.Create", "renterID", rt.RenterID, "equipmentID", rt.EquipmentID)

	query := `INSERT INTO rentals (renter_id, equipment_id, start_datetime, end_datetime, total_amount, status,
	              payment_status, delivery_address, pickup_address, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at, updated_at`
	now := time.Now()
	logger.DatabaseCall("INSERT", "rentals", "renterID", rt.RenterID)
	err := r.q.QueryRowContext(ctx, query,
		rt.RenterID, rt.EquipmentID, rt.StartDatetime, rt.EndDatetime, rt.TotalAmount, rt.Status,
		rt.PaymentStatus, rt.DeliveryAddress, rt.PickupAddress, now, now,
	).Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
	logger.DatabaseResult("INSERT", 1, err, "rentalID", rt.ID)

	if err != nil {
		logger.ExitMethodWithError("rentalRepository.Create", err, "renterID", rt.RenterID)
		return err
	}

	logger.ExitMethod("rentalRepository.Create", "rentalID", rt.ID)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	return r.get(ctx, "rentalRepository.GetByID", `SELECT `+rentalColumns+` FROM rentals r WHERE r.id = $1`, id)
}

func (r *rentalRepository) LockByID(ctx context.Context, id int32) (*domain.Rental, error) {
	return r.get(ctx, "rentalRepository.LockByID", `SELECT `+rentalColumns+` FROM rentals r WHERE r.id = $1 FOR UPDATE`, id)
}

func (r *rentalRepository) get(ctx context.Context, method, query string, id int32) (*domain.Rental, error) {
	logger.EnterMethod(method, "rentalID", id)

	rt := &domain.Rental{}
	if err := scanRental(r.q.QueryRowContext(ctx, query, id), rt); err != nil {
		logger.ExitMethodWithError(method, err, "rentalID", id)
		return nil, notFound(err, domain.ErrRentalNotFound, id)
	}

	logger.ExitMethod(method, "rentalID", id, "status", rt.Status)
	return rt, nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, rt *domain.Rental) error {
	logger.EnterMethod("rentalRepository.UpdateStatus", "rentalID", rt.ID, "status", rt.Status, "paymentStatus", rt.PaymentStatus)

	query := `UPDATE rentals SET status = $1, payment_status = $2, updated_at = $3 WHERE id = $4`
	rt.UpdatedAt = time.Now()
	res, err := r.q.ExecContext(ctx, query, rt.Status, rt.PaymentStatus, rt.UpdatedAt, rt.ID)
	if err != nil {
		logger.ExitMethodWithError("rentalRepository.UpdateStatus", err, "rentalID", rt.ID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRentalNotFound.WithEntity(rt.ID)
	}

	logger.ExitMethod("rentalRepository.UpdateStatus", "rentalID", rt.ID)
	return nil
}

func (r *rentalRepository) CountActiveByEquipment(ctx context.Context, equipmentID, excludeRentalID int32) (int32, error) {
	logger.EnterMethod("rentalRepository.CountActiveByEquipment", "equipmentID", equipmentID, "excludeRentalID", excludeRentalID)

	query := `SELECT count(*) FROM rentals WHERE equipment_id = $1 AND status = $2 AND id <> $3`
	var count int32
	if err := r.q.QueryRowContext(ctx, query, equipmentID, domain.RentalStatusActive, excludeRentalID).Scan(&count); err != nil {
		logger.ExitMethodWithError("rentalRepository.CountActiveByEquipment", err, "equipmentID", equipmentID)
		return 0, err
	}

	logger.ExitMethod("rentalRepository.CountActiveByEquipment", "equipmentID", equipmentID, "count", count)
	return count, nil
}

func (r *rentalRepository) List(ctx context.Context, filter domain.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error) {
	logger.EnterMethod("rentalRepository.List", "filter", filter, "page", page, "pageSize", pageSize)

	from := ` FROM rentals r JOIN equipment e ON e.id = r.equipment_id WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if filter.RenterID > 0 {
		from += fmt.Sprintf(" AND r.renter_id = $%d", argIdx)
		args = append(args, filter.RenterID)
		argIdx++
	}
	if filter.OwnerID > 0 {
		from += fmt.Sprintf(" AND e.owner_id = $%d", argIdx)
		args = append(args, filter.OwnerID)
		argIdx++
	}
	if filter.EquipmentID > 0 {
		from += fmt.Sprintf(" AND r.equipment_id = $%d", argIdx)
		args = append(args, filter.EquipmentID)
		argIdx++
	}
	if filter.Status != "" {
		from += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var count int32
	if err := r.q.QueryRowContext(ctx, "SELECT count(*)"+from, args...).Scan(&count); err != nil {
		logger.ExitMethodWithError("rentalRepository.List", err)
		return nil, 0, err
	}

	query := "SELECT " + rentalColumns + from +
		fmt.Sprintf(" ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError("rentalRepository.List", err)
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	logger.ExitMethod("rentalRepository.List", "count", count)
	return rentals, count, nil
}
