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

const paymentColumns = `p.id, p.rental_id, p.payer_id, p.amount, p.payment_method, p.transaction_id, p.status,
	p.gateway_response, COALESCE(p.admin_notes, ''), p.created_at, p.updated_at`

type paymentRepository struct {
	q querier
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{q: db}
}

func scanPayment(row rowScanner, p *domain.Payment) error {
	var resp []byte
	err := row.Scan(&p.ID, &p.RentalID, &p.PayerID, &p.Amount, &p.Method, &p.TransactionID, &p.Status,
		&resp, &p.AdminNotes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}
	if len(resp) > 0 {
		p.GatewayResponse = resp
	}
	return nil
}

// jsonbArg passes a raw JSON document as text so the server casts it to jsonb.
func jsonbArg(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	logger.EnterMethod("paymentRepository.Create", "rentalID", p.RentalID, "transactionID", p.TransactionID)

	query := `INSERT INTO payments (rental_id, payer_id, amount, payment_method, transaction_id, status,
	              gateway_response, admin_notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at, updated_at`
	now := time.Now()
	logger.DatabaseCall("INSERT", "payments", "transactionID", p.TransactionID)
	err := r.q.QueryRowContext(ctx, query,
		p.RentalID, p.PayerID, p.Amount, p.Method, p.TransactionID, p.Status,
		jsonbArg(p.GatewayResponse), p.AdminNotes, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	logger.DatabaseResult("INSERT", 1, err, "paymentID", p.ID)

	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Create", err, "transactionID", p.TransactionID)
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTransaction.WithReason("transaction id %s already exists", p.TransactionID)
		}
		return err
	}

	logger.ExitMethod("paymentRepository.Create", "paymentID", p.ID)
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	return r.getByID(ctx, "paymentRepository.GetByID", `SELECT `+paymentColumns+` FROM payments p WHERE p.id = $1`, id)
}

func (r *paymentRepository) LockByID(ctx context.Context, id int32) (*domain.Payment, error) {
	return r.getByID(ctx, "paymentRepository.LockByID", `SELECT `+paymentColumns+` FROM payments p WHERE p.id = $1 FOR UPDATE`, id)
}

func (r *paymentRepository) getByID(ctx context.Context, method, query string, id int32) (*domain.Payment, error) {
	logger.EnterMethod(method, "paymentID", id)

	p := &domain.Payment{}
	if err := scanPayment(r.q.QueryRowContext(ctx, query, id), p); err != nil {
		logger.ExitMethodWithError(method, err, "paymentID", id)
		return nil, notFound(err, domain.ErrPaymentNotFound, id)
	}

	logger.ExitMethod(method, "paymentID", id, "status", p.Status)
	return p, nil
}

func (r *paymentRepository) LockByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	logger.EnterMethod("paymentRepository.LockByTransactionID", "transactionID", transactionID)

	query := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.transaction_id = $1 FOR UPDATE`
	p := &domain.Payment{}
	if err := scanPayment(r.q.QueryRowContext(ctx, query, transactionID), p); err != nil {
		logger.ExitMethodWithError("paymentRepository.LockByTransactionID", err, "transactionID", transactionID)
		if err == sql.ErrNoRows {
			return nil, domain.ErrPaymentNotFound.WithReason("no payment for transaction %s", transactionID)
		}
		return nil, err
	}

	logger.ExitMethod("paymentRepository.LockByTransactionID", "paymentID", p.ID, "status", p.Status)
	return p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	logger.EnterMethod("paymentRepository.Update", "paymentID", p.ID, "status", p.Status)

	query := `UPDATE payments SET status = $1, gateway_response = COALESCE($2::jsonb, gateway_response),
	              admin_notes = $3, updated_at = $4
	          WHERE id = $5`
	p.UpdatedAt = time.Now()
	res, err := r.q.ExecContext(ctx, query, p.Status, jsonbArg(p.GatewayResponse), p.AdminNotes, p.UpdatedAt, p.ID)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Update", err, "paymentID", p.ID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPaymentNotFound.WithEntity(p.ID)
	}

	logger.ExitMethod("paymentRepository.Update", "paymentID", p.ID)
	return nil
}

func (r *paymentRepository) List(ctx context.Context, filter domain.PaymentFilter, page, pageSize int32) ([]domain.Payment, int32, error) {
	logger.EnterMethod("paymentRepository.List", "filter", filter, "page", page, "pageSize", pageSize)

	from := ` FROM payments p JOIN rentals r ON r.id = p.rental_id JOIN equipment e ON e.id = r.equipment_id WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if filter.PayerID > 0 {
		from += fmt.Sprintf(" AND p.payer_id = $%d", argIdx)
		args = append(args, filter.PayerID)
		argIdx++
	}
	if filter.OwnerID > 0 {
		from += fmt.Sprintf(" AND e.owner_id = $%d", argIdx)
		args = append(args, filter.OwnerID)
		argIdx++
	}
	if filter.RentalID > 0 {
		from += fmt.Sprintf(" AND p.rental_id = $%d", argIdx)
		args = append(args, filter.RentalID)
		argIdx++
	}
	if filter.Status != "" {
		from += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var count int32
	if err := r.q.QueryRowContext(ctx, "SELECT count(*)"+from, args...).Scan(&count); err != nil {
		logger.ExitMethodWithError("paymentRepository.List", err)
		return nil, 0, err
	}

	query := "SELECT " + paymentColumns + from +
		fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.List", err)
		return nil, 0, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, 0, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	logger.ExitMethod("paymentRepository.List", "count", count)
	return payments, count, nil
}
