package postgres

import (
	"context"
	"database/sql"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, COALESCE(phone_number, ''), name, COALESCE(fcm_token, ''), created_at, updated_at
	          FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.Name, &u.FCMToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, id)
	}
	return u, nil
}
