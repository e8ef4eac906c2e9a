package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/repository"
)

type pushNotificationRepository struct {
	db *sql.DB
}

func NewPushNotificationRepository(db *sql.DB) repository.PushNotificationRepository {
	return &pushNotificationRepository{db: db}
}

func (r *pushNotificationRepository) Create(ctx context.Context, n *domain.SentPushNotification) error {
	logger.EnterMethod("pushNotificationRepository.Create", "userID", n.UserID, "title", n.Title, "status", n.Status)

	data, err := json.Marshal(n.Data)
	if err != nil {
		logger.ExitMethodWithError("pushNotificationRepository.Create", err, "reason", "failed to marshal data")
		return err
	}

	query := `INSERT INTO sent_push_notifications (user_id, title, body, data, status, response, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	logger.DatabaseCall("INSERT", "sent_push_notifications", "userID", n.UserID)

	n.CreatedAt = time.Now()
	err = r.db.QueryRowContext(ctx, query, n.UserID, n.Title, n.Body, string(data), n.Status, n.Response, n.CreatedAt).Scan(&n.ID)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)

	if err != nil {
		logger.ExitMethodWithError("pushNotificationRepository.Create", err, "userID", n.UserID)
	} else {
		logger.ExitMethod("pushNotificationRepository.Create", "notificationID", n.ID)
	}
	return err
}

func (r *pushNotificationRepository) ListByUser(ctx context.Context, userID int32, limit, offset int32) ([]domain.SentPushNotification, error) {
	query := `SELECT id, user_id, title, body, data, status, COALESCE(response, ''), created_at
	          FROM sent_push_notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.SentPushNotification
	for rows.Next() {
		var n domain.SentPushNotification
		var data []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &data, &n.Status, &n.Response, &n.CreatedAt); err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &n.Data); err != nil {
				return nil, err
			}
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
