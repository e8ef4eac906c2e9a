package postgres

import (
	"context"
	"database/sql"
	"time"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/repository"
)

type statusHistoryRepository struct {
	q querier
}

func NewStatusHistoryRepository(db *sql.DB) repository.StatusHistoryRepository {
	return &statusHistoryRepository{q: db}
}

func (r *statusHistoryRepository) Record(ctx context.Context, c *domain.StatusChange) error {
	logger.EnterMethod("statusHistoryRepository.Record", "entity", c.EntityType, "entityID", c.EntityID, "field", c.Field)

	query := `INSERT INTO status_history (entity_type, entity_id, field, old_value, new_value, actor_id, source, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	var actorID sql.NullInt32
	if c.ActorID != nil {
		actorID = sql.NullInt32{Int32: *c.ActorID, Valid: true}
	}
	err := r.q.QueryRowContext(ctx, query,
		c.EntityType, c.EntityID, c.Field, c.OldValue, c.NewValue, actorID, c.Source, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		logger.ExitMethodWithError("statusHistoryRepository.Record", err, "entityID", c.EntityID)
		return err
	}

	logger.ExitMethod("statusHistoryRepository.Record", "historyID", c.ID)
	return nil
}

func (r *statusHistoryRepository) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int32) ([]domain.StatusChange, error) {
	query := `SELECT id, entity_type, entity_id, field, old_value, new_value, actor_id, source, created_at
	          FROM status_history WHERE entity_type = $1 AND entity_id = $2 ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []domain.StatusChange
	for rows.Next() {
		var c domain.StatusChange
		var actorID sql.NullInt32
		if err := rows.Scan(&c.ID, &c.EntityType, &c.EntityID, &c.Field, &c.OldValue, &c.NewValue, &actorID, &c.Source, &c.CreatedAt); err != nil {
			return nil, err
		}
		if actorID.Valid {
			id := actorID.Int32
			c.ActorID = &id
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}
