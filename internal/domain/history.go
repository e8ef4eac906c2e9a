package domain

import "time"

type EntityType string

const (
	EntityRental    EntityType = "rental"
	EntityEquipment EntityType = "equipment"
	EntityPayment   EntityType = "payment"
)

type ChangeSource string

const (
	SourceUser    ChangeSource = "user"
	SourceAdmin   ChangeSource = "admin"
	SourceGateway ChangeSource = "gateway"
	SourceSystem  ChangeSource = "system"
)

// StatusChange is one audited status write. It is persisted in the same
// transaction as the write it describes.
type StatusChange struct {
	ID         int64        `json:"id"`
	EntityType EntityType   `json:"entity_type"`
	EntityID   int32        `json:"entity_id"`
	Field      string       `json:"field"`
	OldValue   string       `json:"old_value"`
	NewValue   string       `json:"new_value"`
	ActorID    *int32       `json:"actor_id,omitempty"`
	Source     ChangeSource `json:"source"`
	CreatedAt  time.Time    `json:"created_at"`
}
