package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusRented      EquipmentStatus = "rented"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusUnavailable EquipmentStatus = "unavailable"
)

type Equipment struct {
	ID                      int32           `json:"id"`
	CategoryID              int32           `json:"category_id"`
	OwnerID                 *int32          `json:"owner_id,omitempty"` // nil for company-owned stock
	BarcodeValue            string          `json:"barcode_value"`
	Status                  EquipmentStatus `json:"status"`
	MinRentalPeriodHours    int             `json:"min_rental_period_hours"`
	MaxRentalPeriodHours    int             `json:"max_rental_period_hours"`
	RewardsPointsAcceptable bool            `json:"rewards_points_acceptable"`
	RentalCounter           int32           `json:"rental_counter"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the equipment.
func (e *Equipment) IsOwnedBy(userID int32) bool {
	return e.OwnerID != nil && *e.OwnerID == userID
}

// AcceptsDuration reports whether a rental of the given length fits the configured bounds.
func (e *Equipment) AcceptsDuration(hours int) bool {
	return hours >= e.MinRentalPeriodHours && hours <= e.MaxRentalPeriodHours
}
