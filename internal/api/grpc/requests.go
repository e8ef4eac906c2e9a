package grpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "go4rent-backend/api/gen/v1"
)

// Validated forms of the wire requests. Proto3 scalars carry no presence, so
// a zero value fails the required checks below.

type createRentalInput struct {
	EquipmentID     int32     `validate:"required,gt=0"`
	StartDatetime   time.Time `validate:"required"`
	EndDatetime     time.Time `validate:"required,gtfield=StartDatetime"`
	DeliveryAddress *string
	PickupAddress   *string
}

func newCreateRentalInput(req *pb.CreateRentalRequest) *createRentalInput {
	return &createRentalInput{
		EquipmentID:     req.GetEquipmentId(),
		StartDatetime:   asTime(req.GetStartDatetime()),
		EndDatetime:     asTime(req.GetEndDatetime()),
		DeliveryAddress: optionalString(req.GetDeliveryAddress()),
		PickupAddress:   optionalString(req.GetPickupAddress()),
	}
}

type transitionRentalInput struct {
	RentalID int32  `validate:"required,gt=0"`
	Status   string `validate:"required,oneof=pending_approval pending_payment approved payment_failed active completed rejected cancelled"`
}

type idInput struct {
	ID int32 `validate:"required,gt=0"`
}

type listRentalsInput struct {
	Scope    string `validate:"omitempty,oneof=mine owned all"`
	Status   string `validate:"omitempty,oneof=pending_approval pending_payment approved payment_failed active completed rejected cancelled"`
	Page     int32  `validate:"gte=0"`
	PageSize int32  `validate:"gte=0,lte=100"`
}

type initiatePaymentInput struct {
	RentalID      int32  `validate:"required,gt=0"`
	PaymentMethod string `validate:"required,oneof=card wallet bank_transfer"`
}

type adminSetPaymentStatusInput struct {
	PaymentID  int32  `validate:"required,gt=0"`
	Status     string `validate:"required,oneof=pending paid failed refunded cancelled_by_gateway"`
	AdminNotes string `validate:"max=1000"`
}

type listPaymentsInput struct {
	Scope    string `validate:"omitempty,oneof=mine owned all"`
	RentalID int32  `validate:"gte=0"`
	Status   string `validate:"omitempty,oneof=pending paid failed refunded cancelled_by_gateway"`
	Page     int32  `validate:"gte=0"`
	PageSize int32  `validate:"gte=0,lte=100"`
}

func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
