package grpc

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "go4rent-backend/api/gen/v1"
	"go4rent-backend/internal/domain"
)

func MapDomainRentalToProto(r *domain.Rental) *pb.Rental {
	if r == nil {
		return nil
	}
	out := &pb.Rental{
		Id:            r.ID,
		RenterId:      r.RenterID,
		EquipmentId:   r.EquipmentID,
		StartDatetime: timestamppb.New(r.StartDatetime),
		EndDatetime:   timestamppb.New(r.EndDatetime),
		TotalAmount:   r.TotalAmount.StringFixed(2),
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		CreatedAt:     timestamppb.New(r.CreatedAt),
		UpdatedAt:     timestamppb.New(r.UpdatedAt),
	}
	if r.DeliveryAddress != nil {
		out.DeliveryAddress = *r.DeliveryAddress
	}
	if r.PickupAddress != nil {
		out.PickupAddress = *r.PickupAddress
	}
	return out
}

// MapDomainPaymentToProto omits the raw gateway response.
func MapDomainPaymentToProto(p *domain.Payment) *pb.Payment {
	if p == nil {
		return nil
	}
	return &pb.Payment{
		Id:            p.ID,
		RentalId:      p.RentalID,
		PayerId:       p.PayerID,
		Amount:        p.Amount.StringFixed(2),
		PaymentMethod: string(p.Method),
		TransactionId: p.TransactionID,
		Status:        string(p.Status),
		AdminNotes:    p.AdminNotes,
		CreatedAt:     timestamppb.New(p.CreatedAt),
		UpdatedAt:     timestamppb.New(p.UpdatedAt),
	}
}

func mapRentals(rentals []domain.Rental) []*pb.Rental {
	out := make([]*pb.Rental, len(rentals))
	for i := range rentals {
		out[i] = MapDomainRentalToProto(&rentals[i])
	}
	return out
}

func mapPayments(payments []domain.Payment) []*pb.Payment {
	out := make([]*pb.Payment, len(payments))
	for i := range payments {
		out[i] = MapDomainPaymentToProto(&payments[i])
	}
	return out
}
