package grpc

import (
	"context"

	"github.com/go-playground/validator/v10"

	pb "go4rent-backend/api/gen/v1"
	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/service"
)

type RentalHandler struct {
	pb.UnimplementedRentalServiceServer
	rentalSvc service.RentalService
	validate  *validator.Validate
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, validate: validator.New()}
}

func (h *RentalHandler) CreateRental(ctx context.Context, req *pb.CreateRentalRequest) (*pb.CreateRentalResponse, error) {
	userID, err := actorIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := newCreateRentalInput(req)
	if err := h.validate.Struct(in); err != nil {
		return nil, toStatus(err)
	}
	rt, err := h.rentalSvc.CreateRental(ctx, service.CreateRentalRequest{
		RenterID:        userID,
		EquipmentID:     in.EquipmentID,
		Start:           in.StartDatetime,
		End:             in.EndDatetime,
		DeliveryAddress: in.DeliveryAddress,
		PickupAddress:   in.PickupAddress,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateRentalResponse{Rental: MapDomainRentalToProto(rt)}, nil
}

func (h *RentalHandler) TransitionRentalStatus(ctx context.Context, req *pb.TransitionRentalStatusRequest) (*pb.TransitionRentalStatusResponse, error) {
	userID, err := actorIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := &transitionRentalInput{RentalID: req.GetRentalId(), Status: req.GetStatus()}
	if err := h.validate.Struct(in); err != nil {
		return nil, toStatus(err)
	}
	rt, err := h.rentalSvc.TransitionRentalStatus(ctx, userID, in.RentalID, domain.RentalStatus(in.Status))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TransitionRentalStatusResponse{Rental: MapDomainRentalToProto(rt)}, nil
}

func (h *RentalHandler) GetRental(ctx context.Context, req *pb.GetRentalRequest) (*pb.GetRentalResponse, error) {
	userID, err := actorIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := &idInput{ID: req.GetRentalId()}
	if err := h.validate.Struct(in); err != nil {
		return nil, toStatus(err)
	}
	rt, err := h.rentalSvc.GetRental(ctx, userID, in.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetRentalResponse{Rental: MapDomainRentalToProto(rt)}, nil
}

func (h *RentalHandler) ListRentals(ctx context.Context, req *pb.ListRentalsRequest) (*pb.ListRentalsResponse, error) {
	userID, err := actorIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := &listRentalsInput{Scope: req.GetScope(), Status: req.GetStatus(), Page: req.GetPage(), PageSize: req.GetPageSize()}
	if err := h.validate.Struct(in); err != nil {
		return nil, toStatus(err)
	}
	rentals, count, err := h.rentalSvc.ListRentals(ctx, userID, service.ListScope(in.Scope), domain.RentalStatus(in.Status), in.Page, in.PageSize)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListRentalsResponse{Rentals: mapRentals(rentals), TotalCount: count}, nil
}
