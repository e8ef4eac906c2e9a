package grpc

import (
	"context"

	"github.com/go-playground/validator/v10"

	pb "go4rent-backend/api/gen/v1"
	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/service"
)

type PaymentHandler struct {
	pb.UnimplementedPaymentServiceServer
	paymentSvc service.PaymentService
	validate   *validator.Validate
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, validate: validator.New()}
}

func (h *PaymentHandler) InitiatePayment(ctx context.Context, req *pb.InitiatePaymentRequest) (*pb.InitiatePaymentResponse, error) {
	userID, err := actorIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := &initiatePaymentInput{RentalID: req.GetRentalId(), PaymentMethod: req.GetPaymentMethod()}
	if err := h.validate.Struct(in); err != nil {
		return nil, toStatus(err)
	}
	p, checkoutURL, err := h.paymentSvc.InitiatePayment(ctx, userID, in.RentalID, domain.PaymentMethod(in.PaymentMethod))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.InitiatePaymentResponse{Payment: MapDomainPaymentToProto(p), CheckoutUrl: checkoutURL}, nil
}

func (h *PaymentHandler) AdminSetPaymentStatus(ctx context.Context, req *pb.AdminSetPaymentStatusRequest) (*pb.AdminSetPaymentStatusResponse, error) {
	userID, err := actorIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := &adminSetPaymentStatusInput{PaymentID: req.GetPaymentId(), Status: req.GetStatus(), AdminNotes: req.GetAdminNotes()}
	if err := h.validate.Struct(in); err != nil {
		return nil, toStatus(err)
	}
	p, err := h.paymentSvc.AdminSetPaymentStatus(ctx, userID, in.PaymentID, domain.PaymentStatus(in.Status), in.AdminNotes)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AdminSetPaymentStatusResponse{Payment: MapDomainPaymentToProto(p)}, nil
}

func (h *PaymentHandler) GetPayment(ctx context.Context, req *pb.GetPaymentRequest) (*pb.GetPaymentResponse, error) {
	userID, err := actorIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := &idInput{ID: req.GetPaymentId()}
	if err := h.validate.Struct(in); err != nil {
		return nil, toStatus(err)
	}
	p, err := h.paymentSvc.GetPayment(ctx, userID, in.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetPaymentResponse{Payment: MapDomainPaymentToProto(p)}, nil
}

func (h *PaymentHandler) ListPayments(ctx context.Context, req *pb.ListPaymentsRequest) (*pb.ListPaymentsResponse, error) {
	userID, err := actorIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := &listPaymentsInput{Scope: req.GetScope(), RentalID: req.GetRentalId(), Status: req.GetStatus(), Page: req.GetPage(), PageSize: req.GetPageSize()}
	if err := h.validate.Struct(in); err != nil {
		return nil, toStatus(err)
	}
	filter := domain.PaymentFilter{RentalID: in.RentalID, Status: domain.PaymentStatus(in.Status)}
	payments, count, err := h.paymentSvc.ListPayments(ctx, userID, service.ListScope(in.Scope), filter, in.Page, in.PageSize)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListPaymentsResponse{Payments: mapPayments(payments), TotalCount: count}, nil
}
