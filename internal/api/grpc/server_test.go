package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "go4rent-backend/api/gen/v1"
	"go4rent-backend/internal/api/grpc/interceptor"
	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/security"
	"go4rent-backend/internal/service"
)

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, req service.CreateRentalRequest) (*domain.Rental, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) TransitionRentalStatus(ctx context.Context, actorID, rentalID int32, to domain.RentalStatus) (*domain.Rental, error) {
	args := m.Called(ctx, actorID, rentalID, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) GetRental(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, actorID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) ListRentals(ctx context.Context, actorID int32, scope service.ListScope, st domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, actorID, scope, st, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) InitiatePayment(ctx context.Context, renterID, rentalID int32, method domain.PaymentMethod) (*domain.Payment, string, error) {
	args := m.Called(ctx, renterID, rentalID, method)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.String(1), args.Error(2)
}

func (m *MockPaymentService) HandleGatewayCallback(ctx context.Context, cb domain.GatewayCallback) (*domain.Payment, error) {
	args := m.Called(ctx, cb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) AdminSetPaymentStatus(ctx context.Context, actorID, paymentID int32, st domain.PaymentStatus, notes string) (*domain.Payment, error) {
	args := m.Called(ctx, actorID, paymentID, st, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPayment(ctx context.Context, actorID, paymentID int32) (*domain.Payment, error) {
	args := m.Called(ctx, actorID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, actorID int32, scope service.ListScope, filter domain.PaymentFilter, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, actorID, scope, filter, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}

const testSecret = "test-secret"

type testClients struct {
	rentals  pb.RentalServiceClient
	payments pb.PaymentServiceClient
}

// startServer runs both API services behind the auth interceptor on an
// in-memory listener and returns clients for them.
func startServer(t *testing.T, rentals service.RentalService, payments service.PaymentService) testClients {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor.NewAuthInterceptor(security.NewTokenManager(testSecret)).Unary()),
	)
	pb.RegisterRentalServiceServer(srv, NewRentalHandler(rentals))
	pb.RegisterPaymentServiceServer(srv, NewPaymentHandler(payments))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return testClients{rentals: pb.NewRentalServiceClient(conn), payments: pb.NewPaymentServiceClient(conn)}
}

func authed(t *testing.T, userID int32) context.Context {
	t.Helper()
	token, err := security.NewTokenManager(testSecret).GenerateAccessToken(userID, "user@example.com", nil, time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestRentalService_OverGRPC(t *testing.T) {
	start := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	rental := &domain.Rental{
		ID:            5,
		RenterID:      7,
		EquipmentID:   10,
		StartDatetime: start,
		EndDatetime:   start.Add(26 * time.Hour),
		TotalAmount:   decimal.RequireFromString("175"),
		Status:        domain.RentalStatusPendingApproval,
		PaymentStatus: domain.RentalPaymentPending,
	}

	t.Run("Get uses the token's user id", func(t *testing.T) {
		svc := new(MockRentalService)
		c := startServer(t, svc, new(MockPaymentService))
		svc.On("GetRental", mock.Anything, int32(7), int32(5)).Return(rental, nil)

		// A spoofed user-id header is replaced by the interceptor.
		ctx := metadata.AppendToOutgoingContext(authed(t, 7), "user-id", "99")
		resp, err := c.rentals.GetRental(ctx, &pb.GetRentalRequest{RentalId: 5})
		require.NoError(t, err)
		assert.Equal(t, int32(5), resp.Rental.Id)
		assert.Equal(t, "175.00", resp.Rental.TotalAmount)
		assert.Equal(t, "pending_approval", resp.Rental.Status)
		assert.True(t, resp.Rental.StartDatetime.AsTime().Equal(start))
		assert.Empty(t, resp.Rental.DeliveryAddress)
		svc.AssertExpectations(t)
	})

	t.Run("Create passes the request through", func(t *testing.T) {
		svc := new(MockRentalService)
		c := startServer(t, svc, new(MockPaymentService))
		addr := "1 Main St"
		svc.On("CreateRental", mock.Anything, mock.MatchedBy(func(req service.CreateRentalRequest) bool {
			return req.RenterID == 7 && req.EquipmentID == 10 && req.Start.Equal(start) &&
				req.DeliveryAddress != nil && *req.DeliveryAddress == addr && req.PickupAddress == nil
		})).Return(rental, nil)

		resp, err := c.rentals.CreateRental(authed(t, 7), &pb.CreateRentalRequest{
			EquipmentId:     10,
			StartDatetime:   timestamppb.New(start),
			EndDatetime:     timestamppb.New(start.Add(26 * time.Hour)),
			DeliveryAddress: addr,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(5), resp.Rental.Id)
		svc.AssertExpectations(t)
	})

	t.Run("Create without an end time", func(t *testing.T) {
		svc := new(MockRentalService)
		c := startServer(t, svc, new(MockPaymentService))

		_, err := c.rentals.CreateRental(authed(t, 7), &pb.CreateRentalRequest{
			EquipmentId:   10,
			StartDatetime: timestamppb.New(start),
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		svc.AssertNotCalled(t, "CreateRental", mock.Anything, mock.Anything)
	})

	t.Run("Missing token", func(t *testing.T) {
		svc := new(MockRentalService)
		c := startServer(t, svc, new(MockPaymentService))

		_, err := c.rentals.GetRental(context.Background(), &pb.GetRentalRequest{RentalId: 5})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		svc.AssertNotCalled(t, "GetRental", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid token", func(t *testing.T) {
		svc := new(MockRentalService)
		c := startServer(t, svc, new(MockPaymentService))
		token, err := security.NewTokenManager("other-secret").GenerateAccessToken(7, "", nil, time.Hour)
		require.NoError(t, err)
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)

		_, err = c.rentals.GetRental(ctx, &pb.GetRentalRequest{RentalId: 5})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("Request validation", func(t *testing.T) {
		svc := new(MockRentalService)
		c := startServer(t, svc, new(MockPaymentService))

		_, err := c.rentals.TransitionRentalStatus(authed(t, 7), &pb.TransitionRentalStatusRequest{RentalId: 5, Status: "shipped"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		svc.AssertNotCalled(t, "TransitionRentalStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Domain errors map to codes", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want codes.Code
		}{
			{"unauthorized", domain.ErrUnauthorized, codes.PermissionDenied},
			{"not found", domain.ErrRentalNotFound.WithEntity(5), codes.NotFound},
			{"terminal", domain.ErrRentalTerminal.WithEntity(5), codes.FailedPrecondition},
			{"unavailable", domain.ErrEquipmentUnavailable.WithEntity(10), codes.FailedPrecondition},
			{"invalid", domain.ErrInvalidDuration, codes.InvalidArgument},
			{"unexpected", assert.AnError, codes.Internal},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := new(MockRentalService)
				c := startServer(t, svc, new(MockPaymentService))
				svc.On("TransitionRentalStatus", mock.Anything, int32(7), int32(5), domain.RentalStatusApproved).Return(nil, tt.err)

				_, err := c.rentals.TransitionRentalStatus(authed(t, 7), &pb.TransitionRentalStatusRequest{RentalId: 5, Status: "approved"})
				assert.Equal(t, tt.want, status.Code(err))
			})
		}
	})

	t.Run("List defaults", func(t *testing.T) {
		svc := new(MockRentalService)
		c := startServer(t, svc, new(MockPaymentService))
		svc.On("ListRentals", mock.Anything, int32(7), service.ListScope("owned"), domain.RentalStatus(""), int32(0), int32(0)).
			Return([]domain.Rental{*rental}, int32(1), nil)

		resp, err := c.rentals.ListRentals(authed(t, 7), &pb.ListRentalsRequest{Scope: "owned"})
		require.NoError(t, err)
		assert.Equal(t, int32(1), resp.TotalCount)
		assert.Len(t, resp.Rentals, 1)
	})
}

func TestPaymentService_OverGRPC(t *testing.T) {
	payment := &domain.Payment{
		ID:            3,
		RentalID:      5,
		PayerID:       7,
		Amount:        decimal.RequireFromString("42.5"),
		Method:        domain.PaymentMethodCard,
		TransactionID: "txn_abc",
		Status:        domain.PaymentStatusPending,
	}

	t.Run("Initiate returns checkout url", func(t *testing.T) {
		svc := new(MockPaymentService)
		c := startServer(t, new(MockRentalService), svc)
		svc.On("InitiatePayment", mock.Anything, int32(7), int32(5), domain.PaymentMethodCard).
			Return(payment, "https://pay.example.com/checkout/txn_abc", nil)

		resp, err := c.payments.InitiatePayment(authed(t, 7), &pb.InitiatePaymentRequest{RentalId: 5, PaymentMethod: "card"})
		require.NoError(t, err)
		assert.Equal(t, "42.50", resp.Payment.Amount)
		assert.Equal(t, "txn_abc", resp.Payment.TransactionId)
		assert.Equal(t, "https://pay.example.com/checkout/txn_abc", resp.CheckoutUrl)
	})

	t.Run("Unknown method is rejected before the service", func(t *testing.T) {
		svc := new(MockPaymentService)
		c := startServer(t, new(MockRentalService), svc)

		_, err := c.payments.InitiatePayment(authed(t, 7), &pb.InitiatePaymentRequest{RentalId: 5, PaymentMethod: "cash"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		svc.AssertNotCalled(t, "InitiatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Admin status", func(t *testing.T) {
		svc := new(MockPaymentService)
		c := startServer(t, new(MockRentalService), svc)
		paid := *payment
		paid.Status = domain.PaymentStatusPaid
		paid.AdminNotes = "wire received"
		svc.On("AdminSetPaymentStatus", mock.Anything, int32(1), int32(3), domain.PaymentStatusPaid, "wire received").Return(&paid, nil)

		resp, err := c.payments.AdminSetPaymentStatus(authed(t, 1),
			&pb.AdminSetPaymentStatusRequest{PaymentId: 3, Status: "paid", AdminNotes: "wire received"})
		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Payment.Status)
		assert.Equal(t, "wire received", resp.Payment.AdminNotes)
	})

	t.Run("Payment not found", func(t *testing.T) {
		svc := new(MockPaymentService)
		c := startServer(t, new(MockRentalService), svc)
		svc.On("GetPayment", mock.Anything, int32(7), int32(3)).Return(nil, domain.ErrPaymentNotFound.WithEntity(3))

		_, err := c.payments.GetPayment(authed(t, 7), &pb.GetPaymentRequest{PaymentId: 3})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("List with filter", func(t *testing.T) {
		svc := new(MockPaymentService)
		c := startServer(t, new(MockRentalService), svc)
		filter := domain.PaymentFilter{RentalID: 5, Status: domain.PaymentStatusPending}
		svc.On("ListPayments", mock.Anything, int32(7), service.ScopeMine, filter, int32(2), int32(10)).
			Return([]domain.Payment{*payment}, int32(11), nil)

		resp, err := c.payments.ListPayments(authed(t, 7), &pb.ListPaymentsRequest{
			Scope: "mine", RentalId: 5, Status: "pending", Page: 2, PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(11), resp.TotalCount)
		assert.Len(t, resp.Payments, 1)
	})

	t.Run("Unknown status filter", func(t *testing.T) {
		svc := new(MockPaymentService)
		c := startServer(t, new(MockRentalService), svc)

		_, err := c.payments.ListPayments(authed(t, 7), &pb.ListPaymentsRequest{Status: "settled"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestMapDomainRentalToProto(t *testing.T) {
	assert.Nil(t, MapDomainRentalToProto(nil))

	addr := "2 Dock Rd"
	at := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	got := MapDomainRentalToProto(&domain.Rental{
		ID:            1,
		TotalAmount:   decimal.RequireFromString("9.5"),
		Status:        domain.RentalStatusApproved,
		PaymentStatus: domain.RentalPaymentPaid,
		PickupAddress: &addr,
		CreatedAt:     at,
	})
	assert.Equal(t, "9.50", got.TotalAmount)
	assert.Equal(t, "approved", got.Status)
	assert.Equal(t, "paid", got.PaymentStatus)
	assert.Equal(t, addr, got.PickupAddress)
	assert.Empty(t, got.DeliveryAddress)
	assert.True(t, got.CreatedAt.AsTime().Equal(at))
}
