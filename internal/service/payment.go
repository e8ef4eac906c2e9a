package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/metrics"
	"go4rent-backend/internal/repository"
)

const transactionIDPrefix = "txn_"

type PaymentOptions struct {
	// CheckoutBaseURL is prefixed to the transaction id to form the checkout link.
	CheckoutBaseURL string
	GatewayTimeout  time.Duration
	Now             func() time.Time
}

type paymentService struct {
	tx        repository.Transactor
	payments  repository.PaymentRepository
	rentals   repository.RentalRepository
	equipment repository.EquipmentRepository
	authz     Authorizer
	gateway   PaymentGateway
	notifier  Notifier
	opts      PaymentOptions

	// dispatch runs the outbound gateway request off the caller's path.
	dispatch func(func())
}

func NewPaymentService(
	tx repository.Transactor,
	payments repository.PaymentRepository,
	rentals repository.RentalRepository,
	equipment repository.EquipmentRepository,
	authz Authorizer,
	gateway PaymentGateway,
	notifier Notifier,
	opts PaymentOptions,
) PaymentService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.GatewayTimeout <= 0 {
		opts.GatewayTimeout = 30 * time.Second
	}
	return &paymentService{
		tx:        tx,
		payments:  payments,
		rentals:   rentals,
		equipment: equipment,
		authz:     authz,
		gateway:   gateway,
		notifier:  notifier,
		opts:      opts,
		dispatch:  func(f func()) { go f() },
	}
}

func (s *paymentService) InitiatePayment(ctx context.Context, renterID, rentalID int32, method domain.PaymentMethod) (*domain.Payment, string, error) {
	logger.EnterMethod("paymentService.InitiatePayment", "renterID", renterID, "rentalID", rentalID, "method", method)
	defer observe("initiate_payment", time.Now())

	if !method.IsValid() {
		err := domain.ErrInvalidInput.WithReason("unknown payment method %q", method)
		logger.ExitMethodWithError("paymentService.InitiatePayment", err)
		return nil, "", err
	}

	var (
		payment *domain.Payment
		rental  *domain.Rental
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		r, err := tx.Rentals().LockByID(ctx, rentalID)
		if err != nil {
			return err
		}
		switch {
		case r.RenterID != renterID:
			return domain.ErrPaymentNotAllowed.WithReason("rental belongs to another renter").WithEntity(r.ID)
		case r.PaymentStatus == domain.RentalPaymentPaid:
			return domain.ErrPaymentNotAllowed.WithReason("rental is already paid").WithEntity(r.ID)
		case r.Status == domain.RentalStatusCompleted || r.Status == domain.RentalStatusCancelled:
			return domain.ErrPaymentNotAllowed.WithReason("rental is %s", r.Status).WithEntity(r.ID)
		}

		p := &domain.Payment{
			RentalID:      r.ID,
			PayerID:       renterID,
			Amount:        r.TotalAmount,
			Method:        method,
			TransactionID: transactionIDPrefix + uuid.NewString(),
			Status:        domain.PaymentStatusPending,
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		if err := recordChange(ctx, tx, domain.EntityPayment, p.ID, "status", "", string(p.Status), &renterID, domain.SourceUser); err != nil {
			return err
		}

		prev := r.PaymentStatus
		r.PaymentStatus = domain.RentalPaymentProcessing
		if err := tx.Rentals().UpdateStatus(ctx, r); err != nil {
			return err
		}
		if err := recordChange(ctx, tx, domain.EntityRental, r.ID, "payment_status", string(prev), string(r.PaymentStatus), &renterID, domain.SourceUser); err != nil {
			return err
		}
		payment, rental = p, r
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("paymentService.InitiatePayment", err)
		return nil, "", err
	}

	metrics.PaymentsInitiated.WithLabelValues(string(method)).Inc()
	s.requestPayment(ctx, payment)

	ev := newEvent(domain.EventPaymentInitiated, rental, nil, &renterID, s.opts.Now())
	ev.PaymentID = payment.ID
	notify(ctx, s.notifier, ev)

	checkoutURL := s.opts.CheckoutBaseURL + payment.TransactionID
	logger.ExitMethod("paymentService.InitiatePayment", "paymentID", payment.ID, "transactionID", payment.TransactionID)
	return payment, checkoutURL, nil
}

// requestPayment asks the gateway to collect the payment. A failure leaves the
// payment pending; the gateway callback or an admin settles it later.
func (s *paymentService) requestPayment(ctx context.Context, p *domain.Payment) {
	if s.gateway == nil {
		return
	}
	req := domain.GatewayRequest{TransactionID: p.TransactionID, Amount: p.Amount, Method: p.Method}
	ctx = context.WithoutCancel(ctx)
	s.dispatch(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.GatewayTimeout)
		defer cancel()
		if err := s.gateway.RequestPayment(ctx, req); err != nil {
			logger.ExternalFailure("payment_gateway", "RequestPayment", err, "paymentID", p.ID, "transactionID", req.TransactionID)
		}
	})
}

// callbackEffect is what a gateway outcome does to the payment and its rental.
type callbackEffect struct {
	payment       domain.PaymentStatus
	rentalPayment domain.RentalPaymentStatus
	rentalStatus  domain.RentalStatus // applied only while the rental is pending_payment
}

var callbackEffects = map[domain.GatewayOutcome]callbackEffect{
	domain.GatewayOutcomeSuccess:   {domain.PaymentStatusPaid, domain.RentalPaymentPaid, domain.RentalStatusApproved},
	domain.GatewayOutcomeFailed:    {domain.PaymentStatusFailed, domain.RentalPaymentFailed, domain.RentalStatusPaymentFailed},
	domain.GatewayOutcomeCancelled: {domain.PaymentStatusCancelledByGateway, domain.RentalPaymentPending, domain.RentalStatusPaymentFailed},
}

func (s *paymentService) HandleGatewayCallback(ctx context.Context, cb domain.GatewayCallback) (*domain.Payment, error) {
	logger.EnterMethod("paymentService.HandleGatewayCallback", "transactionID", cb.TransactionID, "outcome", cb.Outcome)
	defer observe("gateway_callback", time.Now())

	effect, ok := callbackEffects[cb.Outcome]
	if !ok || cb.TransactionID == "" {
		err := domain.ErrInvalidInput.WithReason("callback needs a transaction id and a known outcome")
		metrics.GatewayCallbacks.WithLabelValues(string(cb.Outcome), "invalid").Inc()
		logger.ExitMethodWithError("paymentService.HandleGatewayCallback", err)
		return nil, err
	}

	var (
		payment    *domain.Payment
		rental     *domain.Rental
		eq         *domain.Equipment
		prevRental domain.RentalStatus
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		p, err := tx.Payments().LockByTransactionID(ctx, cb.TransactionID)
		if err != nil {
			return err
		}
		if p.Status != domain.PaymentStatusPending {
			return domain.ErrAlreadyProcessed.WithReason("payment is already %s", p.Status).WithEntity(p.ID)
		}
		r, err := tx.Rentals().LockByID(ctx, p.RentalID)
		if err != nil {
			return err
		}
		// Read only for the owner id on the events; payment never moves equipment.
		e, err := tx.Equipment().GetByID(ctx, r.EquipmentID)
		if err != nil {
			return err
		}

		prevPayment := p.Status
		p.Status = effect.payment
		p.GatewayResponse = cb.Payload
		if err := tx.Payments().Update(ctx, p); err != nil {
			return err
		}
		if err := recordChange(ctx, tx, domain.EntityPayment, p.ID, "status", string(prevPayment), string(p.Status), nil, domain.SourceGateway); err != nil {
			return err
		}

		prev := *r
		r.PaymentStatus = effect.rentalPayment
		if r.Status == domain.RentalStatusPendingPayment {
			// Gateway approval leaves the equipment as it is. The approved ->
			// active transition occupies it.
			r.Status = effect.rentalStatus
		}
		if err := writeRentalPayment(ctx, tx, &prev, r, nil, domain.SourceGateway); err != nil {
			return err
		}
		payment, rental, eq, prevRental = p, r, e, prev.Status
		return nil
	})
	if err != nil {
		metrics.GatewayCallbacks.WithLabelValues(string(cb.Outcome), callbackResult(err)).Inc()
		logger.ExitMethodWithError("paymentService.HandleGatewayCallback", err, "transactionID", cb.TransactionID)
		return nil, err
	}

	metrics.GatewayCallbacks.WithLabelValues(string(cb.Outcome), "applied").Inc()
	logger.Transition("payment", payment.ID, string(domain.PaymentStatusPending), string(payment.Status), "transactionID", payment.TransactionID)
	s.notifyPayment(ctx, payment, rental, eq, prevRental, nil)
	logger.ExitMethod("paymentService.HandleGatewayCallback", "paymentID", payment.ID)
	return payment, nil
}

func callbackResult(err error) string {
	switch domain.KindOf(err) {
	case domain.KindConflict:
		return "duplicate"
	case domain.KindNotFound:
		return "unknown_transaction"
	}
	return "error"
}

func (s *paymentService) AdminSetPaymentStatus(ctx context.Context, actorID, paymentID int32, status domain.PaymentStatus, notes string) (*domain.Payment, error) {
	logger.EnterMethod("paymentService.AdminSetPaymentStatus", "actorID", actorID, "paymentID", paymentID, "status", status)
	defer observe("admin_set_payment_status", time.Now())

	if !status.IsValid() {
		err := domain.ErrInvalidStatus.WithReason("unknown payment status %q", status)
		logger.ExitMethodWithError("paymentService.AdminSetPaymentStatus", err)
		return nil, err
	}
	ok, err := s.authz.Can(ctx, actorID, domain.CapabilityManagePayments)
	if err != nil {
		logger.ExitMethodWithError("paymentService.AdminSetPaymentStatus", err)
		return nil, err
	}
	if !ok {
		err := domain.ErrUnauthorized.WithReason("missing capability %s", domain.CapabilityManagePayments)
		logger.ExitMethodWithError("paymentService.AdminSetPaymentStatus", err)
		return nil, err
	}

	var (
		payment     *domain.Payment
		rental      *domain.Rental
		eq          *domain.Equipment
		prevPayment domain.PaymentStatus
		prevRental  domain.RentalStatus
		changed     bool
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		p, err := tx.Payments().LockByID(ctx, paymentID)
		if err != nil {
			return err
		}
		r, err := tx.Rentals().LockByID(ctx, p.RentalID)
		if err != nil {
			return err
		}
		e, err := tx.Equipment().GetByID(ctx, r.EquipmentID)
		if err != nil {
			return err
		}
		payment, rental, eq, prevPayment, prevRental, changed = p, r, e, p.Status, r.Status, false
		if p.Status == status {
			return nil
		}

		p.Status = status
		if notes != "" {
			p.AdminNotes = notes
		}
		if err := tx.Payments().Update(ctx, p); err != nil {
			return err
		}
		if err := recordChange(ctx, tx, domain.EntityPayment, p.ID, "status", string(prevPayment), string(status), &actorID, domain.SourceAdmin); err != nil {
			return err
		}

		prev := *r
		switch status {
		case domain.PaymentStatusPaid:
			r.PaymentStatus = domain.RentalPaymentPaid
			if r.Status == domain.RentalStatusPendingPayment || r.Status == domain.RentalStatusPaymentFailed {
				r.Status = domain.RentalStatusApproved
			}
		case domain.PaymentStatusFailed:
			r.PaymentStatus = domain.RentalPaymentFailed
			if r.Status == domain.RentalStatusPendingPayment {
				r.Status = domain.RentalStatusPaymentFailed
			}
		case domain.PaymentStatusCancelledByGateway:
			r.PaymentStatus = domain.RentalPaymentPending
			if r.Status == domain.RentalStatusPendingPayment {
				r.Status = domain.RentalStatusPaymentFailed
			}
		}
		if err := writeRentalPayment(ctx, tx, &prev, r, &actorID, domain.SourceAdmin); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("paymentService.AdminSetPaymentStatus", err)
		return nil, err
	}
	if !changed {
		logger.ExitMethod("paymentService.AdminSetPaymentStatus", "paymentID", payment.ID, "unchanged", true)
		return payment, nil
	}

	logger.Transition("payment", payment.ID, string(prevPayment), string(payment.Status), "actorID", actorID, "notes", notes)
	s.notifyPayment(ctx, payment, rental, eq, prevRental, &actorID)
	logger.ExitMethod("paymentService.AdminSetPaymentStatus", "paymentID", payment.ID)
	return payment, nil
}

// writeRentalPayment persists the rental side of a payment change, if any.
func writeRentalPayment(ctx context.Context, tx repository.Tx, prev, next *domain.Rental, actorID *int32, source domain.ChangeSource) error {
	if prev.Status == next.Status && prev.PaymentStatus == next.PaymentStatus {
		return nil
	}
	if err := tx.Rentals().UpdateStatus(ctx, next); err != nil {
		return err
	}
	if err := recordChange(ctx, tx, domain.EntityRental, next.ID, "payment_status", string(prev.PaymentStatus), string(next.PaymentStatus), actorID, source); err != nil {
		return err
	}
	return recordChange(ctx, tx, domain.EntityRental, next.ID, "status", string(prev.Status), string(next.Status), actorID, source)
}

func (s *paymentService) notifyPayment(ctx context.Context, p *domain.Payment, r *domain.Rental, eq *domain.Equipment, prevRental domain.RentalStatus, actorID *int32) {
	now := s.opts.Now()
	pev := newEvent(domain.PaymentEventType(p.Status), r, eq, actorID, now)
	pev.PaymentID = p.ID
	events := []domain.Event{pev}
	if r.Status != prevRental {
		metrics.RentalTransitions.WithLabelValues(string(prevRental), string(r.Status)).Inc()
		logger.Transition("rental", r.ID, string(prevRental), string(r.Status), "paymentID", p.ID)
		rev := newEvent(domain.RentalEventType(r.Status), r, eq, actorID, now)
		rev.PaymentID = p.ID
		events = append(events, rev)
	}
	notify(ctx, s.notifier, events...)
}

// GetPayment returns the payment to its payer, the rental's renter, the
// equipment owner or an admin.
func (s *paymentService) GetPayment(ctx context.Context, actorID, paymentID int32) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.PayerID == actorID {
		return p, nil
	}
	r, err := s.rentals.GetByID(ctx, p.RentalID)
	if err != nil {
		return nil, err
	}
	if r.RenterID == actorID {
		return p, nil
	}
	eq, err := s.equipment.GetByID(ctx, r.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq.IsOwnedBy(actorID) {
		return p, nil
	}
	roles, err := s.authz.Roles(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if roles.Has(domain.RoleAdmin) {
		return p, nil
	}
	return nil, domain.ErrUnauthorized.WithEntity(paymentID)
}

func (s *paymentService) ListPayments(ctx context.Context, actorID int32, scope ListScope, filter domain.PaymentFilter, page, pageSize int32) ([]domain.Payment, int32, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, domain.ErrInvalidStatus.WithReason("unknown payment status %q", filter.Status)
	}
	switch scope {
	case ScopeMine, "":
		filter.PayerID, filter.OwnerID = actorID, 0
	case ScopeOwned:
		filter.PayerID, filter.OwnerID = 0, actorID
	case ScopeAll:
		ok, err := s.authz.Can(ctx, actorID, domain.CapabilityManagePayments)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, domain.ErrUnauthorized.WithReason("listing all payments requires %s", domain.CapabilityManagePayments)
		}
	default:
		return nil, 0, domain.ErrInvalidInput.WithReason("unknown scope %q", scope)
	}
	page, pageSize = normalizePage(page, pageSize)
	return s.payments.List(ctx, filter, page, pageSize)
}
