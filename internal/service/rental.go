package service

import (
	"context"
	"time"
	"unicode/utf8"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/metrics"
	"go4rent-backend/internal/repository"
	"go4rent-backend/internal/utils"
)

// RentalOptions carries the rental settings from configuration.
type RentalOptions struct {
	// PaymentFirst starts new rentals in pending_payment instead of pending_approval.
	PaymentFirst     bool
	MaxAddressLength int
	Rates            utils.Rates
	Now              func() time.Time
}

type rentalService struct {
	tx        repository.Transactor
	rentals   repository.RentalRepository
	equipment repository.EquipmentRepository
	authz     Authorizer
	notifier  Notifier
	opts      RentalOptions
}

func NewRentalService(
	tx repository.Transactor,
	rentals repository.RentalRepository,
	equipment repository.EquipmentRepository,
	authz Authorizer,
	notifier Notifier,
	opts RentalOptions,
) RentalService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &rentalService{
		tx:        tx,
		rentals:   rentals,
		equipment: equipment,
		authz:     authz,
		notifier:  notifier,
		opts:      opts,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.CreateRental", "renterID", req.RenterID, "equipmentID", req.EquipmentID)
	defer observe("create_rental", time.Now())

	ok, err := s.authz.Can(ctx, req.RenterID, domain.CapabilityCreateOwnRentals)
	if err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err)
		return nil, err
	}
	if !ok {
		err := domain.ErrUnauthorized.WithReason("missing capability %s", domain.CapabilityCreateOwnRentals)
		logger.ExitMethodWithError("rentalService.CreateRental", err)
		return nil, err
	}

	hours, err := s.validateCreate(req)
	if err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err)
		return nil, err
	}

	initial := domain.RentalStatusPendingApproval
	if s.opts.PaymentFirst {
		initial = domain.RentalStatusPendingPayment
	}

	var (
		created *domain.Rental
		eq      *domain.Equipment
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		e, err := tx.Equipment().GetByID(ctx, req.EquipmentID)
		if err != nil {
			return err
		}
		if e.Status != domain.EquipmentStatusAvailable {
			return domain.ErrEquipmentUnavailable.WithEntity(e.ID)
		}
		if !e.AcceptsDuration(hours) {
			return domain.ErrInvalidDuration.
				WithReason("%d hours is outside the allowed %d-%d hours", hours, e.MinRentalPeriodHours, e.MaxRentalPeriodHours).
				WithEntity(e.ID)
		}

		cost := utils.CalculateRentalCost(hours, s.opts.Rates)
		r := &domain.Rental{
			RenterID:        req.RenterID,
			EquipmentID:     e.ID,
			StartDatetime:   req.Start,
			EndDatetime:     req.End,
			TotalAmount:     cost.TotalCost,
			Status:          initial,
			PaymentStatus:   domain.RentalPaymentPending,
			DeliveryAddress: req.DeliveryAddress,
			PickupAddress:   req.PickupAddress,
		}
		if err := tx.Rentals().Create(ctx, r); err != nil {
			return err
		}
		if err := recordChange(ctx, tx, domain.EntityRental, r.ID, "status", "", string(r.Status), &req.RenterID, domain.SourceUser); err != nil {
			return err
		}
		created, eq = r, e
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err)
		return nil, err
	}

	logger.Info("Rental requested", "rentalID", created.ID, "equipmentID", created.EquipmentID, "status", created.Status, "total", created.TotalAmount.String())
	notify(ctx, s.notifier, newEvent(domain.EventRentalRequested, created, eq, &req.RenterID, s.opts.Now()))
	logger.ExitMethod("rentalService.CreateRental", "rentalID", created.ID)
	return created, nil
}

func (s *rentalService) validateCreate(req CreateRentalRequest) (int, error) {
	if req.RenterID <= 0 || req.EquipmentID <= 0 {
		return 0, domain.ErrInvalidInput.WithReason("renter and equipment are required")
	}
	hours, err := utils.DurationHours(req.Start, req.End)
	if err != nil {
		return 0, domain.ErrInvalidInput.WithReason("%v", err)
	}
	if req.Start.Before(s.opts.Now()) {
		return 0, domain.ErrInvalidInput.WithReason("start must not be in the past")
	}
	if s.opts.MaxAddressLength > 0 {
		for name, addr := range map[string]*string{"delivery_address": req.DeliveryAddress, "pickup_address": req.PickupAddress} {
			if addr != nil && utf8.RuneCountInString(*addr) > s.opts.MaxAddressLength {
				return 0, domain.ErrInvalidInput.WithReason("%s exceeds %d characters", name, s.opts.MaxAddressLength)
			}
		}
	}
	return hours, nil
}

func (s *rentalService) TransitionRentalStatus(ctx context.Context, actorID, rentalID int32, to domain.RentalStatus) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.TransitionRentalStatus", "actorID", actorID, "rentalID", rentalID, "to", to)
	defer observe("transition_rental", time.Now())

	rental, eq, from, decision, err := s.transition(ctx, actorID, rentalID, to)
	if err != nil {
		metrics.RentalTransitionRejections.WithLabelValues(string(domain.KindOf(err))).Inc()
		logger.ExitMethodWithError("rentalService.TransitionRentalStatus", err, "rentalID", rentalID)
		return nil, err
	}
	if from == to {
		logger.ExitMethod("rentalService.TransitionRentalStatus", "rentalID", rental.ID, "unchanged", true)
		return rental, nil
	}

	metrics.RentalTransitions.WithLabelValues(string(from), string(to)).Inc()
	logger.Transition("rental", rental.ID, string(from), string(to), "actorID", actorID, "rule", decision.Rule, "equipmentStatus", eq.Status)
	notify(ctx, s.notifier, newEvent(domain.RentalEventType(to), rental, eq, &actorID, s.opts.Now()))
	logger.ExitMethod("rentalService.TransitionRentalStatus", "rentalID", rental.ID)
	return rental, nil
}

// transition runs the locked read, decide, write sequence. Rows are locked
// rental first, then equipment, and every refusal is found before the first write.
// A permitted move to the current status returns with from == to and writes nothing.
func (s *rentalService) transition(ctx context.Context, actorID, rentalID int32, to domain.RentalStatus) (*domain.Rental, *domain.Equipment, domain.RentalStatus, TransitionDecision, error) {
	if !to.IsValid() {
		return nil, nil, "", TransitionDecision{}, domain.ErrInvalidStatus.WithReason("unknown rental status %q", to)
	}
	actor, caps, err := capabilities(ctx, s.authz, actorID, domain.CapabilityCancelRentals, domain.CapabilityManageRentals)
	if err != nil {
		return nil, nil, "", TransitionDecision{}, err
	}

	var (
		result   *domain.Rental
		eq       *domain.Equipment
		from     domain.RentalStatus
		decision TransitionDecision
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		r, err := tx.Rentals().LockByID(ctx, rentalID)
		if err != nil {
			return err
		}
		e, err := tx.Equipment().LockByID(ctx, r.EquipmentID)
		if err != nil {
			return err
		}

		facts := ActorFacts{
			IsRenter:  r.RenterID == actorID,
			IsOwner:   e.IsOwnedBy(actorID),
			IsAdmin:   actor.IsAdmin(),
			CanCancel: caps[domain.CapabilityCancelRentals],
			CanManage: caps[domain.CapabilityManageRentals],
		}
		d, err := DecideTransition(facts, r.Status, to)
		if err != nil {
			return err
		}
		if r.Status == to {
			// Allowed but already there: nothing to write.
			result, eq, from, decision = r, e, r.Status, d
			return nil
		}
		if err := checkEquipmentEffect(e, d.Effect); err != nil {
			return err
		}

		prev := r.Status
		r.Status = to
		if err := tx.Rentals().UpdateStatus(ctx, r); err != nil {
			return err
		}
		if err := recordChange(ctx, tx, domain.EntityRental, r.ID, "status", string(prev), string(to), &actorID, d.Source); err != nil {
			return err
		}
		if err := applyEquipmentEffect(ctx, tx, r, e, d.Effect, &actorID, d.Source); err != nil {
			return err
		}
		if to == domain.RentalStatusCompleted {
			if err := tx.Equipment().IncrementRentalCounter(ctx, e.ID); err != nil {
				return err
			}
			e.RentalCounter++
		}

		result, eq, from, decision = r, e, prev, d
		return nil
	})
	if err != nil {
		return nil, nil, "", TransitionDecision{}, err
	}
	return result, eq, from, decision, nil
}

// checkEquipmentEffect refuses an occupy on equipment that cannot be rented.
func checkEquipmentEffect(eq *domain.Equipment, effect EquipmentEffect) error {
	if effect != EffectOccupy {
		return nil
	}
	switch eq.Status {
	case domain.EquipmentStatusAvailable, domain.EquipmentStatusRented:
		return nil
	}
	return domain.ErrEquipmentUnavailable.WithReason("equipment is %s", eq.Status).WithEntity(eq.ID)
}

// applyEquipmentEffect writes the equipment side of a transition. A release
// only frees rented equipment, and only when no other rental of it is active.
func applyEquipmentEffect(ctx context.Context, tx repository.Tx, rental *domain.Rental, eq *domain.Equipment, effect EquipmentEffect, actorID *int32, source domain.ChangeSource) error {
	var next domain.EquipmentStatus
	switch effect {
	case EffectOccupy:
		if eq.Status == domain.EquipmentStatusRented {
			return nil
		}
		next = domain.EquipmentStatusRented
	case EffectRelease:
		if eq.Status != domain.EquipmentStatusRented {
			return nil
		}
		others, err := tx.Rentals().CountActiveByEquipment(ctx, eq.ID, rental.ID)
		if err != nil {
			return err
		}
		if others > 0 {
			logger.Debug("Equipment kept rented", "equipmentID", eq.ID, "activeRentals", others)
			return nil
		}
		next = domain.EquipmentStatusAvailable
	default:
		return nil
	}

	if err := tx.Equipment().UpdateStatus(ctx, eq.ID, next); err != nil {
		return err
	}
	if err := recordChange(ctx, tx, domain.EntityEquipment, eq.ID, "status", string(eq.Status), string(next), actorID, source); err != nil {
		return err
	}
	metrics.EquipmentStatusChanges.WithLabelValues(string(next), string(source)).Inc()
	eq.Status = next
	return nil
}

// GetRental returns the rental to its renter, the equipment owner or an admin.
func (s *rentalService) GetRental(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.RenterID == actorID {
		return rental, nil
	}
	eq, err := s.equipment.GetByID(ctx, rental.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq.IsOwnedBy(actorID) {
		return rental, nil
	}
	roles, err := s.authz.Roles(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if roles.Has(domain.RoleAdmin) {
		return rental, nil
	}
	return nil, domain.ErrUnauthorized.WithEntity(rentalID)
}

func (s *rentalService) ListRentals(ctx context.Context, actorID int32, scope ListScope, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, domain.ErrInvalidStatus.WithReason("unknown rental status %q", status)
	}
	filter := domain.RentalFilter{Status: status}
	switch scope {
	case ScopeMine, "":
		filter.RenterID = actorID
	case ScopeOwned:
		filter.OwnerID = actorID
	case ScopeAll:
		ok, err := s.authz.Can(ctx, actorID, domain.CapabilityManageRentals)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, domain.ErrUnauthorized.WithReason("listing all rentals requires %s", domain.CapabilityManageRentals)
		}
	default:
		return nil, 0, domain.ErrInvalidInput.WithReason("unknown scope %q", scope)
	}
	page, pageSize = normalizePage(page, pageSize)
	return s.rentals.List(ctx, filter, page, pageSize)
}

func observe(operation string, start time.Time) {
	metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
