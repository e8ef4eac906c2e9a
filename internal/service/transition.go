package service

import (
	"go4rent-backend/internal/domain"
)

// EquipmentEffect is what a rental transition does to its equipment.
type EquipmentEffect int

const (
	EffectNone EquipmentEffect = iota
	// EffectOccupy marks the equipment rented.
	EffectOccupy
	// EffectRelease returns rented equipment to available when no other rental of it is active.
	EffectRelease
)

func (e EquipmentEffect) String() string {
	switch e {
	case EffectOccupy:
		return "occupy"
	case EffectRelease:
		return "release"
	}
	return "none"
}

// ActorFacts is everything the transition table needs to know about who is
// asking. It is assembled from the authorization oracle and the locked rows
// before the table is consulted.
type ActorFacts struct {
	IsRenter  bool
	IsOwner   bool
	IsAdmin   bool
	CanCancel bool
	CanManage bool
}

type transitionRule struct {
	name   string
	actor  func(f ActorFacts) bool
	from   []domain.RentalStatus // nil matches any non-terminal status
	to     []domain.RentalStatus
	effect EquipmentEffect
	source domain.ChangeSource
}

func adminOrManagingOwner(f ActorFacts) bool {
	return f.IsAdmin || (f.IsOwner && f.CanManage)
}

func managingAdmin(f ActorFacts) bool {
	return f.IsAdmin && f.CanManage
}

// transitionRules is evaluated top to bottom and the first matching row wins.
var transitionRules = []transitionRule{
	{
		name:   "renter cancels",
		actor:  func(f ActorFacts) bool { return f.IsRenter && f.CanCancel },
		from:   []domain.RentalStatus{domain.RentalStatusPendingApproval, domain.RentalStatusApproved},
		to:     []domain.RentalStatus{domain.RentalStatusCancelled},
		effect: EffectRelease,
		source: domain.SourceUser,
	},
	{
		name:   "approve",
		actor:  adminOrManagingOwner,
		to:     []domain.RentalStatus{domain.RentalStatusApproved},
		effect: EffectOccupy,
		source: domain.SourceAdmin,
	},
	{
		name:   "reject or cancel",
		actor:  adminOrManagingOwner,
		to:     []domain.RentalStatus{domain.RentalStatusRejected, domain.RentalStatusCancelled},
		effect: EffectRelease,
		source: domain.SourceAdmin,
	},
	{
		name:   "activate",
		actor:  managingAdmin,
		from:   []domain.RentalStatus{domain.RentalStatusApproved},
		to:     []domain.RentalStatus{domain.RentalStatusActive},
		effect: EffectOccupy,
		source: domain.SourceAdmin,
	},
	{
		name:   "complete",
		actor:  managingAdmin,
		to:     []domain.RentalStatus{domain.RentalStatusCompleted},
		effect: EffectRelease,
		source: domain.SourceAdmin,
	},
}

// TransitionDecision is the outcome of consulting the transition table.
type TransitionDecision struct {
	Rule   string
	Effect EquipmentEffect
	Source domain.ChangeSource
}

// DecideTransition looks up the row allowing facts to move a rental from one
// status to another. It performs no I/O. A row with an explicit from-set that
// does not contain from is skipped; a row matching any status fails with
// ErrRentalTerminal when from is terminal. No matching row yields
// ErrUnauthorized.
func DecideTransition(facts ActorFacts, from, to domain.RentalStatus) (TransitionDecision, error) {
	if !to.IsValid() {
		return TransitionDecision{}, domain.ErrInvalidStatus.WithReason("unknown rental status %q", to)
	}
	for _, rule := range transitionRules {
		if !containsStatus(rule.to, to) || !rule.actor(facts) {
			continue
		}
		if rule.from == nil {
			if from.IsTerminal() {
				return TransitionDecision{}, domain.ErrRentalTerminal.WithReason("rental is already %s", from)
			}
		} else if !containsStatus(rule.from, from) {
			continue
		}
		return TransitionDecision{Rule: rule.name, Effect: rule.effect, Source: rule.source}, nil
	}
	return TransitionDecision{}, domain.ErrUnauthorized.WithReason("transition %s -> %s is not allowed for this actor", from, to)
}

func containsStatus(set []domain.RentalStatus, s domain.RentalStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
