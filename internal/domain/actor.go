package domain

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleOwner Role = "Owner"
	RoleUser  Role = "User"
)

// RoleSet is the set of roles an actor holds.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Capability is a fine-grained permission name granted through roles or directly.
type Capability string

const (
	CapabilityManageRentals    Capability = "manage_rentals"
	CapabilityCancelRentals    Capability = "cancel_rentals"
	CapabilityCreateOwnRentals Capability = "create_own_rentals"
	CapabilityViewRentals      Capability = "view_rentals"
	CapabilityViewOwnRentals   Capability = "view_own_rentals"
	CapabilityManagePayments   Capability = "manage_payments"
	CapabilityViewPayments     Capability = "view_payments"
)

// Actor is the authenticated user on whose behalf an operation runs.
type Actor struct {
	ID    int32
	Roles RoleSet
}

func (a Actor) IsAdmin() bool {
	return a.Roles.Has(RoleAdmin)
}
