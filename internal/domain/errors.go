package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures for transports and callers.
type ErrorKind string

const (
	KindValidation      ErrorKind = "ValidationError"
	KindNotFound        ErrorKind = "NotFound"
	KindUnauthorized    ErrorKind = "Unauthorized"
	KindConflict        ErrorKind = "Conflict"
	KindExternalFailure ErrorKind = "ExternalFailure"
)

// Error is the typed failure returned by the rental core. Two errors match under
// errors.Is when their codes are equal, so the sentinels below can be compared
// against errors that carry an entity id or a more specific reason.
type Error struct {
	Kind     ErrorKind
	Code     string
	Reason   string
	EntityID int32
}

func (e *Error) Error() string {
	if e.EntityID != 0 {
		return fmt.Sprintf("%s: %s (id=%d)", e.Code, e.Reason, e.EntityID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithEntity returns a copy of e bound to the given entity id.
func (e *Error) WithEntity(id int32) *Error {
	cp := *e
	cp.EntityID = id
	return &cp
}

// WithReason returns a copy of e with a more specific reason.
func (e *Error) WithReason(format string, args ...any) *Error {
	cp := *e
	cp.Reason = fmt.Sprintf(format, args...)
	return &cp
}

func newError(kind ErrorKind, code, reason string) *Error {
	return &Error{Kind: kind, Code: code, Reason: reason}
}

var (
	ErrInvalidInput    = newError(KindValidation, "InvalidInput", "invalid input")
	ErrInvalidDuration = newError(KindValidation, "InvalidDuration", "rental duration is outside the equipment's allowed period")
	ErrInvalidStatus   = newError(KindValidation, "InvalidStatus", "unknown status")

	ErrRentalNotFound    = newError(KindNotFound, "RentalNotFound", "rental not found")
	ErrEquipmentNotFound = newError(KindNotFound, "EquipmentNotFound", "equipment not found")
	ErrPaymentNotFound   = newError(KindNotFound, "PaymentNotFound", "payment not found")
	ErrUserNotFound      = newError(KindNotFound, "UserNotFound", "user not found")

	ErrUnauthorized = newError(KindUnauthorized, "Unauthorized", "actor is not allowed to perform this action")

	ErrEquipmentUnavailable = newError(KindConflict, "EquipmentUnavailable", "equipment is not available")
	ErrRentalTerminal       = newError(KindConflict, "RentalTerminal", "rental is in a terminal status")
	ErrPaymentNotAllowed    = newError(KindConflict, "PaymentNotAllowed", "payment cannot be initiated for this rental")
	ErrAlreadyProcessed     = newError(KindConflict, "AlreadyProcessed", "payment was already processed")
	ErrDuplicateTransaction = newError(KindConflict, "DuplicateTransaction", "transaction id already exists")

	ErrGatewayFailure      = newError(KindExternalFailure, "GatewayFailure", "payment gateway request failed")
	ErrNotificationFailure = newError(KindExternalFailure, "NotificationFailure", "notification delivery failed")
)

// KindOf returns the kind of err when it is a *Error, and "" otherwise.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
