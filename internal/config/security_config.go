// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps methods to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Health - Public
	"/grpc.health.v1.Health/Check": SecurityPublic,
	"/grpc.health.v1.Health/Watch": SecurityPublic,

	// Reflection - Public
	"/grpc.reflection.v1.ServerReflection/ServerReflectionInfo":      SecurityPublic,
	"/grpc.reflection.v1alpha.ServerReflection/ServerReflectionInfo": SecurityPublic,

	// RentalService - Access Protected
	"/go4rent.api.v1.RentalService/CreateRental":           SecurityAccess,
	"/go4rent.api.v1.RentalService/TransitionRentalStatus": SecurityAccess,
	"/go4rent.api.v1.RentalService/GetRental":              SecurityAccess,
	"/go4rent.api.v1.RentalService/ListRentals":            SecurityAccess,

	// PaymentService - Access Protected
	"/go4rent.api.v1.PaymentService/InitiatePayment":       SecurityAccess,
	"/go4rent.api.v1.PaymentService/AdminSetPaymentStatus": SecurityAccess,
	"/go4rent.api.v1.PaymentService/GetPayment":            SecurityAccess,
	"/go4rent.api.v1.PaymentService/ListPayments":          SecurityAccess,
}

// GetSecurityLevel returns the security level for a method.
// Unknown methods default to SecurityAccess.
func GetSecurityLevel(method string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[method]; ok {
		return level
	}
	return SecurityAccess
}
