package services

// Identity is the tenant identity resolved from a bearer credential. Every
// protected handler scopes its queries by RestaurantID.
type Identity struct {
	UserID       string
	RestaurantID string
	Email        string
	Role         string
}

// Authenticator resolves a bearer credential to an Identity. Two
// implementations exist, the password+JWT AuthService and the passwordless
// MagicLinkService, and a deployment wires exactly one of them into the
// auth middleware.
type Authenticator interface {
	Authenticate(token string) (*Identity, error)
}
