package ports

// TokenService issues and checks the signed bearer tokens asserting identity.
// Tokens are stateless: nothing is persisted and the signing key is fixed for
// the lifetime of the process.
type TokenService interface {
	// Issue produces a signed token binding username and role, expiring a
	// configured duration after issuance.
	Issue(username, role string) (string, error)
	// Subject extracts the claimed subject without verifying the signature.
	// It is a cheap pre-check before the user lookup; the claim must not be
	// trusted until Validate passes.
	Subject(token string) (string, error)
	// Validate reports whether the signature verifies and the token has not
	// expired. Malformed or expired input yields false, never an error.
	Validate(token string) bool
}
