package service

// IdentityService issues and verifies the persistent anonymous identity
// carried in the browser cookie. There are no accounts: an identity is a
// random ID minted on first visit and kept for the cookie's lifetime.
type IdentityService interface {
	// Issue mints a fresh user ID and returns it with its signed token.
	Issue() (userID string, signed string, err error)

	// IssueFor signs a token for an existing user ID, refreshing its expiry.
	IssueFor(userID string) (signed string, err error)

	// Verify checks a signed token and returns the user ID it carries.
	Verify(signed string) (userID string, err error)
}
