// Package service defines interfaces for infrastructure-backed domain services.
package service

import "context"

// AuthClaims is the identity extracted from a verified ID token.
type AuthClaims struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// TokenVerifier validates bearer tokens issued by the authentication
// provider. The actual sign-in flows (email/password, Google OAuth, phone
// OTP) run in the provider's client SDK; this service only ever sees the
// resulting ID token.
type TokenVerifier interface {
	// VerifyIDToken checks the token's signature and expiry and returns the
	// claims it carries. Any failure means the request is unauthenticated.
	VerifyIDToken(ctx context.Context, idToken string) (*AuthClaims, error)
}
