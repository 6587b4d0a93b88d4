package providers

import (
	"context"

	"github.com/google/uuid"
)

var _ AuthProvider = &AnonymousAuthProvider{}

// AnonymousAuthProvider accepts every token and hands out a fresh guest UID.
// It is used when no Firebase project is configured.
type AnonymousAuthProvider struct{}

func NewAnonymousAuthProvider() *AnonymousAuthProvider {
	return &AnonymousAuthProvider{}
}

// VerifyToken ignores the token and returns a new guest identity
func (p *AnonymousAuthProvider) VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error) {
	return &TokenClaims{
		UID: "guest-" + uuid.NewString(),
	}, nil
}
