package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller extracted from a bearer token. Tokens are
// issued by the external identity provider; this service only verifies them.
type Identity struct {
	UserID          string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	IsAdmin         bool
}

// Claims is the expected JWT payload.
type Claims struct {
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	IsAdmin         bool   `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Verifier validates HS256 bearer tokens against a shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a token verifier with the given signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyHeader verifies an Authorization header value of the form
// "Bearer <token>" and returns the caller identity.
func (v *Verifier) VerifyHeader(header string) (*Identity, error) {
	const prefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, prefix) {
		return nil, ErrMissingToken
	}
	return v.Verify(strings.TrimPrefix(header, prefix))
}

// Verify parses and validates a token string and returns the caller identity.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	identity := &Identity{
		UserID:  claims.Subject,
		IsAdmin: claims.IsAdmin,
	}
	if claims.Email != "" {
		identity.Email = &claims.Email
	}
	if claims.FirstName != "" {
		identity.FirstName = &claims.FirstName
	}
	if claims.LastName != "" {
		identity.LastName = &claims.LastName
	}
	if claims.ProfileImageURL != "" {
		identity.ProfileImageURL = &claims.ProfileImageURL
	}

	return identity, nil
}

type contextKey struct{}

// WithIdentity returns a context carrying the verified identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// FromContext returns the identity stored by the auth middleware, or nil.
func FromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(contextKey{}).(*Identity)
	return identity
}
