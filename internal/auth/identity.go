package auth

import (
	"context"
	"net/http"

	apperrors "gocart/internal/errors"
	"gocart/internal/model"
)

// Identity is the authenticated caller resolved from a verified token.
// It lives only for the duration of one request. Role mirrors the token
// claim and may be nil for tokens minted before roles existed.
type Identity struct {
	ID    uint
	Email string
	Role  *model.Role
}

// IdentityFromClaims builds an Identity from verified token claims.
func IdentityFromClaims(claims *Claims) *Identity {
	return &Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}
}

type contextKey string

const (
	identityKey contextKey = "identity"
	tokenKey    contextKey = "token"
	writerKey   contextKey = "writer"
)

// WithIdentity attaches the resolved identity to the request context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the caller's identity, or nil for
// anonymous requests.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey).(*Identity)
	return identity
}

// WithToken attaches the raw token string to the request context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the raw token string, if any was presented.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithResponseWriter attaches the response writer so resolvers can set
// cookies on the way out.
func WithResponseWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, writerKey, w)
}

// ResponseWriterFromContext returns the response writer for this request.
func ResponseWriterFromContext(ctx context.Context) http.ResponseWriter {
	w, _ := ctx.Value(writerKey).(http.ResponseWriter)
	return w
}

// Authenticated returns the caller's identity or an unauthorized error
// for anonymous requests.
func Authenticated(ctx context.Context) (*Identity, error) {
	identity := IdentityFromContext(ctx)
	if identity == nil {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	return identity, nil
}

// Authorize returns the caller's identity if it carries the required
// role. Anonymous callers, role-less tokens, and wrong-role callers all
// get the same unauthorized error.
func Authorize(ctx context.Context, role model.Role) (*Identity, error) {
	identity := IdentityFromContext(ctx)
	if identity == nil || identity.Role == nil || *identity.Role != role {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	return identity, nil
}
