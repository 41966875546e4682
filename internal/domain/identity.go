package domain

import "context"

// Identity is the verified caller identity supplied by the auth middleware.
// The core never parses credentials itself; it only consumes this value.
type Identity struct {
	id    int
	email string
}

// NewIdentity creates a caller identity.
func NewIdentity(id int, email string) Identity {
	return Identity{id: id, email: email}
}

// ID returns the caller's numeric identifier.
func (i Identity) ID() int { return i.id }

// Email returns the caller's email address.
func (i Identity) Email() string { return i.email }

type identityCtxKey struct{}

// ContextWithIdentity stores the verified caller identity in the context.
func ContextWithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, ident)
}

// IdentityFromContext extracts the caller identity from the context.
// The second return value is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityCtxKey{}).(Identity)
	return ident, ok
}

type credentialCtxKey struct{}

// ContextWithCredential stores the caller's raw bearer credential so the
// upstream client can forward it when configured to do so.
func ContextWithCredential(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, credentialCtxKey{}, token)
}

// CredentialFromContext returns the caller's raw bearer credential, or ""
// when the request is anonymous.
func CredentialFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(credentialCtxKey{}).(string); ok {
		return token
	}
	return ""
}
