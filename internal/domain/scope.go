package domain

import "context"

// Scope carries the caller's credentials and tenant for one request.
type Scope struct {
	Token      string
	TenantID   string
	TenantSlug string
	Locale     string
	RequestID  string
	Actor      string
}

type scopeKey struct{}

func ContextWithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFromContext returns the scope attached to ctx, or a zero Scope.
func ScopeFromContext(ctx context.Context) Scope {
	s, _ := ctx.Value(scopeKey{}).(Scope)
	return s
}
