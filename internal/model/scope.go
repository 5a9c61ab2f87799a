package model

import "context"

// Role tags carried by users and access tokens.
const (
	RoleAdmin           = "admin"
	RolePropertyManager = "property-manager"
	RoleUser            = "user"
)

// Scope is the authenticated actor of a request.
type Scope struct {
	UserID string
	Email  string
	Roles  []string
}

// HasRole reports whether the actor holds any of roles.
func (sc Scope) HasRole(roles ...string) bool {
	for _, have := range sc.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// IsAdmin reports whether the actor holds the admin role.
func (sc Scope) IsAdmin() bool {
	return sc.HasRole(RoleAdmin)
}

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the actor stored by the auth middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}
