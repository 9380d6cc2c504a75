// Package auth provides JWT issuing and validation for farmer sessions.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the authenticated farmer identity inside a JWT.
type Claims struct {
	jwt.RegisteredClaims
	FarmerID uuid.UUID `json:"farmer_id"`
	Name     string    `json:"name,omitempty"`
	District string    `json:"district,omitempty"`
	Roles    []string  `json:"roles,omitempty"`
}

// HasRole reports whether the claims include the given role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type contextKey struct{}

// ContextWithClaims returns a context carrying the validated claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// ClaimsFromContext extracts claims previously stored by ContextWithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok
}
