// Package mw contains HTTP middleware including authentication and rate limiting.
package mw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthContext holds authentication details extracted from the bearer token.
// The dashboard has a single tier: an authenticated admin user.
type AuthContext struct {
	Subject string // user:<uuid>
	Kind    string // user
}

// TokenParser parses a token string and returns subject and kind.
type TokenParser func(token string) (subject, kind string, err error)

// JWTMiddleware attaches an AuthContext parsed by the given token parser.
// Requests without a bearer token pass through unauthenticated; the gate
// itself lives in RequireUser.
func JWTMiddleware(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return c.Next()
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		sub, kind, err := parse(token)
		if err == nil && sub != "" {
			c.Locals("auth", &AuthContext{Subject: sub, Kind: kind})
		}
		return c.Next()
	}
}

// RequireUser enforces an authenticated user on every mutating route.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Kind != "user" || ac.Subject == "" {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}
