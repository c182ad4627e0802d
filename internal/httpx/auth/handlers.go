package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/ent"
	"portfolio-api/ent/user"
	"portfolio-api/internal/config"
	"portfolio-api/internal/httpx/kit"
	"portfolio-api/internal/httpx/mw"
	"portfolio-api/internal/logx"
)

var authLogger = logx.GetScope("auth")

// EnsureAdmin seeds the admin account from config when no user exists yet.
func EnsureAdmin(ctx context.Context, cfg *config.Config, client *ent.Client) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil
	}
	n, err := client.User.Query().Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}
	u, err := client.User.Create().
		SetUsername(cfg.Admin.Username).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		return err
	}
	authLogger.Sugar().Infof("seeded admin account %s (%s)", u.Username, u.ID)
	return nil
}

// LoginHandler authenticates with username and password.
//
//	@Summary		Login
//	@Description	Exchange username/password for an access token; a refresh token is set as an HttpOnly cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"credentials"
//	@Success		200		{object}	TokenResponse
//	@Failure		401		{object}	map[string]string
//	@Router			/api/v1/auth/login [post]
func LoginHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid JSON body", nil)
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			return kit.BadRequest("username and password are required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		u, err := client.User.Query().
			Where(user.UsernameEQ(req.Username), user.IsActive(true)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
			}
			return kit.InternalError("query user failed", nil)
		}
		if !VerifyPassword(req.Password, u.PasswordHash) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}

		sub := "user:" + u.ID.String()
		access, err := SignAccess(cfg, sub, "user")
		if err != nil {
			return kit.InternalError("sign access token failed", nil)
		}
		refresh, err := SignRefresh(cfg, sub, "user")
		if err != nil {
			return kit.InternalError("sign refresh token failed", nil)
		}
		SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)

		if _, err := client.User.UpdateOneID(u.ID).SetLastLoginAt(time.Now()).Save(ctx); err != nil {
			authLogger.Sugar().Warnf("stamp last_login_at failed: %v", err)
		}

		return kit.OK(c, TokenResponse{
			AccessToken: access,
			TokenType:   "Bearer",
			ExpiresIn:   cfg.JWT.AccessMin * 60,
		})
	}
}

// RefreshHandler rotates the refresh cookie and issues a new access token.
//
//	@Summary		Refresh token
//	@Description	Use the refresh cookie to obtain a fresh access token
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	TokenResponse
//	@Failure		401	{object}	map[string]string
//	@Router			/api/v1/auth/refresh [post]
func RefreshHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("refresh_token")
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing refresh token")
		}
		claims, err := ParseAndValidate(cfg, token)
		if err != nil || claims.Kind != "user" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid refresh token")
		}

		access, err := SignAccess(cfg, claims.Subject, claims.Kind)
		if err != nil {
			return kit.InternalError("sign access token failed", nil)
		}
		refresh, err := SignRefresh(cfg, claims.Subject, claims.Kind)
		if err != nil {
			return kit.InternalError("sign refresh token failed", nil)
		}
		SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)

		return kit.OK(c, TokenResponse{
			AccessToken: access,
			TokenType:   "Bearer",
			ExpiresIn:   cfg.JWT.AccessMin * 60,
		})
	}
}

// LogoutHandler clears the refresh cookie.
//
//	@Summary		Logout
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return kit.OK(c, fiber.Map{"status": "logged_out"})
	}
}

// MeHandler returns the authenticated user's profile.
//
//	@Summary		Current user
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Failure		401	{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/api/v1/auth/me [get]
func MeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*mw.AuthContext)
		if ac == nil {
			return fiber.ErrUnauthorized
		}
		idStr := strings.TrimPrefix(ac.Subject, "user:")
		uid, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		u, err := client.User.Get(ctx, uid)
		if err != nil {
			if ent.IsNotFound(err) {
				return fiber.ErrUnauthorized
			}
			return kit.InternalError("query user failed", nil)
		}
		return kit.OK(c, fiber.Map{
			"id":            u.ID,
			"username":      u.Username,
			"display_name":  u.DisplayName,
			"last_login_at": u.LastLoginAt,
			"created_at":    u.CreatedAt,
		})
	}
}
