package auth

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"portfolio-api/ent"
	"portfolio-api/internal/config"
	"portfolio-api/internal/httpx/kit/testutil"
	"portfolio-api/internal/httpx/mw"
)

func newTestApp(t *testing.T, client *ent.Client, cfg *config.Config) *fiber.App {
	t.Helper()
	parse := func(token string) (string, string, error) {
		claims, err := ParseAndValidate(cfg, token)
		if err != nil {
			return "", "", err
		}
		return claims.Subject, claims.Kind, nil
	}
	return testutil.NewApp(
		func(app *fiber.App) { app.Use(mw.JWTMiddleware(parse)) },
		func(app *fiber.App) { app.Post("/auth/login", LoginHandler(cfg, client)) },
		func(app *fiber.App) { app.Post("/auth/refresh", RefreshHandler(cfg)) },
		func(app *fiber.App) { app.Post("/auth/logout", LogoutHandler()) },
		func(app *fiber.App) { app.Get("/auth/me", mw.RequireUser(), MeHandler(client)) },
	)
}

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := contextWithT(t)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "Secretp@ssw0rd"
	return cfg
}

func TestEnsureAdmin_SeedsOnce(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()

	ctx, cancel := contextWithT(t)
	defer cancel()
	if err := EnsureAdmin(ctx, cfg, client); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := EnsureAdmin(ctx, cfg, client); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n, err := client.User.Query().Count(ctx); err != nil || n != 1 {
		t.Fatalf("users=%d err=%v", n, err)
	}
}

func TestLogin_IssuesTokenAndStampsLastLogin(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	ctx, cancel := contextWithT(t)
	defer cancel()
	if err := EnsureAdmin(ctx, cfg, client); err != nil {
		t.Fatalf("seed: %v", err)
	}

	in := LoginRequest{Username: "admin", Password: "Secretp@ssw0rd"}
	b, _ := json.Marshal(in)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" {
		t.Fatalf("missing access_token")
	}

	var refresh string
	for _, c := range res.Cookies() {
		if c.Name == "refresh_token" && c.Value != "" {
			refresh = c.Value
		}
	}
	if refresh == "" {
		t.Fatalf("refresh cookie not set")
	}

	u, err := client.User.Query().First(ctx)
	if err != nil {
		t.Fatalf("query user: %v", err)
	}
	if u.LastLoginAt.IsZero() {
		t.Fatalf("last_login_at not stamped")
	}

	// Access token works against /auth/me
	mreq := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	mreq.Header.Set("Authorization", "Bearer "+env.Data.AccessToken)
	mres, err := app.Test(mreq)
	if err != nil {
		t.Fatalf("me request: %v", err)
	}
	if mres.StatusCode != http.StatusOK {
		t.Fatalf("me status=%d", mres.StatusCode)
	}
}

func TestLogin_WrongPassword_Unauthorized(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	ctx, cancel := contextWithT(t)
	defer cancel()
	if err := EnsureAdmin(ctx, cfg, client); err != nil {
		t.Fatalf("seed: %v", err)
	}

	in := LoginRequest{Username: "admin", Password: "nope"}
	b, _ := json.Marshal(in)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestRefresh_RotatesCookie(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	refresh, err := SignRefresh(cfg, "user:00000000-0000-0000-0000-000000000001", "user")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" {
		t.Fatalf("missing access_token")
	}
}

func TestHashVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("hunter22", hash) {
		t.Fatalf("verify should succeed")
	}
	if VerifyPassword("hunter23", hash) {
		t.Fatalf("verify should fail on wrong password")
	}
}

func contextWithT(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}
