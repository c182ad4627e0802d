package seo

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"portfolio-api/ent"
	"portfolio-api/internal/httpx/kit/testutil"
)

func newTestApp(t *testing.T, client *ent.Client) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Get("/sitemap.xml", SitemapHandler(client, "https://site.example/")) },
		func(app *fiber.App) { app.Get("/seo", ListSeoEntriesHandler(client)) },
		func(app *fiber.App) { app.Post("/seo", CreateSeoEntryHandler(client)) },
		func(app *fiber.App) { app.Put("/seo/:id", UpdateSeoEntryHandler(client)) },
		func(app *fiber.App) { app.Delete("/seo/:id", DeleteSeoEntryHandler(client)) },
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
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func TestCreate_RejectsDuplicatePathAndBadFreq(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	body := map[string]any{"path": "/", "title": "Home", "change_freq": "weekly"}
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/seo", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil || res.StatusCode != http.StatusCreated {
		t.Fatalf("create: %v status=%d", err, res.StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/seo", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil || res.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate: %v status=%d", err, res.StatusCode)
	}

	bad, _ := json.Marshal(map[string]any{"path": "/about", "change_freq": "fortnightly"})
	req = httptest.NewRequest(http.MethodPost, "/seo", bytes.NewReader(bad))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil || res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad freq: %v status=%d", err, res.StatusCode)
	}
}

func TestSitemap_RendersURLSet(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.SeoEntry.Create().SetPath("/").SetChangeFreq("daily").SetPriority(1.0).Save(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := client.SeoEntry.Create().SetPath("/certificates").Save(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.Contains(ct, "xml") {
		t.Fatalf("content-type=%q", ct)
	}
	raw, _ := io.ReadAll(res.Body)
	body := string(raw)
	for _, want := range []string{
		"<urlset",
		"http://www.sitemaps.org/schemas/sitemap/0.9",
		"<loc>https://site.example/</loc>",
		"<loc>https://site.example/certificates</loc>",
		"<changefreq>daily</changefreq>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("sitemap missing %q in:\n%s", want, body)
		}
	}
}
