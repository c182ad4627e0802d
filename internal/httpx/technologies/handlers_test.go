package technologies

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
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"portfolio-api/ent"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"portfolio-api/internal/httpx/kit/testutil"
)

func newTestApp(t *testing.T, client *ent.Client) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Get("/technologies", ListTechnologiesHandler(client)) },
		func(app *fiber.App) { app.Post("/technologies", CreateTechnologyHandler(client, nil)) },
		func(app *fiber.App) { app.Put("/technologies/icons/by-old-id", UpdateIconByOldIDHandler(client)) },
		func(app *fiber.App) { app.Get("/technologies/:id", GetTechnologyHandler(client)) },
		func(app *fiber.App) { app.Put("/technologies/:id", UpdateTechnologyHandler(client, nil)) },
		func(app *fiber.App) { app.Delete("/technologies/:id", DeleteTechnologyHandler(client, nil)) },
		func(app *fiber.App) { app.Put("/technologies/:id/icon-urls", UpdateTechIconUrlsHandler(client)) },
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

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return res
}

func decodeData(t *testing.T, res *http.Response, out any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
}

func validCreateBody(name string) map[string]any {
	return map[string]any{
		"company_name": name,
		"icon":         map[string]any{"should_invert_on_dark": false, "version": 1},
		"details": map[string]any{
			"category":         "Backend",
			"year_began_using": 2020,
			"my_stack":         true,
		},
	}
}

func createTech(t *testing.T, app *fiber.App, name string) uuid.UUID {
	t.Helper()
	res := doJSON(t, app, http.MethodPost, "/technologies", validCreateBody(name))
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", res.StatusCode)
	}
	var out struct {
		ID uuid.UUID `json:"id"`
	}
	decodeData(t, res, &out)
	return out.ID
}

func TestCreate_OneAggregatePerCreate(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	id := createTech(t, app, "Acme")

	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, _ := client.Technology.Query().Count(ctx); n != 1 {
		t.Fatalf("technologies=%d", n)
	}
	if n, _ := client.TechIcon.Query().Count(ctx); n != 1 {
		t.Fatalf("icons=%d", n)
	}
	if n, _ := client.TechDetail.Query().Count(ctx); n != 1 {
		t.Fatalf("details=%d", n)
	}

	icon, err := client.TechIcon.Query().Only(ctx)
	if err != nil {
		t.Fatalf("icon: %v", err)
	}
	owner, err := icon.QueryTechnology().Only(ctx)
	if err != nil || owner.ID != id {
		t.Fatalf("icon owner mismatch: %v %v", owner, err)
	}
	detail, err := client.TechDetail.Query().Only(ctx)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if dOwner, err := detail.QueryTechnology().Only(ctx); err != nil || dOwner.ID != id {
		t.Fatalf("detail owner mismatch: %v %v", dOwner, err)
	}
}

func TestCreate_RejectsInvalidEnumBeforeWrite(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	body := validCreateBody("Acme")
	body["details"].(map[string]any)["category"] = "Gardening"
	res := doJSON(t, app, http.MethodPost, "/technologies", body)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, _ := client.Technology.Query().Count(ctx); n != 0 {
		t.Fatalf("no rows should exist after validation failure, got %d", n)
	}
}

func TestGetByID_JoinedProjection(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	id := createTech(t, app, "Acme")

	res := doJSON(t, app, http.MethodGet, "/technologies/"+id.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var view struct {
		CompanyName string          `json:"company_name"`
		Icon        json.RawMessage `json:"icon"`
		Details     struct {
			Category string `json:"category"`
		} `json:"details"`
	}
	decodeData(t, res, &view)
	if view.CompanyName != "Acme" {
		t.Fatalf("company_name=%q", view.CompanyName)
	}
	if len(view.Icon) == 0 {
		t.Fatalf("missing representative icon")
	}
	if view.Details.Category != "Backend" {
		t.Fatalf("details.category=%q", view.Details.Category)
	}
}

func TestGetByID_UnknownIsNotFound(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	res := doJSON(t, app, http.MethodGet, "/technologies/"+uuid.NewString(), nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestRemove_CascadeCompleteness(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	id := createTech(t, app, "Acme")

	// grow the icon set so the cascade has more than one row to clear
	ctx, cancel := contextWithT(t)
	defer cancel()
	if _, err := client.TechIcon.Create().SetTechnologyID(id).SetVersion(2).Save(ctx); err != nil {
		t.Fatalf("extra icon: %v", err)
	}

	res := doJSON(t, app, http.MethodDelete, "/technologies/"+id.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}

	if n, _ := client.TechIcon.Query().Count(ctx); n != 0 {
		t.Fatalf("icons=%d", n)
	}
	if n, _ := client.TechDetail.Query().Count(ctx); n != 0 {
		t.Fatalf("details=%d", n)
	}
	if n, _ := client.Technology.Query().Count(ctx); n != 0 {
		t.Fatalf("technologies=%d", n)
	}
}

func TestUpdate_NoOpOnMissingDetails(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	ctx, cancel := contextWithT(t)
	defer cancel()
	bare, err := client.Technology.Create().SetCompanyName("Bare").Save(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	body := map[string]any{
		"company_name": "Bare Renamed",
		"details": map[string]any{
			"category":         "Frontend",
			"year_began_using": 2021,
		},
	}
	res := doJSON(t, app, http.MethodPut, "/technologies/"+bare.ID.String(), body)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var out struct {
		Details string `json:"details"`
	}
	decodeData(t, res, &out)
	if out.Details != "skipped" {
		t.Fatalf("details action=%q", out.Details)
	}

	if n, _ := client.TechDetail.Query().Count(ctx); n != 0 {
		t.Fatalf("details row appeared: %d", n)
	}
	renamed, err := client.Technology.Get(ctx, bare.ID)
	if err != nil || renamed.CompanyName != "Bare Renamed" {
		t.Fatalf("rename not applied: %v %v", renamed, err)
	}
}

func TestUpdate_PatchesExistingDetails(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	id := createTech(t, app, "Acme")

	body := map[string]any{
		"company_name": "Acme",
		"details": map[string]any{
			"category":         "Database",
			"year_began_using": 2019,
			"rating":           "5",
		},
	}
	res := doJSON(t, app, http.MethodPut, "/technologies/"+id.String(), body)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	d, err := client.TechDetail.Query().Only(ctx)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if d.Category != techdetail.CategoryDatabase || d.YearBeganUsing != 2019 || d.Rating != techdetail.RatingFive {
		t.Fatalf("patch not applied: %+v", d)
	}
}

func TestIconUrls_CompositeKeyUpsertIdempotent(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	id := createTech(t, app, "Acme")

	ctx, cancel := contextWithT(t)
	defer cancel()
	variant, err := client.IconVariant.Create().SetName("color").Save(ctx)
	if err != nil {
		t.Fatalf("variant: %v", err)
	}

	for _, url := range []string{"a.svg", "b.svg"} {
		body := map[string]any{
			"version": 1,
			"icons":   []map[string]any{{"variant_id": variant.ID, "file_url": url}},
		}
		res := doJSON(t, app, http.MethodPut, "/technologies/"+id.String()+"/icon-urls", body)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status=%d", res.StatusCode)
		}
	}

	icons, err := client.TechIcon.Query().
		Where(
			techicon.HasTechnologyWith(technology.IDEQ(id)),
			techicon.HasVariant(),
		).
		All(ctx)
	if err != nil {
		t.Fatalf("icons: %v", err)
	}
	if len(icons) != 1 {
		t.Fatalf("rows at key=%d, want 1", len(icons))
	}
	if icons[0].FileURL != "b.svg" {
		t.Fatalf("file_url=%q, want second write to win", icons[0].FileURL)
	}
}

func TestIconUrls_DistinctVersionsDistinctRows(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	id := createTech(t, app, "Acme")

	ctx, cancel := contextWithT(t)
	defer cancel()
	variant, err := client.IconVariant.Create().SetName("line").Save(ctx)
	if err != nil {
		t.Fatalf("variant: %v", err)
	}

	for _, version := range []int{1, 2} {
		body := map[string]any{
			"version": version,
			"icons":   []map[string]any{{"variant_id": variant.ID, "file_url": "v.svg"}},
		}
		res := doJSON(t, app, http.MethodPut, "/technologies/"+id.String()+"/icon-urls", body)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status=%d", res.StatusCode)
		}
	}

	n, err := client.TechIcon.Query().
		Where(
			techicon.HasTechnologyWith(technology.IDEQ(id)),
			techicon.HasVariant(),
		).
		Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("rows=%d, want one per version", n)
	}
}

func TestIconByOldID_NotFoundThenUpsert(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	body := map[string]any{"old_id": "legacy-404", "file_url": "x.svg", "version": 1}
	res := doJSON(t, app, http.MethodPut, "/technologies/icons/by-old-id", body)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	tech, err := client.Technology.Create().SetCompanyName("Legacy").SetOldID("legacy-1").Save(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first := map[string]any{"old_id": "legacy-1", "file_url": "one.svg", "version": 1}
	res = doJSON(t, app, http.MethodPut, "/technologies/icons/by-old-id", first)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var out IconUpsertResult
	decodeData(t, res, &out)
	if out.Action != "created" || out.TechnologyID != tech.ID {
		t.Fatalf("first call: %+v", out)
	}

	second := map[string]any{"old_id": "legacy-1", "file_url": "two.svg", "version": 1}
	res = doJSON(t, app, http.MethodPut, "/technologies/icons/by-old-id", second)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	decodeData(t, res, &out)
	if out.Action != "updated" {
		t.Fatalf("second call action=%q", out.Action)
	}

	icons, err := client.TechIcon.Query().
		Where(techicon.HasTechnologyWith(technology.IDEQ(tech.ID))).
		All(ctx)
	if err != nil || len(icons) != 1 {
		t.Fatalf("icons=%d err=%v", len(icons), err)
	}
	if icons[0].FileURL != "two.svg" {
		t.Fatalf("file_url=%q", icons[0].FileURL)
	}
}

func TestList_IncludesAllIconsAndDetails(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	id := createTech(t, app, "Acme")

	ctx, cancel := contextWithT(t)
	defer cancel()
	if _, err := client.TechIcon.Create().SetTechnologyID(id).SetVersion(2).Save(ctx); err != nil {
		t.Fatalf("extra icon: %v", err)
	}

	res := doJSON(t, app, http.MethodGet, "/technologies", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var views []struct {
		Icons   []json.RawMessage `json:"icons"`
		Icon    json.RawMessage   `json:"icon"`
		Details json.RawMessage   `json:"details"`
	}
	decodeData(t, res, &views)
	if len(views) != 1 {
		t.Fatalf("views=%d", len(views))
	}
	if len(views[0].Icons) != 2 {
		t.Fatalf("icons=%d, want all of them", len(views[0].Icons))
	}
	if len(views[0].Icon) == 0 || len(views[0].Details) == 0 {
		t.Fatalf("missing convenience icon or details")
	}
}

func contextWithT(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}
