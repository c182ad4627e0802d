package variants

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
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/techicon"
	"portfolio-api/internal/httpx/kit/testutil"
)

func newTestApp(t *testing.T, client *ent.Client) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Get("/variants", ListVariantsHandler(client)) },
		func(app *fiber.App) { app.Post("/variants", CreateVariantHandler(client)) },
		func(app *fiber.App) { app.Put("/variants/:id", RenameVariantHandler(client)) },
		func(app *fiber.App) { app.Delete("/variants/:id", DeleteVariantHandler(client, nil)) },
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

// seedAggregate creates a technology with details and one icon in the variant.
func seedAggregate(t *testing.T, client *ent.Client, name string, variantID uuid.UUID, version int) *ent.Technology {
	t.Helper()
	ctx, cancel := contextWithT(t)
	defer cancel()
	tech, err := client.Technology.Create().SetCompanyName(name).Save(ctx)
	if err != nil {
		t.Fatalf("tech: %v", err)
	}
	if _, err := client.TechDetail.Create().
		SetTechnologyID(tech.ID).
		SetCategory("Backend").
		SetYearBeganUsing(2020).
		Save(ctx); err != nil {
		t.Fatalf("details: %v", err)
	}
	if _, err := client.TechIcon.Create().
		SetTechnologyID(tech.ID).
		SetVariantID(variantID).
		SetVersion(version).
		Save(ctx); err != nil {
		t.Fatalf("icon: %v", err)
	}
	return tech
}

func createVariant(t *testing.T, client *ent.Client, name string) *ent.IconVariant {
	t.Helper()
	ctx, cancel := contextWithT(t)
	defer cancel()
	v, err := client.IconVariant.Create().SetName(name).Save(ctx)
	if err != nil {
		t.Fatalf("variant: %v", err)
	}
	return v
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return res
}

func TestCreateAndRename(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	res := do(t, app, http.MethodPost, "/variants", map[string]any{"name": "color"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}

	res = do(t, app, http.MethodPut, "/variants/"+env.Data.ID.String(), map[string]any{"name": "line"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("rename status=%d", res.StatusCode)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	v, err := client.IconVariant.Get(ctx, env.Data.ID)
	if err != nil || v.Name != "line" {
		t.Fatalf("rename not applied: %v %v", v, err)
	}

	res = do(t, app, http.MethodPost, "/variants", map[string]any{"name": "  "})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank name status=%d", res.StatusCode)
	}
}

func TestDelete_CascadesUpToTechnology(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	v := createVariant(t, client, "doomed")
	keeper := createVariant(t, client, "keeper")
	seedAggregate(t, client, "CascadeMe", v.ID, 1)
	survivor := seedAggregate(t, client, "Survivor", keeper.ID, 1)

	res := do(t, app, http.MethodDelete, "/variants/"+v.ID.String()+"?handle_icons=delete", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, _ := client.Technology.Query().Count(ctx); n != 1 {
		t.Fatalf("technologies=%d, want only the survivor", n)
	}
	if _, err := client.Technology.Get(ctx, survivor.ID); err != nil {
		t.Fatalf("survivor gone: %v", err)
	}
	if n, _ := client.TechDetail.Query().Count(ctx); n != 1 {
		t.Fatalf("details=%d", n)
	}
	if n, _ := client.TechIcon.Query().Count(ctx); n != 1 {
		t.Fatalf("icons=%d", n)
	}
	if exists, _ := client.IconVariant.Query().Where(iconvariant.IDEQ(v.ID)).Exist(ctx); exists {
		t.Fatalf("variant row still present")
	}
}

func TestDelete_ReassignMovesIcons(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	oldV := createVariant(t, client, "old")
	newV := createVariant(t, client, "new")
	tech := seedAggregate(t, client, "Mover", oldV.ID, 1)

	path := fmt.Sprintf("/variants/%s?handle_icons=reassign&new_variant_id=%s", oldV.ID, newV.ID)
	res := do(t, app, http.MethodDelete, path, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	icon, err := client.TechIcon.Query().Where(techicon.HasVariantWith(iconvariant.IDEQ(newV.ID))).Only(ctx)
	if err != nil {
		t.Fatalf("moved icon: %v", err)
	}
	owner, err := icon.QueryTechnology().Only(ctx)
	if err != nil || owner.ID != tech.ID {
		t.Fatalf("owner mismatch: %v %v", owner, err)
	}
	if _, err := client.Technology.Get(ctx, tech.ID); err != nil {
		t.Fatalf("technology must survive reassign: %v", err)
	}
	if n, _ := client.TechDetail.Query().Count(ctx); n != 1 {
		t.Fatalf("details=%d", n)
	}
	if exists, _ := client.IconVariant.Query().Where(iconvariant.IDEQ(oldV.ID)).Exist(ctx); exists {
		t.Fatalf("old variant still present")
	}
}

func TestDelete_ReassignWithoutTargetIsValidationError(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	v := createVariant(t, client, "lonely")
	seedAggregate(t, client, "Untouched", v.ID, 1)

	res := do(t, app, http.MethodDelete, "/variants/"+v.ID.String()+"?handle_icons=reassign", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if exists, _ := client.IconVariant.Query().Where(iconvariant.IDEQ(v.ID)).Exist(ctx); !exists {
		t.Fatalf("variant must survive a rejected reassign")
	}
	if n, _ := client.TechIcon.Query().Count(ctx); n != 1 {
		t.Fatalf("icons=%d", n)
	}
}

func TestDelete_ReassignConflictRejectedWithoutStateChange(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	oldV := createVariant(t, client, "old")
	newV := createVariant(t, client, "new")
	tech := seedAggregate(t, client, "Clasher", oldV.ID, 1)

	// same technology already holds an icon at version 1 in the target variant
	ctx, cancel := contextWithT(t)
	defer cancel()
	if _, err := client.TechIcon.Create().
		SetTechnologyID(tech.ID).
		SetVariantID(newV.ID).
		SetVersion(1).
		Save(ctx); err != nil {
		t.Fatalf("occupying icon: %v", err)
	}

	path := fmt.Sprintf("/variants/%s?handle_icons=reassign&new_variant_id=%s", oldV.ID, newV.ID)
	res := do(t, app, http.MethodDelete, path, nil)
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("status=%d, want conflict", res.StatusCode)
	}

	if exists, _ := client.IconVariant.Query().Where(iconvariant.IDEQ(oldV.ID)).Exist(ctx); !exists {
		t.Fatalf("variant must survive a conflicting reassign")
	}
	if n, _ := client.TechIcon.Query().Where(techicon.HasVariantWith(iconvariant.IDEQ(oldV.ID))).Count(ctx); n != 1 {
		t.Fatalf("icons in old variant=%d, want untouched", n)
	}
}

func TestDelete_UnknownHandleIconsRejected(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client)

	v := createVariant(t, client, "color")
	res := do(t, app, http.MethodDelete, "/variants/"+v.ID.String()+"?handle_icons=archive", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func contextWithT(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}
