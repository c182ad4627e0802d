package contacts

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
	"portfolio-api/ent/contactmessage"
	"portfolio-api/internal/httpx/kit/testutil"
)

type capturingPublisher struct {
	keys   []string
	bodies [][]byte
}

func (p *capturingPublisher) Publish(_ context.Context, key string, body []byte) error {
	p.keys = append(p.keys, key)
	p.bodies = append(p.bodies, body)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func newTestApp(t *testing.T, client *ent.Client, pub *capturingPublisher) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Post("/contact", SubmitContactHandler(client, pub)) },
		func(app *fiber.App) { app.Get("/contact-messages", ListMessagesHandler(client)) },
		func(app *fiber.App) { app.Put("/contact-messages/:id/read", MarkMessageReadHandler(client)) },
		func(app *fiber.App) { app.Delete("/contact-messages/:id", DeleteMessageHandler(client)) },
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

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	return res
}

func TestSubmit_StoresAndPublishes(t *testing.T) {
	client := newTestClient(t)
	pub := &capturingPublisher{}
	app := newTestApp(t, client, pub)

	res := postJSON(t, app, "/contact", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"body":  "Hello there",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg, err := client.ContactMessage.Query().Only(ctx)
	if err != nil {
		t.Fatalf("message: %v", err)
	}
	if msg.Read {
		t.Fatalf("new message must start unread")
	}

	if len(pub.keys) != 1 || pub.keys[0] != RoutingKeyReceived {
		t.Fatalf("published keys=%v", pub.keys)
	}
	var event struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(pub.bodies[0], &event); err != nil || event.Email != "ada@example.com" {
		t.Fatalf("event=%s err=%v", pub.bodies[0], err)
	}
}

func TestSubmit_RejectsMissingFields(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, nil)

	res := postJSON(t, app, "/contact", map[string]any{"name": "Ada", "email": "ada@example.com"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
	res = postJSON(t, app, "/contact", map[string]any{"name": "Ada", "email": "not-an-email", "body": "hi"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestInbox_MarkReadAndDelete(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg, err := client.ContactMessage.Create().
		SetName("Ada").SetEmail("ada@example.com").SetBody("hello").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/contact-messages?unread=true", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var env struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 {
		t.Fatalf("unread=%d", len(env.Data))
	}

	rreq := httptest.NewRequest(http.MethodPut, "/contact-messages/"+msg.ID.String()+"/read", nil)
	rres, err := app.Test(rreq)
	if err != nil || rres.StatusCode != http.StatusOK {
		t.Fatalf("mark read: %v status=%d", err, rres.StatusCode)
	}
	if n, _ := client.ContactMessage.Query().Where(contactmessage.Read(false)).Count(ctx); n != 0 {
		t.Fatalf("unread after mark=%d", n)
	}

	dreq := httptest.NewRequest(http.MethodDelete, "/contact-messages/"+msg.ID.String(), nil)
	dres, err := app.Test(dreq)
	if err != nil || dres.StatusCode != http.StatusOK {
		t.Fatalf("delete: %v status=%d", err, dres.StatusCode)
	}
	if n, _ := client.ContactMessage.Query().Count(ctx); n != 0 {
		t.Fatalf("messages after delete=%d", n)
	}

	// unknown id is a 404 envelope, not a crash
	nreq := httptest.NewRequest(http.MethodDelete, "/contact-messages/"+uuid.NewString(), nil)
	nres, err := app.Test(nreq)
	if err != nil || nres.StatusCode != http.StatusNotFound {
		t.Fatalf("missing delete: %v status=%d", err, nres.StatusCode)
	}
}
