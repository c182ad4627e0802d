// Package contacts handles the public contact form and the admin inbox.
package contacts

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/ent"
	"portfolio-api/ent/contactmessage"
	"portfolio-api/internal/httpx/kit"
	"portfolio-api/internal/logx"
	"portfolio-api/internal/mqx"
)

var contactLogger = logx.GetScope("contacts")

// RoutingKeyReceived is the MQ routing key published for each new message.
const RoutingKeyReceived = "contact.received"

// ContactRequest is the public contact form payload.
// swagger:model ContactRequest
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// SubmitContactHandler stores a public contact message and emits a
// contact.received event when a publisher is configured.
//
//	@Summary      Submit contact form
//	@Description  Public endpoint; rate limited per client IP
//	@Tags         contacts
//	@Accept       json
//	@Produce      json
//	@Param        body  body      contacts.ContactRequest  true  "message payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      429   {object}  map[string]interface{}
//	@Router       /api/v1/contact [post]
func SubmitContactHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ContactRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		if req.Name == "" || req.Email == "" || strings.TrimSpace(req.Body) == "" {
			return kit.BadRequest("name, email and body are required", nil)
		}
		if !strings.Contains(req.Email, "@") {
			return kit.BadRequest("invalid email", req.Email)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		msg, err := client.ContactMessage.Create().
			SetName(req.Name).
			SetEmail(req.Email).
			SetSubject(req.Subject).
			SetBody(req.Body).
			Save(ctx)
		if err != nil {
			return kit.InternalError("store message failed", err.Error())
		}

		if pub != nil {
			event, _ := json.Marshal(fiber.Map{
				"id":         msg.ID,
				"name":       msg.Name,
				"email":      msg.Email,
				"subject":    msg.Subject,
				"created_at": msg.CreatedAt,
			})
			if err := pub.Publish(ctx, RoutingKeyReceived, event); err != nil {
				contactLogger.Sugar().Warnf("publish %s: %v", RoutingKeyReceived, err)
			}
		}

		return kit.Created(c, fiber.Map{"id": msg.ID})
	}
}

// ListMessagesHandler lists contact messages for the admin inbox, newest
// first. unread=true narrows to unread messages.
//
//	@Summary      List contact messages
//	@Tags         contacts
//	@Produce      json
//	@Param        limit   query     int   false  "page size"  default(20)
//	@Param        offset  query     int   false  "offset"     default(0)
//	@Param        unread  query     bool  false  "only unread"
//	@Success      200     {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/contact-messages [get]
func ListMessagesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		q := client.ContactMessage.Query().Order(ent.Desc(contactmessage.FieldCreatedAt))
		if c.QueryBool("unread") {
			q = q.Where(contactmessage.Read(false))
		}
		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query messages failed", err.Error())
		}

		nextOff := pg.Offset + len(items)
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: &nextOff, HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// MarkMessageReadHandler marks one message as read.
//
//	@Summary      Mark message read
//	@Tags         contacts
//	@Produce      json
//	@Param        id   path      string  true  "Message UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/contact-messages/{id}/read [put]
func MarkMessageReadHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid message id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		updated, err := client.ContactMessage.UpdateOneID(id).SetRead(true).Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("message not found")
			}
			return kit.InternalError("mark read failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeleteMessageHandler deletes one message.
//
//	@Summary      Delete contact message
//	@Tags         contacts
//	@Produce      json
//	@Param        id   path      string  true  "Message UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/contact-messages/{id} [delete]
func DeleteMessageHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid message id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := client.ContactMessage.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("message not found")
			}
			return kit.InternalError("delete message failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}
