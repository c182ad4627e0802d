// Package forms provides HTTP handlers for admin-built custom forms.
package forms

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/ent"
	"portfolio-api/ent/customform"
	"portfolio-api/internal/httpx/kit"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// FormRequest is the request body for creating or updating a form.
// swagger:model FormRequest
type FormRequest struct {
	Title  string           `json:"title"`
	Slug   string           `json:"slug"`
	Fields []map[string]any `json:"fields,omitempty"`
	Active *bool            `json:"active,omitempty"`
}

func (r *FormRequest) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return kit.BadRequest("title is required", nil)
	}
	if !slugPattern.MatchString(r.Slug) {
		return kit.BadRequest("slug must be lowercase kebab-case", r.Slug)
	}
	return nil
}

// ListFormsHandler lists all custom forms.
//
//	@Summary      List forms
//	@Tags         forms
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/forms [get]
func ListFormsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		items, err := client.CustomForm.Query().Order(ent.Desc(customform.FieldUpdatedAt)).All(ctx)
		if err != nil {
			return kit.InternalError("query forms failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// GetFormBySlugHandler returns one active form by its public slug.
//
//	@Summary      Get form by slug
//	@Tags         forms
//	@Produce      json
//	@Param        slug  path      string  true  "form slug"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/forms/by-slug/{slug} [get]
func GetFormBySlugHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		form, err := client.CustomForm.Query().
			Where(customform.SlugEQ(c.Params("slug")), customform.Active(true)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("form not found")
			}
			return kit.InternalError("query form failed", err.Error())
		}
		return kit.OK(c, form)
	}
}

// CreateFormHandler creates a custom form with a unique slug.
//
//	@Summary      Create form
//	@Tags         forms
//	@Accept       json
//	@Produce      json
//	@Param        body  body      forms.FormRequest  true  "form payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/forms [post]
func CreateFormHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req FormRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if err := req.validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		taken, err := client.CustomForm.Query().Where(customform.SlugEQ(req.Slug)).Exist(ctx)
		if err != nil {
			return kit.InternalError("check slug failed", err.Error())
		}
		if taken {
			return kit.Conflict("slug already in use", req.Slug)
		}

		create := client.CustomForm.Create().
			SetTitle(req.Title).
			SetSlug(req.Slug).
			SetFields(req.Fields)
		if req.Active != nil {
			create = create.SetActive(*req.Active)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return kit.InternalError("create form failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// UpdateFormHandler replaces a form's fields.
//
//	@Summary      Update form
//	@Tags         forms
//	@Accept       json
//	@Produce      json
//	@Param        id    path      string             true  "Form UUID"
//	@Param        body  body      forms.FormRequest  true  "form payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/forms/{id} [put]
func UpdateFormHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid form id", c.Params("id"))
		}
		var req FormRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if err := req.validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		taken, err := client.CustomForm.Query().
			Where(customform.SlugEQ(req.Slug), customform.IDNEQ(id)).
			Exist(ctx)
		if err != nil {
			return kit.InternalError("check slug failed", err.Error())
		}
		if taken {
			return kit.Conflict("slug already in use", req.Slug)
		}

		upd := client.CustomForm.UpdateOneID(id).
			SetTitle(req.Title).
			SetSlug(req.Slug).
			SetFields(req.Fields)
		if req.Active != nil {
			upd = upd.SetActive(*req.Active)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("form not found")
			}
			return kit.InternalError("update form failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeleteFormHandler deletes a form.
//
//	@Summary      Delete form
//	@Tags         forms
//	@Produce      json
//	@Param        id   path      string  true  "Form UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/forms/{id} [delete]
func DeleteFormHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid form id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := client.CustomForm.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("form not found")
			}
			return kit.InternalError("delete form failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}
