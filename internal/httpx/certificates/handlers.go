// Package certificates provides HTTP handlers for certificate records.
package certificates

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/ent"
	"portfolio-api/ent/certificate"
	"portfolio-api/internal/httpx/kit"
)

// CertificateRequest is the request body for creating or updating a certificate.
// swagger:model CertificateRequest
type CertificateRequest struct {
	Title         string `json:"title"`
	Issuer        string `json:"issuer,omitempty"`
	IssueMonth    string `json:"issue_month,omitempty"`
	IssueYear     int    `json:"issue_year,omitempty"`
	ExpiryMonth   string `json:"expiry_month,omitempty"`
	ExpiryYear    *int   `json:"expiry_year,omitempty"`
	CredentialID  string `json:"credential_id,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
	Description   string `json:"description,omitempty"`
}

func (r *CertificateRequest) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return kit.BadRequest("title is required", nil)
	}
	if r.IssueMonth != "" {
		if err := certificate.IssueMonthValidator(certificate.IssueMonth(r.IssueMonth)); err != nil {
			return kit.BadRequest("invalid issue_month", r.IssueMonth)
		}
	}
	if r.ExpiryMonth != "" {
		if err := certificate.ExpiryMonthValidator(certificate.ExpiryMonth(r.ExpiryMonth)); err != nil {
			return kit.BadRequest("invalid expiry_month", r.ExpiryMonth)
		}
	}
	return nil
}

// ListCertificatesHandler lists certificates, newest issue year first.
//
//	@Summary      List certificates
//	@Tags         certificates
//	@Produce      json
//	@Param        limit   query     int  false  "page size"  default(20)
//	@Param        offset  query     int  false  "offset"     default(0)
//	@Success      200     {object}  map[string]interface{}
//	@Router       /api/v1/certificates [get]
func ListCertificatesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		items, err := client.Certificate.Query().
			Order(ent.Desc(certificate.FieldIssueYear), ent.Desc(certificate.FieldUpdatedAt)).
			Limit(pg.Limit).
			Offset(pg.Offset).
			All(ctx)
		if err != nil {
			return kit.InternalError("query certificates failed", err.Error())
		}

		nextOff := pg.Offset + len(items)
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: &nextOff, HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// CreateCertificateHandler creates a certificate.
//
//	@Summary      Create certificate
//	@Tags         certificates
//	@Accept       json
//	@Produce      json
//	@Param        body  body      certificates.CertificateRequest  true  "certificate payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/certificates [post]
func CreateCertificateHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CertificateRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if err := req.validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		create := client.Certificate.Create().
			SetTitle(req.Title).
			SetIssuer(req.Issuer).
			SetIssueYear(req.IssueYear).
			SetCredentialID(req.CredentialID).
			SetCredentialURL(req.CredentialURL).
			SetDescription(req.Description).
			SetNillableExpiryYear(req.ExpiryYear)
		if req.IssueMonth != "" {
			create = create.SetIssueMonth(certificate.IssueMonth(req.IssueMonth))
		}
		if req.ExpiryMonth != "" {
			create = create.SetExpiryMonth(certificate.ExpiryMonth(req.ExpiryMonth))
		}
		created, err := create.Save(ctx)
		if err != nil {
			return kit.InternalError("create certificate failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// UpdateCertificateHandler replaces a certificate's fields.
//
//	@Summary      Update certificate
//	@Tags         certificates
//	@Accept       json
//	@Produce      json
//	@Param        id    path      string                           true  "Certificate UUID"
//	@Param        body  body      certificates.CertificateRequest  true  "certificate payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/certificates/{id} [put]
func UpdateCertificateHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid certificate id", c.Params("id"))
		}
		var req CertificateRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if err := req.validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		upd := client.Certificate.UpdateOneID(id).
			SetTitle(req.Title).
			SetIssuer(req.Issuer).
			SetIssueYear(req.IssueYear).
			SetCredentialID(req.CredentialID).
			SetCredentialURL(req.CredentialURL).
			SetDescription(req.Description)
		if req.ExpiryYear != nil {
			upd = upd.SetExpiryYear(*req.ExpiryYear)
		} else {
			upd = upd.ClearExpiryYear()
		}
		if req.IssueMonth != "" {
			upd = upd.SetIssueMonth(certificate.IssueMonth(req.IssueMonth))
		} else {
			upd = upd.ClearIssueMonth()
		}
		if req.ExpiryMonth != "" {
			upd = upd.SetExpiryMonth(certificate.ExpiryMonth(req.ExpiryMonth))
		} else {
			upd = upd.ClearExpiryMonth()
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("certificate not found")
			}
			return kit.InternalError("update certificate failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeleteCertificateHandler deletes a certificate.
//
//	@Summary      Delete certificate
//	@Tags         certificates
//	@Produce      json
//	@Param        id   path      string  true  "Certificate UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/certificates/{id} [delete]
func DeleteCertificateHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid certificate id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := client.Certificate.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("certificate not found")
			}
			return kit.InternalError("delete certificate failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}
