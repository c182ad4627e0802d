// Package seo provides HTTP handlers for per-page SEO metadata and the
// public sitemap.
package seo

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"portfolio-api/ent"
	"portfolio-api/ent/seoentry"
	"portfolio-api/internal/httpx/kit"
)

// SeoEntryRequest is the request body for creating or updating an entry.
// swagger:model SeoEntryRequest
type SeoEntryRequest struct {
	Path        string   `json:"path"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    string   `json:"keywords,omitempty"`
	OgImage     string   `json:"og_image,omitempty"`
	ChangeFreq  string   `json:"change_freq,omitempty"`
	Priority    *float64 `json:"priority,omitempty"`
}

func (r *SeoEntryRequest) validate() error {
	if !strings.HasPrefix(r.Path, "/") {
		return kit.BadRequest("path must start with /", r.Path)
	}
	if r.ChangeFreq != "" {
		if err := seoentry.ChangeFreqValidator(seoentry.ChangeFreq(r.ChangeFreq)); err != nil {
			return kit.BadRequest("invalid change_freq", r.ChangeFreq)
		}
	}
	if r.Priority != nil && (*r.Priority < 0 || *r.Priority > 1) {
		return kit.BadRequest("priority must be within [0,1]", *r.Priority)
	}
	return nil
}

// ListSeoEntriesHandler lists all SEO entries.
//
//	@Summary      List SEO entries
//	@Tags         seo
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/seo [get]
func ListSeoEntriesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		items, err := client.SeoEntry.Query().Order(ent.Asc(seoentry.FieldPath)).All(ctx)
		if err != nil {
			return kit.InternalError("query seo entries failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// CreateSeoEntryHandler creates an entry for a unique path.
//
//	@Summary      Create SEO entry
//	@Tags         seo
//	@Accept       json
//	@Produce      json
//	@Param        body  body      seo.SeoEntryRequest  true  "entry payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/seo [post]
func CreateSeoEntryHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SeoEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if err := req.validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		taken, err := client.SeoEntry.Query().Where(seoentry.PathEQ(req.Path)).Exist(ctx)
		if err != nil {
			return kit.InternalError("check path failed", err.Error())
		}
		if taken {
			return kit.Conflict("path already has an entry", req.Path)
		}

		create := client.SeoEntry.Create().
			SetPath(req.Path).
			SetTitle(req.Title).
			SetDescription(req.Description).
			SetKeywords(req.Keywords).
			SetOgImage(req.OgImage).
			SetNillablePriority(req.Priority)
		if req.ChangeFreq != "" {
			create = create.SetChangeFreq(seoentry.ChangeFreq(req.ChangeFreq))
		}
		created, err := create.Save(ctx)
		if err != nil {
			return kit.InternalError("create seo entry failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// UpdateSeoEntryHandler replaces an entry's fields.
//
//	@Summary      Update SEO entry
//	@Tags         seo
//	@Accept       json
//	@Produce      json
//	@Param        id    path      string               true  "Entry UUID"
//	@Param        body  body      seo.SeoEntryRequest  true  "entry payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/seo/{id} [put]
func UpdateSeoEntryHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid entry id", c.Params("id"))
		}
		var req SeoEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if err := req.validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		taken, err := client.SeoEntry.Query().
			Where(seoentry.PathEQ(req.Path), seoentry.IDNEQ(id)).
			Exist(ctx)
		if err != nil {
			return kit.InternalError("check path failed", err.Error())
		}
		if taken {
			return kit.Conflict("path already has an entry", req.Path)
		}

		upd := client.SeoEntry.UpdateOneID(id).
			SetPath(req.Path).
			SetTitle(req.Title).
			SetDescription(req.Description).
			SetKeywords(req.Keywords).
			SetOgImage(req.OgImage).
			SetNillablePriority(req.Priority)
		if req.ChangeFreq != "" {
			upd = upd.SetChangeFreq(seoentry.ChangeFreq(req.ChangeFreq))
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("seo entry not found")
			}
			return kit.InternalError("update seo entry failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeleteSeoEntryHandler deletes an entry.
//
//	@Summary      Delete SEO entry
//	@Tags         seo
//	@Produce      json
//	@Param        id   path      string  true  "Entry UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/seo/{id} [delete]
func DeleteSeoEntryHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid entry id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := client.SeoEntry.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("seo entry not found")
			}
			return kit.InternalError("delete seo entry failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler renders the public sitemap from the stored SEO entries.
//
//	@Summary      Sitemap
//	@Description  urlset XML rendered from the SEO entries
//	@Tags         seo
//	@Produce      xml
//	@Success      200  {string}  string
//	@Router       /sitemap.xml [get]
func SitemapHandler(client *ent.Client, baseURL string) fiber.Handler {
	base := strings.TrimRight(baseURL, "/")
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		entries, err := client.SeoEntry.Query().Order(ent.Asc(seoentry.FieldPath)).All(ctx)
		if err != nil {
			return kit.InternalError("query seo entries failed", err.Error())
		}

		set := urlSet{
			Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs: lo.Map(entries, func(e *ent.SeoEntry, _ int) sitemapURL {
				return sitemapURL{
					Loc:        base + e.Path,
					LastMod:    e.UpdatedAt.UTC().Format("2006-01-02"),
					ChangeFreq: string(e.ChangeFreq),
					Priority:   e.Priority,
				}
			}),
		}
		out, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			return kit.InternalError("render sitemap failed", err.Error())
		}
		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		return c.SendString(xml.Header + string(out))
	}
}
