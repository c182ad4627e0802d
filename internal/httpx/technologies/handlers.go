package technologies

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"portfolio-api/ent"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"portfolio-api/internal/db"
	"portfolio-api/internal/esx"
	"portfolio-api/internal/httpx/kit"
	"portfolio-api/internal/logx"
)

var techLogger = logx.GetScope("technologies")

// SearchIndex is the Elasticsearch index technologies are mirrored into.
const SearchIndex = "technologies"

// ListTechnologiesHandler returns every technology with all of its icons and
// its details record.
//
//	@Summary      List technologies
//	@Description  Every technology joined with all icons (and their variants) and details
//	@Tags         technologies
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/technologies [get]
func ListTechnologiesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		items, err := client.Technology.Query().
			WithIcons(func(q *ent.TechIconQuery) { q.WithVariant() }).
			WithDetails().
			Order(ent.Desc(technology.FieldUpdatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query technologies failed", err.Error())
		}

		views := lo.Map(items, func(t *ent.Technology, _ int) *TechnologyView {
			return viewOf(t, true)
		})
		return kit.OK(c, views)
	}
}

// GetTechnologyHandler returns the joined projection for one technology with
// a single representative icon.
//
//	@Summary      Get technology
//	@Tags         technologies
//	@Produce      json
//	@Param        id   path      string  true  "Technology UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/technologies/{id} [get]
func GetTechnologyHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid technology id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		t, err := client.Technology.Query().
			Where(technology.IDEQ(id)).
			WithIcons(func(q *ent.TechIconQuery) { q.WithVariant() }).
			WithDetails().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("technology not found")
			}
			return kit.InternalError("query technology failed", err.Error())
		}
		return kit.OK(c, viewOf(t, false))
	}
}

// CreateTechnologyHandler inserts a technology with exactly one initial icon
// and one details record in a single transaction.
//
//	@Summary      Create technology
//	@Tags         technologies
//	@Accept       json
//	@Produce      json
//	@Param        body  body      technologies.CreateTechnologyRequest  true  "aggregate payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/technologies [post]
func CreateTechnologyHandler(client *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateTechnologyRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if err := req.Validate(); err != nil {
			return err
		}
		if req.Icon.Version == 0 {
			req.Icon.Version = 1
		}

		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()

		if req.Icon.VariantID != nil {
			ok, err := client.IconVariant.Query().Where(iconvariant.IDEQ(*req.Icon.VariantID)).Exist(ctx)
			if err != nil {
				return kit.InternalError("query variant failed", err.Error())
			}
			if !ok {
				return kit.BadRequest("unknown variant_id", req.Icon.VariantID)
			}
		}

		var created *ent.Technology
		var details *ent.TechDetail
		err := db.WithTx(ctx, client, func(tx *ent.Tx) error {
			t, err := tx.Technology.Create().
				SetCompanyName(req.CompanyName).
				SetOldID(req.OldID).
				Save(ctx)
			if err != nil {
				return err
			}

			iconCreate := tx.TechIcon.Create().
				SetTechnologyID(t.ID).
				SetNillableVariantID(req.Icon.VariantID).
				SetShouldInvertOnDark(req.Icon.ShouldInvertOnDark).
				SetVersion(req.Icon.Version)
			if req.Icon.FileURL != "" {
				iconCreate = iconCreate.SetFileURL(req.Icon.FileURL)
			}
			if _, err := iconCreate.Save(ctx); err != nil {
				return err
			}

			d, err := detailCreate(tx, t.ID, &req.Details).Save(ctx)
			if err != nil {
				return err
			}
			created, details = t, d
			return nil
		})
		if err != nil {
			return kit.InternalError("create technology failed", err.Error())
		}

		indexTechnology(ctx, es, created, details)
		return kit.Created(c, fiber.Map{"id": created.ID})
	}
}

// UpdateTechnologyHandler patches the technology row unconditionally and
// patches its icon (addressed by variant+version) and details records only
// when they already exist. Missing children are skipped silently.
//
//	@Summary      Update technology
//	@Tags         technologies
//	@Accept       json
//	@Produce      json
//	@Param        id    path      string                                true  "Technology UUID"
//	@Param        body  body      technologies.UpdateTechnologyRequest  true  "aggregate payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/technologies/{id} [put]
func UpdateTechnologyHandler(client *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid technology id", c.Params("id"))
		}

		var req UpdateTechnologyRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if err := req.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()

		exists, err := client.Technology.Query().Where(technology.IDEQ(id)).Exist(ctx)
		if err != nil {
			return kit.InternalError("query technology failed", err.Error())
		}
		if !exists {
			return kit.NotFound("technology not found")
		}

		iconAction, detailsAction := "skipped", "skipped"
		var updated *ent.Technology
		var details *ent.TechDetail
		err = db.WithTx(ctx, client, func(tx *ent.Tx) error {
			upd := tx.Technology.UpdateOneID(id).SetCompanyName(req.CompanyName)
			if req.OldID != nil {
				upd = upd.SetOldID(*req.OldID)
			}
			t, err := upd.Save(ctx)
			if err != nil {
				return err
			}
			updated = t

			if req.Icon != nil {
				version := req.Icon.Version
				if version == 0 {
					version = 1
				}
				key := iconKey{TechID: id, VariantID: req.Icon.VariantID, Version: version}
				icon, err := tx.TechIcon.Query().Where(iconKeyWhere(key)...).First(ctx)
				if err != nil && !ent.IsNotFound(err) {
					return err
				}
				if icon != nil {
					iconUpd := tx.TechIcon.UpdateOneID(icon.ID).
						SetShouldInvertOnDark(req.Icon.ShouldInvertOnDark)
					if req.Icon.FileURL != "" {
						iconUpd = iconUpd.SetFileURL(req.Icon.FileURL)
					}
					if _, err := iconUpd.Save(ctx); err != nil {
						return err
					}
					iconAction = "updated"
				}
			}

			if req.Details != nil {
				d, err := tx.TechDetail.Query().
					Where(techdetail.HasTechnologyWith(technology.IDEQ(id))).
					Only(ctx)
				if err != nil && !ent.IsNotFound(err) {
					return err
				}
				if d != nil {
					patched, err := detailPatch(tx, d.ID, req.Details).Save(ctx)
					if err != nil {
						return err
					}
					details = patched
					detailsAction = "updated"
				}
			}
			return nil
		})
		if err != nil {
			return kit.InternalError("update technology failed", err.Error())
		}

		indexTechnology(ctx, es, updated, details)
		return kit.OK(c, fiber.Map{"id": id, "icon": iconAction, "details": detailsAction})
	}
}

// DeleteTechnologyHandler removes a technology together with all of its
// icons and its details record in one transaction.
//
//	@Summary      Delete technology
//	@Tags         technologies
//	@Produce      json
//	@Param        id   path      string  true  "Technology UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/technologies/{id} [delete]
func DeleteTechnologyHandler(client *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid technology id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()

		exists, err := client.Technology.Query().Where(technology.IDEQ(id)).Exist(ctx)
		if err != nil {
			return kit.InternalError("query technology failed", err.Error())
		}
		if !exists {
			return kit.NotFound("technology not found")
		}

		var iconsDeleted int
		err = db.WithTx(ctx, client, func(tx *ent.Tx) error {
			n, err := tx.TechIcon.Delete().
				Where(techicon.HasTechnologyWith(technology.IDEQ(id))).
				Exec(ctx)
			if err != nil {
				return err
			}
			iconsDeleted = n
			if _, err := tx.TechDetail.Delete().
				Where(techdetail.HasTechnologyWith(technology.IDEQ(id))).
				Exec(ctx); err != nil {
				return err
			}
			return tx.Technology.DeleteOneID(id).Exec(ctx)
		})
		if err != nil {
			return kit.InternalError("delete technology failed", err.Error())
		}

		if err := esx.DeleteTechnology(ctx, es, SearchIndex, id.String()); err != nil {
			techLogger.Sugar().Warnf("es delete %s: %v", id, err)
		}
		return kit.OK(c, fiber.Map{"status": "deleted", "icons_deleted": iconsDeleted})
	}
}

func detailCreate(tx *ent.Tx, techID uuid.UUID, d *DetailsInput) *ent.TechDetailCreate {
	create := tx.TechDetail.Create().
		SetTechnologyID(techID).
		SetCategory(techdetail.Category(d.Category)).
		SetWebsiteURL(d.WebsiteURL).
		SetMyStack(d.MyStack).
		SetIsFavorite(d.IsFavorite).
		SetUseCase(d.UseCase).
		SetExperience(d.Experience).
		SetDescription(d.Description).
		SetComment(d.Comment).
		SetPurchased(d.Purchased).
		SetYearBeganUsing(d.YearBeganUsing)
	if d.MonthBeganUsing != "" {
		create = create.SetMonthBeganUsing(techdetail.MonthBeganUsing(d.MonthBeganUsing))
	}
	if d.SkillLevel != "" {
		create = create.SetSkillLevel(techdetail.SkillLevel(d.SkillLevel))
	}
	if d.Rating != "" {
		create = create.SetRating(techdetail.Rating(d.Rating))
	}
	return create
}

func detailPatch(tx *ent.Tx, detailID uuid.UUID, d *DetailsInput) *ent.TechDetailUpdateOne {
	upd := tx.TechDetail.UpdateOneID(detailID).
		SetCategory(techdetail.Category(d.Category)).
		SetWebsiteURL(d.WebsiteURL).
		SetMyStack(d.MyStack).
		SetIsFavorite(d.IsFavorite).
		SetUseCase(d.UseCase).
		SetExperience(d.Experience).
		SetDescription(d.Description).
		SetComment(d.Comment).
		SetPurchased(d.Purchased).
		SetYearBeganUsing(d.YearBeganUsing)
	if d.MonthBeganUsing != "" {
		upd = upd.SetMonthBeganUsing(techdetail.MonthBeganUsing(d.MonthBeganUsing))
	} else {
		upd = upd.ClearMonthBeganUsing()
	}
	if d.SkillLevel != "" {
		upd = upd.SetSkillLevel(techdetail.SkillLevel(d.SkillLevel))
	} else {
		upd = upd.ClearSkillLevel()
	}
	if d.Rating != "" {
		upd = upd.SetRating(techdetail.Rating(d.Rating))
	} else {
		upd = upd.ClearRating()
	}
	return upd
}

func indexTechnology(ctx context.Context, es *esx.Client, t *ent.Technology, d *ent.TechDetail) {
	if es == nil || t == nil {
		return
	}
	doc := esx.TechDoc{
		ID:          t.ID.String(),
		CompanyName: t.CompanyName,
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d != nil {
		doc.Category = string(d.Category)
		doc.Description = d.Description
		doc.UseCase = d.UseCase
	}
	if err := esx.IndexTechnology(ctx, es, SearchIndex, doc); err != nil {
		techLogger.Sugar().Warnf("es index %s: %v", t.ID, err)
	}
}
