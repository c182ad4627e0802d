// Package variants provides HTTP handlers for icon variants, including the
// cascade semantics of removing a variant that icons still reference.
package variants

import (
	"context"
	"strings"
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
	"portfolio-api/internal/httpx/technologies"
	"portfolio-api/internal/logx"
)

var variantLogger = logx.GetScope("variants")

// VariantRequest is the request body for creating or renaming a variant.
// swagger:model VariantRequest
type VariantRequest struct {
	Name string `json:"name"`
}

// ListVariantsHandler lists all icon variants.
//
//	@Summary      List variants
//	@Tags         variants
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/variants [get]
func ListVariantsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		items, err := client.IconVariant.Query().Order(ent.Asc(iconvariant.FieldName)).All(ctx)
		if err != nil {
			return kit.InternalError("query variants failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// CreateVariantHandler creates a named variant.
//
//	@Summary      Create variant
//	@Tags         variants
//	@Accept       json
//	@Produce      json
//	@Param        body  body      variants.VariantRequest  true  "variant payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/variants [post]
func CreateVariantHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req VariantRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name is required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		created, err := client.IconVariant.Create().SetName(strings.TrimSpace(req.Name)).Save(ctx)
		if err != nil {
			return kit.InternalError("create variant failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// RenameVariantHandler renames a variant.
//
//	@Summary      Rename variant
//	@Tags         variants
//	@Accept       json
//	@Produce      json
//	@Param        id    path      string                   true  "Variant UUID"
//	@Param        body  body      variants.VariantRequest  true  "variant payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/variants/{id} [put]
func RenameVariantHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid variant id", c.Params("id"))
		}
		var req VariantRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name is required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		updated, err := client.IconVariant.UpdateOneID(id).SetName(strings.TrimSpace(req.Name)).Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("variant not found")
			}
			return kit.InternalError("rename variant failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeleteVariantHandler removes a variant. The handle_icons query parameter
// selects what happens to icons still referencing it:
//
//   - delete: every technology owning an icon in this variant is destroyed
//     together with all of its icons and its details record. This cascades
//     all the way up to the technology, not just the icon.
//   - reassign: icons are repointed to new_variant_id. Moves are pre-checked
//     against the target for (technology, version) collisions; any collision
//     rejects the whole operation with no state change.
//
//	@Summary      Delete variant
//	@Description  Remove a variant; handle_icons=delete cascades up to owning technologies, handle_icons=reassign repoints icons to new_variant_id
//	@Tags         variants
//	@Produce      json
//	@Param        id              path      string  true   "Variant UUID"
//	@Param        handle_icons    query     string  true   "delete or reassign"
//	@Param        new_variant_id  query     string  false  "target variant for reassign"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Failure      409  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/variants/{id} [delete]
func DeleteVariantHandler(client *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid variant id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()

		exists, err := client.IconVariant.Query().Where(iconvariant.IDEQ(id)).Exist(ctx)
		if err != nil {
			return kit.InternalError("query variant failed", err.Error())
		}
		if !exists {
			return kit.NotFound("variant not found")
		}

		switch c.Query("handle_icons") {
		case "delete":
			return removeWithCascade(c, ctx, client, es, id)
		case "reassign":
			return removeWithReassign(c, ctx, client, id)
		default:
			return kit.BadRequest("handle_icons must be delete or reassign", c.Query("handle_icons"))
		}
	}
}

func removeWithCascade(c *fiber.Ctx, ctx context.Context, client *ent.Client, es *esx.Client, variantID uuid.UUID) error {
	affected, err := client.Technology.Query().
		Where(technology.HasIconsWith(techicon.HasVariantWith(iconvariant.IDEQ(variantID)))).
		IDs(ctx)
	if err != nil {
		return kit.InternalError("query affected technologies failed", err.Error())
	}

	err = db.WithTx(ctx, client, func(tx *ent.Tx) error {
		if len(affected) > 0 {
			if _, err := tx.TechIcon.Delete().
				Where(techicon.HasTechnologyWith(technology.IDIn(affected...))).
				Exec(ctx); err != nil {
				return err
			}
			if _, err := tx.TechDetail.Delete().
				Where(techdetail.HasTechnologyWith(technology.IDIn(affected...))).
				Exec(ctx); err != nil {
				return err
			}
			if _, err := tx.Technology.Delete().
				Where(technology.IDIn(affected...)).
				Exec(ctx); err != nil {
				return err
			}
		}
		return tx.IconVariant.DeleteOneID(variantID).Exec(ctx)
	})
	if err != nil {
		return kit.InternalError("delete variant cascade failed", err.Error())
	}

	for _, techID := range affected {
		if err := esx.DeleteTechnology(ctx, es, technologies.SearchIndex, techID.String()); err != nil {
			variantLogger.Sugar().Warnf("es delete %s: %v", techID, err)
		}
	}
	return kit.OK(c, fiber.Map{"status": "deleted", "technologies_deleted": len(affected)})
}

func removeWithReassign(c *fiber.Ctx, ctx context.Context, client *ent.Client, variantID uuid.UUID) error {
	newIDRaw := c.Query("new_variant_id")
	if newIDRaw == "" {
		return kit.BadRequest("new_variant_id is required when handle_icons=reassign", nil)
	}
	newID, err := uuid.Parse(newIDRaw)
	if err != nil {
		return kit.BadRequest("invalid new_variant_id", newIDRaw)
	}
	if newID == variantID {
		return kit.BadRequest("new_variant_id must differ from the variant being removed", newIDRaw)
	}
	targetExists, err := client.IconVariant.Query().Where(iconvariant.IDEQ(newID)).Exist(ctx)
	if err != nil {
		return kit.InternalError("query target variant failed", err.Error())
	}
	if !targetExists {
		return kit.NotFound("target variant not found")
	}

	moving, err := client.TechIcon.Query().
		Where(techicon.HasVariantWith(iconvariant.IDEQ(variantID))).
		WithTechnology().
		All(ctx)
	if err != nil {
		return kit.InternalError("query icons failed", err.Error())
	}
	occupied, err := client.TechIcon.Query().
		Where(techicon.HasVariantWith(iconvariant.IDEQ(newID))).
		WithTechnology().
		All(ctx)
	if err != nil {
		return kit.InternalError("query target icons failed", err.Error())
	}

	type slot struct {
		tech    uuid.UUID
		version int
	}
	taken := lo.SliceToMap(occupied, func(i *ent.TechIcon) (slot, bool) {
		return slot{tech: i.Edges.Technology.ID, version: i.Version}, true
	})
	conflicts := lo.FilterMap(moving, func(i *ent.TechIcon, _ int) (fiber.Map, bool) {
		s := slot{tech: i.Edges.Technology.ID, version: i.Version}
		if !taken[s] {
			return nil, false
		}
		return fiber.Map{"technology_id": s.tech, "version": s.version}, true
	})
	if len(conflicts) > 0 {
		return kit.Conflict("target variant already holds icons at these keys", conflicts)
	}

	err = db.WithTx(ctx, client, func(tx *ent.Tx) error {
		for _, icon := range moving {
			if _, err := tx.TechIcon.UpdateOneID(icon.ID).SetVariantID(newID).Save(ctx); err != nil {
				return err
			}
		}
		// variant removal is deferred until every icon has moved
		return tx.IconVariant.DeleteOneID(variantID).Exec(ctx)
	})
	if err != nil {
		return kit.InternalError("reassign variant failed", err.Error())
	}
	return kit.OK(c, fiber.Map{"status": "reassigned", "icons_moved": len(moving), "new_variant_id": newID})
}
