package technologies

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/ent"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/predicate"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"portfolio-api/internal/db"
	"portfolio-api/internal/httpx/kit"
)

// iconKey is the natural key of a TechIcon. A nil VariantID addresses the
// technology's variant-less icon at that version.
type iconKey struct {
	TechID    uuid.UUID
	VariantID *uuid.UUID
	Version   int
}

type iconPatch struct {
	FileURL            *string
	ShouldInvertOnDark *bool
}

func iconKeyWhere(key iconKey) []predicate.TechIcon {
	preds := []predicate.TechIcon{
		techicon.HasTechnologyWith(technology.IDEQ(key.TechID)),
		techicon.VersionEQ(key.Version),
	}
	if key.VariantID != nil {
		preds = append(preds, techicon.HasVariantWith(iconvariant.IDEQ(*key.VariantID)))
	} else {
		preds = append(preds, techicon.Not(techicon.HasVariant()))
	}
	return preds
}

// upsertIcon is the canonical icon write path: every entry point that touches
// icons by key goes through here, looking up the full
// (technology, variant, version) triple. Returns the row and whether it was
// freshly created.
func upsertIcon(ctx context.Context, tx *ent.Tx, key iconKey, patch iconPatch) (*ent.TechIcon, bool, error) {
	existing, err := tx.TechIcon.Query().
		Where(iconKeyWhere(key)...).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, err
	}

	if existing != nil {
		upd := tx.TechIcon.UpdateOneID(existing.ID).SetVersion(key.Version)
		if patch.FileURL != nil {
			upd = upd.SetFileURL(*patch.FileURL)
		}
		if patch.ShouldInvertOnDark != nil {
			upd = upd.SetShouldInvertOnDark(*patch.ShouldInvertOnDark)
		}
		icon, err := upd.Save(ctx)
		return icon, false, err
	}

	create := tx.TechIcon.Create().
		SetTechnologyID(key.TechID).
		SetNillableVariantID(key.VariantID).
		SetVersion(key.Version)
	if patch.FileURL != nil {
		create = create.SetFileURL(*patch.FileURL)
	}
	if patch.ShouldInvertOnDark != nil {
		create = create.SetShouldInvertOnDark(*patch.ShouldInvertOnDark)
	}
	icon, err := create.Save(ctx)
	return icon, true, err
}

// UpdateIconByOldIDRequest is the request body for the legacy-id entry point.
// swagger:model UpdateIconByOldIDRequest
type UpdateIconByOldIDRequest struct {
	OldID              string     `json:"old_id"`
	FileURL            string     `json:"file_url,omitempty"`
	ShouldInvertOnDark bool       `json:"should_invert_on_dark"`
	Version            int        `json:"version"`
	VariantID          *uuid.UUID `json:"variant_id,omitempty"`
}

// IconUpsertResult reports which icon row an upsert touched.
// swagger:model IconUpsertResult
type IconUpsertResult struct {
	Action       string     `json:"action"` // updated | created
	IconID       uuid.UUID  `json:"icon_id"`
	TechnologyID uuid.UUID  `json:"technology_id"`
	VariantID    *uuid.UUID `json:"variant_id,omitempty"`
	Version      int        `json:"version"`
}

// UpdateIconByOldIDHandler patches or inserts an icon for a technology
// resolved through its legacy external id.
//
//	@Summary      Upsert icon by legacy id
//	@Description  Resolve a technology by old_id and upsert the icon at (variant, version)
//	@Tags         technologies
//	@Accept       json
//	@Produce      json
//	@Param        body  body      technologies.UpdateIconByOldIDRequest  true  "icon payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/technologies/icons/by-old-id [put]
func UpdateIconByOldIDHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpdateIconByOldIDRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if req.OldID == "" {
			return kit.BadRequest("old_id is required", nil)
		}
		if req.Version == 0 {
			req.Version = 1
		}
		if req.Version < 1 {
			return kit.BadRequest("version must be positive", req.Version)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		tech, err := client.Technology.Query().Where(technology.OldIDEQ(req.OldID)).First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("no technology with old_id " + req.OldID)
			}
			return kit.InternalError("resolve old_id failed", err.Error())
		}

		var out IconUpsertResult
		err = db.WithTx(ctx, client, func(tx *ent.Tx) error {
			key := iconKey{TechID: tech.ID, VariantID: req.VariantID, Version: req.Version}
			icon, created, err := upsertIcon(ctx, tx, key, iconPatch{
				FileURL:            &req.FileURL,
				ShouldInvertOnDark: &req.ShouldInvertOnDark,
			})
			if err != nil {
				return err
			}
			out = IconUpsertResult{
				Action:       actionOf(created),
				IconID:       icon.ID,
				TechnologyID: tech.ID,
				VariantID:    req.VariantID,
				Version:      icon.Version,
			}
			return nil
		})
		if err != nil {
			return kit.InternalError("upsert icon failed", err.Error())
		}
		return kit.OK(c, out)
	}
}

// IconURLEntry is one (variant, url) pair in a bulk icon-url update.
// swagger:model IconURLEntry
type IconURLEntry struct {
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	FileURL   string     `json:"file_url"`
}

// UpdateTechIconUrlsRequest is the request body for the bulk icon-url update.
// swagger:model UpdateTechIconUrlsRequest
type UpdateTechIconUrlsRequest struct {
	Version *int           `json:"version,omitempty"`
	Icons   []IconURLEntry `json:"icons"`
}

// UpdateTechIconUrlsHandler upserts icon file URLs for one technology, one
// row per (variant, version) key. Only file_url is patched on existing rows.
//
//	@Summary      Bulk update icon URLs
//	@Description  Upsert icon file URLs for a technology at the given version (default 1)
//	@Tags         technologies
//	@Accept       json
//	@Produce      json
//	@Param        id    path      string                                  true  "Technology UUID"
//	@Param        body  body      technologies.UpdateTechIconUrlsRequest  true  "icon url entries"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/technologies/{id}/icon-urls [put]
func UpdateTechIconUrlsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		techID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid technology id", c.Params("id"))
		}

		var req UpdateTechIconUrlsRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if len(req.Icons) == 0 {
			return kit.BadRequest("icons must not be empty", nil)
		}
		targetVersion := 1
		if req.Version != nil {
			targetVersion = *req.Version
		}
		if targetVersion < 1 {
			return kit.BadRequest("version must be positive", targetVersion)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()

		exists, err := client.Technology.Query().Where(technology.IDEQ(techID)).Exist(ctx)
		if err != nil {
			return kit.InternalError("query technology failed", err.Error())
		}
		if !exists {
			return kit.NotFound("technology not found")
		}

		results := make([]IconUpsertResult, 0, len(req.Icons))
		err = db.WithTx(ctx, client, func(tx *ent.Tx) error {
			for _, entry := range req.Icons {
				fileURL := entry.FileURL
				key := iconKey{TechID: techID, VariantID: entry.VariantID, Version: targetVersion}
				icon, created, err := upsertIcon(ctx, tx, key, iconPatch{FileURL: &fileURL})
				if err != nil {
					return err
				}
				results = append(results, IconUpsertResult{
					Action:       actionOf(created),
					IconID:       icon.ID,
					TechnologyID: techID,
					VariantID:    entry.VariantID,
					Version:      icon.Version,
				})
			}
			return nil
		})
		if err != nil {
			return kit.InternalError("update icon urls failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"results": results})
	}
}

func actionOf(created bool) string {
	if created {
		return "created"
	}
	return "updated"
}
