// Package chatbot persists the site chatbot configuration. Inference runs in
// an external service; only the knobs live here.
package chatbot

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio-api/ent"
	"portfolio-api/internal/httpx/kit"
)

// SettingsRequest is the request body for updating chatbot settings.
// swagger:model SettingsRequest
type SettingsRequest struct {
	Enabled      *bool          `json:"enabled,omitempty"`
	Model        string         `json:"model,omitempty"`
	Temperature  *float64       `json:"temperature,omitempty"`
	SystemPrompt *string        `json:"system_prompt,omitempty"`
	Knowledge    map[string]any `json:"knowledge,omitempty"`
}

// GetSettingsHandler returns the single settings record, or schema defaults
// when nothing has been saved yet.
//
//	@Summary      Get chatbot settings
//	@Tags         chatbot
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/chatbot/settings [get]
func GetSettingsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		s, err := client.ChatbotSetting.Query().First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.OK(c, fiber.Map{
					"enabled":     false,
					"model":       "gpt-4o-mini",
					"temperature": 0.7,
				})
			}
			return kit.InternalError("query settings failed", err.Error())
		}
		return kit.OK(c, s)
	}
}

// UpdateSettingsHandler upserts the single settings record.
//
//	@Summary      Update chatbot settings
//	@Tags         chatbot
//	@Accept       json
//	@Produce      json
//	@Param        body  body      chatbot.SettingsRequest  true  "settings payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/chatbot/settings [put]
func UpdateSettingsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SettingsRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 2) {
			return kit.BadRequest("temperature must be within [0,2]", *req.Temperature)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		existing, err := client.ChatbotSetting.Query().First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return kit.InternalError("query settings failed", err.Error())
		}

		if existing == nil {
			create := client.ChatbotSetting.Create()
			if req.Enabled != nil {
				create = create.SetEnabled(*req.Enabled)
			}
			if req.Model != "" {
				create = create.SetModel(req.Model)
			}
			if req.Temperature != nil {
				create = create.SetTemperature(*req.Temperature)
			}
			if req.SystemPrompt != nil {
				create = create.SetSystemPrompt(*req.SystemPrompt)
			}
			if req.Knowledge != nil {
				create = create.SetKnowledge(req.Knowledge)
			}
			saved, err := create.Save(ctx)
			if err != nil {
				return kit.InternalError("create settings failed", err.Error())
			}
			return kit.OK(c, saved)
		}

		upd := client.ChatbotSetting.UpdateOneID(existing.ID)
		if req.Enabled != nil {
			upd = upd.SetEnabled(*req.Enabled)
		}
		if req.Model != "" {
			upd = upd.SetModel(req.Model)
		}
		if req.Temperature != nil {
			upd = upd.SetTemperature(*req.Temperature)
		}
		if req.SystemPrompt != nil {
			upd = upd.SetSystemPrompt(*req.SystemPrompt)
		}
		if req.Knowledge != nil {
			upd = upd.SetKnowledge(req.Knowledge)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update settings failed", err.Error())
		}
		return kit.OK(c, saved)
	}
}
