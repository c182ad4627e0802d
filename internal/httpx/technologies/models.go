// Package technologies provides HTTP handlers for the technology aggregate:
// a Technology row, its single TechDetail record and its set of TechIcons.
package technologies

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-api/ent"
	"portfolio-api/ent/techdetail"
	"portfolio-api/internal/httpx/kit"
)

// IconInput describes one icon asset in create/update payloads. Icons are
// addressed by the (variant_id, version) pair within their technology.
// swagger:model IconInput
type IconInput struct {
	FileURL            string     `json:"file_url,omitempty"`
	ShouldInvertOnDark bool       `json:"should_invert_on_dark"`
	Version            int        `json:"version"`
	VariantID          *uuid.UUID `json:"variant_id,omitempty"`
}

// DetailsInput carries every TechDetail field except the server timestamps.
// swagger:model DetailsInput
type DetailsInput struct {
	WebsiteURL      string `json:"website_url,omitempty"`
	Category        string `json:"category"`
	MyStack         bool   `json:"my_stack"`
	IsFavorite      bool   `json:"is_favorite"`
	UseCase         string `json:"use_case,omitempty"`
	Experience      string `json:"experience,omitempty"`
	Description     string `json:"description,omitempty"`
	Comment         string `json:"comment,omitempty"`
	Purchased       bool   `json:"purchased"`
	YearBeganUsing  int    `json:"year_began_using"`
	MonthBeganUsing string `json:"month_began_using,omitempty"`
	SkillLevel      string `json:"skill_level,omitempty"`
	Rating          string `json:"rating,omitempty"`
}

// Validate checks the closed enum fields before any write happens.
func (d *DetailsInput) Validate() error {
	if err := techdetail.CategoryValidator(techdetail.Category(d.Category)); err != nil {
		return kit.BadRequest("invalid category", d.Category)
	}
	if d.MonthBeganUsing != "" {
		if err := techdetail.MonthBeganUsingValidator(techdetail.MonthBeganUsing(d.MonthBeganUsing)); err != nil {
			return kit.BadRequest("invalid month_began_using", d.MonthBeganUsing)
		}
	}
	if d.SkillLevel != "" {
		if err := techdetail.SkillLevelValidator(techdetail.SkillLevel(d.SkillLevel)); err != nil {
			return kit.BadRequest("invalid skill_level", d.SkillLevel)
		}
	}
	if d.Rating != "" {
		if err := techdetail.RatingValidator(techdetail.Rating(d.Rating)); err != nil {
			return kit.BadRequest("invalid rating", d.Rating)
		}
	}
	return nil
}

// CreateTechnologyRequest is the request body for creating a technology.
// swagger:model CreateTechnologyRequest
type CreateTechnologyRequest struct {
	CompanyName string       `json:"company_name"`
	OldID       string       `json:"old_id,omitempty"`
	Icon        IconInput    `json:"icon"`
	Details     DetailsInput `json:"details"`
}

// Validate checks string and enum constraints for the whole aggregate input.
func (r *CreateTechnologyRequest) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return kit.BadRequest("company_name is required", nil)
	}
	if r.Icon.Version < 0 {
		return kit.BadRequest("icon.version must be positive", r.Icon.Version)
	}
	return r.Details.Validate()
}

// UpdateTechnologyRequest is the request body for updating a technology.
// The icon section addresses one icon by its (variant_id, version) key;
// icon and details patches apply only when the row already exists.
// swagger:model UpdateTechnologyRequest
type UpdateTechnologyRequest struct {
	CompanyName string        `json:"company_name"`
	OldID       *string       `json:"old_id,omitempty"`
	Icon        *IconInput    `json:"icon,omitempty"`
	Details     *DetailsInput `json:"details,omitempty"`
}

// Validate checks string and enum constraints before any write.
func (r *UpdateTechnologyRequest) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return kit.BadRequest("company_name is required", nil)
	}
	if r.Details != nil {
		return r.Details.Validate()
	}
	return nil
}

// TechnologyView is the joined read projection. Icon carries the first icon
// for legacy single-icon callers and has no ordering guarantee.
// swagger:model TechnologyView
type TechnologyView struct {
	ID          uuid.UUID       `json:"id"`
	CompanyName string          `json:"company_name"`
	OldID       string          `json:"old_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Icons       []*ent.TechIcon `json:"icons,omitempty"`
	Icon        *ent.TechIcon   `json:"icon,omitempty"`
	Details     *ent.TechDetail `json:"details,omitempty"`
}

func viewOf(t *ent.Technology, withAllIcons bool) *TechnologyView {
	v := &TechnologyView{
		ID:          t.ID,
		CompanyName: t.CompanyName,
		OldID:       t.OldID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Details:     t.Edges.Details,
	}
	if icons := t.Edges.Icons; len(icons) > 0 {
		v.Icon = icons[0]
		if withAllIcons {
			v.Icons = icons
		}
	}
	return v
}
