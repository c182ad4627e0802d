package kit

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// PagingParams contains pagination parameters from an HTTP request. The admin
// lists are small, so only offset paging is supported.
type PagingParams struct {
	Limit     int
	Offset    int
	Sort      string
	WithTotal bool
}

// ParsePaging reads limit/offset/sort from query parameters.
func ParsePaging(c *fiber.Ctx) (PagingParams, error) {
	p := PagingParams{Limit: lo.Clamp(c.QueryInt("limit", 20), 1, 100)}
	p.Offset = c.QueryInt("offset", 0)
	if p.Offset < 0 {
		return p, BadRequest("invalid offset", p.Offset)
	}
	p.Sort = c.Query("sort", "")
	p.WithTotal = c.Query("with_total", "false") == "true"
	return p, nil
}

// ParseSortSpec splits a "field:dir" sort spec. An empty spec means
// "caller's default order".
func ParseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}
