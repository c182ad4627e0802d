package technologies

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio-api/ent"
	"portfolio-api/internal/esx"
	"portfolio-api/internal/httpx/kit"
)

// SearchTechnologiesHandler queries the search index. Without a configured
// Elasticsearch client the endpoint degrades to empty hits.
//
//	@Summary      Search technologies
//	@Tags         technologies
//	@Produce      json
//	@Param        q       query     string  true   "query text"
//	@Param        limit   query     int     false  "page size"  default(20)
//	@Param        offset  query     int     false  "offset"     default(0)
//	@Success      200     {object}  map[string]interface{}
//	@Failure      400     {object}  map[string]interface{}
//	@Router       /api/v1/search/technologies [get]
func SearchTechnologiesHandler(_ *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			return kit.BadRequest("q is required", nil)
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		out, err := esx.SearchTechnologies(ctx, es, SearchIndex, q, pg.Offset, pg.Limit)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, out)
	}
}
