package kit

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParsePaging(t *testing.T) {
	app := fiber.New()
	var got PagingParams
	app.Get("/", func(c *fiber.Ctx) error {
		p, err := ParsePaging(c)
		if err != nil {
			return err
		}
		got = p
		return c.SendString("ok")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/?limit=500&offset=3&sort=updated_at:desc", nil))
	if err != nil {
		t.Fatalf("req: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if got.Limit != 100 {
		t.Fatalf("limit should clamp to 100, got %d", got.Limit)
	}
	if got.Offset != 3 || got.Sort != "updated_at:desc" {
		t.Fatalf("unexpected params: %+v", got)
	}
}

func TestParseSortSpec(t *testing.T) {
	f, asc, err := ParseSortSpec("created_at:desc")
	if err != nil || f != "created_at" || asc {
		t.Fatalf("got %q %v %v", f, asc, err)
	}
	f, asc, err = ParseSortSpec("name")
	if err != nil || f != "name" || !asc {
		t.Fatalf("got %q %v %v", f, asc, err)
	}
	if _, _, err := ParseSortSpec("name:sideways"); err == nil {
		t.Fatalf("want error for bad direction")
	}
}
