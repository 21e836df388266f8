package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"empty collection", 0, 5, 0},
		{"exact multiple", 10, 5, 2},
		{"remainder rounds up", 11, 5, 3},
		{"single item", 1, 5, 1},
		{"page larger than total", 3, 100, 1},
		{"zero per page", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.perPage))
		})
	}
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		page    int
		perPage int
		offset  int
	}{
		{"defaults", "", 1, 5, 0},
		{"explicit page and limit", "?page=2&limit=10", 2, 10, 10},
		{"per_page wins over default", "?per_page=7", 1, 7, 0},
		{"negative page clamps", "?page=-3", 1, 5, 0},
		{"garbage page clamps", "?page=abc", 1, 5, 0},
		{"over cap clamps", "?limit=500", 1, 100, 0},
		{"zero limit falls back", "?limit=0", 1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Paging
			app.Get("/x", func(c *fiber.Ctx) error {
				got = ResolvePaging(c, 5, 100)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/x"+tt.query, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			assert.Equal(t, tt.page, got.Page)
			assert.Equal(t, tt.perPage, got.PerPage)
			assert.Equal(t, tt.offset, got.Offset)
			assert.Equal(t, got.PerPage, got.Limit)
		})
	}
}

func TestJsonEnvelopes(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return JsonOK(c, fiber.Map{"programs": []string{"P1"}})
	})
	app.Get("/created", func(c *fiber.Ctx) error {
		return JsonCreated(c, fiber.Map{"message": "created"})
	})
	app.Get("/err", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusForbidden, "nope")
	})

	t.Run("success merges payload next to success flag", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, true, body["success"])
		assert.Contains(t, body, "programs")
	})

	t.Run("created uses 201", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/created", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("error is flat success false plus message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "nope", body["message"])
		assert.Len(t, body, 2)
	})
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
