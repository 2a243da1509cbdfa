package catalog

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(src FeedSource) *fiber.App {
	app := fiber.New()
	svc := NewService(src, zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app
}

func TestHandleListProducts(t *testing.T) {
	app := setupTestApp(&stubSource{text: testFeed})

	t.Run("DefaultListing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog/products", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Count    int `json:"count"`
			Products []struct {
				ID    int    `json:"id"`
				Code  string `json:"code"`
				Image string `json:"image"`
			} `json:"products"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, 2, body.Count)
		assert.Equal(t, 1, body.Products[0].ID)
		assert.Equal(t, "http://x/img1.jpg?sz=s400", body.Products[0].Image)
		// Record without an image URL yields an empty display image.
		assert.Empty(t, body.Products[1].Image)
	})

	t.Run("FilteredListing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog/products?search=jacket+b", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body.Count)
	})

	t.Run("SortedByPrice", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog/products?sort=price", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		var body struct {
			Products []struct {
				ID int `json:"id"`
			} `json:"products"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Products, 2)
		assert.Equal(t, 2, body.Products[0].ID)
		assert.Equal(t, 1, body.Products[1].ID)
	})

	t.Run("UnknownSortRejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog/products?sort=rating", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("ZeroMatchesIsNotAnError", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog/products?search=nonexistent", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Zero(t, body.Count)
	})
}

func TestHandleListProducts_LoadFailure(t *testing.T) {
	app := setupTestApp(&stubSource{err: errors.New("bucket unavailable")})

	req := httptest.NewRequest("GET", "/catalog/products", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleProductDetail(t *testing.T) {
	app := setupTestApp(&stubSource{text: testFeed})

	t.Run("Found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog/products/1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			ID    int    `json:"id"`
			Name  string `json:"product_name"`
			Image string `json:"image"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body.ID)
		assert.Equal(t, "Jacket A", body.Name)
		assert.Equal(t, "http://x/img1.jpg?sz=s600", body.Image)
	})

	t.Run("NotFound", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog/products/999", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("InvalidID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/catalog/products/abc", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleFacets(t *testing.T) {
	app := setupTestApp(&stubSource{text: testFeed})

	req := httptest.NewRequest("GET", "/catalog/facets", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Seasons []string `json:"seasons"`
		Genders []string `json:"genders"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"__ALL__", "Spring"}, body.Seasons)
	assert.Equal(t, []string{"__ALL__", "Men"}, body.Genders)
}

func TestHandleStatsAndReload(t *testing.T) {
	src := &stubSource{text: testFeed}
	app := setupTestApp(src)

	// Populate the cache.
	_, err := app.Test(httptest.NewRequest("GET", "/catalog/products", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/stats", nil))
	require.NoError(t, err)
	var stats struct {
		Loaded bool `json:"loaded"`
		Total  int  `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.True(t, stats.Loaded)
	assert.Equal(t, 2, stats.Total)

	resp, err = app.Test(httptest.NewRequest("POST", "/catalog/reload", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/stats", nil))
	require.NoError(t, err)
	stats.Loaded = true
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.False(t, stats.Loaded)

	// The next listing triggers a fresh fetch.
	_, err = app.Test(httptest.NewRequest("GET", "/catalog/products", nil))
	require.NoError(t, err)
	assert.Equal(t, 2, src.callCount())
}
