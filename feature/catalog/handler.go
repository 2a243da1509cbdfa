package catalog

import (
	"strconv"

	"catalog-manager/core/logger"
	"catalog-manager/feature/catalog/imageurl"
	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/catalog/query"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Image sizes requested from the asset CDN per rendering context.
const (
	gridImageSize   = 400
	detailImageSize = 600
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/products", h.HandleListProducts)
	group.Get("/products/:id", h.HandleProductDetail)
	group.Get("/facets", h.HandleFacets)
	group.Get("/stats", h.HandleStats)
	group.Post("/reload", h.HandleReload)
}

// HandleListProducts returns the filtered, ordered product listing.
// @Summary List Products
// @Description Returns the product listing filtered by search text, season and gender, in the requested sort order.
// @Tags catalog
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring match on name, genre or code"
// @Param season query string false "Exact season value, or __ALL__"
// @Param gender query string false "Exact gender value, or __ALL__"
// @Param sort query string false "Sort mode: default, price, productNumber, productYear"
// @Success 200 {object} map[string]interface{} "Listing"
// @Failure 400 {object} map[string]string "Unknown sort mode"
// @Failure 500 {object} map[string]string "Feed load failed"
// @Router /catalog/products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sortKey := query.SortKey(c.Query("sort", string(query.SortDefault)))
	if !sortKey.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown sort mode: " + string(sortKey),
		})
	}

	spec := query.Spec{
		Search: c.Query("search"),
		Season: c.Query("season", query.All),
		Gender: c.Query("gender", query.All),
		Sort:   sortKey,
	}

	records, err := h.service.Products(c.Context(), spec)
	if err != nil {
		l.Error("Product listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	items := make([]models.ListingItem, len(records))
	for i, r := range records {
		items[i] = models.ListingItem{
			ProductRecord: r,
			Image:         imageurl.WithSize(r.ImageURLOrEmpty(), gridImageSize),
		}
	}

	return c.JSON(fiber.Map{
		"count":    len(items),
		"products": items,
	})
}

// HandleProductDetail returns one product by id.
// @Summary Product Detail
// @Description Returns the full record for a single product, with the image sized for the detail view.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ListingItem "Product"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Feed load failed"
// @Router /catalog/products/{id} [get]
func (h *Handler) HandleProductDetail(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	rec, err := h.service.Product(c.Context(), id)
	if err != nil {
		l.Error("Product detail failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}

	return c.JSON(models.ListingItem{
		ProductRecord: *rec,
		Image:         imageurl.WithSize(rec.ImageURLOrEmpty(), detailImageSize),
	})
}

// HandleFacets returns the selectable filter options.
// @Summary Filter Facets
// @Description Returns the season and gender filter options derived from the loaded collection.
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} models.Facets "Facets"
// @Failure 500 {object} map[string]string "Feed load failed"
// @Router /catalog/facets [get]
func (h *Handler) HandleFacets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	facets, err := h.service.Facets(c.Context())
	if err != nil {
		l.Error("Facet derivation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(facets)
}

// HandleStats returns cache diagnostics.
// @Summary Catalog Stats
// @Description Reports whether the catalog is loaded and how many lines were malformed or duplicated.
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} models.CacheStats "Stats"
// @Router /catalog/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// HandleReload clears the catalog cache.
// @Summary Reload Catalog
// @Description Drops the cached catalog; the next query refetches and reparses the feed.
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Catalog reload requested")

	h.service.Reload()
	return c.JSON(fiber.Map{"status": "cleared"})
}
