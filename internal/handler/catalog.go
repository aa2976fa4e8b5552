package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edenspa/eden-spa-api/internal/repository"
)

// CatalogHandler serves the public browse endpoints: the service cards of
// the services page and the product cards of the shop page. Both sit
// behind the response cache middleware since the catalog only changes at
// deploy time.
type CatalogHandler struct {
	Catalog *repository.CatalogRepo
}

func NewCatalogHandler(cat *repository.CatalogRepo) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// ListServices returns every bookable service.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Catalog.ListServices(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"services": items})
}

// ListProducts returns every shop product.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Catalog.ListProducts(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"products": items})
}
