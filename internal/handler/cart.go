package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/edenspa/eden-spa-api/internal/cart"
	"github.com/edenspa/eden-spa-api/internal/middleware"
	"github.com/edenspa/eden-spa-api/internal/model"
	"github.com/edenspa/eden-spa-api/internal/repository"
)

// CartHandler manages the session-scoped cart and the two-step checkout.
// Checkout itself only raises a confirmation prompt; the order summary is
// built when the prompt is accepted, and the cart is cleared only when
// that summary is dismissed.
type CartHandler struct {
	Catalog productCatalog
	Carts   cartStore
	Prompts promptStore
	Orders  orderStore
}

func NewCartHandler(cat productCatalog, ca cartStore, pr promptStore, or orderStore) *CartHandler {
	return &CartHandler{Catalog: cat, Carts: ca, Prompts: pr, Orders: or}
}

// ----- DTOs -----

type addItemReq struct {
	Product string `json:"product"`
}

type cartResp struct {
	Items           []cart.Line `json:"items"`
	Total           string      `json:"total"`
	ItemCount       int         `json:"item_count"`
	CheckoutEnabled bool        `json:"checkout_enabled"`
}

func cartView(c cart.Cart) cartResp {
	items := c.Lines
	if items == nil {
		items = []cart.Line{}
	}
	return cartResp{
		Items:           items,
		Total:           cart.FormatBRL(c.TotalCents()),
		ItemCount:       c.ItemCount(),
		CheckoutEnabled: !c.IsEmpty(),
	}
}

// Get returns the session's cart with its formatted total.
func (h *CartHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ct, err := h.Carts.Get(ctx, middleware.SessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load cart failed"})
	}
	return c.JSON(http.StatusOK, cartView(ct))
}

// AddItem puts one unit of a catalog product in the cart. Adding an item
// already present bumps its quantity instead of appending a new line.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemReq
	if err := c.Bind(&req); err != nil || req.Product == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing_field", "field": "product"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Catalog.GetProduct(ctx, req.Product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown_product"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	jti := middleware.SessionID(c)
	ct, err := h.Carts.Get(ctx, jti)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load cart failed"})
	}
	ct.Add(p.Slug, p.Name, p.PriceCents, p.ImageURL)
	if err := h.Carts.Save(ctx, jti, ct); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save cart failed"})
	}
	return c.JSON(http.StatusOK, cartView(ct))
}

// RemoveItem decrements one unit; the line disappears at quantity zero.
// Removing an id that is not in the cart changes nothing.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	ct, err := h.Carts.Get(ctx, jti)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load cart failed"})
	}
	ct.Remove(c.Param("id"))
	if err := h.Carts.Save(ctx, jti, ct); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save cart failed"})
	}
	return c.JSON(http.StatusOK, cartView(ct))
}

// Checkout raises the purchase confirmation prompt. The cart must not be
// empty; nothing is ordered or cleared at this point.
func (h *CartHandler) Checkout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	ct, err := h.Carts.Get(ctx, jti)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load cart failed"})
	}
	if ct.IsEmpty() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "empty_cart"})
	}

	p := model.Prompt{
		ID:     uuid.NewString(),
		Kind:   model.PromptConfirm,
		Title:  "Finalizar Compra",
		Text:   "Deseja finalizar a compra?",
		Action: model.ActionCheckout,
	}
	if err := h.Prompts.Put(ctx, jti, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save prompt failed"})
	}
	return c.JSON(http.StatusAccepted, p)
}

// GetOrder returns the order summary awaiting dismissal.
func (h *CartHandler) GetOrder(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sum, err := h.Orders.Get(ctx, middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no_order"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load order failed"})
	}
	return c.JSON(http.StatusOK, sum)
}

// DismissOrder acknowledges the summary. Only now is the cart cleared;
// until this call the purchased items stay in it, so a summary the client
// never saw cannot silently eat the cart.
func (h *CartHandler) DismissOrder(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jti := middleware.SessionID(c)
	if _, err := h.Orders.Get(ctx, jti); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no_order"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load order failed"})
	}
	if err := h.Orders.Delete(ctx, jti); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "dismiss order failed"})
	}
	if err := h.Carts.Delete(ctx, jti); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear cart failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
