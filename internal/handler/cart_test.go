package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edenspa/eden-spa-api/internal/cart"
	"github.com/edenspa/eden-spa-api/internal/model"
	"github.com/edenspa/eden-spa-api/internal/repository"
)

type fakeCatalog struct{ products map[string]model.Product }

func (f *fakeCatalog) GetProduct(_ context.Context, slug string) (model.Product, error) {
	p, ok := f.products[slug]
	if !ok {
		return model.Product{}, repository.ErrProductNotFound
	}
	return p, nil
}

func creamCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]model.Product{
		"creme-hidratante": {Slug: "creme-hidratante", Name: "Creme Hidratante", PriceCents: 4500},
	}}
}

func TestAddItemAggregatesQuantity(t *testing.T) {
	carts := newFakeCartStore()
	h := NewCartHandler(creamCatalog(), carts, newFakePromptStore(), newFakeOrderStore())

	for i := 0; i < 2; i++ {
		c, rec := sessionRequest(http.MethodPost, "/v1/cart/items", `{"product":"creme-hidratante"}`)
		require.NoError(t, h.AddItem(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	ct := carts.carts["jti-1"]
	require.Len(t, ct.Lines, 1, "same product folds into one line")
	assert.Equal(t, 2, ct.Lines[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	carts := newFakeCartStore()
	h := NewCartHandler(creamCatalog(), carts, newFakePromptStore(), newFakeOrderStore())

	c, rec := sessionRequest(http.MethodPost, "/v1/cart/items", `{"product":"sabonete"}`)
	require.NoError(t, h.AddItem(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown_product")
	assert.Empty(t, carts.carts, "nothing is written for a miss")
}

func TestCheckoutEmptyCartIsRefused(t *testing.T) {
	prompts := newFakePromptStore()
	h := NewCartHandler(creamCatalog(), newFakeCartStore(), prompts, newFakeOrderStore())

	c, rec := sessionRequest(http.MethodPost, "/v1/cart/checkout", "")
	require.NoError(t, h.Checkout(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty_cart")
	assert.Empty(t, prompts.pending, "a refused checkout raises no prompt")
}

func TestCheckoutRaisesConfirmPrompt(t *testing.T) {
	carts := newFakeCartStore()
	var ct cart.Cart
	ct.Add("creme-hidratante", "Creme Hidratante", 4500, "")
	carts.carts["jti-1"] = ct

	prompts := newFakePromptStore()
	h := NewCartHandler(creamCatalog(), carts, prompts, newFakeOrderStore())

	c, rec := sessionRequest(http.MethodPost, "/v1/cart/checkout", "")
	require.NoError(t, h.Checkout(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	p, ok := prompts.pending["jti-1"]
	require.True(t, ok)
	assert.Equal(t, model.PromptConfirm, p.Kind)
	assert.Equal(t, model.ActionCheckout, p.Action)
	assert.Equal(t, "Finalizar Compra", p.Title)
	after := carts.carts["jti-1"]
	assert.False(t, after.IsEmpty(), "checkout alone must not touch the cart")
}

func TestDismissOrderClearsCart(t *testing.T) {
	carts := newFakeCartStore()
	var ct cart.Cart
	ct.Add("creme-hidratante", "Creme Hidratante", 4500, "")
	carts.carts["jti-1"] = ct

	orders := newFakeOrderStore()
	orders.orders["jti-1"] = cart.Summary{ID: "ord-1", Total: "R$ 45,00"}
	h := NewCartHandler(creamCatalog(), carts, newFakePromptStore(), orders)

	c, rec := sessionRequest(http.MethodPost, "/v1/cart/order/dismiss", "")
	require.NoError(t, h.DismissOrder(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, orders.orders)
	after := carts.carts["jti-1"]
	assert.True(t, after.IsEmpty(), "dismissal is the point the cart empties")
}

func TestDismissOrderWithoutOrder(t *testing.T) {
	carts := newFakeCartStore()
	var ct cart.Cart
	ct.Add("creme-hidratante", "Creme Hidratante", 4500, "")
	carts.carts["jti-1"] = ct

	h := NewCartHandler(creamCatalog(), carts, newFakePromptStore(), newFakeOrderStore())

	c, rec := sessionRequest(http.MethodPost, "/v1/cart/order/dismiss", "")
	require.NoError(t, h.DismissOrder(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_order")
	after := carts.carts["jti-1"]
	assert.False(t, after.IsEmpty(), "no summary, no cart wipe")
}
