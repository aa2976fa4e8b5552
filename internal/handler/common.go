package handler

import (
	"context"
	"strconv"

	"github.com/edenspa/eden-spa-api/internal/cart"
	"github.com/edenspa/eden-spa-api/internal/model"
)

// parseID parses a numeric path parameter.
func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Narrow views of the repository layer consumed by the cart and prompt
// handlers. The concrete Redis/MySQL implementations in
// internal/repository satisfy them; tests substitute in-memory fakes.

type productCatalog interface {
	GetProduct(ctx context.Context, slug string) (model.Product, error)
}

type cartStore interface {
	Get(ctx context.Context, jti string) (cart.Cart, error)
	Save(ctx context.Context, jti string, c cart.Cart) error
	Delete(ctx context.Context, jti string) error
}

type promptStore interface {
	Put(ctx context.Context, jti string, p model.Prompt) error
	Get(ctx context.Context, jti string) (model.Prompt, error)
	Delete(ctx context.Context, jti string) error
}

type orderStore interface {
	Save(ctx context.Context, jti string, sum cart.Summary) error
	Get(ctx context.Context, jti string) (cart.Summary, error)
	Delete(ctx context.Context, jti string) error
}

type appointmentStore interface {
	Get(ctx context.Context, identifier string, id int64) (model.Appointment, error)
	ListByAccount(ctx context.Context, identifier string) ([]model.Appointment, error)
	Delete(ctx context.Context, identifier string, id int64) (bool, error)
}
