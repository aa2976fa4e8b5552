package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/edenspa/eden-spa-api/internal/model"
)

// CatalogRepo provides read access to the `services` and `products`
// tables. The catalog is seeded at deploy time and never written by the
// API, so there are no mutation methods.
type CatalogRepo struct{ DB *sql.DB }

func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{DB: db} }

// ListServices returns every bookable service in display order.
func (r *CatalogRepo) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT slug, name, description, image_url, price_display FROM services ORDER BY sort_order ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Service, 0)
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.Slug, &s.Name, &s.Description, &s.ImageURL, &s.PriceDisplay); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetService fetches one service by slug.
func (r *CatalogRepo) GetService(ctx context.Context, slug string) (model.Service, error) {
	var s model.Service
	err := r.DB.QueryRowContext(ctx,
		"SELECT slug, name, description, image_url, price_display FROM services WHERE slug=? LIMIT 1",
		slug).Scan(&s.Slug, &s.Name, &s.Description, &s.ImageURL, &s.PriceDisplay)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Service{}, ErrServiceNotFound
	}
	return s, err
}

// ListProducts returns every shop product in display order.
func (r *CatalogRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT slug, name, price_cents, image_url FROM products ORDER BY sort_order ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.Slug, &p.Name, &p.PriceCents, &p.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetProduct fetches one product by slug.
func (r *CatalogRepo) GetProduct(ctx context.Context, slug string) (model.Product, error) {
	var p model.Product
	err := r.DB.QueryRowContext(ctx,
		"SELECT slug, name, price_cents, image_url FROM products WHERE slug=? LIMIT 1",
		slug).Scan(&p.Slug, &p.Name, &p.PriceCents, &p.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}
