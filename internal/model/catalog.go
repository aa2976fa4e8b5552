package model

// Service is a bookable spa treatment from the `services` table. Services
// carry a display price string rather than an amount because the site
// advertises "starting at" prices; the bookable schedule does not depend
// on the service.
type Service struct {
	Slug         string `json:"slug"`          // services.slug
	Name         string `json:"name"`          // services.name
	Description  string `json:"description"`   // services.description
	ImageURL     string `json:"image_url"`     // services.image_url
	PriceDisplay string `json:"price_display"` // services.price_display
}

// Product is a shop item from the `products` table. Unlike services,
// products have an exact price in cents so cart totals can be computed
// without parsing rendered text.
type Product struct {
	Slug       string `json:"slug"`        // products.slug
	Name       string `json:"name"`        // products.name
	PriceCents int64  `json:"price_cents"` // products.price_cents
	ImageURL   string `json:"image_url"`   // products.image_url
}
