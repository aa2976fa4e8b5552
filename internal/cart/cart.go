// Package cart implements the shopping-cart engine: line aggregation by
// product id, quantity handling, totals and the immutable order summary
// produced by checkout. The cart itself is a plain value; callers persist
// snapshots of it per session.
package cart

// Line is one distinct product entry with an aggregated quantity. The id is
// the product's catalog slug; at most one line exists per id and a quantity
// never drops below one; a line decremented to zero is removed outright.
type Line struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	ImageURL   string `json:"image_url"`
	Quantity   int    `json:"quantity"`
}

// Cart is an ordered sequence of lines. The zero value is an empty cart.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add appends a new line with quantity 1, or increments the quantity of the
// existing line with the same id.
func (c *Cart) Add(id, name string, priceCents int64, imageURL string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, Line{
		ID:         id,
		Name:       name,
		PriceCents: priceCents,
		ImageURL:   imageURL,
		Quantity:   1,
	})
}

// Remove decrements the quantity of the line with the given id, dropping the
// line entirely when it reaches zero. Unknown ids are a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID != id {
			continue
		}
		c.Lines[i].Quantity--
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// TotalCents sums price × quantity over all lines.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.PriceCents * int64(l.Quantity)
	}
	return total
}

// ItemCount sums the quantities across lines, not the number of lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
