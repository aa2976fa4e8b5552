package cart

import (
	"time"

	"github.com/google/uuid"
)

// SummaryLine is one purchased line with its subtotal, as shown in the order
// summary dialog.
type SummaryLine struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ImageURL      string `json:"image_url"`
	Quantity      int    `json:"quantity"`
	SubtotalCents int64  `json:"subtotal_cents"`
	Subtotal      string `json:"subtotal"`
}

// Summary is the immutable order produced when a checkout is confirmed.
// The cart it was built from stays intact until the summary is dismissed.
type Summary struct {
	ID         string        `json:"id"`
	Lines      []SummaryLine `json:"lines"`
	TotalCents int64         `json:"total_cents"`
	Total      string        `json:"total"`
	CreatedAt  time.Time     `json:"created_at"`
}

// BuildSummary snapshots the cart into an order summary with per-line
// subtotals and a grand total.
func BuildSummary(c Cart, now time.Time) Summary {
	s := Summary{
		ID:        uuid.NewString(),
		Lines:     make([]SummaryLine, 0, len(c.Lines)),
		CreatedAt: now.UTC(),
	}
	for _, l := range c.Lines {
		sub := l.PriceCents * int64(l.Quantity)
		s.Lines = append(s.Lines, SummaryLine{
			ID:            l.ID,
			Name:          l.Name,
			ImageURL:      l.ImageURL,
			Quantity:      l.Quantity,
			SubtotalCents: sub,
			Subtotal:      FormatBRL(sub),
		})
		s.TotalCents += sub
	}
	s.Total = FormatBRL(s.TotalCents)
	return s
}
