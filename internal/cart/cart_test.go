package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_AggregatesById(t *testing.T) {
	var c Cart
	c.Add("creme-hidratante", "Creme Hidratante", 4990, "/img/creme.jpg")
	c.Add("creme-hidratante", "Creme Hidratante", 4990, "/img/creme.jpg")

	require.Len(t, c.Lines, 1, "same id must aggregate, not duplicate")
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, int64(9980), c.TotalCents())
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	var c Cart
	c.Add("oleo", "Óleo Corporal", 3550, "")
	c.Add("sabonete", "Sabonete Artesanal", 1200, "")
	c.Add("oleo", "Óleo Corporal", 3550, "")

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "oleo", c.Lines[0].ID)
	assert.Equal(t, "sabonete", c.Lines[1].ID)
	assert.Equal(t, 3, c.ItemCount())
}

func TestRemove_DropsLineAtZero(t *testing.T) {
	var c Cart
	c.Add("sabonete", "Sabonete Artesanal", 1200, "")
	c.Remove("sabonete")

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, "R$ 0,00", FormatBRL(c.TotalCents()))
}

func TestRemove_UnknownIdIsNoop(t *testing.T) {
	var c Cart
	c.Add("oleo", "Óleo Corporal", 3550, "")
	c.Remove("inexistente")

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestRemove_DecrementsFirst(t *testing.T) {
	var c Cart
	c.Add("oleo", "Óleo Corporal", 3550, "")
	c.Add("oleo", "Óleo Corporal", 3550, "")
	c.Remove("oleo")

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 12,34", FormatBRL(1234))
	assert.Equal(t, "R$ 120,00", FormatBRL(12000))
	assert.Equal(t, "R$ 1234,05", FormatBRL(123405))
	assert.Equal(t, "-R$ 9,90", FormatBRL(-990))
}

func TestBuildSummary(t *testing.T) {
	var c Cart
	c.Add("creme-hidratante", "Creme Hidratante", 4990, "/img/creme.jpg")
	c.Add("creme-hidratante", "Creme Hidratante", 4990, "/img/creme.jpg")
	c.Add("sabonete", "Sabonete Artesanal", 1200, "/img/sabonete.jpg")

	s := BuildSummary(c, time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC))
	require.NotEmpty(t, s.ID)
	require.Len(t, s.Lines, 2)
	assert.Equal(t, int64(9980), s.Lines[0].SubtotalCents)
	assert.Equal(t, "R$ 99,80", s.Lines[0].Subtotal)
	assert.Equal(t, int64(11180), s.TotalCents)
	assert.Equal(t, "R$ 111,80", s.Total)

	// The source cart is untouched: it is only cleared when the summary
	// is dismissed, never by building it.
	assert.Equal(t, 3, c.ItemCount())
}
