package ocp_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteelite/solid/internal/domain/entities"
	"github.com/whiteelite/solid/internal/ocp"
)

type booksDiscount struct{ ocp.BaseDiscount }

func (d booksDiscount) Calculate() (decimal.Decimal, error) {
	return d.Price.Mul(dec("0.05")), nil
}

func TestDefaultRegistry(t *testing.T) {
	r := ocp.DefaultRegistry()

	assert.Equal(t, []entities.Category{entities.CategoryClothing, entities.CategoryElectronics}, r.Categories())

	got, err := r.Calculate(entities.PricedItem{Category: entities.CategoryClothing, Price: dec("100")})
	require.NoError(t, err)
	assert.True(t, dec("20").Equal(got))
}

func TestRegistry_UnknownCategory(t *testing.T) {
	_, err := ocp.DefaultRegistry().New("groceries", dec("10"))

	assert.ErrorIs(t, err, ocp.ErrUnknownCategory)
	assert.Contains(t, err.Error(), "groceries")
}

func TestRegistry_ExtendWithoutTouchingExistingVariants(t *testing.T) {
	r := ocp.DefaultRegistry()
	r.Register("books", func(p decimal.Decimal) ocp.Discount {
		return booksDiscount{ocp.NewBaseDiscount("books", p)}
	})

	books, err := r.Calculate(entities.PricedItem{Category: "books", Price: dec("40")})
	require.NoError(t, err)
	assert.True(t, dec("2").Equal(books))

	electronics, err := r.Calculate(entities.PricedItem{Category: entities.CategoryElectronics, Price: dec("40")})
	require.NoError(t, err)
	assert.True(t, dec("4").Equal(electronics))
}

func TestRegistry_BaseVariantPropagatesNotImplemented(t *testing.T) {
	r := ocp.NewRegistry()
	r.Register("abstract", func(p decimal.Decimal) ocp.Discount { return ocp.NewBaseDiscount("abstract", p) })

	_, err := r.Calculate(entities.PricedItem{Category: "abstract", Price: dec("1")})
	assert.ErrorIs(t, err, ocp.ErrNotImplemented)
}
