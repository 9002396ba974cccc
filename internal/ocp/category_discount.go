package ocp

import (
	"github.com/shopspring/decimal"
	"github.com/whiteelite/solid/internal/domain/entities"
)

// CategoryDiscount picks the rate with a switch, so every new category
// means editing Calculate. Registry and the Discount variants replace it.
type CategoryDiscount struct {
	Product entities.Category
	Price   entities.Price
}

// Calculate returns zero for categories it does not know.
func (d CategoryDiscount) Calculate() decimal.Decimal {
	switch d.Product {
	case entities.CategoryElectronics:
		return d.Price.Mul(electronicsRate)
	case entities.CategoryClothing:
		return d.Price.Mul(clothingRate)
	default:
		return decimal.Zero
	}
}
