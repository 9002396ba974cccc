// Package ocp demonstrates the open/closed principle with category
// discounts: new categories are added as new Discount variants, existing
// variants are never edited.
package ocp

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/whiteelite/solid/internal/domain/entities"
)

var ErrNotImplemented = errors.New("discount calculation not implemented")

var (
	electronicsRate = decimal.RequireFromString("0.1")
	clothingRate    = decimal.RequireFromString("0.2")
)

type Discount interface {
	Calculate() (decimal.Decimal, error)
}

// BaseDiscount carries the priced item. It has no rate of its own, so
// Calculate always fails; variants embed it and override Calculate.
type BaseDiscount struct {
	Product entities.Category
	Price   entities.Price
}

func NewBaseDiscount(product entities.Category, price decimal.Decimal) BaseDiscount {
	return BaseDiscount{Product: product, Price: price}
}

func (d BaseDiscount) Item() entities.PricedItem {
	return entities.PricedItem{Category: d.Product, Price: d.Price}
}

func (d BaseDiscount) Calculate() (decimal.Decimal, error) {
	return decimal.Zero, ErrNotImplemented
}

type ElectronicsDiscount struct{ BaseDiscount }

func NewElectronicsDiscount(price decimal.Decimal) ElectronicsDiscount {
	return ElectronicsDiscount{NewBaseDiscount(entities.CategoryElectronics, price)}
}

func (d ElectronicsDiscount) Calculate() (decimal.Decimal, error) {
	return d.Price.Mul(electronicsRate), nil
}

type ClothingDiscount struct{ BaseDiscount }

func NewClothingDiscount(price decimal.Decimal) ClothingDiscount {
	return ClothingDiscount{NewBaseDiscount(entities.CategoryClothing, price)}
}

func (d ClothingDiscount) Calculate() (decimal.Decimal, error) {
	return d.Price.Mul(clothingRate), nil
}

var (
	_ Discount = BaseDiscount{}
	_ Discount = ElectronicsDiscount{}
	_ Discount = ClothingDiscount{}
)
