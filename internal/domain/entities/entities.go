package entities

import (
	"github.com/shopspring/decimal"
	"github.com/whiteelite/solid/pkg/shared/domain/entities"
)

type (
	Name  string
	Email string
)

// User is the record shared by the persistence and notification services.
type User struct {
	entities.Entity `json:"-"`

	Name  Name  `json:"name"`
	Email Email `json:"email"`
}

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
)

type Price = decimal.Decimal

type PricedItem struct {
	entities.Entity

	Category Category
	Price    Price
}

// WelcomeEmail is enqueued when a welcome email is sent to a user.
type WelcomeEmail struct {
	entities.Entity `json:"-"`

	Name  Name  `json:"name"`
	Email Email `json:"email"`
}
