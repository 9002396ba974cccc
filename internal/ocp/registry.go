package ocp

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/whiteelite/solid/internal/domain/entities"
)

var ErrUnknownCategory = errors.New("unknown discount category")

// Factory builds the Discount variant for a price.
type Factory func(price decimal.Decimal) Discount

// Registry maps categories to Discount variants.
type Registry struct {
	mu        sync.RWMutex
	factories map[entities.Category]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[entities.Category]Factory)}
}

// DefaultRegistry knows electronics and clothing.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(entities.CategoryElectronics, func(p decimal.Decimal) Discount { return NewElectronicsDiscount(p) })
	r.Register(entities.CategoryClothing, func(p decimal.Decimal) Discount { return NewClothingDiscount(p) })
	return r
}

// Register adds or replaces the variant for category.
func (r *Registry) Register(category entities.Category, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[category] = factory
}

func (r *Registry) New(category entities.Category, price decimal.Decimal) (Discount, error) {
	r.mu.RLock()
	factory, ok := r.factories[category]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return factory(price), nil
}

// Calculate builds the variant for item and returns its discount.
func (r *Registry) Calculate(item entities.PricedItem) (decimal.Decimal, error) {
	d, err := r.New(item.Category, item.Price)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Calculate()
}

func (r *Registry) Categories() []entities.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Category, 0, len(r.factories))
	for c := range r.factories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
