package lsp

import "errors"

var ErrCannotFly = errors.New("ostriches cannot fly")

// Bird promises Fly to every subtype, including ones that cannot honor it.
// Mover replaces it.
type Bird interface {
	Fly() error
}

type FlyingBird struct{}

func (FlyingBird) Fly() error { return nil }

// FlightlessOstrich breaks substitutability: code written against Bird
// fails when handed one.
type FlightlessOstrich struct{ FlyingBird }

func (FlightlessOstrich) Fly() error { return ErrCannotFly }

var (
	_ Bird = FlyingBird{}
	_ Bird = FlightlessOstrich{}
)
