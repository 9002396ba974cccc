// Package lsp demonstrates the Liskov substitution principle: every Mover
// can stand in for any other without callers having to expect a failure.
package lsp

import (
	"io"

	"github.com/whiteelite/solid/internal/console"
)

type Mover interface {
	Move()
}

type Sparrow struct {
	out io.Writer
}

func NewSparrow(out io.Writer) Sparrow { return Sparrow{out: console.Or(out)} }

func (s Sparrow) Move() { console.Println(s.out, "Flying") }

type Ostrich struct {
	out io.Writer
}

func NewOstrich(out io.Writer) Ostrich { return Ostrich{out: console.Or(out)} }

func (o Ostrich) Move() { console.Println(o.out, "Running") }

// MoveAll moves every mover in order.
func MoveAll(movers ...Mover) {
	for _, m := range movers {
		m.Move()
	}
}

var (
	_ Mover = Sparrow{}
	_ Mover = Ostrich{}
)
