// Package isp demonstrates the interface segregation principle: working
// and eating are separate capabilities, and a type implements only the
// ones it can honor.
package isp

import (
	"io"

	"github.com/whiteelite/solid/internal/console"
)

type Workable interface {
	Work()
}

type Eatable interface {
	Eat()
}

type Human struct {
	out io.Writer
}

func NewHuman(out io.Writer) Human { return Human{out: console.Or(out)} }

func (h Human) Work() { console.Println(h.out, "I can work") }

func (h Human) Eat() { console.Println(h.out, "I can eat") }

// Robot works but has no Eat method at all.
type Robot struct {
	out io.Writer
}

func NewRobot(out io.Writer) Robot { return Robot{out: console.Or(out)} }

func (r Robot) Work() { console.Println(r.out, "I can work") }

var (
	_ Workable = Human{}
	_ Eatable  = Human{}
	_ Workable = Robot{}
)
