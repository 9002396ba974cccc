// Package dip demonstrates the dependency inversion principle: Switch
// depends on the Switchable abstraction, never on a concrete bulb.
package dip

import (
	"io"

	"github.com/whiteelite/solid/internal/console"
)

type Switchable interface {
	TurnOn()
	TurnOff()
}

type LightBulbWhite struct {
	out io.Writer
}

func NewLightBulbWhite(out io.Writer) LightBulbWhite { return LightBulbWhite{out: console.Or(out)} }

func (b LightBulbWhite) TurnOn() { console.Println(b.out, "turn on White") }

func (b LightBulbWhite) TurnOff() { console.Println(b.out, "turn off") }

type LightBulbRed struct {
	out io.Writer
}

func NewLightBulbRed(out io.Writer) LightBulbRed { return LightBulbRed{out: console.Or(out)} }

func (b LightBulbRed) TurnOn() { console.Println(b.out, "turn on Red") }

func (b LightBulbRed) TurnOff() { console.Println(b.out, "turn off") }

type Switch struct {
	device Switchable
}

func NewSwitch(device Switchable) *Switch {
	return &Switch{device: device}
}

// Operate turns the device on.
func (s *Switch) Operate() {
	s.device.TurnOn()
}

var (
	_ Switchable = LightBulbWhite{}
	_ Switchable = LightBulbRed{}
)
