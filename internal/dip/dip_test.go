package dip_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/whiteelite/solid/internal/dip"
)

type recordingDevice struct {
	on, off int
}

func (d *recordingDevice) TurnOn()  { d.on++ }
func (d *recordingDevice) TurnOff() { d.off++ }

func TestSwitch_OperatesOnlyItsDevice(t *testing.T) {
	var white, red bytes.Buffer
	whiteBulb := dip.NewLightBulbWhite(&white)
	redBulb := dip.NewLightBulbRed(&red)

	dip.NewSwitch(redBulb).Operate()
	assert.Equal(t, "turn on Red\n", red.String())
	assert.Empty(t, white.String())

	red.Reset()
	dip.NewSwitch(whiteBulb).Operate()
	assert.Equal(t, "turn on White\n", white.String())
	assert.Empty(t, red.String())
}

func TestSwitch_CallsTurnOnOnce(t *testing.T) {
	device := &recordingDevice{}

	dip.NewSwitch(device).Operate()

	assert.Equal(t, 1, device.on)
	assert.Equal(t, 0, device.off)
}

func TestBulbs_TurnOff(t *testing.T) {
	var out bytes.Buffer

	dip.NewLightBulbWhite(&out).TurnOff()
	dip.NewLightBulbRed(&out).TurnOff()

	assert.Equal(t, "turn off\nturn off\n", out.String())
}

func TestBulbSwitch(t *testing.T) {
	assert.NotPanics(t, dip.NewBulbSwitch(&dip.LightBulb{}).Operate)
}
