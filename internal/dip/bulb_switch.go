package dip

// LightBulb is the only device BulbSwitch can drive.
type LightBulb struct{}

func (*LightBulb) TurnOn() {}

func (*LightBulb) TurnOff() {}

// BulbSwitch depends on the concrete *LightBulb. Switch replaces it.
type BulbSwitch struct {
	bulb *LightBulb
}

func NewBulbSwitch(bulb *LightBulb) *BulbSwitch {
	return &BulbSwitch{bulb: bulb}
}

func (s *BulbSwitch) Operate() {
	s.bulb.TurnOn()
}
