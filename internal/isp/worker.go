package isp

import "errors"

var ErrRobotsDontEat = errors.New("robots don't eat")

// Worker bundles both capabilities, forcing LegacyRobot to reject Eat.
// Workable and Eatable replace it.
type Worker interface {
	Work() error
	Eat() error
}

type LegacyRobot struct{}

func (LegacyRobot) Work() error { return nil }

func (LegacyRobot) Eat() error { return ErrRobotsDontEat }

var _ Worker = LegacyRobot{}
