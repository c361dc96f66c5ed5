package ftracker

import (
	"fmt"
	"math"
)

const (
	walkingCaloriesWeightMultiplier = 0.035 // множитель массы тела
	walkingSpeedHeightMultiplier    = 0.029 // множитель роста
	kmhInMsec                       = 0.278 // коэффициент для перевода км/ч в м/с
	cmInM                           = 100   // сантиметров в метре
)

// Walking is a sports walking session. Height is in centimeters.
type Walking struct {
	Base
	Height float64
}

// NewWalking returns a sports walking session.
func NewWalking(action int, duration, weight, height float64) Walking {
	return Walking{
		Base:   newBase(action, duration, weight, lenStep),
		Height: height,
	}
}

// Kind returns KindWalking.
func (w Walking) Kind() Kind {
	return KindWalking
}

// SpentCalories returns calories burned during the walk.
func (w Walking) SpentCalories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, err
	}
	if w.Height == 0 {
		return 0, fmt.Errorf("%w: zero height", ErrArithmeticDomain)
	}
	return finite("spent calories", (walkingCaloriesWeightMultiplier*w.Weight+
		math.Pow(speed*kmhInMsec, 2)/(w.Height/cmInM)*walkingSpeedHeightMultiplier*w.Weight)*
		w.Duration*minInH)
}
