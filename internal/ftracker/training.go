// Package ftracker computes distance, mean speed and spent calories
// for running, sports walking and swimming sessions.
package ftracker

import (
	"fmt"
	"math"
)

const (
	lenStep = 0.65 // средняя длина шага, м
	mInKm   = 1000 // метров в километре
	minInH  = 60   // минут в часе
)

// Training is a single workout session able to report its metrics.
//
// Every variant must provide its own SpentCalories: Base alone does not
// implement Training.
type Training interface {
	Kind() Kind
	Info() Base
	Distance() float64
	MeanSpeed() (float64, error)
	SpentCalories() (float64, error)
}

// Base holds fields shared by every workout variant.
type Base struct {
	Action   int     // шаги или гребки
	Duration float64 // длительность, ч
	Weight   float64 // вес, кг

	lenStep float64
}

func newBase(action int, duration, weight, step float64) Base {
	return Base{
		Action:   action,
		Duration: duration,
		Weight:   weight,
		lenStep:  step,
	}
}

// Info returns the shared fields of the session.
func (b Base) Info() Base {
	return b
}

// LenStep returns distance covered by a single action, in meters.
func (b Base) LenStep() float64 {
	return b.lenStep
}

// Distance returns covered distance in km.
func (b Base) Distance() float64 {
	return float64(b.Action) * b.lenStep / mInKm
}

// MeanSpeed returns mean speed in km/h.
func (b Base) MeanSpeed() (float64, error) {
	if err := b.checkDuration(); err != nil {
		return 0, err
	}
	return finite("mean speed", b.Distance()/b.Duration)
}

func (b Base) checkDuration() error {
	if b.Duration == 0 {
		return fmt.Errorf("%w: zero duration", ErrArithmeticDomain)
	}
	return nil
}

// finite rejects results that overflowed, e.g. for a subnormal duration or height.
func finite(what string, v float64) (float64, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrArithmeticDomain, what)
	}
	return v, nil
}
