package ftracker

import (
	"errors"
)

var (
	// ErrUnknownWorkoutType indicates a dispatch code with no registered kind
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArityMismatch indicates a sensor package of the wrong length
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrInvalidField indicates a sensor value of the wrong numeric type
	ErrInvalidField = errors.New("invalid field")
	// ErrArithmeticDomain indicates a formula evaluated outside its domain, e.g. division by zero
	ErrArithmeticDomain = errors.New("arithmetic domain error")
)
