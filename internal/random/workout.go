package random

import (
	"strconv"
	"strings"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// Package returns random valid sensor values for given workout kind.
// Ranges follow what a wearable reports for a single session.
func Package(kind ftracker.Kind) []float64 {
	action := float64(rnd.Int63n(10000-1000) + 1000)
	duration := float64(rnd.Int63n(3)) + Float(0.1, 1)
	weight := float64(rnd.Int63n(140-50) + 50)

	switch kind {
	case ftracker.KindRunning:
		return []float64{action, duration, weight}
	case ftracker.KindWalking:
		height := float64(rnd.Int63n(220-150) + 150)
		return []float64{action, duration, weight, height}
	case ftracker.KindSwimming:
		lengthPool := float64(rnd.Int63n(50-10) + 10)
		countPool := float64(rnd.Int63n(40-1) + 1)
		return []float64{action, duration, weight, lengthPool, countPool}
	}
	return nil
}

// Kind returns one of registered workout kinds.
func Kind() ftracker.Kind {
	kinds := ftracker.Kinds()
	return kinds[rnd.Intn(len(kinds))]
}

// Float returns random number in [min, max).
func Float(min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}

// PackageArg renders a package in the CODE:v1,v2 form accepted by ftracker CLI.
func PackageArg(code string, data []float64) string {
	values := make([]string, 0, len(data))
	for _, v := range data {
		values = append(values, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return code + ":" + strings.Join(values, ",")
}
