package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Константы и формулы, по которым проверяется вывод ftracker
const (
	lenStep   = 0.65
	mInKm     = 1000
	minInH    = 60
	kmhInMsec = 0.278
	cmInM     = 100

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// report is a parsed ftracker output block
type report struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

func distance(action float64, step float64) float64 {
	return action * step / mInKm
}

func meanSpeed(action, duration float64) float64 {
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool, countPool, duration float64) float64 {
	return lengthPool * countPool / mInKm / duration
}

// expectedReport computes the report ftracker must print for a valid package
func expectedReport(code string, v []float64) report {
	switch code {
	case "RUN":
		speed := meanSpeed(v[0], v[1])
		return report{
			TrainingType: "Running",
			Duration:     v[1],
			Distance:     distance(v[0], lenStep),
			Speed:        speed,
			Calories:     (runningCaloriesMeanSpeedMultiplier*speed + runningCaloriesMeanSpeedShift) * v[2] / mInKm * minInH * v[1],
		}
	case "WLK":
		speed := meanSpeed(v[0], v[1])
		return report{
			TrainingType: "SportsWalking",
			Duration:     v[1],
			Distance:     distance(v[0], lenStep),
			Speed:        speed,
			Calories: (walkingCaloriesWeightMultiplier*v[2] +
				(math.Pow(speed*kmhInMsec, 2.0)/(v[3]/cmInM))*walkingSpeedHeightMultiplier*v[2]) * v[1] * minInH,
		}
	case "SWM":
		speed := swimmingMeanSpeed(v[3], v[4], v[1])
		return report{
			TrainingType: "Swimming",
			Duration:     v[1],
			Distance:     distance(v[0], swimmingLenStep),
			Speed:        speed,
			Calories:     (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * v[2] * v[1],
		}
	}
	panic(fmt.Sprintf("unexpected code %q", code))
}

var reportRe = regexp.MustCompile(`^Тип тренировки: (\S+); \n` +
	`Длительность: (\S+) ч\.; \n` +
	`Дистанция: (\S+) км; \n` +
	`Ср\. скорость - (\S+) км/ч; \n` +
	`Калории - (\S+)\.$`)

// parseReports splits ftracker stdout into blocks and parses each of them
func parseReports(out string) ([]report, error) {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil, nil
	}

	var res []report
	for _, block := range strings.Split(out, "\n\n") {
		m := reportRe.FindStringSubmatch(block)
		if m == nil {
			return nil, fmt.Errorf("блок не соответствует шаблону:\n%s", block)
		}

		r := report{TrainingType: m[1]}
		for i, dst := range []*float64{&r.Duration, &r.Distance, &r.Speed, &r.Calories} {
			v, err := strconv.ParseFloat(m[i+2], 64)
			if err != nil {
				return nil, fmt.Errorf("не удалось распознать число %q: %w", m[i+2], err)
			}
			*dst = v
		}
		res = append(res, r)
	}
	return res, nil
}
