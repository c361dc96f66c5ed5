package ftracker

import (
	"fmt"
	"strconv"
	"strings"
)

// InfoMessage is a flat report of a finished session.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// ShowTrainingInfo computes metrics of t once and returns them as a report.
func ShowTrainingInfo(t Training) (InfoMessage, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("mean speed of %s: %w", t.Kind(), err)
	}
	calories, err := t.SpentCalories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("spent calories of %s: %w", t.Kind(), err)
	}

	return InfoMessage{
		TrainingType: t.Kind().String(),
		Duration:     t.Info().Duration,
		Distance:     t.Distance(),
		Speed:        speed,
		Calories:     calories,
	}, nil
}

// String renders the report with values as is.
func (m InfoMessage) String() string {
	return m.Format(-1)
}

// Format renders the report with precision decimal places.
// Negative precision keeps the shortest exact representation,
// integral values keep a trailing ".0".
func (m InfoMessage) Format(precision int) string {
	num := func(v float64) string {
		s := strconv.FormatFloat(v, 'f', precision, 64)
		if precision < 0 && !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	return fmt.Sprintf("Тип тренировки: %s; \n"+
		"Длительность: %s ч.; \n"+
		"Дистанция: %s км; \n"+
		"Ср. скорость - %s км/ч; \n"+
		"Калории - %s.",
		m.TrainingType, num(m.Duration), num(m.Distance), num(m.Speed), num(m.Calories))
}
