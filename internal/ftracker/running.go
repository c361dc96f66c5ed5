package ftracker

const (
	runningCaloriesMeanSpeedMultiplier = 18   // множитель средней скорости
	runningCaloriesMeanSpeedShift      = 1.79 // среднее количество сжигаемых калорий
)

// Running is a running session.
type Running struct {
	Base
}

// NewRunning returns a running session for the given steps, hours and kilograms.
func NewRunning(action int, duration, weight float64) Running {
	return Running{Base: newBase(action, duration, weight, lenStep)}
}

// Kind returns KindRunning.
func (r Running) Kind() Kind {
	return KindRunning
}

// SpentCalories returns calories burned during the run.
func (r Running) SpentCalories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return finite("spent calories", (runningCaloriesMeanSpeedMultiplier*speed+runningCaloriesMeanSpeedShift)*
		r.Weight/mInKm*minInH*r.Duration)
}
