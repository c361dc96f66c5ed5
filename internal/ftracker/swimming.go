package ftracker

const (
	swimmingLenStep                  = 1.38 // длина одного гребка, м
	swimmingCaloriesMeanSpeedShift   = 1.1  // среднее количество сжигаемых калорий
	swimmingCaloriesWeightMultiplier = 2    // множитель веса при плавании
)

// Swimming is a pool swimming session. Action counts strokes,
// LengthPool is in meters and CountPool counts laps.
type Swimming struct {
	Base
	LengthPool float64
	CountPool  int
}

// NewSwimming returns a swimming session.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		Base:       newBase(action, duration, weight, swimmingLenStep),
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// Kind returns KindSwimming.
func (s Swimming) Kind() Kind {
	return KindSwimming
}

// MeanSpeed returns mean speed in km/h computed from pool length and laps.
// Strokes are not used here.
func (s Swimming) MeanSpeed() (float64, error) {
	if err := s.checkDuration(); err != nil {
		return 0, err
	}
	return finite("mean speed", s.LengthPool*float64(s.CountPool)/mInKm/s.Duration)
}

// SpentCalories returns calories burned during the swim.
func (s Swimming) SpentCalories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return finite("spent calories", (speed+swimmingCaloriesMeanSpeedShift)*swimmingCaloriesWeightMultiplier*s.Weight*s.Duration)
}
