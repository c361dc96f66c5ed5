package ftracker

import (
	"fmt"
	"math"
)

// Kind enumerates supported workout variants.
type Kind int

const (
	// KindUnknown is the zero value, no code maps to it
	KindUnknown Kind = iota
	// KindRunning is dispatched by "RUN"
	KindRunning
	// KindWalking is dispatched by "WLK"
	KindWalking
	// KindSwimming is dispatched by "SWM"
	KindSwimming
)

// FieldType describes which numbers a sensor package position accepts.
type FieldType int

const (
	// FieldCount accepts non-negative integers: steps, strokes, laps
	FieldCount FieldType = iota
	// FieldReal accepts any finite number
	FieldReal
)

// Field is a single position in a sensor package.
type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"-"`
}

type schema struct {
	code   string
	label  string
	fields []Field
	build  func(v []float64) Training
}

var (
	actionField   = Field{Name: "action", Type: FieldCount}
	durationField = Field{Name: "duration", Type: FieldReal}
	weightField   = Field{Name: "weight", Type: FieldReal}
)

var schemas = map[Kind]schema{
	KindSwimming: {
		code:  "SWM",
		label: "Swimming",
		fields: []Field{
			actionField, durationField, weightField,
			{Name: "length_pool", Type: FieldReal},
			{Name: "count_pool", Type: FieldCount},
		},
		build: func(v []float64) Training {
			return NewSwimming(int(v[0]), v[1], v[2], v[3], int(v[4]))
		},
	},
	KindRunning: {
		code:   "RUN",
		label:  "Running",
		fields: []Field{actionField, durationField, weightField},
		build: func(v []float64) Training {
			return NewRunning(int(v[0]), v[1], v[2])
		},
	},
	KindWalking: {
		code:  "WLK",
		label: "SportsWalking",
		fields: []Field{
			actionField, durationField, weightField,
			{Name: "height", Type: FieldReal},
		},
		build: func(v []float64) Training {
			return NewWalking(int(v[0]), v[1], v[2], v[3])
		},
	},
}

// Kinds returns registered kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindSwimming, KindRunning, KindWalking}
}

// ParseKind resolves a dispatch code such as "RUN".
func ParseKind(code string) (Kind, error) {
	for _, k := range Kinds() {
		if schemas[k].code == code {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
}

// Code returns the three-letter dispatch code.
func (k Kind) Code() string {
	return schemas[k].code
}

// String returns the training type label used in reports.
func (k Kind) String() string {
	if s, ok := schemas[k]; ok {
		return s.label
	}
	return "Unknown"
}

// Fields returns the ordered positions a sensor package for k must contain.
func (k Kind) Fields() []Field {
	fields := schemas[k].fields
	res := make([]Field, len(fields))
	copy(res, fields)
	return res
}

// ReadPackage builds a workout from the dispatch code and the ordered
// values received from sensors.
func ReadPackage(code string, data []float64) (Training, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}

	s := schemas[kind]
	if len(data) != len(s.fields) {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrArityMismatch, code, len(s.fields), len(data))
	}

	for i, f := range s.fields {
		if err := f.check(data[i]); err != nil {
			return nil, fmt.Errorf("%s: position %d (%s): %w", code, i, f.Name, err)
		}
	}

	return s.build(data), nil
}

func (f Field) check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidField, v)
	}
	if f.Type == FieldCount {
		if v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
			return fmt.Errorf("%w: %v is not a non-negative integer", ErrInvalidField, v)
		}
	}
	return nil
}
