package workout

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownWorkoutKind is returned when a package carries an unrecognised code
var ErrUnknownWorkoutKind = errors.New("unknown workout kind")

// ErrInvalidInput is returned when package values are missing, malformed or out of range
var ErrInvalidInput = errors.New("invalid workout input")

// Workout kind codes as sent by the tracker
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// maxAction keeps the action count exactly representable as float64
const maxAction = 1 << 53

// kind describes how to build one workout type from positional values
type kind struct {
	extras []string // names of the kind-specific values following action, duration, weight
	build  func(s Session, extra []float64) Workout
}

var kinds = map[string]kind{
	CodeSwimming: {
		extras: []string{"pool length", "pool count"},
		build: func(s Session, extra []float64) Workout {
			return Swimming{Session: s, PoolLength: extra[0], PoolCount: extra[1]}
		},
	},
	CodeRunning: {
		build: func(s Session, _ []float64) Workout {
			return Running{Session: s}
		},
	},
	CodeWalking: {
		extras: []string{"height"},
		build: func(s Session, extra []float64) Workout {
			return SportsWalking{Session: s, Height: extra[0]}
		},
	},
}

var commonFields = []string{"action", "duration", "weight"}

// Package is one raw sensor reading: a kind code and its positional values
type Package struct {
	Code   string    `json:"code"`
	Values []float64 `json:"values"`
}

// Build constructs the workout described by the package
func (p Package) Build() (Workout, error) {
	return Build(p.Code, p.Values)
}

// Build constructs a workout of the kind identified by code.
// Values are positional: action, duration, weight, then the kind-specific
// values (height for WLK; pool length and pool count for SWM).
func Build(code string, values []float64) (Workout, error) {
	k, ok := kinds[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutKind, code)
	}

	arity := len(commonFields) + len(k.extras)
	if len(values) != arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidInput, code, arity, len(values))
	}

	names := append(append([]string{}, commonFields...), k.extras...)
	for i, v := range values {
		if err := checkValue(names[i], v, i == 0); err != nil {
			return nil, fmt.Errorf("%s: %w", code, err)
		}
	}

	s := Session{
		Action:   int(values[0]),
		Duration: values[1],
		Weight:   values[2],
	}
	return k.build(s, values[arity-len(k.extras):]), nil
}

// checkValue validates one positional value.
// The action count may be zero but must be whole; everything else must be positive.
func checkValue(name string, v float64, isAction bool) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidInput, name, v)
	}
	if isAction {
		if v < 0 || v != math.Trunc(v) || v > maxAction {
			return fmt.Errorf("%w: %s must be a non-negative whole number, got %v", ErrInvalidInput, name, v)
		}
		return nil
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

// ParsePackage parses command-line style fields such as "RUN 15000 1 75".
// The code is matched case-insensitively; arity is checked later by Build.
func ParsePackage(fields []string) (Package, error) {
	if len(fields) == 0 {
		return Package{}, fmt.Errorf("%w: empty package", ErrInvalidInput)
	}

	p := Package{
		Code:   strings.ToUpper(strings.TrimSpace(fields[0])),
		Values: make([]float64, 0, len(fields)-1),
	}
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Package{}, fmt.Errorf("%w: value %q is not a number", ErrInvalidInput, f)
		}
		p.Values = append(p.Values, v)
	}
	return p, nil
}

// Codes returns the recognised kind codes in sorted order
func Codes() []string {
	codes := make([]string, 0, len(kinds))
	for code := range kinds {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SamplePackages returns the demo readings reported when nothing else is configured
func SamplePackages() []Package {
	return []Package{
		{Code: CodeSwimming, Values: []float64{720, 1, 80, 25, 40}},
		{Code: CodeRunning, Values: []float64{15000, 1, 75}},
		{Code: CodeWalking, Values: []float64{9000, 1, 75, 180}},
	}
}
