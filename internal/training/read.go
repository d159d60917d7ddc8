package training

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

type reader struct {
	arity int
	build func(f []float64) Training
}

var readers = map[string]reader{
	CodeSwimming: {arity: 5, build: func(f []float64) Training {
		return NewSwimming(int(f[0]), f[1], f[2], f[3], int(f[4]))
	}},
	CodeRunning: {arity: 3, build: func(f []float64) Training {
		return NewRunning(int(f[0]), f[1], f[2])
	}},
	CodeWalking: {arity: 4, build: func(f []float64) Training {
		return NewSportsWalking(int(f[0]), f[1], f[2], f[3])
	}},
}

// Codes lists the accepted package codes.
func Codes() []string {
	return []string{CodeSwimming, CodeRunning, CodeWalking}
}

// Read builds a Training from a sensor package. Fields are positional:
// action, duration, weight, then height for WLK or pool length and pool
// count for SWM.
func Read(code string, fields []float64) (Training, error) {
	r, ok := readers[code]
	if !ok {
		return Training{}, &InvalidActivityError{Code: code, Allowed: Codes()}
	}
	if len(fields) != r.arity {
		return Training{}, &ArityError{Code: code, Want: r.arity, Got: len(fields)}
	}
	return r.build(fields), nil
}

// ParseFields parses a comma separated list such as "15000,1,75".
func ParseFields(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	fields := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parse field %q: %w", part, err)
		}
		if !isFinite(v) {
			return nil, fmt.Errorf("parse field %q: %w", part, ErrNonFinite)
		}
		fields = append(fields, v)
	}
	return fields, nil
}

// CheckFinite reports ErrNonFinite when any value is NaN or infinite.
func CheckFinite(values ...float64) error {
	for i, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("value %d is %v: %w", i, v, ErrNonFinite)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Package is a raw sensor reading.
type Package struct {
	Code   string
	Fields []float64
}

// Packages returns the sample readings shown by "ftracker show".
func Packages() []Package {
	return []Package{
		{Code: CodeSwimming, Fields: []float64{720, 1, 80, 25, 40}},
		{Code: CodeRunning, Fields: []float64{15000, 1, 75}},
		{Code: CodeWalking, Fields: []float64{9000, 1, 75, 180}},
	}
}
