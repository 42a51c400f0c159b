package utils

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func SumSlice[T Number](arr []T) (r T) {
	for i := range arr {
		r += arr[i]
	}
	return
}

func IntAbs(a int) int {
	if a < 0 {
		return -a
	} else {
		return a
	}
}

// Intersect returns the first element of a also present in b.
func Intersect(a, b []string) *string {
	for i := range a {
		if slices.Contains(b, a[i]) {
			return &a[i]
		}
	}
	return nil
}

// LinearGrid is n evenly spaced points from lo to hi inclusive.
func LinearGrid(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", n)
	}
	if !(lo >= 0) || !(hi > lo) {
		return nil, fmt.Errorf("grid bounds must satisfy 0 <= lo < hi, got [%v, %v]", lo, hi)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// LogGrid is n logarithmically spaced points from lo to hi inclusive.
func LogGrid(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", n)
	}
	if !(lo > 0) || !(hi > lo) {
		return nil, fmt.Errorf("log grid bounds must satisfy 0 < lo < hi, got [%v, %v]", lo, hi)
	}
	return floats.LogSpan(make([]float64, n), lo, hi), nil
}
