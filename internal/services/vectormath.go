package services

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrVectorLengthMismatch indicates vectors of unequal length were
// compared. This is a programming error (an inconsistent genre universe
// snapshot) and always propagates.
var ErrVectorLengthMismatch = errors.New("vectors must have the same length")

// Magnitude returns the Euclidean norm of v. The zero vector has
// magnitude 0.
func Magnitude(v []float64) float64 {
	return floats.Norm(v, 2)
}

// DotProduct returns the inner product of a and b.
func DotProduct(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrVectorLengthMismatch
	}

	if len(a) == 0 {
		return 0, nil
	}

	return floats.Dot(a, b), nil
}

// CosineSimilarity returns the cosine of the angle between a and b.
// When either vector has zero magnitude the direction is undefined and
// ok is false; callers treat that as "no similarity" rather than an
// error.
func CosineSimilarity(a, b []float64) (float64, bool, error) {
	dot, err := DotProduct(a, b)
	if err != nil {
		return 0, false, err
	}

	magA := Magnitude(a)
	magB := Magnitude(b)

	if magA == 0 || magB == 0 {
		return 0, false, nil
	}

	return dot / (magA * magB), true, nil
}
