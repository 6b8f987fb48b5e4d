// Package symmetry decides whether a set of integer points is symmetric about
// a vertical line x = m.
package symmetry

import (
	"errors"
	"maps"
	"slices"
)

// ErrInvalidInput is returned when the point set is empty
var ErrInvalidInput = errors.New("point set must not be empty")

// maxGroupSize is the most distinct x values a single y level can hold:
// one mirrored pair plus one point on the axis.
const maxGroupSize = 3

// Point is an integer coordinate pair
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IsSymmetrical reports whether some vertical axis maps the point set onto itself.
// Duplicate points are ignored. The input slice is not modified.
func IsSymmetrical(points []Point) (bool, error) {
	_, ok, err := Axis(points)
	return ok, err
}

// Axis returns the x value of the vertical axis the point set is symmetric about.
// The boolean is false when no such axis exists. Only axes on integer x values are accepted.
func Axis(points []Point) (int, bool, error) {
	if len(points) == 0 {
		return 0, false, ErrInvalidInput
	}

	groups := groupByY(points)
	levels := slices.Sorted(maps.Keys(groups))

	// Every level holds a single point, so they must all sit on one vertical line.
	// This also covers a set with one distinct point.
	if allSingletons(groups) {
		x := groups[levels[0]][0]
		for _, y := range levels {
			if groups[y][0] != x {
				return 0, false, nil
			}
		}
		return x, true, nil
	}

	for _, xs := range groups {
		if len(xs) > maxGroupSize {
			return 0, false, nil
		}
	}

	// The extremes of any multi-point level must mirror each other,
	// so they fix the only possible axis.
	var axis int
	for _, y := range levels {
		xs := groups[y]
		if len(xs) < 2 {
			continue
		}
		m, ok := midpoint(xs)
		if !ok {
			return 0, false, nil
		}
		axis = m
		break
	}

	for _, y := range levels {
		if !levelMatches(groups[y], axis) {
			return 0, false, nil
		}
	}

	return axis, true, nil
}

// levelMatches checks one y level (sorted, distinct xs) against the axis
func levelMatches(xs []int, axis int) bool {
	if len(xs) == 1 {
		return xs[0] == axis
	}
	m, ok := midpoint(xs)
	if !ok || m != axis {
		return false
	}
	if len(xs) == 3 && xs[1] != axis {
		return false
	}
	return true
}

// midpoint returns the integer midpoint between the smallest and largest
// of the sorted xs. The boolean is false when the distance is odd.
func midpoint(xs []int) (int, bool) {
	x1, x2 := xs[0], xs[len(xs)-1]
	distance := x2 - x1
	if distance%2 != 0 {
		return 0, false
	}
	return x1 + distance/2, true
}

// groupByY collapses duplicates and returns the sorted distinct x values for each y
func groupByY(points []Point) map[int][]int {
	seen := make(map[Point]struct{}, len(points))
	groups := make(map[int][]int)
	for _, p := range points {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		groups[p.Y] = append(groups[p.Y], p.X)
	}
	for _, xs := range groups {
		slices.Sort(xs)
	}
	return groups
}

func allSingletons(groups map[int][]int) bool {
	for _, xs := range groups {
		if len(xs) != 1 {
			return false
		}
	}
	return true
}
