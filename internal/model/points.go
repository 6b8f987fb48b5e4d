package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPoints is returned when a point list cannot be parsed
var ErrInvalidPoints = errors.New("invalid point list")

// ParsePoints parses a list of points written as "(x;y)" or "(x,y)" tuples.
// Tuples may be separated by commas, whitespace, or both, e.g. "(-5;-4), (1;9)".
// An input with no tuples is an error.
func ParsePoints(s string) ([]Point, error) {
	var points []Point
	rest := s
	for {
		rest = strings.TrimLeft(rest, " \t\r\n,")
		if rest == "" {
			break
		}
		if rest[0] != '(' {
			return nil, fmt.Errorf("%w: expected '(' at %q", ErrInvalidPoints, rest)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated tuple %q", ErrInvalidPoints, rest)
		}
		p, err := parseTuple(rest[1:end])
		if err != nil {
			return nil, err
		}
		points = append(points, p)
		rest = rest[end+1:]
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points in %q", ErrInvalidPoints, s)
	}
	return points, nil
}

// parseTuple parses the inside of a tuple, "x;y" or "x,y"
func parseTuple(body string) (Point, error) {
	sep := ";"
	if !strings.Contains(body, sep) {
		sep = ","
	}
	parts := strings.Split(body, sep)
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: expected two coordinates in (%s)", ErrInvalidPoints, body)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad x coordinate in (%s): %v", ErrInvalidPoints, body, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad y coordinate in (%s): %v", ErrInvalidPoints, body, err)
	}
	return Point{X: x, Y: y}, nil
}

// FormatPoints renders points as "(x;y),(x;y)"
func FormatPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("(%d;%d)", p.X, p.Y)
	}
	return strings.Join(parts, ",")
}
