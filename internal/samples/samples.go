// Package samples holds worked point sets with known verdicts.
package samples

import "github.com/mrled/suns/symaxis/internal/model"

// Case is a named point set and its expected verdict
type Case struct {
	Name        string
	Points      []model.Point
	Symmetrical bool
}

// Cases returns the built-in sample point sets
func Cases() []Case {
	return []Case{
		{
			Name:        "pairs-about-1",
			Points:      []model.Point{{X: -5, Y: -4}, {X: 1, Y: 9}, {X: 7, Y: -4}, {X: -6, Y: 4}, {X: 8, Y: 4}, {X: -5, Y: -4}},
			Symmetrical: true,
		},
		{
			Name:        "missing-partner",
			Points:      []model.Point{{X: -5, Y: -4}, {X: 1, Y: 9}, {X: 7, Y: -4}, {X: 8, Y: 4}, {X: -5, Y: -4}},
			Symmetrical: false,
		},
		{
			Name:        "shifted-point",
			Points:      []model.Point{{X: -4, Y: -4}, {X: 1, Y: 9}, {X: 7, Y: -4}, {X: -6, Y: 4}, {X: 8, Y: 4}},
			Symmetrical: false,
		},
		{
			Name:        "on-axis-points",
			Points:      []model.Point{{X: -5, Y: -4}, {X: 1, Y: -4}, {X: 7, Y: -4}, {X: -6, Y: 4}, {X: 1, Y: 4}, {X: 8, Y: 4}, {X: -5, Y: -4}},
			Symmetrical: true,
		},
		{
			Name:        "single-column",
			Points:      []model.Point{{X: 2, Y: 4}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}},
			Symmetrical: true,
		},
		{
			Name:        "two-lone-points",
			Points:      []model.Point{{X: -5, Y: -4}, {X: 1, Y: 9}},
			Symmetrical: false,
		},
	}
}
