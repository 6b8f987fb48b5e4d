package model

import (
	"context"
	"errors"
	"time"

	"github.com/mrled/suns/symaxis/internal/symmetry"
)

// ErrNotFound is returned when no check record has the requested ID
var ErrNotFound = errors.New("check record not found")

// Point is an integer coordinate pair
type Point = symmetry.Point

// CheckRecord is the stored result of checking one point set
type CheckRecord struct {
	// ID is derived from the deduplicated point set, see checkid.CalculateV1
	ID          string
	Label       string `json:",omitempty"`
	Points      []Point
	Symmetrical bool
	// Axis is the x value of the symmetry axis, nil when there is none
	Axis      *int `json:",omitempty"`
	CheckTime time.Time
	Rev       int64 // Monotonically increasing revision number
}

// CheckRepository defines the interface for storing and retrieving check records
type CheckRepository interface {
	// Store saves a check record, replacing any record with the same ID
	Store(ctx context.Context, record *CheckRecord) error

	// Get retrieves a check record by ID
	Get(ctx context.Context, id string) (*CheckRecord, error)

	// List retrieves all check records
	List(ctx context.Context) ([]*CheckRecord, error)

	// Delete removes a check record by ID
	Delete(ctx context.Context, id string) error
}
