// Package checkid derives stable identifiers for point sets.
package checkid

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/mrled/suns/symaxis/internal/symmetry"
)

const (
	// IDVersion is the current version of the check ID algorithm
	IDVersion = "v1"
)

// CheckIDV1 represents a parsed v1 check ID
type CheckIDV1 struct {
	Version    string
	PointsHash string
	Raw        string
}

// String returns the raw check ID string
func (c CheckIDV1) String() string {
	return c.Raw
}

// ParseCheckIDv1 parses a raw check ID string.
// The expected format is: v1:pointshash
func ParseCheckIDv1(raw string) (CheckIDV1, error) {
	if raw == "" {
		return CheckIDV1{}, fmt.Errorf("check ID cannot be empty")
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return CheckIDV1{}, fmt.Errorf("invalid check ID format: expected 2 colon-separated parts, got %d", len(parts))
	}

	if parts[0] != IDVersion {
		return CheckIDV1{}, fmt.Errorf("unsupported check ID version: %s (expected %s)", parts[0], IDVersion)
	}
	if parts[1] == "" {
		return CheckIDV1{}, fmt.Errorf("check ID hash cannot be empty")
	}

	return CheckIDV1{
		Version:    parts[0],
		PointsHash: parts[1],
		Raw:        raw,
	}, nil
}

// CalculateV1 generates a check ID from the distinct points of a set.
// Points are deduplicated and sorted by y, then x, so the ID does not depend on
// input order or repetition.
// The result is formatted as: idversion:base64url(sha256(canonical points)),
// which is safe to use as a URL path segment.
func CalculateV1(points []symmetry.Point) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("at least one point is required")
	}

	seen := make(map[symmetry.Point]struct{}, len(points))
	distinct := make([]symmetry.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		distinct = append(distinct, p)
	}

	sort.Slice(distinct, func(i, j int) bool {
		if distinct[i].Y != distinct[j].Y {
			return distinct[i].Y < distinct[j].Y
		}
		return distinct[i].X < distinct[j].X
	})

	var builder strings.Builder
	for _, p := range distinct {
		fmt.Fprintf(&builder, "%d,%d;", p.X, p.Y)
	}

	hash := sha256.Sum256([]byte(builder.String()))
	encoded := base64.RawURLEncoding.EncodeToString(hash[:])

	return fmt.Sprintf("%s:%s", IDVersion, encoded), nil
}
