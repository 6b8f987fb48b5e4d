package presenter

import (
	"fmt"

	"github.com/mrled/suns/symaxis/internal/model"
)

// FormatVerdict renders a point set and its verdict, e.g.
//
//	POINTS: (-5;-4),(1;9)
//	>> NOT SYMMETRICAL
func FormatVerdict(points []model.Point, symmetrical bool) string {
	prefix := "NOT "
	if symmetrical {
		prefix = ""
	}
	return fmt.Sprintf("POINTS: %s\n>> %sSYMMETRICAL", model.FormatPoints(points), prefix)
}

// FormatAxis renders the axis of a record, or "-" when there is none
func FormatAxis(record *model.CheckRecord) string {
	if record.Axis == nil {
		return "-"
	}
	return fmt.Sprintf("x=%d", *record.Axis)
}
