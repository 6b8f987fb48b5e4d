package model

import "sort"

// SortBy specifies the field and order for sorting check records
type SortBy string

const (
	SortByID        SortBy = "id"
	SortByLabel     SortBy = "label"
	SortByCheckTime SortBy = "check-time"
	SortByVerdict   SortBy = "verdict"
	SortByDefault   SortBy = "" // Default sort: label, then ID
)

// SortRecords sorts a slice of check records in place based on the specified field.
// The sortBy parameter should be one of: "id", "label", "check-time", "verdict".
// If sortBy is empty or unrecognized, records are sorted by label, then by ID.
func SortRecords(records []*CheckRecord, sortBy string) {
	switch SortBy(sortBy) {
	case SortByID:
		sort.Slice(records, func(i, j int) bool {
			return records[i].ID < records[j].ID
		})
	case SortByLabel:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Label < records[j].Label
		})
	case SortByCheckTime:
		sort.Slice(records, func(i, j int) bool {
			return records[i].CheckTime.After(records[j].CheckTime)
		})
	case SortByVerdict:
		// Symmetrical records first
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Symmetrical && !records[j].Symmetrical
		})
	default:
		sort.Slice(records, func(i, j int) bool {
			if records[i].Label != records[j].Label {
				return records[i].Label < records[j].Label
			}
			return records[i].ID < records[j].ID
		})
	}
}
