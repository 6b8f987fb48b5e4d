package model

import "strings"

// RecordFilter contains criteria for filtering check records.
// All criteria are optional; unset criteria match every record.
// Between fields, criteria are combined with AND logic.
type RecordFilter struct {
	// Symmetrical filters by verdict when non-nil
	Symmetrical *bool

	// IDs filters by exact record ID matches (OR within list)
	IDs []string

	// Labels filters by label (case-insensitive, OR within list)
	Labels []string
}

// FilterRecords filters a slice of check records based on the provided criteria.
// Returns a new slice containing only records that match the filter.
func FilterRecords(records []*CheckRecord, filter RecordFilter) []*CheckRecord {
	if filter.Symmetrical == nil && len(filter.IDs) == 0 && len(filter.Labels) == 0 {
		return records
	}

	idMap := make(map[string]bool)
	for _, id := range filter.IDs {
		idMap[id] = true
	}

	labelMap := make(map[string]bool)
	for _, label := range filter.Labels {
		labelMap[strings.ToLower(label)] = true
	}

	var filtered []*CheckRecord

	for _, record := range records {
		if filter.Symmetrical != nil && record.Symmetrical != *filter.Symmetrical {
			continue
		}

		if len(filter.IDs) > 0 && !idMap[record.ID] {
			continue
		}

		if len(filter.Labels) > 0 && !labelMap[strings.ToLower(record.Label)] {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}
