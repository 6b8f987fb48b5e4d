package model

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestFilterRecords(t *testing.T) {
	records := []*CheckRecord{
		{ID: "v1:a", Label: "first", Symmetrical: true},
		{ID: "v1:b", Label: "Second", Symmetrical: false},
		{ID: "v1:c", Label: "third", Symmetrical: true},
	}

	tests := []struct {
		name     string
		filter   RecordFilter
		expected []string
	}{
		{"no filter", RecordFilter{}, []string{"v1:a", "v1:b", "v1:c"}},
		{"symmetrical only", RecordFilter{Symmetrical: boolPtr(true)}, []string{"v1:a", "v1:c"}},
		{"asymmetrical only", RecordFilter{Symmetrical: boolPtr(false)}, []string{"v1:b"}},
		{"by id", RecordFilter{IDs: []string{"v1:c", "v1:b"}}, []string{"v1:b", "v1:c"}},
		{"label case-insensitive", RecordFilter{Labels: []string{"second"}}, []string{"v1:b"}},
		{"combined AND", RecordFilter{Symmetrical: boolPtr(true), Labels: []string{"second"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRecords(records, tt.filter)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d records, got %d", len(tt.expected), len(got))
			}
			for i, id := range tt.expected {
				if got[i].ID != id {
					t.Errorf("Expected record %d to be %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}
