// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"testing"
	"time"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

func doc(id, date string, tags ...string) types.DocumentRecord {
	refs := make([]types.TagRef, len(tags))
	for i, tag := range tags {
		refs[i] = types.TagRef{Name: tag}
	}
	return types.DocumentRecord{
		ID:           types.FlexString(id),
		DocumentDate: date,
		Tags:         refs,
	}
}

func ids(results []types.DocumentRecord) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = string(r.ID)
	}
	return out
}

func assertOrder(t *testing.T, got []types.DocumentRecord, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %d results %v, want %d %v", len(gotIDs), gotIDs, len(want), want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotIDs, want)
		}
	}
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name      string
		docTags   []string
		tagFilter []string
		want      int
	}{
		{"exact match", []string{"invoice"}, []string{"invoice"}, 1},
		{"filter substring of doc tag", []string{"invoices-2023"}, []string{"invoice"}, 1},
		{"doc tag substring of filter", []string{"invoice"}, []string{"invoices-2023"}, 1},
		{"case-insensitive", []string{"Invoice"}, []string{"INVOICE"}, 1},
		{"no overlap", []string{"receipt"}, []string{"invoice"}, 0},
		{"each filter tag counts once", []string{"tax", "taxes"}, []string{"tax"}, 1},
		{"two filter tags both match", []string{"tax", "invoice"}, []string{"tax", "invoice"}, 2},
		{"partial filter match", []string{"tax"}, []string{"tax", "invoice"}, 1},
		{"empty filter tag skipped", []string{"tax"}, []string{""}, 0},
		{"no document tags", nil, []string{"tax"}, 0},
		{"no filter tags", []string{"tax"}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc("1", "", tt.docTags...)
			if got := matchScore(d, tt.tagFilter); got != tt.want {
				t.Errorf("matchScore(%v, %v) = %d, want %d", tt.docTags, tt.tagFilter, got, tt.want)
			}
		})
	}
}

func TestParseDocumentDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"iso date", "2023-06-15", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2023-06-15T10:30:00Z", time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"space-separated datetime", "2023-06-15 10:30:00", time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"day-first", "15-06-2023", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "not-a-date", time.Time{}},
		{"whitespace only", "   ", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDocumentDate(tt.raw); !got.Equal(tt.want) {
				t.Errorf("parseDocumentDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRankByScoreThenDate(t *testing.T) {
	results := []types.DocumentRecord{
		doc("old-miss", "2020-01-01", "receipt"),
		doc("new-miss", "2024-01-01", "receipt"),
		doc("old-hit", "2020-01-01", "invoice"),
		doc("new-hit", "2024-01-01", "invoice"),
	}
	ranked := Rank(results, []string{"invoice"})
	assertOrder(t, ranked, "new-hit", "old-hit", "new-miss", "old-miss")
}

// Records tied on score and date keep server order (stable sort).
func TestRankStable(t *testing.T) {
	results := []types.DocumentRecord{
		doc("first", "2023-01-01"),
		doc("second", "2023-01-01"),
		doc("third", "2023-01-01"),
	}
	ranked := Rank(results, nil)
	assertOrder(t, ranked, "first", "second", "third")
}

// A record with a malformed date ranks below any parseable date at the
// same score, and never breaks the sort.
func TestRankMalformedDateDegrades(t *testing.T) {
	results := []types.DocumentRecord{
		doc("bad-date", "garbage"),
		doc("good-date", "2001-01-01"),
	}
	ranked := Rank(results, nil)
	assertOrder(t, ranked, "good-date", "bad-date")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	results := []types.DocumentRecord{
		doc("a", "2020-01-01"),
		doc("b", "2024-01-01"),
	}
	Rank(results, nil)
	if string(results[0].ID) != "a" || string(results[1].ID) != "b" {
		t.Errorf("input mutated: %v", ids(results))
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil, []string{"tax"}); len(got) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", got)
	}
}

// A higher tag-match count beats a newer date.
func TestRankScoreBeatsRecency(t *testing.T) {
	results := []types.DocumentRecord{
		doc("id2", "2024-05-01", "receipt"),
		doc("id1", "2021-03-01", "Tax", "invoice"),
	}
	ranked := Rank(results, []string{"tax", "invoice"})
	assertOrder(t, ranked, "id1", "id2")
}
