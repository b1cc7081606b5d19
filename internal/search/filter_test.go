// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

func TestAddTag(t *testing.T) {
	var f FilterState

	if !f.AddTag("invoice") {
		t.Error("AddTag(invoice) on empty state = false, want true")
	}
	if !f.AddTag("tax") {
		t.Error("AddTag(tax) = false, want true")
	}
	if f.AddTag("invoice") {
		t.Error("AddTag(invoice) duplicate = true, want false")
	}
	want := []string{"invoice", "tax"}
	if !reflect.DeepEqual(f.Tags, want) {
		t.Errorf("Tags = %v, want %v", f.Tags, want)
	}

	// Case-sensitive uniqueness: "Invoice" is a distinct tag.
	if !f.AddTag("Invoice") {
		t.Error("AddTag(Invoice) = false, want true")
	}
}

func TestRemoveTag(t *testing.T) {
	f := FilterState{Tags: []string{"a", "b", "c"}}

	if !f.RemoveTag("b") {
		t.Error("RemoveTag(b) = false, want true")
	}
	if f.RemoveTag("b") {
		t.Error("RemoveTag(b) twice = true, want false")
	}
	if f.RemoveTag("missing") {
		t.Error("RemoveTag(missing) = true, want false")
	}
	want := []string{"a", "c"}
	if !reflect.DeepEqual(f.Tags, want) {
		t.Errorf("Tags = %v, want %v", f.Tags, want)
	}
}

func TestBuildRequest(t *testing.T) {
	from := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filters FilterState
		want    types.SearchRequest
	}{
		{
			name:    "empty filters",
			filters: FilterState{},
			want: types.SearchRequest{
				Tags:   []types.TagParam{},
				Start:  0,
				Length: 10,
			},
		},
		{
			name: "all fields set",
			filters: FilterState{
				Category:    "Professional",
				SubCategory: "Accounts",
				DateFrom:    from,
				DateTo:      to,
				Tags:        []string{"invoice", "tax"},
			},
			want: types.SearchRequest{
				MajorHead: "Professional",
				MinorHead: "Accounts",
				FromDate:  "2023-01-15",
				ToDate:    "2023-06-30",
				Tags: []types.TagParam{
					{TagName: "invoice"},
					{TagName: "tax"},
				},
				Start:  0,
				Length: 10,
			},
		},
		{
			name:    "zero dates stay empty",
			filters: FilterState{Category: "Personal"},
			want: types.SearchRequest{
				MajorHead: "Personal",
				Tags:      []types.TagParam{},
				Start:     0,
				Length:    10,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRequest(tt.filters)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildRequestDeterministic(t *testing.T) {
	f := FilterState{
		Category: "Personal",
		Tags:     []string{"receipts", "2023"},
	}
	first := BuildRequest(f)
	second := BuildRequest(f)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("BuildRequest not deterministic: %+v vs %+v", first, second)
	}
}

// An empty tag filter must serialize as [] on the wire, not null.
func TestBuildRequestEmptyTagsSerialization(t *testing.T) {
	data, err := json.Marshal(BuildRequest(FilterState{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded["tags"]) != "[]" {
		t.Errorf("tags serialized as %s, want []", decoded["tags"])
	}
	if string(decoded["search"]) != `{"value":""}` {
		t.Errorf("search serialized as %s, want {\"value\":\"\"}", decoded["search"])
	}
}
