// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds document search requests, issues them against the
// hosted API, and re-ranks the results client-side by tag relevance and
// recency.
package search

import (
	"time"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// Pagination defaults. The client implements no paging beyond the first
// page; this is a known limitation, not a defect.
const (
	defaultStart  = 0
	defaultLength = 10
)

const dateFmt = "2006-01-02"

// FilterState holds the user's current search criteria. Tags are unique
// (case-sensitive) and keep insertion order for display; order is
// irrelevant for matching. Only AddTag and RemoveTag mutate the tag list,
// never the ranking or resolution logic.
type FilterState struct {
	// Category is the major head filter ("Personal", "Professional"), empty for all.
	Category string

	// SubCategory is the minor head filter, empty for all.
	SubCategory string

	// DateFrom and DateTo bound the document date range; zero means unbounded.
	DateFrom time.Time
	DateTo   time.Time

	// Tags is the ordered tag filter. Mutate via AddTag/RemoveTag.
	Tags []string
}

// AddTag appends tag unless it is already present. Returns true when the
// tag was added.
func (f *FilterState) AddTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return false
		}
	}
	f.Tags = append(f.Tags, tag)
	return true
}

// RemoveTag deletes tag from the filter. Returns true when it was present.
func (f *FilterState) RemoveTag(tag string) bool {
	for i, t := range f.Tags {
		if t == tag {
			f.Tags = append(f.Tags[:i], f.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// BuildRequest translates the filter state into the wire-format search
// request. It is a pure function: the same filters always yield a
// structurally identical request. Empty fields become empty strings and
// the uploader filter, filter id, and free-text value are sent as empty
// placeholders the UI does not populate yet.
func BuildRequest(f FilterState) types.SearchRequest {
	tags := make([]types.TagParam, 0, len(f.Tags))
	for _, t := range f.Tags {
		tags = append(tags, types.TagParam{TagName: t})
	}

	req := types.SearchRequest{
		MajorHead:  f.Category,
		MinorHead:  f.SubCategory,
		Tags:       tags,
		UploadedBy: "",
		Start:      defaultStart,
		Length:     defaultLength,
		FilterID:   "",
		Search:     types.SearchValue{Value: ""},
	}
	if !f.DateFrom.IsZero() {
		req.FromDate = f.DateFrom.Format(dateFmt)
	}
	if !f.DateTo.IsZero() {
		req.ToDate = f.DateTo.Format(dateFmt)
	}
	return req
}
