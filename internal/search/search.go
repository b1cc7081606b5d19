// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// ErrSuperseded reports that a newer search was issued while this one was
// in flight. Stale responses are discarded instead of overwriting the
// ranked set that belongs to the newer request.
var ErrSuperseded = errors.New("search superseded by a newer request")

// Searcher issues the raw API search. Satisfied by *api.Client.
type Searcher interface {
	SearchDocuments(ctx context.Context, token string, req types.SearchRequest) ([]types.DocumentRecord, error)
}

// Controller orchestrates a search: it builds the wire request from the
// filter state, calls the API with the session token, and ranks the raw
// results by the filter's tags as they were at call time.
type Controller struct {
	api Searcher
	seq atomic.Uint64
}

// NewController creates a Controller backed by the given API client.
func NewController(api Searcher) *Controller {
	return &Controller{api: api}
}

// Search runs one search and returns the ranked result set. Failures
// surface the server-reported message without retry; the user re-triggers
// manually. If another Search call starts before this one's response
// lands, the stale response is dropped and ErrSuperseded is returned.
func (c *Controller) Search(ctx context.Context, filters FilterState, token string) ([]types.DocumentRecord, error) {
	seq := c.seq.Add(1)

	req := BuildRequest(filters)
	results, err := c.api.SearchDocuments(ctx, token, req)
	if err != nil {
		return nil, err
	}

	if c.seq.Load() != seq {
		return nil, ErrSuperseded
	}
	return Rank(results, filters.Tags), nil
}

// FormatTable writes ranked results as a human-readable table to w.
func FormatTable(results []types.DocumentRecord, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No documents found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-10s  %-30s  %-14s  %-12s  %s\n",
		"Rank", "ID", "Name", "Category", "Date", "Tags")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for i, d := range results {
		category := d.MajorHead
		if d.MinorHead != "" {
			category = category + "/" + d.MinorHead
		}
		fmt.Fprintf(w, "%-4d  %-10s  %-30s  %-14s  %-12s  %s\n",
			i+1, string(d.ID), truncate(d.Name, 30), truncate(category, 14),
			d.DocumentDate, strings.Join(d.TagNames(), ","))
	}
	fmt.Fprintf(w, "\n%d documents\n", len(results))
}

// truncate shortens s to at most max runes, marking the cut with "...".
// Counting runes keeps multibyte display names valid after the cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// FormatJSON writes ranked results as indented JSON to w.
func FormatJSON(results []types.DocumentRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
