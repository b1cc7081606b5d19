// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"sort"
	"strings"
	"time"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// dateFormats are the document date layouts tried in order. The field's
// format is inconsistently documented upstream (date vs date-time), so the
// parser works down a candidate list and treats anything unparseable as
// the zero time rather than guessing a stricter format.
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// Rank returns a new slice of results ordered by tag-match count
// (descending), then document date (descending). Records tied on both
// keys keep their original server order. The input slice is not mutated.
//
// A record with a malformed date or tag field degrades to the lowest
// score and oldest date; ranking never fails because of one bad record.
func Rank(results []types.DocumentRecord, tagFilter []string) []types.DocumentRecord {
	type keyed struct {
		doc   types.DocumentRecord
		score int
		date  time.Time
	}

	entries := make([]keyed, len(results))
	for i, r := range results {
		entries[i] = keyed{
			doc:   r,
			score: matchScore(r, tagFilter),
			date:  parseDocumentDate(r.DocumentDate),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].date.After(entries[j].date)
	})

	ranked := make([]types.DocumentRecord, len(entries))
	for i, e := range entries {
		ranked[i] = e.doc
	}
	return ranked
}

// matchScore counts the filter tags that partially match some document
// tag. The match is a bidirectional substring test on lowercased names:
// filter "invoice" matches document tag "invoices-2023" and filter
// "invoices-2023" matches document tag "invoice". The fuzziness is a
// deliberate choice to tolerate prefix/suffix tag variants; do not
// tighten it to exact match.
func matchScore(doc types.DocumentRecord, tagFilter []string) int {
	docTags := doc.TagNames()
	for i, t := range docTags {
		docTags[i] = strings.ToLower(t)
	}

	score := 0
	for _, filterTag := range tagFilter {
		ft := strings.ToLower(filterTag)
		if ft == "" {
			continue
		}
		for _, dt := range docTags {
			if strings.Contains(dt, ft) || strings.Contains(ft, dt) {
				score++
				break
			}
		}
	}
	return score
}

// parseDocumentDate parses a document date, returning the zero time for
// an absent or unparseable value so such records sort oldest.
func parseDocumentDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
