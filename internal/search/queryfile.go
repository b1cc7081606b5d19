// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// QueryFile is the on-disk representation of a search and its ranked
// results. A saved search can be reloaded and displayed later without
// re-querying the API.
type QueryFile struct {
	Filters FilterParams           `yaml:"filters"`
	Results []types.DocumentRecord `yaml:"results"`
	Summary QuerySummary           `yaml:"summary"`
}

// FilterParams stores the filter state in a serializable form.
type FilterParams struct {
	Category    string   `yaml:"category,omitempty"`
	SubCategory string   `yaml:"sub_category,omitempty"`
	DateFrom    string   `yaml:"date_from,omitempty"`
	DateTo      string   `yaml:"date_to,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the filter state and ranked results to a YAML file.
func WriteQueryFile(path string, filters FilterState, results []types.DocumentRecord) error {
	qf := QueryFile{
		Filters: FilterParams{
			Category:    filters.Category,
			SubCategory: filters.SubCategory,
			Tags:        filters.Tags,
		},
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}
	if !filters.DateFrom.IsZero() {
		qf.Filters.DateFrom = filters.DateFrom.Format(dateFmt)
	}
	if !filters.DateTo.IsZero() {
		qf.Filters.DateTo = filters.DateTo.Format(dateFmt)
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved search from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToFilterState converts stored FilterParams back into a FilterState.
func (p FilterParams) ToFilterState() (FilterState, error) {
	f := FilterState{
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Tags:        p.Tags,
	}
	if p.DateFrom != "" {
		t, err := time.Parse(dateFmt, p.DateFrom)
		if err != nil {
			return f, fmt.Errorf("invalid date_from %q: %w", p.DateFrom, err)
		}
		f.DateFrom = t
	}
	if p.DateTo != "" {
		t, err := time.Parse(dateFmt, p.DateTo)
		if err != nil {
			return f, fmt.Errorf("invalid date_to %q: %w", p.DateTo, err)
		}
		f.DateTo = t
	}
	return f, nil
}
