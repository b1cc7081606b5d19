// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search stored documents and rank by tag relevance",
	Long: `Search queries the document-management API with category, date-range,
and tag filters, then re-ranks the first result page client-side: documents
matching more filter tags come first, ties break by document date (newest
first). Tag matching is a bidirectional partial match, so filter "invoice"
also finds documents tagged "invoices-2023".`,
	RunE: runSearch,
}

func init() {
	addFilterFlags(searchCmd)
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the filters and ranked results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}

// addFilterFlags registers the shared search-filter flags on cmd. The
// fetch and preview commands accept the same filters for live lookups.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", `major head filter ("Personal", "Professional")`)
	cmd.Flags().String("sub-category", "", "minor head filter (name or department)")
	cmd.Flags().String("from", "", "document date range start (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "document date range end (YYYY-MM-DD)")
	cmd.Flags().String("tags", "", "tag filter (comma-separated)")
}

// filtersFromFlags builds the filter state from the search command flags.
func filtersFromFlags(cmd *cobra.Command) (search.FilterState, error) {
	var filters search.FilterState

	filters.Category, _ = cmd.Flags().GetString("category")
	filters.SubCategory, _ = cmd.Flags().GetString("sub-category")

	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filters, fmt.Errorf("invalid --from date %q: %w", from, err)
		}
		filters.DateFrom = t
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filters, fmt.Errorf("invalid --to date %q: %w", to, err)
		}
		filters.DateTo = t
	}

	if tags, _ := cmd.Flags().GetString("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filters.AddTag(t)
			}
		}
	}
	return filters, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	token, err := requireToken()
	if err != nil {
		return err
	}

	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}

	controller := search.NewController(newAPIClient())
	results, err := controller.Search(cmd.Context(), filters, token)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := search.WriteQueryFile(save, filters, results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved search to %s\n", save)
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return search.FormatJSON(results, cmd.OutOrStdout())
	}
	search.FormatTable(results, cmd.OutOrStdout())
	return nil
}
