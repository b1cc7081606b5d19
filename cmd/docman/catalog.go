// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Search the local catalog of fetched documents",
	Long: `Catalog works against the local SQLite index of previously fetched
documents. It needs no server connection.`,
}

var catalogQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Full-text search over cataloged documents",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogQuery,
}

var catalogCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Report the number of cataloged documents",
	RunE:  runCatalogCount,
}

func init() {
	catalogQueryCmd.Flags().String("category", "", "narrow by major head")

	catalogCmd.AddCommand(catalogQueryCmd)
	catalogCmd.AddCommand(catalogCountCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	var text string
	if len(args) > 0 {
		text = args[0]
	}
	category, _ := cmd.Flags().GetString("category")

	entries, err := store.Query(cmd.Context(), text, category)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No cataloged documents matched.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tCategory\tDate\tPath\tTags")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.DocID, e.Name, e.MajorHead, e.DocumentDate, e.LocalPath,
			strings.Join(e.Tags, ","))
	}
	return w.Flush()
}

func runCatalogCount(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d documents cataloged\n", n)
	return nil
}
