// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/api"
	"github.com/LokendraNath/Dodoment-Managment-System/internal/catalog"
	"github.com/LokendraNath/Dodoment-Managment-System/internal/search"
	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download documents from a search or a saved query file",
	Long: `Fetch downloads documents to the download directory and records them in
the local catalog. Documents come from a saved query file (--load) or from
a live search using the same filter flags as the search command.

Each download tries a buffered fetch first, which saves under the
document's display name, and falls back to a direct streamed fetch named
after the URL when the buffered path fails.`,
	RunE: runFetch,
}

func init() {
	addFilterFlags(fetchCmd)
	fetchCmd.Flags().String("load", "", "saved query file to fetch from")
	fetchCmd.Flags().Int("rank", 0, "fetch only the result at this rank (1-based, 0 = all)")
	fetchCmd.Flags().Bool("no-catalog", false, "skip recording fetched documents in the catalog")

	rootCmd.AddCommand(fetchCmd)
}

// loadOrSearch returns the documents selected by the command flags:
// a saved query file when --load is set, otherwise a live ranked search
// through the given client.
func loadOrSearch(cmd *cobra.Command, client *api.Client) ([]types.DocumentRecord, error) {
	if load, _ := cmd.Flags().GetString("load"); load != "" {
		qf, err := search.ReadQueryFile(load)
		if err != nil {
			return nil, err
		}
		return qf.Results, nil
	}

	token, err := requireToken()
	if err != nil {
		return nil, err
	}
	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return search.NewController(client).Search(cmd.Context(), filters, token)
}

func runFetch(cmd *cobra.Command, args []string) error {
	client := newAPIClient()
	results, err := loadOrSearch(cmd, client)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No documents to fetch.")
		return nil
	}

	if rank, _ := cmd.Flags().GetInt("rank"); rank > 0 {
		if rank > len(results) {
			return fmt.Errorf("rank %d out of range (have %d results)", rank, len(results))
		}
		results = results[rank-1 : rank]
	}

	gateway := newGateway(client)

	var store *catalog.Store
	if noCatalog, _ := cmd.Flags().GetBool("no-catalog"); !noCatalog {
		store, err = catalog.NewStore(catalogConfig())
		if err != nil {
			return err
		}
		defer store.Close()
	}

	failed := 0
	for _, doc := range results {
		out, err := gateway.Download(cmd.Context(), doc, os.Stderr)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "failed:  %s (%v)\n", doc.Name, err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fetched: %s (%d bytes, %s)\n", out.Path, out.Bytes, out.Strategy)

		if store != nil {
			rf := gateway.Preview(doc)
			if err := store.Record(cmd.Context(), doc, rf.URL, out.Path, string(out.Strategy)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not catalog %s: %v\n", doc.Name, err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d document(s) failed to download", failed)
	}
	return nil
}
