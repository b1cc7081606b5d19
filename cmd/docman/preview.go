// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/retrieve"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show how a search result would be rendered",
	Long: `Preview resolves a document's file URL and content type and prints the
render instruction: images render inline with a placeholder fallback, PDFs
render in an embedded viewer, and anything else gets a download-only
affordance. No document bytes are fetched.`,
	RunE: runPreview,
}

func init() {
	addFilterFlags(previewCmd)
	previewCmd.Flags().String("load", "", "saved query file to preview from")
	previewCmd.Flags().Int("rank", 1, "result to preview (1-based)")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	client := newAPIClient()
	results, err := loadOrSearch(cmd, client)
	if err != nil {
		return err
	}

	rank, _ := cmd.Flags().GetInt("rank")
	if rank < 1 || rank > len(results) {
		return fmt.Errorf("rank %d out of range (have %d results)", rank, len(results))
	}
	doc := results[rank-1]

	instr := newGateway(client).Preview(doc)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Document: %s\n", doc.Name)
	switch instr.Mode {
	case retrieve.RenderImage:
		fmt.Fprintf(w, "Render:   inline image\n")
		if instr.Fallback != "" {
			fmt.Fprintf(w, "Fallback: %s\n", instr.Fallback)
		}
	case retrieve.RenderPDF:
		fmt.Fprintf(w, "Render:   embedded PDF viewer\n")
	default:
		fmt.Fprintf(w, "Render:   no inline preview, download instead\n")
	}
	if instr.URL != "" {
		fmt.Fprintf(w, "URL:      %s\n", instr.URL)
	} else {
		fmt.Fprintln(w, "URL:      (none resolvable)")
	}
	return nil
}
