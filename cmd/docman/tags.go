// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tag vocabulary",
	Long: `Tags fetches the known tag names from the server. These are the tags
previously attached to documents and are useful as suggestions when
uploading or filtering.`,
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().String("term", "", "prefix to filter tag names by")

	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	token, err := requireToken()
	if err != nil {
		return err
	}

	term, _ := cmd.Flags().GetString("term")
	tags, err := newAPIClient().DocumentTags(cmd.Context(), token, term)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tags found.")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintln(cmd.OutOrStdout(), tag.TagName)
	}
	return nil
}
