// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a tagged document",
	Long: `Upload submits a JPG, PNG, or PDF file with its category, date, remarks,
and tags. The document date is entered as YYYY-MM-DD and converted to the
wire format the API expects.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().String("category", "", `major head ("Personal", "Professional")`)
	uploadCmd.Flags().String("sub-category", "", "minor head (name or department)")
	uploadCmd.Flags().String("date", "", "document date (YYYY-MM-DD)")
	uploadCmd.Flags().String("remarks", "", "free-text remarks")
	uploadCmd.Flags().String("tags", "", "tags to attach (comma-separated)")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	token, err := requireToken()
	if err != nil {
		return err
	}

	entry := upload.Entry{
		FilePath: args[0],
		UserID:   viper.GetString("upload.user_id"),
	}
	entry.Category, _ = cmd.Flags().GetString("category")
	entry.SubCategory, _ = cmd.Flags().GetString("sub-category")
	entry.Remarks, _ = cmd.Flags().GetString("remarks")

	if date, _ := cmd.Flags().GetString("date"); date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", date, err)
		}
		entry.Date = t
	}
	if tags, _ := cmd.Flags().GetString("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				entry.Tags = append(entry.Tags, t)
			}
		}
	}

	if err := upload.Upload(cmd.Context(), newAPIClient(), token, entry); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Document uploaded successfully.")
	return nil
}
