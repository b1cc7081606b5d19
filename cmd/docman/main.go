// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docman CLI, a client for the
// hosted document-management API: OTP login, tagged uploads, and
// tag-ranked search and retrieval of stored documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/api"
	"github.com/LokendraNath/Dodoment-Managment-System/internal/auth"
	"github.com/LokendraNath/Dodoment-Managment-System/internal/resolve"
	"github.com/LokendraNath/Dodoment-Managment-System/internal/retrieve"
	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "docman/0.1"
)

// rootCmd is the base command for the docman CLI.
var rootCmd = &cobra.Command{
	Use:   "docman",
	Short: "Client for the hosted document-management service",
	Long: `docman is a command-line client for the hosted document-management API.
It authenticates with a mobile-number OTP, uploads tagged documents, and
searches stored documents with client-side ranking by tag relevance and
recency. Fetched documents land in a local download directory and are
indexed in a SQLite catalog for offline lookup.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docman.yaml or ~/.config/docman/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docman")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docman"))
		}
	}

	viper.SetEnvPrefix("DOCMAN")
	viper.AutomaticEnv()

	viper.SetDefault("api.base_url", api.DefaultBaseURL)
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("download.dir", "downloads")
	viper.SetDefault("catalog.dir", "catalog")
	viper.SetDefault("catalog.max_results", 20)
	viper.SetDefault("auth.credentials_dir", auth.DefaultCredentialsDir)
	viper.SetDefault("upload.user_id", "current_user")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
}

func newAPIClient() *api.Client {
	return api.New(types.APIConfig{
		HTTPConfig: httpConfig(),
		BaseURL:    viper.GetString("api.base_url"),
		Origin:     viper.GetString("api.origin"),
	})
}

func newGateway(client *api.Client) *retrieve.Gateway {
	return retrieve.New(
		resolve.New(client.Origin()),
		client.HTTPClient(),
		types.RetrievalConfig{
			HTTPConfig:     httpConfig(),
			DownloadDir:    viper.GetString("download.dir"),
			PlaceholderURL: viper.GetString("download.placeholder_url"),
		},
	)
}

func tokenStore() *auth.Store {
	return auth.NewStore(types.AuthConfig{
		CredentialsDir: viper.GetString("auth.credentials_dir"),
	})
}

// requireToken loads the stored session token for authenticated commands.
func requireToken() (string, error) {
	return tokenStore().Token()
}

func catalogConfig() types.CatalogConfig {
	return types.CatalogConfig{
		CatalogDir: viper.GetString("catalog.dir"),
		MaxResults: viper.GetInt("catalog.max_results"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
