// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "docman/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// APIConfig holds settings for the hosted document-management API.
type APIConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root (default
	// "https://apis.allsoft.co/api/documentManagement").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Origin is the host relative document paths are joined onto.
	// Defaults to the scheme and host of BaseURL.
	Origin string `json:"origin" yaml:"origin"`
}

// RetrievalConfig holds settings for document preview and download.
type RetrievalConfig struct {
	HTTPConfig `yaml:",inline"`

	// DownloadDir is the directory downloaded documents are saved to.
	DownloadDir string `json:"download_dir" yaml:"download_dir"`

	// PlaceholderURL is shown in place of an image that fails to load.
	PlaceholderURL string `json:"placeholder_url" yaml:"placeholder_url"`
}

// AuthConfig holds settings for OTP authentication and token storage.
type AuthConfig struct {
	// CredentialsDir is the directory the session token file lives in.
	CredentialsDir string `json:"credentials_dir" yaml:"credentials_dir"`
}

// CatalogConfig holds settings for the local document catalog.
type CatalogConfig struct {
	// CatalogDir is the base directory for the catalog (contains index/).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
