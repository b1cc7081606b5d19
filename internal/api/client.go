// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api is the HTTP client for the hosted document-management API.
// It owns endpoint paths, the token header, and the envelope rules that
// absorb the server's variable response shapes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/httputil"
	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// DefaultBaseURL is the hosted API root.
const DefaultBaseURL = "https://apis.allsoft.co/api/documentManagement"

// Endpoint paths relative to the base URL.
const (
	pathGenerateOTP = "/generateOTP"
	pathValidateOTP = "/validateOTP"
	pathTags        = "/documentTags"
	pathSearch      = "/searchDocumentEntry"
	pathSave        = "/saveDocumentEntry"
)

// tokenHeader is the session header name the API expects. It is a plain
// opaque string, not an Authorization: Bearer scheme.
const tokenHeader = "token"

// Client calls the document-management API. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL   string
	origin    string
	userAgent string
	http      *http.Client
}

// New creates a Client from cfg, filling in defaults for anything unset.
func New(cfg types.APIConfig) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	origin := cfg.Origin
	if origin == "" {
		if u, err := url.Parse(base); err == nil && u.Scheme != "" {
			origin = u.Scheme + "://" + u.Host
		}
	}
	return &Client{
		baseURL:   base,
		origin:    strings.TrimRight(origin, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// Origin returns the host relative document paths are joined onto.
func (c *Client) Origin() string { return c.origin }

// HTTPClient returns the underlying HTTP client, shared with the
// retrieval stage so downloads honor the same timeout.
func (c *Client) HTTPClient() *http.Client { return c.http }

// GenerateOTP requests a one-time passcode for the given mobile number.
func (c *Client) GenerateOTP(ctx context.Context, mobileNumber string) error {
	body := map[string]string{"mobile_number": mobileNumber}
	if _, err := c.postJSON(ctx, pathGenerateOTP, "", body); err != nil {
		return fmt.Errorf("generating OTP: %w", err)
	}
	return nil
}

// ValidateOTP exchanges a mobile number and passcode for a session token.
// The token may sit at the top level or under data/result depending on the
// server version.
func (c *Client) ValidateOTP(ctx context.Context, mobileNumber, otp string) (string, error) {
	body := map[string]string{"mobile_number": mobileNumber, "otp": otp}
	raw, err := c.postJSON(ctx, pathValidateOTP, "", body)
	if err != nil {
		return "", fmt.Errorf("validating OTP: %w", err)
	}
	token := ExtractToken(raw)
	if token == "" {
		return "", fmt.Errorf("login succeeded but no token in response")
	}
	return token, nil
}

// DocumentTags fetches the tag vocabulary matching term. An empty term
// returns the full vocabulary. The result feeds suggestion display only.
func (c *Client) DocumentTags(ctx context.Context, token, term string) ([]types.TagParam, error) {
	body := map[string]string{"term": term}
	raw, err := c.postJSON(ctx, pathTags, token, body)
	if err != nil {
		return nil, fmt.Errorf("fetching tags: %w", err)
	}

	list := ExtractResultList(raw)
	var tags []types.TagParam
	if err := json.Unmarshal(list, &tags); err != nil {
		return nil, nil
	}
	return tags, nil
}

// SearchDocuments issues a search and returns the raw (unranked) result
// list. A response without a recognizable list coerces to an empty set
// rather than an error: UI stability wins over strictness here.
func (c *Client) SearchDocuments(ctx context.Context, token string, req types.SearchRequest) ([]types.DocumentRecord, error) {
	raw, err := c.postJSON(ctx, pathSearch, token, req)
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}

	list := ExtractResultList(raw)
	var records []types.DocumentRecord
	if err := json.Unmarshal(list, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// SaveDocument uploads a document: the file bytes in a "file" part and the
// entry metadata JSON in a "data" part.
func (c *Client) SaveDocument(ctx context.Context, token, filename string, file io.Reader, data []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if err := mw.WriteField("data", string(data)); err != nil {
		return fmt.Errorf("writing data part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathSave, &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setCommonHeaders(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if !httputil.Is2xx(resp.StatusCode) {
		return fmt.Errorf("upload failed: %s", httputil.ErrorMessage(resp))
	}
	return nil
}

// postJSON posts body as JSON to path and returns the raw response body.
// Non-2xx responses become errors carrying the server-reported message.
func (c *Client) postJSON(ctx context.Context, path, token string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request: %w", err)
	}
	defer resp.Body.Close()

	if !httputil.Is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("%s", httputil.ErrorMessage(resp))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return raw, nil
}

func (c *Client) setCommonHeaders(req *http.Request, token string) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
}
