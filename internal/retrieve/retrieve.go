// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retrieve performs document preview resolution and downloads.
//
// Downloads use a two-step strategy made explicit so the fallback path is
// visible and independently testable: a buffered fetch that materializes
// the file in memory and saves it under the document's display name, then,
// if that fails for any reason (network error, non-2xx, short read), a
// direct fetch streamed straight to disk under the URL's own basename.
// The buffered path controls the saved filename; the direct path is more
// permissive but gives that control up.
package retrieve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/httputil"
	"github.com/LokendraNath/Dodoment-Managment-System/internal/resolve"
	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// ErrNoSource reports that a document carries no resolvable file URL.
// This is the only retrieval failure surfaced to the user as-is; every
// other failure falls back to the direct strategy first.
var ErrNoSource = errors.New("download unavailable: document has no file URL")

// RenderMode tells the presentation surface how to show a document.
type RenderMode string

const (
	// RenderImage renders inline as an image, with a placeholder on load failure.
	RenderImage RenderMode = "image"
	// RenderPDF renders in an embedded viewer.
	RenderPDF RenderMode = "pdf"
	// RenderDownloadOnly offers a download affordance instead of a preview.
	RenderDownloadOnly RenderMode = "download-only"
)

// RenderInstruction is the outcome of a preview request.
type RenderInstruction struct {
	Mode RenderMode

	// URL is the resolved document URL; empty for unresolvable records.
	URL string

	// Fallback is the placeholder to show when an image fails to load.
	// Set only for RenderImage.
	Fallback string
}

// Strategy names the download path that produced an outcome.
type Strategy string

const (
	// StrategyBuffered fetched into memory and saved under the display name.
	StrategyBuffered Strategy = "buffered"
	// StrategyDirect streamed the URL to disk under the URL's basename.
	StrategyDirect Strategy = "direct"
)

// Outcome describes a completed download.
type Outcome struct {
	// Path is the local file the document was saved to.
	Path string

	// Strategy is the path that succeeded.
	Strategy Strategy

	// Bytes is the number of bytes written.
	Bytes int64
}

// Gateway resolves and retrieves document files.
type Gateway struct {
	resolver    *resolve.Resolver
	client      *http.Client
	userAgent   string
	downloadDir string
	placeholder string
}

// New creates a Gateway. client may be shared with the API layer so
// downloads honor the same timeout.
func New(resolver *resolve.Resolver, client *http.Client, cfg types.RetrievalConfig) *Gateway {
	dir := cfg.DownloadDir
	if dir == "" {
		dir = "downloads"
	}
	return &Gateway{
		resolver:    resolver,
		client:      client,
		userAgent:   cfg.UserAgent,
		downloadDir: dir,
		placeholder: cfg.PlaceholderURL,
	}
}

// Preview resolves doc and returns how it should be rendered. No network
// call is made; only the rendering surface itself fetches the URL.
func (g *Gateway) Preview(doc types.DocumentRecord) RenderInstruction {
	rf := g.resolver.Resolve(doc)
	switch rf.Kind {
	case types.KindImage:
		return RenderInstruction{Mode: RenderImage, URL: rf.AbsoluteURL, Fallback: g.placeholder}
	case types.KindPDF:
		return RenderInstruction{Mode: RenderPDF, URL: rf.AbsoluteURL}
	default:
		return RenderInstruction{Mode: RenderDownloadOnly, URL: rf.AbsoluteURL}
	}
}

// Download retrieves doc to the download directory. It tries the buffered
// strategy first and falls back to the direct strategy on any buffered
// failure; a fallback is reported on w, not raised. Only an unresolvable
// URL returns an error without any attempt.
func (g *Gateway) Download(ctx context.Context, doc types.DocumentRecord, w io.Writer) (Outcome, error) {
	rf := g.resolver.Resolve(doc)
	if rf.AbsoluteURL == "" {
		return Outcome{}, ErrNoSource
	}

	if err := os.MkdirAll(g.downloadDir, 0o755); err != nil {
		return Outcome{}, fmt.Errorf("creating download directory: %w", err)
	}

	out, err := g.downloadBuffered(ctx, rf.AbsoluteURL, suggestedFilename(doc, rf.AbsoluteURL))
	if err == nil {
		return out, nil
	}
	fmt.Fprintf(w, "warning: buffered download failed (%v), falling back to direct fetch\n", err)

	out, err = g.downloadDirect(ctx, rf.AbsoluteURL)
	if err != nil {
		return Outcome{}, fmt.Errorf("direct download: %w", err)
	}
	return out, nil
}

// downloadBuffered fetches the URL, materializes the body in memory, and
// saves it under name via a temp file rename.
func (g *Gateway) downloadBuffered(ctx context.Context, rawURL, name string) (Outcome, error) {
	resp, err := g.get(ctx, rawURL)
	if err != nil {
		return Outcome{}, err
	}
	defer resp.Body.Close()

	if !httputil.Is2xx(resp.StatusCode) {
		return Outcome{}, fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("reading body: %w", err)
	}

	destPath := filepath.Join(g.downloadDir, name)
	if err := writeFileAtomic(destPath, blob); err != nil {
		return Outcome{}, err
	}
	return Outcome{Path: destPath, Strategy: StrategyBuffered, Bytes: int64(len(blob))}, nil
}

// downloadDirect streams the URL straight to disk under the URL's own
// basename. Mirroring a plain link navigation, it does not inspect the
// status code; whatever the server returns is what gets saved.
func (g *Gateway) downloadDirect(ctx context.Context, rawURL string) (Outcome, error) {
	resp, err := g.get(ctx, rawURL)
	if err != nil {
		return Outcome{}, err
	}
	defer resp.Body.Close()

	destPath := filepath.Join(g.downloadDir, urlBasename(rawURL))
	f, err := os.Create(destPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("creating %s: %w", destPath, err)
	}

	written, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil {
		os.Remove(destPath)
		return Outcome{}, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(destPath)
		return Outcome{}, fmt.Errorf("closing file: %w", closeErr)
	}
	return Outcome{Path: destPath, Strategy: StrategyDirect, Bytes: written}, nil
}

func (g *Gateway) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	return resp, nil
}

// writeFileAtomic writes data to destPath via a temp file rename, so a
// failed write never leaves a truncated document behind.
func writeFileAtomic(destPath string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".docman-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// suggestedFilename derives the saved filename from the document's display
// name, borrowing the URL's extension when the name lacks one.
func suggestedFilename(doc types.DocumentRecord, absURL string) string {
	name := strings.TrimSpace(doc.Name)
	if name == "" {
		return urlBasename(absURL)
	}
	name = strings.NewReplacer("/", "-", "\\", "-", ":", "-").Replace(name)
	if filepath.Ext(name) == "" {
		if ext := path.Ext(urlBasename(absURL)); ext != "" {
			name += ext
		}
	}
	return name
}

// urlBasename returns the final path segment of a URL, or "document" when
// the URL has no usable segment.
func urlBasename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "document"
	}
	base := path.Base(u.Path)
	if base == "" || base == "." || base == "/" {
		return "document"
	}
	return base
}
