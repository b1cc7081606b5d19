// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns an opaque document record into a concrete,
// previewable file: a canonical absolute URL plus a coarse content-type
// classification. It is pure string logic with no I/O.
package resolve

import (
	"strings"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// urlFields lists the URL-bearing record fields in priority order. The
// server populates a different one depending on its version; the first
// non-empty value wins. New shapes are a one-line addition here.
var urlFields = []struct {
	name string
	get  func(types.DocumentRecord) string
}{
	{"file_url", func(d types.DocumentRecord) string { return d.FileURL }},
	{"document_url", func(d types.DocumentRecord) string { return d.DocumentURL }},
	{"url", func(d types.DocumentRecord) string { return d.URL }},
	{"file", func(d types.DocumentRecord) string { return d.File }},
	{"path", func(d types.DocumentRecord) string { return d.Path }},
}

// imageExtensions are the extensions classified as KindImage.
var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// Resolver derives ResolvedFiles against a fixed API origin.
type Resolver struct {
	origin string
}

// New creates a Resolver that joins relative paths onto origin
// (e.g. "https://apis.allsoft.co").
func New(origin string) *Resolver {
	return &Resolver{origin: strings.TrimRight(origin, "/")}
}

// Resolve extracts the document's URL and classifies its content type.
// A record with no URL-bearing field yields KindUnknown and an empty URL.
// Resolve never fails; an unparseable URL degrades to KindUnsupported.
// The result is ephemeral and recomputed per interaction, never cached.
func (r *Resolver) Resolve(doc types.DocumentRecord) types.ResolvedFile {
	raw := extractURL(doc)
	if raw == "" {
		return types.ResolvedFile{Kind: types.KindUnknown}
	}

	abs := r.normalize(raw)
	return types.ResolvedFile{
		AbsoluteURL: abs,
		Kind:        classify(abs),
	}
}

// extractURL returns the first non-empty URL-bearing field value.
func extractURL(doc types.DocumentRecord) string {
	for _, field := range urlFields {
		if v := strings.TrimSpace(field.get(doc)); v != "" {
			return v
		}
	}
	return ""
}

// normalize returns raw unchanged when it already carries an http(s)
// scheme; otherwise it is treated as a path relative to the API origin,
// with a single leading separator stripped before joining.
func (r *Resolver) normalize(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return r.origin + "/" + strings.TrimPrefix(raw, "/")
}

// classify maps the extension of the final URL segment to a FileKind.
// Extension matching is case-insensitive; an extensionless or otherwise
// unparseable URL is KindUnsupported.
func classify(absURL string) types.FileKind {
	segment := absURL
	if i := strings.IndexAny(segment, "?#"); i >= 0 {
		segment = segment[:i]
	}
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}

	dot := strings.LastIndex(segment, ".")
	if dot < 0 || dot == len(segment)-1 {
		return types.KindUnsupported
	}
	ext := strings.ToLower(segment[dot+1:])

	switch {
	case imageExtensions[ext]:
		return types.KindImage
	case ext == "pdf":
		return types.KindPDF
	default:
		return types.KindUnsupported
	}
}
