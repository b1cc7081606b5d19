// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the docman client:
// document records as the server returns them, the search wire format,
// resolved files, and per-stage configuration.
package types

import (
	"encoding/json"
	"strings"
)

// TagRef is a single tag reference on a document record. The server is
// inconsistent about the shape: a tag arrives either as a bare string
// ("invoice") or as an object with a tag_name field ({"tag_name":"invoice"}).
// Any other shape decodes to an empty name and contributes no tag.
type TagRef struct {
	Name string
}

// UnmarshalJSON accepts both tag shapes without failing the whole record.
func (t *TagRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Name = s
		return nil
	}
	var obj struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		t.Name = obj.TagName
		return nil
	}
	t.Name = ""
	return nil
}

// MarshalJSON writes the object form, which is what the API accepts.
func (t TagRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TagName string `json:"tag_name"`
	}{TagName: t.Name})
}

// FlexString is a string that also decodes from a JSON number. Document
// identifiers arrive as either depending on the server version.
type FlexString string

// UnmarshalJSON decodes a JSON string or number into s.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = FlexString(num.String())
		return nil
	}
	*s = ""
	return nil
}

// DocumentRecord is a document entry as returned by searchDocumentEntry.
// Records are treated as immutable once decoded; all derived values
// (tag names, resolved URLs, ranking keys) are computed, never written back.
type DocumentRecord struct {
	// ID is the server-side document identifier.
	ID FlexString `json:"id"`

	// Name is the display name, used as the suggested download filename.
	Name string `json:"name"`

	// MajorHead is the category label (e.g. "Personal", "Professional").
	MajorHead string `json:"major_head"`

	// MinorHead is the sub-category label (a person or department name).
	MinorHead string `json:"minor_head"`

	// Remarks is the free-text remarks string entered at upload time.
	Remarks string `json:"document_remarks"`

	// DocumentDate is the upload/document date, nominally ISO-8601 but
	// inconsistently formatted upstream. Kept raw; parsing is the
	// ranker's concern and an unparseable value sorts oldest.
	DocumentDate string `json:"document_date"`

	// Tags holds the document's tag references in server order.
	Tags []TagRef `json:"tags"`

	// URL-bearing fields. Which one is populated depends on the server
	// version; resolution priority is file_url, document_url, url,
	// file, path.
	FileURL     string `json:"file_url"`
	DocumentURL string `json:"document_url"`
	URL         string `json:"url"`
	File        string `json:"file"`
	Path        string `json:"path"`
}

// TagNames returns the document's non-empty tag names in server order.
func (d DocumentRecord) TagNames() []string {
	var names []string
	for _, t := range d.Tags {
		if name := strings.TrimSpace(t.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FileKind is the coarse content classification of a resolved file.
type FileKind string

const (
	KindImage       FileKind = "image"
	KindPDF         FileKind = "pdf"
	KindUnsupported FileKind = "unsupported"
	KindUnknown     FileKind = "unknown"
)

// ResolvedFile is the concrete URL and classification derived from a
// DocumentRecord. It is ephemeral: recomputed on each preview or download
// rather than cached, so a changed record never serves a stale URL.
type ResolvedFile struct {
	// AbsoluteURL is the fully qualified download URL, empty when the
	// record carries no URL-bearing field.
	AbsoluteURL string

	// Kind is the content classification; KindUnknown when no URL
	// could be extracted.
	Kind FileKind
}
