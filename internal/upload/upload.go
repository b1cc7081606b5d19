// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upload validates and submits tagged documents to the API.
package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// allowedExtensions gates uploads client-side, matching the server's
// accepted formats.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// wireDateFmt is the DD-MM-YYYY form saveDocumentEntry expects, unlike
// the ISO dates used everywhere else in the API.
const wireDateFmt = "02-01-2006"

// Saver is the slice of the API client the upload stage needs.
type Saver interface {
	SaveDocument(ctx context.Context, token, filename string, file io.Reader, data []byte) error
}

// Entry describes one document to upload.
type Entry struct {
	// FilePath is the local file to upload (jpg, jpeg, png, or pdf).
	FilePath string

	// Category and SubCategory are the major/minor head labels.
	Category    string
	SubCategory string

	// Date is the document date.
	Date time.Time

	// Remarks is free text stored with the document.
	Remarks string

	// Tags are the bare tag names to attach.
	Tags []string

	// UserID is the uploader identity; defaults to "current_user".
	UserID string
}

// Validate checks the entry before any network call.
func (e Entry) Validate() error {
	if e.FilePath == "" {
		return fmt.Errorf("file required")
	}
	ext := strings.ToLower(filepath.Ext(e.FilePath))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q (only JPG, PNG and PDF files are allowed)", ext)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("document date required")
	}
	if e.Category == "" {
		return fmt.Errorf("category required")
	}
	if e.SubCategory == "" {
		return fmt.Errorf("name/department required")
	}
	return nil
}

// wireEntry is the JSON carried in the multipart "data" part.
type wireEntry struct {
	MajorHead    string           `json:"major_head"`
	MinorHead    string           `json:"minor_head"`
	DocumentDate string           `json:"document_date"`
	Remarks      string           `json:"document_remarks"`
	Tags         []types.TagParam `json:"tags"`
	UserID       string           `json:"user_id"`
}

// EncodeData marshals the entry metadata into the wire JSON, converting
// the date to the DD-MM-YYYY wire form.
func (e Entry) EncodeData() ([]byte, error) {
	tags := make([]types.TagParam, 0, len(e.Tags))
	for _, t := range e.Tags {
		tags = append(tags, types.TagParam{TagName: t})
	}
	userID := e.UserID
	if userID == "" {
		userID = "current_user"
	}
	return json.Marshal(wireEntry{
		MajorHead:    e.Category,
		MinorHead:    e.SubCategory,
		DocumentDate: e.Date.Format(wireDateFmt),
		Remarks:      e.Remarks,
		Tags:         tags,
		UserID:       userID,
	})
}

// Upload validates the entry and submits it with the session token.
func Upload(ctx context.Context, api Saver, token string, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	data, err := entry.EncodeData()
	if err != nil {
		return fmt.Errorf("encoding entry: %w", err)
	}

	f, err := os.Open(entry.FilePath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", entry.FilePath, err)
	}
	defer f.Close()

	if err := api.SaveDocument(ctx, token, filepath.Base(entry.FilePath), f, data); err != nil {
		return fmt.Errorf("uploading %s: %w", filepath.Base(entry.FilePath), err)
	}
	return nil
}
