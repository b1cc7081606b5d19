// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TagParam is the wire representation of one search tag. The API requires
// tag objects, not bare strings.
type TagParam struct {
	TagName string `json:"tag_name"`
}

// SearchValue wraps the free-text search term. The UI never populates it,
// but the server contract requires the field to be present.
type SearchValue struct {
	Value string `json:"value"`
}

// SearchRequest is the searchDocumentEntry request body. It is derived
// deterministically from the user's filter state: the same filters always
// produce a structurally identical request. Empty filter fields are sent
// as empty strings, not omitted; the server rejects missing fields.
type SearchRequest struct {
	MajorHead  string      `json:"major_head"`
	MinorHead  string      `json:"minor_head"`
	FromDate   string      `json:"from_date"`
	ToDate     string      `json:"to_date"`
	Tags       []TagParam  `json:"tags"`
	UploadedBy string      `json:"uploaded_by"`
	Start      int         `json:"start"`
	Length     int         `json:"length"`
	FilterID   string      `json:"filterId"`
	Search     SearchValue `json:"search"`
}
