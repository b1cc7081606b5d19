// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"encoding/json"
	"testing"
)

func TestExtractResultList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"top-level array", `[{"id":1}]`, `[{"id":1}]`},
		{"array under data", `{"data":[{"id":1}]}`, `[{"id":1}]`},
		{"array under results", `{"results":[{"id":1}]}`, `[{"id":1}]`},
		{"array under documentList", `{"documentList":[{"id":1}]}`, `[{"id":1}]`},
		{"data wins over results", `{"results":[2],"data":[1]}`, `[1]`},
		{"non-array data skipped", `{"data":"oops","results":[1]}`, `[1]`},
		{"no list anywhere", `{"status":"ok"}`, `[]`},
		{"scalar payload", `42`, `[]`},
		{"empty payload", ``, `[]`},
		{"malformed json", `{`, `[]`},
		{"leading whitespace array", "\n  [1]", "\n  [1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractResultList(json.RawMessage(tt.raw))
			if string(got) != tt.want {
				t.Errorf("ExtractResultList(%s) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"top-level token", `{"token":"abc"}`, "abc"},
		{"token under data", `{"data":{"token":"abc"}}`, "abc"},
		{"token under result", `{"result":{"token":"abc"}}`, "abc"},
		{"top-level wins", `{"token":"top","data":{"token":"nested"}}`, "top"},
		{"data wins over result", `{"result":{"token":"r"},"data":{"token":"d"}}`, "d"},
		{"non-string token", `{"token":42}`, ""},
		{"no token", `{"status":"ok"}`, ""},
		{"malformed json", `{`, ""},
		{"empty token string", `{"token":""}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractToken(json.RawMessage(tt.raw)); got != tt.want {
				t.Errorf("ExtractToken(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
