// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDocumentRecordDecodeTagShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"object tags", `{"tags":[{"tag_name":"invoice"},{"tag_name":"tax"}]}`, []string{"invoice", "tax"}},
		{"string tags", `{"tags":["invoice","tax"]}`, []string{"invoice", "tax"}},
		{"mixed tags", `{"tags":["invoice",{"tag_name":"tax"}]}`, []string{"invoice", "tax"}},
		{"unrecognized shape dropped", `{"tags":[42,"ok"]}`, []string{"ok"}},
		{"null tags", `{"tags":null}`, nil},
		{"absent tags", `{}`, nil},
		{"blank name dropped", `{"tags":["  ","ok"]}`, []string{"ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc DocumentRecord
			if err := json.Unmarshal([]byte(tt.raw), &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := doc.TagNames(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TagNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlexStringDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want FlexString
	}{
		{"string id", `{"id":"doc-42"}`, "doc-42"},
		{"numeric id", `{"id":42}`, "42"},
		{"float id keeps form", `{"id":4.5}`, "4.5"},
		{"null id", `{"id":null}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc DocumentRecord
			if err := json.Unmarshal([]byte(tt.raw), &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if doc.ID != tt.want {
				t.Errorf("ID = %q, want %q", doc.ID, tt.want)
			}
		})
	}
}

func TestTagRefMarshalObjectForm(t *testing.T) {
	data, err := json.Marshal(TagRef{Name: "invoice"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"tag_name":"invoice"}` {
		t.Errorf("marshaled as %s", data)
	}
}
