package catalog

import (
	"context"
	"testing"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{CatalogDir: t.TempDir(), MaxResults: 20})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id, name, majorHead, remarks string, tags ...string) types.DocumentRecord {
	refs := make([]types.TagRef, len(tags))
	for i, tag := range tags {
		refs[i] = types.TagRef{Name: tag}
	}
	return types.DocumentRecord{
		ID:        types.FlexString(id),
		Name:      name,
		MajorHead: majorHead,
		Remarks:   remarks,
		Tags:      refs,
	}
}

func TestRecordAndCount(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, record("1", "Invoice March", "Professional", "Q1 billing", "invoice"),
		"https://x/a.pdf", "downloads/a.pdf", "buffered"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, record("2", "Passport Scan", "Personal", "", "identity"),
		"https://x/b.png", "downloads/b.png", "direct"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

// Re-fetching the same document updates its row instead of duplicating it.
func TestRecordUpsert(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	doc := record("1", "Invoice", "Professional", "")
	if err := store.Record(ctx, doc, "https://x/a.pdf", "downloads/a.pdf", "buffered"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, doc, "https://x/a.pdf", "downloads/a-v2.pdf", "direct"); err != nil {
		t.Fatalf("Record again: %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1 after upsert", n)
	}

	entries, err := store.Query(ctx, "", "")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 1 || entries[0].LocalPath != "downloads/a-v2.pdf" || entries[0].Strategy != "direct" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRecordNoIDUsesPath(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	doc := record("", "Unnamed", "Personal", "")
	if err := store.Record(ctx, doc, "https://x/a.pdf", "downloads/a.pdf", "buffered"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, doc, "https://x/a.pdf", "downloads/a.pdf", "buffered"); err != nil {
		t.Fatalf("Record again: %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1 keyed by path", n)
	}
}

func TestQueryFullText(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	docs := []struct {
		doc  types.DocumentRecord
		path string
	}{
		{record("1", "Invoice March", "Professional", "quarterly billing", "invoice"), "downloads/a.pdf"},
		{record("2", "Passport Scan", "Personal", "travel identity", "identity"), "downloads/b.png"},
		{record("3", "Invoice April", "Professional", "quarterly billing", "invoice"), "downloads/c.pdf"},
	}
	for _, d := range docs {
		if err := store.Record(ctx, d.doc, "https://x/f", d.path, "buffered"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	tests := []struct {
		name     string
		text     string
		category string
		wantIDs  []string
	}{
		{"match by name", "Invoice", "", []string{"1", "3"}},
		{"match by remarks", "quarterly", "", []string{"1", "3"}},
		{"match by tag", "identity", "", []string{"2"}},
		{"text plus category", "quarterly", "Professional", []string{"1", "3"}},
		{"category only", "", "Personal", []string{"2"}},
		{"no match", "nonexistent", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.Query(ctx, tt.text, tt.category)
			if err != nil {
				t.Fatalf("Query: %v", err)
			}
			got := map[string]bool{}
			for _, e := range entries {
				got[e.DocID] = true
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d entries %v, want %v", len(got), got, tt.wantIDs)
			}
			for _, id := range tt.wantIDs {
				if !got[id] {
					t.Errorf("missing id %s in %v", id, got)
				}
			}
		})
	}
}

// Quoted terms must not be interpreted as FTS5 operators.
func TestQueryOperatorInjection(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, record("1", "Notes", "Personal", ""), "https://x/n", "downloads/n.pdf", "buffered"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	for _, text := range []string{"NOT", "name:x", `a"b`, "(unbalanced"} {
		if _, err := store.Query(ctx, text, ""); err != nil {
			t.Errorf("Query(%q) = %v, want no error", text, err)
		}
	}
}

func TestQueryTagsRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, record("1", "Doc", "Personal", "", "tax", "2023"),
		"https://x/d", "downloads/d.pdf", "buffered"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.Query(ctx, "", "")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if len(entries[0].Tags) != 2 || entries[0].Tags[0] != "tax" || entries[0].Tags[1] != "2023" {
		t.Errorf("tags = %v, want [tax 2023]", entries[0].Tags)
	}
}
