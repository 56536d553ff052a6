package db

import (
	"strings"
	"testing"
)

func TestIndexBuilder_Build(t *testing.T) {
	def, err := NewIndex("propfind:listing:idx").
		Prefix("propfind:listing:").
		Tag("status").
		Tag("type").
		NumericSortable("price").
		NumericSortable("created_at").
		Text("title").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(def.Fields) != 5 {
		t.Errorf("fields = %d, want 5", len(def.Fields))
	}

	s := def.String()
	for _, want := range []string{"FT.CREATE", "ON HASH", "PREFIX propfind:listing:", "status TAG", "price NUMERIC SORTABLE", "title TEXT"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestIndexBuilder_Validation(t *testing.T) {
	if _, err := NewIndex("").Tag("status").Build(); err == nil {
		t.Error("empty name accepted")
	}
	if _, err := NewIndex("idx").Build(); err == nil {
		t.Error("no fields accepted")
	}
	if _, err := NewIndex("idx").Tag("a").Tag("a").Build(); err == nil {
		t.Error("duplicate field accepted")
	}
	if _, err := NewIndex("bad name").Tag("a").Build(); err == nil {
		t.Error("invalid identifier accepted")
	}
}
