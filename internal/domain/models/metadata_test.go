package models

import (
	"testing"

	"github.com/Temutjin2k/ubar/pkg/validator"
)

func TestFilters(t *testing.T) {
	f, err := NewFilters(2, 2, "", []string{"price", "-price", "title"})
	if err != nil {
		t.Fatalf("new filters: %v", err)
	}
	if f.Sort != "price" {
		t.Fatalf("default sort = %q", f.Sort)
	}

	v := validator.New()
	f.Validate(v)
	if !v.Valid() {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}

	start, end := f.Window(3)
	if start != 2 || end != 3 {
		t.Fatalf("window = [%d,%d), want [2,3)", start, end)
	}
	start, end = f.Window(1)
	if start != 1 || end != 1 {
		t.Fatalf("window past end = [%d,%d), want [1,1)", start, end)
	}

	f.Sort = "-price"
	if f.SortKey() != "price" || !f.Descending() {
		t.Fatalf("sort key %q desc %v", f.SortKey(), f.Descending())
	}

	f.Sort = "bogus"
	v = validator.New()
	f.Validate(v)
	if _, ok := v.Errors["sort"]; !ok {
		t.Fatal("expected sort error")
	}

	if _, err := NewFilters(1, 1, "", nil); err == nil {
		t.Fatal("expected error for empty safelist")
	}
}

func TestCalculateMetadata(t *testing.T) {
	m := CalculateMetadata(12, 1, 5)
	if m.LastPage != 3 || m.FirstPage != 1 {
		t.Fatalf("metadata = %+v", m)
	}
	if m := CalculateMetadata(0, 1, 5); m.LastPage != 0 || m.FirstPage != 0 {
		t.Fatalf("empty metadata = %+v", m)
	}
}
