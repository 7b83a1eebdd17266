package response

import "testing"

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		pageSize   int
		total      int64
		totalPages int64
		hasNext    bool
		hasPrev    bool
	}{
		{"first of three", 1, 2, 5, 3, true, false},
		{"middle page", 2, 2, 5, 3, true, true},
		{"last page", 3, 2, 5, 3, false, true},
		{"single page", 1, 2, 2, 1, false, false},
		{"empty", 1, 2, 0, 0, false, false},
		{"page clamped to one", 0, 2, 5, 3, true, false},
	}
	for _, tc := range cases {
		meta := NewPageMeta(tc.page, tc.pageSize, tc.total)
		if meta.TotalPages != tc.totalPages {
			t.Fatalf("%s: expected %d total pages, got %d", tc.name, tc.totalPages, meta.TotalPages)
		}
		if meta.HasNextPage != tc.hasNext {
			t.Fatalf("%s: expected has_next_page=%v", tc.name, tc.hasNext)
		}
		if meta.HasPrevPage != tc.hasPrev {
			t.Fatalf("%s: expected has_prev_page=%v", tc.name, tc.hasPrev)
		}
	}
}

func TestNewPageMetaZeroPageSize(t *testing.T) {
	meta := NewPageMeta(1, 0, 10)
	if meta.TotalPages != 0 || meta.HasNextPage {
		t.Fatalf("zero page size must not divide, got %+v", meta)
	}
}
