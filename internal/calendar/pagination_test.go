package calendar

import (
	"math"
	"testing"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 2, 2)
	if len(p.Items) != 2 || p.Items[0] != 3 || p.Items[1] != 4 {
		t.Fatalf("unexpected items: %v", p.Items)
	}
	if !p.HasNext || !p.HasPrev || p.Total != 5 {
		t.Fatalf("unexpected metadata: %+v", p)
	}

	last := Paginate(items, 3, 2)
	if len(last.Items) != 1 || last.HasNext {
		t.Fatalf("unexpected last page: %+v", last)
	}

	beyond := Paginate(items, 10, 2)
	if beyond.Items == nil || len(beyond.Items) != 0 {
		t.Fatalf("expected empty non-nil page, got %+v", beyond)
	}
}

func TestPaginate_Defaults(t *testing.T) {
	p := Paginate([]string{"a"}, 0, 0)
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if _, size := NormalizePage(1, 1000); size != MaxPageSize {
		t.Fatalf("page size not capped: %d", size)
	}
	if off := Offset(3, 10); off != 20 {
		t.Fatalf("Offset(3,10) = %d, want 20", off)
	}
}

func TestNewPage(t *testing.T) {
	p := NewPage([]int{7, 8}, 5, 1, 2)
	if !p.HasNext || p.HasPrev || p.Total != 5 {
		t.Fatalf("unexpected page: %+v", p)
	}
	end := NewPage([]int{9}, 5, 3, 2)
	if end.HasNext {
		t.Fatalf("last page should not have next: %+v", end)
	}
}

func TestPaginate_HugePage(t *testing.T) {
	items := []int{1, 2, 3}
	cases := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"max int", math.MaxInt, 20},
		{"max int with max size", math.MaxInt, MaxPageSize},
		{"max int with oversized size", math.MaxInt, math.MaxInt},
		{"http overflow", 922337203685477580, 0},
		{"min int", math.MinInt, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, size := NormalizePage(tc.page, tc.pageSize)
			if page < 1 || page > MaxPage || size < 1 || size > MaxPageSize {
				t.Fatalf("NormalizePage(%d, %d) = %d, %d", tc.page, tc.pageSize, page, size)
			}

			off := Offset(tc.page, tc.pageSize)
			if off < 0 || off > math.MaxInt32 {
				t.Fatalf("Offset(%d, %d) = %d", tc.page, tc.pageSize, off)
			}

			p := Paginate(items, tc.page, tc.pageSize)
			if tc.page > 0 && (len(p.Items) != 0 || p.HasNext) {
				t.Fatalf("expected an empty last page, got %+v", p)
			}
			if p.Total != 3 {
				t.Fatalf("total = %d, want 3", p.Total)
			}

			np := NewPage([]int{}, 3, tc.page, tc.pageSize)
			if tc.page > 0 && np.HasNext {
				t.Fatalf("NewPage past the end has next: %+v", np)
			}
		})
	}
}
