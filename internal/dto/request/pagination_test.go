package request

import "testing"

func TestPaginatedRequestOffset(t *testing.T) {
	cases := []struct {
		page, perPage int
		offset        int
	}{
		{1, 10, 0},
		{3, 10, 20},
		{0, 10, 0},
	}

	for _, tc := range cases {
		req := PaginatedRequest{Page: tc.page, PerPage: tc.perPage}
		if got := req.Offset(); got != tc.offset {
			t.Errorf("Offset(page=%d, per_page=%d) = %d, want %d", tc.page, tc.perPage, got, tc.offset)
		}
	}
}

func TestPaginatedRequestLimitClamps(t *testing.T) {
	if got := (PaginatedRequest{PerPage: 0}).Limit(); got != 10 {
		t.Errorf("Limit() = %d, want default 10", got)
	}
	if got := (PaginatedRequest{PerPage: 500}).Limit(); got != 100 {
		t.Errorf("Limit() = %d, want clamp 100", got)
	}
	if got := (PaginatedRequest{PerPage: 25}).Limit(); got != 25 {
		t.Errorf("Limit() = %d, want 25", got)
	}
}
