package pagination

import "testing"

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		total  int
		want   Meta
	}{
		{
			name:   "middle page of 25 venues",
			params: Params{Page: 2, Limit: 10},
			total:  25,
			want:   Meta{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNextPage: true, HasPreviousPage: true},
		},
		{
			name:   "last page",
			params: Params{Page: 3, Limit: 10},
			total:  25,
			want:   Meta{Page: 3, Limit: 10, Total: 25, TotalPages: 3, HasNextPage: false, HasPreviousPage: true},
		},
		{
			name:   "empty result",
			params: Params{Page: 1, Limit: 10},
			total:  0,
			want:   Meta{Page: 1, Limit: 10, Total: 0, TotalPages: 0},
		},
		{
			name:   "exact multiple",
			params: Params{Page: 1, Limit: 5},
			total:  10,
			want:   Meta{Page: 1, Limit: 5, Total: 10, TotalPages: 2, HasNextPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMeta(tt.params, tt.total)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := (Params{Page: 1, Limit: 100}).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
}
