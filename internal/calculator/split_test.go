package calculator

import (
	"math"
	"testing"
)

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		name      string
		cost      float64
		assignees []string
		want      float64
		wantOK    bool
	}{
		{
			name:      "two-person even split",
			cost:      40.0,
			assignees: []string{"alice@x.com", "bob@x.com"},
			want:      20.0,
			wantOK:    true,
		},
		{
			name:      "three-person split rounds to 2 decimals",
			cost:      10.0,
			assignees: []string{"Alice", "Bob", "Charlie"},
			want:      3.33,
			wantOK:    true,
		},
		{
			name:      "rounding goes up at the half cent",
			cost:      0.05,
			assignees: []string{"Alice", "Bob"},
			want:      0.03,
			wantOK:    true,
		},
		{
			name:      "single assignee gets the full cost",
			cost:      19.99,
			assignees: []string{"Alice"},
			want:      19.99,
			wantOK:    true,
		},
		{
			name:      "zero cost splits to zero",
			cost:      0,
			assignees: []string{"Alice", "Bob"},
			want:      0,
			wantOK:    true,
		},
		{
			name:      "empty assignee list is not applicable",
			cost:      42.0,
			assignees: nil,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SplitAmount(tt.cost, tt.assignees)
			if ok != tt.wantOK {
				t.Fatalf("SplitAmount() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SplitAmount() = %v, want %v", got, tt.want)
			}
		})
	}
}
