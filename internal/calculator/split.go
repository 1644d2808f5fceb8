// Package calculator implements the cost-split computation.
package calculator

import "math"

// SplitAmount computes the per-person share of a purchase: cost divided
// evenly by the number of assignees, rounded to 2 decimal places for
// display. The second return value is false when the assignee list is empty,
// in which case the split is undefined ("not applicable") rather than a
// division by zero.
//
// The stored cost itself is never rounded; rounding applies only to the
// returned share.
func SplitAmount(cost float64, assignees []string) (float64, bool) {
	if len(assignees) == 0 {
		return 0, false
	}
	share := cost / float64(len(assignees))
	return math.Round(share*100) / 100, true
}
