package ranking

import (
	"slices"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/rating"
)

// Rank orders records by three-year CAGR, highest first. Equal keys keep their input
// order and the input slice is left untouched.
func Rank(records []common.MetricsRecord) []common.MetricsRecord {
	ranked := slices.Clone(records)
	slices.SortStableFunc(ranked, func(a, b common.MetricsRecord) int {
		return b.CAGR3Y.Cmp(a.CAGR3Y)
	})
	return ranked
}

// WithRatings ranks records and attaches a 1-based position and rating to each.
func WithRatings(records []common.MetricsRecord) []common.Ranked {
	ranked := Rank(records)
	entries := make([]common.Ranked, len(ranked))
	for i, r := range ranked {
		entries[i] = common.Ranked{
			Rank:   i + 1,
			Record: r,
			Rating: rating.Rate(r),
		}
	}
	return entries
}
