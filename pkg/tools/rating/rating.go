package rating

import (
	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/utility/fixed"
)

var (
	cagrWeight     = fixed.FromInt(3, 1)
	alphaWeight    = fixed.FromInt(2, 1)
	sharpeWeight   = fixed.FromInt(15, 0)
	sortinoWeight  = fixed.FromInt(10, 0)
	drawdownWeight = fixed.FromInt(15, 2)
	stdDevWeight   = fixed.FromInt(1, 1)

	excellentThreshold = fixed.FromInt(20, 0)
	goodThreshold      = fixed.FromInt(10, 0)
	averageThreshold   = fixed.Zero
)

// Score weighs returns and risk-adjusted ratios against drawdown and volatility.
func Score(r common.MetricsRecord) fixed.Point {
	return r.CAGR3Y.Mul(cagrWeight).
		Add(r.Alpha.Mul(alphaWeight)).
		Add(r.Sharpe.Mul(sharpeWeight)).
		Add(r.Sortino.Mul(sortinoWeight)).
		Sub(r.MaxDrawdown.Mul(drawdownWeight)).
		Sub(r.StdDev.Mul(stdDevWeight))
}

func TierOf(score fixed.Point) common.Tier {
	switch {
	case score.Gte(excellentThreshold):
		return common.TierExcellent
	case score.Gte(goodThreshold):
		return common.TierGood
	case score.Gte(averageThreshold):
		return common.TierAverage
	default:
		return common.TierPoor
	}
}

func Rate(r common.MetricsRecord) common.Rating {
	score := Score(r)
	tier := TierOf(score)
	return common.Rating{
		Tier:  tier,
		Label: tier.Label(),
		Score: score,
	}
}
