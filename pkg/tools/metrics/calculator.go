package metrics

import (
	gomath "math"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/series"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/utility/fixed"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/utility/math"
)

const (
	ratioScale = 2
	aumScale   = 0
	navScale   = 4
)

// Result holds unrounded figures. Percent-valued fields are already multiplied by 100.
type Result struct {
	CAGR        float64
	CAGR3Y      float64
	StdDev      float64
	MaxDrawdown float64
	Sharpe      float64
	Sortino     float64
	Treynor     float64
	Alpha       float64
	Beta        float64
	Period      string
}

// Calculator derives return and risk statistics from an analysis window.
// Beta is the ratio of the fund's volatility to an assumed market volatility, clamped,
// and alpha is measured against a fixed market return. Neither is a regression against
// index data.
type Calculator struct {
	riskFreeRate       float64
	marketReturn       float64
	marketVolatility   float64
	minBeta            float64
	maxBeta            float64
	tradingDaysPerYear int
	horizon            int
}

func NewCalculator(options ...Option) *Calculator {
	c := defaults()
	for _, option := range options {
		option(&c)
	}
	return &c
}

func (c *Calculator) WindowOptions() []series.WindowOption {
	return []series.WindowOption{
		series.WithHorizon(c.horizon),
		series.WithTradingDaysPerYear(c.tradingDaysPerYear),
	}
}

// Degraded is the result for a window with fewer than two observations.
func Degraded() Result {
	return Result{Beta: 1, Period: common.PeriodNotAvailable}
}

// Calculate computes the statistics over window. full is the whole series and only
// feeds the three-year CAGR.
func (c *Calculator) Calculate(window common.Window, full common.Series) Result {
	if window.Empty() {
		return Degraded()
	}

	values := window.Observations.Values()
	start, end := values[0], values[len(values)-1]

	var cagr, cagr3y float64
	if start > 0 && window.Years > 0 {
		cagr = (gomath.Pow(end/start, 1/window.Years) - 1) * 100
		cagr3y = cagr
		if len(full) > c.horizon {
			years := float64(c.horizon) / float64(c.tradingDaysPerYear)
			if base := full[len(full)-c.horizon-1].Value; base > 0 {
				cagr3y = (gomath.Pow(end/base, 1/years) - 1) * 100
			}
		}
	}

	returns := math.Returns(values)
	if len(returns) == 0 {
		return Result{
			CAGR:   cagr,
			CAGR3Y: cagr3y,
			Beta:   1,
			Period: window.Label,
		}
	}

	annualizer := gomath.Sqrt(float64(c.tradingDaysPerYear))
	stdDev := math.StandardDeviation(returns) * annualizer * 100
	downside := math.DownsideDeviation(returns) * annualizer * 100
	annualReturn := math.Mean(returns) * float64(c.tradingDaysPerYear) * 100
	excess := annualReturn - c.riskFreeRate

	var sharpe, sortino float64
	if stdDev > 0 {
		sharpe = excess / stdDev
	}
	if downside > 0 {
		sortino = excess / downside
	}

	beta := 1.0
	if stdDev > 0 && c.marketVolatility > 0 {
		beta = math.Clamp(stdDev/c.marketVolatility, c.minBeta, c.maxBeta)
	}

	alpha := annualReturn - (c.riskFreeRate + beta*(c.marketReturn-c.riskFreeRate))

	var treynor float64
	if beta != 0 {
		treynor = excess / beta
	}

	return Result{
		CAGR:        cagr,
		CAGR3Y:      cagr3y,
		StdDev:      math.Finite(stdDev),
		MaxDrawdown: math.Finite(math.MaxDrawdown(values) * 100),
		Sharpe:      math.Finite(sharpe),
		Sortino:     math.Finite(sortino),
		Treynor:     math.Finite(treynor),
		Alpha:       math.Finite(alpha),
		Beta:        beta,
		Period:      window.Label,
	}
}

// Record rounds r into an immutable MetricsRecord.
func Record(code, name string, latestValue, aum float64, r Result) common.MetricsRecord {
	return common.MetricsRecord{
		Code:        code,
		Name:        name,
		LatestValue: fixed.Round(latestValue, navScale),
		CAGR:        fixed.Round(r.CAGR, ratioScale),
		CAGR3Y:      fixed.Round(r.CAGR3Y, ratioScale),
		StdDev:      fixed.Round(r.StdDev, ratioScale),
		MaxDrawdown: fixed.Round(r.MaxDrawdown, ratioScale),
		Sharpe:      fixed.Round(r.Sharpe, ratioScale),
		Sortino:     fixed.Round(r.Sortino, ratioScale),
		Treynor:     fixed.Round(r.Treynor, ratioScale),
		Alpha:       fixed.Round(r.Alpha, ratioScale),
		Beta:        fixed.Round(r.Beta, ratioScale),
		AUM:         fixed.Round(aum, aumScale),
		Period:      r.Period,
	}
}
