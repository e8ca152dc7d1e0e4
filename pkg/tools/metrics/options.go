package metrics

import "github.com/jubinaghara/mutual-fund-analysis/pkg/tools/series"

// Rates are annual percentages.
const (
	RiskFreeRate     = 6.0
	MarketReturn     = 12.0
	MarketVolatility = 18.0
	MinBeta          = 0.3
	MaxBeta          = 2.0
)

type Option func(*Calculator)

func WithRiskFreeRate(percent float64) Option {
	return func(c *Calculator) {
		c.riskFreeRate = percent
	}
}

func WithMarketReturn(percent float64) Option {
	return func(c *Calculator) {
		c.marketReturn = percent
	}
}

func WithMarketVolatility(percent float64) Option {
	return func(c *Calculator) {
		c.marketVolatility = percent
	}
}

func WithBetaBounds(min, max float64) Option {
	return func(c *Calculator) {
		if min > max {
			panic("beta lower bound above upper bound")
		}
		c.minBeta, c.maxBeta = min, max
	}
}

func WithTradingDaysPerYear(days int) Option {
	return func(c *Calculator) {
		if days > 0 {
			c.tradingDaysPerYear = days
		}
	}
}

func WithHorizon(days int) Option {
	return func(c *Calculator) {
		if days > 0 {
			c.horizon = days
		}
	}
}

func defaults() Calculator {
	return Calculator{
		riskFreeRate:       RiskFreeRate,
		marketReturn:       MarketReturn,
		marketVolatility:   MarketVolatility,
		minBeta:            MinBeta,
		maxBeta:            MaxBeta,
		tradingDaysPerYear: series.TradingDaysPerYear,
		horizon:            series.HorizonDays,
	}
}
