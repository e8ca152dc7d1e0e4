package series

import (
	"fmt"
	"time"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
)

const (
	HorizonDays        = 756
	TradingDaysPerYear = 252

	fullHorizonYears = 2.5
	fullHorizonLabel = "3Y"

	// Daily trading series average about 1.4 calendar days per step. Wider average
	// spacing means weekly or sparser sampling.
	sparseStepDays = 5.0
)

// SelectWindow takes the trailing part of series covering at most the horizon. Years
// counts trading-day steps, except for dated series sampled more sparsely than
// trading days, where the calendar span is used.
func SelectWindow(series common.Series, options ...WindowOption) common.Window {
	cfg := windowConfig{
		horizon:            HorizonDays,
		tradingDaysPerYear: TradingDaysPerYear,
	}
	for _, option := range options {
		option(&cfg)
	}

	available := len(series) - 1
	used := min(max(available, 0), cfg.horizon)
	if used == 0 {
		return common.Window{Label: common.PeriodNotAvailable}
	}

	start := max(0, len(series)-used-1)
	observations := series[start:]

	years := float64(used) / float64(cfg.tradingDaysPerYear)
	first, last := observations[0], observations[len(observations)-1]
	if first.Dated && last.Dated && sparse(first.Date, last.Date, used) {
		years = calendarYears(first.Date, last.Date)
	}

	return common.Window{
		Observations: observations,
		Span:         used,
		Years:        years,
		Label:        periodLabel(years),
	}
}

// sparse reports whether steps between from and to average more than sparseStepDays.
func sparse(from, to time.Time, steps int) bool {
	if !to.After(from) || steps == 0 {
		return false
	}
	days := to.Sub(from).Hours() / 24
	return days/float64(steps) > sparseStepDays
}

// calendarYears counts whole calendar years between from and to and adds the
// remainder as a fraction of 365 days.
func calendarYears(from, to time.Time) float64 {
	whole := 0
	for !from.AddDate(whole+1, 0, 0).After(to) {
		whole++
	}
	rest := to.Sub(from.AddDate(whole, 0, 0))
	return float64(whole) + rest.Hours()/24/365
}

func periodLabel(years float64) string {
	if years >= fullHorizonYears {
		return fullHorizonLabel
	}
	return fmt.Sprintf("%.1fY", years)
}
