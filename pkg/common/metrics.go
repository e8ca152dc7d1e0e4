package common

import "github.com/jubinaghara/mutual-fund-analysis/pkg/utility/fixed"

const PeriodNotAvailable = "N/A"

// MetricsRecord is the computed result for one instrument. Percent and ratio fields
// carry two decimal places, AUM carries none.
type MetricsRecord struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	LatestValue fixed.Point `json:"latest_nav"`
	CAGR        fixed.Point `json:"cagr"`
	CAGR3Y      fixed.Point `json:"cagr_3y"`
	StdDev      fixed.Point `json:"std_dev"`
	MaxDrawdown fixed.Point `json:"max_drawdown"`
	Sharpe      fixed.Point `json:"sharpe"`
	Sortino     fixed.Point `json:"sortino"`
	Treynor     fixed.Point `json:"treynor"`
	Alpha       fixed.Point `json:"alpha"`
	Beta        fixed.Point `json:"beta"`
	AUM         fixed.Point `json:"aum"`
	Period      string      `json:"period"`
}

func (r MetricsRecord) Degraded() bool {
	return r.Period == PeriodNotAvailable
}
