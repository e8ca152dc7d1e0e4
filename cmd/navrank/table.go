package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/utility/fixed"
)

const (
	maxNameWidth = 25
	notAvailable = "N/A"
)

var (
	colorPositive = lipgloss.Color("#2E7D32")
	colorNeutral  = lipgloss.Color("#F9A825")
	colorNegative = lipgloss.Color("#C62828")
	colorBorder   = lipgloss.Color("#5C6B73")

	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	warningStyle = lipgloss.NewStyle().Foreground(colorNeutral)

	tierColors = map[common.Tier]lipgloss.Color{
		common.TierExcellent: colorPositive,
		common.TierGood:      lipgloss.Color("#1565C0"),
		common.TierAverage:   colorNeutral,
		common.TierPoor:      colorNegative,
	}
)

var headers = []string{"#", "Fund", "NAV", "CAGR 3Y", "AUM", "Beta", "Alpha", "Sharpe", "Sortino", "Treynor", "Max DD", "Std Dev", "Rating"}

const (
	colCAGR = 3
	colRate = 12
)

func renderTable(entries []common.Ranked) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row(e))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(r, c int) lipgloss.Style {
			if r == table.HeaderRow {
				return headerStyle
			}
			switch c {
			case colCAGR:
				return cellStyle.Foreground(signColor(entries[r].Record.CAGR3Y))
			case colRate:
				return cellStyle.Foreground(tierColors[entries[r].Rating.Tier])
			}
			return cellStyle
		})
	return t.String()
}

func row(e common.Ranked) []string {
	r := e.Record
	return []string{
		fmt.Sprintf("#%d", e.Rank),
		fmt.Sprintf("%s\n%s • %s", truncate(r.Name, maxNameWidth), r.Code, r.Period),
		formatNav(r.LatestValue),
		signed(r.CAGR3Y) + "%",
		formatAUM(r.AUM),
		r.Beta.String(),
		signed(r.Alpha) + "%",
		r.Sharpe.String(),
		r.Sortino.String(),
		r.Treynor.String(),
		r.MaxDrawdown.String() + "%",
		r.StdDev.String() + "%",
		e.Rating.Label,
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width]) + "..."
}

func signed(p fixed.Point) string {
	if p.IsPos() {
		return "+" + p.String()
	}
	return p.String()
}

func signColor(p fixed.Point) lipgloss.Color {
	if p.IsNeg() {
		return colorNegative
	}
	return colorPositive
}

func formatNav(p fixed.Point) string {
	if !p.IsPos() {
		return notAvailable
	}
	return "₹" + p.Rescale(2).String()
}

func formatAUM(p fixed.Point) string {
	if !p.IsPos() {
		return notAvailable
	}
	f, _ := p.Float64()
	return humanize.Comma(int64(f)) + " Cr"
}
