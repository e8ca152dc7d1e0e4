package synthetic

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
)

const (
	dateLayout = "02-01-2006"
	navDigits  = 4
)

// NavGenerator produces a geometric Brownian motion NAV history on business days,
// shaped like a provider payload: newest first, day-month-year dates, string values.
type NavGenerator struct {
	code string
	name string
	rng  *rand.Rand

	startTime time.Time
	startNav  float64
	mu        float64
	sigma     float64
	deltaT    float64
	steps     int

	aum float64
}

// NewNavGenerator takes annual drift and volatility as fractions (0.12 for 12%).
func NewNavGenerator(code string, rng *rand.Rand, startTime time.Time, startNav, mu, sigma float64, steps int) *NavGenerator {
	return &NavGenerator{
		code:      code,
		name:      "Synthetic " + code,
		rng:       rng,
		startTime: startTime,
		startNav:  startNav,
		mu:        mu,
		sigma:     sigma,
		deltaT:    1.0 / 252,
		steps:     steps,
	}
}

func (g *NavGenerator) SetName(name string) {
	g.name = name
}

func (g *NavGenerator) SetAUM(aum float64) {
	g.aum = aum
}

func (g *NavGenerator) Generate() common.Instrument {
	drift := (g.mu - 0.5*g.sigma*g.sigma) * g.deltaT
	shock := g.sigma * math.Sqrt(g.deltaT)

	raw := make([]common.RawObservation, g.steps)
	day := g.startTime
	nav := g.startNav
	for i := 0; i < g.steps; i++ {
		for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			day = day.AddDate(0, 0, 1)
		}
		raw[g.steps-1-i] = common.RawObservation{
			"date": day.Format(dateLayout),
			"nav":  strconv.FormatFloat(nav, 'f', navDigits, 64),
		}
		nav *= math.Exp(drift + shock*g.rng.NormFloat64())
		day = day.AddDate(0, 0, 1)
	}

	summary := common.Summary{"scheme_name": g.name, "scheme_code": g.code}
	if g.aum > 0 {
		summary["aum"] = strconv.FormatFloat(g.aum, 'f', -1, 64)
	}

	return common.Instrument{
		Code:         g.code,
		Name:         g.name,
		Observations: raw,
		Summary:      summary,
	}
}
