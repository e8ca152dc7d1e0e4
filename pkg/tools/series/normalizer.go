package series

import (
	"slices"
	"sort"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"go.uber.org/zap"
)

const UnknownName = "Unknown"

type Normalizer struct {
	logger       *zap.Logger
	aliases      Aliases
	undatedOrder UndatedOrder
}

func NewNormalizer(logger *zap.Logger, options ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		logger:       logger,
		aliases:      DefaultAliases(),
		undatedOrder: OldestFirst,
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *Normalizer) Aliases() Aliases {
	return n.aliases
}

// Normalize parses raw provider records into an ascending Series. Records without a
// positive value are dropped; records with an unresolvable date are kept undated.
func (n *Normalizer) Normalize(raw []common.RawObservation) common.Series {
	series := make(common.Series, 0, len(raw))
	anyDated := false

	for idx, record := range raw {
		v, ok := lookup(record, n.aliases.Value)
		if !ok {
			n.logger.Debug("skipping observation", zap.Int("index", idx), zap.Error(ErrValueMissing))
			continue
		}
		value, err := parseValue(v)
		if err != nil {
			n.logger.Debug("skipping observation", zap.Int("index", idx), zap.Error(err))
			continue
		}

		obs := common.Observation{Value: value}
		if ds := lookupString(record, n.aliases.Date); ds != "" {
			obs.Date, obs.Dated = parseDate(ds)
			if !obs.Dated {
				n.logger.Debug("unresolved observation date", zap.Int("index", idx), zap.String("date", ds))
			}
		}
		anyDated = anyDated || obs.Dated
		series = append(series, obs)
	}

	if anyDated {
		// Most recent first, undated entries sort as the zero time.
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date.After(series[j].Date)
		})
		slices.Reverse(series)
	} else if n.undatedOrder == NewestFirst {
		slices.Reverse(series)
	}

	if dropped := len(raw) - len(series); dropped > 0 {
		n.logger.Debug("normalized series",
			zap.Int("raw", len(raw)),
			zap.Int("kept", len(series)),
			zap.Int("dropped", dropped),
			zap.Bool("dated", anyDated))
	}

	return series
}

// LatestValue is the most recent observation value, falling back to the summary and
// finally to zero, which means unavailable.
func (n *Normalizer) LatestValue(series common.Series, summary common.Summary) float64 {
	if last, ok := series.Last(); ok {
		return last.Value
	}
	if v, ok := lookup(summary, n.aliases.Latest); ok {
		if value, err := parseValue(v); err == nil {
			return value
		}
	}
	return 0
}

// AUM is passed through from the summary and is never estimated from prices.
func (n *Normalizer) AUM(summary common.Summary) float64 {
	v, ok := lookup(summary, n.aliases.AUM)
	if !ok {
		return 0
	}
	aum, err := parseValue(v)
	if err != nil {
		return 0
	}
	return aum
}

func (n *Normalizer) Name(instrument common.Instrument) string {
	if instrument.Name != "" {
		return instrument.Name
	}
	if name := lookupString(instrument.Summary, n.aliases.Name); name != "" {
		return name
	}
	return UnknownName
}
