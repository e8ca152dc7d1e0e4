package series

// UndatedOrder says how to read the raw order of a payload in which no date resolves.
type UndatedOrder uint8

const (
	// OldestFirst treats the last raw element as the most recent.
	OldestFirst UndatedOrder = iota
	// NewestFirst treats the first raw element as the most recent.
	NewestFirst
)

func (o UndatedOrder) String() string {
	if o == NewestFirst {
		return "newest_first"
	}
	return "oldest_first"
}

func ParseUndatedOrder(s string) (UndatedOrder, bool) {
	switch s {
	case "", "oldest_first":
		return OldestFirst, true
	case "newest_first":
		return NewestFirst, true
	default:
		return OldestFirst, false
	}
}

type NormalizerOption func(*Normalizer)

func WithUndatedOrder(order UndatedOrder) NormalizerOption {
	return func(n *Normalizer) {
		n.undatedOrder = order
	}
}

// WithAliases overrides the alias lists that are non-empty in aliases.
func WithAliases(aliases Aliases) NormalizerOption {
	return func(n *Normalizer) {
		n.aliases = n.aliases.merge(aliases)
	}
}

type WindowOption func(*windowConfig)

type windowConfig struct {
	horizon            int
	tradingDaysPerYear int
}

func WithHorizon(days int) WindowOption {
	return func(c *windowConfig) {
		if days > 0 {
			c.horizon = days
		}
	}
}

func WithTradingDaysPerYear(days int) WindowOption {
	return func(c *windowConfig) {
		if days > 0 {
			c.tradingDaysPerYear = days
		}
	}
}
