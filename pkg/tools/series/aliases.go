package series

import (
	"fmt"
	"strings"
)

// Aliases lists, per field, the provider keys tried in priority order.
type Aliases struct {
	Value  []string `yaml:"value"`
	Date   []string `yaml:"date"`
	Latest []string `yaml:"latest"`
	AUM    []string `yaml:"aum"`
	Name   []string `yaml:"name"`
}

func DefaultAliases() Aliases {
	return Aliases{
		Value:  []string{"nav", "NAV", "value"},
		Date:   []string{"date", "Date", "DATE"},
		Latest: []string{"latest_nav", "latestNAV", "nav"},
		AUM:    []string{"aum", "AUM", "fund_size", "fundSize", "assets", "total_assets"},
		Name:   []string{"scheme_name", "schemeName", "name"},
	}
}

// merge keeps the defaults for every field the override leaves empty.
func (a Aliases) merge(o Aliases) Aliases {
	pick := func(override, def []string) []string {
		if len(override) > 0 {
			return override
		}
		return def
	}
	return Aliases{
		Value:  pick(o.Value, a.Value),
		Date:   pick(o.Date, a.Date),
		Latest: pick(o.Latest, a.Latest),
		AUM:    pick(o.AUM, a.AUM),
		Name:   pick(o.Name, a.Name),
	}
}

// lookup returns the first alias present in record with a non-empty value.
func lookup(record map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		v, ok := record[key]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func lookupString(record map[string]any, keys []string) string {
	v, ok := lookup(record, keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	default:
		return fmt.Sprint(s)
	}
}
