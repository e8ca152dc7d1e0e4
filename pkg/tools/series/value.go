package series

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/utility/fixed"
)

var (
	ErrValueMissing     = errors.New("value missing")
	ErrValueUnparseable = errors.New("value unparseable")
	ErrValueNotPositive = errors.New("value not positive")
)

// parseValue accepts JSON numbers, numeric strings and decimal points.
func parseValue(v any) (float64, error) {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0, ErrValueMissing
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		p, err := fixed.Parse(t.String())
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrValueUnparseable, t)
		}
		f, _ = p.Float64()
	case string:
		p, err := fixed.Parse(t)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrValueUnparseable, t)
		}
		f, _ = p.Float64()
	case fixed.Point:
		f, _ = t.Float64()
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrValueUnparseable, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrValueUnparseable, f)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrValueNotPositive, f)
	}
	return f, nil
}
