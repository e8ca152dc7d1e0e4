package mfapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrProviderFailed = errors.New("provider reported failure")
)

// Decode maps a scheme payload of the form {"meta": {...}, "data": [...], "status": "..."}
// onto an Instrument. Scalar data items are wrapped as {"value": item}. A bare array is
// accepted as the data list.
func Decode(code string, payload []byte) (common.Instrument, error) {
	if !gjson.ValidBytes(payload) {
		return common.Instrument{}, fmt.Errorf("scheme %s: %w", code, ErrInvalidPayload)
	}
	root := gjson.ParseBytes(payload)

	data := root
	if root.IsObject() {
		status := strings.ToUpper(root.Get("status").String())
		if status == "FAILED" || status == "ERROR" {
			message := root.Get("message").String()
			if message == "" {
				message = "failed to fetch fund data"
			}
			return common.Instrument{}, fmt.Errorf("scheme %s: %w: %s", code, ErrProviderFailed, message)
		}
		data = root.Get("data")
	}

	instrument := common.Instrument{Code: code}

	if meta := root.Get("meta"); meta.IsObject() {
		if summary, ok := meta.Value().(map[string]any); ok {
			instrument.Summary = summary
		}
		if code == "" {
			instrument.Code = meta.Get("scheme_code").String()
		}
	}

	if data.IsArray() {
		items := data.Array()
		instrument.Observations = make([]common.RawObservation, 0, len(items))
		for _, item := range items {
			if item.IsObject() {
				if record, ok := item.Value().(map[string]any); ok {
					instrument.Observations = append(instrument.Observations, record)
				}
				continue
			}
			instrument.Observations = append(instrument.Observations, common.RawObservation{"value": item.Value()})
		}
	}

	return instrument, nil
}
