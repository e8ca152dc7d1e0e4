package common

import "github.com/jubinaghara/mutual-fund-analysis/pkg/utility/fixed"

type Tier uint8

const (
	TierPoor Tier = iota
	TierAverage
	TierGood
	TierExcellent
)

const TierCount = 4

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	case TierAverage:
		return "average"
	default:
		return "poor"
	}
}

func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excellent"
	case TierGood:
		return "Good"
	case TierAverage:
		return "Average"
	default:
		return "Poor"
	}
}

type Rating struct {
	Tier  Tier        `json:"tier"`
	Label string      `json:"label"`
	Score fixed.Point `json:"score"`
}
