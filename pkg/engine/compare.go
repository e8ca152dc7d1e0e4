package engine

import (
	"context"
	"fmt"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/ranking"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/utility"
	"golang.org/x/sync/errgroup"
)

// MaxInstruments is the comparison size the callers enforce.
const MaxInstruments = 5

// Compare analyses instruments in parallel and ranks the results. Instruments without
// any raw observations are left out and listed in Excluded. The ranking depends only
// on the records and their input order, never on completion order.
func Compare(ctx context.Context, handler AnalyzeHandler, instruments []common.Instrument) (common.Comparison, error) {
	comparison := common.Comparison{ID: utility.NewComparisonID()}

	usable := make([]common.Instrument, 0, len(instruments))
	for _, instrument := range instruments {
		if len(instrument.Observations) == 0 {
			comparison.Excluded = append(comparison.Excluded, instrument.Code)
			continue
		}
		usable = append(usable, instrument)
	}

	records := make([]common.MetricsRecord, len(usable))
	g, gCtx := errgroup.WithContext(ctx)
	for i, instrument := range usable {
		i, instrument := i, instrument
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			records[i] = handler(gCtx, instrument)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return common.Comparison{}, fmt.Errorf("comparison %s interrupted: %w", comparison.ID, err)
	}

	comparison.Entries = ranking.WithRatings(records)
	return comparison, nil
}
