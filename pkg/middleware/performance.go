package middleware

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/engine"
	"go.uber.org/zap"
)

type Performance struct {
	logger *zap.Logger

	analyzeCounter      atomic.Int64
	totalAnalyzeDurNs   atomic.Int64
	longestAnalyzeDurNs atomic.Int64
}

func NewPerformance(logger *zap.Logger) *Performance {
	return &Performance{
		logger: logger,
	}
}

func (p *Performance) WithAnalyze(handler engine.AnalyzeHandler) engine.AnalyzeHandler {
	return func(ctx context.Context, instrument common.Instrument) common.MetricsRecord {
		startTime := time.Now()
		r := handler(ctx, instrument) // Call the original handler
		elapsed := int64(time.Since(startTime))

		p.analyzeCounter.Add(1)
		p.totalAnalyzeDurNs.Add(elapsed)
		for {
			longest := p.longestAnalyzeDurNs.Load()
			if elapsed <= longest || p.longestAnalyzeDurNs.CompareAndSwap(longest, elapsed) {
				break
			}
		}
		return r
	}
}

func (p *Performance) Count() int64 { return p.analyzeCounter.Load() }

func (p *Performance) Total() time.Duration {
	return time.Duration(p.totalAnalyzeDurNs.Load())
}

func (p *Performance) Longest() time.Duration {
	return time.Duration(p.longestAnalyzeDurNs.Load())
}

func (p *Performance) Average() time.Duration {
	count := p.Count()
	if count == 0 {
		return 0
	}
	return p.Total() / time.Duration(count)
}

func (p *Performance) PrintStatistics() {
	if p.Count() == 0 {
		p.logger.Info("performance statistics", zap.Int64("analyses", 0))
		return
	}
	p.logger.Info("performance statistics",
		zap.Int64("analyses", p.Count()),
		zap.Duration("analyze_avg_duration", p.Average()),
		zap.Duration("analyze_max_duration", p.Longest()),
		zap.Duration("analyze_total_duration", p.Total()))
}
