package engine

import (
	"context"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/metrics"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/series"
	"go.uber.org/zap"
)

// AnalyzeHandler turns one instrument into its metrics record. The context only
// carries request scoped values for middleware; analysis itself never blocks.
type AnalyzeHandler func(ctx context.Context, instrument common.Instrument) common.MetricsRecord

type Option func(*Engine)

func WithNormalizerOptions(options ...series.NormalizerOption) Option {
	return func(e *Engine) {
		e.normalizerOptions = append(e.normalizerOptions, options...)
	}
}

func WithCalculatorOptions(options ...metrics.Option) Option {
	return func(e *Engine) {
		e.calculatorOptions = append(e.calculatorOptions, options...)
	}
}

// Engine runs normalisation, window selection and metric calculation. It holds no
// state between calls and is safe for concurrent use.
type Engine struct {
	logger     *zap.Logger
	normalizer *series.Normalizer
	calculator *metrics.Calculator

	normalizerOptions []series.NormalizerOption
	calculatorOptions []metrics.Option
}

func New(logger *zap.Logger, options ...Option) *Engine {
	e := &Engine{logger: logger}
	for _, option := range options {
		option(e)
	}
	e.normalizer = series.NewNormalizer(logger.Named("normalizer"), e.normalizerOptions...)
	e.calculator = metrics.NewCalculator(e.calculatorOptions...)
	return e
}

func (e *Engine) Analyze(_ context.Context, instrument common.Instrument) common.MetricsRecord {
	s := e.normalizer.Normalize(instrument.Observations)
	window := series.SelectWindow(s, e.calculator.WindowOptions()...)
	result := e.calculator.Calculate(window, s)

	return metrics.Record(
		instrument.Code,
		e.normalizer.Name(instrument),
		e.normalizer.LatestValue(s, instrument.Summary),
		e.normalizer.AUM(instrument.Summary),
		result)
}
