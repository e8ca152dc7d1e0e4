package middleware

import (
	"context"
	"sync/atomic"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/engine"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/rating"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const namespace = "navrank"

var tiers = []common.Tier{common.TierExcellent, common.TierGood, common.TierAverage, common.TierPoor}

type Telemetry struct {
	logger *zap.Logger

	analysesCounter atomic.Int64
	degradedCounter atomic.Int64
	tierCounters    [common.TierCount]atomic.Int64

	analyses prometheus.Counter
	degraded prometheus.Counter
	ratings  *prometheus.CounterVec
}

// NewTelemetry registers its collectors on registerer.
func NewTelemetry(logger *zap.Logger, registerer prometheus.Registerer) (*Telemetry, error) {
	t := &Telemetry{
		logger: logger,
		analyses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Number of instruments analysed.",
		}),
		degraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_records_total",
			Help:      "Number of analyses without enough observations for return statistics.",
		}),
		ratings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_total",
			Help:      "Number of analyses per rating tier.",
		}, []string{"tier"}),
	}

	for _, c := range []prometheus.Collector{t.analyses, t.degraded, t.ratings} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Telemetry) WithAnalyze(handler engine.AnalyzeHandler) engine.AnalyzeHandler {
	return func(ctx context.Context, instrument common.Instrument) common.MetricsRecord {
		r := handler(ctx, instrument)

		t.analysesCounter.Add(1)
		t.analyses.Inc()
		if r.Degraded() {
			t.degradedCounter.Add(1)
			t.degraded.Inc()
		}

		tier := rating.Rate(r).Tier
		t.tierCounters[tier].Add(1)
		t.ratings.WithLabelValues(tier.String()).Inc()
		return r
	}
}

func (t *Telemetry) Analyses() int64 { return t.analysesCounter.Load() }
func (t *Telemetry) Degraded() int64 { return t.degradedCounter.Load() }

func (t *Telemetry) Tier(tier common.Tier) int64 {
	return t.tierCounters[tier].Load()
}

func (t *Telemetry) PrintStatistics() {
	fields := []zap.Field{
		zap.Int64("analyses", t.Analyses()),
		zap.Int64("degraded", t.Degraded()),
	}
	for _, tier := range tiers {
		fields = append(fields, zap.Int64(tier.String(), t.Tier(tier)))
	}
	t.logger.Info("telemetry statistics", fields...)
}
