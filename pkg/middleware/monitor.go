package middleware

import (
	"context"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/engine"
	"go.uber.org/zap"
)

type MonitorFlags uint8

//goland:noinspection GoUnusedConst
const (
	MonitorNone MonitorFlags = 1 << iota
	MonitorAll
	MonitorRecords
	MonitorDegraded
)

type Monitor struct {
	logger *zap.Logger
	flags  MonitorFlags
}

func NewMonitor(logger *zap.Logger, flags MonitorFlags) *Monitor {
	return &Monitor{
		logger: logger,
		flags:  flags,
	}
}

func (m *Monitor) WithAnalyze(handler engine.AnalyzeHandler) engine.AnalyzeHandler {
	return func(ctx context.Context, instrument common.Instrument) common.MetricsRecord {
		r := handler(ctx, instrument)
		if m.flags&MonitorRecords != 0 || m.flags&MonitorAll != 0 {
			m.logger.Info("record",
				zap.String("code", r.Code),
				zap.String("period", r.Period),
				zap.Int("raw_observations", len(instrument.Observations)),
				zap.Stringer("cagr_3y", r.CAGR3Y),
				zap.Stringer("sharpe", r.Sharpe))
		}
		if r.Degraded() && (m.flags&MonitorDegraded != 0 || m.flags&MonitorAll != 0) {
			m.logger.Warn("insufficient observations",
				zap.String("code", r.Code),
				zap.Int("raw_observations", len(instrument.Observations)))
		}
		return r
	}
}
