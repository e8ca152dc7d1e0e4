package metrics

import (
	"fmt"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"go.uber.org/zap"
)

func PrintReport(logger *zap.Logger, r common.MetricsRecord) {
	logger.Info("fund report",
		zap.String("code", r.Code),
		zap.String("name", r.Name),
		zap.String("period", r.Period),
		zap.Stringer("latest_nav", r.LatestValue),
		zap.String("aum", r.AUM.String()))

	logger.Info("return metrics",
		zap.String("code", r.Code),
		zap.String("cagr", fmt.Sprintf("%s%%", r.CAGR)),
		zap.String("cagr_3y", fmt.Sprintf("%s%%", r.CAGR3Y)),
		zap.String("alpha", fmt.Sprintf("%s%%", r.Alpha)),
		zap.Stringer("beta", r.Beta))

	logger.Info("risk metrics",
		zap.String("code", r.Code),
		zap.Stringer("sharpe_ratio", r.Sharpe),
		zap.Stringer("sortino_ratio", r.Sortino),
		zap.Stringer("treynor_ratio", r.Treynor),
		zap.String("max_drawdown", fmt.Sprintf("%s%%", r.MaxDrawdown)),
		zap.String("annualized_volatility", fmt.Sprintf("%s%%", r.StdDev)))
}
