package cfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/engine"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/metrics"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/series"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "NAVRANK"

type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Source   SourceConfig   `yaml:"source" envconfig:"SOURCE"`
}

type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// AnalysisConfig holds the market assumptions and normalisation policy. Rates are
// annual percentages.
type AnalysisConfig struct {
	RiskFreeRate       float64        `yaml:"risk_free_rate" envconfig:"RISK_FREE_RATE" validate:"gte=0,lte=100"`
	MarketReturn       float64        `yaml:"market_return" envconfig:"MARKET_RETURN" validate:"gte=-100,lte=1000"`
	MarketVolatility   float64        `yaml:"market_volatility" envconfig:"MARKET_VOLATILITY" validate:"gt=0"`
	MinBeta            float64        `yaml:"min_beta" envconfig:"MIN_BETA" validate:"gte=0"`
	MaxBeta            float64        `yaml:"max_beta" envconfig:"MAX_BETA" validate:"gtefield=MinBeta"`
	HorizonDays        int            `yaml:"horizon_days" envconfig:"HORIZON_DAYS" validate:"gt=0"`
	TradingDaysPerYear int            `yaml:"trading_days_per_year" envconfig:"TRADING_DAYS_PER_YEAR" validate:"gt=0,lte=366"`
	UndatedOrder       string         `yaml:"undated_order" envconfig:"UNDATED_ORDER" validate:"oneof=oldest_first newest_first"`
	Aliases            series.Aliases `yaml:"aliases" envconfig:"ALIASES"`
}

type SourceConfig struct {
	DuckDBPath     string `yaml:"duckdb_path" envconfig:"DUCKDB_PATH"`
	MaxInstruments int    `yaml:"max_instruments" envconfig:"MAX_INSTRUMENTS" validate:"gte=2,lte=5"`
}

func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Analysis: AnalysisConfig{
			RiskFreeRate:       metrics.RiskFreeRate,
			MarketReturn:       metrics.MarketReturn,
			MarketVolatility:   metrics.MarketVolatility,
			MinBeta:            metrics.MinBeta,
			MaxBeta:            metrics.MaxBeta,
			HorizonDays:        series.HorizonDays,
			TradingDaysPerYear: series.TradingDaysPerYear,
			UndatedOrder:       series.OldestFirst.String(),
		},
		Source: SourceConfig{
			MaxInstruments: engine.MaxInstruments,
		},
	}
}

// Load applies, in increasing precedence, the defaults, the YAML file at path (if
// path is not empty) and the NAVRANK_* environment, then validates the result.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return c, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("%s: failed on %q", fe.Namespace(), fe.Tag())
		}
		return err
	}
	return nil
}

func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func (c Config) EngineOptions() []engine.Option {
	order, _ := series.ParseUndatedOrder(c.Analysis.UndatedOrder)
	return []engine.Option{
		engine.WithNormalizerOptions(
			series.WithUndatedOrder(order),
			series.WithAliases(c.Analysis.Aliases),
		),
		engine.WithCalculatorOptions(
			metrics.WithRiskFreeRate(c.Analysis.RiskFreeRate),
			metrics.WithMarketReturn(c.Analysis.MarketReturn),
			metrics.WithMarketVolatility(c.Analysis.MarketVolatility),
			metrics.WithBetaBounds(c.Analysis.MinBeta, c.Analysis.MaxBeta),
			metrics.WithHorizon(c.Analysis.HorizonDays),
			metrics.WithTradingDaysPerYear(c.Analysis.TradingDaysPerYear),
		),
	}
}
