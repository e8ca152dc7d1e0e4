package middleware

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/engine"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/store"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/utility/fixed"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func stubHandler(calls *int) engine.AnalyzeHandler {
	var mu sync.Mutex
	return func(_ context.Context, instrument common.Instrument) common.MetricsRecord {
		mu.Lock()
		*calls++
		mu.Unlock()
		if len(instrument.Observations) < 2 {
			return common.MetricsRecord{Code: instrument.Code, Beta: fixed.Round(1, 2), Period: common.PeriodNotAvailable}
		}
		return common.MetricsRecord{Code: instrument.Code, CAGR3Y: fixed.Round(80, 2), Period: "3Y"}
	}
}

func instrument(code string, n int) common.Instrument {
	raw := make([]common.RawObservation, n)
	for i := range raw {
		raw[i] = common.RawObservation{"nav": "1"}
	}
	return common.Instrument{Code: code, Observations: raw}
}

func TestMiddleware_Chain(t *testing.T) {
	type handler func(int) int

	add10 := func(h handler) handler {
		return func(n int) int {
			return h(n) + 10
		}
	}

	multiply2 := func(h handler) handler {
		return func(n int) int {
			return h(n) * 2
		}
	}

	base := func(n int) int {
		return n
	}

	chained := Chain(add10, multiply2)(base)
	if result := chained(5); result != 20 {
		t.Errorf("Expected 20, got %d", result)
	}

	if result := Chain[handler]()(base)(5); result != 5 {
		t.Errorf("Expected 5, got %d", result)
	}
}

func TestMiddleware_Telemetry(t *testing.T) {
	registry := prometheus.NewRegistry()
	tel, err := NewTelemetry(zaptest.NewLogger(t), registry)
	require.NoError(t, err)

	var calls int
	h := tel.WithAnalyze(stubHandler(&calls))
	h(context.Background(), instrument("A", 3))
	h(context.Background(), instrument("B", 1))
	h(context.Background(), instrument("C", 0))

	assert.Equal(t, 3, calls)
	assert.Equal(t, int64(3), tel.Analyses())
	assert.Equal(t, int64(2), tel.Degraded())
	assert.Equal(t, int64(1), tel.Tier(common.TierExcellent))
	assert.Equal(t, int64(2), tel.Tier(common.TierAverage))

	assert.Equal(t, 3.0, testutil.ToFloat64(tel.analyses))
	assert.Equal(t, 2.0, testutil.ToFloat64(tel.degraded))
	assert.Equal(t, 1.0, testutil.ToFloat64(tel.ratings.WithLabelValues("excellent")))

	tel.PrintStatistics()
}

func TestMiddleware_TelemetryDoubleRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewTelemetry(zaptest.NewLogger(t), registry)
	require.NoError(t, err)

	_, err = NewTelemetry(zaptest.NewLogger(t), registry)
	assert.Error(t, err)
}

func TestMiddleware_Performance(t *testing.T) {
	p := NewPerformance(zaptest.NewLogger(t))
	p.PrintStatistics()

	slow := func(_ context.Context, instrument common.Instrument) common.MetricsRecord {
		time.Sleep(5 * time.Millisecond)
		return common.MetricsRecord{Code: instrument.Code}
	}

	h := p.WithAnalyze(slow)
	r := h(context.Background(), instrument("A", 2))
	h(context.Background(), instrument("B", 2))

	assert.Equal(t, "A", r.Code)
	assert.Equal(t, int64(2), p.Count())
	assert.GreaterOrEqual(t, p.Total(), 10*time.Millisecond)
	assert.GreaterOrEqual(t, p.Longest(), 5*time.Millisecond)
	assert.GreaterOrEqual(t, p.Average(), 5*time.Millisecond)

	p.PrintStatistics()
}

func TestMiddleware_Monitor(t *testing.T) {
	var calls int
	m := NewMonitor(zaptest.NewLogger(t), MonitorAll)

	r := m.WithAnalyze(stubHandler(&calls))(context.Background(), instrument("A", 1))
	assert.True(t, r.Degraded())
	assert.Equal(t, 1, calls)
}

func TestMiddleware_Cache(t *testing.T) {
	var calls int
	s := store.NewRecordStore()
	c := NewCache(s)
	h := c.WithAnalyze(stubHandler(&calls))

	first := h(context.Background(), instrument("A", 3))
	second := h(context.Background(), instrument("A", 3))

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(1), c.Hits())
	assert.Equal(t, int64(1), c.Misses())

	s.Delete("A")
	h(context.Background(), instrument("A", 3))
	assert.Equal(t, 2, calls)
}

func TestMiddleware_CacheSkipsUncoded(t *testing.T) {
	s := store.NewRecordStore()
	c := NewCache(s)
	h := c.WithAnalyze(engine.New(zaptest.NewLogger(t)).Analyze)

	rising := h(context.Background(), common.Instrument{Observations: []common.RawObservation{
		{"date": "2023-06-30", "nav": "100"}, {"date": "2024-06-30", "nav": "120"},
	}})
	falling := h(context.Background(), common.Instrument{Code: "  ", Observations: []common.RawObservation{
		{"date": "2023-06-30", "nav": "120"}, {"date": "2024-06-30", "nav": "100"},
	}})

	assert.Equal(t, "20.00", rising.CAGR.String())
	assert.True(t, falling.CAGR.IsNeg())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, int64(0), c.Hits())
	assert.Equal(t, int64(0), c.Misses())
}

func TestMiddleware_ChainWithEngine(t *testing.T) {
	registry := prometheus.NewRegistry()
	tel, err := NewTelemetry(zaptest.NewLogger(t), registry)
	require.NoError(t, err)
	cache := NewCache(store.NewRecordStore())
	perf := NewPerformance(zaptest.NewLogger(t))

	e := engine.New(zaptest.NewLogger(t))
	h := Chain(cache.WithAnalyze, tel.WithAnalyze, perf.WithAnalyze)(e.Analyze)

	instruments := []common.Instrument{
		{Code: "X", Observations: []common.RawObservation{{"date": "2024-06-30", "nav": "110"}, {"date": "2023-06-30", "nav": "100"}}},
		{Code: "Y", Observations: []common.RawObservation{{"nav": "0"}}},
	}

	for i := 0; i < 2; i++ {
		c, err := engine.Compare(context.Background(), h, instruments)
		require.NoError(t, err)
		require.Len(t, c.Entries, 2)
		assert.Equal(t, "X", c.Entries[0].Record.Code)
		assert.Equal(t, "10.00", c.Entries[0].Record.CAGR3Y.String())
	}

	// Second comparison is served from the cache.
	assert.Equal(t, int64(2), tel.Analyses())
	assert.Equal(t, int64(1), tel.Degraded())
	assert.Equal(t, int64(2), perf.Count())
	assert.Equal(t, int64(2), cache.Hits())
}
