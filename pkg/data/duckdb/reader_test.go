package duckdb

import (
	"context"
	"testing"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func openMemory(t *testing.T) *Reader {
	t.Helper()
	r := NewReader("")
	require.NoError(t, r.Connect())
	t.Cleanup(r.Close)
	return r
}

func exec(t *testing.T, r *Reader, statements ...string) {
	t.Helper()
	for _, s := range statements {
		_, err := r.DB().Exec(s)
		require.NoError(t, err, s)
	}
}

func TestReader_LoadInstrument(t *testing.T) {
	r := openMemory(t)
	exec(t, r,
		`CREATE TABLE nav_history (scheme_code VARCHAR, nav_date DATE, nav DOUBLE)`,
		`CREATE TABLE schemes (scheme_code VARCHAR, scheme_name VARCHAR, aum DOUBLE)`,
		`INSERT INTO nav_history VALUES ('A', DATE '2023-06-30', 110), ('A', DATE '2022-06-30', 100), ('A', DATE '2024-06-30', 121), ('B', DATE '2024-06-30', 5)`,
		`INSERT INTO schemes VALUES ('A', 'Alpha Growth Fund', 1234.4)`,
	)

	inst, err := r.LoadInstrument(context.Background(), "A")
	require.NoError(t, err)

	require.Len(t, inst.Observations, 3)
	assert.Equal(t, "2022-06-30", inst.Observations[0]["date"])
	assert.Equal(t, 121.0, inst.Observations[2]["nav"])
	assert.Equal(t, "Alpha Growth Fund", inst.Summary["scheme_name"])

	rec := engine.New(zaptest.NewLogger(t)).Analyze(context.Background(), inst)
	assert.Equal(t, "10.00", rec.CAGR.String())
	assert.Equal(t, "1234", rec.AUM.String())
	assert.Equal(t, "Alpha Growth Fund", rec.Name)
}

func TestReader_NullNavAndNoSchemes(t *testing.T) {
	r := openMemory(t)
	exec(t, r,
		`CREATE TABLE nav_history (scheme_code VARCHAR, nav_date DATE, nav DOUBLE)`,
		`INSERT INTO nav_history VALUES ('A', DATE '2024-01-01', NULL), ('A', DATE '2024-01-02', 10)`,
	)

	inst, err := r.LoadInstrument(context.Background(), "A")
	require.NoError(t, err)
	require.Len(t, inst.Observations, 2)
	_, hasNav := inst.Observations[0]["nav"]
	assert.False(t, hasNav)
	assert.Nil(t, inst.Summary)
}

func TestReader_UnknownScheme(t *testing.T) {
	r := openMemory(t)
	exec(t, r,
		`CREATE TABLE nav_history (scheme_code VARCHAR, nav_date DATE, nav DOUBLE)`,
		`CREATE TABLE schemes (scheme_code VARCHAR, scheme_name VARCHAR, aum DOUBLE)`,
	)

	inst, err := r.LoadInstrument(context.Background(), "ZZZ")
	require.NoError(t, err)
	assert.Empty(t, inst.Observations)
	assert.Nil(t, inst.Summary)
}

func TestReader_MissingTable(t *testing.T) {
	r := openMemory(t)

	_, err := r.LoadInstrument(context.Background(), "A")
	assert.Error(t, err)
}
