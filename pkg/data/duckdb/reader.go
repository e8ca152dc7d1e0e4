package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	_ "github.com/marcboeker/go-duckdb"
)

const (
	navHistoryTable = "nav_history"
	schemesTable    = "schemes"
	dateLayout      = "2006-01-02"
)

// Reader loads NAV histories from a local DuckDB database with the tables
//
//	nav_history(scheme_code VARCHAR, nav_date DATE, nav DOUBLE)
//	schemes(scheme_code VARCHAR, scheme_name VARCHAR, aum DOUBLE)
//
// The schemes table is optional.
type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	if r.db != nil {
		_ = r.db.Close()
	}
}

func (r *Reader) DB() *sql.DB {
	return r.db
}

// LoadInstrument returns the instrument with its history oldest first. Dates are
// emitted as ISO strings so they go through the same normalisation as provider data.
func (r *Reader) LoadInstrument(ctx context.Context, code string) (common.Instrument, error) {
	instrument := common.Instrument{Code: code}

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT nav_date, nav FROM %s WHERE scheme_code = ? ORDER BY nav_date`, navHistoryTable), code)
	if err != nil {
		return instrument, fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var (
			navDate time.Time
			nav     sql.NullFloat64
		)
		if err := rows.Scan(&navDate, &nav); err != nil {
			return instrument, fmt.Errorf("error scanning row: %w", err)
		}
		record := common.RawObservation{"date": navDate.Format(dateLayout)}
		if nav.Valid {
			record["nav"] = nav.Float64
		}
		instrument.Observations = append(instrument.Observations, record)
	}
	if err := rows.Err(); err != nil {
		return instrument, fmt.Errorf("error scanning rows: %w", err)
	}

	summary, err := r.loadSummary(ctx, code)
	if err != nil {
		return instrument, err
	}
	instrument.Summary = summary
	return instrument, nil
}

func (r *Reader) loadSummary(ctx context.Context, code string) (common.Summary, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) > 0 FROM information_schema.tables WHERE table_name = ?`, schemesTable).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking %s table: %w", schemesTable, err)
	}
	if !exists {
		return nil, nil
	}

	var (
		name sql.NullString
		aum  sql.NullFloat64
	)
	err = r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT scheme_name, aum FROM %s WHERE scheme_code = ?`, schemesTable), code).Scan(&name, &aum)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading scheme %s: %w", code, err)
	}

	summary := common.Summary{}
	if name.Valid {
		summary["scheme_name"] = name.String
	}
	if aum.Valid {
		summary["aum"] = aum.Float64
	}
	return summary, nil
}
