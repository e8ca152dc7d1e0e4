package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/data/duckdb"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/data/mapper"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/datasource/mfapi"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/datasource/synthetic"
	"go.uber.org/zap"
)

var (
	ErrNoInstruments      = errors.New("no instruments selected")
	ErrTooManyInstruments = errors.New("too many instruments selected")
	ErrNothingToCompare   = errors.New("none of the selected instruments has data")
)

type loader interface {
	Load(ctx context.Context, ref string) (common.Instrument, error)
	Close()
}

// selectRefs drops blanks and repeated selections and enforces the comparison size.
func selectRefs(args []string, max int) ([]string, error) {
	seen := make(map[string]struct{}, len(args))
	refs := make([]string, 0, len(args))
	for _, arg := range args {
		ref := strings.TrimSpace(arg)
		if ref == "" {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	if len(refs) == 0 {
		return nil, ErrNoInstruments
	}
	if len(refs) > max {
		return nil, fmt.Errorf("%w: %d selected, at most %d allowed", ErrTooManyInstruments, len(refs), max)
	}
	return refs, nil
}

// loadAll never fails. An instrument that cannot be loaded is kept with its reference
// as code and no observations, so the comparison reports it as excluded.
func loadAll(ctx context.Context, logger *zap.Logger, l loader, refs []string) []common.Instrument {
	instruments := make([]common.Instrument, 0, len(refs))
	for _, ref := range refs {
		inst, err := l.Load(ctx, ref)
		if err != nil {
			logger.Warn("unable to load instrument", zap.String("ref", ref), zap.Error(err))
			inst = common.Instrument{Code: ref}
		}
		instruments = append(instruments, inst)
	}
	return instruments
}

type fileLoader struct{}

func (fileLoader) Load(_ context.Context, path string) (common.Instrument, error) {
	payload, err := mapper.ReadFile(path)
	if err != nil {
		return common.Instrument{}, err
	}
	inst, err := mfapi.Decode("", payload)
	if err != nil {
		return common.Instrument{}, err
	}
	if inst.Code == "" {
		inst.Code = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return inst, nil
}

func (fileLoader) Close() {}

type duckdbLoader struct {
	reader *duckdb.Reader
}

func newDuckDBLoader(path string) (*duckdbLoader, error) {
	r := duckdb.NewReader(path)
	if err := r.Connect(); err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", path, err)
	}
	return &duckdbLoader{reader: r}, nil
}

func (l *duckdbLoader) Load(ctx context.Context, code string) (common.Instrument, error) {
	return l.reader.LoadInstrument(ctx, code)
}

func (l *duckdbLoader) Close() {
	l.reader.Close()
}

type demoFund struct {
	code  string
	name  string
	mu    float64
	sigma float64
	aum   float64
}

var demoFunds = []demoFund{
	{"DEMO-EQ", "Demo Flexi Cap Fund", 0.15, 0.20, 48250},
	{"DEMO-IDX", "Demo Nifty 50 Index Fund", 0.12, 0.16, 21730},
	{"DEMO-SC", "Demo Small Cap Fund", 0.20, 0.30, 9640},
	{"DEMO-DEBT", "Demo Short Duration Fund", 0.07, 0.02, 0},
}

func demoInstruments(seed int64) []common.Instrument {
	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	instruments := make([]common.Instrument, 0, len(demoFunds))
	for _, f := range demoFunds {
		g := synthetic.NewNavGenerator(f.code, rng, start, 10, f.mu, f.sigma, 900)
		g.SetName(f.name)
		g.SetAUM(f.aum)
		instruments = append(instruments, g.Generate())
	}
	return instruments
}
