// Package pipeline runs a full build: read the stay file, synthesize
// identities, build the dimensions, resolve the facts, load the star
// schema in one transaction and optionally export the de-identified rows.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"stay_loader/db"
	"stay_loader/dimension"
	"stay_loader/export"
	"stay_loader/fact"
	"stay_loader/metrics"
	"stay_loader/source"
	"stay_loader/synth"
)

const progressInterval = 5 * time.Second

// Options describes one build.
type Options struct {
	Input     string
	Names     string
	Export    string // empty disables the export
	Seed      uint64
	Hospitals []string // empty keeps the source hospital names
}

// Result summarizes a committed build.
type Result struct {
	BuildID    string
	Rows       int
	Stays      int64
	Dimensions map[string]int
	Warnings   int
	Exported   int
	Elapsed    time.Duration
}

type Builder struct {
	store   *db.Store
	log     zerolog.Logger
	metrics *metrics.Build
}

// NewBuilder returns a builder loading into store. m may be nil.
func NewBuilder(store *db.Store, log zerolog.Logger, m *metrics.Build) *Builder {
	if m == nil {
		m = metrics.NewBuild()
	}
	return &Builder{store: store, log: log, metrics: m}
}

func (b *Builder) Metrics() *metrics.Build {
	return b.metrics
}

// Build runs every phase in order. Any error aborts the build and leaves
// the store as it was.
func (b *Builder) Build(ctx context.Context, opts Options) (res *Result, err error) {
	start := time.Now()
	res = &Result{BuildID: uuid.NewString()}
	log := b.log.With().Str("build_id", res.BuildID).Logger()

	defer func() {
		status := "success"
		if err != nil {
			status = "error"
			log.Error().Err(err).Msg("build failed")
		}
		b.metrics.BuildsTotal.WithLabelValues(status).Inc()
	}()

	log.Info().Str("input", opts.Input).Str("names", opts.Names).Uint64("seed", opts.Seed).Msg("build started")

	done := b.phase("read")
	records, err := source.ReadAll(opts.Input)
	if err != nil {
		return nil, err
	}
	names, err := source.ReadNamePool(opts.Names)
	if err != nil {
		return nil, err
	}
	done()
	res.Rows = len(records)
	b.metrics.RowsRead.Add(float64(len(records)))
	log.Info().Int("rows", len(records)).Int("name_pool", len(names)).Msg("input read")

	done = b.phase("enrich")
	enriched, err := b.enrich(log, records, names, opts, &res.Warnings)
	if err != nil {
		return nil, err
	}
	done()

	done = b.phase("dimensions")
	dims, err := dimension.Build(enriched)
	if err != nil {
		return nil, fmt.Errorf("build dimensions: %w", err)
	}
	done()
	res.Dimensions = dims.Sizes()

	done = b.phase("facts")
	stays, err := fact.Resolve(enriched, dims)
	if err != nil {
		return nil, fmt.Errorf("resolve facts: %w", err)
	}
	done()

	done = b.phase("store")
	err = b.store.Build(ctx, func(q *db.Queries) error {
		if err := dims.Write(ctx, q); err != nil {
			return err
		}
		n, err := fact.Write(ctx, q, stays)
		res.Stays = n
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load star schema: %w", err)
	}
	done()
	b.metrics.StaysLoaded.Add(float64(res.Stays))
	b.metrics.SetDimensionSizes(res.Dimensions)

	if opts.Export != "" {
		done = b.phase("export")
		res.Exported, err = export.WriteAll(opts.Export, enriched)
		if err != nil {
			return nil, err
		}
		done()
		log.Info().Str("path", opts.Export).Int("rows", res.Exported).Msg("export written")
	}

	res.Elapsed = time.Since(start)
	log.Info().
		Int("rows", res.Rows).
		Int64("stays", res.Stays).
		Interface("dimensions", res.Dimensions).
		Int("birth_date_warnings", res.Warnings).
		Dur("elapsed", res.Elapsed).
		Float64("rows_per_sec", float64(res.Rows)/res.Elapsed.Seconds()).
		Msg("build committed")
	return res, nil
}

func (b *Builder) enrich(log zerolog.Logger, records []source.Record, names []source.NameEntry, opts Options, warnings *int) ([]synth.Enriched, error) {
	s, err := synth.New(synth.Options{
		Seed:      opts.Seed,
		Names:     names,
		Hospitals: opts.Hospitals,
		Logger:    log,
		OnLeapDayFallback: func() {
			*warnings++
			b.metrics.BirthDateWarnings.Inc()
		},
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	lastLog := start
	out := make([]synth.Enriched, 0, len(records))
	for i, rec := range records {
		e, err := s.Enrich(rec)
		if err != nil {
			return nil, fmt.Errorf("enrich row %d: %w", rec.Row, err)
		}
		out = append(out, e)

		if time.Since(lastLog) >= progressInterval {
			elapsed := time.Since(start).Seconds()
			log.Info().
				Int("rows", i+1).
				Int("total", len(records)).
				Float64("pct", float64(i+1)/float64(len(records))*100).
				Float64("rows_per_sec", float64(i+1)/elapsed).
				Msg("enrich progress")
			lastLog = time.Now()
		}
	}
	return out, nil
}

func (b *Builder) phase(name string) func() {
	start := time.Now()
	return func() {
		b.metrics.BuildDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}
