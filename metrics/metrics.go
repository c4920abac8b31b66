package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Build collects the metrics of one build run. A build is a batch job, so
// the registry is written to a node_exporter textfile rather than served.
type Build struct {
	Registry *prometheus.Registry

	// RowsRead counts stay records read from the input file
	RowsRead prometheus.Counter

	// StaysLoaded counts hospital_stay rows written
	StaysLoaded prometheus.Counter

	// DimensionRows reports the row count of each dimension table
	DimensionRows *prometheus.GaugeVec

	// BirthDateWarnings counts impossible February 29 reference dates
	BirthDateWarnings prometheus.Counter

	// BuildsTotal counts builds by outcome
	BuildsTotal *prometheus.CounterVec

	// BuildDuration tracks the duration of each build phase
	BuildDuration *prometheus.HistogramVec
}

func NewBuild() *Build {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Build{
		Registry: reg,
		RowsRead: factory.NewCounter(prometheus.CounterOpts{
			Name: "stay_loader_rows_read_total",
			Help: "Total number of stay records read from the input file",
		}),
		StaysLoaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "stay_loader_stays_loaded_total",
			Help: "Total number of hospital_stay rows written",
		}),
		DimensionRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stay_loader_dimension_rows",
				Help: "Number of rows in each dimension table after the last build",
			},
			[]string{"table"},
		),
		BirthDateWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "stay_loader_birth_date_warnings_total",
			Help: "Reference dates of February 29 in a non-leap year",
		}),
		BuildsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stay_loader_builds_total",
				Help: "Total number of builds",
			},
			[]string{"status"}, // "success", "error"
		),
		BuildDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stay_loader_build_phase_duration_seconds",
				Help:    "Duration of build phases in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"phase"}, // "read", "enrich", "dimensions", "facts", "store", "export"
		),
	}
}

// SetDimensionSizes records the row count of every dimension table.
func (b *Build) SetDimensionSizes(sizes map[string]int) {
	for table, n := range sizes {
		b.DimensionRows.WithLabelValues(table).Set(float64(n))
	}
}

// WriteTextfile writes every metric in the text exposition format.
func (b *Build) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, b.Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
