package metrics

import (
	"time"

	"github.com/bornholm/loanseed/internal/catalog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "loanseed"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	ReasonExists    = "exists"
	ReasonMissingID = "missing_id"
)

type Metrics struct {
	registry *prometheus.Registry

	rowsInserted   prometheus.Counter
	rowsSkipped    *prometheus.CounterVec
	runs           *prometheus.CounterVec
	lastSuccessful prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rowsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_inserted_total",
			Help:      "Number of catalog loans inserted into the store.",
		}),
		rowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "Number of catalog loans left untouched, by reason.",
		}, []string{"reason"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of seed runs, by outcome.",
		}, []string{"outcome"}),
		lastSuccessful: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_successful_run_timestamp_seconds",
			Help:      "Unix time of the last committed seed run.",
		}),
	}

	m.registry.MustRegister(m.rowsInserted, m.rowsSkipped, m.runs, m.lastSuccessful)

	return m
}

// RecordSeed implements catalog.Recorder.
func (m *Metrics) RecordSeed(stats catalog.Stats, err error) {
	if err != nil {
		m.runs.WithLabelValues(OutcomeFailure).Inc()
		return
	}

	m.runs.WithLabelValues(OutcomeSuccess).Inc()
	m.rowsInserted.Add(float64(stats.Inserted))
	m.rowsSkipped.WithLabelValues(ReasonExists).Add(float64(stats.SkippedExisting))
	m.rowsSkipped.WithLabelValues(ReasonMissingID).Add(float64(stats.SkippedMissingID))
	m.lastSuccessful.Set(float64(time.Now().Unix()))
}

// WriteTextfile dumps the collected metrics in the text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "could not write metrics to '%s'", path)
	}

	return nil
}

var _ catalog.Recorder = &Metrics{}
