// SPDX-License-Identifier: MIT

package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "q4"

// Metrics are the Prometheus instruments updated by Run. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	runs         *prometheus.CounterVec   // mode, status
	stageSeconds *prometheus.HistogramVec // stage
	energySplit  prometheus.Gauge
	fracTail     prometheus.Gauge
	svdK         prometheus.Gauge
}

// Stage names used for the stage_duration_seconds label.
const (
	StageProjector = "projector"
	StageQuadrant  = "quadrant"
	StageEnergy    = "energy"
	StageSVD       = "svd"
	StageProject   = "project"
	StageQStudy    = "qstudy"
)

// NewMetrics builds the instruments and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Pipeline runs by processing mode and outcome.",
		}, []string{"mode", "status"}),
		stageSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"stage"}),
		energySplit: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "energy_split_ratio",
			Help:      "Energy conservation ratio of the last run.",
		}),
		fracTail: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "qstudy_frac_tail_mean",
			Help:      "Mean tail fraction of the last full-mode run.",
		}),
		svdK: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "svd_components",
			Help:      "Number of SVD components fitted by the last run.",
		}),
	}
	for _, c := range []prometheus.Collector{m.runs, m.stageSeconds, m.energySplit, m.fracTail, m.svdK} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeStage(stage string, since time.Time) {
	if m == nil {
		return
	}
	m.stageSeconds.WithLabelValues(stage).Observe(time.Since(since).Seconds())
}

func (m *Metrics) observeRun(mode Mode, err error) {
	if m == nil {
		return
	}
	status := "completed"
	if err != nil {
		status = "error"
	}
	m.runs.WithLabelValues(mode.String(), status).Inc()
}

func (m *Metrics) observeResult(r *Result) {
	if m == nil {
		return
	}
	m.energySplit.Set(r.Energy.EnergySplit)
	if r.Model != nil {
		m.svdK.Set(float64(r.Model.K()))
	}
	if r.QStudy != nil {
		m.fracTail.Set(r.QStudy.FracTailMean)
	}
}
