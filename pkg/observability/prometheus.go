package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/graphbisect/pkg/buildinfo"
)

// PrometheusHooks is a [ReorderHooks] implementation that records run and
// bisection metrics in Prometheus collectors.
//
// Exported series:
//   - graphbisect_reorders_total{policy,status}
//   - graphbisect_reorder_duration_seconds{policy}
//   - graphbisect_bisections_total
//   - graphbisect_swaps_total
//   - graphbisect_window_size (histogram of bisected window sizes)
//   - graphbisect_build_info{version,commit}
type PrometheusHooks struct {
	reorders    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	bisections  prometheus.Counter
	swaps       prometheus.Counter
	windowSizes prometheus.Histogram
	buildInfo   *prometheus.GaugeVec
}

// NewPrometheusHooks creates the collectors and registers them with reg.
// It fails if any collector is already registered with reg.
func NewPrometheusHooks(reg prometheus.Registerer) (*PrometheusHooks, error) {
	h := &PrometheusHooks{
		reorders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphbisect_reorders_total",
				Help: "Total number of reordering runs by recursion policy and outcome",
			},
			[]string{"policy", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphbisect_reorder_duration_seconds",
				Help:    "Wall-clock duration of reordering runs",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"policy"},
		),
		bisections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graphbisect_bisections_total",
			Help: "Total number of bisection steps performed",
		}),
		swaps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graphbisect_swaps_total",
			Help: "Total number of cross-midpoint exchanges performed",
		}),
		windowSizes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "graphbisect_window_size",
			Help:    "Number of vertices in each bisected window",
			Buckets: prometheus.ExponentialBuckets(2, 4, 10),
		}),
		buildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "graphbisect_build_info",
				Help: "Build information of the running binary",
			},
			[]string{"version", "commit"},
		),
	}

	for _, c := range []prometheus.Collector{h.reorders, h.duration, h.bisections, h.swaps, h.windowSizes, h.buildInfo} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	h.buildInfo.WithLabelValues(buildinfo.Version, buildinfo.Commit).Set(1)
	return h, nil
}

func (h *PrometheusHooks) OnReorderStart(context.Context, string, string, int) {}

func (h *PrometheusHooks) OnBisect(_ context.Context, _ string, s, e, swaps int, _ time.Duration) {
	h.bisections.Inc()
	h.swaps.Add(float64(swaps))
	h.windowSizes.Observe(float64(e - s + 1))
}

func (h *PrometheusHooks) OnReorderComplete(_ context.Context, _ string, policy string, _ RunStats, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	h.reorders.WithLabelValues(policy, status).Inc()
	h.duration.WithLabelValues(policy).Observe(d.Seconds())
}
