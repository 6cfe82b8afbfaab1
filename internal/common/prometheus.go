package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	DrawResultFetchTotal       = "draw_result_fetch_total"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"path", "status_code"}),
		DrawResultFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: DrawResultFetchTotal,
			Help: "Count of draw result lookups by source",
		}, []string{"source"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"path", "status_code"}),
	}
)

func RegisterPrometheus() {
	for _, counter := range PromCounters {
		prometheus.MustRegister(counter)
	}

	for _, histogram := range PromHistograms {
		prometheus.MustRegister(histogram)
	}
}
