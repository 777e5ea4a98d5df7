package metrics

import (
	"context"

	prom "github.com/prometheus/client_golang/prometheus"
)

var (
	providerCalls = prom.NewCounterVec(
		prom.CounterOpts{
			Name: "provider_calls_total",
			Help: "Count of SMS provider send attempts",
		},
		[]string{"provider", "result"},
	)
	providerDuration = prom.NewHistogramVec(
		prom.HistogramOpts{
			Name:    "provider_duration_seconds",
			Help:    "Duration of SMS provider send attempts",
			Buckets: prom.DefBuckets,
		},
		[]string{"provider"},
	)
)

func init() {
	prom.MustRegister(providerCalls, providerDuration)
}

// ProviderObserver times fn and counts it as success or error under the provider label.
func ProviderObserver(name string, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		timer := prom.NewTimer(providerDuration.WithLabelValues(name))
		err := fn(ctx)
		timer.ObserveDuration()
		result := "success"
		if err != nil {
			result = "error"
		}
		providerCalls.WithLabelValues(name, result).Inc()
		return err
	}
}
