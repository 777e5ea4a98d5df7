package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

var (
	bulkItems = prom.NewCounterVec(
		prom.CounterOpts{
			Name: "bulk_items_total",
			Help: "Bulk send items by outcome",
		},
		[]string{"result"},
	)
	bulkBatchSize = prom.NewHistogram(
		prom.HistogramOpts{
			Name:    "bulk_batch_size",
			Help:    "Number of recipients per bulk request",
			Buckets: prom.ExponentialBuckets(1, 2, 10),
		},
	)
)

func init() {
	prom.MustRegister(bulkItems, bulkBatchSize)
}

func BulkProcessed(successful, failed int) {
	bulkBatchSize.Observe(float64(successful + failed))
	bulkItems.WithLabelValues("success").Add(float64(successful))
	bulkItems.WithLabelValues("error").Add(float64(failed))
}
