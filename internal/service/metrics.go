package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolveDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fileserver_path_resolve_depth",
		Help:    "Number of directory records read to resolve a path.",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
	})
	pathCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fileserver_path_cache_hits_total",
		Help: "Resolved-path cache hits.",
	})
	pathCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fileserver_path_cache_misses_total",
		Help: "Resolved-path cache misses.",
	})
	uploadedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fileserver_uploaded_bytes_total",
		Help: "Bytes written by uploads.",
	})
	downloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fileserver_downloads_total",
		Help: "Files served for download.",
	})
)
