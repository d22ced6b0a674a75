package metrics

import "github.com/prometheus/client_golang/prometheus"

// CacheStats is a point-in-time view of a cache
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// CacheCollector exports cache statistics read at scrape time
type CacheCollector struct {
	stats  func() CacheStats
	hits   *prometheus.Desc
	misses *prometheus.Desc
	size   *prometheus.Desc
}

// NewCacheCollector creates a collector reading stats on each scrape
func NewCacheCollector(stats func() CacheStats) *CacheCollector {
	return &CacheCollector{
		stats:  stats,
		hits:   prometheus.NewDesc(MetricNameItemCacheHits, HelpTextItemCacheHits, nil, nil),
		misses: prometheus.NewDesc(MetricNameItemCacheMisses, HelpTextItemCacheMisses, nil, nil),
		size:   prometheus.NewDesc(MetricNameItemCacheSize, HelpTextItemCacheSize, nil, nil),
	}
}

// Describe implements prometheus.Collector
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.size
}

// Collect implements prometheus.Collector
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
}
