package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/metrics"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/optimizer"
)

// RegisterCacheMetrics exposes the item value cache counters on reg
func RegisterCacheMetrics(reg prometheus.Registerer, svc optimizer.Service) error {
	collector := metrics.NewCacheCollector(func() metrics.CacheStats {
		s := svc.CacheStats()
		return metrics.CacheStats{
			Hits:   uint64(s.Hits),
			Misses: uint64(s.Misses),
			Size:   s.Size,
		}
	})

	if err := reg.Register(collector); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgCacheMetricsRegistered)
	return nil
}
