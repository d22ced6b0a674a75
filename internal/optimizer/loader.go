package optimizer

import (
	"context"
	"fmt"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/droptable"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/itemvalue"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/patterns"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/quest"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/validation"
)

// Config locates the data files and tunes valuation
type Config struct {
	PriceGuideDir  string
	DropTablePath  string
	QuestsPath     string
	QuestTimesPath string

	Pricing pricing.Options
	Cache   itemvalue.CacheConfig
}

// Load reads every data file named by cfg and builds a Service over them. A missing
// quest times file is not an error.
func Load(ctx context.Context, cfg Config) (Service, error) {
	log := logger.FromContext(ctx)
	v := validation.NewSchemaValidator()

	data, err := pricing.NewLoader(v).Load(ctx, cfg.PriceGuideDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load price guide: %w", err)
	}
	catalog := pricing.NewCatalog(data, cfg.Pricing)

	table, err := droptable.Load(ctx, cfg.DropTablePath, v)
	if err != nil {
		return nil, fmt.Errorf("failed to load drop table: %w", err)
	}

	listing, err := quest.LoadQuests(ctx, cfg.QuestsPath, v)
	if err != nil {
		return nil, fmt.Errorf("failed to load quests: %w", err)
	}

	var durations quest.Durations
	if cfg.QuestTimesPath != "" {
		durations, err = quest.LoadDurations(ctx, cfg.QuestTimesPath, v)
		if err != nil {
			return nil, fmt.Errorf("failed to load quest times: %w", err)
		}
	}

	router := itemvalue.NewRouter(catalog, patterns.Default(), cfg.Cache)
	resolver := droptable.NewResolver(table, nil)

	log.Info("Optimizer data loaded",
		"strategy", catalog.Strategy(),
		"quests", listing.Len(),
		"quest_times", len(durations),
		"cache_size", cfg.Cache.Size)

	return NewService(router, resolver, listing, durations), nil
}
