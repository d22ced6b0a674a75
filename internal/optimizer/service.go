// Package optimizer exposes item valuation, quest ranking and item hunting over one
// loaded data set.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/droptable"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/hunt"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/itemvalue"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/metrics"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/quest"
)

// Service defines the operations offered over a loaded data set
type Service interface {
	ComputeItemValue(ctx context.Context, name, area string, strategy pricing.Strategy) (*ItemValue, error)
	ItemBreakdown(ctx context.Context, name, area string, strategy pricing.Strategy) (*itemvalue.Breakdown, error)
	ComputeQuestValue(ctx context.Context, questName, sectionID string, opts quest.Options, strategy pricing.Strategy) (*quest.Result, error)
	RankQuests(ctx context.Context, opts quest.RankOptions, strategy pricing.Strategy) ([]quest.Ranked, error)
	FindSourcesForItem(ctx context.Context, item string, opts hunt.Options) (*hunt.Sources, error)
	Quests(ctx context.Context, episode domain.Episode) []QuestSummary
	CacheStats() itemvalue.CacheStats
	CheckHealth(ctx context.Context) error
}

// ItemValue is the classified expected value of one item
type ItemValue struct {
	Item     string           `json:"item"`
	Category domain.Category  `json:"category"`
	Value    float64          `json:"value"`
	Strategy pricing.Strategy `json:"strategy"`
	Area     string           `json:"area,omitempty"`
}

// QuestSummary describes one quest of the listing
type QuestSummary struct {
	QuestName       string         `json:"quest_name"`
	LongName        string         `json:"long_name,omitempty"`
	Episode         domain.Episode `json:"episode"`
	IsInRBRRotation bool           `json:"is_in_rbr_rotation"`
	IsEventQuest    bool           `json:"is_event_quest"`
	DurationMinutes *float64       `json:"duration_minutes,omitempty"`
}

type service struct {
	router    *itemvalue.Router
	resolver  *droptable.Resolver
	finder    *hunt.Finder
	listing   *quest.Listing
	durations quest.Durations
}

// NewService creates a Service. The inputs must not be modified afterwards.
func NewService(router *itemvalue.Router, resolver *droptable.Resolver, listing *quest.Listing, durations quest.Durations) Service {
	if durations == nil {
		durations = quest.Durations{}
	}
	return &service{
		router:    router,
		resolver:  resolver,
		finder:    hunt.NewFinder(resolver, listing.All()),
		listing:   listing,
		durations: durations,
	}
}

// calculator prices quest drops with strategy, or the catalog default when empty
func (s *service) calculator(strategy pricing.Strategy) *quest.Calculator {
	return quest.NewCalculator(s.router.WithStrategy(strategy), s.resolver)
}

func (s *service) ComputeItemValue(ctx context.Context, name, area string, strategy pricing.Strategy) (result *ItemValue, err error) {
	defer func(start time.Time) { metrics.ObserveCalculation(metrics.OperationItemValue, start, err) }(time.Now())

	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}

	router := s.router.WithStrategy(strategy)
	category, value, err := router.ClassifyAndValue(name, area)
	if err != nil {
		logger.FromContext(ctx).Debug("Item value failed", "item", name, "error", err)
		return nil, err
	}
	return &ItemValue{
		Item:     name,
		Category: category,
		Value:    value,
		Strategy: router.Catalog().Strategy(),
		Area:     area,
	}, nil
}

func (s *service) ItemBreakdown(ctx context.Context, name, area string, strategy pricing.Strategy) (b *itemvalue.Breakdown, err error) {
	defer func(start time.Time) { metrics.ObserveCalculation(metrics.OperationItemBreakdown, start, err) }(time.Now())

	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	b, err = s.router.WithStrategy(strategy).Breakdown(name, area)
	if err != nil {
		logger.FromContext(ctx).Debug("Item breakdown failed", "item", name, "error", err)
		return nil, err
	}
	return b, nil
}

func (s *service) ComputeQuestValue(ctx context.Context, questName, sectionID string, opts quest.Options, strategy pricing.Strategy) (r *quest.Result, err error) {
	defer func(start time.Time) { metrics.ObserveCalculation(metrics.OperationQuestValue, start, err) }(time.Now())

	q, err := s.listing.Get(questName)
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseSectionID(sectionID)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("ComputeQuestValue called",
		"quest", q.QuestName,
		"section_id", id,
		"rbr_active", opts.RBRActive,
		"weekly_boost", opts.WeeklyBoost,
		"event", opts.Event)

	return s.calculator(strategy).Compute(ctx, &q, string(id), opts)
}

// RankQuests ranks the loaded quests. The loaded clear times are used when opts
// carries none.
func (s *service) RankQuests(ctx context.Context, opts quest.RankOptions, strategy pricing.Strategy) (ranked []quest.Ranked, err error) {
	defer func(start time.Time) { metrics.ObserveCalculation(metrics.OperationRankQuests, start, err) }(time.Now())

	if opts.Durations == nil {
		opts.Durations = s.durations
	}
	quests := s.listing.All()
	topN := opts.TopN
	opts.TopN = 0

	ranked, err = s.calculator(strategy).RankQuests(ctx, quests, opts)
	if err != nil {
		return nil, err
	}

	sections := len(domain.AllSectionIDs)
	if opts.SectionID != "" && !domain.SameName(opts.SectionID, domain.SectionAll) {
		sections = 1
	}
	if skipped := len(quest.FilterQuests(quests, opts))*sections - len(ranked); skipped > 0 {
		metrics.QuestsSkipped.Add(float64(skipped))
	}

	logger.FromContext(ctx).Info("Quests ranked",
		"section_id", opts.SectionID,
		"results", len(ranked))

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

func (s *service) FindSourcesForItem(ctx context.Context, item string, opts hunt.Options) (sources *hunt.Sources, err error) {
	defer func(start time.Time) { metrics.ObserveCalculation(metrics.OperationHunt, start, err) }(time.Now())

	sources, err = s.finder.FindSources(ctx, item, opts)
	if err != nil {
		return nil, err
	}
	metrics.HuntResults.Observe(float64(len(sources.Quests)))
	return sources, nil
}

// Quests lists the loaded quests of episode, or every quest when episode is 0
func (s *service) Quests(_ context.Context, episode domain.Episode) []QuestSummary {
	var quests []domain.Quest
	if episode == 0 {
		quests = s.listing.All()
	} else {
		quests = s.listing.ByEpisode(episode)
	}

	out := make([]QuestSummary, 0, len(quests))
	for _, q := range quests {
		summary := QuestSummary{
			QuestName:       q.QuestName,
			LongName:        q.LongName,
			Episode:         q.Episode,
			IsInRBRRotation: q.IsInRBRRotation,
			IsEventQuest:    q.IsEventQuest,
		}
		if minutes, ok := s.durations.Minutes(q.QuestName); ok {
			summary.DurationMinutes = &minutes
		}
		out = append(out, summary)
	}
	return out
}

func (s *service) CacheStats() itemvalue.CacheStats {
	return s.router.CacheStats()
}

// CheckHealth fails when no quests were loaded
func (s *service) CheckHealth(_ context.Context) error {
	if s.listing.Len() == 0 {
		return errors.New("no quests loaded")
	}
	return nil
}
