package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/hunt"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/itemvalue"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/optimizer"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/quest"
)

// MockService implements optimizer.Service for testing
type MockService struct {
	mock.Mock
}

var _ optimizer.Service = (*MockService)(nil)

func (m *MockService) ComputeItemValue(ctx context.Context, name, area string, strategy pricing.Strategy) (*optimizer.ItemValue, error) {
	args := m.Called(ctx, name, area, strategy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*optimizer.ItemValue), args.Error(1)
}

func (m *MockService) ItemBreakdown(ctx context.Context, name, area string, strategy pricing.Strategy) (*itemvalue.Breakdown, error) {
	args := m.Called(ctx, name, area, strategy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*itemvalue.Breakdown), args.Error(1)
}

func (m *MockService) ComputeQuestValue(ctx context.Context, questName, sectionID string, opts quest.Options, strategy pricing.Strategy) (*quest.Result, error) {
	args := m.Called(ctx, questName, sectionID, opts, strategy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.Result), args.Error(1)
}

func (m *MockService) RankQuests(ctx context.Context, opts quest.RankOptions, strategy pricing.Strategy) ([]quest.Ranked, error) {
	args := m.Called(ctx, opts, strategy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]quest.Ranked), args.Error(1)
}

func (m *MockService) FindSourcesForItem(ctx context.Context, item string, opts hunt.Options) (*hunt.Sources, error) {
	args := m.Called(ctx, item, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hunt.Sources), args.Error(1)
}

func (m *MockService) Quests(ctx context.Context, episode domain.Episode) []optimizer.QuestSummary {
	args := m.Called(ctx, episode)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]optimizer.QuestSummary)
}

func (m *MockService) CacheStats() itemvalue.CacheStats {
	args := m.Called()
	return args.Get(0).(itemvalue.CacheStats)
}

func (m *MockService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
