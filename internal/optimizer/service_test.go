package optimizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/droptable"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/hunt"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/itemvalue"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/metrics"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/quest"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/testing/leaktest"
)

const (
	testWeapons = `{"Bamboo Spear": {"base": "20-40"}}`
	testTools   = `{"Photon Sphere": {"base": "3"}}`

	testDropTable = `{
  "episode1": {
    "enemies": {
      "Bartle": {"dar": 0.3, "section_ids": {"Viridia": {"item": "Bamboo Spear", "rdr": 0.01}}}
    }
  }
}`

	testQuests = `[
  {"quest_name": "MU1", "episode": 1, "enemies": {"Booma": 10},
   "quest_completion_items": {"Photon Sphere": 1}, "is_in_rbr_rotation": true},
  {"quest_name": "PW4", "episode": 2, "enemies": {"Mystery Beast": 5}},
  {"quest_name": "BROKEN", "episode": 1, "enemies": {"Booma": 1},
   "quest_completion_items": {"Unknown Relic": 1}}
]`

	testQuestTimes = `{"MU1": 2}`
)

// MU1 for Viridia at minimum prices: 10*.3*.01*20 + 10*.3/375 + 3
const mu1ViridiaTotal = 0.6 + 0.008 + 3.0

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	priceDir := filepath.Join(dir, "price_guide")
	require.NoError(t, os.Mkdir(priceDir, 0755))
	writeFile(t, priceDir, pricing.FileWeapons, testWeapons)
	writeFile(t, priceDir, pricing.FileTools, testTools)

	return Config{
		PriceGuideDir:  priceDir,
		DropTablePath:  writeFile(t, dir, "drop_tables_ultimate.json", testDropTable),
		QuestsPath:     writeFile(t, dir, "quests.json", testQuests),
		QuestTimesPath: writeFile(t, dir, "quest_times.json", testQuestTimes),
		Pricing:        pricing.DefaultOptions(),
		Cache:          itemvalue.DefaultCacheConfig(),
	}
}

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := Load(context.Background(), testConfig(t))
	require.NoError(t, err)
	return svc
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"missing price guide", func(c *Config) { c.PriceGuideDir = filepath.Join(t.TempDir(), "none") }, "price guide"},
		{"missing drop table", func(c *Config) { c.DropTablePath = filepath.Join(t.TempDir(), "none.json") }, "drop table"},
		{"missing quests", func(c *Config) { c.QuestsPath = filepath.Join(t.TempDir(), "none.json") }, "quests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			_, err := Load(context.Background(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_QuestTimesOptional(t *testing.T) {
	cfg := testConfig(t)
	cfg.QuestTimesPath = filepath.Join(t.TempDir(), "missing.yaml")

	svc, err := Load(context.Background(), cfg)
	require.NoError(t, err)
	for _, q := range svc.Quests(context.Background(), 0) {
		assert.Nil(t, q.DurationMinutes)
	}

	cfg.QuestTimesPath = ""
	_, err = Load(context.Background(), cfg)
	require.NoError(t, err)
}

func TestComputeItemValue(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		strategy pricing.Strategy
		want     float64
		wantUsed pricing.Strategy
	}{
		{"catalog default", "", 20, pricing.StrategyMinimum},
		{"average", pricing.StrategyAverage, 30, pricing.StrategyAverage},
		{"maximum", pricing.StrategyMaximum, 40, pricing.StrategyMaximum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ComputeItemValue(ctx, "bamboo spear", "", tt.strategy)
			require.NoError(t, err)
			assert.Equal(t, domain.CategoryWeapon, got.Category)
			assert.InDelta(t, tt.want, got.Value, 1e-9)
			assert.Equal(t, tt.wantUsed, got.Strategy)
		})
	}
}

func TestComputeItemValue_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ComputeItemValue(ctx, "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	errorsBefore := testutil.ToFloat64(metrics.CalculationsTotal.WithLabelValues(metrics.OperationItemValue, metrics.OutcomeError))
	_, err = svc.ComputeItemValue(ctx, "Unknown Relic", "", "")
	assert.ErrorIs(t, err, domain.ErrItemNotClassifiable)
	assert.Equal(t, errorsBefore+1,
		testutil.ToFloat64(metrics.CalculationsTotal.WithLabelValues(metrics.OperationItemValue, metrics.OutcomeError)))
}

func TestItemBreakdown(t *testing.T) {
	svc := newTestService(t)

	b, err := svc.ItemBreakdown(context.Background(), "Bamboo Spear", "Forest 1", "")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWeapon, b.Category)
	assert.NotNil(t, b.Weapon)

	b, err = svc.ItemBreakdown(context.Background(), "Photon Sphere", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryTool, b.Category)
	assert.Nil(t, b.Weapon)
	assert.Nil(t, b.Armor)
}

func TestComputeQuestValue(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, err := svc.ComputeQuestValue(ctx, "mu1", "viridia", quest.Options{}, "")
	require.NoError(t, err)
	assert.Equal(t, "MU1", r.QuestName)
	assert.Equal(t, string(domain.SectionViridia), r.SectionID)
	assert.InDelta(t, mu1ViridiaTotal, r.TotalPD, 1e-9)

	r, err = svc.ComputeQuestValue(ctx, "MU1", "Viridia", quest.Options{}, pricing.StrategyMaximum)
	require.NoError(t, err)
	assert.InDelta(t, 1.2+0.008+3.0, r.TotalPD, 1e-9)

	r, err = svc.ComputeQuestValue(ctx, "MU1", "Skyly", quest.Options{}, "")
	require.NoError(t, err)
	assert.InDelta(t, 0.008+3.0, r.TotalPD, 1e-9)
}

func TestComputeQuestValue_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ComputeQuestValue(ctx, "Nope", "Viridia", quest.Options{}, "")
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)

	_, err = svc.ComputeQuestValue(ctx, "MU1", "Mauve", quest.Options{}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ComputeQuestValue(ctx, "BROKEN", "Viridia", quest.Options{}, "")
	assert.ErrorIs(t, err, domain.ErrItemNotClassifiable)
}

func TestRankQuests(t *testing.T) {
	svc := newTestService(t)

	skippedBefore := testutil.ToFloat64(metrics.QuestsSkipped)
	ranked, err := svc.RankQuests(context.Background(), quest.RankOptions{SectionID: "Viridia"}, "")
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.QuestsSkipped)-skippedBefore)

	top := ranked[0]
	assert.Equal(t, "MU1", top.QuestName)
	require.NotNil(t, top.DurationMinutes)
	assert.Equal(t, 2.0, *top.DurationMinutes)
	require.NotNil(t, top.PDPerMinute)
	assert.InDelta(t, mu1ViridiaTotal/2, *top.PDPerMinute, 1e-9)

	assert.Equal(t, "PW4", ranked[1].QuestName)
	assert.Nil(t, ranked[1].PDPerMinute)
}

func TestRankQuests_AllSectionsAndTopN(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	skippedBefore := testutil.ToFloat64(metrics.QuestsSkipped)
	ranked, err := svc.RankQuests(ctx, quest.RankOptions{SectionID: domain.SectionAll}, "")
	require.NoError(t, err)
	assert.Len(t, ranked, 2*len(domain.AllSectionIDs))
	assert.Equal(t, float64(len(domain.AllSectionIDs)), testutil.ToFloat64(metrics.QuestsSkipped)-skippedBefore)

	ranked, err = svc.RankQuests(ctx, quest.RankOptions{TopN: 3}, "")
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
	assert.Equal(t, "MU1", ranked[0].QuestName)
	assert.Equal(t, string(domain.SectionViridia), ranked[0].SectionID)
}

func TestRankQuests_JoinsSectionWorkers(t *testing.T) {
	svc := newTestService(t)

	leaktest.CheckNoGoroutineLeak(t, func() {
		_, err := svc.RankQuests(context.Background(), quest.RankOptions{SectionID: domain.SectionAll}, "")
		require.NoError(t, err)
	})

	leaktest.CheckNoGoroutineLeak(t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _ = svc.RankQuests(ctx, quest.RankOptions{SectionID: domain.SectionAll}, "")
	})
}

func TestRankQuests_ExplicitDurationsWin(t *testing.T) {
	svc := newTestService(t)

	ranked, err := svc.RankQuests(context.Background(), quest.RankOptions{
		SectionID: "Viridia",
		Durations: quest.Durations{"MU1": 4},
	}, "")
	require.NoError(t, err)
	require.NotNil(t, ranked[0].DurationMinutes)
	assert.Equal(t, 4.0, *ranked[0].DurationMinutes)
}

func TestRankQuests_InvalidSection(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RankQuests(context.Background(), quest.RankOptions{SectionID: "Mauve"}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFindSourcesForItem(t *testing.T) {
	svc := newTestService(t)

	sources, err := svc.FindSourcesForItem(context.Background(), "Bamboo Spear", hunt.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, sources.Enemies)
	assert.Equal(t, "Bartle", sources.Enemies[0].Enemy)
	assert.Equal(t, "Viridia", sources.Enemies[0].SectionID)

	var questNames []string
	for _, q := range sources.Quests {
		questNames = append(questNames, q.QuestName)
	}
	assert.Contains(t, questNames, "MU1")
	assert.Contains(t, questNames, "BROKEN")
	assert.NotContains(t, questNames, "PW4")

	_, err = svc.FindSourcesForItem(context.Background(), " ", hunt.Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuests(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all := svc.Quests(ctx, 0)
	assert.Len(t, all, 3)

	ep1 := svc.Quests(ctx, domain.Episode(1))
	require.Len(t, ep1, 2)
	assert.Equal(t, "MU1", ep1[0].QuestName)
	assert.True(t, ep1[0].IsInRBRRotation)
	require.NotNil(t, ep1[0].DurationMinutes)
	assert.Equal(t, 2.0, *ep1[0].DurationMinutes)
	assert.Nil(t, ep1[1].DurationMinutes)
}

func TestCacheStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ComputeItemValue(ctx, "Bamboo Spear", "", "")
	require.NoError(t, err)
	_, err = svc.ComputeItemValue(ctx, "Bamboo Spear", "", "")
	require.NoError(t, err)

	stats := svc.CacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCheckHealth(t *testing.T) {
	svc := newTestService(t)
	assert.NoError(t, svc.CheckHealth(context.Background()))

	table, err := droptable.NewTable(nil)
	require.NoError(t, err)
	empty := NewService(nil, droptable.NewResolver(table, nil), quest.NewListing(nil), nil)
	assert.Error(t, empty.CheckHealth(context.Background()))
}
