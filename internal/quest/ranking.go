package quest

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
)

// RankOptions selects which quests to rank and under which boosts
type RankOptions struct {
	// SectionID is a section ID name or domain.SectionAll
	SectionID string
	RBRActive bool
	// RBRList turns the rotation boost on for the named quests only
	RBRList     []string
	WeeklyBoost domain.WeeklyBoost
	Event       domain.EventType
	// Episode limits ranking to one episode; 0 ranks every episode
	Episode            domain.Episode
	QuestNames         []string
	ExcludeEventQuests bool
	Durations          Durations
	// TopN truncates the ranking; 0 keeps every result
	TopN int
}

// Ranked is one quest and section ID in a ranking
type Ranked struct {
	*Result
	DurationMinutes *float64    `json:"duration_minutes,omitempty"`
	PDPerMinute     *float64    `json:"pd_per_minute,omitempty"`
	TopItems        []ItemValue `json:"top_items"`
}

// sortValue is PD per minute when a clear time is known, else total PD
func (r *Ranked) sortValue() float64 {
	if r.PDPerMinute != nil {
		return *r.PDPerMinute
	}
	return r.TotalPD
}

// RBRActiveFor reports whether the rotation boost applies to a quest. A non-empty
// list names the boosted quests; otherwise active decides.
func RBRActiveFor(questName string, active bool, list []string) bool {
	if active {
		return true
	}
	for _, name := range list {
		if domain.SameName(name, questName) {
			return true
		}
	}
	return false
}

// FilterQuests returns copies of the quests that pass the ranking filters
func FilterQuests(quests []domain.Quest, opts RankOptions) []domain.Quest {
	var names map[string]bool
	if len(opts.QuestNames) > 0 {
		names = make(map[string]bool, len(opts.QuestNames))
		for _, n := range opts.QuestNames {
			names[domain.FoldName(n)] = true
		}
	}

	out := make([]domain.Quest, 0, len(quests))
	for _, q := range quests {
		if opts.Episode != 0 && q.Episode != opts.Episode {
			continue
		}
		if opts.ExcludeEventQuests && q.IsEventQuest {
			continue
		}
		if names != nil && !names[domain.FoldName(q.QuestName)] {
			continue
		}
		out = append(out, q.Clone())
	}
	return out
}

// RankQuests computes every selected quest for the requested section IDs and orders
// the results best first. Quests that fail to compute are logged and left out.
func (c *Calculator) RankQuests(ctx context.Context, quests []domain.Quest, opts RankOptions) ([]Ranked, error) {
	sections, err := rankSections(opts.SectionID)
	if err != nil {
		return nil, err
	}

	selected := FilterQuests(quests, opts)
	perSection := make([][]Ranked, len(sections))

	g, gctx := errgroup.WithContext(ctx)
	for i, sectionID := range sections {
		g.Go(func() error {
			ranked, err := c.rankSection(gctx, selected, string(sectionID), opts)
			if err != nil {
				return err
			}
			perSection[i] = ranked
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Ranked
	for _, ranked := range perSection {
		out = append(out, ranked...)
	}
	slices.SortStableFunc(out, func(a, b Ranked) int {
		return cmp.Compare(b.sortValue(), a.sortValue())
	})
	if opts.TopN > 0 && len(out) > opts.TopN {
		out = out[:opts.TopN]
	}
	return out, nil
}

func (c *Calculator) rankSection(ctx context.Context, quests []domain.Quest, sectionID string, opts RankOptions) ([]Ranked, error) {
	log := logger.FromContext(ctx)
	out := make([]Ranked, 0, len(quests))
	for i := range quests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q := &quests[i]
		r, err := c.Compute(ctx, q, sectionID, Options{
			RBRActive:   RBRActiveFor(q.QuestName, opts.RBRActive, opts.RBRList),
			WeeklyBoost: opts.WeeklyBoost,
			Event:       opts.Event,
		})
		if err != nil {
			log.Warn("Skipping quest that failed to compute",
				"quest", q.QuestName,
				"section_id", sectionID,
				"error", err)
			continue
		}

		ranked := Ranked{Result: r, TopItems: r.TopItems(TopItemsLimit)}
		if minutes, ok := opts.Durations.Minutes(q.QuestName); ok {
			perMinute := r.TotalPD / minutes
			ranked.DurationMinutes = &minutes
			ranked.PDPerMinute = &perMinute
		}
		out = append(out, ranked)
	}
	return out, nil
}

func rankSections(sectionID string) ([]domain.SectionID, error) {
	if sectionID == "" || strings.EqualFold(strings.TrimSpace(sectionID), domain.SectionAll) {
		return domain.AllSectionIDs, nil
	}
	id, err := domain.ParseSectionID(sectionID)
	if err != nil {
		return nil, fmt.Errorf("rank quests: %w", err)
	}
	return []domain.SectionID{id}, nil
}
