// Package hunt finds the enemies, boxes and quests that drop a given item.
package hunt

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/droptable"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/quest"
)

// Options selects the boosts and quests of a search
type Options struct {
	RBRActive          bool
	RBRList            []string
	WeeklyBoost        domain.WeeklyBoost
	Event              domain.EventType
	QuestNames         []string
	ExcludeEventQuests bool
}

// Finder searches one drop table and quest list
type Finder struct {
	resolver *droptable.Resolver
	aliases  *droptable.Aliases
	quests   []domain.Quest
}

// NewFinder creates a Finder over a copy of quests
func NewFinder(resolver *droptable.Resolver, quests []domain.Quest) *Finder {
	own := make([]domain.Quest, len(quests))
	for i, q := range quests {
		own[i] = q.Clone()
	}
	return &Finder{resolver: resolver, aliases: resolver.Aliases(), quests: own}
}

// target is the item being hunted
type target struct {
	name      string
	technique string
}

func (t target) isTechnique() bool {
	return t.technique != ""
}

// FindSources lists every enemy, box and quest run that can drop item, each list
// sorted by chance, best first
func (f *Finder) FindSources(ctx context.Context, item string, opts Options) (*Sources, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}

	t := target{name: item}
	t.technique, _ = droptable.ParseTechnique(item)

	quests := quest.FilterQuests(f.quests, quest.RankOptions{
		QuestNames:         opts.QuestNames,
		ExcludeEventQuests: opts.ExcludeEventQuests,
	})

	out := &Sources{Item: item, Technique: t.technique}
	if t.isTechnique() {
		out.Enemies = f.techniqueEnemies(quests, t, opts)
		out.Boxes = f.techniqueBoxes(quests, t)
	} else {
		out.Enemies = f.enemies(t, opts)
		out.Boxes = f.boxes(t)
	}

	questSources, err := f.questSources(ctx, quests, t, opts)
	if err != nil {
		return nil, err
	}
	out.Quests = questSources

	logger.FromContext(ctx).Debug("Item sources found",
		"item", item,
		"enemies", len(out.Enemies),
		"boxes", len(out.Boxes),
		"quests", len(out.Quests))
	return out, nil
}

// globalModifiers applies RBR when it is active anywhere, for listings that are not
// tied to one quest
func globalModifiers(opts Options) quest.Modifiers {
	rbr := opts.RBRActive || len(opts.RBRList) > 0
	return quest.NewModifiers(&domain.Quest{IsInRBRRotation: true}, rbr, opts.WeeklyBoost, opts.Event)
}

func (f *Finder) enemies(t target, opts Options) []EnemySource {
	m := globalModifiers(opts)
	table := f.resolver.Table()

	var out []EnemySource
	for _, ep := range table.Episodes() {
		for _, name := range table.EnemyNames(ep) {
			enemy, _ := table.Enemy(ep, name)
			for _, id := range domain.AllSectionIDs {
				drop, ok := enemy.DropFor(string(id))
				if !ok || !itemMatches(drop.Item, t.name) {
					continue
				}
				adjustedDAR := m.AdjustDAR(enemy.DAR)
				adjustedRDR := m.AdjustRDR(drop.RDR)
				out = append(out, EnemySource{
					Enemy:       name,
					Episode:     ep,
					SectionID:   string(id),
					DAR:         enemy.DAR,
					AdjustedDAR: adjustedDAR,
					RDR:         drop.RDR,
					AdjustedRDR: adjustedRDR,
					DropRate:    adjustedDAR * adjustedRDR,
					Item:        drop.Item,
				})
			}
		}
	}
	sortByRate(out, func(s EnemySource) float64 { return s.DropRate })
	return out
}

func (f *Finder) techniqueEnemies(quests []domain.Quest, t target, opts Options) []EnemySource {
	m := globalModifiers(opts)
	rate := quest.TechniqueRate(opts.Event)
	item := droptable.TechniqueItem(t.technique)

	type key struct {
		enemy string
		ep    domain.Episode
		area  string
	}
	seen := map[key]bool{}

	var out []EnemySource
	for _, q := range quests {
		for _, area := range q.Areas {
			if !droptable.IsTechniqueArea(area.Name, t.technique) {
				continue
			}
			enemies := area.Enemies
			if len(enemies) == 0 {
				enemies = q.Enemies
			}
			for _, name := range slices.Sorted(maps.Keys(f.aliases.NormalizeCounts(enemies))) {
				k := key{name, q.Episode, area.Name}
				if seen[k] {
					continue
				}
				_, enemy, ok := f.resolver.FindEnemy(name, q.Episode)
				if !ok {
					continue
				}
				seen[k] = true
				adjustedDAR := m.AdjustDAR(enemy.DAR)
				out = append(out, EnemySource{
					Enemy:       name,
					Episode:     q.Episode,
					Area:        area.Name,
					DAR:         enemy.DAR,
					AdjustedDAR: adjustedDAR,
					DropRate:    adjustedDAR * rate,
					Item:        item,
				})
			}
		}
	}
	sortByRate(out, func(s EnemySource) float64 { return s.DropRate })
	return out
}

func (f *Finder) boxes(t target) []BoxSource {
	table := f.resolver.Table()

	var out []BoxSource
	for _, ep := range table.Episodes() {
		for _, area := range table.BoxAreaNames(ep) {
			boxArea, _ := table.BoxArea(ep, area)
			for _, id := range domain.AllSectionIDs {
				for _, bi := range boxArea.SectionIDs[string(id)] {
					if !itemMatches(bi.Item, t.name) {
						continue
					}
					out = append(out, BoxSource{Area: area, Episode: ep, SectionID: string(id), DropRate: bi.Rate, Item: bi.Item})
					// one entry per area and section ID
					break
				}
			}
		}
	}
	sortByRate(out, func(s BoxSource) float64 { return s.DropRate })
	return out
}

func (f *Finder) techniqueBoxes(quests []domain.Quest, t target) []BoxSource {
	table := f.resolver.Table()
	item := droptable.TechniqueItem(t.technique)

	type key struct {
		area string
		ep   domain.Episode
	}
	seen := map[key]bool{}

	var out []BoxSource
	for _, q := range quests {
		for _, area := range q.Areas {
			if area.Boxes[quest.BoxTypeRegular] == 0 || !droptable.IsTechniqueArea(area.Name, t.technique) {
				continue
			}
			k := key{area.Name, q.Episode}
			if seen[k] {
				continue
			}
			mapped, err := droptable.MapQuestArea(area.Name)
			if err != nil {
				continue
			}
			if _, ok := table.BoxArea(q.Episode, mapped); !ok {
				continue
			}
			seen[k] = true
			out = append(out, BoxSource{Area: area.Name, Episode: q.Episode, DropRate: quest.BoxTechniqueRate(), Item: item})
		}
	}
	sortByRate(out, func(s BoxSource) float64 { return s.DropRate })
	return out
}

func sortByRate[T any](s []T, rate func(T) float64) {
	slices.SortStableFunc(s, func(a, b T) int {
		return cmp.Compare(rate(b), rate(a))
	})
}

// itemMatches compares case-insensitively, accepting containment either way and
// names that differ only in a parenthesized suffix
func itemMatches(item, target string) bool {
	i := domain.FoldName(item)
	t := domain.FoldName(target)
	if i == "" || t == "" {
		return false
	}
	if i == t || strings.Contains(i, t) || strings.Contains(t, i) {
		return true
	}
	before := func(s string) string {
		head, _, _ := strings.Cut(s, "(")
		return strings.TrimSpace(head)
	}
	return before(i) == before(t)
}
