package hunt

import (
	"context"
	"maps"
	"slices"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/droptable"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/quest"
)

// questSources returns every quest and section ID with a non-zero chance of the item
func (f *Finder) questSources(ctx context.Context, quests []domain.Quest, t target, opts Options) ([]QuestSource, error) {
	var out []QuestSource
	for i := range quests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q := &quests[i]
		m := quest.NewModifiers(q, quest.RBRActiveFor(q.QuestName, opts.RBRActive, opts.RBRList), opts.WeeklyBoost, opts.Event)
		s := &questScan{Finder: f, quest: q, target: t, mods: m, event: opts.Event}

		for _, id := range domain.AllSectionIDs {
			contributions := s.scan(string(id))
			total := 0.0
			for _, c := range contributions {
				total += c.Probability
			}
			if total <= 0 {
				continue
			}
			out = append(out, QuestSource{
				QuestName:     q.QuestName,
				LongName:      q.LongName,
				Episode:       q.Episode,
				SectionID:     string(id),
				Probability:   total,
				Percentage:    total * 100,
				ExpectedRuns:  1 / total,
				RunsForTarget: RunsForProbability(total, TargetProbability),
				Contributions: contributions,
			})
		}
	}
	sortByRate(out, func(s QuestSource) float64 { return s.Probability })
	return out, nil
}

// questScan walks one quest for one target
type questScan struct {
	*Finder
	quest  *domain.Quest
	target target
	mods   quest.Modifiers
	event  domain.EventType
}

// scan lists the contributions of one section ID. Enemies are taken per area when
// areas list them, else from the quest with the first area (or each enemy's usual
// area) as context.
func (s *questScan) scan(sectionID string) []Contribution {
	var out []Contribution
	q := s.quest

	switch {
	case q.HasAreaEnemies():
		for _, area := range q.Areas {
			if len(area.Enemies) > 0 {
				out = s.enemies(out, area.Enemies, area.Name, sectionID)
			}
		}
	case len(q.Areas) > 0:
		out = s.enemies(out, q.Enemies, q.Areas[0].Name, sectionID)
	default:
		out = s.enemies(out, q.Enemies, "", sectionID)
	}

	for _, area := range q.Areas {
		out = s.boxes(out, area, sectionID)
	}
	return out
}

func (s *questScan) enemies(out []Contribution, enemies map[string]float64, area, sectionID string) []Contribution {
	ep := s.quest.Episode
	normalized := s.aliases.NormalizeCounts(enemies)

	for _, name := range slices.Sorted(maps.Keys(normalized)) {
		count := normalized[name]
		enemyArea := area
		if enemyArea == "" {
			enemyArea = s.aliases.InferDropArea(name, ep)
		}

		variant, ok := s.aliases.RareVariant(ep, name)
		if !ok {
			out = s.enemy(out, name, count, enemyArea, sectionID)
			continue
		}
		normal, rare := s.mods.SplitCount(count, s.aliases.IsFixedRateVariant(variant))
		out = s.enemy(out, name, normal, enemyArea, sectionID)
		out = s.enemy(out, variant, rare, enemyArea, sectionID)
	}
	return out
}

func (s *questScan) enemy(out []Contribution, name string, count float64, area, sectionID string) []Contribution {
	_, enemy, ok := s.resolver.FindEnemy(name, s.quest.Episode)
	if !ok {
		return out
	}
	adjustedDAR := s.mods.AdjustDAR(enemy.DAR)

	if s.target.isTechnique() {
		if !droptable.IsTechniqueArea(area, s.target.technique) {
			return out
		}
		rate := adjustedDAR * quest.TechniqueRate(s.event)
		return append(out, Contribution{
			Source:      SourceTechnique,
			Enemy:       name,
			Area:        area,
			Count:       count,
			DAR:         enemy.DAR,
			AdjustedDAR: adjustedDAR,
			DropRate:    rate,
			Probability: count * rate,
			Item:        droptable.TechniqueItem(s.target.technique),
		})
	}

	drop, ok := enemy.DropFor(sectionID)
	if !ok || !itemMatches(drop.Item, s.target.name) {
		return out
	}
	adjustedRDR := s.mods.AdjustRDR(drop.RDR)
	rate := adjustedDAR * adjustedRDR
	return append(out, Contribution{
		Source:      SourceEnemy,
		Enemy:       name,
		Area:        area,
		Count:       count,
		DAR:         enemy.DAR,
		AdjustedDAR: adjustedDAR,
		RDR:         drop.RDR,
		AdjustedRDR: adjustedRDR,
		DropRate:    rate,
		Probability: count * rate,
		Item:        drop.Item,
	})
}

func (s *questScan) boxes(out []Contribution, area domain.QuestArea, sectionID string) []Contribution {
	count := area.Boxes[quest.BoxTypeRegular]
	if count == 0 {
		return out
	}

	if s.target.isTechnique() {
		if !droptable.IsTechniqueArea(area.Name, s.target.technique) {
			return out
		}
		rate := quest.BoxTechniqueRate()
		return append(out, Contribution{
			Source:      SourceBox,
			Area:        area.Name,
			BoxCount:    count,
			DropRate:    rate,
			Probability: float64(count) * rate,
			Item:        droptable.TechniqueItem(s.target.technique),
		})
	}

	mapped, err := droptable.MapQuestArea(area.Name)
	if err != nil {
		return out
	}
	boxArea, ok := s.resolver.Table().BoxArea(s.quest.Episode, mapped)
	if !ok {
		return out
	}
	for _, bi := range boxArea.SectionIDs[sectionID] {
		if !itemMatches(bi.Item, s.target.name) {
			continue
		}
		out = append(out, Contribution{
			Source:      SourceBox,
			Area:        area.Name,
			BoxCount:    count,
			DropRate:    bi.Rate,
			Probability: float64(count) * bi.Rate,
			Item:        bi.Item,
		})
	}
	return out
}
