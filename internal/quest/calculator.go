// Package quest computes the expected value of quest runs and ranks quests by it.
package quest

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/droptable"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
)

// ItemValuer prices dropped items
type ItemValuer interface {
	// Value returns the expected value of an item; area only affects weapons
	Value(name, area string) (float64, error)
	// DiskValue prices a technique disk at a level
	DiskValue(name string, level int) (float64, error)
}

// Options selects the boosts active for a calculation
type Options struct {
	RBRActive   bool
	WeeklyBoost domain.WeeklyBoost
	Event       domain.EventType
}

// Calculator computes quest values against one drop table and one price source
type Calculator struct {
	valuer   ItemValuer
	resolver *droptable.Resolver
	aliases  *droptable.Aliases
}

// NewCalculator creates a Calculator
func NewCalculator(valuer ItemValuer, resolver *droptable.Resolver) *Calculator {
	return &Calculator{valuer: valuer, resolver: resolver, aliases: resolver.Aliases()}
}

// Compute returns the expected value of one run of quest for sectionID. Enemies
// missing from the drop table are reported in the breakdown and contribute nothing.
// Items no price catalog knows are an error.
func (c *Calculator) Compute(ctx context.Context, q *domain.Quest, sectionID string, opts Options) (*Result, error) {
	m := NewModifiers(q, opts.RBRActive, opts.WeeklyBoost, opts.Event)
	r := newResult(q, sectionID, opts, m)
	run := &run{Calculator: c, ctx: ctx, quest: q, sectionID: sectionID, opts: opts, mods: m, result: r}

	var err error
	switch {
	case len(q.Areas) == 0:
		err = run.enemies(q.Enemies, "")
	case q.HasAreaEnemies():
		for _, area := range q.Areas {
			if len(area.Enemies) == 0 {
				continue
			}
			if err = run.enemies(area.Enemies, area.Name); err != nil {
				break
			}
		}
	default:
		// quest-level counts, with the first area as context for techniques
		err = run.enemies(q.Enemies, q.Areas[0].Name)
	}
	if err != nil {
		return nil, err
	}

	for _, area := range q.Areas {
		if err := run.boxes(area); err != nil {
			return nil, err
		}
	}

	if err := run.completionItems(); err != nil {
		return nil, err
	}

	r.TotalPD = r.EnemyPD + r.BoxPD + r.CompletionItemsPD + r.TotalPDDrops
	run.eventDrops()
	r.TotalPD += r.EventDropsPD

	logger.FromContext(ctx).Debug("Quest value computed",
		"quest", q.QuestName,
		"section_id", sectionID,
		"total_pd", r.TotalPD)
	return r, nil
}

// ComputeAllSectionIDs computes the quest once per section ID
func (c *Calculator) ComputeAllSectionIDs(ctx context.Context, q *domain.Quest, opts Options) (map[domain.SectionID]*Result, error) {
	out := make(map[domain.SectionID]*Result, len(domain.AllSectionIDs))
	for _, id := range domain.AllSectionIDs {
		r, err := c.Compute(ctx, q, string(id), opts)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", id, err)
		}
		out[id] = r
	}
	return out, nil
}

// run carries the state of one Compute call
type run struct {
	*Calculator
	ctx       context.Context
	quest     *domain.Quest
	sectionID string
	opts      Options
	mods      Modifiers
	result    *Result
}

func (r *run) enemies(enemies map[string]float64, area string) error {
	ep := r.quest.Episode
	normalized := r.aliases.NormalizeCounts(enemies)

	for _, name := range slices.Sorted(maps.Keys(normalized)) {
		count := normalized[name]
		if r.aliases.IsSlime(name) {
			count *= r.aliases.SlimeSplit
		}
		r.result.TotalEnemies += count

		variant, ok := r.aliases.RareVariant(ep, name)
		if !ok {
			if err := r.enemy(name, count, area); err != nil {
				return err
			}
			continue
		}

		normal, rare := r.mods.SplitCount(count, r.aliases.IsFixedRateVariant(variant))
		if err := r.enemy(name, normal, area); err != nil {
			return err
		}
		if err := r.enemy(variant, rare, area); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) enemy(name string, count float64, area string) error {
	if r.aliases.HasNoDrops(name) {
		return nil
	}

	ep := r.quest.Episode
	_, enemy, ok := r.resolver.FindEnemy(name, ep)
	if !ok {
		logger.FromContext(r.ctx).Debug("Enemy not in drop table", "enemy", name, "episode", int(ep))
		r.result.addEnemy(name, EnemyRow{
			Count:    count,
			NotFound: true,
			Error:    fmt.Sprintf(MsgEnemyNotFound, int(ep)),
		})
		return nil
	}

	adjustedDAR := r.mods.AdjustDAR(enemy.DAR)

	pdDrops := count * adjustedDAR * BasePDDropRate
	r.result.TotalPDDrops += pdDrops
	r.result.addPDDrop(name, PDDropRow{
		Count:           count,
		DAR:             enemy.DAR,
		AdjustedDAR:     adjustedDAR,
		PDDropRate:      BasePDDropRate,
		ExpectedPDDrops: pdDrops,
	})

	drop, hasDrop := enemy.DropFor(r.sectionID)
	switch {
	case !enemy.HasDrops():
		r.result.addEnemy(name, EnemyRow{Count: count, Error: MsgNoUltimateDrops})
	case !hasDrop:
		r.result.addEnemy(name, EnemyRow{Count: count, Error: fmt.Sprintf(MsgNoSectionDrops, r.sectionID)})
	default:
		dropArea := area
		if dropArea == "" {
			dropArea = r.aliases.InferDropArea(name, ep)
		}
		price, err := r.valuer.Value(drop.Item, dropArea)
		if err != nil {
			return err
		}

		adjustedRDR := r.mods.AdjustRDR(drop.RDR)
		expected := count * adjustedDAR * adjustedRDR
		row := EnemyRow{
			Count:         count,
			DAR:           enemy.DAR,
			AdjustedDAR:   adjustedDAR,
			RDR:           drop.RDR,
			AdjustedRDR:   adjustedRDR,
			Item:          drop.Item,
			ItemPrice:     price,
			ExpectedDrops: expected,
			PDValue:       expected * price,
		}
		r.result.EnemyPD += row.PDValue
		r.result.addEnemy(name, row)
	}

	return r.enemyTechniques(count, enemy.DAR, adjustedDAR, area)
}

// enemyTechniques adds level 30 technique drops; only known areas qualify
func (r *run) enemyTechniques(count, dar, adjustedDAR float64, area string) error {
	for _, tech := range droptable.TechniquesForArea(area) {
		price, err := r.valuer.DiskValue(tech, TechniqueLevel)
		if err != nil {
			return fmt.Errorf("technique %s: %w", droptable.TechniqueItem(tech), err)
		}

		rate := adjustedDAR * TechniqueRate(r.opts.Event)
		expected := count * rate
		item := droptable.TechniqueItem(tech)
		row := EnemyRow{
			Count:         count,
			DAR:           dar,
			AdjustedDAR:   adjustedDAR,
			Item:          item,
			ItemPrice:     price,
			DropRate:      rate,
			ExpectedDrops: expected,
			PDValue:       expected * price,
			Area:          area,
			Technique:     true,
		}
		r.result.EnemyPD += row.PDValue
		r.result.addEnemy(item, row)
	}
	return nil
}

// boxes adds the drops of regular boxes in one quest area. Box drops ignore every boost.
func (r *run) boxes(area domain.QuestArea) error {
	count := area.Boxes[BoxTypeRegular]
	if count == 0 {
		return nil
	}

	ep := r.quest.Episode
	mapped, err := droptable.MapQuestArea(area.Name)
	if err != nil {
		return err
	}

	table := r.resolver.Table()
	if !table.HasEpisode(ep) {
		return fmt.Errorf("%w: episode %d", domain.ErrDropTableNotFound, int(ep))
	}
	boxArea, ok := table.BoxArea(ep, mapped)
	if !ok {
		return fmt.Errorf("%w: no box drops for area %q in episode %d", domain.ErrDropTableNotFound, area.Name, int(ep))
	}
	items, ok := boxArea.SectionIDs[r.sectionID]
	if !ok {
		if noBoxDrops(ep, area.Name, r.sectionID) {
			return nil
		}
		return fmt.Errorf("%w: no box drops for section ID %q in area %q, episode %d",
			domain.ErrDropTableNotFound, r.sectionID, area.Name, int(ep))
	}

	rows := map[string]*BoxRow{}
	var order []string
	for _, item := range items {
		price, err := r.valuer.Value(item.Item, "")
		if err != nil {
			return err
		}
		expected := float64(count) * item.Rate
		value := expected * price
		r.result.BoxPD += value

		row, ok := rows[item.Item]
		if !ok {
			row = &BoxRow{BoxCount: count, DropRate: item.Rate, ItemPrice: price}
			rows[item.Item] = row
			order = append(order, item.Item)
		}
		row.ExpectedDrops += expected
		row.PDValue += value
	}

	for _, tech := range droptable.TechniquesForArea(area.Name) {
		price, err := r.valuer.DiskValue(tech, TechniqueLevel)
		if err != nil {
			return fmt.Errorf("technique %s: %w", droptable.TechniqueItem(tech), err)
		}
		rate := BoxTechniqueRate()
		expected := float64(count) * rate
		value := expected * price
		r.result.BoxPD += value

		item := droptable.TechniqueItem(tech)
		rows[item] = &BoxRow{
			BoxCount:      count,
			DropRate:      rate,
			ExpectedDrops: expected,
			ItemPrice:     price,
			PDValue:       value,
			Area:          area.Name,
			Technique:     true,
		}
		order = append(order, item)
	}

	for _, item := range order {
		r.result.addBox(item, *rows[item])
	}
	return nil
}

// noBoxDrops lists the areas where Yellowboze boxes drop no rares
func noBoxDrops(ep domain.Episode, area, sectionID string) bool {
	if sectionID != string(domain.SectionYellowboze) {
		return false
	}
	switch ep {
	case domain.Episode1:
		return area == "Forest 1" || area == "Cave 1"
	case domain.Episode2:
		return area == "VR Spaceship Beta"
	}
	return false
}

func (r *run) completionItems() error {
	for _, name := range slices.Sorted(maps.Keys(r.quest.CompletionItems)) {
		quantity := r.quest.CompletionItems[name]
		price, err := r.valuer.Value(name, "")
		if err != nil {
			return err
		}
		total := price * float64(quantity)
		r.result.CompletionItemsPD += total
		r.result.CompletionItems[name] = CompletionItemRow{
			Quantity:  quantity,
			ItemPrice: price,
			TotalPD:   total,
		}
	}
	return nil
}

// eventDrops adds the seasonal item of the active event. Every enemy can drop it at
// the boosted DAR multiplier. An unpriced event item is skipped.
func (r *run) eventDrops() {
	var item string
	var rate float64
	hallow := false

	switch r.opts.Event {
	case domain.EventChristmas:
		item, rate = ItemPresent, ChristmasPresentDropRate
	case domain.EventHalloween:
		item, rate = ItemHalloweenCookie, HalloweenCookieDropRate
		hallow = r.quest.IsHallow()
		if hallow {
			rate *= HallowQuestCookieMultiplier
		}
	case domain.EventEaster:
		item, rate = ItemEventEgg, EasterEggDropRate
	default:
		return
	}

	price, err := r.valuer.Value(item, "")
	if err != nil {
		logger.FromContext(r.ctx).Debug("Event item not priced, skipping", "item", item, "error", err)
		return
	}

	expected := r.result.TotalEnemies * r.mods.DAR * rate
	row := EventDropRow{
		DropRate:      rate,
		ExpectedDrops: expected,
		ItemPrice:     price,
		PDValue:       expected * price,
		HallowQuest:   hallow,
	}
	r.result.EventDropsPD += row.PDValue
	r.result.EventDrops[item] = row
}
