package quest

import (
	"cmp"
	"maps"
	"slices"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Result is the itemized expected value of one quest run for one section ID
type Result struct {
	QuestName   string             `json:"quest_name"`
	LongName    string             `json:"long_name,omitempty"`
	Episode     domain.Episode     `json:"episode"`
	SectionID   string             `json:"section_id"`
	RBRActive   bool               `json:"rbr_active"`
	WeeklyBoost domain.WeeklyBoost `json:"weekly_boost,omitempty"`
	Event       domain.EventType   `json:"event,omitempty"`
	Modifiers   Modifiers          `json:"modifiers"`

	TotalPD           float64 `json:"total_pd"`
	EnemyPD           float64 `json:"enemy_pd"`
	BoxPD             float64 `json:"box_pd"`
	CompletionItemsPD float64 `json:"completion_items_pd"`
	EventDropsPD      float64 `json:"event_drops_pd"`
	// TotalPDDrops is the expected number of Photon Drops, each worth 1 PD
	TotalPDDrops float64 `json:"total_pd_drops"`
	TotalEnemies float64 `json:"total_enemies"`

	Enemies         map[string]*EnemyRow         `json:"enemy_breakdown"`
	PDDrops         map[string]*PDDropRow        `json:"pd_drop_breakdown"`
	Boxes           map[string]*BoxRow           `json:"box_breakdown"`
	CompletionItems map[string]CompletionItemRow `json:"completion_items_breakdown"`
	EventDrops      map[string]EventDropRow      `json:"event_drops_breakdown"`
}

func newResult(q *domain.Quest, sectionID string, opts Options, m Modifiers) *Result {
	return &Result{
		QuestName:       q.QuestName,
		LongName:        q.LongName,
		Episode:         q.Episode,
		SectionID:       sectionID,
		RBRActive:       opts.RBRActive,
		WeeklyBoost:     opts.WeeklyBoost,
		Event:           opts.Event,
		Modifiers:       m,
		Enemies:         map[string]*EnemyRow{},
		PDDrops:         map[string]*PDDropRow{},
		Boxes:           map[string]*BoxRow{},
		CompletionItems: map[string]CompletionItemRow{},
		EventDrops:      map[string]EventDropRow{},
	}
}

// EnemyRow is one enemy's (or one technique's) share of the quest value. Rows with
// Error set contributed nothing.
type EnemyRow struct {
	Count         float64 `json:"count"`
	DAR           float64 `json:"dar,omitempty"`
	AdjustedDAR   float64 `json:"adjusted_dar,omitempty"`
	RDR           float64 `json:"rdr,omitempty"`
	AdjustedRDR   float64 `json:"adjusted_rdr,omitempty"`
	Item          string  `json:"item,omitempty"`
	ItemPrice     float64 `json:"item_price_pd,omitempty"`
	DropRate      float64 `json:"drop_rate,omitempty"`
	ExpectedDrops float64 `json:"expected_drops"`
	PDValue       float64 `json:"pd_value"`
	Area          string  `json:"area,omitempty"`
	Technique     bool    `json:"technique,omitempty"`
	NotFound      bool    `json:"not_found,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// PDDropRow is one enemy's expected Photon Drops
type PDDropRow struct {
	Count           float64 `json:"count"`
	DAR             float64 `json:"dar"`
	AdjustedDAR     float64 `json:"adjusted_dar"`
	PDDropRate      float64 `json:"pd_drop_rate"`
	ExpectedPDDrops float64 `json:"expected_pd_drops"`
}

// BoxRow is one box item's share of the quest value
type BoxRow struct {
	BoxCount      int     `json:"box_count"`
	DropRate      float64 `json:"drop_rate"`
	ExpectedDrops float64 `json:"expected_drops"`
	ItemPrice     float64 `json:"item_price_pd"`
	PDValue       float64 `json:"pd_value"`
	Area          string  `json:"area,omitempty"`
	Technique     bool    `json:"technique,omitempty"`
}

// CompletionItemRow is one quest reward
type CompletionItemRow struct {
	Quantity  int     `json:"quantity"`
	ItemPrice float64 `json:"item_price_pd"`
	TotalPD   float64 `json:"total_pd"`
}

// EventDropRow is one seasonal event item
type EventDropRow struct {
	DropRate      float64 `json:"drop_rate"`
	ExpectedDrops float64 `json:"expected_drops"`
	ItemPrice     float64 `json:"item_price_pd"`
	PDValue       float64 `json:"pd_value"`
	HallowQuest   bool    `json:"is_halloween_quest,omitempty"`
}

// addEnemy merges row into the breakdown under key. Repeated keys (the same enemy
// in several areas, or a technique dropped by several enemies) accumulate.
func (r *Result) addEnemy(key string, row EnemyRow) {
	if existing, ok := r.Enemies[key]; ok {
		existing.Count += row.Count
		existing.ExpectedDrops += row.ExpectedDrops
		existing.PDValue += row.PDValue
		return
	}
	r.Enemies[key] = &row
}

func (r *Result) addPDDrop(key string, row PDDropRow) {
	if existing, ok := r.PDDrops[key]; ok {
		existing.Count += row.Count
		existing.ExpectedPDDrops += row.ExpectedPDDrops
		return
	}
	r.PDDrops[key] = &row
}

func (r *Result) addBox(key string, row BoxRow) {
	if existing, ok := r.Boxes[key]; ok {
		existing.BoxCount += row.BoxCount
		existing.ExpectedDrops += row.ExpectedDrops
		existing.PDValue += row.PDValue
		return
	}
	r.Boxes[key] = &row
}

// ItemValue is an item's summed contribution across enemies
type ItemValue struct {
	Item    string   `json:"item"`
	PDValue float64  `json:"pd_value"`
	Enemies []string `json:"enemies"`
}

// TopItems groups enemy rows by dropped item and returns the n most valuable.
// Rows carrying an error are skipped.
func (r *Result) TopItems(n int) []ItemValue {
	byItem := map[string]*ItemValue{}
	for _, enemy := range slices.Sorted(maps.Keys(r.Enemies)) {
		row := r.Enemies[enemy]
		if row.Error != "" {
			continue
		}
		item := row.Item
		if item == "" {
			item = enemy
		}
		iv, ok := byItem[item]
		if !ok {
			iv = &ItemValue{Item: item}
			byItem[item] = iv
		}
		iv.PDValue += row.PDValue
		if !slices.Contains(iv.Enemies, enemy) {
			iv.Enemies = append(iv.Enemies, enemy)
		}
	}

	out := make([]ItemValue, 0, len(byItem))
	for _, iv := range byItem {
		out = append(out, *iv)
	}
	slices.SortFunc(out, func(a, b ItemValue) int {
		if c := cmp.Compare(b.PDValue, a.PDValue); c != 0 {
			return c
		}
		return cmp.Compare(a.Item, b.Item)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
