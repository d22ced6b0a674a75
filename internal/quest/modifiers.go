package quest

import (
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Modifiers is the multiplier state for one quest calculation
type Modifiers struct {
	DAR       float64 `json:"dar_multiplier"`
	RDR       float64 `json:"rdr_multiplier"`
	RareEnemy float64 `json:"rare_enemy_multiplier"`

	RareEnemyRate float64 `json:"rare_enemy_rate"`
	KondrieuRate  float64 `json:"kondrieu_rate"`
}

// NewModifiers composes the boosts that apply to quest. rbrActive means the rare
// boost rotation is active for this quest; it only applies to rotation quests.
func NewModifiers(quest *domain.Quest, rbrActive bool, weekly domain.WeeklyBoost, event domain.EventType) Modifiers {
	m := Modifiers{DAR: 1, RDR: 1, RareEnemy: 1}

	if quest.IsHallow() {
		m.DAR = 1 + HallowDARBoost
		m.RDR = 1 + HallowRDRBoost
		m.RareEnemy = 1 + HallowRareEnemyBoost
	} else {
		if quest.IsInRBRRotation && rbrActive {
			m.DAR *= 1 + RBRDARBoost
			m.RDR *= 1 + RBRRDRBoost
			m.RareEnemy *= 1 + RBRRareEnemyBoost
		}

		factor := 1.0
		if event == domain.EventChristmas {
			factor = ChristmasWeeklyBoostFactor
		}
		switch weekly {
		case domain.WeeklyBoostDAR:
			m.DAR *= 1 + WeeklyDARBoost*factor
		case domain.WeeklyBoostRDR:
			m.RDR *= 1 + WeeklyRDRBoost*factor
		case domain.WeeklyBoostRareEnemy:
			m.RareEnemy *= 1 + WeeklyRareEnemyBoost*factor
		}
	}

	m.RareEnemyRate = min(BaseRareEnemyRate*m.RareEnemy, MaxRareEnemyRate)
	m.KondrieuRate = min(BaseKondrieuRate*m.RareEnemy, MaxKondrieuRate)
	return m
}

// AdjustDAR applies the DAR multiplier, capped at 1
func (m Modifiers) AdjustDAR(dar float64) float64 {
	return min(dar*m.DAR, 1.0)
}

// AdjustRDR applies the RDR multiplier
func (m Modifiers) AdjustRDR(rdr float64) float64 {
	return rdr * m.RDR
}

// SplitCount divides count kills between the normal form and its rare variant.
// Fixed-rate variants (Kondrieu) use their own rate.
func (m Modifiers) SplitCount(count float64, fixedRate bool) (normal, rare float64) {
	rate := m.RareEnemyRate
	if fixedRate {
		rate = m.KondrieuRate
	}
	return count * (1 - rate), count * rate
}

// TechniqueRate is the chance that a drop, once DAR has succeeded, is one specific
// level 30 technique
func TechniqueRate(event domain.EventType) float64 {
	eventRate := 0.0
	switch event {
	case domain.EventEaster, domain.EventAnniversary, domain.EventHalloween, domain.EventChristmas:
		eventRate = EventItemRate
	}
	return (1 - eventRate) * (1 - MusicDiskDropRate) * ToolDropRate * TechniqueDiskRate * SpecificTechniqueRate * Level30Rate
}

// BoxTechniqueRate is the chance a regular box drops one specific level 30 technique
func BoxTechniqueRate() float64 {
	return BoxToolRate * TechniqueDiskRate * SpecificTechniqueRate * Level30Rate
}
