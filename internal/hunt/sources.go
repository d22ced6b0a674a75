package hunt

import (
	"math"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Sources lists everywhere an item can drop
type Sources struct {
	Item string `json:"item"`
	// Technique is set when the item is a level 30 technique
	Technique string        `json:"technique,omitempty"`
	Enemies   []EnemySource `json:"enemies"`
	Boxes     []BoxSource   `json:"boxes"`
	Quests    []QuestSource `json:"quests"`
}

// EnemySource is one enemy that drops the item. SectionID is empty for technique
// drops, which do not depend on it.
type EnemySource struct {
	Enemy       string         `json:"enemy"`
	Episode     domain.Episode `json:"episode"`
	SectionID   string         `json:"section_id,omitempty"`
	Area        string         `json:"area,omitempty"`
	DAR         float64        `json:"dar"`
	AdjustedDAR float64        `json:"adjusted_dar"`
	RDR         float64        `json:"rdr"`
	AdjustedRDR float64        `json:"adjusted_rdr"`
	DropRate    float64        `json:"drop_rate"`
	Item        string         `json:"item"`
}

// BoxSource is one area whose boxes drop the item. Box rates ignore every boost.
type BoxSource struct {
	Area      string         `json:"area"`
	Episode   domain.Episode `json:"episode"`
	SectionID string         `json:"section_id,omitempty"`
	DropRate  float64        `json:"drop_rate"`
	Item      string         `json:"item"`
}

// QuestSource is the chance of the item per run of one quest for one section ID
type QuestSource struct {
	QuestName     string         `json:"quest_name"`
	LongName      string         `json:"long_name,omitempty"`
	Episode       domain.Episode `json:"episode"`
	SectionID     string         `json:"section_id"`
	Probability   float64        `json:"probability"`
	Percentage    float64        `json:"percentage"`
	ExpectedRuns  float64        `json:"expected_runs"`
	RunsForTarget float64        `json:"runs_for_95_percent"`
	Contributions []Contribution `json:"contributions"`
}

// Contribution is one enemy kind or box group's share of a quest's probability
type Contribution struct {
	Source      string  `json:"source"`
	Enemy       string  `json:"enemy,omitempty"`
	Area        string  `json:"area,omitempty"`
	Count       float64 `json:"count,omitempty"`
	BoxCount    int     `json:"box_count,omitempty"`
	DAR         float64 `json:"dar,omitempty"`
	AdjustedDAR float64 `json:"adjusted_dar,omitempty"`
	RDR         float64 `json:"rdr,omitempty"`
	AdjustedRDR float64 `json:"adjusted_rdr,omitempty"`
	DropRate    float64 `json:"drop_rate,omitempty"`
	Probability float64 `json:"probability"`
	Item        string  `json:"item"`
}

// RunsForProbability returns how many attempts at rate p give at least one drop
// with the target probability. It is +Inf when p is 0.
func RunsForProbability(p, target float64) float64 {
	switch {
	case p <= 0 || target >= 1:
		return math.Inf(1)
	case p >= 1:
		return 1
	}
	return math.Log(1-target) / math.Log(1-p)
}
