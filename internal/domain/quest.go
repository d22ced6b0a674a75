package domain

import (
	"maps"
	"strings"
)

// Quest is one repeatable quest definition as loaded from the quest list
type Quest struct {
	QuestName       string             `json:"quest_name"`
	LongName        string             `json:"long_name,omitempty"`
	Episode         Episode            `json:"episode"`
	Enemies         map[string]float64 `json:"enemies,omitempty"`
	Areas           []QuestArea        `json:"areas,omitempty"`
	CompletionItems map[string]int     `json:"quest_completion_items,omitempty"`
	IsInRBRRotation bool               `json:"is_in_rbr_rotation"`
	IsEventQuest    bool               `json:"is_event_quest"`
}

// QuestArea holds the per-area enemy and box counts of a quest
type QuestArea struct {
	Name    string             `json:"name"`
	Enemies map[string]float64 `json:"enemies,omitempty"`
	Boxes   map[string]int     `json:"boxes,omitempty"`
}

// IsHallow reports whether the quest is a Halloween variant, which carries its own boosts
func (q *Quest) IsHallow() bool {
	return strings.Contains(strings.ToUpper(q.QuestName), "HALLOW") ||
		strings.Contains(strings.ToUpper(q.LongName), "HALLOW")
}

// HasAreaEnemies reports whether enemies are tracked per area
func (q *Quest) HasAreaEnemies() bool {
	for _, a := range q.Areas {
		if len(a.Enemies) > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can filter or edit quest lists without sharing maps
func (q Quest) Clone() Quest {
	out := q
	out.Enemies = maps.Clone(q.Enemies)
	out.CompletionItems = maps.Clone(q.CompletionItems)
	if q.Areas != nil {
		out.Areas = make([]QuestArea, len(q.Areas))
		for i, a := range q.Areas {
			out.Areas[i] = QuestArea{
				Name:    a.Name,
				Enemies: maps.Clone(a.Enemies),
				Boxes:   maps.Clone(a.Boxes),
			}
		}
	}
	return out
}
