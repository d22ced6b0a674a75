package handler

import (
	"errors"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/hunt"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/quest"
)

// Boosts are the boost fields shared by every quest and hunt request
type Boosts struct {
	RBRActive   bool     `json:"rbr_active"`
	RBRList     []string `json:"rbr_list,omitempty" validate:"max=500,dive,required,max=100"`
	WeeklyBoost string   `json:"weekly_boost,omitempty" validate:"weekly_boost" example:"RDR"`
	Event       string   `json:"event,omitempty" validate:"event_type" example:"Christmas"`
}

func (b Boosts) parse() (domain.WeeklyBoost, domain.EventType, error) {
	weekly, werr := domain.ParseWeeklyBoost(b.WeeklyBoost)
	event, eerr := domain.ParseEventType(b.Event)
	return weekly, event, errors.Join(werr, eerr)
}

// requestStrategy leaves an omitted strategy empty so the service's configured
// default applies
func requestStrategy(s string) (pricing.Strategy, error) {
	if s == "" {
		return "", nil
	}
	return pricing.ParseStrategy(s)
}

// QuestValueRequest values one quest for one section ID
type QuestValueRequest struct {
	QuestName string `json:"quest_name" validate:"required,max=100" example:"MU1"`
	SectionID string `json:"section_id" validate:"required,section_id" example:"Viridia"`
	Strategy  string `json:"strategy,omitempty" validate:"price_strategy" example:"minimum"`
	Boosts
}

func (r QuestValueRequest) options() (quest.Options, pricing.Strategy, error) {
	weekly, event, err := r.Boosts.parse()
	if err != nil {
		return quest.Options{}, "", err
	}
	strategy, err := requestStrategy(r.Strategy)
	if err != nil {
		return quest.Options{}, "", err
	}
	opts := quest.Options{
		RBRActive:   quest.RBRActiveFor(r.QuestName, r.RBRActive, r.RBRList),
		WeeklyBoost: weekly,
		Event:       event,
	}
	return opts, strategy, nil
}

// RankQuestsRequest ranks quests for one section ID or all of them
type RankQuestsRequest struct {
	SectionID          string             `json:"section_id,omitempty" validate:"section_id_or_all" example:"All"`
	Episode            int                `json:"episode,omitempty" validate:"episode" example:"1"`
	QuestFilter        []string           `json:"quest_filter,omitempty" validate:"max=1000,dive,required,max=100"`
	ExcludeEventQuests bool               `json:"exclude_event_quests"`
	QuestTimes         map[string]float64 `json:"quest_times,omitempty" validate:"dive,gt=0"`
	TopN               int                `json:"top_n,omitempty" validate:"min=0,max=10000" example:"20"`
	Strategy           string             `json:"strategy,omitempty" validate:"price_strategy"`
	Boosts
}

func (r RankQuestsRequest) options() (quest.RankOptions, pricing.Strategy, error) {
	weekly, event, err := r.Boosts.parse()
	if err != nil {
		return quest.RankOptions{}, "", err
	}
	strategy, err := requestStrategy(r.Strategy)
	if err != nil {
		return quest.RankOptions{}, "", err
	}

	opts := quest.RankOptions{
		SectionID:          r.SectionID,
		RBRActive:          r.RBRActive,
		RBRList:            r.RBRList,
		WeeklyBoost:        weekly,
		Event:              event,
		Episode:            domain.Episode(r.Episode),
		QuestNames:         r.QuestFilter,
		ExcludeEventQuests: r.ExcludeEventQuests,
		TopN:               r.TopN,
	}
	if len(r.QuestTimes) > 0 {
		opts.Durations = quest.Durations(r.QuestTimes)
	}
	return opts, strategy, nil
}

// HuntRequest finds where an item drops
type HuntRequest struct {
	Item               string   `json:"item" validate:"required,max=100" example:"Sange"`
	QuestFilter        []string `json:"quest_filter,omitempty" validate:"max=1000,dive,required,max=100"`
	ExcludeEventQuests bool     `json:"exclude_event_quests"`
	Boosts
}

func (r HuntRequest) options() (hunt.Options, error) {
	weekly, event, err := r.Boosts.parse()
	if err != nil {
		return hunt.Options{}, err
	}
	return hunt.Options{
		RBRActive:          r.RBRActive,
		RBRList:            r.RBRList,
		WeeklyBoost:        weekly,
		Event:              event,
		QuestNames:         r.QuestFilter,
		ExcludeEventQuests: r.ExcludeEventQuests,
	}, nil
}
