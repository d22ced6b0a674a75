package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/optimizer"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/quest"
)

// RankQuestsResponse is a ranking, best first
type RankQuestsResponse struct {
	SectionID string         `json:"section_id"`
	Count     int            `json:"count"`
	Results   []quest.Ranked `json:"results"`
}

// QuestListResponse lists the loaded quests
type QuestListResponse struct {
	Count  int                      `json:"count"`
	Quests []optimizer.QuestSummary `json:"quests"`
}

// HandleQuestValue handles valuing one quest run
// @Summary Quest expected value
// @Description Expected PD of one quest run for one section ID, itemized by enemy, box, completion item and event drop
// @Tags quests
// @Accept json
// @Produce json
// @Param request body QuestValueRequest true "Quest and boosts"
// @Success 200 {object} quest.Result
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Quest or item not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/quests/value [post]
func HandleQuestValue(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleJSONAction(w, r, OpQuestValue, func(ctx context.Context, req QuestValueRequest) (*quest.Result, error) {
			opts, strategy, err := req.options()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
			}
			return svc.ComputeQuestValue(ctx, req.QuestName, req.SectionID, opts, strategy)
		})
	}
}

// HandleRankQuests handles ranking quests
// @Summary Rank quests
// @Description Rank quests by PD per minute when a clear time is known, else by PD per run
// @Tags quests
// @Accept json
// @Produce json
// @Param request body RankQuestsRequest true "Filters and boosts"
// @Success 200 {object} RankQuestsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/quests/rank [post]
func HandleRankQuests(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleJSONAction(w, r, OpRankQuests, func(ctx context.Context, req RankQuestsRequest) (*RankQuestsResponse, error) {
			opts, strategy, err := req.options()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
			}

			ranked, err := svc.RankQuests(ctx, opts, strategy)
			if err != nil {
				return nil, err
			}

			sectionID := req.SectionID
			if sectionID == "" {
				sectionID = domain.SectionAll
			}
			logger.FromContext(ctx).Info("Quests ranked", "section_id", sectionID, "count", len(ranked))
			return &RankQuestsResponse{SectionID: sectionID, Count: len(ranked), Results: ranked}, nil
		})
	}
}

// HandleListQuests handles listing the loaded quests
// @Summary List quests
// @Description List loaded quests, optionally for one episode
// @Tags quests
// @Produce json
// @Param episode query int false "Episode (1, 2, 4)"
// @Success 200 {object} QuestListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quests [get]
func HandleListQuests(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		episode, ok := GetEpisodeParam(r, w)
		if !ok {
			return
		}

		quests := svc.Quests(r.Context(), episode)
		respondJSON(w, http.StatusOK, QuestListResponse{Count: len(quests), Quests: quests})
	}
}
