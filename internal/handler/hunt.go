package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/hunt"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/optimizer"
)

// HandleHunt handles finding the sources of an item
// @Summary Find item sources
// @Description List the enemies, boxes and quest runs that drop an item, best chance first. Technique disks are searched as "<Technique> Lv30".
// @Tags hunt
// @Accept json
// @Produce json
// @Param request body HuntRequest true "Item and boosts"
// @Success 200 {object} hunt.Sources
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/hunt [post]
func HandleHunt(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleJSONAction(w, r, OpHunt, func(ctx context.Context, req HuntRequest) (*hunt.Sources, error) {
			opts, err := req.options()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
			}
			return svc.FindSourcesForItem(ctx, req.Item, opts)
		})
	}
}
