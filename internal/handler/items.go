package handler

import (
	"net/http"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/optimizer"
)

// HandleItemValue handles valuing one item
// @Summary Item expected value
// @Description Classify an item against the price guide and return its expected value in PD
// @Tags items
// @Produce json
// @Param name path string true "Item name"
// @Param area query string false "Drop area, used for weapon attribute rolls"
// @Param strategy query string false "Price strategy (minimum, average, maximum)"
// @Success 200 {object} optimizer.ItemValue
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/{name}/value [get]
func HandleItemValue(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, PathParamItemName)
		if !ok {
			return
		}
		strategy, ok := GetStrategyParam(r, w)
		if !ok {
			return
		}
		area := GetOptionalQueryParam(r, QueryParamArea, "")

		log := logger.FromContext(r.Context())
		LogRequestFields(log, "item", name, "area", area, "strategy", strategy)

		value, err := svc.ComputeItemValue(r.Context(), name, area, strategy)
		if err != nil {
			respondServiceError(w, r, OpItemValue, err)
			return
		}

		respondJSON(w, http.StatusOK, value)
	}
}

// HandleItemBreakdown handles the itemized valuation of one item
// @Summary Item value breakdown
// @Description Itemized valuation: weapon hit and attribute contributions, armor slot and stat tiers
// @Tags items
// @Produce json
// @Param name path string true "Item name"
// @Param area query string false "Drop area, used for weapon attribute rolls"
// @Param strategy query string false "Price strategy (minimum, average, maximum)"
// @Success 200 {object} itemvalue.Breakdown
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/{name}/breakdown [get]
func HandleItemBreakdown(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, PathParamItemName)
		if !ok {
			return
		}
		strategy, ok := GetStrategyParam(r, w)
		if !ok {
			return
		}
		area := GetOptionalQueryParam(r, QueryParamArea, "")

		b, err := svc.ItemBreakdown(r.Context(), name, area, strategy)
		if err != nil {
			respondServiceError(w, r, OpItemBreakdown, err)
			return
		}

		respondJSON(w, http.StatusOK, b)
	}
}
