package http

import (
	"github.com/gin-gonic/gin"

	"search-srv/pkg/response"
)

// TrackSuggestionClick - Record that a suggestion was clicked
// @Summary Track suggestion click
// @Description Publishes a fire-and-forget suggestion click event
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body suggestionClickReq true "Clicked suggestion"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analytics/suggestion-click [post]
func (h *handler) TrackSuggestionClick(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestionClickRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.TrackSuggestionClick: processSuggestionClickRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.TrackSuggestionClick(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.TrackSuggestionClick: usecase TrackSuggestionClick failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// GetPopularSearches - Most frequent search queries
// @Summary Get popular searches
// @Description Returns the most frequent search queries from the event log
// @Tags Analytics
// @Produce json
// @Param limit query int false "Maximum rows to return"
// @Success 200 {object} popularResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analytics/popular [get]
func (h *handler) GetPopularSearches(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPopularRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetPopularSearches: processPopularRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	popular, err := h.uc.GetPopularSearches(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetPopularSearches: usecase GetPopularSearches failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPopularResp(popular))
}

// GetStatistics - Search statistics over a time window
// @Summary Get search statistics
// @Description Returns aggregate search statistics over a time window (default 24h)
// @Tags Analytics
// @Produce json
// @Param window_hours query int false "Window size in hours"
// @Success 200 {object} statisticsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analytics/statistics [get]
func (h *handler) GetStatistics(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatisticsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetStatistics: processStatisticsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	stats, err := h.uc.GetStatistics(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetStatistics: usecase GetStatistics failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStatisticsResp(stats))
}
