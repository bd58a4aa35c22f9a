package http

import (
	"github.com/gin-gonic/gin"

	"search-srv/pkg/response"
)

// Suggest - Typeahead suggestions for a partial query
// @Summary Get search suggestions
// @Description Returns ranked typeahead suggestions for a partial query, drawn from product titles, categories and popular searches
// @Tags Suggestions
// @Produce json
// @Param q query string true "Partial query"
// @Param limit query int false "Maximum suggestions to return"
// @Success 200 {object} suggestResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/suggestions [get]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "suggest.delivery.http.Suggest: processSuggestRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	suggestions, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "suggest.delivery.http.Suggest: usecase Suggest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newSuggestResp(suggestions))
}
