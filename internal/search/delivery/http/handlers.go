package http

import (
	"github.com/gin-gonic/gin"

	"search-srv/pkg/response"
)

// Search - Search the product catalog
// @Summary Search products
// @Description Search products by free-text query with optional structured filters (price range, rating, category, sort order)
// @Tags Search
// @Accept json
// @Produce json
// @Param body body searchReq true "Search request"
// @Success 200 {object} searchResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/search [post]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processSearchRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Search: processSearchRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Search: usecase Search failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newSearchResp(output))
}
