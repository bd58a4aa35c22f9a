package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSuggestRequest(c *gin.Context) (suggestReq, error) {
	var req suggestReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}
