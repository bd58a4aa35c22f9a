package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSuggestionClickRequest(c *gin.Context) (suggestionClickReq, error) {
	var req suggestionClickReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	return req, nil
}

func (h *handler) processPopularRequest(c *gin.Context) (popularReq, error) {
	var req popularReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}

func (h *handler) processStatisticsRequest(c *gin.Context) (statisticsReq, error) {
	var req statisticsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}
