package http

import (
	"time"

	"search-srv/internal/analytics"
)

// =====================================================
// Request DTOs
// =====================================================

type suggestionClickReq struct {
	Suggestion string `json:"suggestion" binding:"required"`
}

func (r suggestionClickReq) toInput() analytics.TrackSuggestionClickInput {
	return analytics.TrackSuggestionClickInput{
		Suggestion: r.Suggestion,
	}
}

type popularReq struct {
	Limit int `form:"limit,omitempty"`
}

func (r popularReq) toInput() analytics.GetPopularSearchesInput {
	return analytics.GetPopularSearchesInput{
		Limit: r.Limit,
	}
}

type statisticsReq struct {
	WindowHours int `form:"window_hours,omitempty"`
}

func (r statisticsReq) toInput() analytics.GetStatisticsInput {
	return analytics.GetStatisticsInput{
		Window: time.Duration(r.WindowHours) * time.Hour,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type popularResp struct {
	Popular []popularSearchResp `json:"popular"`
}

type popularSearchResp struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

func (h *handler) newPopularResp(popular []analytics.PopularSearch) popularResp {
	resp := popularResp{Popular: make([]popularSearchResp, len(popular))}
	for i, p := range popular {
		resp.Popular[i] = popularSearchResp{
			Query: p.Query,
			Count: p.Count,
		}
	}
	return resp
}

type statisticsResp struct {
	TotalSearches    int64   `json:"total_searches"`
	UniqueQueries    int64   `json:"unique_queries"`
	AvgResultCount   float64 `json:"avg_result_count"`
	ZeroResultCount  int64   `json:"zero_result_count"`
	SuggestionClicks int64   `json:"suggestion_clicks"`
}

func (h *handler) newStatisticsResp(stats analytics.Statistics) statisticsResp {
	return statisticsResp{
		TotalSearches:    stats.TotalSearches,
		UniqueQueries:    stats.UniqueQueries,
		AvgResultCount:   stats.AvgResultCount,
		ZeroResultCount:  stats.ZeroResultCount,
		SuggestionClicks: stats.SuggestionClicks,
	}
}
