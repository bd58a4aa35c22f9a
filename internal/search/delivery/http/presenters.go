package http

import (
	"search-srv/internal/search"
	"search-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type searchReq struct {
	Query   string                 `json:"query"`
	Filters map[string]interface{} `json:"filters,omitempty"`
	paginator.PaginateQuery
}

func (r searchReq) toInput() search.SearchInput {
	r.Adjust()
	return search.SearchInput{
		Query:    r.Query,
		Filters:  r.Filters,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type searchResp struct {
	Results          []searchResultResp          `json:"results"`
	Pagination       paginator.PaginatorResponse `json:"pagination"`
	CacheHit         bool                        `json:"cache_hit"`
	ProcessingTimeMs int64                       `json:"processing_time_ms"`
	DebugInfo        debugInfoResp               `json:"debug_info"`
}

type debugInfoResp struct {
	ProcessedTokens []string `json:"processed_tokens"`
}

type searchResultResp struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	CategoryID     string   `json:"category_id"`
	BulletPoints   string   `json:"bullet_points,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	RelevanceScore float64  `json:"relevance_score"`
	TextScore      float64  `json:"text_score"`
}

func (h *handler) newSearchResp(output search.SearchOutput) searchResp {
	pag := paginator.Paginator{
		Total:       output.Total,
		Count:       len(output.Results),
		PerPage:     output.PageSize,
		CurrentPage: output.Page,
	}

	resp := searchResp{
		Pagination:       pag.ToResponse(),
		CacheHit:         output.CacheHit,
		ProcessingTimeMs: output.ProcessingTimeMs,
		DebugInfo:        debugInfoResp{ProcessedTokens: output.Tokens},
	}

	resp.Results = make([]searchResultResp, len(output.Results))
	for i, r := range output.Results {
		resp.Results[i] = searchResultResp{
			ID:             r.ID,
			Title:          r.Title,
			CategoryID:     r.CategoryID,
			BulletPoints:   r.BulletPoints,
			Price:          r.Price,
			Rating:         r.Rating,
			RelevanceScore: r.RelevanceScore,
			TextScore:      r.TextScore,
		}
	}

	return resp
}
