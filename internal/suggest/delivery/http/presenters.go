package http

import "search-srv/internal/suggest"

// =====================================================
// Request DTOs
// =====================================================

type suggestReq struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit,omitempty"`
}

func (r suggestReq) toInput() suggest.SuggestInput {
	return suggest.SuggestInput{
		Partial: r.Q,
		Limit:   r.Limit,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type suggestResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

type suggestionResp struct {
	Type  string  `json:"type"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

func (h *handler) newSuggestResp(suggestions []suggest.Suggestion) suggestResp {
	resp := suggestResp{Suggestions: make([]suggestionResp, len(suggestions))}
	for i, s := range suggestions {
		resp.Suggestions[i] = suggestionResp{
			Type:  s.Kind,
			Text:  s.Text,
			Score: s.Score,
		}
	}
	return resp
}
