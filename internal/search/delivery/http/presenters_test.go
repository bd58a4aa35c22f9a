package http

import (
	"testing"

	"search-srv/internal/search"
	"search-srv/pkg/paginator"
)

func TestSearchReqToInput(t *testing.T) {
	t.Run("normalizes invalid paging", func(t *testing.T) {
		req := searchReq{
			Query:         "wireless mouse",
			PaginateQuery: paginator.PaginateQuery{Page: 0, PageSize: 5000},
		}

		input := req.toInput()
		if input.Page != paginator.DefaultPage {
			t.Errorf("Page mismatch: got %d, want %d", input.Page, paginator.DefaultPage)
		}
		if input.PageSize != paginator.MaxPageSize {
			t.Errorf("PageSize mismatch: got %d, want %d", input.PageSize, paginator.MaxPageSize)
		}
	})

	t.Run("keeps valid paging and filters", func(t *testing.T) {
		req := searchReq{
			Query:         "red bag",
			Filters:       map[string]interface{}{"category": "bags"},
			PaginateQuery: paginator.PaginateQuery{Page: 3, PageSize: 25},
		}

		input := req.toInput()
		want := search.SearchInput{
			Query:    "red bag",
			Filters:  map[string]interface{}{"category": "bags"},
			Page:     3,
			PageSize: 25,
		}
		if input.Query != want.Query || input.Page != want.Page || input.PageSize != want.PageSize {
			t.Errorf("input mismatch: got %+v, want %+v", input, want)
		}
		if input.Filters["category"] != "bags" {
			t.Errorf("Filters mismatch: got %v", input.Filters)
		}
	})
}
