package postgre

import (
	"fmt"
	"strings"

	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

// searchQuery holds the assembled SQL fragments for one product search.
type searchQuery struct {
	selectClause string
	whereClause  string
	orderClause  string
	args         []interface{}
}

// buildSearchQuery assembles the filter expression: conjunction of a
// full-text match over the tokens, the attribute and range filters,
// plus a sort specification with engine relevance as secondary key.
func buildSearchQuery(opts repository.SearchProductsOptions) searchQuery {
	var (
		conds []string
		args  []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	selectClause := `SELECT id, title, category_id, description, bullet_points, price, rating, 0 AS text_score FROM products`
	if len(opts.Tokens) > 0 {
		p := arg(strings.Join(opts.Tokens, " "))
		selectClause = fmt.Sprintf(
			`SELECT id, title, category_id, description, bullet_points, price, rating, ts_rank(search_vector, websearch_to_tsquery('english', %s)) AS text_score FROM products`, p)
		conds = append(conds, fmt.Sprintf(`search_vector @@ websearch_to_tsquery('english', %s)`, p))
	}

	if opts.Color != nil {
		p := arg("%" + *opts.Color + "%")
		conds = append(conds, fmt.Sprintf(`(title ILIKE %s OR bullet_points ILIKE %s)`, p, p))
	}
	if opts.PriceMin != nil {
		conds = append(conds, fmt.Sprintf(`price >= %s`, arg(*opts.PriceMin)))
	}
	if opts.PriceMax != nil {
		conds = append(conds, fmt.Sprintf(`price <= %s`, arg(*opts.PriceMax)))
	}
	if opts.MinRating != nil {
		conds = append(conds, fmt.Sprintf(`rating >= %s`, arg(*opts.MinRating)))
	}
	if opts.Category != nil {
		conds = append(conds, fmt.Sprintf(`category_id = %s`, arg(*opts.Category)))
	}

	whereClause := ""
	if len(conds) > 0 {
		whereClause = " WHERE " + strings.Join(conds, " AND ")
	}

	return searchQuery{
		selectClause: selectClause,
		whereClause:  whereClause,
		orderClause:  buildOrderClause(opts.SortBy),
		args:         args,
	}
}

// buildOrderClause maps the sort option to SQL; engine relevance is
// always the secondary key.
func buildOrderClause(sortBy string) string {
	switch sortBy {
	case search.SortByPriceAsc:
		return " ORDER BY price ASC NULLS LAST, text_score DESC"
	case search.SortByPriceDesc:
		return " ORDER BY price DESC NULLS LAST, text_score DESC"
	case search.SortByRating:
		return " ORDER BY rating DESC NULLS LAST, text_score DESC"
	default:
		return " ORDER BY text_score DESC"
	}
}
