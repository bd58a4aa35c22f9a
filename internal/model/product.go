package model

import "database/sql"

// Product is a catalog document as projected by the search queries.
// TextScore carries the engine relevance emitted by ts_rank; it is only
// populated on rows returned from a full-text search.
type Product struct {
	ID           string          `db:"id"`
	Title        string          `db:"title"`
	CategoryID   string          `db:"category_id"`
	Description  sql.NullString  `db:"description"`
	BulletPoints sql.NullString  `db:"bullet_points"`
	Price        sql.NullFloat64 `db:"price"`
	Rating       sql.NullFloat64 `db:"rating"`
	TextScore    float64         `db:"text_score"`
}
