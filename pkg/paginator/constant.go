package paginator

const (
	// DefaultPage is the default page number when an invalid page is provided.
	DefaultPage = 1
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 10
	// MaxPageSize is the maximum number of items per page to prevent excessive queries.
	MaxPageSize = 100
)
