package repository

import "errors"

var (
	ErrFailedToLoadTitles     = errors.New("repository: failed to load distinct titles")
	ErrFailedToLoadCategories = errors.New("repository: failed to load distinct categories")
)
