package usecase

import "context"

// Bootstrap loads the distinct title and category sets from the
// product store. Each pool is loaded independently; a failed load
// leaves that pool empty and is reported but does not abort startup.
func (uc *implUseCase) Bootstrap(ctx context.Context) error {
	var firstErr error

	titles, err := uc.repo.DistinctTitles(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "suggest.usecase.Bootstrap: loading titles failed: %v", err)
		firstErr = err
	}

	categories, err := uc.repo.DistinctCategories(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "suggest.usecase.Bootstrap: loading categories failed: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	uc.poolMu.Lock()
	uc.titles = titles
	uc.categories = categories
	uc.poolMu.Unlock()

	uc.l.Infof(ctx, "suggest.usecase.Bootstrap: %d titles, %d categories", len(titles), len(categories))
	return firstErr
}
