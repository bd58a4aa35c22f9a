package usecase

// RecordSearch increments the hit count of query. When the map grows
// past the configured ceiling, one entry holding the current global
// minimum hit count is evicted; ties are broken arbitrarily by map
// iteration order.
func (uc *implUseCase) RecordSearch(query string) {
	if query == "" {
		return
	}

	uc.recentMu.Lock()
	defer uc.recentMu.Unlock()

	uc.recent[query]++

	if len(uc.recent) <= uc.cfg.MaxRecentSearches {
		return
	}

	minCount := -1
	for _, count := range uc.recent {
		if minCount < 0 || count < minCount {
			minCount = count
		}
	}
	for q, count := range uc.recent {
		if count == minCount {
			delete(uc.recent, q)
			break
		}
	}
}
