package episode

import "holocron/internal/domain"

// HasViewerData reports whether e carries a non-zero US viewership figure.
func HasViewerData(e domain.Episode) bool {
	return e.USViewersMM != nil && *e.USViewersMM != 0
}

// MostViewed returns the episode with the highest recorded viewership.
// Episodes without viewer data are skipped and ties keep the first
// episode seen. ok is false when no episode has viewer data.
func MostViewed(eps []domain.Episode) (domain.Episode, bool) {
	return pick(eps, func(candidate, best float64) bool { return candidate > best })
}

// LeastViewed returns the episode with the lowest recorded viewership,
// under the same rules as MostViewed.
func LeastViewed(eps []domain.Episode) (domain.Episode, bool) {
	return pick(eps, func(candidate, best float64) bool { return candidate < best })
}

func pick(eps []domain.Episode, better func(candidate, best float64) bool) (domain.Episode, bool) {
	idx := -1
	for i, e := range eps {
		if !HasViewerData(e) {
			continue
		}
		if idx < 0 || better(*e.USViewersMM, *eps[idx].USViewersMM) {
			idx = i
		}
	}
	if idx < 0 {
		return domain.Episode{}, false
	}
	return eps[idx], true
}

// CountByDirector maps each director to the number of episodes directed.
// Episodes without a director are skipped.
func CountByDirector(eps []domain.Episode) *domain.Ordered[int] {
	out := domain.NewOrdered[int]()
	for _, e := range eps {
		if e.Director == nil {
			continue
		}
		n, _ := out.Get(*e.Director)
		out.Set(*e.Director, n+1)
	}
	return out
}

// GroupByWriter maps each contributing writer to the episodes they wrote.
// An episode with several writers is listed under each of them.
func GroupByWriter(eps []domain.Episode) *domain.Ordered[[]domain.Episode] {
	out := domain.NewOrdered[[]domain.Episode]()
	for _, e := range eps {
		for _, w := range e.Writers {
			group, _ := out.Get(w)
			out.Set(w, append(group, e))
		}
	}
	return out
}
