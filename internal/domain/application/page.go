package application

// Counts holds per-status totals computed over the full unfiltered set, so
// summary counters stay stable while a filter changes only the visible rows.
type Counts struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

func CountByStatus(items []Application) Counts {
	counts := Counts{Total: len(items)}
	for _, item := range items {
		switch Normalize(item.Status) {
		case StatusAccepted:
			counts.Accepted++
		case StatusRejected:
			counts.Rejected++
		default:
			counts.Pending++
		}
	}
	return counts
}

// FilterByStatus narrows items to those whose normalized status is in the
// toggle set. An empty set keeps everything. The input slice is not mutated.
func FilterByStatus(items []Application, statuses []Status) []Application {
	if len(statuses) == 0 {
		return items
	}
	wanted := make(map[Status]bool, len(statuses))
	for _, status := range statuses {
		wanted[Normalize(status)] = true
	}
	filtered := []Application{}
	for _, item := range items {
		if wanted[Normalize(item.Status)] {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// PageCount returns ceil(total/pageSize); zero items means zero pages.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Page slices out the 1-based page of the given size. Out-of-range pages
// return an empty slice rather than an error.
func Page(items []Application, page, pageSize int) []Application {
	if page < 1 || pageSize <= 0 {
		return []Application{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []Application{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
