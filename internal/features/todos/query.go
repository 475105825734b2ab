package todos

import "strings"

// Stateless filters over a loaded collection. Results keep storage order.

// Search matches the query case-insensitively against titles only. An
// empty query matches everything.
func Search(items []Todo, query string) []Todo {
	q := strings.ToLower(query)
	results := []Todo{}
	for _, t := range items {
		if strings.Contains(strings.ToLower(t.Title), q) {
			results = append(results, t)
		}
	}
	return results
}

// ByPriority keeps items whose priority label matches exactly. Items with
// no priority never match.
func ByPriority(items []Todo, priority Priority) []Todo {
	results := []Todo{}
	for _, t := range items {
		if t.Priority != nil && *t.Priority == priority {
			results = append(results, t)
		}
	}
	return results
}

// StatsResult is the /todos/stats payload.
type StatsResult struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	NotCompleted int `json:"not_completed"`
}

// Stats counts completed against everything else.
func Stats(items []Todo) StatsResult {
	completed := 0
	for _, t := range items {
		if t.Status == StatusCompleted {
			completed++
		}
	}
	return StatsResult{
		Total:        len(items),
		Completed:    completed,
		NotCompleted: len(items) - completed,
	}
}
