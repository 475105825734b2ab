// ================== internal/features/dashboard/aggregate.go ==================
//
// Pure derivations over a loaded collection and a reference "today" date.
// Nothing here touches the store; handlers load once and pass the slice in.
package dashboard

import (
	"math"
	"sort"

	"github.com/harulist/todoapi/internal/features/todos"
)

// round1 rounds half-up to one decimal place. All rates go through it.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// rate is the completion percentage, defined as 0 when total is 0.
func rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(completed) / float64(total) * 100)
}

// Summarize partitions the collection by status.
func Summarize(items []todos.Todo) Summary {
	s := Summary{Total: len(items)}
	for _, t := range items {
		switch t.Status {
		case todos.StatusCompleted:
			s.Completed++
		case todos.StatusInProgress:
			s.InProgress++
		default:
			s.NotStarted++
		}
	}
	s.CompletionRate = rate(s.Completed, s.Total)
	return s
}

// PriorityDistribution counts items per priority label. Items with no
// priority are omitted.
func PriorityDistribution(items []todos.Todo) map[todos.Priority]int {
	dist := map[todos.Priority]int{}
	for _, t := range items {
		if t.Priority != nil {
			dist[*t.Priority]++
		}
	}
	return dist
}

// StatusDistribution always has three entries in a fixed order, zeros
// included.
func StatusDistribution(items []todos.Todo) []StatusCount {
	counts := map[todos.Status]int{}
	for _, t := range items {
		counts[t.Status]++
	}
	return []StatusCount{
		{Status: todos.StatusCompleted, Count: counts[todos.StatusCompleted]},
		{Status: todos.StatusInProgress, Count: counts[todos.StatusInProgress]},
		{Status: todos.StatusNotStarted, Count: counts[todos.StatusNotStarted]},
	}
}

// DueBuckets splits open dated items into overdue (sorted most-overdue
// first) and due within three days (sorted soonest first).
func DueBuckets(items []todos.Todo, today todos.Date) (overdue []OverdueTodo, dueSoon []DueSoonTodo) {
	overdue = []OverdueTodo{}
	dueSoon = []DueSoonTodo{}
	for _, t := range items {
		if t.DueDate == nil || t.Status == todos.StatusCompleted {
			continue
		}
		diff := t.DueDate.DaysUntil(today)
		switch {
		case diff < 0:
			overdue = append(overdue, OverdueTodo{
				ID: t.ID, Title: t.Title, DueDate: *t.DueDate, Priority: t.Priority,
				DaysOverdue: -diff,
			})
		case diff <= 3:
			dueSoon = append(dueSoon, DueSoonTodo{
				ID: t.ID, Title: t.Title, DueDate: *t.DueDate, Priority: t.Priority,
				DaysLeft: diff,
			})
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DaysOverdue > overdue[j].DaysOverdue
	})
	sort.SliceStable(dueSoon, func(i, j int) bool {
		return dueSoon[i].DaysLeft < dueSoon[j].DaysLeft
	})
	return overdue, dueSoon
}

// RecentActivity ranks dated items by due date, newest first, and returns
// the top five. Ties keep storage order; undated items are excluded.
func RecentActivity(items []todos.Todo) []ActivityItem {
	dated := []ActivityItem{}
	for _, t := range items {
		if t.DueDate == nil {
			continue
		}
		dated = append(dated, ActivityItem{
			ID: t.ID, Title: t.Title, Status: t.Status, DueDate: *t.DueDate,
		})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].DueDate.After(dated[j].DueDate.Time)
	})
	if len(dated) > 5 {
		dated = dated[:5]
	}
	return dated
}

// BuildOverview assembles the GET /dashboard payload.
func BuildOverview(items []todos.Todo, today todos.Date) Overview {
	overdue, dueSoon := DueBuckets(items, today)
	return Overview{
		Summary:              Summarize(items),
		PriorityDistribution: PriorityDistribution(items),
		StatusDistribution:   StatusDistribution(items),
		Overdue:              overdue,
		DueSoon:              dueSoon,
		RecentActivity:       RecentActivity(items),
	}
}

// CompletionTrend computes the cumulative completion rate for each of the
// last 30 calendar days ending today, oldest first. Due dates stand in for
// creation dates here; the trend is an approximation by design.
func CompletionTrend(items []todos.Todo, today todos.Date) []TrendPoint {
	points := make([]TrendPoint, 0, 30)
	for offset := 29; offset >= 0; offset-- {
		day := today.AddDays(-offset)
		point := TrendPoint{Date: day.String()}
		for _, t := range items {
			if t.DueDate == nil || t.DueDate.After(day.Time) {
				continue
			}
			point.TotalByDate++
			if t.Status == todos.StatusCompleted {
				point.CompletedByDate++
			}
		}
		point.CompletionRate = rate(point.CompletedByDate, point.TotalByDate)
		points = append(points, point)
	}
	return points
}

const noPriorityLabel = "없음"

// PriorityCompletionRates groups by priority label with an explicit bucket
// for unset priority, sorted by completion rate descending.
func PriorityCompletionRates(items []todos.Todo) []PriorityCompletion {
	order := []string{
		string(todos.PriorityHigh),
		string(todos.PriorityMedium),
		string(todos.PriorityLow),
		noPriorityLabel,
	}
	totals := map[string]*PriorityCompletion{}
	for _, label := range order {
		totals[label] = &PriorityCompletion{Priority: label}
	}

	for _, t := range items {
		label := noPriorityLabel
		if t.Priority != nil {
			label = string(*t.Priority)
		}
		group := totals[label]
		group.Total++
		if t.Status == todos.StatusCompleted {
			group.Completed++
		}
	}

	result := make([]PriorityCompletion, 0, len(order))
	for _, label := range order {
		group := totals[label]
		group.CompletionRate = rate(group.Completed, group.Total)
		result = append(result, *group)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CompletionRate > result[j].CompletionRate
	})
	return result
}

// MonthlyStats rolls up dated items by year-month, ascending, with a
// high-priority slice per month. Undated items are skipped.
func MonthlyStats(items []todos.Todo) []MonthlyStat {
	months := map[string]*MonthlyStat{}
	for _, t := range items {
		if t.DueDate == nil {
			continue
		}
		key := t.DueDate.YearMonth()
		stat, ok := months[key]
		if !ok {
			stat = &MonthlyStat{Month: key}
			months[key] = stat
		}
		stat.Total++
		completed := t.Status == todos.StatusCompleted
		if completed {
			stat.Completed++
		}
		if t.Priority != nil && *t.Priority == todos.PriorityHigh {
			stat.HighPriority++
			if completed {
				stat.HighPriorityCompleted++
			}
		}
	}

	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]MonthlyStat, 0, len(keys))
	for _, key := range keys {
		stat := months[key]
		stat.CompletionRate = rate(stat.Completed, stat.Total)
		stat.HighPriorityCompletionRate = rate(stat.HighPriorityCompleted, stat.HighPriority)
		result = append(result, *stat)
	}
	return result
}

// BuildDueAlerts buckets open dated items by urgency. Each item lands in at
// most one bucket; anything due past the one-week window is omitted.
func BuildDueAlerts(items []todos.Todo, today todos.Date) DueAlerts {
	alerts := DueAlerts{
		Overdue:  []OverdueTodo{},
		Today:    []AlertTodo{},
		Tomorrow: []AlertTodo{},
		ThisWeek: []DueSoonTodo{},
	}
	for _, t := range items {
		if t.DueDate == nil || t.Status == todos.StatusCompleted {
			continue
		}
		diff := t.DueDate.DaysUntil(today)
		entry := AlertTodo{ID: t.ID, Title: t.Title, DueDate: *t.DueDate, Priority: t.Priority}
		switch {
		case diff < 0:
			alerts.Overdue = append(alerts.Overdue, OverdueTodo{
				ID: t.ID, Title: t.Title, DueDate: *t.DueDate, Priority: t.Priority,
				DaysOverdue: -diff,
			})
		case diff == 0:
			alerts.Today = append(alerts.Today, entry)
		case diff == 1:
			alerts.Tomorrow = append(alerts.Tomorrow, entry)
		case diff <= 7:
			alerts.ThisWeek = append(alerts.ThisWeek, DueSoonTodo{
				ID: t.ID, Title: t.Title, DueDate: *t.DueDate, Priority: t.Priority,
				DaysLeft: diff,
			})
		}
	}
	return alerts
}
