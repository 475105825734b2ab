// ================== internal/features/dashboard/model.go ==================
package dashboard

import (
	"github.com/harulist/todoapi/internal/features/todos"
)

// Summary holds the headline counts of the dashboard.
type Summary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	NotStarted     int     `json:"not_started"`
	CompletionRate float64 `json:"completion_rate"`
}

// StatusCount is one entry of the fixed-order status distribution.
type StatusCount struct {
	Status todos.Status `json:"status"`
	Count  int          `json:"count"`
}

// OverdueTodo is an item past its due date, annotated with how far past.
type OverdueTodo struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	DueDate     todos.Date      `json:"due_date"`
	Priority    *todos.Priority `json:"priority"`
	DaysOverdue int             `json:"days_overdue"`
}

// DueSoonTodo is an item due within the due-soon window, annotated with the
// days remaining (zero means due today).
type DueSoonTodo struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	DueDate  todos.Date      `json:"due_date"`
	Priority *todos.Priority `json:"priority"`
	DaysLeft int             `json:"days_left"`
}

// AlertTodo is an unannotated entry of the today/tomorrow alert buckets.
type AlertTodo struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	DueDate  todos.Date      `json:"due_date"`
	Priority *todos.Priority `json:"priority"`
}

// ActivityItem is one row of the recent-activity ranking.
type ActivityItem struct {
	ID      int          `json:"id"`
	Title   string       `json:"title"`
	Status  todos.Status `json:"status"`
	DueDate todos.Date   `json:"due_date"`
}

// Overview is the GET /dashboard payload.
type Overview struct {
	Summary              Summary                `json:"summary"`
	PriorityDistribution map[todos.Priority]int `json:"priority_distribution"`
	StatusDistribution   []StatusCount          `json:"status_distribution"`
	Overdue              []OverdueTodo          `json:"overdue"`
	DueSoon              []DueSoonTodo          `json:"due_soon"`
	RecentActivity       []ActivityItem         `json:"recent_activity"`
}

// TrendPoint is one day of the 30-day completion trend. Counts are
// cumulative over items whose due date falls on or before the day.
type TrendPoint struct {
	Date            string  `json:"date"`
	TotalByDate     int     `json:"total_by_date"`
	CompletedByDate int     `json:"completed_by_date"`
	CompletionRate  float64 `json:"completion_rate"`
}

// PriorityCompletion is one bucket of the per-priority completion rates.
// The unset-priority bucket carries the "없음" label.
type PriorityCompletion struct {
	Priority       string  `json:"priority"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// MonthlyStat is one year-month rollup including the high-priority slice.
type MonthlyStat struct {
	Month                      string  `json:"month"`
	Total                      int     `json:"total"`
	Completed                  int     `json:"completed"`
	CompletionRate             float64 `json:"completion_rate"`
	HighPriority               int     `json:"high_priority"`
	HighPriorityCompleted      int     `json:"high_priority_completed"`
	HighPriorityCompletionRate float64 `json:"high_priority_completion_rate"`
}

// DueAlerts partitions open dated items into disjoint urgency buckets.
type DueAlerts struct {
	Overdue  []OverdueTodo `json:"overdue"`
	Today    []AlertTodo   `json:"today"`
	Tomorrow []AlertTodo   `json:"tomorrow"`
	ThisWeek []DueSoonTodo `json:"this_week"`
}
