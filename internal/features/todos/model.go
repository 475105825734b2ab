// ================== internal/features/todos/model.go ==================
package todos

import (
	"fmt"
	"strings"
	"time"
)

// Status is a closed set of lifecycle states. The labels are wire-format
// tokens shared with the stored document and the frontend; they must
// round-trip byte for byte.
type Status string

const (
	StatusNotStarted Status = "시작 전"
	StatusInProgress Status = "진행 중"
	StatusCompleted  Status = "완료"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is a closed set of priority labels. A todo without a priority
// carries null on the wire.
type Priority string

const (
	PriorityHigh   Priority = "높음"
	PriorityMedium Priority = "중간"
	PriorityLow    Priority = "낮음"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It serializes as
// "YYYY-MM-DD" and all arithmetic is pure day subtraction.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the wall-clock date at call time.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysUntil returns d minus today in whole calendar days. Negative means d
// is in the past.
func (d Date) DaysUntil(today Date) int {
	return int(d.Time.Sub(today.Time) / (24 * time.Hour))
}

func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// YearMonth returns the "YYYY-MM" grouping key.
func (d Date) YearMonth() string {
	return d.Format("2006-01")
}

// SubTask is a child checklist entry. Its id is unique only within the
// parent todo's subtask sequence.
type SubTask struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Attachment is the metadata record for one uploaded file. Filename is the
// generated key into blob storage and is never shown as the real name;
// OriginalFilename is what download responses carry.
type Attachment struct {
	ID               string `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"`
}

// Todo is one task record, the root unit of the collection.
// @Description Todo item with subtasks and attachment metadata
type Todo struct {
	ID          int          `json:"id" example:"1"`
	Title       string       `json:"title" example:"Buy milk"`
	Description string       `json:"description" example:"2 liters, low fat"`
	DueDate     *Date        `json:"due_date"`
	Status      Status       `json:"status" example:"시작 전"`
	Priority    *Priority    `json:"priority"`
	Subtasks    []SubTask    `json:"subtasks"`
	Attachments []Attachment `json:"attachments"`
}

// normalize fills defaults so the stored document always carries a status
// label and concrete arrays rather than nulls.
func (t *Todo) normalize() {
	if t.Status == "" {
		t.Status = StatusNotStarted
	}
	if t.Subtasks == nil {
		t.Subtasks = []SubTask{}
	}
	if t.Attachments == nil {
		t.Attachments = []Attachment{}
	}
}

// Patch is a partial update: only fields whose Set flag is true (or whose
// pointer is non-nil) touch the stored record. DueDate and Priority are
// nullable, so presence and value travel separately.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
	DueDate     *Date
	DueDateSet  bool
	Priority    *Priority
	PrioritySet bool
	Subtasks    []SubTask
	SubtasksSet bool
}

func (p Patch) apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDateSet {
		t.DueDate = p.DueDate
	}
	if p.PrioritySet {
		t.Priority = p.Priority
	}
	if p.SubtasksSet {
		t.Subtasks = p.Subtasks
	}
}
