package todos

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Request parsing works off raw key presence: the update contract applies
// only the fields the caller actually sent, which a plain struct decode
// cannot distinguish from zero values.

func decodeFields(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("request body must be a JSON object")
	}
	return raw, nil
}

func fieldString(raw map[string]json.RawMessage, key string) (*string, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, fmt.Errorf("%s must be a string", key)
	}
	return &s, nil
}

func fieldInt(raw map[string]json.RawMessage, key string) (*int, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	var n int
	if err := json.Unmarshal(v, &n); err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}

func isNull(v json.RawMessage) bool {
	return string(v) == "null"
}

func fieldStatus(raw map[string]json.RawMessage) (*Status, error) {
	v, ok := raw["status"]
	if !ok || isNull(v) {
		return nil, nil
	}
	var s Status
	if err := json.Unmarshal(v, &s); err != nil || !s.Valid() {
		return nil, errors.New("status must be one of 시작 전, 진행 중, 완료")
	}
	return &s, nil
}

// fieldPriority distinguishes "absent" (set=false) from an explicit null
// (set=true, value nil): the priority is nullable on the wire.
func fieldPriority(raw map[string]json.RawMessage) (p *Priority, set bool, err error) {
	v, ok := raw["priority"]
	if !ok {
		return nil, false, nil
	}
	if isNull(v) {
		return nil, true, nil
	}
	var pr Priority
	if err := json.Unmarshal(v, &pr); err != nil || !pr.Valid() {
		return nil, false, errors.New("priority must be one of 높음, 중간, 낮음")
	}
	return &pr, true, nil
}

func fieldDueDate(raw map[string]json.RawMessage) (d *Date, set bool, err error) {
	v, ok := raw["due_date"]
	if !ok {
		return nil, false, nil
	}
	if isNull(v) {
		return nil, true, nil
	}
	var date Date
	if err := json.Unmarshal(v, &date); err != nil {
		return nil, false, errors.New("due_date must be a YYYY-MM-DD date or null")
	}
	return &date, true, nil
}

func fieldSubtasks(raw map[string]json.RawMessage) (subs []SubTask, set bool, err error) {
	v, ok := raw["subtasks"]
	if !ok || isNull(v) {
		return nil, false, nil
	}
	subs = []SubTask{}
	if err := json.Unmarshal(v, &subs); err != nil {
		return nil, false, errors.New("subtasks must be an array of subtask objects")
	}
	return subs, true, nil
}

// ParseCreateTodo validates a creation payload and returns the item to
// store. Ids are caller-supplied; title must be non-empty and description
// must be present, though it may be empty.
func ParseCreateTodo(data []byte) (Todo, error) {
	raw, err := decodeFields(data)
	if err != nil {
		return Todo{}, err
	}

	id, err := fieldInt(raw, "id")
	if err != nil {
		return Todo{}, err
	}
	if id == nil {
		return Todo{}, errors.New("id is required")
	}

	title, err := fieldString(raw, "title")
	if err != nil {
		return Todo{}, err
	}
	if title == nil || *title == "" {
		return Todo{}, errors.New("title is required")
	}

	description, err := fieldString(raw, "description")
	if err != nil {
		return Todo{}, err
	}
	if description == nil {
		return Todo{}, errors.New("description is required")
	}

	status, err := fieldStatus(raw)
	if err != nil {
		return Todo{}, err
	}
	priority, _, err := fieldPriority(raw)
	if err != nil {
		return Todo{}, err
	}
	dueDate, _, err := fieldDueDate(raw)
	if err != nil {
		return Todo{}, err
	}
	subtasks, _, err := fieldSubtasks(raw)
	if err != nil {
		return Todo{}, err
	}

	todo := Todo{
		ID:          *id,
		Title:       *title,
		Description: *description,
		DueDate:     dueDate,
		Priority:    priority,
		Subtasks:    subtasks,
	}
	if status != nil {
		todo.Status = *status
	}
	todo.normalize()
	return todo, nil
}

// ParseUpdateTodo validates a partial-update payload. It returns the patch
// to persist and the echo: the caller's submitted view of the item, with
// defaults filled for fields the patch did not carry. The echo, not the
// persisted merged record, is what the update response returns; keeping its
// construction here is deliberate so the quirk lives in one place.
func ParseUpdateTodo(pathID int, data []byte) (Patch, Todo, error) {
	raw, err := decodeFields(data)
	if err != nil {
		return Patch{}, Todo{}, err
	}

	var patch Patch

	if patch.Title, err = fieldString(raw, "title"); err != nil {
		return Patch{}, Todo{}, err
	}
	if patch.Title != nil && *patch.Title == "" {
		return Patch{}, Todo{}, errors.New("title must not be empty")
	}
	if patch.Description, err = fieldString(raw, "description"); err != nil {
		return Patch{}, Todo{}, err
	}
	if patch.Status, err = fieldStatus(raw); err != nil {
		return Patch{}, Todo{}, err
	}
	if patch.Priority, patch.PrioritySet, err = fieldPriority(raw); err != nil {
		return Patch{}, Todo{}, err
	}
	if patch.DueDate, patch.DueDateSet, err = fieldDueDate(raw); err != nil {
		return Patch{}, Todo{}, err
	}
	if patch.Subtasks, patch.SubtasksSet, err = fieldSubtasks(raw); err != nil {
		return Patch{}, Todo{}, err
	}

	echo := Todo{ID: pathID}
	if id, err := fieldInt(raw, "id"); err == nil && id != nil {
		echo.ID = *id
	}
	patch.apply(&echo)
	echo.normalize()
	return patch, echo, nil
}

// ParseSubTask validates a subtask payload. requireID is true on add, where
// the caller names the id; on update the id is forced to the path value.
func ParseSubTask(data []byte, requireID bool) (SubTask, error) {
	raw, err := decodeFields(data)
	if err != nil {
		return SubTask{}, err
	}

	id, err := fieldInt(raw, "id")
	if err != nil {
		return SubTask{}, err
	}
	if requireID && id == nil {
		return SubTask{}, errors.New("id is required")
	}

	title, err := fieldString(raw, "title")
	if err != nil {
		return SubTask{}, err
	}
	if title == nil || *title == "" {
		return SubTask{}, errors.New("title is required")
	}

	var completed bool
	if v, ok := raw["completed"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &completed); err != nil {
			return SubTask{}, errors.New("completed must be a boolean")
		}
	}

	sub := SubTask{Title: *title, Completed: completed}
	if id != nil {
		sub.ID = *id
	}
	return sub, nil
}
