package task

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status represents a task's lifecycle stage.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Valid reports whether the status is one of the three allowed values.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus parses a status string, rejecting anything outside the
// allowed set.
func ParseStatus(input string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(input)))
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q, must be one of: todo, in-progress, done", input)
	}
	return s, nil
}

// ID is a positive integer task identifier.
//
// Legacy data files sometimes store ids as JSON strings. ID accepts
// both numeric and numeric-string forms on read and always marshals
// back as a number.
type ID int

// UnmarshalJSON accepts both 2 and "2".
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("invalid task id %s", data)
		}
		s = strings.TrimSpace(str)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid task id %s", data)
	}
	*id = ID(n)
	return nil
}

// ParseID parses a CLI id argument, rejecting non-numeric and
// non-positive input before any lookup happens.
func ParseID(input string) (ID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid task id %q", input)
	}
	return ID(n), nil
}

// Task represents a single trackable unit of work.
type Task struct {
	ID          ID        `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List is the in-memory task collection in stored order.
type List []Task

// NextID computes max(valid existing positive ids) + 1, or 1 if none.
// Ids are never reused: deleting the highest task does not free its id
// within the same invocation, and gaps from earlier deletions stay gaps.
func (l List) NextID() ID {
	max := ID(0)
	for i := range l {
		if l[i].ID > max {
			max = l[i].ID
		}
	}
	return max + 1
}

// Find returns the task with the given id, or nil if not found.
func (l List) Find(id ID) *Task {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// Add appends a new task with a fresh id, status todo, and both
// timestamps set to now. It returns the created task.
func (l *List) Add(name, description string) Task {
	now := time.Now().UTC()
	t := Task{
		ID:          l.NextID(),
		Name:        name,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	*l = append(*l, t)
	return t
}

// UpdateDescription replaces a task's description and refreshes
// updatedAt. The name and createdAt are untouched.
func (l List) UpdateDescription(id ID, description string) error {
	t := l.Find(id)
	if t == nil {
		return fmt.Errorf("task %d not found", id)
	}
	t.Description = description
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// SetStatus sets a task's status and refreshes updatedAt. Setting the
// same status again still refreshes updatedAt.
func (l List) SetStatus(id ID, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q, must be one of: todo, in-progress, done", status)
	}
	t := l.Find(id)
	if t == nil {
		return fmt.Errorf("task %d not found", id)
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes the task with the given id, preserving the order of
// the remaining tasks.
func (l *List) Delete(id ID) error {
	for i := range *l {
		if (*l)[i].ID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task %d not found", id)
}

// Filter returns the tasks matching the status, in stored order.
func (l List) Filter(status Status) List {
	var out List
	for i := range l {
		if l[i].Status == status {
			out = append(out, l[i])
		}
	}
	return out
}

// Counts returns the number of tasks per status.
func (l List) Counts() map[Status]int {
	counts := map[Status]int{
		StatusTodo:       0,
		StatusInProgress: 0,
		StatusDone:       0,
	}
	for i := range l {
		counts[l[i].Status]++
	}
	return counts
}
