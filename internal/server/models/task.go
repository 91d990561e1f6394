package models

import (
	"fmt"
	"time"
)

// TaskStatus enumerates the lifecycle states of a task. Any status may move
// to any other status directly.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// ParseTaskStatus validates s and returns it as a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("unknown task status: %q", s)
}

// Task is a unit of work owned by exactly one user. UserID is an internal
// detail and is never serialized outward.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	UserID      string     `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskFilter narrows task listings. Nil fields mean "no constraint".
type TaskFilter struct {
	Status *TaskStatus
	Search *string
}
