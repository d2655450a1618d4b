package model

import (
	"github.com/google/uuid"
)

// Status is shared by user stories and tasks.
type Status string

const (
	StatusToDo  Status = "TO_DO"
	StatusDoing Status = "DOING"
	StatusDone  Status = "DONE"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type UserStory struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	// Sprint is a back-reference to the sprint the story is planned
	// into, nil while the story sits in the backlog.
	Sprint *uuid.UUID `json:"sprint,omitempty"`
}
