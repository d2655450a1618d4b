package model

import (
	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `json:"id"`
	SprintID    uuid.UUID `json:"sprintId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	// UserStoryID links the task to a story of the same sprint.
	UserStoryID *uuid.UUID `json:"userStoryId,omitempty"`
	// ResponsableID is the associate responsible for the task.
	ResponsableID *uuid.UUID `json:"responsableId,omitempty"`
}
