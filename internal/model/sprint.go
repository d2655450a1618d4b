package model

import (
	"time"

	"github.com/google/uuid"
)

type SprintStatus string

const (
	SprintPlanned   SprintStatus = "PLANNED"
	SprintActive    SprintStatus = "ACTIVE"
	SprintCompleted SprintStatus = "COMPLETED"
)

type Sprint struct {
	ID         uuid.UUID    `json:"id"`
	Objective  string       `json:"objective"`
	StartDate  *time.Time   `json:"startDate,omitempty"`
	FinishDate *time.Time   `json:"finishDate,omitempty"`
	Status     SprintStatus `json:"status"`
}

// Deletable reports whether the sprint may still be removed. The
// server enforces the same rule; here it only gates the affordance.
func (s Sprint) Deletable() bool {
	return s.Status == SprintPlanned
}
