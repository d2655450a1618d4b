package model

import (
	"github.com/google/uuid"
)

// Project roles as the API spells them.
const (
	RoleDeveloper    = "DEVELOPER"
	RoleProductOwner = "PRODUCT_OWNER"
	RoleScrumMaster  = "SCRUM_MASTER"
)

// RoleLabels maps API role names to their display labels.
var RoleLabels = map[string]string{
	RoleDeveloper:    "Desenvolvedor",
	RoleProductOwner: "Product Owner",
	RoleScrumMaster:  "Scrum Master",
}

func ValidRole(role string) bool {
	_, ok := RoleLabels[role]
	return ok
}

type Associate struct {
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// Project is the aggregate held while a project is open: the project
// itself plus its member, story and sprint collections.
type Project struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Associates  []Associate `json:"associates"`
	UserStories []UserStory `json:"userStories"`
	Sprints     []Sprint    `json:"sprints"`
}

// ProjectSummary is a row of the project list on the home view.
type ProjectSummary struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Associates  []Associate `json:"associates"`
}
