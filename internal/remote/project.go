package remote

import (
	"context"
	"fmt"
	"net/http"

	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// NewAssociate is a participant of a project being created. Only email
// and role are sent; the server resolves the user and assigns the id.
type NewAssociate struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type createProjectRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Associates  []NewAssociate `json:"associates"`
}

type projectPayload struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Users       []associatePayload `json:"users"`
}

type associatePayload struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (c *Client) Projects(ctx context.Context) ([]model.ProjectSummary, error) {
	var payload []projectPayload
	if err := c.do(ctx, http.MethodGet, "/project", nil, &payload); err != nil {
		return nil, err
	}

	projects := make([]model.ProjectSummary, 0, len(payload))
	for _, p := range payload {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, fmt.Errorf("mapping project response: bad id %q: %w", p.ID, err)
		}
		associates, err := mapAssociates(p.Users)
		if err != nil {
			return nil, fmt.Errorf("mapping project %s: %w", p.ID, err)
		}
		projects = append(projects, model.ProjectSummary{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Associates:  associates,
		})
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, name, description string, associates []NewAssociate) error {
	req := createProjectRequest{Name: name, Description: description, Associates: associates}
	if req.Associates == nil {
		req.Associates = []NewAssociate{}
	}
	return c.do(ctx, http.MethodPost, "/project", req, nil)
}

func mapAssociates(payload []associatePayload) ([]model.Associate, error) {
	associates := make([]model.Associate, 0, len(payload))
	for _, a := range payload {
		associate := model.Associate{Name: a.Name, Email: a.Email, Role: a.Role}
		if a.UserID != "" {
			id, err := uuid.Parse(a.UserID)
			if err != nil {
				return nil, fmt.Errorf("bad associate id %q: %w", a.UserID, err)
			}
			associate.UserID = id
		}
		associates = append(associates, associate)
	}
	return associates, nil
}
