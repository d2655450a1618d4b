package remote

import (
	"context"
	"fmt"
	"net/http"

	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// SprintDraft carries the sprint form fields. Dates are calendar dates
// ("2006-01-02"); they go out at fixed midnight, no timezone involved.
type SprintDraft struct {
	Objective  string
	StartDate  string
	FinishDate string
	Status     model.SprintStatus
}

type sprintRequest struct {
	Objective  string             `json:"objective"`
	StartDate  string             `json:"startDate,omitempty"`
	FinishDate string             `json:"finishDate,omitempty"`
	Status     model.SprintStatus `json:"status"`
}

// sprintPayload is the wire shape of a sprint. The API keys the
// identifier as sprintId; it is remapped to ID on every fetch.
type sprintPayload struct {
	SprintID   string `json:"sprintId"`
	Objective  string `json:"objective"`
	StartDate  string `json:"startDate"`
	FinishDate string `json:"finishDate"`
	Status     string `json:"status"`
}

func (c *Client) Sprints(ctx context.Context, projectID uuid.UUID) ([]model.Sprint, error) {
	var payload []sprintPayload
	path := fmt.Sprintf("/project/%s/sprint", projectID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	sprints := make([]model.Sprint, 0, len(payload))
	for _, p := range payload {
		sprint, err := p.toModel()
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, sprint)
	}
	return sprints, nil
}

func (c *Client) CreateSprint(ctx context.Context, projectID uuid.UUID, draft SprintDraft) (*model.Sprint, error) {
	var payload sprintPayload
	path := fmt.Sprintf("/project/%s/sprint", projectID)
	if err := c.do(ctx, http.MethodPost, path, draft.toRequest(), &payload); err != nil {
		return nil, err
	}

	sprint, err := payload.toModel()
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (c *Client) UpdateSprint(ctx context.Context, projectID, sprintID uuid.UUID, draft SprintDraft) error {
	path := fmt.Sprintf("/project/%s/sprint/%s", projectID, sprintID)
	return c.do(ctx, http.MethodPut, path, draft.toRequest(), nil)
}

func (c *Client) DeleteSprint(ctx context.Context, projectID, sprintID uuid.UUID) error {
	path := fmt.Sprintf("/project/%s/sprint/%s", projectID, sprintID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (d SprintDraft) toRequest() sprintRequest {
	req := sprintRequest{Objective: d.Objective, Status: d.Status}
	if d.StartDate != "" {
		req.StartDate = midnight(d.StartDate)
	}
	if d.FinishDate != "" {
		req.FinishDate = midnight(d.FinishDate)
	}
	return req
}

func (p sprintPayload) toModel() (model.Sprint, error) {
	id, err := uuid.Parse(p.SprintID)
	if err != nil {
		return model.Sprint{}, fmt.Errorf("mapping sprint response: bad sprintId %q: %w", p.SprintID, err)
	}

	status := model.SprintStatus(p.Status)
	switch status {
	case model.SprintPlanned, model.SprintActive, model.SprintCompleted:
	default:
		return model.Sprint{}, fmt.Errorf("mapping sprint %s: unknown status %q", p.SprintID, p.Status)
	}

	start, err := parseAPITime(p.StartDate)
	if err != nil {
		return model.Sprint{}, fmt.Errorf("mapping sprint %s: %w", p.SprintID, err)
	}
	finish, err := parseAPITime(p.FinishDate)
	if err != nil {
		return model.Sprint{}, fmt.Errorf("mapping sprint %s: %w", p.SprintID, err)
	}

	return model.Sprint{
		ID:         id,
		Objective:  p.Objective,
		StartDate:  start,
		FinishDate: finish,
		Status:     status,
	}, nil
}
