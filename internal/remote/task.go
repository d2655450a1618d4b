package remote

import (
	"context"
	"fmt"
	"net/http"

	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// TaskDraft carries the create-task form fields.
type TaskDraft struct {
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Status        model.Status   `json:"status"`
	Priority      model.Priority `json:"priority"`
	UserStoryID   string         `json:"userStoryId,omitempty"`
	ResponsableID string         `json:"responsableId,omitempty"`
}

// TaskUpdate is a partial update; nil and zero fields are left out of
// the request so the server keeps their current values.
type TaskUpdate struct {
	Title         *string        `json:"title,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Status        model.Status   `json:"status,omitempty"`
	Priority      model.Priority `json:"priority,omitempty"`
	UserStoryID   *uuid.UUID     `json:"userStoryId,omitempty"`
	ResponsableID *uuid.UUID     `json:"responsableId,omitempty"`
}

// taskPayload is the wire shape of a task. The responsible associate
// arrives as a nested object whose userId is flattened onto the model.
type taskPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	UserStoryID string `json:"userStoryId"`
	Responsable *struct {
		UserID string `json:"userId"`
	} `json:"responsable"`
}

func (c *Client) Tasks(ctx context.Context, sprintID uuid.UUID) ([]model.Task, error) {
	var payload []taskPayload
	path := fmt.Sprintf("/project/tasks/%s", sprintID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(payload))
	for _, p := range payload {
		task, err := p.toModel(sprintID)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, sprintID uuid.UUID, draft TaskDraft) (*model.Task, error) {
	var payload taskPayload
	path := fmt.Sprintf("/project/tasks/%s", sprintID)
	if err := c.do(ctx, http.MethodPost, path, draft, &payload); err != nil {
		return nil, err
	}

	task, err := payload.toModel(sprintID)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, taskID uuid.UUID, update TaskUpdate) error {
	path := fmt.Sprintf("/project/tasks/%s", taskID)
	return c.do(ctx, http.MethodPut, path, update, nil)
}

func (p taskPayload) toModel(sprintID uuid.UUID) (model.Task, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return model.Task{}, fmt.Errorf("mapping task response: bad id %q: %w", p.ID, err)
	}

	task := model.Task{
		ID:          id,
		SprintID:    sprintID,
		Title:       p.Title,
		Description: p.Description,
		Status:      model.Status(p.Status),
		Priority:    model.Priority(p.Priority),
	}
	if p.UserStoryID != "" {
		storyID, err := uuid.Parse(p.UserStoryID)
		if err != nil {
			return model.Task{}, fmt.Errorf("mapping task %s: bad userStoryId %q: %w", p.ID, p.UserStoryID, err)
		}
		task.UserStoryID = &storyID
	}
	if p.Responsable != nil && p.Responsable.UserID != "" {
		responsableID, err := uuid.Parse(p.Responsable.UserID)
		if err != nil {
			return model.Task{}, fmt.Errorf("mapping task %s: bad responsable %q: %w", p.ID, p.Responsable.UserID, err)
		}
		task.ResponsableID = &responsableID
	}
	return task, nil
}
