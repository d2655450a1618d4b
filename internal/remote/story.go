package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// StoryDraft is the client-side draft of a story before the server has
// assigned its id.
type StoryDraft struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority"`
	Status      model.Status   `json:"status"`
}

type updateStoryRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority"`
	Status      model.Status   `json:"status"`
	SprintID    string         `json:"sprintId,omitempty"`
}

type storyPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Sprint      string `json:"sprint"`
}

func (c *Client) UserStories(ctx context.Context, projectID uuid.UUID) ([]model.UserStory, error) {
	var payload []storyPayload
	path := fmt.Sprintf("/project/%s/user-story", projectID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	stories := make([]model.UserStory, 0, len(payload))
	for _, p := range payload {
		story, err := p.toModel()
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, nil
}

// CreateUserStory sends the draft and returns the server-assigned id.
// The API answers with the bare id, not the full story.
func (c *Client) CreateUserStory(ctx context.Context, projectID uuid.UUID, draft StoryDraft) (uuid.UUID, error) {
	path := fmt.Sprintf("/project/%s/user-story", projectID)
	data, err := c.doRaw(ctx, http.MethodPost, path, draft)
	if err != nil {
		return uuid.Nil, err
	}

	raw := strings.TrimSpace(string(data))
	var quoted string
	if json.Unmarshal(data, &quoted) == nil {
		raw = quoted
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("mapping create-story response: bad id %q: %w", raw, err)
	}
	return id, nil
}

func (c *Client) UpdateUserStory(ctx context.Context, projectID uuid.UUID, story model.UserStory) error {
	req := updateStoryRequest{
		Title:       story.Title,
		Description: story.Description,
		Priority:    story.Priority,
		Status:      story.Status,
	}
	if story.Sprint != nil {
		req.SprintID = story.Sprint.String()
	}
	path := fmt.Sprintf("/project/%s/user-story/%s", projectID, story.ID)
	return c.do(ctx, http.MethodPut, path, req, nil)
}

func (c *Client) DeleteUserStory(ctx context.Context, projectID, storyID uuid.UUID) error {
	path := fmt.Sprintf("/project/%s/user-story/%s", projectID, storyID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (p storyPayload) toModel() (model.UserStory, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return model.UserStory{}, fmt.Errorf("mapping story response: bad id %q: %w", p.ID, err)
	}

	story := model.UserStory{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		Priority:    model.Priority(p.Priority),
		Status:      model.Status(p.Status),
	}
	if p.Sprint != "" {
		sprintID, err := uuid.Parse(p.Sprint)
		if err != nil {
			return model.UserStory{}, fmt.Errorf("mapping story %s: bad sprint reference %q: %w", p.ID, p.Sprint, err)
		}
		story.Sprint = &sprintID
	}
	return story, nil
}
