package handler

import (
	"net/http"

	"unbacklog/internal/model"
	"unbacklog/internal/remote"
	"unbacklog/internal/session"
	"unbacklog/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoryHandler struct {
	api      Remote
	projects *store.Store
	sessions *session.Store
}

func NewStoryHandler(api Remote, projects *store.Store, sessions *session.Store) *StoryHandler {
	return &StoryHandler{api: api, projects: projects, sessions: sessions}
}

type StoryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Status      string `json:"status" binding:"omitempty,oneof=TO_DO DOING DONE"`
	SprintID    string `json:"sprintId" binding:"omitempty,uuid"`
}

type StoryRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	PriorityLabel string `json:"priorityLabel"`
	Status        string `json:"status"`
	StatusLabel   string `json:"statusLabel"`
	Sprint        string `json:"sprint,omitempty"`
}

// List godoc
// @Summary      Story table of the open project
// @Tags         Stories
// @Produce      json
// @Param        status    query  string  false  "Filter by status"    Enums(TO_DO, DOING, DONE)
// @Param        priority  query  string  false  "Filter by priority"  Enums(LOW, MEDIUM, HIGH)
// @Success      200  {array}  StoryRow
// @Router       /stories [get]
func (h *StoryHandler) List(c *gin.Context) {
	if !h.projects.HasProject() {
		c.JSON(http.StatusConflict, gin.H{"error": "Nenhum projeto aberto"})
		return
	}

	status := c.Query("status")
	priority := c.Query("priority")

	rows := make([]StoryRow, 0)
	for _, story := range h.projects.Project().UserStories {
		if status != "" && story.Status != model.Status(status) {
			continue
		}
		if priority != "" && story.Priority != model.Priority(priority) {
			continue
		}
		rows = append(rows, storyRow(story))
	}
	c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary      Create a user story
// @Tags         Stories
// @Accept       json
// @Produce      json
// @Param        story  body  StoryRequest  true  "Story draft"
// @Success      201  {object}  model.UserStory
// @Failure      400  {object}  map[string]string
// @Router       /stories [post]
func (h *StoryHandler) Create(c *gin.Context) {
	if !h.projects.HasProject() {
		c.JSON(http.StatusConflict, gin.H{"error": "Nenhum projeto aberto"})
		return
	}

	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O título é obrigatório"})
		return
	}

	draft := remote.StoryDraft{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priorityOrDefault(req.Priority),
		Status:      statusOrDefault(req.Status),
	}

	projectID := h.projects.Project().ID
	id, err := h.api.CreateUserStory(c.Request.Context(), projectID, draft)
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao criar história de usuário")
		return
	}

	story := model.UserStory{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Status:      draft.Status,
	}
	h.projects.AddUserStory(story)
	c.JSON(http.StatusCreated, story)
}

// Update godoc
// @Summary      Update a user story, including sprint assignment
// @Tags         Stories
// @Accept       json
// @Produce      json
// @Param        id     path  string        true  "Story id"
// @Param        story  body  StoryRequest  true  "Story fields"
// @Success      200  {object}  model.UserStory
// @Failure      400  {object}  map[string]string
// @Router       /stories/{id} [put]
func (h *StoryHandler) Update(c *gin.Context) {
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de história inválido"})
		return
	}

	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O título é obrigatório"})
		return
	}

	story := model.UserStory{
		ID:          storyID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priorityOrDefault(req.Priority),
		Status:      statusOrDefault(req.Status),
	}
	if req.SprintID != "" {
		sprintID, _ := uuid.Parse(req.SprintID)
		// A story may only reference a sprint of the open project.
		if !h.projects.SprintExists(sprintID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sprint não encontrada no projeto"})
			return
		}
		story.Sprint = &sprintID
	}

	projectID := h.projects.Project().ID
	if err := h.api.UpdateUserStory(c.Request.Context(), projectID, story); err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao atualizar história de usuário")
		return
	}

	h.projects.UpdateUserStory(story)
	c.JSON(http.StatusOK, story)
}

// Delete godoc
// @Summary      Delete a user story
// @Tags         Stories
// @Param        id  path  string  true  "Story id"
// @Success      204
// @Router       /stories/{id} [delete]
func (h *StoryHandler) Delete(c *gin.Context) {
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de história inválido"})
		return
	}

	projectID := h.projects.Project().ID
	if err := h.api.DeleteUserStory(c.Request.Context(), projectID, storyID); err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao deletar")
		return
	}

	h.projects.RemoveUserStory(storyID)
	c.Status(http.StatusNoContent)
}

func storyRow(story model.UserStory) StoryRow {
	row := StoryRow{
		ID:            story.ID.String(),
		Title:         story.Title,
		Description:   story.Description,
		Priority:      string(story.Priority),
		PriorityLabel: priorityLabel(story.Priority),
		Status:        string(story.Status),
		StatusLabel:   storyStatusLabel(story.Status),
	}
	if story.Sprint != nil {
		row.Sprint = story.Sprint.String()
	}
	return row
}

func storyStatusLabel(status model.Status) string {
	switch status {
	case model.StatusToDo:
		return "Pendente"
	case model.StatusDoing:
		return "Em andamento"
	case model.StatusDone:
		return "Concluída"
	default:
		return "-"
	}
}

func priorityLabel(priority model.Priority) string {
	switch priority {
	case model.PriorityHigh:
		return "Alta"
	case model.PriorityMedium:
		return "Média"
	case model.PriorityLow:
		return "Baixa"
	default:
		return "-"
	}
}

func priorityOrDefault(value string) model.Priority {
	if value == "" {
		return model.PriorityMedium
	}
	return model.Priority(value)
}

func statusOrDefault(value string) model.Status {
	if value == "" {
		return model.StatusToDo
	}
	return model.Status(value)
}
