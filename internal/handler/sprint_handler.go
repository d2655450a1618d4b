package handler

import (
	"net/http"
	"time"

	"unbacklog/internal/model"
	"unbacklog/internal/remote"
	"unbacklog/internal/session"
	"unbacklog/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SprintHandler struct {
	api      Remote
	projects *store.Store
	sessions *session.Store
}

func NewSprintHandler(api Remote, projects *store.Store, sessions *session.Store) *SprintHandler {
	return &SprintHandler{api: api, projects: projects, sessions: sessions}
}

type SprintRequest struct {
	Objective  string `json:"objective" binding:"required"`
	StartDate  string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	FinishDate string `json:"finishDate" binding:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" binding:"omitempty,oneof=PLANNED ACTIVE COMPLETED"`
}

type SprintRow struct {
	ID          string     `json:"id"`
	Objective   string     `json:"objective"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	FinishDate  *time.Time `json:"finishDate,omitempty"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"statusLabel"`
	StoryCount  int        `json:"storyCount"`
	CanDelete   bool       `json:"canDelete"`
}

type SprintListResponse struct {
	Sprints   []SprintRow `json:"sprints"`
	CanManage bool        `json:"canManage"`
}

// List godoc
// @Summary      Sprints of the open project
// @Tags         Sprints
// @Produce      json
// @Success      200  {object}  SprintListResponse
// @Router       /sprints [get]
func (h *SprintHandler) List(c *gin.Context) {
	if !h.projects.HasProject() {
		c.JSON(http.StatusConflict, gin.H{"error": "Nenhum projeto aberto"})
		return
	}

	project := h.projects.Project()
	rows := make([]SprintRow, 0, len(project.Sprints))
	for _, sprint := range project.Sprints {
		rows = append(rows, h.sprintRow(sprint))
	}
	c.JSON(http.StatusOK, SprintListResponse{
		Sprints:   rows,
		CanManage: h.sessions.IsProductOwner(project),
	})
}

// Create godoc
// @Summary      Create a sprint
// @Tags         Sprints
// @Accept       json
// @Produce      json
// @Param        sprint  body  SprintRequest  true  "Sprint draft"
// @Success      201  {object}  model.Sprint
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /sprints [post]
func (h *SprintHandler) Create(c *gin.Context) {
	if !h.projects.HasProject() {
		c.JSON(http.StatusConflict, gin.H{"error": "Nenhum projeto aberto"})
		return
	}
	if !h.sessions.IsProductOwner(h.projects.Project()) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Apenas o Product Owner pode criar sprints"})
		return
	}

	var req SprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O objetivo é obrigatório"})
		return
	}

	draft := remote.SprintDraft{
		Objective:  req.Objective,
		StartDate:  req.StartDate,
		FinishDate: req.FinishDate,
		Status:     model.SprintPlanned,
	}

	sprint, err := h.api.CreateSprint(c.Request.Context(), h.projects.Project().ID, draft)
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao criar sprint")
		return
	}

	h.projects.AddSprint(*sprint)
	c.JSON(http.StatusCreated, sprint)
}

// Update godoc
// @Summary      Update a sprint and refresh the sprint list
// @Tags         Sprints
// @Accept       json
// @Produce      json
// @Param        id      path  string         true  "Sprint id"
// @Param        sprint  body  SprintRequest  true  "Sprint fields"
// @Success      200  {array}  model.Sprint
// @Router       /sprints/{id} [put]
func (h *SprintHandler) Update(c *gin.Context) {
	sprintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de sprint inválido"})
		return
	}

	var req SprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O objetivo é obrigatório"})
		return
	}

	status := model.SprintStatus(req.Status)
	if req.Status == "" {
		status = model.SprintPlanned
	}
	draft := remote.SprintDraft{
		Objective:  req.Objective,
		StartDate:  req.StartDate,
		FinishDate: req.FinishDate,
		Status:     status,
	}

	projectID := h.projects.Project().ID
	if err := h.api.UpdateSprint(c.Request.Context(), projectID, sprintID, draft); err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao atualizar sprint")
		return
	}

	// The server may touch more than the edited sprint (e.g. when a
	// sprint is activated); reload the collection instead of patching
	// the one entry.
	sprints, err := h.api.Sprints(c.Request.Context(), projectID)
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao recarregar sprints")
		return
	}
	h.projects.ReplaceSprints(sprints)
	c.JSON(http.StatusOK, sprints)
}

// Delete godoc
// @Summary      Delete a planned sprint
// @Tags         Sprints
// @Param        id  path  string  true  "Sprint id"
// @Success      204
// @Failure      409  {object}  map[string]string
// @Router       /sprints/{id} [delete]
func (h *SprintHandler) Delete(c *gin.Context) {
	sprintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de sprint inválido"})
		return
	}

	sprint, ok := h.projects.Sprint(sprintID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sprint não encontrada"})
		return
	}
	if !sprint.Deletable() {
		c.JSON(http.StatusConflict, gin.H{"error": "Apenas sprints planejadas podem ser excluídas"})
		return
	}

	projectID := h.projects.Project().ID
	if err := h.api.DeleteSprint(c.Request.Context(), projectID, sprintID); err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao excluir sprint")
		return
	}

	h.projects.RemoveSprint(sprintID)
	c.Status(http.StatusNoContent)
}

func (h *SprintHandler) sprintRow(sprint model.Sprint) SprintRow {
	return SprintRow{
		ID:          sprint.ID.String(),
		Objective:   sprint.Objective,
		StartDate:   sprint.StartDate,
		FinishDate:  sprint.FinishDate,
		Status:      string(sprint.Status),
		StatusLabel: sprintStatusLabel(sprint.Status),
		StoryCount:  len(h.projects.StoriesForSprint(sprint.ID)),
		CanDelete:   sprint.Deletable(),
	}
}

func sprintStatusLabel(status model.SprintStatus) string {
	switch status {
	case model.SprintPlanned:
		return "Planejada"
	case model.SprintActive:
		return "Ativa"
	case model.SprintCompleted:
		return "Concluída"
	default:
		return string(status)
	}
}
