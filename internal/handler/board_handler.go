package handler

import (
	"errors"
	"math"
	"net/http"

	"unbacklog/internal/board"
	"unbacklog/internal/model"
	"unbacklog/internal/remote"
	"unbacklog/internal/session"
	"unbacklog/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardHandler struct {
	api      Remote
	projects *store.Store
	sessions *session.Store
}

func NewBoardHandler(api Remote, projects *store.Store, sessions *session.Store) *BoardHandler {
	return &BoardHandler{api: api, projects: projects, sessions: sessions}
}

type TaskRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Priority      string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	UserStoryID   string `json:"userStoryId" binding:"omitempty,uuid"`
	ResponsableID string `json:"responsableId" binding:"omitempty,uuid"`
}

type BacklogRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	TaskCount   int    `json:"taskCount"`
}

type BoardColumns struct {
	ToDo  []model.Task `json:"toDo"`
	Doing []model.Task `json:"doing"`
	Done  []model.Task `json:"done"`
}

type BoardResponse struct {
	Active     bool         `json:"active"`
	Message    string       `json:"message,omitempty"`
	Sprint     model.Sprint `json:"sprint,omitempty"`
	Completion int          `json:"completion"`
	Columns    BoardColumns `json:"columns"`
	Backlog    []BacklogRow `json:"backlog"`
}

// View godoc
// @Summary      Kanban board of the active sprint
// @Tags         Board
// @Produce      json
// @Success      200  {object}  BoardResponse
// @Router       /board [get]
func (h *BoardHandler) View(c *gin.Context) {
	if !h.projects.HasProject() {
		c.JSON(http.StatusConflict, gin.H{"error": "Nenhum projeto aberto"})
		return
	}

	sprint, ok := h.projects.ActiveSprint()
	if !ok {
		c.JSON(http.StatusOK, BoardResponse{
			Active:  false,
			Message: "Nenhuma sprint ativa no momento",
		})
		return
	}

	gen := h.projects.BeginTaskLoad()
	tasks, err := h.api.Tasks(c.Request.Context(), sprint.ID)
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao buscar tasks")
		return
	}
	if !h.projects.CompleteTaskLoad(gen, tasks) {
		// A newer load finished first; render its result instead.
		tasks = h.projects.Tasks()
	}

	c.JSON(http.StatusOK, h.boardResponse(sprint, tasks))
}

// CreateTask godoc
// @Summary      Create a task in the active sprint
// @Tags         Board
// @Accept       json
// @Produce      json
// @Param        task  body  TaskRequest  true  "Task draft"
// @Success      201  {object}  model.Task
// @Failure      400  {object}  map[string]string
// @Router       /board/tasks [post]
func (h *BoardHandler) CreateTask(c *gin.Context) {
	sprint, ok := h.projects.ActiveSprint()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Nenhuma sprint ativa no momento"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O título é obrigatório"})
		return
	}

	if req.UserStoryID != "" {
		storyID, _ := uuid.Parse(req.UserStoryID)
		if !storyInSprint(h.projects.StoriesForSprint(sprint.ID), storyID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "História não pertence à sprint ativa"})
			return
		}
	}

	draft := remote.TaskDraft{
		Title:         req.Title,
		Description:   req.Description,
		Status:        model.StatusToDo,
		Priority:      priorityOrDefault(req.Priority),
		UserStoryID:   req.UserStoryID,
		ResponsableID: req.ResponsableID,
	}

	task, err := h.api.CreateTask(c.Request.Context(), sprint.ID, draft)
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao criar task")
		return
	}

	h.projects.AddTask(*task)
	c.JSON(http.StatusCreated, task)
}

// MoveTask godoc
// @Summary      Move a task to its next status
// @Tags         Board
// @Produce      json
// @Param        id  path  string  true  "Task id"
// @Success      200  {object}  model.Task
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /board/tasks/{id}/move [post]
func (h *BoardHandler) MoveTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de task inválido"})
		return
	}

	task, ok := h.projects.Task(taskID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task não encontrada"})
		return
	}

	next, ok := board.Next(task.Status)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Task já está concluída"})
		return
	}

	// Remote first: the local list only changes after the server
	// accepted the move, so a rejected status never shows up.
	if err := h.api.UpdateTask(c.Request.Context(), taskID, remote.TaskUpdate{Status: next}); err != nil {
		switch {
		case errors.Is(err, remote.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Você não tem permissão para atualizar esta task"})
		case errors.Is(err, remote.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task não encontrada"})
		case errors.Is(err, remote.ErrUnauthorized):
			h.sessions.Invalidate()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão expirada. Entre novamente."})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Erro ao mover a task. Tente novamente."})
		}
		return
	}

	task.Status = next
	h.projects.ReplaceTask(task)
	c.JSON(http.StatusOK, task)
}

func (h *BoardHandler) boardResponse(sprint model.Sprint, tasks []model.Task) BoardResponse {
	stories := h.projects.StoriesForSprint(sprint.ID)
	buckets := board.Partition(tasks)
	counts := board.TaskCounts(tasks)

	backlog := make([]BacklogRow, 0, len(stories))
	for _, story := range stories {
		backlog = append(backlog, BacklogRow{
			ID:          story.ID.String(),
			Title:       story.Title,
			Status:      string(story.Status),
			StatusLabel: storyStatusLabel(story.Status),
			TaskCount:   counts[story.ID],
		})
	}

	return BoardResponse{
		Active:     true,
		Sprint:     sprint,
		Completion: int(math.Round(board.Completion(stories))),
		Columns: BoardColumns{
			ToDo:  emptyIfNil(buckets.ToDo),
			Doing: emptyIfNil(buckets.Doing),
			Done:  emptyIfNil(buckets.Done),
		},
		Backlog: backlog,
	}
}

func storyInSprint(stories []model.UserStory, storyID uuid.UUID) bool {
	for _, story := range stories {
		if story.ID == storyID {
			return true
		}
	}
	return false
}

func emptyIfNil(tasks []model.Task) []model.Task {
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}
