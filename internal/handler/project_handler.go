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

type ProjectHandler struct {
	api      Remote
	projects *store.Store
	sessions *session.Store
}

func NewProjectHandler(api Remote, projects *store.Store, sessions *session.Store) *ProjectHandler {
	return &ProjectHandler{api: api, projects: projects, sessions: sessions}
}

type AssociateRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type CreateProjectRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Associates  []AssociateRequest `json:"associates" binding:"dive"`
}

type ProjectRow struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	MyRole      string            `json:"myRole"`
	Associates  []model.Associate `json:"associates"`
}

// List godoc
// @Summary      Projects of the current user
// @Tags         Projects
// @Produce      json
// @Success      200  {array}  ProjectRow
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	summaries, err := h.api.Projects(c.Request.Context())
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao buscar projetos")
		return
	}

	user, _ := h.sessions.User()
	rows := make([]ProjectRow, 0, len(summaries))
	for _, summary := range summaries {
		row := ProjectRow{
			ID:          summary.ID.String(),
			Name:        summary.Name,
			Description: summary.Description,
			Associates:  summary.Associates,
		}
		for _, associate := range summary.Associates {
			if associate.Email == user.Email {
				row.MyRole = model.RoleLabels[associate.Role]
				break
			}
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary      Create a project
// @Tags         Projects
// @Accept       json
// @Param        project  body  CreateProjectRequest  true  "Project data"
// @Success      201
// @Failure      400  {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O nome do projeto é obrigatório"})
		return
	}

	associates := make([]remote.NewAssociate, 0, len(req.Associates))
	for _, a := range req.Associates {
		if !model.ValidRole(a.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Papel inválido: " + a.Role})
			return
		}
		associates = append(associates, remote.NewAssociate{Email: a.Email, Role: a.Role})
	}

	if err := h.api.CreateProject(c.Request.Context(), req.Name, req.Description, associates); err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao criar projeto")
		return
	}
	c.Status(http.StatusCreated)
}

// Open godoc
// @Summary      Open a project and load its collections
// @Tags         Projects
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/open [post]
func (h *ProjectHandler) Open(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de projeto inválido"})
		return
	}

	summaries, err := h.api.Projects(c.Request.Context())
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao abrir projeto")
		return
	}

	var summary *model.ProjectSummary
	for i := range summaries {
		if summaries[i].ID == projectID {
			summary = &summaries[i]
			break
		}
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Projeto não encontrado"})
		return
	}

	stories, err := h.api.UserStories(c.Request.Context(), projectID)
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao buscar histórias de usuário")
		return
	}
	sprints, err := h.api.Sprints(c.Request.Context(), projectID)
	if err != nil {
		respondRemoteError(c, h.sessions, err, "Erro ao buscar sprints")
		return
	}

	project := model.Project{
		ID:          summary.ID,
		Name:        summary.Name,
		Description: summary.Description,
		Associates:  summary.Associates,
		UserStories: stories,
		Sprints:     sprints,
	}
	h.projects.SetProject(project)

	c.JSON(http.StatusOK, gin.H{
		"project":   h.projects.Project(),
		"canManage": h.sessions.IsProductOwner(project),
	})
}
