package handler

import (
	"context"
	"errors"
	"net/http"

	"unbacklog/internal/model"
	"unbacklog/internal/remote"
	"unbacklog/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Remote is the slice of the API client the views call. Handlers
// depend on the interface so tests can substitute it.
type Remote interface {
	Projects(ctx context.Context) ([]model.ProjectSummary, error)
	CreateProject(ctx context.Context, name, description string, associates []remote.NewAssociate) error

	UserStories(ctx context.Context, projectID uuid.UUID) ([]model.UserStory, error)
	CreateUserStory(ctx context.Context, projectID uuid.UUID, draft remote.StoryDraft) (uuid.UUID, error)
	UpdateUserStory(ctx context.Context, projectID uuid.UUID, story model.UserStory) error
	DeleteUserStory(ctx context.Context, projectID, storyID uuid.UUID) error

	Sprints(ctx context.Context, projectID uuid.UUID) ([]model.Sprint, error)
	CreateSprint(ctx context.Context, projectID uuid.UUID, draft remote.SprintDraft) (*model.Sprint, error)
	UpdateSprint(ctx context.Context, projectID, sprintID uuid.UUID, draft remote.SprintDraft) error
	DeleteSprint(ctx context.Context, projectID, sprintID uuid.UUID) error

	Tasks(ctx context.Context, sprintID uuid.UUID) ([]model.Task, error)
	CreateTask(ctx context.Context, sprintID uuid.UUID, draft remote.TaskDraft) (*model.Task, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, update remote.TaskUpdate) error
}

// respondRemoteError converts a remote failure into the view's error
// answer. A 401 from the API also invalidates the local session: the
// credential is no longer accepted, whatever the view was doing.
func respondRemoteError(c *gin.Context, sessions *session.Store, err error, fallback string) {
	switch {
	case errors.Is(err, remote.ErrUnauthorized):
		if sessions != nil {
			sessions.Invalidate()
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão expirada. Entre novamente."})
	case errors.Is(err, remote.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Você não tem permissão para executar esta ação"})
	case errors.Is(err, remote.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro não encontrado"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	}
}
