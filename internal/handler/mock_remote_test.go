package handler_test

import (
	"context"
	"os"
	"testing"

	"unbacklog/internal/model"
	"unbacklog/internal/remote"
	"unbacklog/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// MockRemote substitutes the API client behind the views. It also
// covers the session store's slice of the client so one mock serves
// both dependencies.
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) Login(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockRemote) Register(ctx context.Context, email, password, name string) error {
	args := m.Called(ctx, email, password, name)
	return args.Error(0)
}

func (m *MockRemote) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRemote) CurrentUser(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRemote) SessionToken() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockRemote) Projects(ctx context.Context) ([]model.ProjectSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectSummary), args.Error(1)
}

func (m *MockRemote) CreateProject(ctx context.Context, name, description string, associates []remote.NewAssociate) error {
	args := m.Called(ctx, name, description, associates)
	return args.Error(0)
}

func (m *MockRemote) UserStories(ctx context.Context, projectID uuid.UUID) ([]model.UserStory, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserStory), args.Error(1)
}

func (m *MockRemote) CreateUserStory(ctx context.Context, projectID uuid.UUID, draft remote.StoryDraft) (uuid.UUID, error) {
	args := m.Called(ctx, projectID, draft)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRemote) UpdateUserStory(ctx context.Context, projectID uuid.UUID, story model.UserStory) error {
	args := m.Called(ctx, projectID, story)
	return args.Error(0)
}

func (m *MockRemote) DeleteUserStory(ctx context.Context, projectID, storyID uuid.UUID) error {
	args := m.Called(ctx, projectID, storyID)
	return args.Error(0)
}

func (m *MockRemote) Sprints(ctx context.Context, projectID uuid.UUID) ([]model.Sprint, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sprint), args.Error(1)
}

func (m *MockRemote) CreateSprint(ctx context.Context, projectID uuid.UUID, draft remote.SprintDraft) (*model.Sprint, error) {
	args := m.Called(ctx, projectID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sprint), args.Error(1)
}

func (m *MockRemote) UpdateSprint(ctx context.Context, projectID, sprintID uuid.UUID, draft remote.SprintDraft) error {
	args := m.Called(ctx, projectID, sprintID, draft)
	return args.Error(0)
}

func (m *MockRemote) DeleteSprint(ctx context.Context, projectID, sprintID uuid.UUID) error {
	args := m.Called(ctx, projectID, sprintID)
	return args.Error(0)
}

func (m *MockRemote) Tasks(ctx context.Context, sprintID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockRemote) CreateTask(ctx context.Context, sprintID uuid.UUID, draft remote.TaskDraft) (*model.Task, error) {
	args := m.Called(ctx, sprintID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockRemote) UpdateTask(ctx context.Context, taskID uuid.UUID, update remote.TaskUpdate) error {
	args := m.Called(ctx, taskID, update)
	return args.Error(0)
}

// authenticatedSession builds a session store already resolved to the
// given user.
func authenticatedSession(api *MockRemote, user model.User) *session.Store {
	api.On("CurrentUser", mock.Anything).Return(&user, nil).Once()
	sessions := session.New(api)
	sessions.Resolve(context.Background())
	return sessions
}
