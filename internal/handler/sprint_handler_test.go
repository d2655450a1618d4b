package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"unbacklog/internal/handler"
	"unbacklog/internal/model"
	"unbacklog/internal/remote"
	"unbacklog/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sprintFixture struct {
	api      *MockRemote
	projects *store.Store
	router   *gin.Engine
	project  model.Project
}

func newSprintFixture(t *testing.T, role string) *sprintFixture {
	t.Helper()

	api := new(MockRemote)
	user := model.User{ID: uuid.New(), Name: "Dev", Email: "dev@example.com"}
	sessions := authenticatedSession(api, user)

	project := model.Project{
		ID:   uuid.New(),
		Name: "UnBacklog",
		Associates: []model.Associate{
			{UserID: user.ID, Name: user.Name, Email: user.Email, Role: role},
		},
	}
	projects := store.New()
	projects.SetProject(project)

	h := handler.NewSprintHandler(api, projects, sessions)
	router := gin.New()
	router.GET("/sprints", h.List)
	router.POST("/sprints", h.Create)
	router.PUT("/sprints/:id", h.Update)
	router.DELETE("/sprints/:id", h.Delete)

	return &sprintFixture{api: api, projects: projects, router: router, project: project}
}

func postJSON(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSprint_AssignsServerID(t *testing.T) {
	f := newSprintFixture(t, model.RoleProductOwner)

	serverID := uuid.New()
	f.api.On("CreateSprint", mock.Anything, f.project.ID, mock.MatchedBy(func(draft remote.SprintDraft) bool {
		// New sprints always start planned, whatever the client sent.
		return draft.Objective == "Release 1" && draft.Status == model.SprintPlanned
	})).Return(&model.Sprint{ID: serverID, Objective: "Release 1", Status: model.SprintPlanned}, nil)

	w := postJSON(f.router, "/sprints", `{"objective":"Release 1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	sprint, ok := f.projects.Sprint(serverID)
	require.True(t, ok)
	assert.Equal(t, model.SprintPlanned, sprint.Status)
	f.api.AssertExpectations(t)
}

func TestCreateSprint_RequiresProductOwner(t *testing.T) {
	f := newSprintFixture(t, model.RoleDeveloper)

	w := postJSON(f.router, "/sprints", `{"objective":"Release 1"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Apenas o Product Owner pode criar sprints")
	f.api.AssertNotCalled(t, "CreateSprint", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSprint_MissingObjective(t *testing.T) {
	f := newSprintFixture(t, model.RoleProductOwner)

	w := postJSON(f.router, "/sprints", `{"startDate":"2025-03-10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "O objetivo é obrigatório")
}

func TestSprintList_DeleteAffordanceOnlyWhenPlanned(t *testing.T) {
	f := newSprintFixture(t, model.RoleProductOwner)
	planned := model.Sprint{ID: uuid.New(), Objective: "next", Status: model.SprintPlanned}
	active := model.Sprint{ID: uuid.New(), Objective: "now", Status: model.SprintActive}
	f.projects.ReplaceSprints([]model.Sprint{planned, active})

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sprints", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body handler.SprintListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.CanManage)
	require.Len(t, body.Sprints, 2)
	byID := map[string]handler.SprintRow{}
	for _, row := range body.Sprints {
		byID[row.ID] = row
	}
	assert.True(t, byID[planned.ID.String()].CanDelete)
	assert.False(t, byID[active.ID.String()].CanDelete)
	assert.Equal(t, "Ativa", byID[active.ID.String()].StatusLabel)
}

func TestUpdateSprint_ReloadsCollection(t *testing.T) {
	f := newSprintFixture(t, model.RoleProductOwner)
	sprint := model.Sprint{ID: uuid.New(), Objective: "old", Status: model.SprintPlanned}
	f.projects.ReplaceSprints([]model.Sprint{sprint})

	reloaded := []model.Sprint{{ID: sprint.ID, Objective: "new", Status: model.SprintActive}}
	f.api.On("UpdateSprint", mock.Anything, f.project.ID, sprint.ID, mock.Anything).Return(nil)
	f.api.On("Sprints", mock.Anything, f.project.ID).Return(reloaded, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/sprints/"+sprint.ID.String(), strings.NewReader(`{"objective":"new","status":"ACTIVE"}`))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	got, ok := f.projects.ActiveSprint()
	require.True(t, ok)
	assert.Equal(t, "new", got.Objective)
	f.api.AssertExpectations(t)
}

func TestDeleteSprint_ActiveRejected(t *testing.T) {
	f := newSprintFixture(t, model.RoleProductOwner)
	active := model.Sprint{ID: uuid.New(), Objective: "now", Status: model.SprintActive}
	f.projects.ReplaceSprints([]model.Sprint{active})

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/sprints/"+active.ID.String(), nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Apenas sprints planejadas podem ser excluídas")
	f.api.AssertNotCalled(t, "DeleteSprint", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteSprint_PlannedClearsStoryReferences(t *testing.T) {
	f := newSprintFixture(t, model.RoleProductOwner)
	planned := model.Sprint{ID: uuid.New(), Objective: "next", Status: model.SprintPlanned}
	f.projects.ReplaceSprints([]model.Sprint{planned})

	story := model.UserStory{ID: uuid.New(), Title: "s", Status: model.StatusToDo, Priority: model.PriorityMedium, Sprint: &planned.ID}
	f.projects.ReplaceUserStories([]model.UserStory{story})

	f.api.On("DeleteSprint", mock.Anything, f.project.ID, planned.ID).Return(nil)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/sprints/"+planned.ID.String(), nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	project := f.projects.Project()
	assert.Empty(t, project.Sprints)
	require.Len(t, project.UserStories, 1)
	assert.Nil(t, project.UserStories[0].Sprint)
}

func TestDeleteSprint_Unknown(t *testing.T) {
	f := newSprintFixture(t, model.RoleProductOwner)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/sprints/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	f.api.AssertNotCalled(t, "DeleteSprint", mock.Anything, mock.Anything, mock.Anything)
}
