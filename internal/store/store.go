package store

import (
	"sync"

	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// Store holds the currently open project and its nested collections,
// plus the task list of the active sprint. All operations are local
// state transformations; callers persist remotely first and apply the
// server's answer here.
//
// Views receive copies, never the held slices.
type Store struct {
	mu      sync.RWMutex
	project model.Project
	tasks   []model.Task
	taskGen uint64
}

func New() *Store {
	return &Store{}
}

// SetProject replaces the held project wholesale, dropping any task
// list that belonged to the previous one.
func (s *Store) SetProject(project model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = project
	s.tasks = nil
	s.taskGen++
}

// Project returns a snapshot of the aggregate.
func (s *Store) Project() model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// HasProject reports whether a project is currently open.
func (s *Store) HasProject() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project.ID != uuid.Nil
}

func (s *Store) snapshotLocked() model.Project {
	snapshot := s.project
	snapshot.Associates = append([]model.Associate(nil), s.project.Associates...)
	snapshot.UserStories = append([]model.UserStory(nil), s.project.UserStories...)
	snapshot.Sprints = append([]model.Sprint(nil), s.project.Sprints...)
	return snapshot
}
