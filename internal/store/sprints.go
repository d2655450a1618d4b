package store

import (
	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// ReplaceSprints swaps the sprints collection wholesale.
func (s *Store) ReplaceSprints(sprints []model.Sprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Sprints = append([]model.Sprint(nil), sprints...)
}

// AddSprint appends a persisted sprint.
func (s *Store) AddSprint(sprint model.Sprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Sprints = append(s.project.Sprints, sprint)
}

// UpdateSprint replaces the sprint with the matching id, a no-op when
// the id is absent.
func (s *Store) UpdateSprint(sprint model.Sprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.Sprints {
		if s.project.Sprints[i].ID == sprint.ID {
			s.project.Sprints[i] = sprint
			return
		}
	}
}

// RemoveSprint filters out the matching id and cascade-clears the
// sprint reference of every story that pointed at it, so no story is
// ever displayed against a sprint that no longer exists.
func (s *Store) RemoveSprint(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.project.Sprints[:0]
	for _, sprint := range s.project.Sprints {
		if sprint.ID != id {
			kept = append(kept, sprint)
		}
	}
	s.project.Sprints = kept

	for i := range s.project.UserStories {
		ref := s.project.UserStories[i].Sprint
		if ref != nil && *ref == id {
			s.project.UserStories[i].Sprint = nil
		}
	}
}

// ActiveSprint returns the sprint with status ACTIVE. By convention a
// project has at most one; the first match wins.
func (s *Store) ActiveSprint() (model.Sprint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sprint := range s.project.Sprints {
		if sprint.Status == model.SprintActive {
			return sprint, true
		}
	}
	return model.Sprint{}, false
}

// SprintExists reports whether the sprints collection holds the id.
func (s *Store) SprintExists(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sprint := range s.project.Sprints {
		if sprint.ID == id {
			return true
		}
	}
	return false
}

// Sprint returns the sprint with the given id.
func (s *Store) Sprint(id uuid.UUID) (model.Sprint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sprint := range s.project.Sprints {
		if sprint.ID == id {
			return sprint, true
		}
	}
	return model.Sprint{}, false
}
