package store

import (
	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// ReplaceUserStories swaps the stories collection wholesale.
func (s *Store) ReplaceUserStories(stories []model.UserStory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.UserStories = append([]model.UserStory(nil), stories...)
}

// AddUserStory appends a persisted story.
func (s *Store) AddUserStory(story model.UserStory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.UserStories = append(s.project.UserStories, story)
}

// UpdateUserStory replaces the story with the matching id, a no-op
// when the id is absent.
func (s *Store) UpdateUserStory(story model.UserStory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.UserStories {
		if s.project.UserStories[i].ID == story.ID {
			s.project.UserStories[i] = story
			return
		}
	}
}

// RemoveUserStory filters out the matching id, a no-op when absent.
func (s *Store) RemoveUserStory(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.project.UserStories[:0]
	for _, story := range s.project.UserStories {
		if story.ID != id {
			kept = append(kept, story)
		}
	}
	s.project.UserStories = kept
}

// StoriesForSprint returns the stories planned into the given sprint.
func (s *Store) StoriesForSprint(sprintID uuid.UUID) []model.UserStory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var stories []model.UserStory
	for _, story := range s.project.UserStories {
		if story.Sprint != nil && *story.Sprint == sprintID {
			stories = append(stories, story)
		}
	}
	return stories
}
