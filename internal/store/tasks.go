package store

import (
	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// Task loads race against navigation: the board can be reloaded while
// an earlier fetch is still in flight, and the late response must not
// clobber newer state. Each load takes a generation; only the latest
// generation is allowed to complete.

// BeginTaskLoad marks the start of a task fetch and returns its
// generation.
func (s *Store) BeginTaskLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskGen++
	return s.taskGen
}

// CompleteTaskLoad installs the fetched tasks if gen is still the
// latest load. It reports whether the result was applied.
func (s *Store) CompleteTaskLoad(gen uint64, tasks []model.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.taskGen {
		return false
	}
	s.tasks = append([]model.Task(nil), tasks...)
	return true
}

// Tasks returns a snapshot of the active sprint's task list.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

// AddTask appends a task persisted by the server.
func (s *Store) AddTask(task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
}

// ReplaceTask replaces the task with the matching id, a no-op when
// absent. Used after the server accepted a task update.
func (s *Store) ReplaceTask(task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return
		}
	}
}

// Task returns the task with the given id from the current list.
func (s *Store) Task(id uuid.UUID) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}
