// Package board derives the kanban view from the active sprint's
// tasks and stories. Everything here is a pure function over the
// snapshots the store hands out.
package board

import (
	"unbacklog/internal/model"

	"github.com/google/uuid"
)

// Buckets partitions tasks by status, one column each. The partition
// is exhaustive and exclusive: every task lands in exactly one column.
type Buckets struct {
	ToDo  []model.Task
	Doing []model.Task
	Done  []model.Task
}

// Partition distributes tasks into status buckets. A task with an
// unknown status is shown in TO_DO rather than dropped.
func Partition(tasks []model.Task) Buckets {
	var b Buckets
	for _, task := range tasks {
		switch task.Status {
		case model.StatusDoing:
			b.Doing = append(b.Doing, task)
		case model.StatusDone:
			b.Done = append(b.Done, task)
		default:
			b.ToDo = append(b.ToDo, task)
		}
	}
	return b
}

// Completion is the percentage of DONE stories among the sprint's
// stories, 0 for an empty set.
func Completion(stories []model.UserStory) float64 {
	if len(stories) == 0 {
		return 0
	}
	done := 0
	for _, story := range stories {
		if story.Status == model.StatusDone {
			done++
		}
	}
	return float64(done) / float64(len(stories)) * 100
}

// TaskCounts counts tasks per linked story, for display only. Tasks
// without a story are not counted.
func TaskCounts(tasks []model.Task) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, task := range tasks {
		if task.UserStoryID != nil {
			counts[*task.UserStoryID]++
		}
	}
	return counts
}

// Next returns the follow-up status of the one-directional kanban
// flow: TO_DO → DOING → DONE. DONE is terminal, reported by ok=false.
func Next(status model.Status) (model.Status, bool) {
	switch status {
	case model.StatusToDo:
		return model.StatusDoing, true
	case model.StatusDoing:
		return model.StatusDone, true
	default:
		return "", false
	}
}
