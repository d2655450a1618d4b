package board_test

import (
	"testing"

	"unbacklog/internal/board"
	"unbacklog/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func task(status model.Status, story *uuid.UUID) model.Task {
	return model.Task{
		ID:          uuid.New(),
		Title:       "task",
		Status:      status,
		Priority:    model.PriorityMedium,
		UserStoryID: story,
	}
}

func story(status model.Status) model.UserStory {
	return model.UserStory{ID: uuid.New(), Title: "story", Status: status, Priority: model.PriorityMedium}
}

func TestPartition_BucketsAreDisjointAndCoverInput(t *testing.T) {
	tasks := []model.Task{
		task(model.StatusToDo, nil),
		task(model.StatusDoing, nil),
		task(model.StatusDoing, nil),
		task(model.StatusDone, nil),
		task(model.StatusToDo, nil),
	}

	buckets := board.Partition(tasks)

	assert.Len(t, buckets.ToDo, 2)
	assert.Len(t, buckets.Doing, 2)
	assert.Len(t, buckets.Done, 1)

	// Every input task lands in exactly one bucket.
	seen := map[uuid.UUID]int{}
	for _, bucket := range [][]model.Task{buckets.ToDo, buckets.Doing, buckets.Done} {
		for _, tk := range bucket {
			seen[tk.ID]++
		}
	}
	assert.Len(t, seen, len(tasks))
	for id, count := range seen {
		assert.Equal(t, 1, count, "task %s appears in more than one bucket", id)
	}
}

func TestPartition_Empty(t *testing.T) {
	buckets := board.Partition(nil)
	assert.Empty(t, buckets.ToDo)
	assert.Empty(t, buckets.Doing)
	assert.Empty(t, buckets.Done)
}

func TestCompletion_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, board.Completion(nil))
}

func TestCompletion_AllDoneIsHundred(t *testing.T) {
	stories := []model.UserStory{story(model.StatusDone), story(model.StatusDone)}
	assert.Equal(t, 100.0, board.Completion(stories))
}

func TestCompletion_HalfDone(t *testing.T) {
	stories := []model.UserStory{story(model.StatusDone), story(model.StatusToDo)}
	assert.Equal(t, 50.0, board.Completion(stories))
}

func TestCompletion_MonotonicAsStoriesFinish(t *testing.T) {
	stories := []model.UserStory{
		story(model.StatusToDo),
		story(model.StatusToDo),
		story(model.StatusDoing),
		story(model.StatusToDo),
	}

	previous := board.Completion(stories)
	for i := range stories {
		stories[i].Status = model.StatusDone
		current := board.Completion(stories)
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
	assert.Equal(t, 100.0, previous)
}

func TestTaskCounts(t *testing.T) {
	storyA := uuid.New()
	storyB := uuid.New()
	tasks := []model.Task{
		task(model.StatusToDo, &storyA),
		task(model.StatusDoing, &storyA),
		task(model.StatusDone, &storyB),
		task(model.StatusToDo, nil), // not linked, not counted
	}

	counts := board.TaskCounts(tasks)

	assert.Equal(t, 2, counts[storyA])
	assert.Equal(t, 1, counts[storyB])
	assert.Len(t, counts, 2)
}

func TestNext_LinearOneDirectionalFlow(t *testing.T) {
	next, ok := board.Next(model.StatusToDo)
	assert.True(t, ok)
	assert.Equal(t, model.StatusDoing, next)

	next, ok = board.Next(model.StatusDoing)
	assert.True(t, ok)
	assert.Equal(t, model.StatusDone, next)

	// DONE is terminal
	_, ok = board.Next(model.StatusDone)
	assert.False(t, ok)
}
