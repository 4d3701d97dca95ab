package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/board"
	"github.com/dmaia/taskboard/internal/database/testutil"
	"github.com/dmaia/taskboard/internal/models"
	apperrors "github.com/dmaia/taskboard/pkg/errors"
)

type taskFixture struct {
	svc     *TaskService
	db      *gorm.DB
	user    *models.User
	project *models.Project
}

func mustTaskFixture(t *testing.T) taskFixture {
	t.Helper()

	db := testutil.MustOpenTestDB(t)
	svc, err := NewTaskService(db)
	require.NoError(t, err)

	user := seedUser(t, db, "Ana", "ana@example.com")
	team := seedTeam(t, db, "Engineering")
	project := &models.Project{Name: "Site", TeamID: team.ID, OwnerID: user.ID}
	require.NoError(t, db.Create(project).Error)

	return taskFixture{svc: svc, db: db, user: user, project: project}
}

func TestTaskCreateDefaults(t *testing.T) {
	f := mustTaskFixture(t)

	task, err := f.svc.Create(context.Background(), CreateTaskInput{
		Title:     "Design",
		ProjectID: f.project.ID,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusTodo, task.Status)
	require.Equal(t, models.PriorityMedium, task.Priority)
}

func TestTaskCreateUnknownProject(t *testing.T) {
	f := mustTaskFixture(t)

	_, err := f.svc.Create(context.Background(), CreateTaskInput{Title: "Design", ProjectID: 999})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestTaskCreateUnknownAssignee(t *testing.T) {
	f := mustTaskFixture(t)

	ghost := uint(999)
	_, err := f.svc.Create(context.Background(), CreateTaskInput{
		Title:      "Design",
		ProjectID:  f.project.ID,
		AssignedID: &ghost,
	})
	require.ErrorIs(t, err, ErrAssigneeNotFound)
}

func TestTaskCreateRejectsUnknownLiterals(t *testing.T) {
	f := mustTaskFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateTaskInput{Title: "Design", ProjectID: f.project.ID, Status: "archived"})
	require.Equal(t, 400, apperrors.FromError(err).StatusCode)

	_, err = f.svc.Create(ctx, CreateTaskInput{Title: "Design", ProjectID: f.project.ID, Priority: "urgent"})
	require.Equal(t, 400, apperrors.FromError(err).StatusCode)
}

func TestMoveTaskAllNinePairs(t *testing.T) {
	f := mustTaskFixture(t)
	ctx := context.Background()

	statuses := []string{models.StatusTodo, models.StatusDoing, models.StatusDone}

	for _, from := range statuses {
		for _, to := range statuses {
			task, err := f.svc.Create(ctx, CreateTaskInput{
				Title:     "move " + from + " to " + to,
				ProjectID: f.project.ID,
				Status:    from,
			})
			require.NoError(t, err)

			moved, err := f.svc.MoveTask(ctx, task.ID, to)
			require.NoError(t, err, "move %s -> %s", from, to)
			require.Equal(t, to, moved.Status)

			reloaded, err := f.svc.GetByID(ctx, task.ID)
			require.NoError(t, err)
			require.Equal(t, to, reloaded.Status)
		}
	}
}

func TestMoveTaskSameStatusIsIdempotent(t *testing.T) {
	f := mustTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.Create(ctx, CreateTaskInput{Title: "Design", ProjectID: f.project.ID, Status: models.StatusDoing})
	require.NoError(t, err)

	loaded, err := f.svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	before := loaded.UpdatedAt

	moved, err := f.svc.MoveTask(ctx, task.ID, models.StatusDoing)
	require.NoError(t, err)
	require.Equal(t, models.StatusDoing, moved.Status)
	require.True(t, moved.UpdatedAt.Equal(before))
}

func TestMoveTaskOnlyTouchesStatus(t *testing.T) {
	f := mustTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.Create(ctx, CreateTaskInput{
		Title:       "Design",
		Description: "initial wireframes",
		Priority:    models.PriorityHigh,
		ProjectID:   f.project.ID,
		AssignedID:  &f.user.ID,
	})
	require.NoError(t, err)

	_, err = f.svc.MoveTask(ctx, task.ID, models.StatusDone)
	require.NoError(t, err)

	reloaded, err := f.svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Design", reloaded.Title)
	require.Equal(t, "initial wireframes", reloaded.Description)
	require.Equal(t, models.PriorityHigh, reloaded.Priority)
	require.NotNil(t, reloaded.AssignedID)
	require.Equal(t, f.user.ID, *reloaded.AssignedID)
}

func TestMoveTaskMissingIsNotFound(t *testing.T) {
	f := mustTaskFixture(t)

	_, err := f.svc.MoveTask(context.Background(), 999, models.StatusDone)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestMoveTaskRejectsUnknownStatus(t *testing.T) {
	f := mustTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.Create(ctx, CreateTaskInput{Title: "Design", ProjectID: f.project.ID})
	require.NoError(t, err)

	_, err = f.svc.MoveTask(ctx, task.ID, "blocked")
	require.Equal(t, 400, apperrors.FromError(err).StatusCode)
}

func TestTaskUpdatePartial(t *testing.T) {
	f := mustTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.Create(ctx, CreateTaskInput{Title: "Design", ProjectID: f.project.ID})
	require.NoError(t, err)

	priority := models.PriorityHigh
	updated, err := f.svc.Update(ctx, task.ID, UpdateTaskInput{Priority: &priority})
	require.NoError(t, err)
	require.Equal(t, models.PriorityHigh, updated.Priority)
	require.Equal(t, "Design", updated.Title)
	require.Equal(t, models.StatusTodo, updated.Status)
}

func TestTaskDeleteMissingIsNotFound(t *testing.T) {
	f := mustTaskFixture(t)

	err := f.svc.Delete(context.Background(), 999)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListByProjectScopesToProject(t *testing.T) {
	f := mustTaskFixture(t)
	ctx := context.Background()

	other := &models.Project{Name: "Other", TeamID: f.project.TeamID, OwnerID: f.user.ID}
	require.NoError(t, f.db.Create(other).Error)

	_, err := f.svc.Create(ctx, CreateTaskInput{Title: "mine", ProjectID: f.project.ID})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, CreateTaskInput{Title: "theirs", ProjectID: other.ID})
	require.NoError(t, err)

	tasks, err := f.svc.ListByProject(ctx, f.project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "mine", tasks[0].Title)
}

// Full walkthrough: team -> user -> project -> task -> board -> move.
func TestBoardScenario(t *testing.T) {
	f := mustTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.Create(ctx, CreateTaskInput{Title: "Design", ProjectID: f.project.ID})
	require.NoError(t, err)
	require.Equal(t, models.StatusTodo, task.Status)

	tasks, err := f.svc.ListByProject(ctx, f.project.ID)
	require.NoError(t, err)

	cols := board.Partition(tasks)
	require.Len(t, cols.Todo, 1)
	require.Empty(t, cols.Doing)
	require.Empty(t, cols.Done)

	_, err = f.svc.MoveTask(ctx, task.ID, models.StatusDone)
	require.NoError(t, err)

	tasks, err = f.svc.ListByProject(ctx, f.project.ID)
	require.NoError(t, err)

	cols = board.Partition(tasks)
	require.Empty(t, cols.Todo)
	require.Empty(t, cols.Doing)
	require.Len(t, cols.Done, 1)
	require.Equal(t, task.ID, cols.Done[0].ID)
}
