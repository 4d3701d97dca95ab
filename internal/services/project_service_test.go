package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/database/testutil"
	"github.com/dmaia/taskboard/internal/models"
	apperrors "github.com/dmaia/taskboard/pkg/errors"
)

func mustProjectService(t *testing.T) (*ProjectService, *gorm.DB) {
	t.Helper()
	db := testutil.MustOpenTestDB(t)
	svc, err := NewProjectService(db)
	require.NoError(t, err)
	return svc, db
}

func TestProjectCreate(t *testing.T) {
	svc, db := mustProjectService(t)
	ctx := context.Background()

	ana := seedUser(t, db, "Ana", "ana@example.com")
	team := seedTeam(t, db, "Engineering")

	project, err := svc.Create(ctx, CreateProjectInput{
		Name:    "Site",
		TeamID:  team.ID,
		OwnerID: ana.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, project.ID)
	require.Equal(t, team.ID, project.TeamID)
	require.Equal(t, ana.ID, project.OwnerID)
}

func TestProjectCreateUnknownTeamFailsBeforeInsert(t *testing.T) {
	svc, db := mustProjectService(t)
	ctx := context.Background()

	ana := seedUser(t, db, "Ana", "ana@example.com")

	_, err := svc.Create(ctx, CreateProjectInput{Name: "Site", TeamID: 999, OwnerID: ana.ID})
	require.ErrorIs(t, err, ErrTeamNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProjectCreateUnknownOwnerFailsBeforeInsert(t *testing.T) {
	svc, db := mustProjectService(t)
	ctx := context.Background()

	team := seedTeam(t, db, "Engineering")

	_, err := svc.Create(ctx, CreateProjectInput{Name: "Site", TeamID: team.ID, OwnerID: 999})
	require.Equal(t, 404, apperrors.FromError(err).StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProjectGetAllEmptyIsFine(t *testing.T) {
	svc, _ := mustProjectService(t)

	projects, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestProjectGetByIDExpandsRelations(t *testing.T) {
	svc, db := mustProjectService(t)
	ctx := context.Background()

	ana := seedUser(t, db, "Ana", "ana@example.com")
	team := seedTeam(t, db, "Engineering")
	require.NoError(t, db.Create(&models.TeamMember{UserID: ana.ID, TeamID: team.ID, Role: models.RoleMember}).Error)

	project, err := svc.Create(ctx, CreateProjectInput{Name: "Site", TeamID: team.ID, OwnerID: ana.ID})
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Task{Title: "Design", ProjectID: project.ID, Status: models.StatusTodo, Priority: models.PriorityMedium}).Error)

	loaded, err := svc.GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Team)
	require.Len(t, loaded.Team.Members, 1)
	require.NotNil(t, loaded.Team.Members[0].User)
	require.Equal(t, "Ana", loaded.Team.Members[0].User.Name)
	require.NotNil(t, loaded.Owner)
	require.Len(t, loaded.Tasks, 1)
}

func TestProjectGetByIDMissing(t *testing.T) {
	svc, _ := mustProjectService(t)

	_, err := svc.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectUpdatePartial(t *testing.T) {
	svc, db := mustProjectService(t)
	ctx := context.Background()

	ana := seedUser(t, db, "Ana", "ana@example.com")
	team := seedTeam(t, db, "Engineering")
	project, err := svc.Create(ctx, CreateProjectInput{Name: "Site", TeamID: team.ID, OwnerID: ana.ID})
	require.NoError(t, err)

	desc := "marketing site rebuild"
	updated, err := svc.Update(ctx, project.ID, UpdateProjectInput{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, "Site", updated.Name)
	require.Equal(t, desc, updated.Description)
}

func TestProjectDeleteCascadesTasks(t *testing.T) {
	svc, db := mustProjectService(t)
	ctx := context.Background()

	ana := seedUser(t, db, "Ana", "ana@example.com")
	team := seedTeam(t, db, "Engineering")
	project, err := svc.Create(ctx, CreateProjectInput{Name: "Site", TeamID: team.ID, OwnerID: ana.ID})
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Task{Title: "Design", ProjectID: project.ID, Status: models.StatusTodo, Priority: models.PriorityMedium}).Error)

	require.NoError(t, svc.Delete(ctx, project.ID))

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestProjectDeleteMissingIsNotFound(t *testing.T) {
	svc, _ := mustProjectService(t)

	err := svc.Delete(context.Background(), 999)
	require.ErrorIs(t, err, ErrProjectNotFound)
}
