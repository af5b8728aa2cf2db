package service

import (
	"khe/app_error"
	"khe/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Creativity":     "creativity",
		"Most Learned":   "most-learned",
		"  Track Fit! ":  "track-fit",
		"UX/UI & Design": "uxui--design",
		"snake_case":     "snake_case",
		"!!!":            "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), input)
	}
}

func TestCatalogCriteria(t *testing.T) {
	defer TearDown()
	service := NewCatalogService(db)

	_, err := service.CreateCriterion(CriterionInput{Name: "???"})
	assert.ErrorIs(t, err, app_error.ErrValidation)

	second, err := service.CreateCriterion(CriterionInput{Name: "Technicality", Order: 2, MaxScore: 10})
	require.NoError(t, err)
	first, err := service.CreateCriterion(CriterionInput{Name: "Most Learned", Order: 1})
	require.NoError(t, err)
	assert.Equal(t, "most-learned", first.Slug)
	assert.Equal(t, DefaultMaxScore, first.MaxScore)

	criteria := service.GetAllCriteria()
	require.Len(t, criteria, 2)
	assert.Equal(t, first.ID, criteria[0].ID)
	assert.Equal(t, second.ID, criteria[1].ID)

	updated, err := service.UpdateCriterion(second.ID, CriterionInput{Name: "Technical Depth", Order: 3, MaxScore: 7, Optional: true})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.ID)
	assert.Equal(t, "technical-depth", updated.Slug)
	assert.True(t, updated.Optional)

	_, err = service.UpdateCriterion(second.ID+1000, CriterionInput{Name: "Nope"})
	assert.ErrorIs(t, err, app_error.ErrNotFound)

	require.NoError(t, service.DeleteCriterion(first.ID))
	assert.Len(t, service.GetAllCriteria(), 1)
}

func TestCatalogTracks(t *testing.T) {
	defer TearDown()
	service := NewCatalogService(db)

	_, err := service.CreateTrack(" ", nil)
	assert.ErrorIs(t, err, app_error.ErrValidation)

	blank := "  "
	track, err := service.CreateTrack("Healthcare", &blank)
	require.NoError(t, err)
	assert.Nil(t, track.Description)

	tracks := service.GetAllTracks()
	require.Len(t, tracks, 1)
	assert.Equal(t, "Healthcare", tracks[0].Name)

	require.NoError(t, service.DeleteTrack(track.ID))
	assert.Empty(t, service.GetAllTracks())
}

func TestProjectAdministration(t *testing.T) {
	defer TearDown()
	service := NewProjectService(db)
	track := newTrack(t, "Healthcare")
	table := " 12 "

	_, err := service.CreateProject(ProjectInput{Name: "clinic", TrackID: &[]int{track.ID + 1000}[0]})
	assert.ErrorIs(t, err, app_error.ErrNotFound)

	project, err := service.CreateProject(ProjectInput{Name: " clinic ", TrackID: &track.ID, TableNumber: &table})
	require.NoError(t, err)
	assert.Equal(t, "clinic", project.Name)
	assert.Equal(t, "Healthcare", project.LegacyTrack)
	assert.Equal(t, "12", project.Table())

	project, err = service.UpdateProject(project.ID, ProjectInput{Name: "clinic"})
	require.NoError(t, err)
	assert.Nil(t, project.TrackID)
	assert.Equal(t, "General", project.LegacyTrack)
	assert.Nil(t, project.TableNumber)
	assert.Empty(t, service.GetAllProjectsWithTables())

	application, err := repository.NewApplicationRepository(db).SaveApplication(&repository.Application{FirstName: "Ada", CheckedIn: true})
	require.NoError(t, err)
	require.Len(t, service.GetUnassignedApplications(), 1)

	require.NoError(t, service.AssignParticipant(application.ID, project.ID))
	assert.Empty(t, service.GetUnassignedApplications())
	assert.ErrorIs(t, service.AssignParticipant(application.ID, project.ID+1000), app_error.ErrNotFound)

	loaded, err := service.GetProjectById(project.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Members, 1)

	require.NoError(t, service.RemoveParticipant(application.ID))
	assert.Len(t, service.GetUnassignedApplications(), 1)
	assert.ErrorIs(t, service.RemoveParticipant(application.ID+1000), app_error.ErrNotFound)

	require.NoError(t, service.DeleteProject(project.ID))
	assert.Empty(t, service.GetAllProjects())
}

func TestUpdateJudgeCurve(t *testing.T) {
	defer TearDown()
	service := NewUserService(db)
	judge := newJudge(t, "judge")
	newJudge(t, "another")
	participant, err := service.SaveUser(&repository.User{Name: "hacker", Role: repository.RoleUser})
	require.NoError(t, err)

	require.NoError(t, service.UpdateJudgeCurve(judge.ID, 1.5))
	assert.ErrorIs(t, service.UpdateJudgeCurve(judge.ID+1000, 1), app_error.ErrNotFound)
	assert.ErrorIs(t, service.UpdateJudgeCurve(participant.ID, 1), app_error.ErrNotFound)

	judges, err := service.GetJudges()
	require.NoError(t, err)
	require.Len(t, judges, 2)
	assert.Equal(t, "another", judges[0].Name)
	assert.Equal(t, 1.5, judges[1].JudgeCurve)
}
