package service

import (
	"context"
	"khe/judging"
	"khe/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectsWithFeedback(t *testing.T) {
	defer TearDown()
	ctx := context.Background()
	service := NewFeedbackService(db, &fakeSender{})
	alice := newJudge(t, "alice")
	bob := newJudge(t, "bob")
	account := newJudge(t, "account")
	technicality := newCriterion(t, "Technicality", 2, 10)
	creativity := newCriterion(t, "Creativity", 1, 5)
	project := newProject(t, "project", "1", nil)
	other := newProject(t, "other", "2", nil)
	newMember(t, project, "member@khe.io", nil)
	newMember(t, project, "", account)

	// bob judges first, so bob is "Judge 1"
	newJudgement(t, bob, project, map[*repository.JudgingCriterion]int{technicality: 7, creativity: 2})
	second := newJudgement(t, alice, project, map[*repository.JudgingCriterion]int{creativity: 4})
	comment := "Loved it"
	require.NoError(t, repository.NewJudgementRepository(db).SetComment(second.ID, &comment))

	feedback, err := service.GetProjectsWithFeedback(ctx, &project.ID)
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	compiled := feedback[0]
	assert.Equal(t, project.ID, compiled.ProjectID)
	assert.Equal(t, "project", compiled.ProjectName)
	assert.Equal(t, []string{"member@khe.io", "account@khe.io"}, compiled.Emails)
	require.Len(t, compiled.Feedback, 2)

	assert.Equal(t, "Judge 1", compiled.Feedback[0].Label)
	assert.Equal(t, []judging.CriterionScore{
		{Name: "Creativity", Value: 2, Max: 5},
		{Name: "Technicality", Value: 7, Max: 10},
	}, compiled.Feedback[0].Scores)
	assert.Nil(t, compiled.Feedback[0].Comment)

	assert.Equal(t, "Judge 2", compiled.Feedback[1].Label)
	require.NotNil(t, compiled.Feedback[1].Comment)
	assert.Equal(t, "Loved it", *compiled.Feedback[1].Comment)

	all, err := service.GetProjectsWithFeedback(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, other.ID, all[1].ProjectID)
	assert.Empty(t, all[1].Feedback)
	assert.Empty(t, all[1].Emails)
}

func TestSendFeedbackEmailToProject(t *testing.T) {
	sender := &fakeSender{failTo: map[string]bool{"bounce@khe.io": true}}
	service := NewFeedbackService(db, sender)
	comment := "Ship it"
	feedback := &judging.ProjectFeedback{
		ProjectID:   1,
		ProjectName: "Rocket",
		Emails:      []string{"a@khe.io", "bounce@khe.io", "b@khe.io"},
		Feedback: []judging.JudgeFeedback{
			{Label: "Judge 1", Scores: []judging.CriterionScore{{Name: "Creativity", Value: 4, Max: 5}}, Comment: &comment},
		},
	}

	report := service.SendFeedbackEmailToProject(context.Background(), feedback)
	assert.Equal(t, DispatchReport{Sent: 2, Failed: 1}, report)
	assert.ElementsMatch(t, []string{"a@khe.io", "b@khe.io"}, sender.recipients())
	for _, email := range sender.sent {
		assert.Equal(t, "Judging feedback for Rocket", email.subject)
		assert.Contains(t, email.text, "Creativity: 4/5")
		assert.Contains(t, email.html, "Ship it")
	}
}

func TestSendFeedbackEmailWithoutRecipients(t *testing.T) {
	sender := &fakeSender{}
	service := NewFeedbackService(db, sender)

	report := service.SendFeedbackEmailToProject(context.Background(), &judging.ProjectFeedback{ProjectName: "Lonely"})
	assert.Equal(t, DispatchReport{}, report)
	assert.Empty(t, sender.recipients())
}

func TestSendAllFeedback(t *testing.T) {
	defer TearDown()
	sender := &fakeSender{}
	service := NewFeedbackService(db, sender)
	judge := newJudge(t, "judge")
	criterion := newCriterion(t, "Creativity", 1, 5)
	first := newProject(t, "first", "1", nil)
	second := newProject(t, "second", "2", nil)
	newProject(t, "empty", "3", nil)
	newMember(t, first, "one@khe.io", nil)
	newMember(t, first, "two@khe.io", nil)
	newMember(t, second, "three@khe.io", nil)
	newJudgement(t, judge, first, map[*repository.JudgingCriterion]int{criterion: 3})

	report, err := service.SendAllFeedback(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DispatchReport{Sent: 3}, report)
	assert.ElementsMatch(t, []string{"one@khe.io", "two@khe.io", "three@khe.io"}, sender.recipients())
	for _, email := range sender.sent {
		if email.to == "three@khe.io" {
			assert.Contains(t, email.text, judging.NoFeedbackMessage)
		}
	}
}
