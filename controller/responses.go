package controller

import (
	"khe/repository"
	"khe/utils"
	"time"
)

type TrackResponse struct {
	ID          int     `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func toTrackResponse(track *repository.Track) *TrackResponse {
	return &TrackResponse{
		ID:          track.ID,
		Name:        track.Name,
		Description: track.Description,
	}
}

type MemberResponse struct {
	ApplicationID int    `json:"application_id" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	School        string `json:"school" binding:"required"`
}

func toMemberResponse(application *repository.Application) *MemberResponse {
	return &MemberResponse{
		ApplicationID: application.ID,
		FirstName:     application.FirstName,
		LastName:      application.LastName,
		Email:         application.ContactEmail(),
		School:        application.School,
	}
}

type ProjectResponse struct {
	ID          int               `json:"id" binding:"required"`
	Name        string            `json:"name" binding:"required"`
	Track       string            `json:"track" binding:"required"`
	TrackID     *int              `json:"track_id"`
	TableNumber *string           `json:"table_number"`
	Members     []*MemberResponse `json:"members,omitempty"`
}

func toProjectResponse(project *repository.Project) *ProjectResponse {
	if project == nil {
		return nil
	}
	response := &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Track:       project.TrackName(),
		TrackID:     project.TrackID,
		TableNumber: project.TableNumber,
	}
	if project.Members != nil {
		response.Members = utils.Map(project.Members, toMemberResponse)
	}
	return response
}

type AssignmentResponse struct {
	ID        int                         `json:"id" binding:"required"`
	ProjectID int                         `json:"project_id" binding:"required"`
	Status    repository.AssignmentStatus `json:"status" binding:"required"`
	IsManual  bool                        `json:"is_manual" binding:"required"`
	CreatedAt time.Time                   `json:"created_at" binding:"required"`
	Project   *ProjectResponse            `json:"project,omitempty"`
}

func toAssignmentResponse(assignment *repository.JudgeAssignment) *AssignmentResponse {
	if assignment == nil {
		return nil
	}
	return &AssignmentResponse{
		ID:        assignment.ID,
		ProjectID: assignment.ProjectID,
		Status:    assignment.Status,
		IsManual:  assignment.IsManual,
		CreatedAt: assignment.CreatedAt,
		Project:   toProjectResponse(assignment.Project),
	}
}

type CriterionResponse struct {
	ID       int    `json:"id" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Order    int    `json:"order" binding:"required"`
	MaxScore int    `json:"max_score" binding:"required"`
	Optional bool   `json:"optional" binding:"required"`
}

func toCriterionResponse(criterion *repository.JudgingCriterion) *CriterionResponse {
	return &CriterionResponse{
		ID:       criterion.ID,
		Slug:     criterion.Slug,
		Name:     criterion.Name,
		Order:    criterion.Order,
		MaxScore: criterion.MaxScore,
		Optional: criterion.Optional,
	}
}

type ScoreResponse struct {
	CriterionID int `json:"criterion_id" binding:"required"`
	Score       int `json:"score" binding:"required"`
}

type JudgementResponse struct {
	ID        int              `json:"id" binding:"required"`
	ProjectID int              `json:"project_id" binding:"required"`
	Comment   *string          `json:"comment"`
	Scores    []*ScoreResponse `json:"scores" binding:"required"`
}

func toJudgementResponse(judgement *repository.Judgement) *JudgementResponse {
	return &JudgementResponse{
		ID:        judgement.ID,
		ProjectID: judgement.ProjectID,
		Comment:   judgement.Comment,
		Scores: utils.Map(judgement.Scores, func(score *repository.Score) *ScoreResponse {
			return &ScoreResponse{CriterionID: score.CriterionID, Score: score.Value}
		}),
	}
}

type JudgeResponse struct {
	ID            int                   `json:"id" binding:"required"`
	Name          string                `json:"name" binding:"required"`
	Email         string                `json:"email" binding:"required"`
	Role          repository.Role       `json:"role" binding:"required"`
	ManualJudging bool                  `json:"manual_judging" binding:"required"`
	JudgeCurve    float64               `json:"judge_curve" binding:"required"`
	Pending       []*AssignmentResponse `json:"pending" binding:"required"`
}

func toJudgeResponse(user *repository.User) *JudgeResponse {
	return &JudgeResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		ManualJudging: user.ManualJudging,
		JudgeCurve:    user.JudgeCurve,
		Pending:       utils.Map(user.JudgeAssignments, toAssignmentResponse),
	}
}
