package controller

import (
	"khe/app_error"
	"khe/judging"
	"khe/service"
	"khe/utils"

	"github.com/gin-gonic/gin"
)

type JudgingController struct {
	assignmentService *service.AssignmentService
	scoringService    *service.ScoringService
}

func NewJudgingController(deps Dependencies, listeners ...service.ScoreListener) *JudgingController {
	return &JudgingController{
		assignmentService: service.NewAssignmentService(deps.DB, deps.Publisher),
		scoringService:    service.NewScoringService(deps.DB, deps.Publisher, listeners...),
	}
}

func setupJudgingController(deps Dependencies, listeners ...service.ScoreListener) []RouteInfo {
	e := NewJudgingController(deps, listeners...)
	basePath := "judging"
	routes := []RouteInfo{
		{Method: "POST", Path: "/next", HandlerFunc: e.assignNextProjectHandler(), Authenticated: true, RoleRequired: judgeRoles},
		{Method: "POST", Path: "/table", HandlerFunc: e.assignTableHandler(), Authenticated: true, RoleRequired: judgeRoles},
		{Method: "GET", Path: "/assignments", HandlerFunc: e.getAssignmentsHandler(), Authenticated: true, RoleRequired: judgeRoles},
		{Method: "GET", Path: "/projects/:project_id", HandlerFunc: e.getProjectHandler(), Authenticated: true, RoleRequired: judgeRoles},
		{Method: "PUT", Path: "/projects/:project_id/scores", HandlerFunc: e.submitScoreHandler(), Authenticated: true, RoleRequired: judgeRoles},
		{Method: "PUT", Path: "/projects/:project_id/comment", HandlerFunc: e.submitCommentHandler(), Authenticated: true, RoleRequired: judgeRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type NextAssignmentResponse struct {
	Assignment *AssignmentResponse `json:"assignment"`
}

// @id AssignNextProject
// @Description Returns the judge's open assignment or assigns the least judged project. assignment is null when nothing is left to judge.
// @Tags judging
// @Produce json
// @Success 200 {object} NextAssignmentResponse
// @Security BearerAuth
// @Router /judging/next [post]
func (e *JudgingController) assignNextProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		assignment, err := e.assignmentService.AssignNextProject(c.Request.Context(), currentUserId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, NextAssignmentResponse{Assignment: toAssignmentResponse(assignment)})
	}
}

type TableRequest struct {
	TableNumber string `json:"table_number" binding:"required"`
}

// @id AssignTable
// @Description Assigns the judge to the project at a table
// @Tags judging
// @Accept json
// @Produce json
// @Param body body TableRequest true "Table to judge"
// @Success 200 {object} AssignmentResponse
// @Security BearerAuth
// @Router /judging/table [post]
func (e *JudgingController) assignTableHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request TableRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		assignment, err := e.assignmentService.AssignJudgeToTable(c.Request.Context(), currentUserId(c), request.TableNumber)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toAssignmentResponse(assignment))
	}
}

// @id GetMyAssignments
// @Description Lists the judge's assignments, open ones first
// @Tags judging
// @Produce json
// @Success 200 {array} AssignmentResponse
// @Security BearerAuth
// @Router /judging/assignments [get]
func (e *JudgingController) getAssignmentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		assignments, err := e.assignmentService.GetJudgeAssignments(c.Request.Context(), currentUserId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(assignments, toAssignmentResponse))
	}
}

type JudgingProjectResponse struct {
	Project  *ProjectResponse     `json:"project" binding:"required"`
	Criteria []*CriterionResponse `json:"criteria" binding:"required"`
}

// @id GetProjectForJudging
// @Description Fetches a project together with the rubric to score it with
// @Tags judging
// @Produce json
// @Param project_id path int true "Project Id"
// @Success 200 {object} JudgingProjectResponse
// @Security BearerAuth
// @Router /judging/projects/{project_id} [get]
func (e *JudgingController) getProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		project, criteria, err := e.assignmentService.GetProjectForJudging(c.Request.Context(), projectId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, JudgingProjectResponse{
			Project:  toProjectResponse(project),
			Criteria: utils.Map(criteria, toCriterionResponse),
		})
	}
}

type ScoreRequest struct {
	Scores []judging.ScoreInput `json:"scores" binding:"required,dive"`
}

// @id SubmitScore
// @Description Records the judge's rubric scores for a project, replacing earlier ones
// @Tags judging
// @Accept json
// @Produce json
// @Param project_id path int true "Project Id"
// @Param body body ScoreRequest true "Scores"
// @Success 200 {object} JudgementResponse
// @Security BearerAuth
// @Router /judging/projects/{project_id}/scores [put]
func (e *JudgingController) submitScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		var request ScoreRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		judgement, err := e.scoringService.SubmitScore(c.Request.Context(), currentUserId(c), projectId, request.Scores)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toJudgementResponse(judgement))
	}
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

// @id SubmitComment
// @Description Stores the judge's comment and completes the assignment
// @Tags judging
// @Accept json
// @Param project_id path int true "Project Id"
// @Param body body CommentRequest true "Comment"
// @Success 204
// @Security BearerAuth
// @Router /judging/projects/{project_id}/comment [put]
func (e *JudgingController) submitCommentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		var request CommentRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err := e.scoringService.SubmitComment(c.Request.Context(), currentUserId(c), projectId, request.Comment)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}
