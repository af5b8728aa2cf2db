package controller

import (
	"khe/app_error"
	"khe/service"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackController(deps Dependencies) *FeedbackController {
	return &FeedbackController{
		feedbackService: service.NewFeedbackService(deps.DB, deps.Sender),
	}
}

func setupFeedbackController(deps Dependencies) []RouteInfo {
	e := NewFeedbackController(deps)
	basePath := "feedback"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getAllFeedbackHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "GET", Path: "/:project_id", HandlerFunc: e.getFeedbackHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "POST", Path: "/send", HandlerFunc: e.sendAllFeedbackHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "POST", Path: "/send/:project_id", HandlerFunc: e.sendFeedbackHandler(), Authenticated: true, RoleRequired: staffRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetAllFeedback
// @Description Anonymised judge feedback for every project
// @Tags feedback
// @Produce json
// @Success 200 {array} judging.ProjectFeedback
// @Security BearerAuth
// @Router /feedback [get]
func (e *FeedbackController) getAllFeedbackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		feedback, err := e.feedbackService.GetProjectsWithFeedback(c.Request.Context(), nil)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, feedback)
	}
}

// @id GetProjectFeedback
// @Description Anonymised judge feedback for one project
// @Tags feedback
// @Produce json
// @Param project_id path int true "Project Id"
// @Success 200 {object} judging.ProjectFeedback
// @Security BearerAuth
// @Router /feedback/{project_id} [get]
func (e *FeedbackController) getFeedbackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		feedback, err := e.feedbackService.GetProjectsWithFeedback(c.Request.Context(), &projectId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		if len(feedback) == 0 {
			app_error.Respond(c, app_error.NotFound("project %d", projectId))
			return
		}
		c.JSON(200, feedback[0])
	}
}

// @id SendAllFeedback
// @Description Emails every project its feedback digest
// @Tags feedback
// @Produce json
// @Success 200 {object} service.DispatchReport
// @Security BearerAuth
// @Router /feedback/send [post]
func (e *FeedbackController) sendAllFeedbackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := e.feedbackService.SendAllFeedback(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, report)
	}
}

// @id SendProjectFeedback
// @Description Emails one project its feedback digest
// @Tags feedback
// @Produce json
// @Param project_id path int true "Project Id"
// @Success 200 {object} service.DispatchReport
// @Security BearerAuth
// @Router /feedback/send/{project_id} [post]
func (e *FeedbackController) sendFeedbackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		feedback, err := e.feedbackService.GetProjectsWithFeedback(c.Request.Context(), &projectId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		if len(feedback) == 0 {
			app_error.Respond(c, app_error.NotFound("project %d", projectId))
			return
		}
		c.JSON(200, e.feedbackService.SendFeedbackEmailToProject(c.Request.Context(), feedback[0]))
	}
}
