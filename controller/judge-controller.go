package controller

import (
	"khe/app_error"
	"khe/service"
	"khe/utils"

	"github.com/gin-gonic/gin"
)

type JudgeController struct {
	userService       *service.UserService
	assignmentService *service.AssignmentService
}

func NewJudgeController(deps Dependencies) *JudgeController {
	return &JudgeController{
		userService:       service.NewUserService(deps.DB),
		assignmentService: service.NewAssignmentService(deps.DB, deps.Publisher),
	}
}

func setupJudgeController(deps Dependencies) []RouteInfo {
	e := NewJudgeController(deps)
	basePath := "judges"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getJudgesHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "PUT", Path: "/:user_id/assignments", HandlerFunc: e.assignTeamsHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "PUT", Path: "/:user_id/curve", HandlerFunc: e.updateCurveHandler(), Authenticated: true, RoleRequired: staffRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetJudges
// @Description Lists judges and staff with their open assignments
// @Tags judges
// @Produce json
// @Success 200 {array} JudgeResponse
// @Security BearerAuth
// @Router /judges [get]
func (e *JudgeController) getJudgesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judges, err := e.userService.GetJudges()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(judges, toJudgeResponse))
	}
}

type TeamsRequest struct {
	Tables string `json:"tables"`
}

// @id AssignJudgeToTeams
// @Description Replaces the judge's open queue with the projects at the given tables, e.g. "1-5, 12". The judge stops receiving automatic assignments.
// @Tags judges
// @Accept json
// @Produce json
// @Param user_id path int true "Judge Id"
// @Param body body TeamsRequest true "Tables"
// @Success 200 {array} AssignmentResponse
// @Security BearerAuth
// @Router /judges/{user_id}/assignments [put]
func (e *JudgeController) assignTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judgeId, ok := intParam(c, "user_id")
		if !ok {
			return
		}
		var request TeamsRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		created, err := e.assignmentService.AssignJudgeToTeams(c.Request.Context(), judgeId, request.Tables)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(created, toAssignmentResponse))
	}
}

type CurveRequest struct {
	Curve float64 `json:"curve"`
}

// @id UpdateJudgeCurve
// @Description Stores the judge's calibration value
// @Tags judges
// @Accept json
// @Param user_id path int true "Judge Id"
// @Param body body CurveRequest true "Curve"
// @Success 204
// @Security BearerAuth
// @Router /judges/{user_id}/curve [put]
func (e *JudgeController) updateCurveHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judgeId, ok := intParam(c, "user_id")
		if !ok {
			return
		}
		var request CurveRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.userService.UpdateJudgeCurve(judgeId, request.Curve); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}
