package controller

import (
	"khe/app_error"
	"khe/service"
	"khe/utils"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService *service.ProjectService
}

func NewProjectController(deps Dependencies) *ProjectController {
	return &ProjectController{
		projectService: service.NewProjectService(deps.DB),
	}
}

func setupProjectController(deps Dependencies) []RouteInfo {
	e := NewProjectController(deps)
	routes := []RouteInfo{
		{Method: "GET", Path: "projects", HandlerFunc: e.getProjectsHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "GET", Path: "projects/tables", HandlerFunc: e.getProjectsWithTablesHandler(), Authenticated: true, RoleRequired: judgeRoles},
		{Method: "POST", Path: "projects", HandlerFunc: e.createProjectHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "GET", Path: "projects/:project_id", HandlerFunc: e.getProjectHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "PUT", Path: "projects/:project_id", HandlerFunc: e.updateProjectHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "DELETE", Path: "projects/:project_id", HandlerFunc: e.deleteProjectHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "GET", Path: "applications/unassigned", HandlerFunc: e.getUnassignedHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "PUT", Path: "applications/:application_id/project", HandlerFunc: e.assignParticipantHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "DELETE", Path: "applications/:application_id/project", HandlerFunc: e.removeParticipantHandler(), Authenticated: true, RoleRequired: staffRoles},
	}
	return routes
}

// @id GetProjects
// @Description Lists every project with its members
// @Tags projects
// @Produce json
// @Success 200 {array} ProjectResponse
// @Security BearerAuth
// @Router /projects [get]
func (e *ProjectController) getProjectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, utils.Map(e.projectService.GetAllProjects(), toProjectResponse))
	}
}

// @id GetProjectsWithTables
// @Description Lists projects that have a table, ordered by table number
// @Tags projects
// @Produce json
// @Success 200 {array} ProjectResponse
// @Security BearerAuth
// @Router /projects/tables [get]
func (e *ProjectController) getProjectsWithTablesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, utils.Map(e.projectService.GetAllProjectsWithTables(), toProjectResponse))
	}
}

// @id GetProject
// @Tags projects
// @Produce json
// @Param project_id path int true "Project Id"
// @Success 200 {object} ProjectResponse
// @Security BearerAuth
// @Router /projects/{project_id} [get]
func (e *ProjectController) getProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		project, err := e.projectService.GetProjectById(projectId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toProjectResponse(project))
	}
}

// @id CreateProject
// @Tags projects
// @Accept json
// @Produce json
// @Param body body service.ProjectInput true "Project to create"
// @Success 201 {object} ProjectResponse
// @Security BearerAuth
// @Router /projects [post]
func (e *ProjectController) createProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.ProjectInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		project, err := e.projectService.CreateProject(input)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toProjectResponse(project))
	}
}

// @id UpdateProject
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path int true "Project Id"
// @Param body body service.ProjectInput true "Project"
// @Success 200 {object} ProjectResponse
// @Security BearerAuth
// @Router /projects/{project_id} [put]
func (e *ProjectController) updateProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		var input service.ProjectInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		project, err := e.projectService.UpdateProject(projectId, input)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toProjectResponse(project))
	}
}

// @id DeleteProject
// @Tags projects
// @Param project_id path int true "Project Id"
// @Success 204
// @Security BearerAuth
// @Router /projects/{project_id} [delete]
func (e *ProjectController) deleteProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId, ok := intParam(c, "project_id")
		if !ok {
			return
		}
		if err := e.projectService.DeleteProject(projectId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// @id GetUnassignedApplications
// @Description Checked-in participants that are not on a project yet
// @Tags projects
// @Produce json
// @Success 200 {array} MemberResponse
// @Security BearerAuth
// @Router /applications/unassigned [get]
func (e *ProjectController) getUnassignedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, utils.Map(e.projectService.GetUnassignedApplications(), toMemberResponse))
	}
}

type ParticipantRequest struct {
	ProjectID int `json:"project_id" binding:"required"`
}

// @id AssignParticipant
// @Tags projects
// @Accept json
// @Param application_id path int true "Application Id"
// @Param body body ParticipantRequest true "Project"
// @Success 204
// @Security BearerAuth
// @Router /applications/{application_id}/project [put]
func (e *ProjectController) assignParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationId, ok := intParam(c, "application_id")
		if !ok {
			return
		}
		var request ParticipantRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.projectService.AssignParticipant(applicationId, request.ProjectID); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// @id RemoveParticipant
// @Tags projects
// @Param application_id path int true "Application Id"
// @Success 204
// @Security BearerAuth
// @Router /applications/{application_id}/project [delete]
func (e *ProjectController) removeParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationId, ok := intParam(c, "application_id")
		if !ok {
			return
		}
		if err := e.projectService.RemoveParticipant(applicationId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}
