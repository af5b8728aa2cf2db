package controller

import (
	"khe/app_error"
	"khe/service"
	"khe/utils"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

const catalogCacheDuration = time.Minute

type CatalogController struct {
	catalogService *service.CatalogService
	cacheStore     persistence.CacheStore
}

func NewCatalogController(deps Dependencies) *CatalogController {
	store := deps.CacheStore
	if store == nil {
		store = persistence.NewInMemoryStore(catalogCacheDuration)
	}
	return &CatalogController{
		catalogService: service.NewCatalogService(deps.DB),
		cacheStore:     store,
	}
}

func setupCatalogController(deps Dependencies) []RouteInfo {
	e := NewCatalogController(deps)
	routes := []RouteInfo{
		{Method: "GET", Path: "tracks", HandlerFunc: cache.CachePage(e.cacheStore, catalogCacheDuration, e.getTracksHandler()), Authenticated: true},
		{Method: "POST", Path: "tracks", HandlerFunc: e.createTrackHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "DELETE", Path: "tracks/:track_id", HandlerFunc: e.deleteTrackHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "GET", Path: "criteria", HandlerFunc: cache.CachePage(e.cacheStore, catalogCacheDuration, e.getCriteriaHandler()), Authenticated: true},
		{Method: "POST", Path: "criteria", HandlerFunc: e.createCriterionHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "PUT", Path: "criteria/:criterion_id", HandlerFunc: e.updateCriterionHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "DELETE", Path: "criteria/:criterion_id", HandlerFunc: e.deleteCriterionHandler(), Authenticated: true, RoleRequired: staffRoles},
	}
	return routes
}

// invalidate drops the cached page of a catalog listing after it changed.
func (e *CatalogController) invalidate(path string) {
	_ = e.cacheStore.Delete(cache.CreateKey("/api/" + path))
}

// @id GetTracks
// @Tags catalog
// @Produce json
// @Success 200 {array} TrackResponse
// @Security BearerAuth
// @Router /tracks [get]
func (e *CatalogController) getTracksHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, utils.Map(e.catalogService.GetAllTracks(), toTrackResponse))
	}
}

type TrackCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// @id CreateTrack
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body TrackCreate true "Track to create"
// @Success 201 {object} TrackResponse
// @Security BearerAuth
// @Router /tracks [post]
func (e *CatalogController) createTrackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request TrackCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		track, err := e.catalogService.CreateTrack(request.Name, request.Description)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate("tracks")
		c.JSON(201, toTrackResponse(track))
	}
}

// @id DeleteTrack
// @Tags catalog
// @Param track_id path int true "Track Id"
// @Success 204
// @Security BearerAuth
// @Router /tracks/{track_id} [delete]
func (e *CatalogController) deleteTrackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		trackId, ok := intParam(c, "track_id")
		if !ok {
			return
		}
		if err := e.catalogService.DeleteTrack(trackId); err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate("tracks")
		c.Status(204)
	}
}

// @id GetCriteria
// @Description The judging rubric in display order
// @Tags catalog
// @Produce json
// @Success 200 {array} CriterionResponse
// @Security BearerAuth
// @Router /criteria [get]
func (e *CatalogController) getCriteriaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, utils.Map(e.catalogService.GetAllCriteria(), toCriterionResponse))
	}
}

// @id CreateCriterion
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body service.CriterionInput true "Criterion to create"
// @Success 201 {object} CriterionResponse
// @Security BearerAuth
// @Router /criteria [post]
func (e *CatalogController) createCriterionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.CriterionInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		criterion, err := e.catalogService.CreateCriterion(input)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate("criteria")
		c.JSON(201, toCriterionResponse(criterion))
	}
}

// @id UpdateCriterion
// @Tags catalog
// @Accept json
// @Produce json
// @Param criterion_id path int true "Criterion Id"
// @Param body body service.CriterionInput true "Criterion"
// @Success 200 {object} CriterionResponse
// @Security BearerAuth
// @Router /criteria/{criterion_id} [put]
func (e *CatalogController) updateCriterionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		criterionId, ok := intParam(c, "criterion_id")
		if !ok {
			return
		}
		var input service.CriterionInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		criterion, err := e.catalogService.UpdateCriterion(criterionId, input)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate("criteria")
		c.JSON(200, toCriterionResponse(criterion))
	}
}

// @id DeleteCriterion
// @Tags catalog
// @Param criterion_id path int true "Criterion Id"
// @Success 204
// @Security BearerAuth
// @Router /criteria/{criterion_id} [delete]
func (e *CatalogController) deleteCriterionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		criterionId, ok := intParam(c, "criterion_id")
		if !ok {
			return
		}
		if err := e.catalogService.DeleteCriterion(criterionId); err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate("criteria")
		c.Status(204)
	}
}
