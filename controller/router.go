package controller

import (
	"khe/auth"
	"khe/client"
	"khe/repository"
	"khe/service"
	"strconv"
	"strings"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RoleRequired  []repository.Role
}

var (
	judgeRoles = []repository.Role{repository.RoleJudge, repository.RoleStaff}
	staffRoles = []repository.Role{repository.RoleStaff}
)

// Dependencies are the collaborators handlers need beyond the database.
type Dependencies struct {
	DB         *gorm.DB
	Publisher  client.EventPublisher
	Sender     client.EmailSender
	Announcer  service.LeaderboardAnnouncer
	CacheStore persistence.CacheStore
}

func SetRoutes(r *gin.Engine, deps Dependencies) *LeaderboardController {
	leaderboard := NewLeaderboardController(deps)
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupJudgingController(deps, leaderboard)...)
	routes = append(routes, setupJudgeController(deps)...)
	routes = append(routes, setupLeaderboardController(leaderboard)...)
	routes = append(routes, setupFeedbackController(deps)...)
	routes = append(routes, setupProjectController(deps)...)
	routes = append(routes, setupCatalogController(deps)...)
	group := r.Group("/api")
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RoleRequired))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		group.Handle(route.Method, route.Path, handlerfuncs...)
	}
	return leaderboard
}

// bearerToken reads the token from the Authorization header, the auth cookie
// or, for websockets, the token query parameter.
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth"); err == nil {
		return cookie
	}
	return c.Query("token")
}

func AuthMiddleware(roles []repository.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		if !claims.HasRole(roles...) {
			c.AbortWithStatusJSON(403, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", claims.UserId)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func currentUserId(c *gin.Context) int {
	return c.GetInt("user_id")
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return value, true
}
