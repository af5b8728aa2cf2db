package controller

import (
	"khe/auth"
	"khe/repository"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func tokenFor(t *testing.T, userId int, role repository.Role) string {
	t.Helper()
	token, err := auth.CreateToken(&repository.User{ID: userId, Role: role})
	require.NoError(t, err)
	return token
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	leaderboard := SetRoutes(r, Dependencies{})
	t.Cleanup(leaderboard.Close)
	return r
}

func perform(r http.Handler, method string, path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/staff", AuthMiddleware(staffRoles), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": currentUserId(c)})
	})
	r.GET("/any", AuthMiddleware(nil), func(c *gin.Context) {
		c.Status(204)
	})

	assert.Equal(t, 401, perform(r, "GET", "/staff", "").Code)
	assert.Equal(t, 401, perform(r, "GET", "/staff", "not-a-token").Code)
	assert.Equal(t, 403, perform(r, "GET", "/staff", tokenFor(t, 3, repository.RoleJudge)).Code)
	assert.Equal(t, 204, perform(r, "GET", "/any", tokenFor(t, 3, repository.RoleUser)).Code)

	w := perform(r, "GET", "/staff", tokenFor(t, 9, repository.RoleStaff))
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"user_id": 9}`, w.Body.String())

	// websocket clients pass the token as a query parameter
	w = perform(r, "GET", "/staff?token="+tokenFor(t, 9, repository.RoleStaff), "")
	assert.Equal(t, 200, w.Code)

	req := httptest.NewRequest("GET", "/staff", nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: tokenFor(t, 9, repository.RoleStaff)})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestRoutesRequireRoles(t *testing.T) {
	r := newTestRouter(t)
	judge := tokenFor(t, 1, repository.RoleJudge)
	participant := tokenFor(t, 2, repository.RoleUser)

	assert.Equal(t, 401, perform(r, "POST", "/api/judging/next", "").Code)
	assert.Equal(t, 403, perform(r, "POST", "/api/judging/next", participant).Code)
	assert.Equal(t, 403, perform(r, "GET", "/api/scores", judge).Code)
	assert.Equal(t, 403, perform(r, "DELETE", "/api/scores", judge).Code)
	assert.Equal(t, 403, perform(r, "PUT", "/api/judges/1/assignments", judge).Code)
	assert.Equal(t, 403, perform(r, "POST", "/api/feedback/send", judge).Code)
	assert.Equal(t, 403, perform(r, "POST", "/api/criteria", judge).Code)
}

func TestRoutesRejectMalformedIds(t *testing.T) {
	r := newTestRouter(t)
	judge := tokenFor(t, 1, repository.RoleJudge)
	staff := tokenFor(t, 2, repository.RoleStaff)

	assert.Equal(t, 400, perform(r, "GET", "/api/judging/projects/abc", judge).Code)
	assert.Equal(t, 400, perform(r, "PUT", "/api/judging/projects/abc/scores", judge).Code)
	assert.Equal(t, 400, perform(r, "PUT", "/api/judges/abc/curve", staff).Code)
	assert.Equal(t, 400, perform(r, "POST", "/api/feedback/send/abc", staff).Code)
	assert.Equal(t, 400, perform(r, "DELETE", "/api/tracks/abc", staff).Code)
}

func TestAnnounceWithoutDiscord(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, "POST", "/api/scores/announce", tokenFor(t, 2, repository.RoleStaff))
	assert.Equal(t, 503, w.Code)
}

func TestBearerToken(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?token=query", nil)
	assert.Equal(t, "query", bearerToken(c))

	c.Request.Header.Set("Authorization", "Bearer header")
	assert.Equal(t, "header", bearerToken(c))

	c.Request.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "query", bearerToken(c))
}

func TestSubmitScoreRequiresEveryValue(t *testing.T) {
	r := newTestRouter(t)
	judge := tokenFor(t, 1, repository.RoleJudge)

	for _, body := range []string{
		`{"scores": [{"criterion_id": 1}]}`,
		`{}`,
	} {
		req := httptest.NewRequest("PUT", "/api/judging/projects/1/scores", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+judge)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code, body)
	}
}
