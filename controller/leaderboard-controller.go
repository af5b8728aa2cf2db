package controller

import (
	"context"
	"encoding/json"
	"errors"
	"khe/app_error"
	"khe/metrics"
	"khe/service"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// a subscriber that cannot take a message within this window is dropped
const leaderboardWriteTimeout = 5 * time.Second

// LeaderboardController serves the leaderboard and pushes a fresh copy to
// every websocket subscriber whenever scores change.
type LeaderboardController struct {
	leaderboardService *service.LeaderboardService
	mu                 sync.Mutex
	connections        map[*websocket.Conn]bool
	changed            chan struct{}
	done               chan struct{}
	closeOnce          sync.Once
	writeTimeout       time.Duration
}

func NewLeaderboardController(deps Dependencies) *LeaderboardController {
	controller := &LeaderboardController{
		connections:  make(map[*websocket.Conn]bool),
		changed:      make(chan struct{}, 1),
		done:         make(chan struct{}),
		writeTimeout: leaderboardWriteTimeout,
	}
	controller.leaderboardService = service.NewLeaderboardService(deps.DB, deps.Publisher, deps.Announcer, controller)
	controller.startBroadcaster()
	return controller
}

func setupLeaderboardController(e *LeaderboardController) []RouteInfo {
	basePath := "scores"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getScoresHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "DELETE", Path: "", HandlerFunc: e.clearScoresHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "GET", Path: "/progress", HandlerFunc: e.getProgressHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "POST", Path: "/announce", HandlerFunc: e.announceHandler(), Authenticated: true, RoleRequired: staffRoles},
		{Method: "GET", Path: "/ws", HandlerFunc: e.WebSocketHandler, Authenticated: true, RoleRequired: staffRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// ScoresChanged schedules a broadcast. Bursts of changes collapse into one.
func (e *LeaderboardController) ScoresChanged() {
	select {
	case e.changed <- struct{}{}:
	default:
	}
}

// Close stops the broadcaster and disconnects every subscriber.
func (e *LeaderboardController) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
		e.mu.Lock()
		defer e.mu.Unlock()
		for conn := range e.connections {
			conn.Close()
			delete(e.connections, conn)
		}
		metrics.LeaderboardSubscribersGauge.Set(0)
	})
}

func (e *LeaderboardController) startBroadcaster() {
	go func() {
		for {
			select {
			case <-e.done:
				return
			case <-e.changed:
				e.broadcast()
			}
		}
	}()
}

func (e *LeaderboardController) broadcast() {
	e.mu.Lock()
	subscribers := len(e.connections)
	e.mu.Unlock()
	if subscribers == 0 {
		return
	}
	leaderboard, err := e.leaderboardService.GetAllProjectScores(context.Background())
	if err != nil {
		log.Printf("failed to compute leaderboard for subscribers: %v", err)
		return
	}
	serialized, err := json.Marshal(leaderboard)
	if err != nil {
		log.Printf("failed to serialize leaderboard: %v", err)
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for conn := range e.connections {
		if err := e.send(conn, serialized); err != nil {
			conn.Close()
			delete(e.connections, conn)
		}
	}
	metrics.LeaderboardSubscribersGauge.Set(float64(len(e.connections)))
}

func (e *LeaderboardController) send(conn *websocket.Conn, payload []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(e.writeTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

// @id LeaderboardWebSocket
// @Description Websocket for leaderboard updates. The current leaderboard is sent on connect and again after every score change.
// @Tags scores
// @Param token query string true "Auth token"
// @Success 200 {object} judging.Leaderboard
// @Router /scores/ws [get]
func (e *LeaderboardController) WebSocketHandler(c *gin.Context) {
	leaderboard, err := e.leaderboardService.GetAllProjectScores(c.Request.Context())
	if err != nil {
		app_error.Respond(c, err)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	serialized, err := json.Marshal(leaderboard)
	if err != nil {
		return
	}
	if err := e.send(conn, serialized); err != nil {
		return
	}

	e.mu.Lock()
	e.connections[conn] = true
	metrics.LeaderboardSubscribersGauge.Set(float64(len(e.connections)))
	e.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			e.mu.Lock()
			delete(e.connections, conn)
			metrics.LeaderboardSubscribersGauge.Set(float64(len(e.connections)))
			e.mu.Unlock()
			return
		}
	}
}

// @id GetProjectScores
// @Description Leaderboard grouped by track, best average first
// @Tags scores
// @Produce json
// @Success 200 {object} judging.Leaderboard
// @Security BearerAuth
// @Router /scores [get]
func (e *LeaderboardController) getScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		leaderboard, err := e.leaderboardService.GetAllProjectScores(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, leaderboard)
	}
}

// @id ClearAllScores
// @Description Deletes every judgement, score and assignment
// @Tags scores
// @Success 204
// @Security BearerAuth
// @Router /scores [delete]
func (e *LeaderboardController) clearScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.leaderboardService.ClearAllScores(c.Request.Context()); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// @id GetJudgingProgress
// @Description Number of assignments per status
// @Tags scores
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /scores/progress [get]
func (e *LeaderboardController) getProgressHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		progress, err := e.leaderboardService.GetAssignmentProgress(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, progress)
	}
}

// @id AnnounceLeaderboard
// @Description Posts the top projects of every track to the staff channel
// @Tags scores
// @Success 204
// @Security BearerAuth
// @Router /scores/announce [post]
func (e *LeaderboardController) announceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := e.leaderboardService.AnnounceLeaderboard(c.Request.Context())
		if errors.Is(err, service.ErrAnnouncementsDisabled) {
			c.JSON(503, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}
