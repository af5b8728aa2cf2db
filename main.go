package main

import (
	"context"
	"errors"
	"fmt"
	"khe/client"
	"khe/config"
	"khe/controller"
	"khe/docs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           KHE Judging API
// @version         1.0
// @description     Judge assignment, scoring, leaderboard and feedback for the hackathon.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	t := time.Now()

	cfg := config.Env()
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	publisher := newPublisher()
	deps := controller.Dependencies{
		DB:         db,
		Publisher:  publisher,
		Sender:     newEmailSender(cfg),
		CacheStore: persistence.NewInMemoryStore(60 * time.Second),
	}
	if announcer := newAnnouncer(cfg); announcer != nil {
		deps.Announcer = announcer
	}

	r := gin.New()
	r.Use(gin.Recovery())
	err = r.SetTrustedProxies(nil)
	if err != nil {
		fmt.Println("Failed to set trusted proxies:", err)
		return
	}
	addRequestId(r)
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r)
	leaderboard := controller.SetRoutes(r, deps)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	}
	go func() {
		fmt.Println("Server started in", time.Since(t))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	leaderboard.Close()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if closer, ok := publisher.(*client.KafkaPublisher); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Failed to flush judging events: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newPublisher() client.EventPublisher {
	if config.Env().KafkaBroker == "" {
		return client.NoopPublisher{}
	}
	if err := config.CreateTopic(); err != nil {
		log.Printf("Could not create judging events topic: %v", err)
	}
	writer, err := config.GetWriter()
	if err != nil {
		log.Printf("Judging events disabled: %v", err)
		return client.NoopPublisher{}
	}
	return client.NewKafkaPublisher(writer)
}

func newEmailSender(cfg *config.Config) client.EmailSender {
	if !cfg.GmailConfigured() {
		log.Println("Gmail is not configured, feedback emails are only logged")
		return client.LogSender{}
	}
	return client.NewGmailClient(context.Background(), cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, cfg.GmailFrom)
}

func newAnnouncer(cfg *config.Config) *client.DiscordNotifier {
	if cfg.DiscordBotToken == "" || cfg.DiscordChannelID == "" {
		return nil
	}
	notifier, err := client.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordChannelID)
	if err != nil {
		log.Printf("Leaderboard announcements disabled: %v", err)
		return nil
	}
	return notifier
}

func addRequestId(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		requestId := c.GetHeader("X-Request-ID")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set("request_id", requestId)
		c.Header("X-Request-ID", requestId)
		c.Next()
	})
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
		Skip: func(c *gin.Context) bool {
			return c.Request.URL.Query().Get("token") != ""
		},
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %s | %s\n",
				param.TimeStamp.Format(time.RFC3339),
				param.StatusCode,
				param.Latency,
				param.ClientIP,
				param.Method,
				param.Path,
				param.Keys["request_id"],
			)
		},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins: []string{
			"https://khe.io",
			"https://staff.khe.io",
			"http://localhost",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// the preflighted method decides which policy applies
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				cors.New(corsConfigGetOptions)(c)
			} else {
				cors.New(corsConfigOtherMethods)(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			cors.New(corsConfigGetOptions)(c)
		} else {
			cors.New(corsConfigOtherMethods)(c)
		}
	})
}
