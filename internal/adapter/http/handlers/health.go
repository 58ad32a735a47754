package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"studyplanner/internal/adapter/http/middleware"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	StatusDisabled  = "disabled"
	healthTimeout   = 2 * time.Second
	healthTimestamp = "2006-01-02 15:04:05"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Mysql string `json:"mysql"`
	Redis string `json:"redis"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Timezone          string         `json:"timezone"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	db       *sqlx.DB
	redis    *redis.Client
	location *time.Location
}

// NewHealthHandler reports on db and, when non-nil, the redis cache.
func NewHealthHandler(db *sqlx.DB, redisClient *redis.Client, location *time.Location) *HealthHandler {
	if location == nil {
		location = time.Local
	}
	return &HealthHandler{db: db, redis: redisClient, location: location}
}

// CheckHealth only fails on the database. The cache is optional.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().In(h.location).Format(healthTimestamp),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	databaseStatus := StatusDown
	if h.checkDatabase(ctx) {
		databaseStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().In(h.location).Format(healthTimestamp),
		Timezone:          h.location.String(),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Mysql: databaseStatus,
			Redis: h.redisStatus(ctx),
		},
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.redis == nil {
		return StatusDisabled
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := h.redis.Ping(timeoutCtx).Err(); err != nil {
		return StatusDown
	}
	return StatusOk
}

func getAppName() string {
	name := os.Getenv("APP_NAME")
	if name == "" {
		return "studyplanner"
	}
	return name
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
