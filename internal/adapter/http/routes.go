package http

import (
	"github.com/gin-gonic/gin"

	"studyplanner/internal/adapter/http/handlers"
	"studyplanner/internal/adapter/http/middleware"
	"studyplanner/internal/adapter/http/validation"
	"studyplanner/internal/core/ports"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Profile    *handlers.ProfileHandler
	Task       *handlers.TaskHandler
	Stats      *handlers.StatsHandler
	TestPeriod *handlers.TestPeriodHandler
}

func RegisterRoutes(r *gin.Engine, profileService ports.ProfileService, h Handlers) {
	validation.RegisterBindings()

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	secured := api.Group("")
	secured.Use(middleware.Authenticate(profileService))
	{
		secured.GET("/me", h.Profile.Me)
		secured.GET("/students", h.Profile.ListStudents)

		secured.GET("/tasks", h.Task.ListTasks)
		secured.POST("/tasks", h.Task.CreateTask)
		secured.PATCH("/tasks/:id/status", h.Task.UpdateTaskStatus)
		secured.DELETE("/tasks/:id", h.Task.DeleteTask)

		secured.GET("/stats", h.Stats.Summary)
		secured.GET("/stats/subjects", h.Stats.Subjects)
		secured.GET("/dashboard", h.Stats.Dashboard)

		secured.GET("/test-periods", h.TestPeriod.ListTestPeriods)
		secured.POST("/test-periods", h.TestPeriod.CreateTestPeriod)
		secured.DELETE("/test-periods/:id", h.TestPeriod.SoftDeleteTestPeriod)
		secured.POST("/test-periods/:id/restore", h.TestPeriod.RestoreTestPeriod)
		secured.DELETE("/test-periods/:id/permanent", h.TestPeriod.HardDeleteTestPeriod)
	}
}
