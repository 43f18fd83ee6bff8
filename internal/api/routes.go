package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouterDeps bundles everything the HTTP layer needs.
type RouterDeps struct {
	Logger          *logrus.Logger
	CookieName      string
	AuthService     service.AuthService
	GroupService    service.GroupService
	WorkoutService  service.WorkoutService
	PlanService     service.WorkoutPlanService
	ProgressService service.ProgressService
}

// SetupRouter configures the Gin engine with all middleware and routes.
func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(deps.Logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		deps.Logger.WithField("panic", recovered).Error("recovered from panic")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}))

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "Resource not found")
	})

	// Handlers
	authHandler := NewAuthHandler(deps.AuthService, deps.CookieName)
	groupHandler := NewGroupHandler(deps.GroupService)
	workoutHandler := NewWorkoutHandler(deps.WorkoutService)
	planHandler := NewWorkoutPlanHandler(deps.PlanService)
	progressHandler := NewProgressHandler(deps.ProgressService)

	// Middleware gates
	authRequired := AuthMiddleware(deps.AuthService, deps.CookieName)
	trainerOnly := RoleMiddleware(domain.RoleTrainer)
	traineeOnly := RoleMiddleware(domain.RoleTrainee)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Fitness Tracker API")
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/signin", authHandler.Signin)
		}

		groups := apiV1.Group("/groups", authRequired)
		{
			groups.POST("", trainerOnly, groupHandler.CreateGroup)
			groups.POST("/join", traineeOnly, groupHandler.JoinGroup)
			groups.POST("/:group_id/invite", trainerOnly, groupHandler.RegenerateInvite)
			groups.GET("/:group_id/members", groupHandler.GetMembers)
		}

		workouts := apiV1.Group("/workouts", authRequired)
		{
			workouts.POST("", trainerOnly, workoutHandler.CreateWorkout)
			workouts.GET("", workoutHandler.ListWorkouts)
			workouts.GET("/:workout_id", workoutHandler.GetWorkout)
		}

		plans := apiV1.Group("/workout-plans", authRequired)
		{
			plans.POST("", trainerOnly, planHandler.CreatePlan)
			plans.GET("", planHandler.ListPlans)
			plans.GET("/:plan_id", planHandler.GetPlan)
			plans.POST("/:plan_id/workouts", trainerOnly, planHandler.AddWorkout)
			plans.POST("/:plan_id/assign", trainerOnly, planHandler.AssignToGroup)
		}

		progress := apiV1.Group("/progress", authRequired)
		{
			progress.POST("", traineeOnly, progressHandler.LogProgress)
			progress.GET("", progressHandler.ListProgress)
			progress.GET("/user", progressHandler.ListOwnProgress)
			progress.GET("/:progress_id", progressHandler.GetProgress)
		}
	}

	return router
}
