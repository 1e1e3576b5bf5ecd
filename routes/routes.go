package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arjun-kp/PayTrail/controllers"
	"github.com/arjun-kp/PayTrail/middleware"
	"github.com/arjun-kp/PayTrail/utils"
)

// SetupRouter initializes and returns the Gin router with all routes.
// Middleware must be registered before any route: gin freezes a route's
// handler chain when the route is added.
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(middleware.Metrics())

	router.GET("/health", controllers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/customer-data", controllers.GetCustomerData)
		v1.GET("/customer-data/statement", controllers.DownloadStatement)
		v1.POST("/customer-data/statement/email", controllers.EmailStatement)
	}

	return router
}
