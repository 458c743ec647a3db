package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hrmslite.com/hrmslite/config"
	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/web/handlers"
	"hrmslite.com/hrmslite/web/middlewares"
)

func main() {
	cfg := config.Load()

	store, err := core.Open(cfg.DSN, 10)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	r := gin.Default()
	r.Use(middlewares.Cors(cfg.AllowedOrigins()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "HRMS Lite API",
			"version": "1.0.0",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "HRMS Lite Backend API",
			"health":  "/health",
		})
	})

	api := r.Group("/api")
	handlers.RegisterEmployees(api, store)
	handlers.RegisterAttendance(api, store)

	r.Run(cfg.Host + ":" + cfg.Port)
}
