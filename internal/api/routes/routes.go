package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/sustainhire/internship-intake/internal/api/handlers"
	"github.com/sustainhire/internship-intake/internal/api/middleware"
)

type Deps struct {
	Application *handlers.ApplicationHandler
	Logger      *logrus.Logger
	CORSOrigin  string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(gin.Recovery())
	if d.Logger != nil {
		r.Use(middleware.RequestLogger(d.Logger))
	}
	if d.CORSOrigin != "" {
		r.Use(middleware.CORS(d.CORSOrigin))
	}

	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/internship")
	api.POST("/apply", d.Application.Apply)
}
