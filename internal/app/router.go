package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/agendalabs/contacts-api/internal/api/handlers"
	"github.com/agendalabs/contacts-api/internal/api/middleware"
)

func newRouter(server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), cors.Default())
	router.NoRoute(handlers.RouteNotFound)

	router.GET("/health/live", server.GetLiveness)
	router.GET("/health/ready", server.GetReadiness)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/contacts", server.ListContacts)
		v1.GET("/contacts/:id", server.GetContact)
		v1.POST("/contacts", server.CreateContact)
		v1.PUT("/contacts/:id", server.UpdateContact)
		v1.DELETE("/contacts/:id", server.DeleteContact)
	}

	return router
}
