package router

import (
	"scuttlebutt/internal/handlers"
	"scuttlebutt/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, gdb *gorm.DB) {
	st := store.New(gdb)

	// Handlers
	apiHandler := handlers.NewAPIHandler()
	topicHandler := handlers.NewTopicHandler(st)
	articleHandler := handlers.NewArticleHandler(st)
	commentHandler := handlers.NewCommentHandler(st)
	userHandler := handlers.NewUserHandler(st)

	api := r.Group("/api")
	{
		api.GET("", apiHandler.Endpoints)                // endpoint self-description
		api.GET("/health-check", apiHandler.HealthCheck) // liveness probe

		api.GET("/topics", topicHandler.List) // all topics

		api.GET("/articles", articleHandler.List)                          // filtered/sorted listing
		api.GET("/articles/:article_id", articleHandler.Get)               // single article
		api.PATCH("/articles/:article_id", articleHandler.UpdateVotes)     // vote delta
		api.GET("/articles/:article_id/comments", articleHandler.Comments) // comments, newest first
		api.POST("/articles/:article_id/comments", articleHandler.AddComment)

		api.DELETE("/comments/:comment_id", commentHandler.Delete)

		api.GET("/users", userHandler.List) // all users
	}
}
