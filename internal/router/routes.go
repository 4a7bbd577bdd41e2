package router

import (
	"github.com/Arnobrizwan/intellinote-app/internal/auth"
	"github.com/Arnobrizwan/intellinote-app/internal/handlers"
	"github.com/Arnobrizwan/intellinote-app/internal/middleware"
	"github.com/Arnobrizwan/intellinote-app/internal/redis"
	"github.com/Arnobrizwan/intellinote-app/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the public identity routes and the token-protected note
// routes under /api.
func SetupRouter(r *gin.Engine, tokens *auth.Manager, users repositories.UserRepository, sessions *redis.Service, userHandler *handlers.UserHandler, noteHandler *handlers.NoteHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/register", userHandler.Register)
	api.POST("/login", userHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens, users, sessions))
	{
		protected.POST("/logout", userHandler.Logout)

		protected.POST("/notes", noteHandler.CreateNote)
		protected.GET("/notes", noteHandler.ListNotes)
		protected.GET("/notes/:noteId", noteHandler.GetNote)
		protected.PUT("/notes/:noteId", noteHandler.UpdateNote)
		protected.DELETE("/notes/:noteId", noteHandler.DeleteNote)
		protected.POST("/notes/:noteId/summarize", noteHandler.SummarizeNote)
	}
}
