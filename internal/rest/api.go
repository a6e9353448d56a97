package rest

import (
	"net/http"

	"github.com/adaptivekitchen/studio-site/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the public and admin API onto the router. Mutating
// blog routes and uploads sit behind the admin token.
func RegisterRoutes(router *gin.Engine, posts *PostsHandler, subscribe *SubscribeHandler, upload *UploadHandler, adminToken string) {
	blog := router.Group("/api/blog")
	{
		blog.GET("", posts.List)
		blog.GET("/:id", posts.Get)
	}

	admin := router.Group("/api", middleware.RequireAdmin(adminToken))
	{
		admin.POST("/blog", posts.Create)
		admin.PUT("/blog/:id", posts.Update)
		admin.DELETE("/blog/:id", posts.Delete)
		admin.POST("/upload", upload.Upload)
	}

	router.POST("/api/subscribe", subscribe.Subscribe)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
