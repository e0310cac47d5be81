package post

import (
	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPostRoutes sets up post routes. Reads are public; writes need a
// logged-in player and edits are further restricted to the author in the
// controller. Method trees keep GET-by-slug and write-by-id apart.
func RegisterPostRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	postRepo := NewPostRepository(db)
	postController := NewPostController(postRepo, appConfig)

	auth := mw.AuthMiddleware(jwtSecret, db)

	posts := router.Group("/posts")
	{
		posts.GET("", postController.GetAllPosts)
		posts.GET("/:slug", postController.GetPostBySlug)

		posts.POST("", auth, postController.CreatePost)
		posts.PUT("/:post_id", auth, postController.UpdatePost)
		posts.PUT("/:post_id/image", auth, postController.UpdatePostImage)
		posts.DELETE("/:post_id", auth, postController.DeletePost)
	}
}
