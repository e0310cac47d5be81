package post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/pkg/upload"
	"github.com/lsnz-league/lsnz/pkg/utils"
	"github.com/gin-gonic/gin"
)

// PostController handles post HTTP requests
type PostController struct {
	repo      PostRepository
	appConfig *config.Config
}

// NewPostController creates a new post controller
func NewPostController(repo PostRepository, appConfig *config.Config) *PostController {
	return &PostController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetAllPosts godoc
// @Summary List posts
// @Description Get a paginated list of posts, newest first
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of items per page (default: 20)"
// @Success 200 {object} utils.PaginatedResponse{data=[]Post} "List of posts"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /posts [get]
func (c *PostController) GetAllPosts(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	posts, totalCount, err := c.repo.GetAllPosts(page, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get posts: " + err.Error()})
		return
	}

	utils.PaginatedJSON(ctx, posts, page, limit, totalCount)
}

// GetPostBySlug godoc
// @Summary Get post
// @Description Get a post by its slug
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} Post "Post details"
// @Failure 404 {object} utils.ErrorResponse "Post not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /posts/{slug} [get]
func (c *PostController) GetPostBySlug(ctx *gin.Context) {
	p, err := c.repo.GetPostBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			utils.NotFoundJSON(ctx, "post")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get post: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// CreatePost godoc
// @Summary Create post
// @Description Publish a new post authored by the caller. Titles must be unique ignoring case.
// @Tags posts
// @Accept json
// @Produce json
// @Param post body PostInput true "Post content"
// @Success 201 {object} Post "Post created"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input or duplicate title"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /posts [post]
// @Security Bearer
func (c *PostController) CreatePost(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	var input PostInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	taken, err := c.repo.TitleTaken(input.Title, 0)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to check title: " + err.Error()})
		return
	}
	if taken {
		utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
			"title": ErrTitleTaken.Error(),
		})
		return
	}

	p := &Post{
		Title:    input.Title,
		Summary:  input.Summary,
		Body:     input.Body,
		AuthorID: playerID,
	}

	if err := c.repo.CreatePost(p); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create post: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// UpdatePost godoc
// @Summary Update post
// @Description Update a post. Only the author may edit it; the slug stays stable.
// @Tags posts
// @Accept json
// @Produce json
// @Param post_id path int true "Post ID"
// @Param post body PostInput true "Updated post content"
// @Success 200 {object} Post "Post updated"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input or duplicate title"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 403 {object} utils.ErrorResponse "Not the author"
// @Failure 404 {object} utils.ErrorResponse "Post not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /posts/{post_id} [put]
// @Security Bearer
func (c *PostController) UpdatePost(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	postID, err := strconv.ParseUint(ctx.Param("post_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid post ID"})
		return
	}

	var input PostInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := c.repo.GetPostByID(uint(postID))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			utils.NotFoundJSON(ctx, "post")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get post: " + err.Error()})
		}
		return
	}

	if p.AuthorID != playerID {
		ctx.JSON(http.StatusForbidden, utils.ErrorResponse{Error: "only the author can edit this post"})
		return
	}

	taken, err := c.repo.TitleTaken(input.Title, p.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to check title: " + err.Error()})
		return
	}
	if taken {
		utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
			"title": ErrTitleTaken.Error(),
		})
		return
	}

	p.Title = input.Title
	p.Summary = input.Summary
	p.Body = input.Body
	p.Author = nil

	if err := c.repo.UpdatePost(p); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update post: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// UpdatePostImage godoc
// @Summary Upload post image
// @Description Upload a header image for a post (author only, max 5MB, images only)
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param post_id path int true "Post ID"
// @Param image formData file true "Post image"
// @Success 200 {object} Post "Updated post"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid file"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 403 {object} utils.ErrorResponse "Not the author"
// @Failure 404 {object} utils.ErrorResponse "Post not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /posts/{post_id}/image [put]
// @Security Bearer
func (c *PostController) UpdatePostImage(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	postID, err := strconv.ParseUint(ctx.Param("post_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid post ID"})
		return
	}

	p, err := c.repo.GetPostByID(uint(postID))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			utils.NotFoundJSON(ctx, "post")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get post: " + err.Error()})
		}
		return
	}

	if p.AuthorID != playerID {
		ctx.JSON(http.StatusForbidden, utils.ErrorResponse{Error: "only the author can edit this post"})
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "image file is required"})
		return
	}

	relPath, err := upload.SaveImage(fileHeader, c.appConfig.App.UploadDir, "post_images")
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrNotAnImage) || errors.Is(err, upload.ErrEmptyUpload) {
			utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
				"image": err.Error(),
			})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save image: " + err.Error()})
		}
		return
	}

	p.Image = relPath
	p.Author = nil
	if err := c.repo.UpdatePost(p); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update post: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// DeletePost godoc
// @Summary Delete post
// @Description Delete a post. Only the author may remove it.
// @Tags posts
// @Produce json
// @Param post_id path int true "Post ID"
// @Success 200 {object} utils.SuccessResponse "Post deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid post ID"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 403 {object} utils.ErrorResponse "Not the author"
// @Failure 404 {object} utils.ErrorResponse "Post not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /posts/{post_id} [delete]
// @Security Bearer
func (c *PostController) DeletePost(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	postID, err := strconv.ParseUint(ctx.Param("post_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid post ID"})
		return
	}

	p, err := c.repo.GetPostByID(uint(postID))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			utils.NotFoundJSON(ctx, "post")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get post: " + err.Error()})
		}
		return
	}

	if p.AuthorID != playerID {
		ctx.JSON(http.StatusForbidden, utils.ErrorResponse{Error: "only the author can delete this post"})
		return
	}

	if err := c.repo.DeletePost(p.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete post: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "post deleted successfully"})
}
