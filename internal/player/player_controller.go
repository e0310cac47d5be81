package player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lsnz-league/lsnz/config"
	"github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/pkg/upload"
	"github.com/lsnz-league/lsnz/pkg/utils"
	pvalidator "github.com/lsnz-league/lsnz/pkg/validator"
	"github.com/gin-gonic/gin"
)

// PlayerController handles player and grade HTTP requests
type PlayerController struct {
	repo      PlayerRepository
	appConfig *config.Config
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository, appConfig *config.Config) *PlayerController {
	return &PlayerController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetAllPlayers godoc
// @Summary List players
// @Description Get a paginated list of players ordered by alias
// @Tags players
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of items per page (default: 20)"
// @Success 200 {object} utils.PaginatedResponse{data=[]Player} "List of players"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players [get]
func (c *PlayerController) GetAllPlayers(ctx *gin.Context) {
	page, limit := parsePagination(ctx)

	players, totalCount, err := c.repo.GetAllPlayers(page, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get players: " + err.Error()})
		return
	}

	utils.PaginatedJSON(ctx, players, page, limit, totalCount)
}

// GetPlayerByAlias godoc
// @Summary Get player by alias
// @Description Get a player's public profile by their alias
// @Tags players
// @Produce json
// @Param alias path string true "Player alias"
// @Success 200 {object} Player "Player profile"
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/{alias} [get]
func (c *PlayerController) GetPlayerByAlias(ctx *gin.Context) {
	p, err := c.repo.GetPlayerByAlias(ctx.Param("alias"))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			utils.NotFoundJSON(ctx, "player")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get player: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// UpdateProfile godoc
// @Summary Edit own profile
// @Description Update the authenticated player's profile fields
// @Tags players
// @Accept json
// @Produce json
// @Param profile body ProfileUpdate true "Profile fields"
// @Success 200 {object} Player "Updated profile"
// @Failure 400 {object} utils.ValidationErrorResponse "Validation error"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/me [put]
// @Security Bearer
func (c *PlayerController) UpdateProfile(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input ProfileUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "validation failed", pvalidator.ParseError(err))
		return
	}

	p, err := c.repo.GetPlayerByID(playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get player: " + err.Error()})
		return
	}

	taken, err := c.repo.AliasTaken(input.Alias, playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to check alias: " + err.Error()})
		return
	}
	if taken {
		utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
			"alias": "This alias is already taken. Please choose another.",
		})
		return
	}

	p.FirstName = input.FirstName
	p.LastName = input.LastName
	p.Alias = input.Alias
	p.Bio = input.Bio
	p.HomeSiteID = input.HomeSiteID

	if err := c.repo.UpdatePlayer(p); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update profile: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// UpdateProfilePicture godoc
// @Summary Upload profile picture
// @Description Upload a new profile picture for the authenticated player (max 5MB, images only)
// @Tags players
// @Accept multipart/form-data
// @Produce json
// @Param picture formData file true "Profile picture"
// @Success 200 {object} Player "Updated profile"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid file"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/me/picture [put]
// @Security Bearer
func (c *PlayerController) UpdateProfilePicture(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	fileHeader, err := ctx.FormFile("picture")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "picture file is required"})
		return
	}

	relPath, err := upload.SaveImage(fileHeader, c.appConfig.App.UploadDir, "profile_pictures")
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrNotAnImage) || errors.Is(err, upload.ErrEmptyUpload) {
			utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
				"picture": err.Error(),
			})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save picture: " + err.Error()})
		}
		return
	}

	p, err := c.repo.GetPlayerByID(playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get player: " + err.Error()})
		return
	}

	p.ProfilePicture = relPath
	if err := c.repo.UpdatePlayer(p); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update profile: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// GetAllGrades godoc
// @Summary List grades
// @Description Get all skill grades ordered by points
// @Tags grades
// @Produce json
// @Success 200 {array} Grade "List of grades"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /grades [get]
func (c *PlayerController) GetAllGrades(ctx *gin.Context) {
	grades, err := c.repo.GetAllGrades()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get grades: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, grades)
}

// CreateGrade godoc
// @Summary Create grade
// @Description Create a new skill grade (staff only)
// @Tags grades
// @Accept json
// @Produce json
// @Param grade body GradeInput true "Grade information"
// @Success 201 {object} Grade "Grade created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 403 {object} utils.ErrorResponse "Forbidden"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/grades [post]
// @Security Bearer
func (c *PlayerController) CreateGrade(ctx *gin.Context) {
	var input GradeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	g := &Grade{
		Letter:      input.Letter,
		Points:      input.Points,
		Description: input.Description,
	}

	if err := c.repo.CreateGrade(g); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create grade: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, g)
}

// UpdateGrade godoc
// @Summary Update grade
// @Description Update an existing grade (staff only)
// @Tags grades
// @Accept json
// @Produce json
// @Param grade_id path int true "Grade ID"
// @Param grade body GradeInput true "Updated grade information"
// @Success 200 {object} Grade "Grade updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Grade not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/grades/{grade_id} [put]
// @Security Bearer
func (c *PlayerController) UpdateGrade(ctx *gin.Context) {
	gradeID, err := strconv.ParseUint(ctx.Param("grade_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid grade ID"})
		return
	}

	var input GradeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	g, err := c.repo.GetGradeByID(uint(gradeID))
	if err != nil {
		if errors.Is(err, ErrGradeNotFound) {
			utils.NotFoundJSON(ctx, "grade")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get grade: " + err.Error()})
		}
		return
	}

	g.Letter = input.Letter
	g.Points = input.Points
	g.Description = input.Description

	if err := c.repo.UpdateGrade(g); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update grade: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, g)
}

// DeleteGrade godoc
// @Summary Delete grade
// @Description Delete a grade that no player references (staff only)
// @Tags grades
// @Produce json
// @Param grade_id path int true "Grade ID"
// @Success 200 {object} utils.SuccessResponse "Grade deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid grade ID"
// @Failure 409 {object} utils.ErrorResponse "Grade still referenced"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/grades/{grade_id} [delete]
// @Security Bearer
func (c *PlayerController) DeleteGrade(ctx *gin.Context) {
	gradeID, err := strconv.ParseUint(ctx.Param("grade_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid grade ID"})
		return
	}

	if err := c.repo.DeleteGrade(uint(gradeID)); err != nil {
		if errors.Is(err, ErrGradeInUse) {
			utils.ConflictJSON(ctx, "grade is still assigned to players")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete grade: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "grade deleted successfully"})
}

// parsePagination reads page/limit query params with defaults.
func parsePagination(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
