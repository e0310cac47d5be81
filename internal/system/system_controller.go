package system

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lsnz-league/lsnz/config"
	"github.com/lsnz-league/lsnz/pkg/upload"
	"github.com/lsnz-league/lsnz/pkg/utils"
	"github.com/gin-gonic/gin"
)

// SystemController handles game system HTTP requests
type SystemController struct {
	repo      SystemRepository
	appConfig *config.Config
}

// NewSystemController creates a new system controller
func NewSystemController(repo SystemRepository, appConfig *config.Config) *SystemController {
	return &SystemController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetAllSystems godoc
// @Summary List systems
// @Description Get all game systems ordered by name
// @Tags systems
// @Produce json
// @Success 200 {array} System "List of systems"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /systems [get]
func (c *SystemController) GetAllSystems(ctx *gin.Context) {
	systems, err := c.repo.GetAllSystems()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get systems: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, systems)
}

// GetSystemByID godoc
// @Summary Get system
// @Description Get a game system by its ID
// @Tags systems
// @Produce json
// @Param system_id path int true "System ID"
// @Success 200 {object} System "System details"
// @Failure 400 {object} utils.ErrorResponse "Invalid system ID"
// @Failure 404 {object} utils.ErrorResponse "System not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /systems/{system_id} [get]
func (c *SystemController) GetSystemByID(ctx *gin.Context) {
	systemID, err := strconv.ParseUint(ctx.Param("system_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid system ID"})
		return
	}

	s, err := c.repo.GetSystemByID(uint(systemID))
	if err != nil {
		if errors.Is(err, ErrSystemNotFound) {
			utils.NotFoundJSON(ctx, "system")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get system: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// CreateSystem godoc
// @Summary Create system
// @Description Create a new game system (staff only)
// @Tags systems
// @Accept json
// @Produce json
// @Param system body SystemInput true "System information"
// @Success 201 {object} System "System created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 403 {object} utils.ErrorResponse "Forbidden"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/systems [post]
// @Security Bearer
func (c *SystemController) CreateSystem(ctx *gin.Context) {
	var input SystemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	s := &System{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := c.repo.CreateSystem(s); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create system: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// UpdateSystem godoc
// @Summary Update system
// @Description Update an existing game system (staff only)
// @Tags systems
// @Accept json
// @Produce json
// @Param system_id path int true "System ID"
// @Param system body SystemInput true "Updated system information"
// @Success 200 {object} System "System updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "System not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/systems/{system_id} [put]
// @Security Bearer
func (c *SystemController) UpdateSystem(ctx *gin.Context) {
	systemID, err := strconv.ParseUint(ctx.Param("system_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid system ID"})
		return
	}

	var input SystemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	s, err := c.repo.GetSystemByID(uint(systemID))
	if err != nil {
		if errors.Is(err, ErrSystemNotFound) {
			utils.NotFoundJSON(ctx, "system")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get system: " + err.Error()})
		}
		return
	}

	s.Name = input.Name
	s.Description = input.Description

	if err := c.repo.UpdateSystem(s); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update system: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// UpdateSystemImage godoc
// @Summary Upload system image
// @Description Upload an image for a game system (staff only, max 5MB)
// @Tags systems
// @Accept multipart/form-data
// @Produce json
// @Param system_id path int true "System ID"
// @Param image formData file true "System image"
// @Success 200 {object} System "System updated"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid file"
// @Failure 404 {object} utils.ErrorResponse "System not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/systems/{system_id}/image [put]
// @Security Bearer
func (c *SystemController) UpdateSystemImage(ctx *gin.Context) {
	systemID, err := strconv.ParseUint(ctx.Param("system_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid system ID"})
		return
	}

	s, err := c.repo.GetSystemByID(uint(systemID))
	if err != nil {
		if errors.Is(err, ErrSystemNotFound) {
			utils.NotFoundJSON(ctx, "system")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get system: " + err.Error()})
		}
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "image file is required"})
		return
	}

	relPath, err := upload.SaveImage(fileHeader, c.appConfig.App.UploadDir, "system_images")
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

	s.Image = relPath
	if err := c.repo.UpdateSystem(s); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update system: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// DeleteSystem godoc
// @Summary Delete system
// @Description Delete a system no site or tournament references (staff only)
// @Tags systems
// @Produce json
// @Param system_id path int true "System ID"
// @Success 200 {object} utils.SuccessResponse "System deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid system ID"
// @Failure 409 {object} utils.ErrorResponse "System still referenced"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/systems/{system_id} [delete]
// @Security Bearer
func (c *SystemController) DeleteSystem(ctx *gin.Context) {
	systemID, err := strconv.ParseUint(ctx.Param("system_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid system ID"})
		return
	}

	if err := c.repo.DeleteSystem(uint(systemID)); err != nil {
		if errors.Is(err, ErrSystemInUse) {
			utils.ConflictJSON(ctx, "system is still referenced by sites or tournaments")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete system: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "system deleted successfully"})
}
