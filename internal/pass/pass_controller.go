package pass

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/pkg/utils"
	"github.com/gin-gonic/gin"
)

// PassController handles pass HTTP requests
type PassController struct {
	repo      PassRepository
	appConfig *config.Config
}

// NewPassController creates a new pass controller
func NewPassController(repo PassRepository, appConfig *config.Config) *PassController {
	return &PassController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetMyPasses godoc
// @Summary List own passes
// @Description Get the caller's passes, each annotated with whether it is active today
// @Tags passes
// @Produce json
// @Success 200 {array} PassState "List of passes"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /passes/me [get]
// @Security Bearer
func (c *PassController) GetMyPasses(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	passes, err := c.repo.GetPassesByPlayer(playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get passes: " + err.Error()})
		return
	}

	now := time.Now()
	states := make([]PassState, 0, len(passes))
	for _, p := range passes {
		states = append(states, PassState{Pass: p, Active: p.ActiveOn(now)})
	}

	ctx.JSON(http.StatusOK, states)
}

// CreatePass godoc
// @Summary Issue pass
// @Description Issue a pass to a player (staff only). End date defaults from the pass type when omitted.
// @Tags passes
// @Accept json
// @Produce json
// @Param pass body PassInput true "Pass information"
// @Success 201 {object} Pass "Pass created"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/passes [post]
// @Security Bearer
func (c *PassController) CreatePass(ctx *gin.Context) {
	var input PassInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	if input.PricePaid == "" {
		input.PricePaid = "0"
	}

	endDate := DeriveEndDate(input.Type, input.StartDate)
	if input.EndDate != nil {
		endDate = *input.EndDate
	}
	if endDate.Before(input.StartDate) {
		utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
			"end_date": "end date must not be before start date",
		})
		return
	}

	p := &Pass{
		PlayerID:  input.PlayerID,
		Type:      input.Type,
		StartDate: input.StartDate,
		EndDate:   endDate,
		PricePaid: input.PricePaid,
	}

	if err := c.repo.CreatePass(p); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create pass: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// GetAllPasses godoc
// @Summary List passes
// @Description Get a paginated list of all passes (staff only)
// @Tags passes
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of items per page (default: 20)"
// @Success 200 {object} utils.PaginatedResponse{data=[]Pass} "List of passes"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/passes [get]
// @Security Bearer
func (c *PassController) GetAllPasses(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	passes, totalCount, err := c.repo.GetAllPasses(page, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get passes: " + err.Error()})
		return
	}

	utils.PaginatedJSON(ctx, passes, page, limit, totalCount)
}

// DeletePass godoc
// @Summary Revoke pass
// @Description Delete a pass (staff only)
// @Tags passes
// @Produce json
// @Param pass_id path int true "Pass ID"
// @Success 200 {object} utils.SuccessResponse "Pass deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid pass ID"
// @Failure 404 {object} utils.ErrorResponse "Pass not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/passes/{pass_id} [delete]
// @Security Bearer
func (c *PassController) DeletePass(ctx *gin.Context) {
	passID, err := strconv.ParseUint(ctx.Param("pass_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid pass ID"})
		return
	}

	if err := c.repo.DeletePass(uint(passID)); err != nil {
		if errors.Is(err, ErrPassNotFound) {
			utils.NotFoundJSON(ctx, "pass")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete pass: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "pass deleted successfully"})
}
