package site

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lsnz-league/lsnz/config"
	"github.com/lsnz-league/lsnz/pkg/utils"
	"github.com/gin-gonic/gin"
)

// SiteController handles site HTTP requests
type SiteController struct {
	repo      SiteRepository
	appConfig *config.Config
}

// NewSiteController creates a new site controller
func NewSiteController(repo SiteRepository, appConfig *config.Config) *SiteController {
	return &SiteController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetAllSites godoc
// @Summary List sites
// @Description Get all sites ordered by name
// @Tags sites
// @Produce json
// @Success 200 {array} Site "List of sites"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /sites [get]
func (c *SiteController) GetAllSites(ctx *gin.Context) {
	sites, err := c.repo.GetAllSites()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get sites: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, sites)
}

// GetSiteByID godoc
// @Summary Get site
// @Description Get a site by its ID
// @Tags sites
// @Produce json
// @Param site_id path int true "Site ID"
// @Success 200 {object} Site "Site details"
// @Failure 400 {object} utils.ErrorResponse "Invalid site ID"
// @Failure 404 {object} utils.ErrorResponse "Site not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /sites/{site_id} [get]
func (c *SiteController) GetSiteByID(ctx *gin.Context) {
	siteID, err := strconv.ParseUint(ctx.Param("site_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid site ID"})
		return
	}

	s, err := c.repo.GetSiteByID(uint(siteID))
	if err != nil {
		if errors.Is(err, ErrSiteNotFound) {
			utils.NotFoundJSON(ctx, "site")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get site: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// CreateSite godoc
// @Summary Create site
// @Description Create a new site (staff only)
// @Tags sites
// @Accept json
// @Produce json
// @Param site body SiteInput true "Site information"
// @Success 201 {object} Site "Site created"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 403 {object} utils.ErrorResponse "Forbidden"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/sites [post]
// @Security Bearer
func (c *SiteController) CreateSite(ctx *gin.Context) {
	var input SiteInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	if !ValidCountry(input.Country) {
		utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
			"country": "unknown country code",
		})
		return
	}

	s := &Site{
		Name:     input.Name,
		Country:  input.Country,
		Address:  input.Address,
		SystemID: input.SystemID,
	}

	if err := c.repo.CreateSite(s); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create site: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// UpdateSite godoc
// @Summary Update site
// @Description Update an existing site (staff only)
// @Tags sites
// @Accept json
// @Produce json
// @Param site_id path int true "Site ID"
// @Param site body SiteInput true "Updated site information"
// @Success 200 {object} Site "Site updated"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Site not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/sites/{site_id} [put]
// @Security Bearer
func (c *SiteController) UpdateSite(ctx *gin.Context) {
	siteID, err := strconv.ParseUint(ctx.Param("site_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid site ID"})
		return
	}

	var input SiteInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	if !ValidCountry(input.Country) {
		utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
			"country": "unknown country code",
		})
		return
	}

	s, err := c.repo.GetSiteByID(uint(siteID))
	if err != nil {
		if errors.Is(err, ErrSiteNotFound) {
			utils.NotFoundJSON(ctx, "site")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get site: " + err.Error()})
		}
		return
	}

	s.Name = input.Name
	s.Country = input.Country
	s.Address = input.Address
	s.SystemID = input.SystemID

	if err := c.repo.UpdateSite(s); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update site: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// DeleteSite godoc
// @Summary Delete site
// @Description Delete a site no tournament or player references (staff only)
// @Tags sites
// @Produce json
// @Param site_id path int true "Site ID"
// @Success 200 {object} utils.SuccessResponse "Site deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid site ID"
// @Failure 409 {object} utils.ErrorResponse "Site still referenced"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/sites/{site_id} [delete]
// @Security Bearer
func (c *SiteController) DeleteSite(ctx *gin.Context) {
	siteID, err := strconv.ParseUint(ctx.Param("site_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid site ID"})
		return
	}

	if err := c.repo.DeleteSite(uint(siteID)); err != nil {
		if errors.Is(err, ErrSiteInUse) {
			utils.ConflictJSON(ctx, "site is still referenced by tournaments or players")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete site: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "site deleted successfully"})
}
