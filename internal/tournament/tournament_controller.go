package tournament

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lsnz-league/lsnz/config"
	"github.com/lsnz-league/lsnz/pkg/utils"
	"github.com/gin-gonic/gin"
)

// TournamentController handles tournament, event, settings and team HTTP requests
type TournamentController struct {
	repo      TournamentRepository
	appConfig *config.Config
}

// NewTournamentController creates a new tournament controller
func NewTournamentController(repo TournamentRepository, appConfig *config.Config) *TournamentController {
	return &TournamentController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetAllTournaments godoc
// @Summary List tournaments
// @Description Get a paginated list of tournaments, newest first
// @Tags tournaments
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of items per page (default: 20)"
// @Success 200 {object} utils.PaginatedResponse{data=[]Tournament} "List of tournaments"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /tournaments [get]
func (c *TournamentController) GetAllTournaments(ctx *gin.Context) {
	page, limit := parsePagination(ctx)

	tournaments, totalCount, err := c.repo.GetAllTournaments(page, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get tournaments: " + err.Error()})
		return
	}

	utils.PaginatedJSON(ctx, tournaments, page, limit, totalCount)
}

// GetTournamentBySlug godoc
// @Summary Get tournament
// @Description Get a tournament by its slug, with events ordered by start time
// @Tags tournaments
// @Produce json
// @Param slug path string true "Tournament slug"
// @Success 200 {object} Tournament "Tournament details"
// @Failure 404 {object} utils.ErrorResponse "Tournament not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /tournaments/{slug} [get]
func (c *TournamentController) GetTournamentBySlug(ctx *gin.Context) {
	t, err := c.repo.GetTournamentBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrTournamentNotFound) {
			utils.NotFoundJSON(ctx, "tournament")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get tournament: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// CreateTournament godoc
// @Summary Create tournament
// @Description Create a new tournament (staff only)
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament body TournamentInput true "Tournament information"
// @Success 201 {object} Tournament "Tournament created"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 403 {object} utils.ErrorResponse "Forbidden"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/tournaments [post]
// @Security Bearer
func (c *TournamentController) CreateTournament(ctx *gin.Context) {
	var input TournamentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	if input.EndDate.Before(input.StartDate) {
		utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
			"end_date": "end date must not be before start date",
		})
		return
	}

	t := &Tournament{
		Name:      input.Name,
		SiteID:    input.SiteID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		SystemID:  input.SystemID,
	}

	if err := c.repo.CreateTournament(t); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create tournament: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

// UpdateTournament godoc
// @Summary Update tournament
// @Description Update an existing tournament (staff only). The slug is kept stable.
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param tournament body TournamentInput true "Updated tournament information"
// @Success 200 {object} Tournament "Tournament updated"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Tournament not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/tournaments/{tournament_id} [put]
// @Security Bearer
func (c *TournamentController) UpdateTournament(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid tournament ID"})
		return
	}

	var input TournamentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	if input.EndDate.Before(input.StartDate) {
		utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
			"end_date": "end date must not be before start date",
		})
		return
	}

	t, err := c.repo.GetTournamentByID(uint(tournamentID))
	if err != nil {
		if errors.Is(err, ErrTournamentNotFound) {
			utils.NotFoundJSON(ctx, "tournament")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get tournament: " + err.Error()})
		}
		return
	}

	t.Name = input.Name
	t.SiteID = input.SiteID
	t.StartDate = input.StartDate
	t.EndDate = input.EndDate
	t.SystemID = input.SystemID

	if err := c.repo.UpdateTournament(t); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update tournament: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// DeleteTournament godoc
// @Summary Delete tournament
// @Description Delete a tournament that has no events (staff only)
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} utils.SuccessResponse "Tournament deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid tournament ID"
// @Failure 409 {object} utils.ErrorResponse "Tournament still has events"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/tournaments/{tournament_id} [delete]
// @Security Bearer
func (c *TournamentController) DeleteTournament(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid tournament ID"})
		return
	}

	if err := c.repo.DeleteTournament(uint(tournamentID)); err != nil {
		if errors.Is(err, ErrTournamentHasEvents) {
			utils.ConflictJSON(ctx, "tournament still has events; delete them first")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete tournament: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "tournament deleted successfully"})
}

// GetTournamentEvents godoc
// @Summary List tournament events
// @Description Get a tournament's events ordered by start time
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {array} Event "List of events"
// @Failure 400 {object} utils.ErrorResponse "Invalid tournament ID"
// @Failure 404 {object} utils.ErrorResponse "Tournament not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /tournament-events/{tournament_id} [get]
func (c *TournamentController) GetTournamentEvents(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid tournament ID"})
		return
	}

	if _, err := c.repo.GetTournamentByID(uint(tournamentID)); err != nil {
		if errors.Is(err, ErrTournamentNotFound) {
			utils.NotFoundJSON(ctx, "tournament")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get tournament: " + err.Error()})
		}
		return
	}

	events, err := c.repo.GetEventsByTournamentID(uint(tournamentID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get events: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create event
// @Description Add an event to a tournament (staff only)
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param event body EventInput true "Event information"
// @Success 201 {object} Event "Event created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Tournament or settings not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/tournaments/{tournament_id}/events [post]
// @Security Bearer
func (c *TournamentController) CreateEvent(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid tournament ID"})
		return
	}

	var input EventInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := c.repo.GetTournamentByID(uint(tournamentID)); err != nil {
		if errors.Is(err, ErrTournamentNotFound) {
			utils.NotFoundJSON(ctx, "tournament")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get tournament: " + err.Error()})
		}
		return
	}

	if _, err := c.repo.GetSettingsByID(input.SettingsID); err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			utils.NotFoundJSON(ctx, "settings profile")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get settings: " + err.Error()})
		}
		return
	}

	pointsCap := input.PointsCap
	if pointsCap == nil {
		defaultCap := DefaultPointsCap
		pointsCap = &defaultCap
	}

	e := &Event{
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		PointsCap:    pointsCap,
		Format:       input.Format,
		TournamentID: uint(tournamentID),
		SettingsID:   input.SettingsID,
	}

	if err := c.repo.CreateEvent(e); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create event: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, e)
}

// UpdateEvent godoc
// @Summary Update event
// @Description Update an event within a tournament (staff only)
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param event_id path int true "Event ID"
// @Param event body EventInput true "Updated event information"
// @Success 200 {object} Event "Event updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Event not found in tournament"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/tournaments/{tournament_id}/events/{event_id} [put]
// @Security Bearer
func (c *TournamentController) UpdateEvent(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid tournament ID"})
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	var input EventInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	e, err := c.repo.GetEventByIDAndTournament(uint(eventID), uint(tournamentID))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			utils.NotFoundJSON(ctx, "event")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get event: " + err.Error()})
		}
		return
	}

	e.StartTime = input.StartTime
	e.EndTime = input.EndTime
	if input.PointsCap != nil {
		e.PointsCap = input.PointsCap
	}
	e.Format = input.Format
	e.SettingsID = input.SettingsID
	e.Settings = nil

	if err := c.repo.UpdateEvent(e); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update event: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, e)
}

// DeleteEvent godoc
// @Summary Delete event
// @Description Delete an event and its teams; blocked while registrations exist (staff only)
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param event_id path int true "Event ID"
// @Success 200 {object} utils.SuccessResponse "Event deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid ID"
// @Failure 404 {object} utils.ErrorResponse "Event not found in tournament"
// @Failure 409 {object} utils.ErrorResponse "Event still has registrations"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/tournaments/{tournament_id}/events/{event_id} [delete]
// @Security Bearer
func (c *TournamentController) DeleteEvent(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid tournament ID"})
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	if _, err := c.repo.GetEventByIDAndTournament(uint(eventID), uint(tournamentID)); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			utils.NotFoundJSON(ctx, "event")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get event: " + err.Error()})
		}
		return
	}

	if err := c.repo.DeleteEvent(uint(eventID)); err != nil {
		if errors.Is(err, ErrEventHasRegistrations) {
			utils.ConflictJSON(ctx, "event still has registrations")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete event: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "event deleted successfully"})
}

// GetAllSettings godoc
// @Summary List settings profiles
// @Description Get all reusable rules profiles
// @Tags settings
// @Produce json
// @Success 200 {array} Settings "List of settings profiles"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /settings [get]
func (c *TournamentController) GetAllSettings(ctx *gin.Context) {
	settings, err := c.repo.GetAllSettings()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get settings: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// CreateSettings godoc
// @Summary Create settings profile
// @Description Create a reusable rules profile (staff only). Deactivation defaults to 8s.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body SettingsInput true "Settings information"
// @Success 201 {object} Settings "Settings created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/settings [post]
// @Security Bearer
func (c *TournamentController) CreateSettings(ctx *gin.Context) {
	var input SettingsInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	s := &Settings{
		Name:             input.Name,
		StunsOn:          input.StunsOn,
		DeactivationTime: DefaultDeactivationTime,
		ReloadsOn:        true,
	}
	if input.DeactivationTimeMs != nil {
		s.DeactivationTime = time.Duration(*input.DeactivationTimeMs) * time.Millisecond
	}
	if input.TriggerLockoutDelayMs != nil {
		s.TriggerLockoutDelay = time.Duration(*input.TriggerLockoutDelayMs) * time.Millisecond
	}
	if input.ReloadsOn != nil {
		s.ReloadsOn = *input.ReloadsOn
	}

	if err := c.repo.CreateSettings(s); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create settings: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// UpdateSettings godoc
// @Summary Update settings profile
// @Description Update a rules profile (staff only)
// @Tags settings
// @Accept json
// @Produce json
// @Param settings_id path int true "Settings ID"
// @Param settings body SettingsInput true "Updated settings information"
// @Success 200 {object} Settings "Settings updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Settings not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/settings/{settings_id} [put]
// @Security Bearer
func (c *TournamentController) UpdateSettings(ctx *gin.Context) {
	settingsID, err := strconv.ParseUint(ctx.Param("settings_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid settings ID"})
		return
	}

	var input SettingsInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	s, err := c.repo.GetSettingsByID(uint(settingsID))
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			utils.NotFoundJSON(ctx, "settings profile")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get settings: " + err.Error()})
		}
		return
	}

	s.Name = input.Name
	s.StunsOn = input.StunsOn
	if input.DeactivationTimeMs != nil {
		s.DeactivationTime = time.Duration(*input.DeactivationTimeMs) * time.Millisecond
	}
	if input.TriggerLockoutDelayMs != nil {
		s.TriggerLockoutDelay = time.Duration(*input.TriggerLockoutDelayMs) * time.Millisecond
	}
	if input.ReloadsOn != nil {
		s.ReloadsOn = *input.ReloadsOn
	}

	if err := c.repo.UpdateSettings(s); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update settings: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// DeleteSettings godoc
// @Summary Delete settings profile
// @Description Delete a rules profile no event references (staff only)
// @Tags settings
// @Produce json
// @Param settings_id path int true "Settings ID"
// @Success 200 {object} utils.SuccessResponse "Settings deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid settings ID"
// @Failure 409 {object} utils.ErrorResponse "Settings still referenced"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/settings/{settings_id} [delete]
// @Security Bearer
func (c *TournamentController) DeleteSettings(ctx *gin.Context) {
	settingsID, err := strconv.ParseUint(ctx.Param("settings_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid settings ID"})
		return
	}

	if err := c.repo.DeleteSettings(uint(settingsID)); err != nil {
		if errors.Is(err, ErrSettingsInUse) {
			utils.ConflictJSON(ctx, "settings profile is still referenced by events")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete settings: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "settings deleted successfully"})
}

// GetEventTeams godoc
// @Summary List event teams
// @Description Get all teams of an event
// @Tags teams
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} Team "List of teams"
// @Failure 400 {object} utils.ErrorResponse "Invalid event ID"
// @Failure 404 {object} utils.ErrorResponse "Event not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events/{event_id}/teams [get]
func (c *TournamentController) GetEventTeams(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	if _, err := c.repo.GetEventByID(uint(eventID)); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			utils.NotFoundJSON(ctx, "event")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get event: " + err.Error()})
		}
		return
	}

	teams, err := c.repo.GetTeamsByEventID(uint(eventID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get teams: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// CreateTeam godoc
// @Summary Create team
// @Description Create a team within an event (staff only)
// @Tags teams
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param team body TeamInput true "Team information"
// @Success 201 {object} Team "Team created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Event not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/events/{event_id}/teams [post]
// @Security Bearer
func (c *TournamentController) CreateTeam(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	var input TeamInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := c.repo.GetEventByID(uint(eventID)); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			utils.NotFoundJSON(ctx, "event")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get event: " + err.Error()})
		}
		return
	}

	t := &Team{
		Name:    input.Name,
		EventID: uint(eventID),
	}

	if err := c.repo.CreateTeam(t); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create team: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

// DeleteTeam godoc
// @Summary Delete team
// @Description Delete a team no registration references (staff only)
// @Tags teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} utils.SuccessResponse "Team deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid team ID"
// @Failure 409 {object} utils.ErrorResponse "Team still referenced"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/teams/{team_id} [delete]
// @Security Bearer
func (c *TournamentController) DeleteTeam(ctx *gin.Context) {
	teamID, err := strconv.ParseUint(ctx.Param("team_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid team ID"})
		return
	}

	if err := c.repo.DeleteTeam(uint(teamID)); err != nil {
		if errors.Is(err, ErrTeamHasRegistrations) {
			utils.ConflictJSON(ctx, "team still has registrations")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete team: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "team deleted successfully"})
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
