package registration

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/internal/tournament"
	"github.com/lsnz-league/lsnz/pkg/utils"
	"github.com/gin-gonic/gin"
)

// RegistrationController handles registration HTTP requests
type RegistrationController struct {
	repo           RegistrationRepository
	tournamentRepo tournament.TournamentRepository
	appConfig      *config.Config
}

// NewRegistrationController creates a new registration controller
func NewRegistrationController(repo RegistrationRepository, tournamentRepo tournament.TournamentRepository, appConfig *config.Config) *RegistrationController {
	return &RegistrationController{
		repo:           repo,
		tournamentRepo: tournamentRepo,
		appConfig:      appConfig,
	}
}

// GetTournamentRegistration godoc
// @Summary Tournament registration form
// @Description Get a tournament's events with the caller's registration state. Works anonymously; with a token each event is annotated for that player.
// @Tags registrations
// @Produce json
// @Param slug path string true "Tournament slug"
// @Success 200 {array} EventState "Events with registration state"
// @Failure 404 {object} utils.ErrorResponse "Tournament not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /tournaments/{slug}/registration [get]
func (c *RegistrationController) GetTournamentRegistration(ctx *gin.Context) {
	t, err := c.tournamentRepo.GetTournamentBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, tournament.ErrTournamentNotFound) {
			utils.NotFoundJSON(ctx, "tournament")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get tournament: " + err.Error()})
		}
		return
	}

	playerID, _ := mw.GetPlayerIDFromContext(ctx)

	states, err := c.repo.ListEventStates(t.ID, playerID, time.Now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get registration state: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, states)
}

// SubmitTournamentRegistration godoc
// @Summary Submit tournament registration
// @Description Register for the selected events of a tournament in one submission. Events that started or are already registered are skipped; resubmitting is harmless.
// @Tags registrations
// @Accept json
// @Produce json
// @Param slug path string true "Tournament slug"
// @Param selections body BulkRegistrationRequest true "Event selections keyed by event ID"
// @Success 201 {object} utils.SuccessResponse{data=[]Registration} "Registrations created"
// @Failure 400 {object} utils.ErrorResponse "No event selected or invalid input"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Tournament not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /tournaments/{slug}/registration [post]
// @Security Bearer
func (c *RegistrationController) SubmitTournamentRegistration(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	t, err := c.tournamentRepo.GetTournamentBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, tournament.ErrTournamentNotFound) {
			utils.NotFoundJSON(ctx, "tournament")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get tournament: " + err.Error()})
		}
		return
	}

	var input BulkRegistrationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := c.repo.RegisterBulk(t.ID, playerID, input.Selections, time.Now())
	if err != nil {
		if errors.Is(err, ErrNoEventSelected) {
			utils.ValidationErrorJSON(ctx, "validation failed", map[string]interface{}{
				"selections": "select at least one event",
			})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to register: " + err.Error()})
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusCreated, "registration submitted", created)
}

// GetEventRegistration godoc
// @Summary Event registration status
// @Description Get one event with the caller's registration state. Works anonymously; a logged-in registered player also gets their registration.
// @Tags registrations
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} EventRegistrationStatus "Event with registration state"
// @Failure 400 {object} utils.ErrorResponse "Invalid event ID"
// @Failure 404 {object} utils.ErrorResponse "Event not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events/{event_id}/registration [get]
func (c *RegistrationController) GetEventRegistration(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	e, err := c.tournamentRepo.GetEventByID(uint(eventID))
	if err != nil {
		if errors.Is(err, tournament.ErrEventNotFound) {
			utils.NotFoundJSON(ctx, "event")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get event: " + err.Error()})
		}
		return
	}

	status := EventRegistrationStatus{
		Event:   *e,
		Started: !e.StartTime.After(time.Now()),
	}

	if playerID, err := mw.GetPlayerIDFromContext(ctx); err == nil {
		reg, err := c.repo.GetRegistration(uint(eventID), playerID)
		switch {
		case err == nil:
			status.Registered = true
			status.Registration = reg
		case !errors.Is(err, ErrRegistrationNotFound):
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get registration: " + err.Error()})
			return
		}
	}
	status.Selectable = !status.Started && !status.Registered

	ctx.JSON(http.StatusOK, status)
}

// RegisterForEvent godoc
// @Summary Register for event
// @Description Register the caller for one event, optionally onto a team. Rejects duplicates and started events.
// @Tags registrations
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param registration body SingleRegistrationRequest false "Optional team choice"
// @Success 201 {object} Registration "Registration created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input or team not in event"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Event or team not found"
// @Failure 409 {object} utils.ErrorResponse "Already registered or event started"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events/{event_id}/registration [post]
// @Security Bearer
func (c *RegistrationController) RegisterForEvent(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	var input SingleRegistrationRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&input); err != nil {
			ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
			return
		}
	}

	reg, err := c.repo.RegisterSingle(uint(eventID), playerID, input.TeamID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrEventNotFound):
			utils.NotFoundJSON(ctx, "event")
		case errors.Is(err, tournament.ErrTeamNotFound):
			utils.NotFoundJSON(ctx, "team")
		case errors.Is(err, ErrTeamNotInEvent):
			utils.BadRequestJSON(ctx, "team does not belong to this event")
		case errors.Is(err, ErrAlreadyRegistered):
			utils.ConflictJSON(ctx, "already registered for this event")
		case errors.Is(err, ErrEventStarted):
			utils.ConflictJSON(ctx, "event has already started")
		default:
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to register: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

// DeregisterFromEvent godoc
// @Summary Deregister from event
// @Description Remove the caller's registration for an event that has not started yet
// @Tags registrations
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} utils.SuccessResponse "Registration removed"
// @Failure 400 {object} utils.ErrorResponse "Invalid event ID"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Event or registration not found"
// @Failure 409 {object} utils.ErrorResponse "Event already started"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events/{event_id}/registration [delete]
// @Security Bearer
func (c *RegistrationController) DeregisterFromEvent(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	if err := c.repo.Deregister(uint(eventID), playerID, time.Now()); err != nil {
		switch {
		case errors.Is(err, tournament.ErrEventNotFound):
			utils.NotFoundJSON(ctx, "event")
		case errors.Is(err, ErrRegistrationNotFound):
			utils.NotFoundJSON(ctx, "registration")
		case errors.Is(err, ErrEventStarted):
			utils.ConflictJSON(ctx, "event has already started")
		default:
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to deregister: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "registration removed successfully"})
}

// GetMyRegistrations godoc
// @Summary List own registrations
// @Description Get all of the caller's registrations, soonest event first
// @Tags registrations
// @Produce json
// @Success 200 {array} Registration "List of registrations"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /registrations/me [get]
// @Security Bearer
func (c *RegistrationController) GetMyRegistrations(ctx *gin.Context) {
	playerID, err := mw.GetPlayerIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "authentication required"})
		return
	}

	regs, err := c.repo.GetRegistrationsByPlayer(playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get registrations: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// GetEventRegistrations godoc
// @Summary List event registrations
// @Description Get all registrations of an event (staff only)
// @Tags registrations
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} Registration "List of registrations"
// @Failure 400 {object} utils.ErrorResponse "Invalid event ID"
// @Failure 404 {object} utils.ErrorResponse "Event not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/events/{event_id}/registrations [get]
// @Security Bearer
func (c *RegistrationController) GetEventRegistrations(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	if _, err := c.tournamentRepo.GetEventByID(uint(eventID)); err != nil {
		if errors.Is(err, tournament.ErrEventNotFound) {
			utils.NotFoundJSON(ctx, "event")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get event: " + err.Error()})
		}
		return
	}

	regs, err := c.repo.GetRegistrationsByEvent(uint(eventID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get registrations: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// UpdateRegistrationPaid godoc
// @Summary Update paid flag
// @Description Mark a registration as paid or unpaid (staff only)
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration_id path int true "Registration ID"
// @Param paid body PaidUpdateRequest true "Paid flag"
// @Success 200 {object} utils.SuccessResponse "Registration updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Registration not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /staff/registrations/{registration_id}/paid [put]
// @Security Bearer
func (c *RegistrationController) UpdateRegistrationPaid(ctx *gin.Context) {
	registrationID, err := strconv.ParseUint(ctx.Param("registration_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid registration ID"})
		return
	}

	var input PaidUpdateRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	if err := c.repo.SetPaid(uint(registrationID), *input.Paid); err != nil {
		if errors.Is(err, ErrRegistrationNotFound) {
			utils.NotFoundJSON(ctx, "registration")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update registration: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "registration updated successfully"})
}
