package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lsnz-league/lsnz/config"
	"github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/internal/player"
	"github.com/lsnz-league/lsnz/pkg/token"
	"github.com/lsnz-league/lsnz/pkg/utils"
	pvalidator "github.com/lsnz-league/lsnz/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(playerID uint, staff bool) (string, string, error) {
	accessToken, err := token.GenerateJWT(playerID, staff, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(playerID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &player.RefreshToken{
		PlayerID:  playerID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// Register godoc
// @Summary      Sign up
// @Description  Create a new player account with email, alias and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        player body RegisterRequest true "Signup details"
// @Success      201 {object} AuthResponse "Player registered, returns tokens"
// @Failure      400 {object} utils.ErrorResponse "Validation error"
// @Failure      409 {object} utils.ErrorResponse "Email or alias already in use"
// @Failure      500 {object} utils.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorJSON(c, "Invalid input", pvalidator.ParseError(err))
		return
	}

	if _, err := ac.repo.GetPlayerByEmail(strings.ToLower(req.Email)); !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ConflictJSON(c, "A player with this email already exists")
		return
	}
	if _, err := ac.repo.GetPlayerByAlias(req.Alias); !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ConflictJSON(c, "This alias is already taken")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "Error hashing password"})
		return
	}

	newPlayer := &player.Player{
		Email:      strings.ToLower(req.Email),
		Alias:      req.Alias,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Password:   hashedPassword,
		Bio:        req.Bio,
		LastActive: time.Now(),
	}

	if err := ac.repo.CreatePlayer(newPlayer); err != nil {
		// The unique indexes back up the pre-checks above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.ConflictJSON(c, "A player with this email or alias already exists")
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "Player creation failed: " + err.Error()})
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(newPlayer.ID, newPlayer.IsStaff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		PlayerID:     newPlayer.ID,
		Alias:        newPlayer.Alias,
		IsStaff:      newPlayer.IsStaff,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password, returns a token pair.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Login credentials"
// @Success      200 {object} AuthResponse "Authenticated"
// @Failure      400 {object} utils.ErrorResponse "Validation error"
// @Failure      401 {object} utils.ErrorResponse "Invalid credentials"
// @Failure      500 {object} utils.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	p, err := ac.repo.GetPlayerByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "Login failed"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, p.Password) {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	p.LastActive = time.Now()
	if err := ac.repo.UpdatePlayer(p); err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "Login failed"})
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(p.ID, p.IsStaff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		PlayerID:     p.ID,
		Alias:        p.Alias,
		IsStaff:      p.IsStaff,
	})
}

// RefreshToken godoc
// @Summary      Refresh tokens
// @Description  Exchange a valid refresh token for a new token pair. The used token is invalidated.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        refresh body RefreshRequest true "Refresh token"
// @Success      200 {object} AuthResponse "New token pair"
// @Failure      400 {object} utils.ErrorResponse "Validation error"
// @Failure      401 {object} utils.ErrorResponse "Invalid or expired refresh token"
// @Failure      500 {object} utils.ErrorResponse "Internal server error"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "Invalid refresh token: " + err.Error()})
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "Refresh token not recognised"})
		return
	}

	p, err := ac.repo.GetPlayerByID(claims.PlayerID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "Player no longer exists"})
		return
	}

	// Rotate: invalidate the used token before issuing a new pair.
	if err := ac.repo.InvalidateRefreshToken(stored.Token); err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "Failed to rotate refresh token"})
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(p.ID, p.IsStaff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		PlayerID:     p.ID,
		Alias:        p.Alias,
		IsStaff:      p.IsStaff,
	})
}

// GetProfile godoc
// @Summary      Current player
// @Description  Get the authenticated player's own profile.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} player.Player "Profile"
// @Failure      401 {object} utils.ErrorResponse "Unauthorized"
// @Failure      500 {object} utils.ErrorResponse "Internal server error"
// @Router       /auth/me [get]
// @Security     Bearer
func (ac *AuthController) GetProfile(c *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	p, err := ac.repo.GetPlayerByID(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Logout godoc
// @Summary      Log out
// @Description  Invalidate all refresh tokens for the authenticated player.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} utils.SuccessResponse "Logged out"
// @Failure      401 {object} utils.ErrorResponse "Unauthorized"
// @Failure      500 {object} utils.ErrorResponse "Internal server error"
// @Router       /auth/logout [post]
// @Security     Bearer
func (ac *AuthController) Logout(c *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := ac.repo.InvalidateAllRefreshTokensForPlayer(playerID); err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "logout failed"})
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse{Message: "logged out"})
}
