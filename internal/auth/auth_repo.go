package auth

import (
	"time"

	"github.com/lsnz-league/lsnz/internal/player"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreatePlayer(p *player.Player) error
	GetPlayerByEmail(email string) (*player.Player, error)
	GetPlayerByAlias(alias string) (*player.Player, error)
	GetPlayerByID(id uint) (*player.Player, error)
	UpdatePlayer(p *player.Player) error

	SaveRefreshToken(token *player.RefreshToken) error
	GetRefreshToken(tokenString string) (*player.RefreshToken, error)
	InvalidateRefreshToken(tokenString string) error
	InvalidateAllRefreshTokensForPlayer(playerID uint) error
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreatePlayer(p *player.Player) error {
	return r.db.Create(p).Error
}

func (r *authRepository) GetPlayerByEmail(email string) (*player.Player, error) {
	var p player.Player
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *authRepository) GetPlayerByAlias(alias string) (*player.Player, error) {
	var p player.Player
	if err := r.db.Where("lower(alias) = lower(?)", alias).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *authRepository) GetPlayerByID(id uint) (*player.Player, error) {
	var p player.Player
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *authRepository) UpdatePlayer(p *player.Player) error {
	return r.db.Save(p).Error
}

func (r *authRepository) SaveRefreshToken(token *player.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *authRepository) GetRefreshToken(tokenString string) (*player.RefreshToken, error) {
	var rt player.RefreshToken
	if err := r.db.Where("token = ? AND revoked = ? AND expires_at > ?", tokenString, false, time.Now()).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) InvalidateRefreshToken(tokenString string) error {
	return r.db.Model(&player.RefreshToken{}).Where("token = ?", tokenString).Update("revoked", true).Error
}

func (r *authRepository) InvalidateAllRefreshTokensForPlayer(playerID uint) error {
	return r.db.Model(&player.RefreshToken{}).Where("player_id = ?", playerID).Update("revoked", true).Error
}
