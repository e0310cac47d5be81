package auth

// RegisterRequest is the signup payload. Email is the login identifier.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"zapper@example.com"`
	Alias     string `json:"alias" binding:"required,max=20" example:"Zapper"`
	FirstName string `json:"first_name" binding:"required" example:"Jordan"`
	LastName  string `json:"last_name" binding:"required" example:"Smith"`
	Password  string `json:"password" binding:"required,min=8" example:"password123"`
	Bio       string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zapper@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse carries the issued token pair plus basic identity.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	PlayerID     uint   `json:"player_id"`
	Alias        string `json:"alias"`
	IsStaff      bool   `json:"is_staff"`
}
