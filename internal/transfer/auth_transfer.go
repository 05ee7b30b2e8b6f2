package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	UserID string `json:"user_id"`
	Nonce  string `json:"nonce,omitempty"`
	jwt.RegisteredClaims
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SettingsInput struct {
	PostingTime string `json:"posting_time"`
	Timezone    string `json:"timezone"`
	DefaultTone string `json:"default_tone"`
}
