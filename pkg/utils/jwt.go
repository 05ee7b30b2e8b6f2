package utils

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
	"go.uber.org/zap"
)

const (
	tokenIssuer = "linkedin-studio"

	// Session tokens authenticate API calls. State tokens only round-trip
	// through an OAuth provider and are never accepted as credentials.
	audienceSession    = "session"
	audienceOAuthState = "oauth-state"
)

var ErrStateMismatch = errors.New("oauth state does not match this browser")

func signToken(secretKey, audience string, claims transfer.CustomClaims, tokenDuration time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{audience},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secretKey))
	if err != nil {
		zap.L().Info(err.Error())
		return "", err
	}
	return signedToken, nil
}

func parseToken(secretKey, audience, tokenString string) (*transfer.CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &transfer.CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(audience))
	if err != nil {
		zap.L().Debug("token rejected", zap.String("audience", audience), zap.Error(err))
		return nil, err
	}

	if claims, ok := token.Claims.(*transfer.CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateToken issues a session token for userID.
func GenerateToken(secretKey, userID string, tokenDuration time.Duration) (string, error) {
	return signToken(secretKey, audienceSession, transfer.CustomClaims{UserID: userID}, tokenDuration)
}

// ValidateToken accepts session tokens only.
func ValidateToken(secretKey, tokenString string) (*transfer.CustomClaims, error) {
	return parseToken(secretKey, audienceSession, tokenString)
}

// GenerateStateToken issues an OAuth state bound to nonce, which the caller
// keeps in a cookie on the initiating browser.
func GenerateStateToken(secretKey, userID, nonce string, tokenDuration time.Duration) (string, error) {
	if nonce == "" {
		return "", errors.New("state nonce is empty")
	}
	return signToken(secretKey, audienceOAuthState, transfer.CustomClaims{UserID: userID, Nonce: nonce}, tokenDuration)
}

// ValidateStateToken checks an OAuth state and that it was issued for nonce.
func ValidateStateToken(secretKey, tokenString, nonce string) (*transfer.CustomClaims, error) {
	claims, err := parseToken(secretKey, audienceOAuthState, tokenString)
	if err != nil {
		return nil, err
	}
	if nonce == "" || subtle.ConstantTimeCompare([]byte(claims.Nonce), []byte(nonce)) != 1 {
		return nil, ErrStateMismatch
	}
	return claims, nil
}
