package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"github.com/abigaildinucci5-hue/tp-final-sub001/config"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

const (
	AccessTokenMinutes = 15
	RefreshTokenDays   = 7
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

// Claims son los claims firmados. SessionID es el JTI del refresh token
// asociado: el logout lo usa para revocar la sesión desde el access token.
type Claims struct {
	UserInfo  UserInfo `json:"userinfo"`
	SessionID string   `json:"sessionId,omitempty"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

// TokenPair agrupa el par emitido en login, OAuth y refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	SessionID    string `json:"sessionId"`
}

// GenerateTokenPair emite un access token corto y un refresh token largo.
// El JTI del refresh identifica la sesión en Redis.
func GenerateTokenPair(userInfo UserInfo) (TokenPair, error) {
	sessionID := uuid.NewString()

	accessClaims := &Claims{
		UserInfo:  userInfo,
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * AccessTokenMinutes).Unix(),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(secretKey)
	if err != nil {
		return TokenPair{}, err
	}

	refreshClaims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			Id:        sessionID,
			ExpiresAt: time.Now().Add(time.Hour * 24 * RefreshTokenDays).Unix(),
		},
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(refreshSecretKey)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh, SessionID: sessionID}, nil
}

func parseToken(tokenString string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Método de firma inesperado", nil)
		}
		return key, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return claims, apperrors.NewAppError(apperrors.ErrCodeTokenExpired, "Token expirado", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token inválido", err)
	}
	if !token.Valid {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token inválido", nil)
	}
	return claims, nil
}

// ParseAccessToken valida firma y expiración del access token.
// Si el token está expirado devuelve igualmente los claims junto con el
// error TOKEN_EXPIRADO: el logout los necesita para revocar la sesión.
func ParseAccessToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, secretKey)
}

// ParseRefreshToken valida firma y expiración del refresh token
func ParseRefreshToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, refreshSecretKey)
}
