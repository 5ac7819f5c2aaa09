package services

import (
	"os"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

func TestMain(m *testing.M) {
	secretKey = []byte("clave-access-de-prueba")
	refreshSecretKey = []byte("clave-refresh-de-prueba")
	os.Exit(m.Run())
}

func TestGenerateTokenPair(t *testing.T) {
	pair, err := GenerateTokenPair(UserInfo{UserId: 7, Role: constants.RoleGuest})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("el par emitido tiene tokens vacíos")
	}
	if pair.SessionID == "" {
		t.Fatal("el par emitido no tiene session id")
	}

	accessClaims, err := ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if accessClaims.UserInfo.UserId != 7 || accessClaims.UserInfo.Role != constants.RoleGuest {
		t.Errorf("claims del access token: %+v", accessClaims.UserInfo)
	}
	if accessClaims.SessionID != pair.SessionID {
		t.Errorf("SessionID del access = %q, esperaba %q", accessClaims.SessionID, pair.SessionID)
	}

	refreshClaims, err := ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if refreshClaims.Id != pair.SessionID {
		t.Errorf("JTI del refresh = %q, esperaba %q", refreshClaims.Id, pair.SessionID)
	}
}

func TestSessionIDsUnicosPorEmision(t *testing.T) {
	first, err := GenerateTokenPair(UserInfo{UserId: 1})
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateTokenPair(UserInfo{UserId: 1})
	if err != nil {
		t.Fatal(err)
	}
	if first.SessionID == second.SessionID {
		t.Error("dos emisiones comparten session id")
	}
}

func TestParseAccessTokenExpirado(t *testing.T) {
	claims := &Claims{
		UserInfo:  UserInfo{UserId: 3, Role: constants.RoleEmployee},
		SessionID: "sesion-vieja",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseAccessToken(expired)
	if !apperrors.HasCode(err, apperrors.ErrCodeTokenExpired) {
		t.Fatalf("esperaba TOKEN_EXPIRADO, recibí %v", err)
	}
	// los claims se devuelven igual: el logout revoca la sesión con ellos
	if parsed == nil || parsed.SessionID != "sesion-vieja" {
		t.Errorf("claims de token expirado no disponibles: %+v", parsed)
	}
}

func TestParseAccessTokenRechazaFirmaAjena(t *testing.T) {
	claims := &Claims{
		UserInfo: UserInfo{UserId: 3},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("otra-clave"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseAccessToken(forged); !apperrors.HasCode(err, apperrors.ErrCodeInvalidToken) {
		t.Errorf("esperaba INVALID_TOKEN, recibí %v", err)
	}
}

func TestAccessTokenNoValidaComoRefresh(t *testing.T) {
	pair, err := GenerateTokenPair(UserInfo{UserId: 5})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseRefreshToken(pair.AccessToken); err == nil {
		t.Error("un access token no debería validar contra la clave de refresh")
	}
}
