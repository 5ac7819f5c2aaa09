package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

// Política de rotación: los refresh tokens son de un solo uso. Un refresh
// exitoso borra el JTI viejo y emite un par nuevo. Para tolerar refrescos
// concurrentes del mismo token (varios requests corriendo tras el mismo
// vencimiento de access token), el par ya emitido queda disponible en una
// clave de gracia durante RefreshGraceWindow: dentro de la ventana el JTI
// reutilizado recibe exactamente el mismo par; fuera de ella, SESION_INVALIDA.
const RefreshGraceWindow = 30 * time.Second

const (
	refreshKeyPrefix = "refresh:"
	graceKeyPrefix   = "refresh:grace:"
)

// StoreRefreshSession registra el JTI de un refresh token recién emitido
func StoreRefreshSession(ctx context.Context, rdb RedisStore, sessionID string, userID uint, ttl time.Duration) error {
	return rdb.Set(ctx, refreshKeyPrefix+sessionID, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

// ConsumeRefreshSession consume (borra atómicamente) el JTI. Devuelve el
// userID dueño de la sesión, o SESION_INVALIDA si el JTI no existe.
func ConsumeRefreshSession(ctx context.Context, rdb RedisStore, sessionID string) (uint, error) {
	val, err := rdb.GetDel(ctx, refreshKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInvalidSession, "Sesión desconocida o ya utilizada", nil)
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInvalidSession, "Sesión corrupta", err)
	}
	return uint(userID), nil
}

// SaveGracePair guarda el par emitido bajo el JTI consumido, para que un
// refresh concurrente del mismo token reciba el mismo resultado
func SaveGracePair(ctx context.Context, rdb RedisStore, oldSessionID string, pair TokenPair) error {
	b, err := json.Marshal(pair)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, graceKeyPrefix+oldSessionID, b, RefreshGraceWindow).Err()
}

// GetGracePair busca el par emitido por un refresh anterior dentro de la ventana
func GetGracePair(ctx context.Context, rdb RedisStore, oldSessionID string) (TokenPair, bool, error) {
	val, err := rdb.Get(ctx, graceKeyPrefix+oldSessionID).Result()
	if err == redis.Nil {
		return TokenPair{}, false, nil
	}
	if err != nil {
		return TokenPair{}, false, err
	}
	var pair TokenPair
	if err := json.Unmarshal([]byte(val), &pair); err != nil {
		return TokenPair{}, false, err
	}
	return pair, true, nil
}

// RevokeRefreshSession invalida la sesión. Es idempotente: borrar una
// sesión inexistente no es un error.
func RevokeRefreshSession(ctx context.Context, rdb RedisStore, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return rdb.Del(ctx, refreshKeyPrefix+sessionID).Err()
}
