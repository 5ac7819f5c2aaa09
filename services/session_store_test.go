package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

// fakeRedis implementa RedisStore en memoria, con reloj propio para poder
// avanzar el tiempo y vencer claves sin esperar de verdad.
type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	exp  map[string]time.Time
	now  time.Time
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		data: make(map[string]string),
		exp:  make(map[string]time.Time),
		now:  time.Now(),
	}
}

func (f *fakeRedis) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fakeRedis) alive(key string) bool {
	v, ok := f.exp[key]
	if ok && !f.now.Before(v) {
		delete(f.data, key)
		delete(f.exp, key)
		return false
	}
	_, ok = f.data[key]
	return ok
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.alive(key) {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(f.data[key], nil)
}

func (f *fakeRedis) GetDel(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.alive(key) {
		return redis.NewStringResult("", redis.Nil)
	}
	val := f.data[key]
	delete(f.data, key)
	delete(f.exp, key)
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case string:
		f.data[key] = v
	case []byte:
		f.data[key] = string(v)
	default:
		return redis.NewStatusResult("", redis.Nil)
	}
	if expiration > 0 {
		f.exp[key] = f.now.Add(expiration)
	} else {
		delete(f.exp, key)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			delete(f.exp, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestConsumeRefreshSessionEsDeUnSoloUso(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()

	if err := StoreRefreshSession(ctx, rdb, "jti-1", 42, time.Hour); err != nil {
		t.Fatalf("StoreRefreshSession: %v", err)
	}

	userID, err := ConsumeRefreshSession(ctx, rdb, "jti-1")
	if err != nil {
		t.Fatalf("primer consumo: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, esperaba 42", userID)
	}

	// el segundo consumo del mismo JTI tiene que fallar
	if _, err := ConsumeRefreshSession(ctx, rdb, "jti-1"); !apperrors.HasCode(err, apperrors.ErrCodeInvalidSession) {
		t.Errorf("segundo consumo: esperaba SESION_INVALIDA, recibí %v", err)
	}
}

func TestConsumeRefreshSessionDesconocida(t *testing.T) {
	if _, err := ConsumeRefreshSession(context.Background(), newFakeRedis(), "jti-inexistente"); !apperrors.HasCode(err, apperrors.ErrCodeInvalidSession) {
		t.Errorf("JTI desconocido: esperaba SESION_INVALIDA, recibí %v", err)
	}
}

func TestConsumeRefreshSessionVencida(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()

	if err := StoreRefreshSession(ctx, rdb, "jti-2", 7, time.Hour); err != nil {
		t.Fatal(err)
	}
	rdb.advance(time.Hour + time.Second)

	if _, err := ConsumeRefreshSession(ctx, rdb, "jti-2"); !apperrors.HasCode(err, apperrors.ErrCodeInvalidSession) {
		t.Errorf("sesión vencida: esperaba SESION_INVALIDA, recibí %v", err)
	}
}

func TestGracePairDentroDeLaVentana(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()

	issued := TokenPair{AccessToken: "acc-nuevo", RefreshToken: "ref-nuevo", SessionID: "jti-nuevo"}
	if err := SaveGracePair(ctx, rdb, "jti-consumido", issued); err != nil {
		t.Fatalf("SaveGracePair: %v", err)
	}

	// un refresh concurrente que perdió la carrera recibe el mismo par
	pair, ok, err := GetGracePair(ctx, rdb, "jti-consumido")
	if err != nil {
		t.Fatalf("GetGracePair: %v", err)
	}
	if !ok {
		t.Fatal("par de gracia no encontrado dentro de la ventana")
	}
	if pair != issued {
		t.Errorf("par de gracia = %+v, esperaba %+v", pair, issued)
	}
}

func TestGracePairFueraDeLaVentana(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()

	if err := SaveGracePair(ctx, rdb, "jti-consumido", TokenPair{SessionID: "x"}); err != nil {
		t.Fatal(err)
	}
	rdb.advance(RefreshGraceWindow + time.Second)

	_, ok, err := GetGracePair(ctx, rdb, "jti-consumido")
	if err != nil {
		t.Fatalf("GetGracePair: %v", err)
	}
	if ok {
		t.Error("el par de gracia sigue disponible pasada la ventana")
	}
}

func TestRevokeRefreshSessionIdempotente(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()

	if err := StoreRefreshSession(ctx, rdb, "jti-3", 9, time.Hour); err != nil {
		t.Fatal(err)
	}

	if err := RevokeRefreshSession(ctx, rdb, "jti-3"); err != nil {
		t.Fatalf("primera revocación: %v", err)
	}

	// una sesión revocada nunca vuelve a refrescar
	if _, err := ConsumeRefreshSession(ctx, rdb, "jti-3"); !apperrors.HasCode(err, apperrors.ErrCodeInvalidSession) {
		t.Errorf("refresh con sesión revocada: esperaba SESION_INVALIDA, recibí %v", err)
	}

	// repetir el logout no es un error
	if err := RevokeRefreshSession(ctx, rdb, "jti-3"); err != nil {
		t.Errorf("segunda revocación: %v", err)
	}
	if err := RevokeRefreshSession(ctx, rdb, ""); err != nil {
		t.Errorf("revocación sin sesión: %v", err)
	}
}
