package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// delRecorder implementa services.RedisStore y anota las claves borradas.
type delRecorder struct {
	deleted []string
}

func (d *delRecorder) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (d *delRecorder) GetDel(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (d *delRecorder) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (d *delRecorder) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	d.deleted = append(d.deleted, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

// Una transición ejecutada por un empleado o admin tiene que invalidar el
// listado cacheado del dueño de la reserva, no el de quien opera.
func TestInvalidateCachesBorraElListadoDelDueno(t *testing.T) {
	rec := &delRecorder{}
	rc := ReservationController{Redis: rec}

	rc.invalidateCaches(42)

	want := map[string]bool{
		"reservas:all":     false,
		"reservas:user:42": false,
		"habitaciones:all": false,
	}
	for _, key := range rec.deleted {
		if _, ok := want[key]; !ok {
			t.Errorf("clave inesperada borrada: %q", key)
			continue
		}
		want[key] = true
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("no se borró la clave %q", key)
		}
	}
}
