package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisInvalidatorDeletesKey(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	if err := srv.Set("resume:user-1", "rendered"); err != nil {
		t.Fatalf("seed key: %v", err)
	}

	inv := NewRedisInvalidatorFromClient(client)
	if err := inv.Invalidate(context.Background(), "resume:user-1"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	if srv.Exists("resume:user-1") {
		t.Fatalf("expected key to be deleted")
	}
}

func TestRedisInvalidatorMissingKeyIsNotAnError(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	inv := NewRedisInvalidatorFromClient(client)
	if err := inv.Invalidate(context.Background(), "resume:absent"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
}
