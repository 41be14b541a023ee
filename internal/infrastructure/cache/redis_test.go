package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_PingsAndSelectsDB(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	c, err := OpenRedis(s.Addr(), 3)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 3 {
		t.Fatalf("client DB = %d, want 3", got)
	}

	// the idempotency middleware lives and dies on SetNX against this
	// client, so exercise a write/read pair rather than a bare ping
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ok, err := c.SetNX(ctx, "idemp:probe", "1", time.Minute).Result()
	if err != nil || !ok {
		t.Fatalf("SetNX: ok=%v err=%v", ok, err)
	}
	v, err := c.Get(ctx, "idemp:probe").Result()
	if err != nil || v != "1" {
		t.Fatalf("Get: v=%q err=%v", v, err)
	}
}

func TestOpenRedis_UnreachableAddr(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}
