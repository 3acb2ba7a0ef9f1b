package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_RoundTrip(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	client, err := OpenRedis(s.Addr(), 3)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if got := client.Options().DB; got != 3 {
		t.Fatalf("client DB = %d, want 3", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := client.Set(ctx, "probe", "1", 0).Err(); err != nil {
		t.Fatalf("SET: %v", err)
	}
	got, err := client.Get(ctx, "probe").Result()
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if got != "1" {
		t.Fatalf("GET = %q, want %q", got, "1")
	}
}

func TestOpenRedis_Unreachable(t *testing.T) {
	if _, err := OpenRedis("no-such-host:6379", 0); err == nil {
		t.Fatal("expected error for unreachable address")
	}
}
