package main

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestReleaser_ReleasesNewestFirst(t *testing.T) {
	var order []string
	r := &releaser{log: zerolog.Nop()}
	r.add("mongo", func(context.Context) error { order = append(order, "mongo"); return nil })
	r.add("redis", func(context.Context) error { order = append(order, "redis"); return errors.New("already closed") })
	r.add("cache", func(context.Context) error { order = append(order, "cache"); return nil })

	r.releaseAll(context.Background())

	want := []string{"cache", "redis", "mongo"}
	if len(order) != len(want) {
		t.Fatalf("released %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("released %v, want %v", order, want)
		}
	}
}

func TestReleaser_ReleaseAllIsIdempotent(t *testing.T) {
	calls := 0
	r := &releaser{log: zerolog.Nop()}
	r.add("mongo", func(context.Context) error { calls++; return nil })

	r.releaseAll(context.Background())
	r.releaseAll(context.Background())

	if calls != 1 {
		t.Fatalf("expected one release, got %d", calls)
	}
}

func TestReleaser_EmptyIsNoop(t *testing.T) {
	r := &releaser{log: zerolog.Nop()}
	r.releaseAll(context.Background())
}

func TestReleaser_HandOffTransfersOwnership(t *testing.T) {
	calls := 0
	r := &releaser{log: zerolog.Nop()}
	r.add("mongo", func(context.Context) error { calls++; return nil })

	handed := r.handOff()
	r.releaseAll(context.Background())

	if calls != 0 {
		t.Fatalf("released %d times after hand-off", calls)
	}
	if len(handed) != 1 || handed[0].name != "mongo" {
		t.Fatalf("unexpected hand-off: %+v", handed)
	}
}
