package main

import (
	"context"

	"github.com/rs/zerolog"
)

type release struct {
	name string
	fn   func(context.Context) error
}

// releaser closes what run acquired when startup fails. Resources are
// released newest first; a failing close is logged and the rest still run.
type releaser struct {
	log   zerolog.Logger
	items []release
}

func (r *releaser) add(name string, fn func(context.Context) error) {
	r.items = append(r.items, release{name: name, fn: fn})
}

func (r *releaser) releaseAll(ctx context.Context) {
	for i := len(r.items) - 1; i >= 0; i-- {
		it := r.items[i]
		if err := it.fn(ctx); err != nil {
			r.log.Warn().Err(err).Str("resource", it.name).Msg("release failed")
		}
	}
	r.items = nil
}

// handOff returns the pending releases and forgets them, leaving their
// closing to the new owner.
func (r *releaser) handOff() []release {
	items := r.items
	r.items = nil
	return items
}
