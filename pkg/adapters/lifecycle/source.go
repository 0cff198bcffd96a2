// Package lifecycle bridges content events into the lifecycle event model.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/chordsense/chordsense/pkg/core"
)

type contentSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that re-emits content change events.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &contentSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *contentSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *contentSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event through String().
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
