// Package singleton provides a lazily constructed, concurrency-safe value
// whose construction may block and fail.
package singleton

import (
	"context"
	"errors"
	"io"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrDisposed is returned by Get once the singleton has been closed.
var ErrDisposed = errors.New("singleton has been disposed")

// errAbandoned marks a flight whose initiator's context ended before the factory succeeded.
var errAbandoned = errors.New("construction abandoned by its caller")

const flightKey = "instance"

// Factory builds the value held by an AsyncSingleton.
type Factory[T any] func(ctx context.Context) (T, error)

// AsyncSingleton holds a single value built on first use.
//
// Concurrent callers of Get during the first construction share one factory
// invocation and its outcome. A failed construction is not remembered, so the
// next Get tries again. After Close every Get fails with ErrDisposed.
type AsyncSingleton[T any] struct {
	factory Factory[T]
	group   singleflight.Group

	mu       sync.RWMutex
	value    T
	ready    bool
	disposed bool
}

// New returns an AsyncSingleton that builds its value with factory.
func New[T any](factory Factory[T]) *AsyncSingleton[T] {
	return &AsyncSingleton[T]{factory: factory}
}

// Get returns the held value, building it if needed.
//
// The factory runs with the context of the caller that started the
// construction. If that caller's context ends before the factory succeeds,
// callers still waiting start a fresh construction with their own context. A
// waiter whose own context ends first returns ctx.Err() and leaves the
// construction running.
func (s *AsyncSingleton[T]) Get(ctx context.Context) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if v, ok, err := s.cached(); ok || err != nil {
			return v, err
		}

		ch := s.group.DoChan(flightKey, func() (interface{}, error) {
			// Another flight may have finished between the fast path and here.
			if v, ok, err := s.cached(); ok || err != nil {
				return v, err
			}

			v, err := s.factory(ctx)
			if err != nil {
				if ctx.Err() != nil {
					// Later callers must not join a flight their context did not abort.
					s.group.Forget(flightKey)
					return nil, errAbandoned
				}
				return nil, err
			}

			s.mu.Lock()
			defer s.mu.Unlock()
			if s.disposed {
				release(v)
				return nil, ErrDisposed
			}
			s.value = v
			s.ready = true
			return v, nil
		})

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case res := <-ch:
			if errors.Is(res.Err, errAbandoned) {
				continue
			}
			if res.Err != nil {
				return zero, res.Err
			}
			v, _ := res.Val.(T)
			return v, nil
		}
	}
}

func (s *AsyncSingleton[T]) cached() (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if s.disposed {
		return zero, false, ErrDisposed
	}
	if s.ready {
		return s.value, true, nil
	}
	return zero, false, nil
}

// Close releases the held value and disposes the singleton. Values
// implementing io.Closer are closed. Calling Close more than once is a no-op.
func (s *AsyncSingleton[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return nil
	}
	s.disposed = true

	if !s.ready {
		return nil
	}
	v := s.value
	var zero T
	s.value = zero
	s.ready = false
	return release(v)
}

func release(v any) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
