// Package pageview implements the load lifecycle of a dynamic page section:
// one fetch per mount, a tri-state status, and no updates after disposal.
package pageview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrAlreadyMounted is returned when Mount is called twice on one Load.
	ErrAlreadyMounted = errors.New("pageview: already mounted")
	// ErrLoadTimeout is the failure recorded when the fetch outlives the load timeout.
	ErrLoadTimeout = errors.New("pageview: load timed out")
)

// Status is the load state of one mount.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether no further transition can happen for this mount.
func (s Status) Terminal() bool {
	return s == StatusReady || s == StatusFailed
}

// Snapshot is a consistent read of a Load. Err is for operator logs only and
// must never be rendered.
type Snapshot[T any] struct {
	Status   Status
	Items    []T
	Err      error
	Disposed bool
}

// Empty reports the Ready-with-no-items state.
func (s Snapshot[T]) Empty() bool {
	return s.Status == StatusReady && len(s.Items) == 0
}

// FetchFunc performs the single fetch of a mount.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Option configures a Load.
type Option func(*options)

type options struct {
	timeout  time.Duration
	onChange func(from, to Status)
}

// WithTimeout bounds the fetch. Zero leaves it unbounded.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// OnStateChange is called, outside the lock, for every applied transition.
func OnStateChange(fn func(from, to Status)) Option {
	return func(o *options) { o.onChange = fn }
}

// Load is the state machine of one Page View mount.
type Load[T any] struct {
	opts options

	mu       sync.Mutex
	status   Status
	items    []T
	err      error
	disposed bool
	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once
}

// New returns an Idle load.
func New[T any](opts ...Option) *Load[T] {
	l := &Load[T]{done: make(chan struct{})}
	for _, opt := range opts {
		opt(&l.opts)
	}
	return l
}

// Mount moves the load to Loading and starts fetch. The fetch runs under a
// child of ctx; cancelling ctx disposes the load.
func (l *Load[T]) Mount(ctx context.Context, fetch FetchFunc[T]) error {
	l.mu.Lock()
	if l.status != StatusIdle || l.disposed {
		l.mu.Unlock()
		return ErrAlreadyMounted
	}
	var child context.Context
	var cancel context.CancelFunc
	if l.opts.timeout > 0 {
		child, cancel = context.WithTimeout(ctx, l.opts.timeout)
	} else {
		child, cancel = context.WithCancel(ctx)
	}
	l.cancel = cancel
	l.status = StatusLoading
	l.mu.Unlock()
	l.notify(StatusIdle, StatusLoading)

	type result struct {
		items []T
		err   error
	}

	go func() {
		defer cancel()
		results := make(chan result, 1)
		go func() {
			items, err := fetch(child)
			results <- result{items: items, err: err}
		}()

		select {
		case r := <-results:
			if r.err != nil && child.Err() != nil {
				l.interrupted(ctx, child)
				return
			}
			l.settle(r.items, r.err)
		case <-child.Done():
			l.interrupted(ctx, child)
		}
	}()
	return nil
}

// interrupted handles a fetch whose context ended before it produced a result.
func (l *Load[T]) interrupted(parent, child context.Context) {
	if parent.Err() != nil {
		// The view went away before the fetch resolved.
		l.Dispose()
		return
	}
	l.settle(nil, fmt.Errorf("%w after %s: %w", ErrLoadTimeout, l.opts.timeout, child.Err()))
}

func (l *Load[T]) settle(items []T, err error) {
	l.mu.Lock()
	if l.disposed || l.status != StatusLoading {
		l.mu.Unlock()
		return
	}
	to := StatusReady
	if err != nil {
		to = StatusFailed
		l.err = err
	} else {
		l.items = items
	}
	l.status = to
	l.mu.Unlock()

	l.notify(StatusLoading, to)
	l.doneOnce.Do(func() { close(l.done) })
}

// Dispose unmounts the view. A fetch still in flight is cancelled and its
// result is dropped. Dispose is idempotent.
func (l *Load[T]) Dispose() {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return
	}
	l.disposed = true
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.doneOnce.Do(func() { close(l.done) })
}

// Done is closed once the load is terminal or disposed.
func (l *Load[T]) Done() <-chan struct{} {
	return l.done
}

// Snapshot returns the current state.
func (l *Load[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot[T]{Status: l.status, Items: l.items, Err: l.err, Disposed: l.disposed}
}

// Wait blocks until the load is terminal, disposed, or ctx ends, and returns
// the state at that point.
func (l *Load[T]) Wait(ctx context.Context) Snapshot[T] {
	select {
	case <-l.done:
	case <-ctx.Done():
	}
	return l.Snapshot()
}

func (l *Load[T]) notify(from, to Status) {
	if l.opts.onChange != nil {
		l.opts.onChange(from, to)
	}
}
