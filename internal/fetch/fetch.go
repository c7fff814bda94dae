// Package fetch provides the generic fetch-state controller that wraps a
// normalization operation: one reusable state machine tracking
// loading/error/data, with optional placeholder substitution and a manual
// refetch. It is the server-side counterpart of the dashboard's data hook.
package fetch

import (
	"context"
	"slices"
	"sync"
)

// Func is a normalization operation with its arguments already bound.
type Func[T any] func(ctx context.Context) (T, error)

// Query couples an operation with its attached placeholder payload. A nil
// Placeholder means the operation has nothing to substitute.
type Query[T any] struct {
	Name        string
	Run         Func[T]
	Placeholder *T
}

// Options selects the controller's placeholder behavior. UseMock allows
// substitution at all; the development short-circuit additionally requires
// DevMode.
type Options struct {
	UseMock bool
	DevMode bool
}

// State is a snapshot of the controller. All combinations are meaningful to
// callers: nil Data with no error means nothing has been fetched yet, and a
// non-nil Err can coexist with non-nil placeholder Data.
type State[T any] struct {
	Data    *T
	Loading bool
	Err     error
}

// Controller drives one query's fetch lifecycle: idle → loading →
// {success, error}, re-entering loading on dependency change or manual
// refetch. There is no terminal state.
//
// Every dispatch takes a generation token; only the latest generation may
// commit, so a slow stale response can never overwrite a newer one.
type Controller[T any] struct {
	mu      sync.Mutex
	query   Query[T]
	opts    Options
	keys    []string
	started bool
	gen     uint64
	state   State[T]
}

// New creates a controller for query. Nothing is fetched until Reload or
// Refetch is called.
func New[T any](query Query[T], opts Options) *Controller[T] {
	return &Controller[T]{query: query, opts: opts}
}

// State returns the current snapshot.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start arms the controller and performs the initial fetch. It is Reload
// under its first-invocation name: calling it again with the same keys is
// a no-op.
func (c *Controller[T]) Start(ctx context.Context, keys ...string) {
	c.Reload(ctx, keys...)
}

// Reload re-runs the query when the dependency keys differ from the last
// invocation (shallow comparison). The first call always runs. Unchanged
// keys are a no-op.
func (c *Controller[T]) Reload(ctx context.Context, keys ...string) {
	c.mu.Lock()
	if c.started && slices.Equal(c.keys, keys) {
		c.mu.Unlock()
		return
	}
	c.keys = slices.Clone(keys)
	c.started = true
	c.mu.Unlock()

	c.Refetch(ctx)
}

// Refetch re-runs the query with its captured arguments regardless of the
// dependency keys. The call blocks until the result is committed or
// discarded; run it on its own goroutine to observe the loading state.
func (c *Controller[T]) Refetch(ctx context.Context) {
	gen := c.begin()

	// Development short-circuit: skip the network entirely.
	if c.opts.UseMock && c.opts.DevMode && c.query.Placeholder != nil {
		c.commit(gen, c.query.Placeholder, nil)
		return
	}

	data, err := c.query.Run(ctx)
	if err != nil {
		c.commit(gen, nil, err)
		return
	}
	c.commit(gen, &data, nil)
}

// begin marks the controller loading and hands out a fresh generation
// token. An older in-flight call keeps running but can no longer commit.
func (c *Controller[T]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state.Loading = true
	return c.gen
}

// commit stores a resolution, unless a newer dispatch has superseded it —
// stale results are discarded silently.
func (c *Controller[T]) commit(gen uint64, data *T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.state.Loading = false
	if err == nil {
		c.state.Data = data
		c.state.Err = nil
		return
	}
	c.state.Err = err
	// Error and fallback data coexist deliberately: callers must check
	// Err even when Data is non-nil.
	if c.opts.UseMock && c.query.Placeholder != nil {
		c.state.Data = c.query.Placeholder
	}
}
