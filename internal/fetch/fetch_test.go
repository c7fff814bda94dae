package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Value string
}

func TestRefetchSuccess(t *testing.T) {
	q := Query[payload]{
		Name: "test.success",
		Run: func(ctx context.Context) (payload, error) {
			return payload{Value: "live"}, nil
		},
	}
	c := New(q, Options{})

	require.Nil(t, c.State().Data)
	require.False(t, c.State().Loading)

	c.Refetch(context.Background())

	st := c.State()
	require.False(t, st.Loading)
	require.NoError(t, st.Err)
	require.NotNil(t, st.Data)
	require.Equal(t, "live", st.Data.Value)
}

func TestRefetchErrorWithPlaceholder(t *testing.T) {
	fallback := payload{Value: "placeholder"}
	boom := errors.New("upstream down")
	q := Query[payload]{
		Name:        "test.fallback",
		Placeholder: &fallback,
		Run: func(ctx context.Context) (payload, error) {
			return payload{}, boom
		},
	}
	c := New(q, Options{UseMock: true})

	c.Refetch(context.Background())

	// Error and fallback data coexist.
	st := c.State()
	require.ErrorIs(t, st.Err, boom)
	require.NotNil(t, st.Data)
	require.Equal(t, "placeholder", st.Data.Value)
}

func TestRefetchErrorWithoutMock(t *testing.T) {
	fallback := payload{Value: "placeholder"}
	q := Query[payload]{
		Name:        "test.nomock",
		Placeholder: &fallback,
		Run: func(ctx context.Context) (payload, error) {
			return payload{}, errors.New("upstream down")
		},
	}
	c := New(q, Options{UseMock: false})

	c.Refetch(context.Background())

	st := c.State()
	require.Error(t, st.Err)
	require.Nil(t, st.Data)
}

func TestDevShortCircuitSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	fallback := payload{Value: "mock"}
	q := Query[payload]{
		Name:        "test.dev",
		Placeholder: &fallback,
		Run: func(ctx context.Context) (payload, error) {
			calls.Add(1)
			return payload{Value: "live"}, nil
		},
	}
	c := New(q, Options{UseMock: true, DevMode: true})

	c.Refetch(context.Background())
	c.Refetch(context.Background())

	require.Equal(t, int32(0), calls.Load())
	st := c.State()
	require.NoError(t, st.Err)
	require.Equal(t, "mock", st.Data.Value)
}

func TestDevModeAloneDoesNotShortCircuit(t *testing.T) {
	var calls atomic.Int32
	fallback := payload{Value: "mock"}
	q := Query[payload]{
		Name:        "test.devonly",
		Placeholder: &fallback,
		Run: func(ctx context.Context) (payload, error) {
			calls.Add(1)
			return payload{Value: "live"}, nil
		},
	}
	c := New(q, Options{UseMock: false, DevMode: true})

	c.Refetch(context.Background())

	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, "live", c.State().Data.Value)
}

func TestReloadComparesKeys(t *testing.T) {
	var calls atomic.Int32
	q := Query[payload]{
		Name: "test.reload",
		Run: func(ctx context.Context) (payload, error) {
			calls.Add(1)
			return payload{Value: "live"}, nil
		},
	}
	c := New(q, Options{})
	ctx := context.Background()

	// First call always runs, even with no keys.
	c.Start(ctx)
	require.Equal(t, int32(1), calls.Load())

	// Unchanged keys are a no-op.
	c.Reload(ctx)
	require.Equal(t, int32(1), calls.Load())

	c.Reload(ctx, "team", "6956")
	require.Equal(t, int32(2), calls.Load())

	c.Reload(ctx, "team", "6956")
	require.Equal(t, int32(2), calls.Load())

	c.Reload(ctx, "team", "5119")
	require.Equal(t, int32(3), calls.Load())
}

func TestRefetchAlwaysRuns(t *testing.T) {
	var calls atomic.Int32
	q := Query[payload]{
		Name: "test.refetch",
		Run: func(ctx context.Context) (payload, error) {
			calls.Add(1)
			return payload{}, nil
		},
	}
	c := New(q, Options{})
	ctx := context.Background()

	c.Reload(ctx, "k")
	c.Refetch(ctx)
	c.Refetch(ctx)
	require.Equal(t, int32(3), calls.Load())
}

func TestStaleResultNeverOverwritesNewer(t *testing.T) {
	release := make(chan struct{})
	running := make(chan struct{})
	var dispatched atomic.Int32

	q := Query[payload]{
		Name: "test.race",
		Run: func(ctx context.Context) (payload, error) {
			if dispatched.Add(1) == 1 {
				close(running)
				<-release // first dispatch resolves last
				return payload{Value: "stale"}, nil
			}
			return payload{Value: "fresh"}, nil
		},
	}
	c := New(q, Options{})
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Refetch(ctx)
	}()
	<-running

	// Second dispatch starts and resolves while the first one hangs.
	c.Refetch(ctx)
	require.Equal(t, "fresh", c.State().Data.Value)

	// Now the slow first dispatch resolves; its commit must be discarded.
	close(release)
	<-done

	st := c.State()
	require.False(t, st.Loading)
	require.Equal(t, "fresh", st.Data.Value)
}

func TestLoadingVisibleDuringFetch(t *testing.T) {
	release := make(chan struct{})
	running := make(chan struct{})
	q := Query[payload]{
		Name: "test.loading",
		Run: func(ctx context.Context) (payload, error) {
			close(running)
			<-release
			return payload{Value: "live"}, nil
		},
	}
	c := New(q, Options{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Refetch(context.Background())
	}()
	<-running

	require.True(t, c.State().Loading)
	close(release)
	<-done
	require.False(t, c.State().Loading)
}

func TestSuccessClearsPreviousError(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	q := Query[payload]{
		Name: "test.recover",
		Run: func(ctx context.Context) (payload, error) {
			if fail.Load() {
				return payload{}, errors.New("transient")
			}
			return payload{Value: "recovered"}, nil
		},
	}
	c := New(q, Options{})
	ctx := context.Background()

	c.Refetch(ctx)
	require.Error(t, c.State().Err)

	fail.Store(false)
	c.Refetch(ctx)

	st := c.State()
	require.NoError(t, st.Err)
	require.Equal(t, "recovered", st.Data.Value)
}
