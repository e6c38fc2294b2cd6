package shutdown

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, ctx context.Context) {
	t.Helper()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled")
	}
}

func TestShutdown_RunsHooksInOrder(t *testing.T) {
	t.Parallel()

	ctx, h := Listen(t.Context(), syscall.SIGUSR2)

	var order []int

	h.BeforeShutdown(func() { order = append(order, 1) })
	h.BeforeShutdown(func() {
		assert.NoError(t, ctx.Err(), "context must be alive while hooks run")

		order = append(order, 2)
	})

	h.Shutdown()
	waitDone(t, ctx)

	assert.Equal(t, []int{1, 2}, order)
}

func TestShutdown_Once(t *testing.T) {
	t.Parallel()

	ctx, h := Listen(t.Context(), syscall.SIGUSR2)

	var calls atomic.Int32

	h.BeforeShutdown(func() { calls.Add(1) })

	h.Shutdown()
	h.Shutdown()
	h.Stop()
	waitDone(t, ctx)

	assert.Equal(t, int32(1), calls.Load())
}

func TestStop_SkipsHooks(t *testing.T) {
	t.Parallel()

	ctx, h := Listen(t.Context(), syscall.SIGUSR2)

	var called atomic.Bool

	h.BeforeShutdown(func() { called.Store(true) })

	h.Stop()
	waitDone(t, ctx)

	h.Shutdown()
	assert.False(t, called.Load())
}

func TestListen_Signal(t *testing.T) { //nolint:paralleltest
	ctx, h := Listen(context.Background(), syscall.SIGUSR1)
	defer h.Stop()

	var called atomic.Bool

	h.BeforeShutdown(func() { called.Store(true) })

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(syscall.SIGUSR1))

	waitDone(t, ctx)
	assert.True(t, called.Load())
}

func TestListen_ParentCanceled(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(t.Context())

	ctx, h := Listen(parent, syscall.SIGUSR2)

	var called atomic.Bool

	h.BeforeShutdown(func() { called.Store(true) })

	cancel()
	waitDone(t, ctx)

	assert.Eventually(t, called.Load, time.Second, 10*time.Millisecond)
}
