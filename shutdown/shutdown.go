// Package shutdown turns SIGINT/SIGTERM into context cancellation for
// command-line entry points.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler owns the signal subscription behind a context returned by Listen.
type Handler struct {
	mut    sync.Mutex
	hooks  []func()
	once   sync.Once
	cancel context.CancelFunc
	sig    chan os.Signal
	done   chan struct{}
}

// Listen returns a context that is canceled when one of signals arrives,
// or SIGINT/SIGTERM when none are given. Hooks registered with
// BeforeShutdown run first, while the context is still alive.
func Listen(parent context.Context, signals ...os.Signal) (context.Context, *Handler) {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	ctx, cancel := context.WithCancel(parent)

	h := &Handler{
		cancel: cancel,
		sig:    make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}

	signal.Notify(h.sig, signals...)

	go func() {
		select {
		case s := <-h.sig:
			slog.Warn("Received " + s.String() + ", shutting down...")
			h.shutdown()
		case <-ctx.Done():
			h.shutdown()
		case <-h.done:
		}
	}()

	return ctx, h
}

// BeforeShutdown registers f to run once shutdown starts. Hooks run in
// registration order.
func (h *Handler) BeforeShutdown(f func()) {
	h.mut.Lock()
	defer h.mut.Unlock()

	h.hooks = append(h.hooks, f)
}

// Shutdown starts the shutdown sequence as if a signal had arrived.
func (h *Handler) Shutdown() {
	h.shutdown()
}

// Stop releases the signal subscription and cancels the context without
// running hooks. It is safe to call after a shutdown.
func (h *Handler) Stop() {
	h.once.Do(func() {
		signal.Stop(h.sig)
		close(h.done)
		h.cancel()
	})
}

func (h *Handler) shutdown() {
	h.once.Do(func() {
		signal.Stop(h.sig)
		close(h.done)

		h.mut.Lock()
		hooks := h.hooks
		h.hooks = nil
		h.mut.Unlock()

		for _, hook := range hooks {
			hook()
		}

		h.cancel()
	})
}
