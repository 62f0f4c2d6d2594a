package node

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ShutdownTimeout bounds each ShutdownHandler.
var ShutdownTimeout = 30 * time.Second

type ShutdownHandler struct {
	Component string
	StopFunc  StopFunc
}

// MonitorShutdown waits for SIGTERM, SIGINT or the trigger channel, then runs
// the handlers in the order given. The RPC server goes first so that no call
// reaches a node that is already stopping. A failing handler is logged and
// the rest still run.
//
// The returned channel is closed once every handler has returned.
func MonitorShutdown(triggerCh <-chan struct{}, handlers ...ShutdownHandler) <-chan struct{} {
	sigCh := make(chan os.Signal, 2)
	out := make(chan struct{})

	go func() {
		select {
		case sig := <-sigCh:
			log.Warnw("received shutdown", "signal", sig)
		case <-triggerCh:
			log.Warn("received shutdown")
		}

		log.Warn("Shutting down...")

		for _, h := range handlers {
			ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
			err := h.StopFunc(ctx)
			cancel()
			if err != nil {
				log.Errorw("shutting down component failed", "component", h.Component, "error", err)
				continue
			}
			log.Infow("component shut down", "component", h.Component)
		}

		log.Warn("Graceful shutdown successful")

		_ = log.Sync() //nolint:errcheck
		close(out)
	}()

	signal.Reset(syscall.SIGTERM, syscall.SIGINT)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	return out
}
