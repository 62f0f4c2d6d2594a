package node

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestMonitorShutdownOrder(t *testing.T) {
	trigger := make(chan struct{})

	var (
		lk    sync.Mutex
		order []string
	)
	handler := func(name string, err error) ShutdownHandler {
		return ShutdownHandler{
			Component: name,
			StopFunc: func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				require.True(t, hasDeadline)

				lk.Lock()
				defer lk.Unlock()
				order = append(order, name)
				return err
			},
		}
	}

	finishCh := MonitorShutdown(trigger,
		handler("rpc server", nil),
		handler("escrow manager", xerrors.New("busy")),
		handler("node", nil),
	)

	select {
	case <-finishCh:
		t.Fatal("shutdown ran before being triggered")
	case <-time.After(10 * time.Millisecond):
	}

	close(trigger)
	<-finishCh

	require.Equal(t, []string{"rpc server", "escrow manager", "node"}, order)
}
