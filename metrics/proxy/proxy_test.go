package proxy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opencensus.io/stats/view"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/metrics"
)

type namedNode struct {
	api.FullNodeStub
}

func (namedNode) StateNetworkName(context.Context) (string, error) {
	return "escrownet", nil
}

func TestMetricedAPIRecordsEndpoint(t *testing.T) {
	require.NoError(t, view.Register(metrics.APIRequestDurationView))
	defer view.Unregister(metrics.APIRequestDurationView)

	a := MetricedFullAPI(&namedNode{})

	name, err := a.StateNetworkName(context.Background())
	require.NoError(t, err)
	require.Equal(t, "escrownet", name)

	// methods the node does not implement still report through the proxy
	_, err = a.ChainHead(context.Background())
	require.ErrorIs(t, err, api.ErrNotSupported)

	rows, err := view.RetrieveData(metrics.APIRequestDurationView.Name)
	require.NoError(t, err)

	endpoints := map[string]bool{}
	for _, row := range rows {
		for _, tg := range row.Tags {
			if tg.Key == metrics.Endpoint {
				endpoints[tg.Value] = true
			}
		}
	}
	require.True(t, endpoints["StateNetworkName"])
	require.True(t, endpoints["ChainHead"])

}
