package metrics

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
)

func TestTimerRecords(t *testing.T) {
	require.NoError(t, view.Register(VMFlushDurationView))
	defer view.Unregister(VMFlushDurationView)

	stop := Timer(context.Background(), VMFlushDuration)
	d := stop()
	require.GreaterOrEqual(t, d, time.Duration(0))

	rows, err := view.RetrieveData(VMFlushDurationView.Name)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.EqualValues(t, 1, rows[0].Data.(*view.DistributionData).Count)
}

func TestExporterServesViews(t *testing.T) {
	require.NoError(t, view.Register(ChainNodeHeightView))
	defer view.Unregister(ChainNodeHeightView)

	ctx := AddNetworkTag(context.Background(), "escrownet")
	stats.Record(ctx, ChainNodeHeight.M(7))

	h := Exporter()
	require.Same(t, h, Exporter())

	// recorded values reach the view asynchronously
	require.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/metrics", nil))
		return rec.Code == 200 && strings.Contains(rec.Body.String(), "lotus_escrow_chain_node_height")
	}, 5*time.Second, 20*time.Millisecond)
}
