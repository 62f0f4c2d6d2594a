package metrics

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"

	rpcmetrics "github.com/filecoin-project/go-jsonrpc/metrics"
)

// Distributions
var defaultMillisecondsDistribution = view.Distribution(
	0.01, 0.05, 0.1, 0.3, 0.6, 0.8, 1, 2, 3, 4, 5, 6, 8, // Very short intervals for fast operations
	10, 20, 30, 40, 50, 60, 70, 80, 90, 100, // 10 ms intervals up to 100 ms
	150, 200, 250, 300, 350, 400, 450, 500, // 50 ms intervals from 100 to 500 ms
	600, 700, 800, 900, 1000, // 100 ms intervals from 500 to 1000 ms
	2000, 3000, 4000, 5000, 10000, 30000, 60000,
)

var bytesDistribution = view.Distribution(0, 64, 256, 1<<10, 4<<10, 16<<10, 64<<10)

// Tags
var (
	// common
	Version, _  = tag.NewKey("version")
	Commit, _   = tag.NewKey("commit")
	NodeType, _ = tag.NewKey("node_type")
	Network, _  = tag.NewKey("network")

	// rpc
	APIInterface, _ = tag.NewKey("api") // to distinguish between gateway api and full node api endpoint calls
	Endpoint, _     = tag.NewKey("endpoint")

	// vm execution
	Actor, _    = tag.NewKey("actor")
	Method, _   = tag.NewKey("method")
	ExitCode, _ = tag.NewKey("exit_code")

	// datastore
	Datastore, _ = tag.NewKey("datastore")
)

// Measures
var (
	// common
	LotusInfo = stats.Int64("info", "Arbitrary counter to tag lotus-escrow info to", stats.UnitDimensionless)

	// chain
	ChainNodeHeight = stats.Int64("chain/node_height", "Current Height of the node", stats.UnitDimensionless)

	// messages
	MessageReceived       = stats.Int64("message/received", "Counter for messages received", stats.UnitDimensionless)
	MessageValidationFail = stats.Int64("message/failure", "Counter for message validation failures", stats.UnitDimensionless)
	MessageParamsSize     = stats.Int64("message/params_size", "Size of message params", stats.UnitBytes)

	// vm
	MessageApplied       = stats.Int64("vm/applied", "Counter for applied messages", stats.UnitDimensionless)
	MessageApplyDuration = stats.Float64("vm/applymessage_ms", "Duration of a single message application", stats.UnitMilliseconds)
	VMFlushDuration      = stats.Float64("vm/flush_ms", "Time spent committing state and receipt", stats.UnitMilliseconds)
	StateCallDuration    = stats.Float64("vm/statecall_ms", "Duration of read-only method calls", stats.UnitMilliseconds)

	// mpool
	MpoolPushDuration = stats.Float64("mpool/push_ms", "Duration of MpoolPush", stats.UnitMilliseconds)

	// rpc
	APIRequestDuration = stats.Float64("api/request_duration_ms", "Duration of API requests", stats.UnitMilliseconds)

	// index
	MsgIndexWriteFailures = stats.Int64("msgindex/write_failures", "Counter for failed message index writes", stats.UnitDimensionless)
)

var (
	InfoView = &view.View{
		Name:        "info",
		Description: "Lotus escrow node information",
		Measure:     LotusInfo,
		Aggregation: view.LastValue(),
		TagKeys:     []tag.Key{Version, Commit, NodeType, Network},
	}
	ChainNodeHeightView = &view.View{
		Measure:     ChainNodeHeight,
		Aggregation: view.LastValue(),
		TagKeys:     []tag.Key{Network},
	}
	MessageReceivedView = &view.View{
		Measure:     MessageReceived,
		Aggregation: view.Count(),
	}
	MessageValidationFailView = &view.View{
		Measure:     MessageValidationFail,
		Aggregation: view.Count(),
	}
	MessageParamsSizeView = &view.View{
		Measure:     MessageParamsSize,
		Aggregation: bytesDistribution,
	}
	MessageAppliedView = &view.View{
		Measure:     MessageApplied,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Actor, Method, ExitCode},
	}
	MessageApplyDurationView = &view.View{
		Measure:     MessageApplyDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{Actor},
	}
	VMFlushDurationView = &view.View{
		Measure:     VMFlushDuration,
		Aggregation: defaultMillisecondsDistribution,
	}
	StateCallDurationView = &view.View{
		Measure:     StateCallDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{Actor},
	}
	MpoolPushDurationView = &view.View{
		Measure:     MpoolPushDuration,
		Aggregation: defaultMillisecondsDistribution,
	}
	APIRequestDurationView = &view.View{
		Measure:     APIRequestDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{APIInterface, Endpoint},
	}
	MsgIndexWriteFailuresView = &view.View{
		Measure:     MsgIndexWriteFailures,
		Aggregation: view.Count(),
	}
)

var views = []*view.View{
	InfoView,
	APIRequestDurationView,
}

// DefaultViews is an array of OpenCensus views for metric gathering purposes
var DefaultViews = func() []*view.View {
	return views
}()

// RegisterViews adds views to the default list without modifying this file.
func RegisterViews(v ...*view.View) {
	views = append(views, v...)
}

func init() {
	RegisterViews(rpcmetrics.DefaultViews...)
}

var ChainNodeViews = append([]*view.View{
	ChainNodeHeightView,
	MessageReceivedView,
	MessageValidationFailView,
	MessageParamsSizeView,
	MessageAppliedView,
	MessageApplyDurationView,
	VMFlushDurationView,
	StateCallDurationView,
	MpoolPushDurationView,
	MsgIndexWriteFailuresView,
}, DefaultViews...)

// SinceInMilliseconds returns the duration of time since the provide time as a float64.
func SinceInMilliseconds(startTime time.Time) float64 {
	return float64(time.Since(startTime).Milliseconds())
}

// Timer is a function stopwatch, calling it starts the timer,
// calling the returned function will record the duration.
func Timer(ctx context.Context, m *stats.Float64Measure) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		stats.Record(ctx, m.M(SinceInMilliseconds(start)))
		return time.Since(start)
	}
}

// AddNetworkTag tags ctx with the name of the network the node runs.
func AddNetworkTag(ctx context.Context, network string) context.Context {
	ctx, _ = tag.New(ctx, tag.Upsert(Network, network))
	return ctx
}
