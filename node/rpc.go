package node

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	logging "github.com/ipfs/go-log/v2"
	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"go.opencensus.io/tag"
	"golang.org/x/time/rate"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-jsonrpc"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/lib/auth"
	"github.com/filecoin-project/lotus-escrow/metrics"
	"github.com/filecoin-project/lotus-escrow/metrics/proxy"
	"github.com/filecoin-project/lotus-escrow/node/config"
)

var rpclog = logging.Logger("rpc")

// maxLimitedHosts bounds the number of remote hosts with their own limiter.
const maxLimitedHosts = 4096

// ServeRPC serves an HTTP handler over the supplied listen multiaddr.
//
// This function spawns a goroutine to run the server, and returns immediately.
// It returns the stop function to be called to terminate the endpoint.
//
// The supplied ID is used in tracing, by inserting a tag in the context.
func ServeRPC(h http.Handler, id string, addr multiaddr.Multiaddr) (StopFunc, error) {
	// Start listening to the addr; if invalid or occupied, we will fail early.
	lst, err := manet.Listen(addr)
	if err != nil {
		return nil, xerrors.Errorf("could not listen: %w", err)
	}

	// Instantiate the server and start listening.
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 30 * time.Second,
		BaseContext: func(listener net.Listener) context.Context {
			ctx, _ := tag.New(context.Background(), tag.Upsert(metrics.APIInterface, id))
			return ctx
		},
	}

	go func() {
		err = srv.Serve(manet.NetListener(lst))
		if err != http.ErrServerClosed {
			rpclog.Warnf("rpc server failed: %s", err)
		}
	}()

	return srv.Shutdown, err
}

// FullNodeHandler returns a full node handler, to be mounted as-is on the server.
func FullNodeHandler(a api.FullNode, permissioned bool, cfg config.API, opts ...jsonrpc.ServerOption) (http.Handler, error) {
	m := mux.NewRouter()

	serveRpc := func(path string, hnd interface{}) {
		rpcServer := jsonrpc.NewServer(append(opts, jsonrpc.WithServerErrors(api.RPCErrors))...)
		rpcServer.Register("Filecoin", hnd)

		var handler http.Handler = withRequestTimeout(rpcServer, time.Duration(cfg.Timeout))
		if permissioned {
			handler = &auth.Handler{Verify: a.AuthVerify, Next: handler.ServeHTTP}
		}

		m.Handle(path, handler)
	}

	fnapi := proxy.MetricedFullAPI(a)
	if permissioned {
		fnapi = api.PermissionedFullAPI(fnapi)
	}

	serveRpc("/rpc/v0", fnapi)

	m.Handle("/debug/metrics", metrics.Exporter())

	rl, err := NewRateLimiterHandler(m, cfg.RequestsPerSecond, cfg.Burst)
	if err != nil {
		return nil, err
	}
	return rl, nil
}

// withRequestTimeout bounds plain HTTP calls. Websocket connections are long
// lived and can't be hijacked through http.TimeoutHandler, so they pass as is.
func withRequestTimeout(h http.Handler, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		return h
	}
	th := http.TimeoutHandler(h, timeout, "request timed out")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Upgrade") != "" {
			h.ServeHTTP(w, r)
			return
		}
		th.ServeHTTP(w, r)
	})
}

// RateLimiterHandler keeps a token bucket per remote host and answers
// 429 Too Many Requests once a host runs out of tokens.
type RateLimiterHandler struct {
	handler  http.Handler
	limit    rate.Limit
	burst    int
	limiters *lru.Cache[string, *rate.Limiter]
}

// NewRateLimiterHandler wraps handler. A zero rps disables limiting.
func NewRateLimiterHandler(handler http.Handler, rps float64, burst int) (http.Handler, error) {
	if rps <= 0 {
		return handler, nil
	}
	if burst < 1 {
		burst = 1
	}

	limiters, err := lru.New[string, *rate.Limiter](maxLimitedHosts)
	if err != nil {
		return nil, xerrors.Errorf("creating limiter cache: %w", err)
	}

	return &RateLimiterHandler{
		handler:  handler,
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: limiters,
	}, nil
}

func (h *RateLimiterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	host := remoteHost(r.RemoteAddr)

	limiter, ok := h.limiters.Get(host)
	if !ok {
		limiter = rate.NewLimiter(h.limit, h.burst)
		// another request from the same host may have raced us here
		if prev, found, _ := h.limiters.PeekOrAdd(host, limiter); found {
			limiter = prev
		}
	}

	if !limiter.Allow() {
		rpclog.Debugw("rate limited", "host", host, "path", r.URL.Path)
		w.WriteHeader(http.StatusTooManyRequests)
		return
	}

	h.handler.ServeHTTP(w, r)
}

func remoteHost(remote string) string {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		return strings.TrimSpace(remote)
	}
	return host
}
