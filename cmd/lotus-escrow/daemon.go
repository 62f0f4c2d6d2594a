package main

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"github.com/multiformats/go-multiaddr"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/build"
	lcli "github.com/filecoin-project/lotus-escrow/cli"
	"github.com/filecoin-project/lotus-escrow/metrics"
	"github.com/filecoin-project/lotus-escrow/node"
	"github.com/filecoin-project/lotus-escrow/node/config"
	"github.com/filecoin-project/lotus-escrow/node/modules/dtypes"
	"github.com/filecoin-project/lotus-escrow/node/modules/helpers"
	"github.com/filecoin-project/lotus-escrow/node/repo"
)

var log = logging.Logger("main")

var DaemonCmd = &cli.Command{
	Name:  "daemon",
	Usage: "Start an escrow node daemon process",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "api",
			Usage: "override the API listen multiaddr from the config",
		},
	},
	Action: func(cctx *cli.Context) error {
		ctx, _ := tag.New(lcli.DaemonContext(cctx),
			tag.Insert(metrics.Version, build.BuildVersion),
			tag.Insert(metrics.Commit, build.CurrentCommit),
			tag.Insert(metrics.NodeType, "chain"),
		)
		// Register all metric views
		if err := view.Register(metrics.ChainNodeViews...); err != nil {
			log.Fatalf("Cannot register the view: %v", err)
		}
		// Set the metric to one so it is published to the exporter
		stats.Record(ctx, metrics.LotusInfo.M(1))

		r, err := repo.NewFS(cctx.String(lcli.FlagRepoPath.Name))
		if err != nil {
			return xerrors.Errorf("opening fs repo: %w", err)
		}

		if err := r.Init(repo.FullNode); err != nil && err != repo.ErrRepoExists {
			return xerrors.Errorf("repo init error: %w", err)
		}

		cfg, err := loadConfig(r)
		if err != nil {
			return err
		}
		if cctx.IsSet("api") {
			cfg.API.ListenAddress = cctx.String("api")
		}

		ctx = metrics.AddNetworkTag(ctx, cfg.Genesis.NetworkName)

		shutdownChan := make(chan struct{})

		var full api.FullNode
		stop, err := node.New(ctx,
			node.FullAPI(&full),

			node.Base(),
			node.Repo(r),

			node.Override(new(dtypes.ShutdownChan), shutdownChan),
			node.Override(new(helpers.MetricsCtx), func() context.Context { return ctx }),
			node.ApplyIf(func(s *node.Settings) bool { return cctx.IsSet("api") },
				node.Override(new(dtypes.APIEndpoint), func() (dtypes.APIEndpoint, error) {
					return apiEndpoint(cfg.API.ListenAddress)
				}),
			),
		)
		if err != nil {
			return xerrors.Errorf("initializing node: %w", err)
		}

		endpoint, err := apiEndpoint(cfg.API.ListenAddress)
		if err != nil {
			return err
		}

		// Instantiate the full node handler.
		h, err := node.FullNodeHandler(full, true, cfg.API)
		if err != nil {
			return xerrors.Errorf("failed to instantiate rpc handler: %s", err)
		}

		// Serve the RPC.
		rpcStopper, err := node.ServeRPC(h, "lotus-escrow-daemon", multiaddr.Multiaddr(endpoint))
		if err != nil {
			return xerrors.Errorf("failed to start json-rpc endpoint: %s", err)
		}

		log.Infow("escrow node started", "api", endpoint, "network", cfg.Genesis.NetworkName)

		// Monitor for shutdown.
		finishCh := node.MonitorShutdown(shutdownChan,
			node.ShutdownHandler{Component: "rpc server", StopFunc: rpcStopper},
			node.ShutdownHandler{Component: "node", StopFunc: stop},
		)
		<-finishCh // fires when shutdown is complete.

		return nil
	},
}

func apiEndpoint(listen string) (dtypes.APIEndpoint, error) {
	ma, err := multiaddr.NewMultiaddr(listen)
	if err != nil {
		return nil, xerrors.Errorf("parsing api listen address %q: %w", listen, err)
	}
	return dtypes.APIEndpoint(ma), nil
}

// loadConfig reads the repo config without keeping the repo locked.
func loadConfig(r *repo.FsRepo) (*config.FullNode, error) {
	lr, err := r.LockRO(repo.FullNode)
	if err != nil {
		return nil, xerrors.Errorf("locking repo: %w", err)
	}

	c, err := lr.Config()
	if cerr := lr.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return nil, xerrors.Errorf("getting node config: %w", err)
	}

	cfg, ok := c.(*config.FullNode)
	if !ok {
		return nil, xerrors.Errorf("invalid config for repo, got: %T", c)
	}
	return cfg, nil
}
