package main

import (
	"bytes"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	lcli "github.com/filecoin-project/lotus-escrow/cli"
	"github.com/filecoin-project/lotus-escrow/node/config"
	"github.com/filecoin-project/lotus-escrow/node/repo"
)

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "Manage node config",
	Subcommands: []*cli.Command{
		configDefaultCmd,
		configUpdateCmd,
	},
}

var configDefaultCmd = &cli.Command{
	Name:  "default",
	Usage: "Print default node config",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "no-comment",
			Usage: "don't comment default values",
		},
	},
	Action: func(cctx *cli.Context) error {
		render := config.ConfigComment
		if cctx.Bool("no-comment") {
			render = config.ConfigUpdate
		}

		cb, err := render(config.DefaultFullNode())
		if err != nil {
			return xerrors.Errorf("rendering default config: %w", err)
		}

		_, err = cctx.App.Writer.Write(cb)
		return err
	},
}

var configUpdateCmd = &cli.Command{
	Name:  "updated",
	Usage: "Print the node config with default values commented out",
	Action: func(cctx *cli.Context) error {
		r, err := repo.NewFS(cctx.String(lcli.FlagRepoPath.Name))
		if err != nil {
			return err
		}

		ok, err := r.Exists()
		if err != nil {
			return err
		}
		if !ok {
			return xerrors.Errorf("repo not initialized")
		}

		cfgNode, err := loadConfig(r)
		if err != nil {
			return err
		}

		nodeStr, err := config.ConfigUpdate(cfgNode)
		if err != nil {
			return xerrors.Errorf("rendering config: %w", err)
		}

		// the rendered config must load back to what the node runs with
		cfgUpdated, err := config.FromReader(bytes.NewReader(nodeStr), config.DefaultFullNode())
		if err != nil {
			return xerrors.Errorf("parsing updated config: %w", err)
		}

		if diff := cmp.Diff(cfgNode, cfgUpdated); diff != "" {
			return xerrors.Errorf("updated config didn't match current config:\n%s", diff)
		}

		_, err = cctx.App.Writer.Write(nodeStr)
		return err
	},
}
