package main

import (
	"context"

	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/trace"

	"github.com/filecoin-project/lotus-escrow/build"
	lcli "github.com/filecoin-project/lotus-escrow/cli"
	"github.com/filecoin-project/lotus-escrow/lib/lotuslog"
)

func main() {
	build.RunningNodeType = build.NodeFull

	lotuslog.SetupLogLevels()

	local := []*cli.Command{
		DaemonCmd,
		configCmd,
	}

	ctx, span := trace.StartSpan(context.Background(), "/cli")
	defer span.End()

	app := &cli.App{
		Name:                 "lotus-escrow",
		Usage:                "Escrow settlement node",
		Version:              build.UserVersion(),
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			lcli.FlagRepoPath,
			&cli.StringFlag{
				Name:    "panic-reports",
				EnvVars: []string{"LOTUS_ESCROW_PANIC_REPORT_PATH"},
				Hidden:  true,
				Value:   "~/.lotus-escrow", // should follow --repo default
			},
		},
		After: func(c *cli.Context) error {
			if r := recover(); r != nil {
				// Generate report in LOTUS_ESCROW_PATH and re-raise panic
				persist, _ := homedir.Expand(c.String("panic-reports"))
				repoPath, _ := homedir.Expand(c.String(lcli.FlagRepoPath.Name))
				build.GeneratePanicReport(persist, repoPath, c.App.Name)
				panic(r)
			}
			return nil
		},

		Commands: append(local, lcli.Commands...),
	}

	app.Setup()
	app.Metadata["traceContext"] = ctx

	lcli.RunApp(app)
}
