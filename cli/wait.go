package cli

import (
	"context"
	"time"

	"github.com/jpillora/backoff"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/build"
)

var WaitApiCmd = &cli.Command{
	Name:  "wait-api",
	Usage: "Wait for the node api to come online",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "duration to wait till fail",
			Value: time.Second * 30,
		},
	},
	Action: func(cctx *cli.Context) error {
		afmt := NewAppFmt(cctx.App)

		ctx := ReqContext(cctx)
		ctx, cancel := context.WithTimeout(ctx, cctx.Duration("timeout"))
		defer cancel()

		b := &backoff.Backoff{
			Min:    100 * time.Millisecond,
			Max:    5 * time.Second,
			Factor: 2,
		}

		for ctx.Err() == nil {
			err := pingAPI(ctx, cctx)
			if err == nil {
				return nil
			}

			afmt.Printf("Not online yet... (%s)\n", err)
			select {
			case <-time.After(b.Duration()):
			case <-ctx.Done():
			}
		}

		if ctx.Err() == context.DeadlineExceeded {
			return xerrors.New("timed out waiting for api to come online")
		}

		return ctx.Err()
	},
}

func pingAPI(ctx context.Context, cctx *cli.Context) error {
	napi, closer, err := GetFullNodeAPI(cctx)
	if err != nil {
		return err
	}
	defer closer()

	_, err = napi.Version(ctx)
	return err
}

var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Print version",
	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		afmt := NewAppFmt(cctx.App)

		v, err := napi.Version(ReqContext(cctx))
		if err != nil {
			return err
		}
		afmt.Println("Daemon: ", v)

		if !v.APIVersion.EqMajorMinor(build.FullAPIVersion) {
			log.Warnw("daemon api version differs from this client", "daemon", v.APIVersion, "client", build.FullAPIVersion)
		}

		afmt.Print("Local: ")
		cli.VersionPrinter(cctx)
		return nil
	},
}
