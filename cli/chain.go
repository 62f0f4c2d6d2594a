package cli

import (
	"encoding/json"

	"github.com/ipfs/go-cid"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

var ChainCmd = &cli.Command{
	Name:  "chain",
	Usage: "Interact with the message log",
	Subcommands: []*cli.Command{
		ChainHeadCmd,
		ChainGetMsgCmd,
		ChainNotifyCmd,
	},
}

var ChainHeadCmd = &cli.Command{
	Name:  "head",
	Usage: "Print chain head",
	Action: func(cctx *cli.Context) error {
		afmt := NewAppFmt(cctx.App)

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		head, err := napi.ChainHead(ctx)
		if err != nil {
			return err
		}

		afmt.Printf("Height:    %d\n", head.Height)
		afmt.Printf("Timestamp: %s\n", UnixTime(head.Timestamp))
		return nil
	},
}

var ChainGetMsgCmd = &cli.Command{
	Name:      "getmessage",
	Aliases:   []string{"get-message", "get-msg"},
	Usage:     "Get and print a message by its cid",
	ArgsUsage: "<messageCid>",
	Action: func(cctx *cli.Context) error {
		afmt := NewAppFmt(cctx.App)

		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		c, err := cid.Decode(cctx.Args().First())
		if err != nil {
			return xerrors.Errorf("failed to parse cid input: %w", err)
		}

		msg, err := napi.ChainGetMessage(ctx, c)
		if err != nil {
			return err
		}

		enc, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return err
		}

		afmt.Println(string(enc))
		return nil
	},
}

var ChainNotifyCmd = &cli.Command{
	Name:  "notify",
	Usage: "Print head changes as messages are applied",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "stop after this many changes, zero follows forever",
		},
	},
	Action: func(cctx *cli.Context) error {
		afmt := NewAppFmt(cctx.App)

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		changes, err := napi.ChainNotify(ctx)
		if err != nil {
			return err
		}

		limit := cctx.Int("count")
		for seen := 0; limit == 0 || seen < limit; seen++ {
			select {
			case hc, ok := <-changes:
				if !ok {
					return xerrors.New("notify channel closed")
				}
				if hc.Applied == nil {
					afmt.Printf("%d\thead\n", hc.Head.Height)
					continue
				}
				afmt.Printf("%d\t%s\t%s\n", hc.Head.Height, hc.Applied.Message, exitCodeStr(hc.Applied.Receipt.ExitCode))
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	},
}
