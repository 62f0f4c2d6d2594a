package cli

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var SendCmd = &cli.Command{
	Name:      "send",
	Usage:     "Send funds between accounts",
	ArgsUsage: "[targetAddress] [amount]",
	Description: `Amounts are coin lists, e.g. 100utoken or 5utoken,2stake.
   With --method and --params-hex any actor method can be invoked.`,
	Flags: []cli.Flag{
		fromFlag,
		&cli.Uint64Flag{
			Name:  "method",
			Usage: "specify method to invoke",
			Value: 0,
		},
		&cli.StringFlag{
			Name:  "params-hex",
			Usage: "specify invocation parameters in hex",
		},
		&cli.StringFlag{
			Name:  "uuid",
			Usage: "make the send idempotent: resending with the same uuid returns the first message",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 2 {
			return IncorrectNumArgs(cctx)
		}

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		afmt := NewAppFmt(cctx.App)

		to, err := parseAddr(cctx.Args().Get(0))
		if err != nil {
			return ShowHelp(cctx, err)
		}

		funds, err := types.ParseCoins(cctx.Args().Get(1))
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("failed to parse amount: %w", err))
		}

		from, err := senderAddr(ctx, napi, cctx)
		if err != nil {
			return err
		}

		var params []byte
		if cctx.IsSet("params-hex") {
			params, err = hex.DecodeString(cctx.String("params-hex"))
			if err != nil {
				return xerrors.Errorf("failed to decode hex params: %w", err)
			}
		}

		var spec *api.MessageSendSpec
		if cctx.IsSet("uuid") {
			u, err := uuid.Parse(cctx.String("uuid"))
			if err != nil {
				return xerrors.Errorf("parsing uuid: %w", err)
			}
			spec = &api.MessageSendSpec{MsgUuid: u}
		}

		sm, err := napi.MpoolPushMessage(ctx, &types.Message{
			From:   from,
			To:     to,
			Funds:  funds,
			Method: abi.MethodNum(cctx.Uint64("method")),
			Params: params,
		}, spec)
		if err != nil {
			return err
		}

		afmt.Println(sm.Cid())

		ml, err := napi.StateWaitMsg(ctx, sm.Cid())
		if err != nil {
			return xerrors.Errorf("waiting for message: %w", err)
		}
		return receiptResult(afmt, ml)
	},
}
