package cli

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"strconv"

	"github.com/fatih/color"
	"github.com/ipfs/go-cid"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var StateCmd = &cli.Command{
	Name:  "state",
	Usage: "Interact with and query chain state",
	Subcommands: []*cli.Command{
		StateListActorsCmd,
		StateGetActorCmd,
		StateLookupIDCmd,
		StateWaitMsgCmd,
		StateSearchMsgCmd,
		StateListMessagesCmd,
		StateCallCmd,
		StateNetworkNameCmd,
	},
}

var StateListActorsCmd = &cli.Command{
	Name:  "list-actors",
	Usage: "list all actors in the network",
	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		addrs, err := napi.StateListActors(ctx)
		if err != nil {
			return err
		}

		for _, a := range addrs {
			afmt.Println(a.String())
		}

		return nil
	},
}

var StateGetActorCmd = &cli.Command{
	Name:      "get-actor",
	Usage:     "Print actor information",
	ArgsUsage: "[actorAddress]",
	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		addr, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		a, err := napi.StateGetActor(ctx, addr)
		if err != nil {
			return err
		}

		afmt.Printf("Address:\t%s\n", addr)
		afmt.Printf("Balance:\t%s\n", a.Balance)
		afmt.Printf("Nonce:\t\t%d\n", a.Nonce)
		afmt.Printf("Code:\t\t%s (%s)\n", a.Code, actors.ActorNameByCode(a.Code))

		return nil
	},
}

var StateLookupIDCmd = &cli.Command{
	Name:      "lookup",
	Usage:     "Find corresponding ID address",
	ArgsUsage: "[address]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "reverse",
			Aliases: []string{"r"},
			Usage:   "Perform reverse lookup",
		},
	},
	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		addr, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		var a address.Address
		if !cctx.Bool("reverse") {
			a, err = napi.StateLookupID(ctx, addr)
		} else {
			a, err = napi.StateAccountKey(ctx, addr)
		}

		if err != nil {
			return err
		}

		afmt.Printf("%s\n", a)

		return nil
	},
}

var StateWaitMsgCmd = &cli.Command{
	Name:      "wait-msg",
	Usage:     "Wait for a message to be applied",
	ArgsUsage: "[messageCid]",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "timeout",
			Value: 0,
			Usage: "give up after this long, zero waits forever",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)
		if d := cctx.Duration("timeout"); d > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d)
			defer cancel()
		}

		msg, err := cid.Decode(cctx.Args().First())
		if err != nil {
			return err
		}

		ml, err := napi.StateWaitMsg(ctx, msg)
		if err != nil {
			return err
		}

		return printMsg(ctx, NewAppFmt(cctx.App), napi, msg, ml)
	},
}

var StateSearchMsgCmd = &cli.Command{
	Name:      "search-msg",
	Usage:     "Search to see whether a message has been applied",
	ArgsUsage: "[messageCid]",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)

		msg, err := cid.Decode(cctx.Args().First())
		if err != nil {
			return err
		}

		ml, err := napi.StateSearchMsg(ctx, msg)
		if err != nil {
			return err
		}

		if ml == nil {
			return xerrors.Errorf("failed to find message: %s", msg)
		}

		return printMsg(ctx, NewAppFmt(cctx.App), napi, msg, ml)
	},
}

func printMsg(ctx context.Context, afmt *AppFmt, napi api.FullNode, msg cid.Cid, ml *api.MsgLookup) error {
	m, err := napi.ChainGetMessage(ctx, msg)
	if err != nil {
		return err
	}

	afmt.Printf("From:      %s\n", m.From)
	afmt.Printf("To:        %s\n", m.To)
	afmt.Printf("Method:    %d\n", m.Method)
	afmt.Printf("Funds:     %s\n", m.Funds)
	printReceipt(afmt, ml)
	if len(ml.Receipt.Return) > 0 {
		afmt.Printf("Return:    %x\n", ml.Receipt.Return)
	}

	return nil
}

var StateListMessagesCmd = &cli.Command{
	Name:      "list-messages",
	Usage:     "list messages sent or received by an address, newest first",
	ArgsUsage: "[address]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "maximum number of messages to print, zero prints all",
			Value: 50,
		},
		&cli.BoolFlag{
			Name:  "cids",
			Usage: "print message CIDs instead of messages",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return IncorrectNumArgs(cctx)
		}

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		addr, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		msgs, err := napi.StateListMessages(ctx, addr, cctx.Int("limit"))
		if err != nil {
			return err
		}

		for _, mi := range msgs {
			if cctx.Bool("cids") {
				afmt.Println(mi.Message.String())
				continue
			}

			afmt.Printf("%d\t%s\t%s -> %s\tmethod %d\tnonce %d\t%s\n",
				mi.Height, mi.Message, mi.From, mi.To, mi.Method, mi.Nonce, exitCodeStr(mi.ExitCode))
		}

		return nil
	},
}

var StateCallCmd = &cli.Command{
	Name:      "call",
	Usage:     "Invoke a method on an actor locally",
	ArgsUsage: "[toAddress methodId params (optional)]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "from",
			Usage: "caller of the method, the system actor when empty",
		},
		&cli.StringFlag{
			Name:  "value",
			Usage: "specify funds attached to the invocation",
		},
		&cli.StringFlag{
			Name:  "ret",
			Usage: "specify how to print output (hex, base64)",
			Value: "hex",
		},
		&cli.StringFlag{
			Name:  "encoding",
			Value: "base64",
			Usage: "specify params encoding to parse (base64, hex)",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() < 2 {
			return ShowHelp(cctx, xerrors.New("must specify at least actor and method to invoke"))
		}

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		toa, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		var froma address.Address
		if cctx.String("from") != "" {
			froma, err = parseAddr(cctx.String("from"))
			if err != nil {
				return err
			}
		}

		method, err := strconv.ParseUint(cctx.Args().Get(1), 10, 64)
		if err != nil {
			return xerrors.New("must pass method as a number")
		}

		value, err := types.ParseCoins(cctx.String("value"))
		if err != nil {
			return xerrors.Errorf("failed to parse 'value': %w", err)
		}

		var params []byte
		// If params were passed in, decode them
		if cctx.NArg() > 2 {
			switch cctx.String("encoding") {
			case "base64":
				params, err = base64.StdEncoding.DecodeString(cctx.Args().Get(2))
				if err != nil {
					return xerrors.Errorf("decoding base64 value: %w", err)
				}
			case "hex":
				params, err = hex.DecodeString(cctx.Args().Get(2))
				if err != nil {
					return xerrors.Errorf("decoding hex value: %w", err)
				}
			default:
				return xerrors.Errorf("unrecognized encoding: %s", cctx.String("encoding"))
			}
		}

		ret, err := napi.StateCall(ctx, &types.Message{
			From:   froma,
			To:     toa,
			Funds:  value,
			Method: abi.MethodNum(method),
			Params: params,
		})
		if err != nil {
			return xerrors.Errorf("state call failed: %w", err)
		}

		if ret.MsgRct.ExitCode != 0 {
			return xerrors.Errorf("invocation failed (exit: %s): %s", actors.ExitCodeName(ret.MsgRct.ExitCode), ret.Error)
		}

		afmt.Println("Call receipt:")
		afmt.Printf("Exit code: %s\n", color.GreenString("%d", ret.MsgRct.ExitCode))
		afmt.Printf("Duration: %s\n", ret.Duration)

		switch cctx.String("ret") {
		case "hex":
			afmt.Printf("Return: \n%x\n", ret.MsgRct.Return)
		case "base64":
			afmt.Printf("Return: \n%s\n", base64.StdEncoding.EncodeToString(ret.MsgRct.Return))
		default:
			return xerrors.Errorf("unrecognized return format: %s", cctx.String("ret"))
		}

		return nil
	},
}

var StateNetworkNameCmd = &cli.Command{
	Name:  "network-name",
	Usage: "Print the name of the network the node runs",
	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		name, err := napi.StateNetworkName(ReqContext(cctx))
		if err != nil {
			return err
		}

		NewAppFmt(cctx.App).Println(name)
		return nil
	},
}
