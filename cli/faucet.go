package cli

import (
	"time"

	"github.com/hako/durafmt"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var faucetCooldownFlag = &cli.Uint64Flag{
	Name:  "cooldown-hours",
	Usage: "hours an address must wait between claims",
	Value: 24,
}

var FaucetCmd = &cli.Command{
	Name:  "faucet",
	Usage: "Manage rate limited faucets",
	Subcommands: []*cli.Command{
		faucetCreateCmd,
		faucetClaimCmd,
		faucetConfigCmd,
		faucetLastClaimCmd,
	},
}

var faucetCreateCmd = &cli.Command{
	Name:      "create",
	Usage:     "Create a faucet handing out amount per claim",
	ArgsUsage: "[amount] [funds]",
	Flags:     []cli.Flag{fromFlag, faucetCooldownFlag},
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

		amount, err := types.ParseCoin(cctx.Args().Get(0))
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing amount: %w", err))
		}

		funds, err := types.ParseCoins(cctx.Args().Get(1))
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing funds: %w", err))
		}

		from, err := senderAddr(ctx, napi, cctx)
		if err != nil {
			return err
		}

		created, err := napi.FaucetCreate(ctx, from, cctx.Uint64(faucetCooldownFlag.Name), amount, funds)
		if err != nil {
			return err
		}

		printCreated(NewAppFmt(cctx.App), "faucet", created)
		return nil
	},
}

var faucetClaimCmd = &cli.Command{
	Name:      "claim",
	Usage:     "Claim from a faucet",
	ArgsUsage: "[faucet]",
	Flags:     []cli.Flag{fromFlag},
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

		faucet, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		from, err := senderAddr(ctx, napi, cctx)
		if err != nil {
			return err
		}

		ml, err := napi.FaucetClaim(ctx, from, faucet)
		if err != nil {
			return err
		}
		return receiptResult(NewAppFmt(cctx.App), ml)
	},
}

var faucetConfigCmd = &cli.Command{
	Name:      "config",
	Usage:     "Print faucet cooldown and amount",
	ArgsUsage: "[faucet]",
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

		faucet, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		cfg, err := napi.FaucetGetConfig(ctx, faucet)
		if err != nil {
			return err
		}

		afmt.Printf("Cooldown: %s\n", durafmt.Parse(time.Duration(cfg.CooldownSeconds)*time.Second).LimitFirstN(2))
		afmt.Printf("Amount:   %s\n", cfg.Amount)
		return nil
	},
}

var faucetLastClaimCmd = &cli.Command{
	Name:      "last-claim",
	Usage:     "Print when an address last claimed",
	ArgsUsage: "[faucet] [address]",
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

		faucet, err := parseAddr(cctx.Args().Get(0))
		if err != nil {
			return err
		}
		addr, err := parseAddr(cctx.Args().Get(1))
		if err != nil {
			return err
		}

		ts, err := napi.FaucetGetLastClaim(ctx, faucet, addr)
		if err != nil {
			return err
		}

		NewAppFmt(cctx.App).Println(UnixTime(ts))
		return nil
	},
}
