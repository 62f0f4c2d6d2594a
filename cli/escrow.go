package cli

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var EscrowCmd = &cli.Command{
	Name:  "escrow",
	Usage: "Manage escrow settlements",
	Subcommands: []*cli.Command{
		escrowCreateCmd,
		escrowDepositCmd,
		escrowReleaseCmd,
		escrowRefundCmd,
		escrowConfigCmd,
		escrowListCmd,
	},
}

var escrowCreateCmd = &cli.Command{
	Name:      "create",
	Usage:     "Create an escrow paying seller once the buyer releases it",
	ArgsUsage: "[seller] [amount]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "from",
			Usage: "buyer address, defaults to the wallet default address",
		},
		&cli.DurationFlag{
			Name:  "lock",
			Usage: "time after which the buyer may refund, e.g. 72h",
			Value: 24 * time.Hour,
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

		seller, err := parseAddr(cctx.Args().Get(0))
		if err != nil {
			return err
		}

		amount, err := types.ParseCoin(cctx.Args().Get(1))
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing amount: %w", err))
		}

		lock := cctx.Duration("lock")
		if lock < 0 {
			return xerrors.New("--lock must not be negative")
		}

		buyer, err := senderAddr(ctx, napi, cctx)
		if err != nil {
			return err
		}

		created, err := napi.EscrowCreate(ctx, buyer, seller, amount, uint64(lock/time.Second))
		if err != nil {
			return err
		}

		printCreated(afmt, "escrow", created)
		return nil
	},
}

var escrowDepositCmd = &cli.Command{
	Name:      "deposit",
	Usage:     "Fund an escrow",
	ArgsUsage: "[escrow] [funds (optional, defaults to the escrow amount)]",
	Flags:     []cli.Flag{fromFlag},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() < 1 || cctx.NArg() > 2 {
			return IncorrectNumArgs(cctx)
		}

		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		escrow, err := parseAddr(cctx.Args().Get(0))
		if err != nil {
			return err
		}

		funds, err := types.ParseCoins(cctx.Args().Get(1))
		if err != nil {
			return ShowHelp(cctx, xerrors.Errorf("parsing funds: %w", err))
		}

		from, err := senderAddr(ctx, napi, cctx)
		if err != nil {
			return err
		}

		ml, err := napi.EscrowDeposit(ctx, from, escrow, funds)
		if err != nil {
			return err
		}
		return receiptResult(afmt, ml)
	},
}

var escrowReleaseCmd = &cli.Command{
	Name:      "release",
	Usage:     "Pay the escrowed amount to the seller",
	ArgsUsage: "[escrow]",
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

		escrow, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		from, err := senderAddr(ctx, napi, cctx)
		if err != nil {
			return err
		}

		ml, err := napi.EscrowRelease(ctx, from, escrow)
		if err != nil {
			return err
		}
		return receiptResult(NewAppFmt(cctx.App), ml)
	},
}

var escrowRefundCmd = &cli.Command{
	Name:      "refund",
	Usage:     "Return the escrowed amount to the buyer once the lock expired",
	ArgsUsage: "[escrow]",
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

		escrow, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		from, err := senderAddr(ctx, napi, cctx)
		if err != nil {
			return err
		}

		ml, err := napi.EscrowRefund(ctx, from, escrow)
		if err != nil {
			return err
		}
		return receiptResult(NewAppFmt(cctx.App), ml)
	},
}

func statusStr(status string) string {
	switch status {
	case actors.EscrowFunded.String():
		return color.YellowString(status)
	case actors.EscrowReleased.String():
		return color.GreenString(status)
	case actors.EscrowRefunded.String():
		return color.BlueString(status)
	default:
		return status
	}
}

var escrowConfigCmd = &cli.Command{
	Name:      "config",
	Aliases:   []string{"status"},
	Usage:     "Print escrow parties, amount and status",
	ArgsUsage: "[escrow]",
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

		escrow, err := parseAddr(cctx.Args().First())
		if err != nil {
			return err
		}

		cfg, err := napi.EscrowGetConfig(ctx, escrow)
		if err != nil {
			return err
		}

		head, err := napi.ChainHead(ctx)
		if err != nil {
			return err
		}

		expires := "expired"
		if cfg.Expiration > head.Timestamp {
			expires = "in " + strings.TrimSpace(humanize.RelTime(time.Unix(int64(head.Timestamp), 0), time.Unix(int64(cfg.Expiration), 0), "", ""))
		}

		afmt.Printf("Buyer:      %s\n", cfg.Buyer)
		afmt.Printf("Seller:     %s\n", cfg.Seller)
		afmt.Printf("Amount:     %s\n", cfg.Amount)
		afmt.Printf("Expiration: %d (%s)\n", cfg.Expiration, expires)
		afmt.Printf("Status:     %s\n", statusStr(cfg.Status))
		return nil
	},
}

var escrowListCmd = &cli.Command{
	Name:  "list",
	Usage: "List escrows created through this node",
	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		escrows, err := napi.EscrowList(ctx)
		if err != nil {
			return err
		}

		for _, e := range escrows {
			afmt.Printf("%s\tbuyer %s\tseller %s\t%s\tcreated %s\n",
				e.Escrow, e.Buyer, e.Seller, e.Amount, UnixTime(e.CreatedAt))
		}
		return nil
	},
}
