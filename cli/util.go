package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
)

// Set the global default, to be overridden by individual cli flags in order
func init() {
	color.NoColor = os.Getenv("GOLOG_LOG_FMT") != "color" &&
		!isatty.IsTerminal(os.Stdout.Fd()) &&
		!isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// UnixTime renders a logical timestamp with its distance from now, e.g.
// `1700000000 (3 hours ago)`.
func UnixTime(ts uint64) string {
	if ts == 0 {
		return "never"
	}
	return fmt.Sprintf("%d (%s)", ts, humanize.Time(time.Unix(int64(ts), 0)))
}

func exitCodeStr(code exitcode.ExitCode) string {
	name := actors.ExitCodeName(code)
	if code == exitcode.Ok {
		return color.GreenString("%d (%s)", code, name)
	}
	return color.RedString("%d (%s)", code, name)
}

// printReceipt writes the outcome of an applied message. Failed receipts are
// printed too; the caller decides whether they are an error.
func printReceipt(afmt *AppFmt, ml *api.MsgLookup) {
	afmt.Printf("Message:   %s\n", ml.Message)
	afmt.Printf("Height:    %d\n", ml.Height)
	afmt.Printf("Timestamp: %s\n", UnixTime(ml.Timestamp))
	afmt.Printf("Exit Code: %s\n", exitCodeStr(ml.Receipt.ExitCode))

	for _, tr := range ml.Receipt.Transfers {
		afmt.Printf("Transfer:  %s -> %s: %s\n", tr.From, tr.To, tr.Amount)
	}
	for _, ev := range ml.Receipt.Events {
		afmt.Printf("Event:     %s", ev.Emitter)
		for _, a := range ev.Attributes {
			afmt.Printf(" %s=%s", a.Key, a.Value)
		}
		afmt.Println()
	}
}

// receiptResult prints ml and turns a failed receipt into a command error.
func receiptResult(afmt *AppFmt, ml *api.MsgLookup) error {
	printReceipt(afmt, ml)
	if !ml.Ok() {
		return api.NewErrActorFailed(ml)
	}
	return nil
}

func printCreated(afmt *AppFmt, name string, c *api.ActorCreated) {
	afmt.Printf("Created new %s actor\n", name)
	afmt.Printf("ID Address:     %s\n", c.IDAddress)
	afmt.Printf("Robust Address: %s\n", c.RobustAddress)
	afmt.Printf("Message:        %s\n", c.Message)
}

func parseAddr(s string) (address.Address, error) {
	a, err := address.NewFromString(s)
	if err != nil {
		return address.Undef, xerrors.Errorf("parsing address %q: %w", s, err)
	}
	return a, nil
}

var fromFlag = &cli.StringFlag{
	Name:  "from",
	Usage: "address to send the message from, defaults to the wallet default address",
}

// senderAddr returns the --from address, or the wallet default.
func senderAddr(ctx context.Context, napi api.FullNode, cctx *cli.Context) (address.Address, error) {
	if from := cctx.String(fromFlag.Name); from != "" {
		return parseAddr(from)
	}

	def, err := napi.WalletDefaultAddress(ctx)
	if err != nil {
		return address.Undef, xerrors.Errorf("no --from given and no default wallet address: %w", err)
	}
	return def, nil
}
