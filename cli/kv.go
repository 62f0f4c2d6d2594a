package cli

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/api"
)

type kvResult = api.MsgLookup

type kvCall struct {
	ctx   context.Context
	api   api.FullNode
	from  address.Address
	store address.Address
	// arguments after the store address
	args []string
}

// kvWrite runs a state changing kv command taking nargs arguments, the first
// being the store address.
func kvWrite(cctx *cli.Context, nargs int, write func(*kvCall) (*kvResult, error)) error {
	if cctx.NArg() != nargs {
		return IncorrectNumArgs(cctx)
	}

	napi, closer, err := GetFullNodeAPI(cctx)
	if err != nil {
		return err
	}
	defer closer()
	ctx := ReqContext(cctx)

	store, err := parseAddr(cctx.Args().First())
	if err != nil {
		return err
	}

	from, err := senderAddr(ctx, napi, cctx)
	if err != nil {
		return err
	}

	ml, err := write(&kvCall{
		ctx:   ctx,
		api:   napi,
		from:  from,
		store: store,
		args:  cctx.Args().Slice()[1:],
	})
	if err != nil {
		return err
	}
	return receiptResult(NewAppFmt(cctx.App), ml)
}

var KVCmd = &cli.Command{
	Name:  "kv",
	Usage: "Manage key-value store actors",
	Subcommands: []*cli.Command{
		kvNewStoreCmd,
		kvCreateCmd,
		kvUpdateCmd,
		kvDeleteCmd,
		kvReadCmd,
	},
}

var kvNewStoreCmd = &cli.Command{
	Name:  "new-store",
	Usage: "Create a key-value store actor",
	Flags: []cli.Flag{fromFlag},
	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()
		ctx := ReqContext(cctx)

		from, err := senderAddr(ctx, napi, cctx)
		if err != nil {
			return err
		}

		created, err := napi.KVStoreCreate(ctx, from)
		if err != nil {
			return err
		}

		printCreated(NewAppFmt(cctx.App), "kv store", created)
		return nil
	},
}

var kvCreateCmd = &cli.Command{
	Name:      "create",
	Usage:     "Add a key, failing if it exists",
	ArgsUsage: "[store] [key] [value]",
	Flags:     []cli.Flag{fromFlag},
	Action: func(cctx *cli.Context) error {
		return kvWrite(cctx, 3, func(c *kvCall) (*kvResult, error) {
			return c.api.KVCreate(c.ctx, c.from, c.store, c.args[0], c.args[1])
		})
	},
}

var kvUpdateCmd = &cli.Command{
	Name:      "update",
	Usage:     "Change the value of an existing key",
	ArgsUsage: "[store] [key] [value]",
	Flags:     []cli.Flag{fromFlag},
	Action: func(cctx *cli.Context) error {
		return kvWrite(cctx, 3, func(c *kvCall) (*kvResult, error) {
			return c.api.KVUpdate(c.ctx, c.from, c.store, c.args[0], c.args[1])
		})
	},
}

var kvDeleteCmd = &cli.Command{
	Name:      "delete",
	Usage:     "Remove an existing key",
	ArgsUsage: "[store] [key]",
	Flags:     []cli.Flag{fromFlag},
	Action: func(cctx *cli.Context) error {
		return kvWrite(cctx, 2, func(c *kvCall) (*kvResult, error) {
			return c.api.KVDelete(c.ctx, c.from, c.store, c.args[0])
		})
	},
}

var kvReadCmd = &cli.Command{
	Name:      "read",
	Usage:     "Print the value of a key",
	ArgsUsage: "[store] [key]",
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

		store, err := parseAddr(cctx.Args().Get(0))
		if err != nil {
			return err
		}

		res, err := napi.KVRead(ctx, store, cctx.Args().Get(1))
		if err != nil {
			return err
		}
		if !res.Found {
			return xerrors.Errorf("key %s not found", strconv.Quote(cctx.Args().Get(1)))
		}

		afmt.Println(res.Value)
		if res.Writer != "" {
			afmt.Printf("(last written by %s)\n", res.Writer)
		}
		return nil
	},
}
