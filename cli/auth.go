package cli

import (
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-jsonrpc/auth"

	"github.com/filecoin-project/lotus-escrow/api"
)

var AuthCmd = &cli.Command{
	Name:  "auth",
	Usage: "Manage RPC permissions",
	Subcommands: []*cli.Command{
		AuthCreateAdminToken,
		AuthApiInfoToken,
	},
}

var permFlag = &cli.StringFlag{
	Name:     "perm",
	Usage:    "permission to assign to the token, one of: read, write, sign, admin",
	Required: true,
}

// permsUpTo returns every permission up to and including perm, so 'sign'
// gives [read, write, sign].
func permsUpTo(perm string) ([]auth.Permission, error) {
	for i, p := range api.AllPermissions {
		if auth.Permission(perm) == p {
			return api.AllPermissions[:i+1], nil
		}
	}
	return nil, xerrors.Errorf("--perm flag has to be one of: %s", api.AllPermissions)
}

var AuthCreateAdminToken = &cli.Command{
	Name:  "create-token",
	Usage: "Create token",
	Flags: []cli.Flag{permFlag},

	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		perms, err := permsUpTo(cctx.String("perm"))
		if err != nil {
			return ShowHelp(cctx, err)
		}

		token, err := napi.AuthNew(ctx, perms)
		if err != nil {
			return err
		}

		afmt.Println(string(token))
		return nil
	},
}

var AuthApiInfoToken = &cli.Command{
	Name:  "api-info",
	Usage: "Get token with API info required to connect to this node",
	Flags: []cli.Flag{permFlag},

	Action: func(cctx *cli.Context) error {
		napi, closer, err := GetFullNodeAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		ctx := ReqContext(cctx)
		afmt := NewAppFmt(cctx.App)

		perms, err := permsUpTo(cctx.String("perm"))
		if err != nil {
			return ShowHelp(cctx, err)
		}

		token, err := napi.AuthNew(ctx, perms)
		if err != nil {
			return err
		}

		ainfo, err := GetAPIInfo(cctx)
		if err != nil {
			return xerrors.Errorf("could not get API info: %w", err)
		}

		afmt.Printf("%s=%s:%s\n", APIInfoEnv, string(token), ainfo.Addr)
		return nil
	},
}
