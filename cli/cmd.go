package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-jsonrpc"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/api/client"
	cliutil "github.com/filecoin-project/lotus-escrow/cli/util"
	"github.com/filecoin-project/lotus-escrow/node/repo"
)

var log = logging.Logger("cli")

const (
	metadataTraceContext = "traceContext"

	// testFullAPIKey lets tests inject a mocked node into app.Metadata
	testFullAPIKey = "test-full-api"

	// APIInfoEnv overrides the repo api and token files, e.g.
	// LOTUS_ESCROW_API_INFO=<token>:/ip4/127.0.0.1/tcp/1234/http
	APIInfoEnv = "LOTUS_ESCROW_API_INFO"
)

// FlagRepoPath is the repo the daemon runs from and the CLI reads api info
// from.
var FlagRepoPath = &cli.StringFlag{
	Name:    "repo",
	EnvVars: []string{"LOTUS_ESCROW_PATH"},
	Value:   "~/.lotus-escrow",
	Usage:   "Specify the repo path",
}

// GetAPIInfo returns the API endpoint to connect to. The environment takes
// precedence over the repo files written by a running daemon.
func GetAPIInfo(cctx *cli.Context) (cliutil.APIInfo, error) {
	if env, ok := os.LookupEnv(APIInfoEnv); ok {
		return cliutil.ParseApiInfo(env), nil
	}

	r, err := repo.NewFS(cctx.String(FlagRepoPath.Name))
	if err != nil {
		return cliutil.APIInfo{}, xerrors.Errorf("opening fs repo: %w", err)
	}

	ma, err := r.APIEndpoint()
	if err != nil {
		return cliutil.APIInfo{}, xerrors.Errorf("could not get api endpoint: %w", err)
	}

	token, err := r.APIToken()
	if err != nil {
		log.Warnf("Couldn't load CLI token, capabilities may be limited: %v", err)
	}

	return cliutil.APIInfo{
		Addr:  ma.String(),
		Token: token,
	}, nil
}

func GetRawAPI(cctx *cli.Context) (string, http.Header, error) {
	ainfo, err := GetAPIInfo(cctx)
	if err != nil {
		return "", nil, xerrors.Errorf("could not get API info: %w", err)
	}

	addr, err := ainfo.DialArgs("v0")
	if err != nil {
		return "", nil, xerrors.Errorf("could not get DialArgs: %w", err)
	}

	log.Debugw("dialing node api", "addr", addr)
	return addr, ainfo.AuthHeader(), nil
}

// GetFullNodeAPI connects to the node API. Tests replace the connection with
// a mock stored in the app metadata.
func GetFullNodeAPI(cctx *cli.Context) (api.FullNode, jsonrpc.ClientCloser, error) {
	if tn, ok := cctx.App.Metadata[testFullAPIKey]; ok {
		return tn.(api.FullNode), func() {}, nil
	}

	addr, headers, err := GetRawAPI(cctx)
	if err != nil {
		return nil, nil, err
	}

	return client.NewFullNodeRPC(cctx.Context, addr, headers)
}

// ReqContext returns context for cli execution. Calling it for the first time
// installs SIGTERM handler that will close returned context.
// Not safe for concurrent execution.
func ReqContext(cctx *cli.Context) context.Context {
	tCtx := DaemonContext(cctx)

	ctx, done := context.WithCancel(tCtx)
	sigChan := make(chan os.Signal, 2)
	go func() {
		<-sigChan
		done()
	}()
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)

	return ctx
}

func DaemonContext(cctx *cli.Context) context.Context {
	if mtCtx, ok := cctx.App.Metadata[metadataTraceContext]; ok {
		return mtCtx.(context.Context)
	}

	return context.Background()
}

var CommonCommands = []*cli.Command{
	AuthCmd,
	LogCmd,
	WaitApiCmd,
	VersionCmd,
}

var Commands = []*cli.Command{
	WithCategory("basic", SendCmd),
	WithCategory("basic", WalletCmd),
	WithCategory("actors", EscrowCmd),
	WithCategory("actors", FaucetCmd),
	WithCategory("actors", KVCmd),
	WithCategory("developer", AuthCmd),
	WithCategory("developer", StateCmd),
	WithCategory("developer", ChainCmd),
	WithCategory("developer", LogCmd),
	WithCategory("developer", WaitApiCmd),
	WithCategory("developer", VersionCmd),
}

func WithCategory(cat string, cmd *cli.Command) *cli.Command {
	cmd.Category = cat
	return cmd
}
