package node

import (
	"context"
	"errors"

	logging "github.com/ipfs/go-log/v2"
	"github.com/multiformats/go-multiaddr"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/messagepool"
	"github.com/filecoin-project/lotus-escrow/chain/messagesigner"
	"github.com/filecoin-project/lotus-escrow/chain/msgindex"
	"github.com/filecoin-project/lotus-escrow/chain/stmgr"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/wallet"
	"github.com/filecoin-project/lotus-escrow/escrowmgr"
	"github.com/filecoin-project/lotus-escrow/genesis"
	"github.com/filecoin-project/lotus-escrow/journal"
	"github.com/filecoin-project/lotus-escrow/journal/alerting"
	"github.com/filecoin-project/lotus-escrow/lib/lotuslog"
	_ "github.com/filecoin-project/lotus-escrow/lib/sigs/secp"
	"github.com/filecoin-project/lotus-escrow/node/config"
	"github.com/filecoin-project/lotus-escrow/node/impl"
	"github.com/filecoin-project/lotus-escrow/node/modules"
	"github.com/filecoin-project/lotus-escrow/node/modules/dtypes"
	"github.com/filecoin-project/lotus-escrow/node/modules/helpers"
	"github.com/filecoin-project/lotus-escrow/node/repo"
)

//nolint:deadcode,varcheck
var log = logging.Logger("builder")

// special is a type used to give keys to modules which
// can't really be identified by the returned type
type special struct{ id int }

type invoke int

// Invokes are called in the order they are defined.
//
//nolint:golint
const (
	// SetLogLevelsKey applies configured log levels before any module logs.
	SetLogLevelsKey = invoke(iota)

	// CheckDatastoreKey raises alerts about the repo setup before anything
	// else touches the datastore.
	CheckDatastoreKey

	// chain
	SetGenesisKey

	// daemon
	ExtractApiKey
	SetApiEndpointKey

	_nInvokes // keep this last
)

type Settings struct {
	// modules is a map of constructors for DI
	//
	// In most cases the index will be a reflect. Type of element returned by
	// the constructor, but for some 'constructors' it's hard to specify what's
	// the return type should be (or the constructor returns fx group)
	modules map[interface{}]fx.Option

	// invokes are separate from modules as they can't be referenced by return
	// type, and must be applied in correct order
	invokes []fx.Option

	nodeType repo.RepoType

	Base   bool // Base option applied
	Config bool // Config option applied
}

func defaults() []Option {
	return []Option{
		// global system journal.
		Override(new(journal.DisabledEvents), func() journal.DisabledEvents {
			return journal.EnvDisabledEvents(nil)
		}),
		Override(new(journal.Journal), modules.OpenFilesystemJournal),
		Override(new(*alerting.Alerting), modules.NewAlertingSystem),

		Override(new(helpers.MetricsCtx), context.Background),
		Override(new(dtypes.ShutdownChan), make(chan struct{})),
	}
}

func isType(t repo.RepoType) func(s *Settings) bool {
	return func(s *Settings) bool { return s.nodeType == t }
}

// Base sets up the chain, the message pool and the local services of a full
// node.
func Base() Option {
	return Options(
		// make sure that base is applied before Config.
		// This is important because Config overrides some of Base units
		func(s *Settings) error { s.Base = true; return nil },
		ApplyIf(func(s *Settings) bool { return s.Config },
			Error(errors.New("the Base option must be set before Config option")),
		),

		ApplyIf(isType(repo.FullNode),
			Override(new(*store.ChainStore), modules.ChainStore),
			Override(new(msgindex.MsgIndex), modules.DummyMsgIndex),
			Override(new(*stmgr.StateManager), modules.StateManager),
			Override(new(genesis.Template), modules.GenesisTemplate(config.Genesis{})),
			Override(new(dtypes.NetworkName), modules.NetworkName(config.DefaultFullNode().Genesis)),
			Override(SetGenesisKey, modules.DoSetGenesis),

			Override(new(*wallet.LocalWallet), wallet.NewWallet),
			Override(new(*messagepool.MessagePool), modules.MessagePool),
			Override(new(*messagesigner.MessageSigner), modules.MessageSigner),

			Override(new(*escrowmgr.Store), modules.NewEscrowStore),
			Override(new(*escrowmgr.Manager), modules.NewEscrowManager),
		),
	)
}

// ConfigCommon sets up constructors based on the provided Config
func ConfigCommon(cfg *config.Common) Option {
	return Options(
		func(s *Settings) error { s.Config = true; return nil },
		Override(new(dtypes.APIEndpoint), func() (dtypes.APIEndpoint, error) {
			ma, err := multiaddr.NewMultiaddr(cfg.API.ListenAddress)
			return dtypes.APIEndpoint(ma), err
		}),
		Override(SetApiEndpointKey, func(lr repo.LockedRepo, e dtypes.APIEndpoint) error {
			if cfg.API.RemoteListenAddress == "" {
				return lr.SetAPIEndpoint(multiaddr.Multiaddr(e))
			}
			remote, err := multiaddr.NewMultiaddr(cfg.API.RemoteListenAddress)
			if err != nil {
				return xerrors.Errorf("parsing API.RemoteListenAddress: %w", err)
			}
			return lr.SetAPIEndpoint(remote)
		}),
		Override(SetLogLevelsKey, func() error {
			return lotuslog.SetLevelsFromConfig(cfg.Logging.SubsystemLevels)
		}),
		Override(new(journal.DisabledEvents), func() (journal.DisabledEvents, error) {
			if cfg.Journal.DisabledEvents == "" {
				return journal.EnvDisabledEvents(nil), nil
			}
			disabled, err := journal.ParseDisabledEvents(cfg.Journal.DisabledEvents)
			if err != nil {
				return nil, xerrors.Errorf("parsing Journal.DisabledEvents: %w", err)
			}
			return journal.EnvDisabledEvents(disabled), nil
		}),
	)
}

func ConfigFullNode(c interface{}) Option {
	cfg, ok := c.(*config.FullNode)
	if !ok {
		return Error(xerrors.Errorf("invalid config from repo, got: %T", c))
	}

	return Options(
		ConfigCommon(&cfg.Common),

		Override(new(genesis.Template), modules.GenesisTemplate(cfg.Genesis)),
		Override(new(dtypes.NetworkName), modules.NetworkName(cfg.Genesis)),
		Override(CheckDatastoreKey, modules.CheckDatastoreType(cfg.Datastore)),

		If(cfg.Index.EnableMsgIndex,
			Override(new(msgindex.MsgIndex), modules.MsgIndex),
		),
	)
}

func Repo(r repo.Repo) Option {
	return func(settings *Settings) error {
		lr, err := r.Lock(settings.nodeType)
		if err != nil {
			return err
		}
		c, err := lr.Config()
		if err != nil {
			return err
		}

		return Options(
			Override(new(repo.LockedRepo), modules.LockedRepo(lr)), // module handles closing

			Override(new(dtypes.MetadataDS), modules.Datastore),
			Override(new(types.KeyStore), modules.KeyStore),
			Override(new(*dtypes.APIAlg), modules.APISecret),

			ApplyIf(isType(repo.FullNode), ConfigFullNode(c)),
		)(settings)
	}
}

type FullOption = Option

func FullAPI(out *api.FullNode, fopts ...FullOption) Option {
	return Options(
		func(s *Settings) error {
			s.nodeType = repo.FullNode
			return nil
		},
		Options(fopts...),
		func(s *Settings) error {
			resAPI := &impl.FullNodeAPI{}
			s.invokes[ExtractApiKey] = fx.Populate(resAPI)
			*out = resAPI
			return nil
		},
	)
}

type StopFunc func(context.Context) error

// New builds and starts new escrow node
func New(ctx context.Context, opts ...Option) (StopFunc, error) {
	settings := Settings{
		modules: map[interface{}]fx.Option{},
		invokes: make([]fx.Option, _nInvokes),
	}

	// apply module options in the right order
	if err := Options(Options(defaults()...), Options(opts...))(&settings); err != nil {
		return nil, xerrors.Errorf("applying node options failed: %w", err)
	}

	// gather constructors for fx.Options
	ctors := make([]fx.Option, 0, len(settings.modules))
	for _, opt := range settings.modules {
		ctors = append(ctors, opt)
	}

	// fill holes in invokes for use in fx.Options
	for i, opt := range settings.invokes {
		if opt == nil {
			settings.invokes[i] = fx.Options()
		}
	}

	app := fx.New(
		fx.Options(ctors...),
		fx.Options(settings.invokes...),

		fx.NopLogger,
	)

	if err := app.Start(ctx); err != nil {
		// comment fx.NopLogger few lines above for easier debugging
		return nil, xerrors.Errorf("starting node: %w", err)
	}

	return app.Stop, nil
}

// In-memory / testing

// Test keeps a node entirely in memory: no journal files, no API endpoint
// file.
func Test() Option {
	return Options(
		Override(new(journal.Journal), journal.NilJournal),
		Unset(SetApiEndpointKey),
	)
}
