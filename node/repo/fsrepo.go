package repo

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ipfs/go-datastore"
	fslock "github.com/ipfs/go-fs-lock"
	logging "github.com/ipfs/go-log/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/multiformats/go-multiaddr"
	"go.uber.org/multierr"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/node/config"
)

const (
	fsAPI       = "api"
	fsAPIToken  = "token"
	fsConfig    = "config.toml"
	fsDatastore = "datastore"
	fsSqlite    = "sqlite"
	fsLock      = "repo.lock"
	fsKeystore  = "keystore"
	fsVersion   = "version"
)

// repoVersion is bumped whenever the on-disk layout changes in a way older
// binaries can't read.
const repoVersion = "1"

var log = logging.Logger("repo")

var (
	ErrRepoExists  = xerrors.New("repo exists")
	ErrRepoVersion = xerrors.New("unsupported repo version")
)

// FsRepo is a repo rooted at a directory, use NewFS to create one.
//
// Layout:
//
//	config.toml   node config, see node/config
//	version       layout version
//	keystore/     one 0600 file per key, names base32 encoded
//	datastore/    metadata datastore (leveldb, badger)
//	sqlite/       message index
//	journal/      event journal
//	api, token    written by a running daemon for the CLI
type FsRepo struct {
	path       string
	configPath string
}

var _ Repo = &FsRepo{}

// NewFS creates a repo instance based on a path on file system
func NewFS(path string) (*FsRepo, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	return &FsRepo{
		path:       path,
		configPath: filepath.Join(path, fsConfig),
	}, nil
}

func (fsr *FsRepo) SetConfigPath(cfgPath string) {
	fsr.configPath = cfgPath
}

// Exists reports whether the repo was initialized. The keystore is the last
// thing Init creates.
func (fsr *FsRepo) Exists() (bool, error) {
	_, err := os.Stat(filepath.Join(fsr.path, fsKeystore))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// Init creates the repo layout. It returns ErrRepoExists, after checking the
// layout version, when the repo was initialized before.
func (fsr *FsRepo) Init(t RepoType) error {
	exist, err := fsr.Exists()
	if err != nil {
		return err
	}
	if exist {
		if err := fsr.checkVersion(); err != nil {
			return err
		}
		return ErrRepoExists
	}

	log.Infow("initializing repo", "path", fsr.path, "type", t)
	if err := os.MkdirAll(fsr.path, 0755); err != nil && !os.IsExist(err) { //nolint: gosec
		return err
	}

	if err := os.WriteFile(filepath.Join(fsr.path, fsVersion), []byte(repoVersion), 0644); err != nil { //nolint: gosec
		return xerrors.Errorf("write repo version: %w", err)
	}

	if err := fsr.initConfig(t); err != nil {
		return xerrors.Errorf("init config: %w", err)
	}

	return os.Mkdir(filepath.Join(fsr.path, fsKeystore), 0700)
}

// initConfig writes the defaults commented out, so that the file documents
// every option while later default changes still apply.
func (fsr *FsRepo) initConfig(t RepoType) error {
	if _, err := os.Stat(fsr.configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	comm, err := config.ConfigComment(t.Config())
	if err != nil {
		return xerrors.Errorf("comment: %w", err)
	}

	return os.WriteFile(fsr.configPath, comm, 0644) //nolint: gosec
}

func (fsr *FsRepo) checkVersion() error {
	v, err := fsr.readFile(fsVersion)
	if os.IsNotExist(err) {
		// initialized before the version file existed
		return nil
	} else if err != nil {
		return err
	}
	if string(v) != repoVersion {
		return xerrors.Errorf("repo %s has version %q, expected %q: %w", fsr.path, v, repoVersion, ErrRepoVersion)
	}
	return nil
}

func (fsr *FsRepo) readFile(name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(fsr.path, name))
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(b), nil
}

// APIEndpoint returns endpoint of API in this repo
func (fsr *FsRepo) APIEndpoint() (multiaddr.Multiaddr, error) {
	data, err := fsr.readFile(fsAPI)
	if os.IsNotExist(err) {
		return nil, ErrNoAPIEndpoint
	} else if err != nil {
		return nil, xerrors.Errorf("reading api endpoint: %w", err)
	}

	return multiaddr.NewMultiaddr(strings.TrimSpace(string(data)))
}

func (fsr *FsRepo) APIToken() ([]byte, error) {
	tb, err := fsr.readFile(fsAPIToken)
	if os.IsNotExist(err) {
		return nil, ErrNoAPIToken
	}
	return tb, err
}

// Lock acquires exclusive lock on this repo
func (fsr *FsRepo) Lock(repoType RepoType) (LockedRepo, error) {
	return fsr.lock(repoType, false)
}

// LockRO is like Lock, except datastores will work in read-only mode
func (fsr *FsRepo) LockRO(repoType RepoType) (LockedRepo, error) {
	return fsr.lock(repoType, true)
}

func (fsr *FsRepo) lock(repoType RepoType, readonly bool) (LockedRepo, error) {
	if err := fsr.checkVersion(); err != nil {
		return nil, err
	}

	locked, err := fslock.Locked(fsr.path, fsLock)
	if err != nil {
		return nil, xerrors.Errorf("could not check lock status: %w", err)
	}
	if locked {
		return nil, ErrRepoAlreadyLocked
	}

	closer, err := fslock.Lock(fsr.path, fsLock)
	if err != nil {
		return nil, xerrors.Errorf("could not lock the repo: %w", err)
	}

	lr := &fsLockedRepo{
		path:       fsr.path,
		configPath: fsr.configPath,
		repoType:   repoType,
		closer:     closer,
		readonly:   readonly,
	}
	lr.keys = &fsKeyStore{dir: lr.join(fsKeystore), valid: lr.stillValid}
	return lr, nil
}

type fsLockedRepo struct {
	path       string
	configPath string
	repoType   RepoType
	closer     io.Closer
	readonly   bool

	keys *fsKeyStore

	ds     map[string]datastore.Batching
	dsErr  error
	dsOnce sync.Once

	sqlPath string
	sqlErr  error
	sqlOnce sync.Once

	configLk sync.Mutex
}

func (fsr *fsLockedRepo) Readonly() bool {
	return fsr.readonly
}

func (fsr *fsLockedRepo) Path() string {
	return fsr.path
}

// Close drops the api file so that clients stop dialing a dead daemon, then
// closes datastores and the lock.
func (fsr *fsLockedRepo) Close() error {
	if err := fsr.stillValid(); err != nil {
		return err
	}

	var closeErr error
	if err := os.Remove(fsr.join(fsAPI)); err != nil && !os.IsNotExist(err) {
		closeErr = multierr.Append(closeErr, xerrors.Errorf("could not remove API file: %w", err))
	}

	for ns, ds := range fsr.ds {
		if err := ds.Close(); err != nil {
			closeErr = multierr.Append(closeErr, xerrors.Errorf("could not close datastore %s: %w", ns, err))
		}
	}

	closeErr = multierr.Append(closeErr, fsr.closer.Close())
	fsr.closer = nil
	return closeErr
}

func (fsr *fsLockedRepo) SqlitePath() (string, error) {
	fsr.sqlOnce.Do(func() {
		path := fsr.join(fsSqlite)
		if err := os.MkdirAll(path, 0755); err != nil { //nolint: gosec
			fsr.sqlErr = err
			return
		}
		fsr.sqlPath = path
	})

	return fsr.sqlPath, fsr.sqlErr
}

// join joins path elements with fsr.path
func (fsr *fsLockedRepo) join(paths ...string) string {
	return filepath.Join(append([]string{fsr.path}, paths...)...)
}

func (fsr *fsLockedRepo) stillValid() error {
	if fsr.closer == nil {
		return ErrClosedRepo
	}
	return nil
}

func (fsr *fsLockedRepo) Config() (interface{}, error) {
	fsr.configLk.Lock()
	defer fsr.configLk.Unlock()

	return fsr.loadConfigFromDisk()
}

func (fsr *fsLockedRepo) loadConfigFromDisk() (interface{}, error) {
	return config.FromFile(fsr.configPath, fsr.repoType.Config())
}

// SetConfig loads the config, applies c and writes the result back in full.
func (fsr *fsLockedRepo) SetConfig(c func(interface{})) error {
	if err := fsr.stillValid(); err != nil {
		return err
	}
	if fsr.readonly {
		return xerrors.Errorf("setting config: repo locked read-only")
	}

	fsr.configLk.Lock()
	defer fsr.configLk.Unlock()

	cfg, err := fsr.loadConfigFromDisk()
	if err != nil {
		return err
	}

	c(cfg)

	b, err := config.ConfigUpdate(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(fsr.configPath, b, 0644) //nolint: gosec
}

func (fsr *fsLockedRepo) SetAPIEndpoint(ma multiaddr.Multiaddr) error {
	if err := fsr.stillValid(); err != nil {
		return err
	}
	return os.WriteFile(fsr.join(fsAPI), []byte(ma.String()), 0644) //nolint: gosec
}

func (fsr *fsLockedRepo) SetAPIToken(token []byte) error {
	if err := fsr.stillValid(); err != nil {
		return err
	}
	return os.WriteFile(fsr.join(fsAPIToken), token, 0600)
}

func (fsr *fsLockedRepo) KeyStore() (types.KeyStore, error) {
	if err := fsr.stillValid(); err != nil {
		return nil, err
	}
	return fsr.keys, nil
}
