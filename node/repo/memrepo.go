package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/multiformats/go-multiaddr"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// MemRepo keeps everything in memory. Only sqlite databases and the journal,
// which need real files, go to a temporary directory removed by Cleanup.
type MemRepo struct {
	lk sync.Mutex

	// generation of the current lock, 0 when unlocked
	locked uint64
	gen    uint64

	ma     multiaddr.Multiaddr
	token  []byte
	config interface{}

	datastore datastore.Datastore
	keystore  map[string]types.KeyInfo

	tempDir string
}

var _ Repo = &MemRepo{}

// MemRepoOptions contains options for memory repo
type MemRepoOptions struct {
	Ds       datastore.Datastore
	KeyStore map[string]types.KeyInfo
	// Config replaces the default config of the locked repo type
	Config interface{}
}

// NewMemory creates new memory based repo. opts and any of its fields can be
// nil.
func NewMemory(opts *MemRepoOptions) *MemRepo {
	if opts == nil {
		opts = &MemRepoOptions{}
	}
	mem := &MemRepo{
		datastore: opts.Ds,
		keystore:  opts.KeyStore,
		config:    opts.Config,
	}
	if mem.datastore == nil {
		mem.datastore = dssync.MutexWrap(datastore.NewMapDatastore())
	}
	if mem.keystore == nil {
		mem.keystore = map[string]types.KeyInfo{}
	}
	return mem
}

func (mem *MemRepo) APIEndpoint() (multiaddr.Multiaddr, error) {
	mem.lk.Lock()
	defer mem.lk.Unlock()
	if mem.ma == nil {
		return nil, ErrNoAPIEndpoint
	}
	return mem.ma, nil
}

func (mem *MemRepo) APIToken() ([]byte, error) {
	mem.lk.Lock()
	defer mem.lk.Unlock()
	if mem.token == nil {
		return nil, ErrNoAPIToken
	}
	return mem.token, nil
}

func (mem *MemRepo) Lock(t RepoType) (LockedRepo, error) {
	mem.lk.Lock()
	defer mem.lk.Unlock()

	if mem.locked != 0 {
		return nil, ErrRepoAlreadyLocked
	}
	mem.gen++
	mem.locked = mem.gen

	return &lockedMemRepo{mem: mem, t: t, gen: mem.gen}, nil
}

// Cleanup removes the temporary directory, if one was created.
func (mem *MemRepo) Cleanup() {
	mem.lk.Lock()
	defer mem.lk.Unlock()

	if mem.tempDir == "" {
		return
	}
	if err := os.RemoveAll(mem.tempDir); err != nil {
		log.Errorw("cleanup test memrepo", "error", err)
	}
	mem.tempDir = ""
}

// lockedMemRepo is a handle on a MemRepo lock. Once closed every call fails
// with ErrClosedRepo, even if the repo was locked again.
type lockedMemRepo struct {
	mem *MemRepo
	t   RepoType
	gen uint64
}

var _ types.KeyStore = (*lockedMemRepo)(nil)

// with runs cb under the repo mutex if this handle is still the lock holder.
func (lmem *lockedMemRepo) with(cb func(mem *MemRepo) error) error {
	lmem.mem.lk.Lock()
	defer lmem.mem.lk.Unlock()

	if lmem.mem.locked != lmem.gen {
		return ErrClosedRepo
	}
	return cb(lmem.mem)
}

func (lmem *lockedMemRepo) Close() error {
	return lmem.with(func(mem *MemRepo) error {
		mem.locked = 0
		mem.ma = nil
		return nil
	})
}

func (lmem *lockedMemRepo) Readonly() bool {
	return false
}

func (lmem *lockedMemRepo) Path() string {
	var p string
	err := lmem.with(func(mem *MemRepo) error {
		if mem.tempDir == "" {
			t, err := os.MkdirTemp(os.TempDir(), "lotus-escrow-memrepo-")
			if err != nil {
				return err
			}
			mem.tempDir = t
		}
		p = mem.tempDir
		return nil
	})
	if err != nil {
		panic(err) // memory repos only back tests
	}
	return p
}

func (lmem *lockedMemRepo) SqlitePath() (string, error) {
	p := filepath.Join(lmem.Path(), fsSqlite)
	if err := os.MkdirAll(p, 0755); err != nil { //nolint: gosec
		return "", err
	}
	return p, nil
}

func (lmem *lockedMemRepo) Datastore(_ context.Context, ns string) (datastore.Batching, error) {
	var ds datastore.Batching
	err := lmem.with(func(mem *MemRepo) error {
		ds = namespace.Wrap(mem.datastore, datastore.NewKey(ns))
		return nil
	})
	return ds, err
}

func (lmem *lockedMemRepo) Config() (interface{}, error) {
	var cfg interface{}
	err := lmem.with(func(mem *MemRepo) error {
		if mem.config == nil {
			mem.config = lmem.t.Config()
		}
		cfg = mem.config
		return nil
	})
	return cfg, err
}

func (lmem *lockedMemRepo) SetConfig(c func(interface{})) error {
	return lmem.with(func(mem *MemRepo) error {
		if mem.config == nil {
			mem.config = lmem.t.Config()
		}
		c(mem.config)
		return nil
	})
}

func (lmem *lockedMemRepo) SetAPIEndpoint(ma multiaddr.Multiaddr) error {
	return lmem.with(func(mem *MemRepo) error {
		mem.ma = ma
		return nil
	})
}

func (lmem *lockedMemRepo) SetAPIToken(token []byte) error {
	return lmem.with(func(mem *MemRepo) error {
		mem.token = token
		return nil
	})
}

func (lmem *lockedMemRepo) KeyStore() (types.KeyStore, error) {
	if err := lmem.with(func(*MemRepo) error { return nil }); err != nil {
		return nil, err
	}
	return lmem, nil
}

func (lmem *lockedMemRepo) List() ([]string, error) {
	var res []string
	err := lmem.with(func(mem *MemRepo) error {
		res = make([]string, 0, len(mem.keystore))
		for k := range mem.keystore {
			res = append(res, k)
		}
		return nil
	})
	return res, err
}

func (lmem *lockedMemRepo) Get(name string) (types.KeyInfo, error) {
	var ki types.KeyInfo
	err := lmem.with(func(mem *MemRepo) error {
		k, ok := mem.keystore[name]
		if !ok {
			return xerrors.Errorf("getting key '%s': %w", name, types.ErrKeyInfoNotFound)
		}
		ki = k
		return nil
	})
	return ki, err
}

func (lmem *lockedMemRepo) Put(name string, key types.KeyInfo) error {
	return lmem.with(func(mem *MemRepo) error {
		candidate := name
		for n := 1; ; n++ {
			if _, taken := mem.keystore[candidate]; !taken {
				mem.keystore[candidate] = key
				return nil
			}
			if !strings.HasPrefix(name, KTrashPrefix) {
				return xerrors.Errorf("putting key '%s': %w", name, types.ErrKeyExists)
			}
			candidate = fmt.Sprintf("%s-%d", name, n)
		}
	})
}

func (lmem *lockedMemRepo) Delete(name string) error {
	return lmem.with(func(mem *MemRepo) error {
		if _, ok := mem.keystore[name]; !ok {
			return xerrors.Errorf("deleting key '%s': %w", name, types.ErrKeyInfoNotFound)
		}
		delete(mem.keystore, name)
		return nil
	})
}
