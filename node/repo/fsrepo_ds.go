package repo

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	badgerds "github.com/ipfs/go-ds-badger2"
	levelds "github.com/ipfs/go-ds-leveldb"
	measure "github.com/ipfs/go-ds-measure"
	ldbopts "github.com/syndtr/goleveldb/leveldb/opt"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/node/config"
)

type dsCtor func(path string, readonly bool) (datastore.Batching, error)

var fsDatastores = []string{"metadata"}

var dsCtors = map[string]dsCtor{
	config.DatastoreLevelDB: levelDs,
	config.DatastoreBadger:  badgerDs,
	config.DatastoreMemory:  memoryDs,
}

func levelDs(path string, readonly bool) (datastore.Batching, error) {
	return levelds.NewDatastore(path, &levelds.Options{
		Compression: ldbopts.NoCompression,
		NoSync:      false,
		Strict:      ldbopts.StrictAll,
		ReadOnly:    readonly,
	})
}

func badgerDs(path string, readonly bool) (datastore.Batching, error) {
	opts := badgerds.DefaultOptions
	opts.ReadOnly = readonly

	// state values are small, keep them in the LSM tree
	opts.ValueThreshold = 1 << 10

	return badgerds.NewDatastore(path, &opts)
}

func memoryDs(string, bool) (datastore.Batching, error) {
	return dssync.MutexWrap(datastore.NewMapDatastore()), nil
}

func (fsr *fsLockedRepo) datastoreType() (string, error) {
	c, err := fsr.loadConfigFromDisk()
	if err != nil {
		return "", xerrors.Errorf("loading config: %w", err)
	}
	fn, ok := c.(*config.FullNode)
	if !ok || fn.Datastore.Type == "" {
		return config.DatastoreLevelDB, nil
	}
	return fn.Datastore.Type, nil
}

func (fsr *fsLockedRepo) openDatastores(readonly bool) (map[string]datastore.Batching, error) {
	if err := os.MkdirAll(fsr.join(fsDatastore), 0755); err != nil {
		return nil, xerrors.Errorf("mkdir %s: %w", fsr.join(fsDatastore), err)
	}

	typ, err := fsr.datastoreType()
	if err != nil {
		return nil, err
	}
	ctor, ok := dsCtors[typ]
	if !ok {
		return nil, xerrors.Errorf("unknown datastore type %q", typ)
	}

	out := map[string]datastore.Batching{}

	for _, p := range fsDatastores {
		ds, err := ctor(fsr.join(filepath.Join(fsDatastore, p)), readonly)
		if err != nil {
			return nil, xerrors.Errorf("opening datastore %s: %w", p, err)
		}

		ds = measure.New("fsrepo."+p, ds)

		out[datastore.NewKey(p).String()] = ds
	}

	return out, nil
}

func (fsr *fsLockedRepo) Datastore(_ context.Context, ns string) (datastore.Batching, error) {
	fsr.dsOnce.Do(func() {
		fsr.ds, fsr.dsErr = fsr.openDatastores(fsr.readonly)
	})

	if fsr.dsErr != nil {
		return nil, fsr.dsErr
	}
	ds, ok := fsr.ds[ns]
	if ok {
		return ds, nil
	}
	return nil, xerrors.Errorf("no such datastore: %s", ns)
}
