package state

import (
	"bytes"
	"context"
	"encoding/binary"
	"sort"
	"strings"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/query"
	logging "github.com/ipfs/go-log/v2"
	"github.com/multiformats/go-base32"
	"go.opencensus.io/trace"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var log = logging.Logger("statetree")

var (
	actorsPrefix  = datastore.NewKey("/actors")
	addrsPrefix   = datastore.NewKey("/addrs")
	storagePrefix = datastore.NewKey("/storage")
	nextIDKey     = datastore.NewKey("/meta/nextid")
)

// StateTree stores actors by their ID address, the mapping from robust
// addresses to IDs, and every actor's private storage. Writes are kept in
// memory layers until Flush writes them out in a single batch.
type StateTree struct {
	ds    datastore.Batching
	snaps *stateSnaps
}

type stateSnaps struct {
	layers []map[datastore.Key]streeOp
}

type streeOp struct {
	Value  []byte
	Delete bool
}

func newStateSnaps() *stateSnaps {
	return &stateSnaps{
		layers: []map[datastore.Key]streeOp{make(map[datastore.Key]streeOp)},
	}
}

func (ss *stateSnaps) addLayer() {
	ss.layers = append(ss.layers, make(map[datastore.Key]streeOp))
}

func (ss *stateSnaps) dropLayer() {
	ss.layers[len(ss.layers)-1] = nil // allow it to be GCed
	ss.layers = ss.layers[:len(ss.layers)-1]
}

func (ss *stateSnaps) mergeLastLayer() {
	last := ss.layers[len(ss.layers)-1]
	nextLast := ss.layers[len(ss.layers)-2]

	for k, v := range last {
		nextLast[k] = v
	}

	ss.dropLayer()
}

// get returns the buffered op for k, if any layer has one.
func (ss *stateSnaps) get(k datastore.Key) (streeOp, bool) {
	for i := len(ss.layers) - 1; i >= 0; i-- {
		op, ok := ss.layers[i][k]
		if ok {
			return op, true
		}
	}
	return streeOp{}, false
}

func (ss *stateSnaps) put(k datastore.Key, v []byte) {
	ss.layers[len(ss.layers)-1][k] = streeOp{Value: v}
}

func (ss *stateSnaps) delete(k datastore.Key) {
	ss.layers[len(ss.layers)-1][k] = streeOp{Delete: true}
}

func NewStateTree(ds datastore.Batching) *StateTree {
	return &StateTree{
		ds:    ds,
		snaps: newStateSnaps(),
	}
}

func (st *StateTree) get(ctx context.Context, k datastore.Key) ([]byte, bool, error) {
	if op, ok := st.snaps.get(k); ok {
		if op.Delete {
			return nil, false, nil
		}
		return op.Value, true, nil
	}

	v, err := st.ds.Get(ctx, k)
	switch {
	case err == datastore.ErrNotFound:
		return nil, false, nil
	case err != nil:
		return nil, false, xerrors.Errorf("datastore get %s: %w", k, err)
	}
	return v, true, nil
}

func actorKey(id address.Address) datastore.Key {
	return actorsPrefix.ChildString(id.String())
}

func addrKey(addr address.Address) datastore.Key {
	return addrsPrefix.ChildString(addr.String())
}

// storageKey maps an actor storage key to a datastore key. Storage keys are
// arbitrary strings, so they are base32 encoded to keep them a single path
// segment.
func storageKey(id address.Address, key string) datastore.Key {
	return storagePrefix.ChildString(id.String()).ChildString(base32.RawStdEncoding.EncodeToString([]byte(key)))
}

// LookupID resolves addr to its ID address. ID addresses resolve to
// themselves whether or not an actor exists for them.
func (st *StateTree) LookupID(addr address.Address) (address.Address, error) {
	if addr.Protocol() == address.ID {
		return addr, nil
	}

	v, found, err := st.get(context.TODO(), addrKey(addr))
	if err != nil {
		return address.Undef, xerrors.Errorf("resolve address %s: %w", addr, err)
	}
	if !found {
		return address.Undef, xerrors.Errorf("resolution lookup failed (%s): %w", addr, types.ErrActorNotFound)
	}

	id, err := address.NewFromBytes(v)
	if err != nil {
		return address.Undef, xerrors.Errorf("decoding ID address for %s: %w", addr, err)
	}
	return id, nil
}

// RegisterNewAddress assigns the next free ID to addr.
func (st *StateTree) RegisterNewAddress(addr address.Address) (address.Address, error) {
	if addr.Protocol() == address.ID {
		return address.Undef, xerrors.Errorf("cannot register ID address %s", addr)
	}

	ctx := context.TODO()
	if _, found, err := st.get(ctx, addrKey(addr)); err != nil {
		return address.Undef, err
	} else if found {
		return address.Undef, xerrors.Errorf("address %s is already registered", addr)
	}

	next := uint64(build.FirstNonSingletonActorID)
	v, found, err := st.get(ctx, nextIDKey)
	if err != nil {
		return address.Undef, err
	}
	if found {
		if len(v) != 8 {
			return address.Undef, xerrors.Errorf("corrupt next ID record (%d bytes)", len(v))
		}
		next = binary.BigEndian.Uint64(v)
	}

	id, err := address.NewIDAddress(next)
	if err != nil {
		return address.Undef, err
	}

	nb := make([]byte, 8)
	binary.BigEndian.PutUint64(nb, next+1)
	st.snaps.put(nextIDKey, nb)
	st.snaps.put(addrKey(addr), id.Bytes())

	return id, nil
}

// GetActor returns the actor from any type of `addr` provided.
func (st *StateTree) GetActor(addr address.Address) (*types.Actor, error) {
	if addr == address.Undef {
		return nil, xerrors.Errorf("GetActor called on undefined address")
	}

	// Transform `addr` to its ID format.
	iaddr, err := st.LookupID(addr)
	if err != nil {
		return nil, xerrors.Errorf("address resolution: %w", err)
	}

	v, found, err := st.get(context.TODO(), actorKey(iaddr))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrActorNotFound
	}

	var act types.Actor
	if err := act.UnmarshalCBOR(bytes.NewReader(v)); err != nil {
		return nil, xerrors.Errorf("decoding actor %s: %w", iaddr, err)
	}
	return &act, nil
}

func (st *StateTree) SetActor(addr address.Address, act *types.Actor) error {
	iaddr, err := st.LookupID(addr)
	if err != nil {
		return xerrors.Errorf("ID lookup failed: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := act.MarshalCBOR(buf); err != nil {
		return xerrors.Errorf("encoding actor %s: %w", iaddr, err)
	}

	st.snaps.put(actorKey(iaddr), buf.Bytes())
	return nil
}

func (st *StateTree) MutateActor(addr address.Address, f func(*types.Actor) error) error {
	act, err := st.GetActor(addr)
	if err != nil {
		return err
	}

	if err := f(act); err != nil {
		return err
	}

	return st.SetActor(addr, act)
}

// ListActors returns the ID addresses of every actor, sorted.
func (st *StateTree) ListActors(ctx context.Context) ([]address.Address, error) {
	res, err := st.ds.Query(ctx, query.Query{Prefix: actorsPrefix.String(), KeysOnly: true})
	if err != nil {
		return nil, xerrors.Errorf("querying actors: %w", err)
	}
	entries, err := res.Rest()
	if err != nil {
		return nil, xerrors.Errorf("iterating actors: %w", err)
	}

	keys := map[datastore.Key]struct{}{}
	for _, e := range entries {
		keys[datastore.NewKey(e.Key)] = struct{}{}
	}

	for _, layer := range st.snaps.layers {
		for k, op := range layer {
			if !k.IsDescendantOf(actorsPrefix) {
				continue
			}
			if op.Delete {
				delete(keys, k)
			} else {
				keys[k] = struct{}{}
			}
		}
	}

	out := make([]address.Address, 0, len(keys))
	for k := range keys {
		a, err := address.NewFromString(strings.TrimPrefix(k.BaseNamespace(), "/"))
		if err != nil {
			return nil, xerrors.Errorf("parsing actor key %s: %w", k, err)
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		ii, _ := address.IDFromAddress(out[i])
		ij, _ := address.IDFromAddress(out[j])
		return ii < ij
	})
	return out, nil
}

// StorageGet returns the raw value stored by actor id under key.
func (st *StateTree) StorageGet(id address.Address, key string) ([]byte, bool, error) {
	return st.get(context.TODO(), storageKey(id, key))
}

func (st *StateTree) StoragePut(id address.Address, key string, value []byte) {
	st.snaps.put(storageKey(id, key), value)
}

func (st *StateTree) StorageDelete(id address.Address, key string) {
	st.snaps.delete(storageKey(id, key))
}

// Flush writes every buffered change to the datastore in one batch. Pending
// snapshots must have been cleared first.
func (st *StateTree) Flush(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "stateTree.Flush")
	defer span.End()
	if len(st.snaps.layers) != 1 {
		return xerrors.Errorf("tried to flush state tree with snapshots on the stack")
	}

	b, err := st.ds.Batch(ctx)
	if err != nil {
		return xerrors.Errorf("opening batch: %w", err)
	}

	if err := st.FlushTo(ctx, b); err != nil {
		return err
	}

	return b.Commit(ctx)
}

// FlushTo stages every buffered change in w without committing it, so that
// callers can add their own writes to the same batch.
func (st *StateTree) FlushTo(ctx context.Context, w datastore.Write) error {
	if len(st.snaps.layers) != 1 {
		return xerrors.Errorf("tried to flush state tree with snapshots on the stack")
	}

	for k, op := range st.snaps.layers[0] {
		if op.Delete {
			if err := w.Delete(ctx, k); err != nil {
				return xerrors.Errorf("deleting %s: %w", k, err)
			}
			continue
		}
		if err := w.Put(ctx, k, op.Value); err != nil {
			return xerrors.Errorf("writing %s: %w", k, err)
		}
	}

	log.Debugw("flushed state tree", "writes", len(st.snaps.layers[0]))
	st.snaps = newStateSnaps()
	return nil
}

func (st *StateTree) Snapshot(ctx context.Context) error {
	_, span := trace.StartSpan(ctx, "stateTree.SnapShot")
	defer span.End()

	st.snaps.addLayer()

	return nil
}

func (st *StateTree) ClearSnapshot() {
	st.snaps.mergeLastLayer()
}

func (st *StateTree) Revert() error {
	st.snaps.dropLayer()
	st.snaps.addLayer()

	return nil
}
