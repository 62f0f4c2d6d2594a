package escrowmgr

import (
	"errors"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-statestore"

	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var ErrEscrowNotTracked = errors.New("escrow is not tracked by this node")

// EscrowRecord is what the node remembers about an escrow it created.
type EscrowRecord struct {
	// Escrow is the ID address of the escrow actor
	Escrow address.Address
	// Robust is the reorg-stable address computed at creation
	Robust address.Address
	Buyer  address.Address
	Seller address.Address
	Amount types.Coin
	// Message is the CID of the creating message
	Message   cid.Cid
	CreatedAt uint64
}

// Store keeps escrow records keyed by the escrow ID address.
type Store struct {
	ds *statestore.StateStore
}

func NewStore(ds datastore.Batching) *Store {
	return &Store{
		ds: statestore.New(namespace.Wrap(ds, datastore.NewKey("/escrows/"))),
	}
}

// Track records a newly created escrow.
func (s *Store) Track(rec *EscrowRecord) error {
	if err := s.ds.Begin(rec.Escrow, rec); err != nil {
		return xerrors.Errorf("tracking escrow %s: %w", rec.Escrow, err)
	}
	return nil
}

// ByAddress returns the record of the escrow with the given ID address.
func (s *Store) ByAddress(escrow address.Address) (*EscrowRecord, error) {
	has, err := s.ds.Has(escrow)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, xerrors.Errorf("%s: %w", escrow, ErrEscrowNotTracked)
	}

	var rec EscrowRecord
	if err := s.ds.Get(escrow).Get(&rec); err != nil {
		return nil, xerrors.Errorf("loading escrow %s: %w", escrow, err)
	}
	return &rec, nil
}

// List returns every tracked escrow.
func (s *Store) List() ([]EscrowRecord, error) {
	var recs []EscrowRecord
	if err := s.ds.List(&recs); err != nil {
		return nil, xerrors.Errorf("listing escrows: %w", err)
	}
	return recs, nil
}
