package dtypes

import (
	"github.com/ipfs/go-datastore"
)

// MetadataDS stores state, receipts and node bookkeeping.
type MetadataDS datastore.Batching

// NetworkName is the name the genesis state was created with.
type NetworkName string
