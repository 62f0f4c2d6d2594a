package wallet

import (
	"sync"

	"github.com/filecoin-project/lotus-escrow/chain/types"
)

type MemKeyStore struct {
	lk sync.Mutex
	m  map[string]types.KeyInfo
}

func NewMemKeyStore() *MemKeyStore {
	return &MemKeyStore{
		m: make(map[string]types.KeyInfo),
	}
}

// List lists all the keys stored in the KeyStore
func (mks *MemKeyStore) List() ([]string, error) {
	mks.lk.Lock()
	defer mks.lk.Unlock()

	var out []string
	for k := range mks.m {
		out = append(out, k)
	}
	return out, nil
}

// Get gets a key out of keystore and returns KeyInfo corresponding to named key
func (mks *MemKeyStore) Get(k string) (types.KeyInfo, error) {
	mks.lk.Lock()
	defer mks.lk.Unlock()

	ki, ok := mks.m[k]
	if !ok {
		return types.KeyInfo{}, types.ErrKeyInfoNotFound
	}

	return ki, nil
}

// Put saves a key info under given name
func (mks *MemKeyStore) Put(k string, ki types.KeyInfo) error {
	mks.lk.Lock()
	defer mks.lk.Unlock()

	mks.m[k] = ki
	return nil
}

// Delete removes a key from keystore
func (mks *MemKeyStore) Delete(k string) error {
	mks.lk.Lock()
	defer mks.lk.Unlock()

	if _, ok := mks.m[k]; !ok {
		return types.ErrKeyInfoNotFound
	}
	delete(mks.m, k)
	return nil
}

var _ (types.KeyStore) = (*MemKeyStore)(nil)
