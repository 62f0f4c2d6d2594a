package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/multiformats/go-base32"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// KTrashPrefix marks keys the wallet deleted. Storing a trash key under a
// taken name appends a counter instead of failing.
const KTrashPrefix = "trash-"

// fsKeyStore keeps one JSON encoded KeyInfo per file. Files must not be
// readable by group or others.
type fsKeyStore struct {
	dir   string
	valid func() error
}

var _ types.KeyStore = (*fsKeyStore)(nil)

func (ks *fsKeyStore) keyPath(name string) string {
	return filepath.Join(ks.dir, base32.RawStdEncoding.EncodeToString([]byte(name)))
}

func checkKeyPerm(name string, fi os.FileInfo) error {
	if fi.Mode()&0077 != 0 {
		return xerrors.Errorf("permissions of key: '%s' are too relaxed, required: 0600, got: %#o", name, fi.Mode())
	}
	return nil
}

func (ks *fsKeyStore) List() ([]string, error) {
	if err := ks.valid(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(ks.dir)
	if err != nil {
		return nil, xerrors.Errorf("reading keystore dir: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		fi, err := e.Info()
		if err != nil {
			return nil, xerrors.Errorf("stat key '%s': %w", e.Name(), err)
		}
		if err := checkKeyPerm(e.Name(), fi); err != nil {
			return nil, err
		}
		name, err := base32.RawStdEncoding.DecodeString(e.Name())
		if err != nil {
			return nil, xerrors.Errorf("decoding key name '%s': %w", e.Name(), err)
		}
		keys = append(keys, string(name))
	}
	return keys, nil
}

func (ks *fsKeyStore) Get(name string) (types.KeyInfo, error) {
	if err := ks.valid(); err != nil {
		return types.KeyInfo{}, err
	}

	p := ks.keyPath(name)
	fi, err := os.Stat(p)
	switch {
	case os.IsNotExist(err):
		return types.KeyInfo{}, xerrors.Errorf("opening key '%s': %w", name, types.ErrKeyInfoNotFound)
	case err != nil:
		return types.KeyInfo{}, xerrors.Errorf("opening key '%s': %w", name, err)
	}
	if err := checkKeyPerm(name, fi); err != nil {
		return types.KeyInfo{}, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return types.KeyInfo{}, xerrors.Errorf("reading key '%s': %w", name, err)
	}

	var ki types.KeyInfo
	if err := json.Unmarshal(data, &ki); err != nil {
		return types.KeyInfo{}, xerrors.Errorf("decoding key '%s': %w", name, err)
	}
	return ki, nil
}

func (ks *fsKeyStore) Put(name string, info types.KeyInfo) error {
	if err := ks.valid(); err != nil {
		return err
	}

	data, err := json.Marshal(info)
	if err != nil {
		return xerrors.Errorf("encoding key '%s': %w", name, err)
	}

	candidate := name
	for n := 1; ; n++ {
		// O_EXCL keeps two writers from both claiming the same name
		f, err := os.OpenFile(ks.keyPath(candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if os.IsExist(err) {
			if !strings.HasPrefix(name, KTrashPrefix) {
				return xerrors.Errorf("checking key before put '%s': %w", name, types.ErrKeyExists)
			}
			candidate = fmt.Sprintf("%s-%d", name, n)
			continue
		}
		if err != nil {
			return xerrors.Errorf("creating key '%s': %w", candidate, err)
		}

		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return xerrors.Errorf("writing key '%s': %w", candidate, err)
		}
		return f.Close()
	}
}

func (ks *fsKeyStore) Delete(name string) error {
	if err := ks.valid(); err != nil {
		return err
	}

	err := os.Remove(ks.keyPath(name))
	switch {
	case os.IsNotExist(err):
		return xerrors.Errorf("deleting key '%s': %w", name, types.ErrKeyInfoNotFound)
	case err != nil:
		return xerrors.Errorf("deleting key '%s': %w", name, err)
	}
	return nil
}
