package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/lib/sigs"
)

func TestWallet(t *testing.T) {
	ctx := context.Background()

	w, err := NewWallet(NewMemKeyStore())
	require.NoError(t, err)

	a1, err := w.WalletNew(ctx, types.KTSecp256k1)
	require.NoError(t, err)

	exists, err := w.WalletHas(ctx, a1)
	require.NoError(t, err)
	require.True(t, exists, "address doesn't exist in wallet")

	def, err := w.GetDefault()
	require.NoError(t, err)
	require.Equal(t, a1, def, "first key becomes the default")

	a2, err := w.WalletNew(ctx, types.KTSecp256k1)
	require.NoError(t, err)

	addrs, err := w.WalletList(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []address.Address{a1, a2}, addrs)

	require.NoError(t, w.SetDefault(a2))
	def, err = w.GetDefault()
	require.NoError(t, err)
	require.Equal(t, a2, def)

	sig, err := w.WalletSign(ctx, a1, []byte("hello"))
	require.NoError(t, err)
	require.NoError(t, sigs.Verify(sig, a1, []byte("hello")))

	ki, err := w.WalletExport(ctx, a1)
	require.NoError(t, err)

	require.NoError(t, w.WalletDelete(ctx, a1))
	exists, err = w.WalletHas(ctx, a1)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = w.WalletSign(ctx, a1, []byte("hello"))
	require.ErrorIs(t, err, types.ErrKeyInfoNotFound)

	imported, err := w.WalletImport(ctx, ki)
	require.NoError(t, err)
	require.Equal(t, a1, imported)
}

func TestUnsupportedKeyType(t *testing.T) {
	_, err := NewWallet(NewMemKeyStore())
	require.NoError(t, err)

	_, err = GenerateKey("bls")
	require.Error(t, err)
}
