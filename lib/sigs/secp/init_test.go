package secp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/crypto"

	"github.com/filecoin-project/lotus-escrow/lib/sigs"
	_ "github.com/filecoin-project/lotus-escrow/lib/sigs/secp"
)

func TestSignVerify(t *testing.T) {
	pk, err := sigs.Generate(crypto.SigTypeSecp256k1)
	require.NoError(t, err)

	pub, err := sigs.ToPublic(crypto.SigTypeSecp256k1, pk)
	require.NoError(t, err)

	addr, err := address.NewSecp256k1Address(pub)
	require.NoError(t, err)

	msg := []byte("release escrow")
	sig, err := sigs.Sign(crypto.SigTypeSecp256k1, pk, msg)
	require.NoError(t, err)

	require.NoError(t, sigs.CheckSignature(context.Background(), sig, addr, msg))
	require.Error(t, sigs.Verify(sig, addr, []byte("refund escrow")))

	other, err := sigs.Generate(crypto.SigTypeSecp256k1)
	require.NoError(t, err)
	otherPub, err := sigs.ToPublic(crypto.SigTypeSecp256k1, other)
	require.NoError(t, err)
	otherAddr, err := address.NewSecp256k1Address(otherPub)
	require.NoError(t, err)
	require.Error(t, sigs.Verify(sig, otherAddr, msg))

	id, err := address.NewIDAddress(100)
	require.NoError(t, err)
	require.Error(t, sigs.Verify(sig, id, msg))
	require.Error(t, sigs.Verify(nil, addr, msg))
}
