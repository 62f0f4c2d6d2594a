package msgindex

import (
	"context"
	"fmt"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
)

func mustID(t *testing.T, id uint64) address.Address {
	a, err := address.NewIDAddress(id)
	require.NoError(t, err)
	return a
}

func randomCid(t *testing.T, seed int) cid.Cid {
	mh, err := multihash.Sum([]byte(fmt.Sprintf("msg-%d", seed)), multihash.SHA2_256, -1)
	require.NoError(t, err)
	return cid.NewCidV1(cid.DagCBOR, mh)
}

func TestMsgIndex(t *testing.T) {
	ctx := context.Background()
	idx, err := NewMsgIndex(ctx, t.TempDir())
	require.NoError(t, err)
	defer idx.Close() //nolint:errcheck

	alice, bob, carol := mustID(t, 100), mustID(t, 101), mustID(t, 102)

	var infos []MsgInfo
	for i, pair := range [][2]address.Address{{alice, bob}, {bob, carol}, {alice, carol}} {
		info := MsgInfo{
			Message:   randomCid(t, i),
			From:      pair[0],
			To:        pair[1],
			Nonce:     uint64(i),
			Method:    abi.MethodNum(i + 1),
			Height:    abi.ChainEpoch(i + 1),
			Timestamp: uint64(1000 + i),
		}
		require.NoError(t, idx.IndexMessage(ctx, info))
		infos = append(infos, info)
	}

	got, err := idx.GetMsgInfo(ctx, infos[1].Message)
	require.NoError(t, err)
	require.Equal(t, infos[1], got)

	_, err = idx.GetMsgInfo(ctx, randomCid(t, 99))
	require.ErrorIs(t, err, ErrNotFound)

	list, err := idx.ListMessages(ctx, alice, 0)
	require.NoError(t, err)
	require.Equal(t, []MsgInfo{infos[2], infos[0]}, list)

	list, err = idx.ListMessages(ctx, carol, 1)
	require.NoError(t, err)
	require.Equal(t, []MsgInfo{infos[2]}, list)

	// indexing the same message again replaces it
	infos[0].ExitCode = 33
	require.NoError(t, idx.IndexMessage(ctx, infos[0]))
	got, err = idx.GetMsgInfo(ctx, infos[0].Message)
	require.NoError(t, err)
	require.Equal(t, infos[0], got)

	require.NoError(t, idx.Close())
	_, err = idx.GetMsgInfo(ctx, infos[0].Message)
	require.Error(t, err)
}

func TestMsgIndexReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	idx, err := NewMsgIndex(ctx, dir)
	require.NoError(t, err)
	info := MsgInfo{Message: randomCid(t, 1), From: mustID(t, 100), To: mustID(t, 101), Height: 1}
	require.NoError(t, idx.IndexMessage(ctx, info))
	require.NoError(t, idx.Close())

	idx, err = NewMsgIndex(ctx, dir)
	require.NoError(t, err)
	defer idx.Close() //nolint:errcheck

	got, err := idx.GetMsgInfo(ctx, info.Message)
	require.NoError(t, err)
	require.Equal(t, info, got)
}

func TestDummyMsgIndex(t *testing.T) {
	_, err := DummyMsgIndex.GetMsgInfo(context.Background(), randomCid(t, 1))
	require.ErrorIs(t, err, ErrNotFound)
}
