package vm_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/gen/genesis"
	"github.com/filecoin-project/lotus-escrow/chain/state"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/vm"
	gentypes "github.com/filecoin-project/lotus-escrow/genesis"
)

func mustKeyAddr(t *testing.T, seed string) address.Address {
	a, err := address.NewSecp256k1Address([]byte(seed))
	require.NoError(t, err)
	return a
}

func setupVM(t *testing.T, accounts ...gentypes.Actor) (*vm.VM, *state.StateTree) {
	ctx := context.Background()
	st := state.NewStateTree(dssync.MutexWrap(datastore.NewMapDatastore()))
	_, err := genesis.MakeInitialStateTree(ctx, st, gentypes.Template{Accounts: accounts, Timestamp: 500})
	require.NoError(t, err)
	require.NoError(t, st.Flush(ctx))

	return vm.NewVM(st, 1, 500, nil), st
}

func coins(n uint64) types.Coins {
	return types.NewCoins(types.NewCoin("token", n))
}

func TestApplySend(t *testing.T) {
	ctx := context.Background()
	alice := mustKeyAddr(t, "alice")
	bob := mustKeyAddr(t, "bob")
	v, st := setupVM(t, gentypes.Actor{Address: alice, Balance: coins(1000)})

	ret, err := v.ApplyMessage(ctx, &types.Message{
		From:  alice,
		To:    bob,
		Funds: coins(250),
	})
	require.NoError(t, err)
	require.Equal(t, exitcode.Ok, ret.ExitCode, "%+v", ret.ActorErr)

	bobAct, err := st.GetActor(bob)
	require.NoError(t, err, "sending to a new key address creates an account")
	assert.Equal(t, actors.AccountCodeCid, bobAct.Code)
	assert.Equal(t, types.NewInt(250), bobAct.Balance.AmountOf("token"))

	aliceAct, err := st.GetActor(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), aliceAct.Nonce)
	assert.Equal(t, types.NewInt(750), aliceAct.Balance.AmountOf("token"))

	require.Len(t, ret.Transfers, 1)
	aliceID, err := st.LookupID(alice)
	require.NoError(t, err)
	bobID, err := st.LookupID(bob)
	require.NoError(t, err)
	assert.Equal(t, aliceID, ret.Transfers[0].From)
	assert.Equal(t, bobID, ret.Transfers[0].To)
}

func TestApplySenderChecks(t *testing.T) {
	ctx := context.Background()
	alice := mustKeyAddr(t, "alice")
	nobody := mustKeyAddr(t, "nobody")
	v, st := setupVM(t, gentypes.Actor{Address: alice, Balance: coins(100)})

	ret, err := v.ApplyMessage(ctx, &types.Message{From: nobody, To: alice, Funds: coins(1)})
	require.NoError(t, err)
	assert.Equal(t, exitcode.SysErrSenderInvalid, ret.ExitCode)

	ret, err = v.ApplyMessage(ctx, &types.Message{From: alice, To: nobody, Nonce: 3})
	require.NoError(t, err)
	assert.Equal(t, exitcode.SysErrSenderStateInvalid, ret.ExitCode)

	ret, err = v.ApplyMessage(ctx, &types.Message{From: alice, To: nobody, Funds: coins(101)})
	require.NoError(t, err)
	assert.Equal(t, exitcode.SysErrInsufficientFunds, ret.ExitCode)

	ret, err = v.ApplyMessage(ctx, &types.Message{From: actors.InitAddress, To: alice})
	require.NoError(t, err)
	assert.Equal(t, exitcode.SysErrSenderInvalid, ret.ExitCode, "only accounts can send messages")

	act, err := st.GetActor(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), act.Nonce, "rejected messages do not consume a nonce")

	_, err = v.ApplyMessage(ctx, &types.Message{From: alice})
	require.Error(t, err, "messages without a receiver are invalid")
}

func TestApplyFailureReverts(t *testing.T) {
	ctx := context.Background()
	alice := mustKeyAddr(t, "alice")
	v, st := setupVM(t, gentypes.Actor{Address: alice, Balance: coins(100)})

	// an unknown method on the init actor fails after funds moved
	ret, err := v.ApplyMessage(ctx, &types.Message{
		From:   alice,
		To:     actors.InitAddress,
		Method: 42,
		Funds:  coins(10),
	})
	require.NoError(t, err)
	assert.Equal(t, exitcode.SysErrInvalidMethod, ret.ExitCode)
	assert.Empty(t, ret.Transfers)
	assert.Nil(t, ret.Return)

	act, err := st.GetActor(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), act.Nonce, "executed messages consume a nonce even when they fail")
	assert.Equal(t, types.NewInt(100), act.Balance.AmountOf("token"))

	initAct, err := st.GetActor(actors.InitAddress)
	require.NoError(t, err)
	assert.True(t, initAct.Balance.IsZero())
}

func TestApplyUnknownReceiver(t *testing.T) {
	ctx := context.Background()
	alice := mustKeyAddr(t, "alice")
	v, _ := setupVM(t, gentypes.Actor{Address: alice, Balance: coins(100)})

	missing, err := address.NewIDAddress(9999)
	require.NoError(t, err)

	ret, err := v.ApplyMessage(ctx, &types.Message{From: alice, To: missing, Funds: coins(1)})
	require.NoError(t, err)
	assert.Equal(t, exitcode.SysErrInvalidReceiver, ret.ExitCode)
}

func TestAccountConstructorIsSystemOnly(t *testing.T) {
	ctx := context.Background()
	alice := mustKeyAddr(t, "alice")
	v, _ := setupVM(t, gentypes.Actor{Address: alice, Balance: coins(100)})

	p, aerr := actors.SerializeParams(&actors.AccountActorState{Address: alice})
	require.Nil(t, aerr)
	ret, err := v.ApplyMessage(ctx, &types.Message{
		From:   alice,
		To:     alice,
		Method: actors.MethodConstructor,
		Params: p,
	})
	require.NoError(t, err)
	assert.Equal(t, exitcode.ErrForbidden, ret.ExitCode)
}

func TestApplyImplicitMessage(t *testing.T) {
	ctx := context.Background()
	alice := mustKeyAddr(t, "alice")
	v, _ := setupVM(t, gentypes.Actor{Address: alice, Balance: coins(100)})

	ret, err := v.ApplyImplicitMessage(ctx, &types.Message{
		From:   alice,
		To:     alice,
		Method: actors.AAMethods.PubkeyAddress,
		Nonce:  77,
	})
	require.NoError(t, err)
	require.Equal(t, exitcode.Ok, ret.ExitCode)

	var got address.Address
	require.NoError(t, got.UnmarshalCBOR(bytes.NewReader(ret.Return)))
	assert.Equal(t, alice, got)
}
