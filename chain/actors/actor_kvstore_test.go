package actors_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
)

func kvRead(t *testing.T, h *Harness, from, kv address.Address, key string) actors.KVReadResponse {
	t.Helper()
	ret, _ := h.Invoke(t, from, kv, actors.KVMethods.Read, &actors.KVKeyParams{Key: key})
	ApplyOK(t, ret)

	var out actors.KVReadResponse
	require.NoError(t, out.UnmarshalCBOR(bytes.NewReader(ret.Return)))
	return out
}

func TestKVStore(t *testing.T) {
	var alice, bob, kv address.Address
	h := NewHarness(t,
		HarnessAddr(&alice, 0),
		HarnessAddr(&bob, 0),
		HarnessActor(&kv, &alice, actors.KVStoreCodeCid, func() cbg.CBORMarshaler { return nil }),
	)

	assert.False(t, kvRead(t, h, alice, kv, "color").Found)

	ret, _ := h.Invoke(t, alice, kv, actors.KVMethods.Update, &actors.KVSetParams{Key: "color", Value: "red"})
	ApplyFails(t, ret, actors.ErrKeyNotFound)

	ret, _ = h.Invoke(t, alice, kv, actors.KVMethods.Create, &actors.KVSetParams{Key: "color", Value: "red"})
	ApplyOK(t, ret)
	action, _ := ret.Events[0].Get("action")
	assert.Equal(t, "create", action)

	got := kvRead(t, h, bob, kv, "color")
	assert.True(t, got.Found)
	assert.Equal(t, "red", got.Value)
	assert.Equal(t, h.ID(alice).String(), got.Writer)

	ret, _ = h.Invoke(t, bob, kv, actors.KVMethods.Create, &actors.KVSetParams{Key: "color", Value: "blue"})
	ApplyFails(t, ret, actors.ErrKeyAlreadyExists)

	ret, _ = h.Invoke(t, bob, kv, actors.KVMethods.Update, &actors.KVSetParams{Key: "color", Value: "blue"})
	ApplyOK(t, ret)
	got = kvRead(t, h, alice, kv, "color")
	assert.Equal(t, "blue", got.Value)
	assert.Equal(t, h.ID(bob).String(), got.Writer)

	ret, _ = h.Invoke(t, alice, kv, actors.KVMethods.Delete, &actors.KVKeyParams{Key: "color"})
	ApplyOK(t, ret)
	assert.False(t, kvRead(t, h, alice, kv, "color").Found)

	ret, _ = h.Invoke(t, alice, kv, actors.KVMethods.Delete, &actors.KVKeyParams{Key: "color"})
	ApplyFails(t, ret, actors.ErrKeyNotFound)
}

func TestKVStoreKeyLimits(t *testing.T) {
	var alice, kv address.Address
	h := NewHarness(t,
		HarnessAddr(&alice, 0),
		HarnessActor(&kv, &alice, actors.KVStoreCodeCid, func() cbg.CBORMarshaler { return nil }),
	)

	ret, _ := h.Invoke(t, alice, kv, actors.KVMethods.Create, &actors.KVSetParams{Key: "", Value: "v"})
	ApplyFails(t, ret, exitcode.ErrIllegalArgument)

	long := strings.Repeat("k", build.MaxStorageKeyLength+1)
	ret, _ = h.Invoke(t, alice, kv, actors.KVMethods.Create, &actors.KVSetParams{Key: long, Value: "v"})
	ApplyFails(t, ret, exitcode.ErrIllegalArgument)

	// keys are opaque, path-like keys do not collide with other storage
	ret, _ = h.Invoke(t, alice, kv, actors.KVMethods.Create, &actors.KVSetParams{Key: "../state", Value: "v"})
	ApplyOK(t, ret)
	assert.True(t, kvRead(t, h, alice, kv, "../state").Found)
}
