package api

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-jsonrpc/auth"
)

func TestEveryMethodHasPerm(t *testing.T) {
	for _, st := range GetInternalStructs(new(FullNodeStruct)) {
		rt := reflect.TypeOf(st).Elem()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			perm := auth.Permission(f.Tag.Get("perm"))
			require.Contains(t, AllPermissions, perm, "method %s", f.Name)
		}
	}
}

type networkNode struct {
	FullNodeStub
}

func (networkNode) StateNetworkName(context.Context) (string, error) { return "testnet", nil }

func TestPermissionedFullAPI(t *testing.T) {
	full := PermissionedFullAPI(&networkNode{})
	addr, err := address.NewIDAddress(1000)
	require.NoError(t, err)

	readCtx := auth.WithPerm(context.Background(), []auth.Permission{PermRead})
	name, err := full.StateNetworkName(readCtx)
	require.NoError(t, err)
	require.Equal(t, "testnet", name)

	// admin methods are refused to read-only callers
	_, err = full.WalletExport(readCtx, addr)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing permission")

	// stubbed methods report that they are not supported
	adminCtx := auth.WithPerm(context.Background(), AllPermissions)
	_, err = full.WalletExport(adminCtx, addr)
	require.ErrorIs(t, err, ErrNotSupported)
}
