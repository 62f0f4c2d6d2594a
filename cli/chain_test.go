package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ucli "github.com/urfave/cli/v2"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/api/mocks"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// newMockAppWithFullAPI returns a gomock-ed CLI app used for unit tests
// see GetFullNodeAPI for mock API injection
func newMockAppWithFullAPI(t *testing.T, cmd *ucli.Command) (*ucli.App, *mocks.MockFullNode, *bytes.Buffer, func()) {
	app := ucli.NewApp()
	app.Commands = ucli.Commands{cmd}
	app.Setup()

	// create and inject the mock API into app Metadata
	ctrl := gomock.NewController(t)
	mockFullNode := mocks.NewMockFullNode(ctrl)
	var fullNode api.FullNode = mockFullNode
	app.Metadata[testFullAPIKey] = fullNode

	// this will only work if the implementation uses the app.Writer,
	// if it uses fmt.*, it has to be refactored
	buf := &bytes.Buffer{}
	app.Writer = buf

	return app, mockFullNode, buf, ctrl.Finish
}

func mustAddr(a address.Address, err error) address.Address {
	if err != nil {
		panic(err)
	}
	return a
}

func TestChainHead(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, WithCategory("chain", ChainCmd))
	defer done()

	mockApi.EXPECT().ChainHead(gomock.Any()).Return(&store.Head{Height: 42, Timestamp: 1_700_000_000}, nil)

	err := app.Run([]string{"chain", "chain", "head"})
	assert.NoError(t, err)

	assert.Contains(t, buf.String(), "Height:    42")
	assert.Contains(t, buf.String(), "1700000000")
}

func TestChainGetMessage(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, WithCategory("chain", ChainCmd))
	defer done()

	msg := &types.Message{
		From:  mustAddr(address.NewIDAddress(100)),
		To:    mustAddr(address.NewIDAddress(101)),
		Nonce: 3,
		Funds: types.NewCoins(types.NewCoin("utoken", 5)),
	}

	mockApi.EXPECT().ChainGetMessage(gomock.Any(), msg.Cid()).Return(msg, nil)

	err := app.Run([]string{"chain", "chain", "getmessage", msg.Cid().String()})
	require.NoError(t, err)

	var out types.Message
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, msg.Cid(), out.Cid())
}

func TestChainNotifyCount(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, WithCategory("chain", ChainCmd))
	defer done()

	ch := make(chan *store.HeadChange, 2)
	ch <- &store.HeadChange{Head: store.Head{Height: 1}}
	ch <- &store.HeadChange{Head: store.Head{Height: 2}}

	mockApi.EXPECT().ChainNotify(gomock.Any()).DoAndReturn(func(context.Context) (<-chan *store.HeadChange, error) {
		return ch, nil
	})

	err := app.Run([]string{"chain", "chain", "notify", "--count", "2"})
	require.NoError(t, err)
	assert.Equal(t, "1\thead\n2\thead\n", buf.String())
}
