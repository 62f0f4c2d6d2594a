package main

import (
	"fmt"
	"os"

	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/escrowmgr"
)

func main() {
	err := gen.WriteTupleEncodersToFile("./chain/types/cbor_gen.go", "types",
		types.Coin{},
		types.Actor{},
		types.Message{},
		types.SignedMessage{},
		types.MessageReceipt{},
		types.Event{},
		types.EventAttribute{},
		types.Transfer{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = gen.WriteTupleEncodersToFile("./chain/store/cbor_gen.go", "store",
		store.Head{},
		store.MsgLookup{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = gen.WriteTupleEncodersToFile("./chain/actors/cbor_gen.go", "actors",
		actors.ExecParams{},
		actors.ExecReturn{},
		actors.AccountActorState{},
		actors.EscrowConstructorParams{},
		actors.EscrowState{},
		actors.EscrowConfigResponse{},
		actors.FaucetConstructorParams{},
		actors.FaucetState{},
		actors.FaucetClaim{},
		actors.FaucetLastClaimParams{},
		actors.KVEntry{},
		actors.KVSetParams{},
		actors.KVKeyParams{},
		actors.KVReadResponse{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = gen.WriteTupleEncodersToFile("./escrowmgr/cbor_gen.go", "escrowmgr",
		escrowmgr.EscrowRecord{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
