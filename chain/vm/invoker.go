package vm

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"reflect"

	"github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

type Invoker struct {
	builtInCode map[cid.Cid]nativeCode
}

type invokeFunc func(act *types.Actor, vmctx types.VMContext, params []byte) ([]byte, aerrors.ActorError)
type nativeCode []invokeFunc

func NewInvoker() *Invoker {
	inv := &Invoker{
		builtInCode: make(map[cid.Cid]nativeCode),
	}

	// add builtInCode using: register(cid, singleton)
	inv.Register(actors.InitCodeCid, actors.InitActor{})
	inv.Register(actors.AccountCodeCid, actors.AccountActor{})
	inv.Register(actors.EscrowCodeCid, actors.EscrowActor{})
	inv.Register(actors.FaucetCodeCid, actors.FaucetActor{})
	inv.Register(actors.KVStoreCodeCid, actors.KVStoreActor{})

	return inv
}

func (inv *Invoker) Invoke(act *types.Actor, vmctx types.VMContext, method abi.MethodNum, params []byte) (ret []byte, aerr aerrors.ActorError) {
	code, ok := inv.builtInCode[act.Code]
	if !ok {
		log.Errorf("no code for actor %s (Addr: %s)", act.Code, vmctx.Message().To)
		return nil, aerrors.Newf(exitcode.SysErrorIllegalActor, "no code for actor %s(%d)(%s)", act.Code, method, hex.EncodeToString(params))
	}
	if method >= abi.MethodNum(len(code)) || code[method] == nil {
		return nil, aerrors.Newf(exitcode.SysErrInvalidMethod, "no method %d on %s actor", method, actors.ActorNameByCode(act.Code))
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorw("actor method panicked", "code", actors.ActorNameByCode(act.Code), "method", method, "panic", r)
			ret, aerr = nil, aerrors.Fatalf("actor method %d panicked: %v", method, r)
		}
	}()

	return code[method](act, vmctx, params)
}

func (inv *Invoker) Register(c cid.Cid, instance Invokee) {
	code, err := inv.transform(instance)
	if err != nil {
		panic(err)
	}
	inv.builtInCode[c] = code
}

type Invokee interface {
	Exports() []interface{}
}

var (
	tActor     = reflect.TypeOf((*types.Actor)(nil))
	tVMContext = reflect.TypeOf((*types.VMContext)(nil)).Elem()
	tBytes     = reflect.TypeOf([]byte{})
	tAError    = reflect.TypeOf((*aerrors.ActorError)(nil)).Elem()
	tUnmarshal = reflect.TypeOf((*cbg.CBORUnmarshaler)(nil)).Elem()
)

func (*Invoker) transform(instance Invokee) (nativeCode, error) {
	itype := reflect.TypeOf(instance)
	exports := instance.Exports()
	for i, m := range exports {
		i := i
		newErr := func(format string, args ...interface{}) error {
			str := fmt.Sprintf(format, args...)
			return fmt.Errorf("transform(%s) export(%d): %s", itype.Name(), i, str)
		}

		if m == nil {
			continue
		}

		meth := reflect.ValueOf(m)
		t := meth.Type()
		if t.Kind() != reflect.Func {
			return nil, newErr("is not a function")
		}
		if t.NumIn() != 3 {
			return nil, newErr("wrong number of inputs should be: " +
				"*types.Actor, types.VMContext, <parameter>")
		}
		if t.In(0) != tActor {
			return nil, newErr("first arguemnt should be *types.Actor")
		}
		if t.In(1) != tVMContext {
			return nil, newErr("second argument should be types.VMContext")
		}
		if t.In(2).Kind() != reflect.Ptr {
			return nil, newErr("parameter has to be a pointer to parameter, is: %s",
				t.In(2).Kind())
		}
		if !t.In(2).Implements(tUnmarshal) {
			return nil, newErr("parameter needs to implement cbg.CBORUnmarshaler")
		}

		if t.NumOut() != 2 {
			return nil, newErr("wrong number of outputs should be: " +
				"(InvokeRet, error)")
		}
		if t.Out(0) != tBytes {
			return nil, newErr("first output should be slice of bytes")
		}
		if !t.Out(1).Implements(tAError) {
			return nil, newErr("second output should be ActorError type")
		}
	}

	code := make(nativeCode, len(exports))
	for id, m := range exports {
		if m == nil {
			continue
		}

		meth := reflect.ValueOf(m)
		code[id] = reflect.MakeFunc(reflect.TypeOf((invokeFunc)(nil)),
			func(in []reflect.Value) []reflect.Value {
				paramT := meth.Type().In(2).Elem()
				param := reflect.New(paramT)

				inBytes := in[2].Interface().([]byte)
				if len(inBytes) > 0 {
					if err := DecodeParams(inBytes, param.Interface()); err != nil {
						aerr := aerrors.Absorb(err, exitcode.ErrSerialization, "failed to decode parameters")
						return []reflect.Value{
							reflect.ValueOf([]byte{}),
							// Below is a hack, fixed in Go 1.13
							// https://git.io/fjXU6
							reflect.ValueOf(&aerr).Elem(),
						}
					}
				}

				return meth.Call([]reflect.Value{
					in[0], in[1], param,
				})
			}).Interface().(invokeFunc)
	}
	return code, nil
}

func DecodeParams(b []byte, out interface{}) error {
	um, ok := out.(cbg.CBORUnmarshaler)
	if !ok {
		return fmt.Errorf("type %T does not implement UnmarshalCBOR", out)
	}

	return um.UnmarshalCBOR(bytes.NewReader(b))
}
