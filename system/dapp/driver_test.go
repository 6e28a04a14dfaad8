// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp_test

import (
	"testing"

	"github.com/33cn/arena/common/address"
	"github.com/33cn/arena/common/db"
	"github.com/33cn/arena/executor"
	"github.com/33cn/arena/system/dapp"
	"github.com/33cn/arena/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	echoActionSet  = 1
	echoActionBoom = 2
)

type echoSet struct {
	Value string
}

func (e *echoSet) Marshal() []byte {
	var enc types.WireEncoder
	enc.String(1, e.Value)
	return enc.Encoded()
}

func (e *echoSet) Unmarshal(data []byte) error {
	d := types.NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			e.Value = d.String(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

type echoAction struct {
	Ty    int32
	Value *echoSet
}

func (a *echoAction) GetTy() int32 { return a.Ty }

func (a *echoAction) GetActionValue() types.Message { return a.Value }

func (a *echoAction) Marshal() []byte {
	var enc types.WireEncoder
	enc.Int32(1, a.Ty)
	if a.Value != nil {
		enc.Message(2, a.Value)
	}
	return enc.Encoded()
}

func (a *echoAction) Unmarshal(data []byte) error {
	d := types.NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			a.Ty = d.Int32(typ)
		case 2:
			a.Value = &echoSet{}
			d.Message(typ, a.Value)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

type echoType struct {
	types.ExecTypeBase
}

func (t *echoType) GetName() string           { return "echo" }
func (t *echoType) GetPayload() types.Message { return &echoAction{} }
func (t *echoType) GetTypeMap() map[string]int32 {
	return map[string]int32{"Set": echoActionSet, "Boom": echoActionBoom}
}

type echo struct {
	dapp.DriverBase
}

var echoTy = newEchoType()

func newEchoType() *echoType {
	t := &echoType{}
	t.SetChild(t)
	t.InitFuncList(types.ListMethod(&echo{}))
	return t
}

func newEcho() dapp.Driver {
	e := &echo{}
	e.SetChild(e)
	e.SetExecutorType(echoTy)
	return e
}

func (e *echo) GetDriverName() string { return "echo" }

func (e *echo) Exec_Set(payload *echoSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	kv := &types.KeyValue{Key: []byte("mavl-echo-" + tx.From()), Value: []byte(payload.Value)}
	if err := e.GetStateDB().Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}}, nil
}

func (e *echo) Exec_Boom(payload *echoSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	panic("boom")
}

func (e *echo) ExecLocal_Set(payload *echoSet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-echo-" + payload.Value), Value: []byte(tx.From())}}}, nil
}

func (e *echo) Query_Get(in *types.ReqString) (types.Message, error) {
	value, err := e.GetLocalDB().Get([]byte("LODB-echo-" + in.Data))
	if err != nil {
		return nil, err
	}
	return &types.ReqString{Data: string(value)}, nil
}

func init() {
	dapp.Register("echo", newEcho, 0)
}

func echoTx(ty int32, value string) *types.Transaction {
	tx := types.CreateFormatTx("echo", types.Encode(&echoAction{Ty: ty, Value: &echoSet{Value: value}}))
	tx.Sender = address.ExecAddress("echo-user")
	return tx
}

func newDriver(t *testing.T) (dapp.Driver, *db.GoMemDB) {
	mdb, err := db.NewGoMemDB("echo", "", 0)
	require.NoError(t, err)
	d, err := dapp.LoadDriver("echo", 0)
	require.NoError(t, err)
	d.SetStateDB(executor.NewStateDB(mdb))
	d.SetLocalDB(executor.NewLocalDB(mdb))
	return d, mdb
}

func TestRegister(t *testing.T) {
	assert.Panics(t, func() { dapp.Register("echo", newEcho, 0) })
	assert.Panics(t, func() { dapp.Register("echo2", nil, 0) })
	_, err := dapp.LoadDriver("not-exist", 0)
	assert.Equal(t, types.ErrUnRegistedDriver, err)

	dapp.Register("echo-late", newEcho, 10)
	_, err = dapp.LoadDriver("echo-late", 9)
	assert.Equal(t, types.ErrUnknowDriver, err)
	_, err = dapp.LoadDriver("echo-late", 10)
	assert.NoError(t, err)
	assert.True(t, dapp.IsDriverAddress(address.ExecAddress("echo"), 0))
	assert.False(t, dapp.IsDriverAddress(address.ExecAddress("echo-late"), 1))
	assert.Equal(t, address.ExecAddress("echo"), dapp.ExecAddress("echo"))
	assert.NoError(t, dapp.CheckAddress(address.ExecAddress("echo"), 0))
	assert.Contains(t, dapp.DriverNames(), "echo")
}

func TestExecDispatch(t *testing.T) {
	d, _ := newDriver(t)
	tx := echoTx(echoActionSet, "hello")
	require.NoError(t, d.CheckTx(tx, 0))
	assert.Equal(t, "Set", d.GetActionName(tx))

	receipt, err := d.Exec(tx, 0)
	require.NoError(t, err)
	require.Len(t, receipt.KV, 1)
	assert.Equal(t, []byte("hello"), receipt.KV[0].Value)

	v, err := d.GetStateDB().Get([]byte("mavl-echo-" + tx.From()))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), v)

	set, err := d.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty}, 0)
	require.NoError(t, err)
	require.Len(t, set.KV, 1)
	assert.Equal(t, []byte("LODB-echo-hello"), set.KV[0].Key)
}

func TestExecRecoverPanic(t *testing.T) {
	d, _ := newDriver(t)
	receipt, err := d.Exec(echoTx(echoActionBoom, "x"), 0)
	assert.Nil(t, receipt)
	assert.Equal(t, types.ErrActionNotSupport, err)
}

func TestExecUnknownAction(t *testing.T) {
	d, _ := newDriver(t)
	tx := echoTx(99, "x")
	_, err := d.Exec(tx, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	assert.Equal(t, "unknown", d.GetActionName(tx))

	tx.Payload = []byte{0xff}
	_, err = d.Exec(tx, 0)
	assert.Equal(t, types.ErrDecode, err)
}

func TestCheckTxToAddr(t *testing.T) {
	d, _ := newDriver(t)
	tx := echoTx(echoActionSet, "x")
	tx.To = address.ExecAddress("coins")
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, d.CheckTx(tx, 0))
}

func TestQueryDispatch(t *testing.T) {
	d, mdb := newDriver(t)
	require.NoError(t, mdb.Set([]byte("LODB-echo-k"), []byte("v")))

	reply, err := d.Query("Get", types.Encode(&types.ReqString{Data: "k"}))
	require.NoError(t, err)
	assert.Equal(t, "v", reply.(*types.ReqString).Data)

	_, err = d.Query("Get", types.Encode(&types.ReqString{Data: "missing"}))
	assert.Equal(t, types.ErrNotFound, err)

	_, err = d.Query("NotExist", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}
