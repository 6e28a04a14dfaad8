// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"testing"

	"github.com/33cn/arena/common/address"
	"github.com/33cn/arena/common/db"
	"github.com/33cn/arena/executor"
	coinsexec "github.com/33cn/arena/system/dapp/coins/executor"
	cty "github.com/33cn/arena/system/dapp/coins/types"
	"github.com/33cn/arena/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = address.ExecAddress("test-alice")
	bob   = address.ExecAddress("test-bob")
)

func init() {
	coinsexec.Init(cty.CoinsX, []byte(`{"faucet":true}`))
}

func newExecutor(t *testing.T) (*executor.Executor, *db.GoMemDB) {
	mdb, err := db.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	exec, err := executor.New(mdb, executor.WithClock(func() int64 { return 1000 }))
	require.NoError(t, err)
	return exec, mdb
}

func send(exec *executor.Executor, tx *types.Transaction, from string) (*types.Receipt, error) {
	tx.Sender = from
	return exec.ExecTx(tx)
}

func balanceOf(t *testing.T, exec *executor.Executor, addr, execer string) *types.Account {
	reply, err := exec.Query(cty.CoinsX, "GetAddrBalance", &types.ReqBalance{Addr: addr, Execer: execer})
	require.NoError(t, err)
	return reply.(*types.Account)
}

func TestExecTxGenesisAndTransfer(t *testing.T) {
	exec, _ := newExecutor(t)
	receipt, err := send(exec, cty.CreateGenesis("", 100*types.Coin), alice)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int64(1), exec.Height())

	_, err = send(exec, cty.CreateTransfer(bob, 10*types.Coin, "hi"), alice)
	require.NoError(t, err)
	assert.Equal(t, int64(90*types.Coin), balanceOf(t, exec, alice, "").Balance)
	assert.Equal(t, int64(10*types.Coin), balanceOf(t, exec, bob, "").Balance)
	assert.Equal(t, int64(2), exec.Height())
}

func TestExecTxRollback(t *testing.T) {
	exec, _ := newExecutor(t)
	_, err := send(exec, cty.CreateGenesis("", 5*types.Coin), alice)
	require.NoError(t, err)

	_, err = send(exec, cty.CreateTransfer(bob, 10*types.Coin, ""), alice)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(5*types.Coin), balanceOf(t, exec, alice, "").Balance)
	assert.Equal(t, int64(0), balanceOf(t, exec, bob, "").Balance)
	assert.Equal(t, int64(1), exec.Height())
}

func TestExecTxReplay(t *testing.T) {
	exec, _ := newExecutor(t)
	tx := cty.CreateGenesis("", types.Coin)
	_, err := send(exec, tx, alice)
	require.NoError(t, err)
	_, err = send(exec, tx, alice)
	assert.Equal(t, types.ErrTxExist, err)
	assert.Equal(t, int64(types.Coin), balanceOf(t, exec, alice, "").Balance)
}

func TestExecTxCheck(t *testing.T) {
	exec, _ := newExecutor(t)
	_, err := exec.ExecTx(nil)
	assert.Equal(t, types.ErrEmptyTx, err)

	_, err = send(exec, cty.CreateGenesis("", types.Coin), "not-an-address")
	assert.Equal(t, types.ErrFromAddr, err)

	tx := types.CreateFormatTx("not-registered", nil)
	_, err = send(exec, tx, alice)
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	assert.Equal(t, int64(0), exec.Height())
}

func TestTransferToExecAndWithdraw(t *testing.T) {
	exec, _ := newExecutor(t)
	arenaAddr := address.ExecAddress("arena")
	_, err := send(exec, cty.CreateGenesis("", 10*types.Coin), alice)
	require.NoError(t, err)
	_, err = send(exec, cty.CreateTransferToExec("arena", 4*types.Coin), alice)
	require.NoError(t, err)
	assert.Equal(t, int64(6*types.Coin), balanceOf(t, exec, alice, "").Balance)
	assert.Equal(t, int64(4*types.Coin), balanceOf(t, exec, alice, "arena").Balance)
	assert.Equal(t, int64(4*types.Coin), balanceOf(t, exec, arenaAddr, "").Balance)

	_, err = send(exec, cty.CreateWithdraw("arena", 5*types.Coin), alice)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = send(exec, cty.CreateWithdraw("arena", 4*types.Coin), alice)
	require.NoError(t, err)
	assert.Equal(t, int64(10*types.Coin), balanceOf(t, exec, alice, "").Balance)
	assert.Equal(t, int64(0), balanceOf(t, exec, alice, "arena").Balance)
}

func TestFaucetDisabled(t *testing.T) {
	coinsexec.Init(cty.CoinsX, []byte(`{"faucet":false}`))
	defer coinsexec.Init(cty.CoinsX, []byte(`{"faucet":true}`))
	exec, _ := newExecutor(t)
	_, err := send(exec, cty.CreateGenesis("", types.Coin), alice)
	assert.Equal(t, types.ErrNotAllowDeposit, err)
}

func TestHeightRestoreAndTxResult(t *testing.T) {
	exec, mdb := newExecutor(t)
	tx := cty.CreateGenesis(bob, types.Coin)
	_, err := send(exec, tx, alice)
	require.NoError(t, err)

	result, err := exec.GetTxResult(tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Height)
	assert.Equal(t, int64(1000), result.BlockTime)
	assert.Equal(t, tx.Hash(), result.Tx.Hash())
	require.Len(t, result.Receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGenesis), result.Receipt.Logs[0].Ty)

	_, err = exec.GetTxResult([]byte("none"))
	assert.Equal(t, types.ErrNotFound, err)

	exec2, err := executor.New(mdb)
	require.NoError(t, err)
	assert.Equal(t, int64(1), exec2.Height())
	assert.Equal(t, int64(types.Coin), balanceOf(t, exec2, bob, "").Balance)
}
