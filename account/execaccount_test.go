// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/arena/common/address"
	"github.com/33cn/arena/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferToExecAndWithdraw(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("arena")

	receipt, err := accCoin.TransferToExec(addr1, execaddr, 100*1e8)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 3)
	assert.Equal(t, int32(types.TyLogExecDeposit), receipt.Logs[2].Ty)
	assert.Equal(t, int64(900*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(100*1e8), accCoin.LoadAccount(execaddr).Balance)
	assert.Equal(t, int64(100*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	_, err = accCoin.TransferWithdraw(addr1, execaddr, 101*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = accCoin.TransferWithdraw(addr1, execaddr, 40*1e8)
	require.NoError(t, err)
	assert.Equal(t, int64(940*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(60*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
}

func TestExecFrozenAndTransferFrozen(t *testing.T) {
	accCoin := GenerAccDb()
	execaddr := address.ExecAddress("arena")
	_, err := accCoin.ExecDeposit(addr1, execaddr, 50)
	require.NoError(t, err)

	_, err = accCoin.ExecFrozen(addr1, execaddr, 51)
	assert.Equal(t, types.ErrNoBalance, err)
	receipt, err := accCoin.ExecFrozen(addr1, execaddr, 30)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecFrozen), receipt.Logs[0].Ty)
	acc1 := accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, int64(20), acc1.Balance)
	assert.Equal(t, int64(30), acc1.Frozen)

	_, err = accCoin.ExecTransferFrozen(addr1, addr2, execaddr, 31)
	assert.Equal(t, types.ErrNoBalance, err)
	receipt, err = accCoin.ExecTransferFrozen(addr1, addr2, execaddr, 30)
	require.NoError(t, err)
	require.Len(t, receipt.KV, 2)
	assert.Equal(t, int64(0), accCoin.LoadExecAccount(addr1, execaddr).Frozen)
	assert.Equal(t, int64(30), accCoin.LoadExecAccount(addr2, execaddr).Balance)

	var log types.ReceiptExecAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[1].Log, &log))
	assert.Equal(t, int64(0), log.Prev.Balance)
	assert.Equal(t, int64(30), log.Current.Balance)
}

func TestExecTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	execaddr := address.ExecAddress("arena")
	_, err := accCoin.ExecDeposit(addr1, execaddr, 50)
	require.NoError(t, err)

	_, err = accCoin.ExecTransfer(addr1, addr1, execaddr, 10)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = accCoin.ExecTransfer(addr1, addr2, execaddr, 60)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = accCoin.ExecTransfer(addr1, addr2, execaddr, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(0), accCoin.LoadExecAccount(addr1, execaddr).Balance)
	assert.Equal(t, int64(50), accCoin.LoadExecAccount(addr2, execaddr).Balance)

	_, err = accCoin.ExecWithdraw(execaddr, addr2, 51)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = accCoin.ExecDeposit(execaddr, execaddr, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestExecReceiptOrder(t *testing.T) {
	accCoin := GenerAccDb()
	execaddr := address.ExecAddress("arena")
	_, err := accCoin.ExecDeposit(addr1, execaddr, 50)
	require.NoError(t, err)

	_, err = accCoin.ExecWithdraw(execaddr, addr1, 51)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = accCoin.ExecFrozen(addr1, execaddr, 0)
	assert.Equal(t, types.ErrAmount, err)
	assert.Equal(t, int64(50), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	receipt, err := accCoin.ExecTransfer(addr1, addr2, execaddr, 20)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	require.Len(t, receipt.KV, 2)
	assert.Equal(t, accCoin.execAccountKey(addr1, execaddr), receipt.KV[0].Key)
	assert.Equal(t, accCoin.execAccountKey(addr2, execaddr), receipt.KV[1].Key)
	for _, l := range receipt.Logs {
		assert.Equal(t, int32(types.TyLogExecTransfer), l.Ty)
	}
}
