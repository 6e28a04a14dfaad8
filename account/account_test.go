// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/arena/common/address"
	"github.com/33cn/arena/common/db"
	"github.com/33cn/arena/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr4 = "44ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

// memKV 直接写 memdb，不做交易缓存
type memKV struct {
	*db.GoMemDB
}

func (memKV) Begin()        {}
func (memKV) Rollback()     {}
func (memKV) Commit() error { return nil }

func GenerAccDb() *DB {
	//构造账户数据库
	accCoin := NewCoinsAccount()
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accCoin.SetDB(memKV{stroedb})
	return accCoin
}

func (acc *DB) GenerAccData() {
	// 加入账户
	account := &types.Account{
		Balance: 1000 * 1e8,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * 1e8
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * 1e8
	account.Addr = addr3
	acc.SaveAccount(account)

	account.Balance = 700 * 1e8
	account.Addr = addr4
	acc.SaveAccount(account)
}

func TestAccountName(t *testing.T) {
	accCoin := GenerAccDb()
	assert.Equal(t, "mavl-token-test-", SymbolPrefix("token", "test"))
	assert.Equal(t, "mavl-coins-bty-"+addr1, string(accCoin.AccountKey(addr1)))
	execaddr := address.ExecAddress("arena")
	assert.Equal(t, "mavl-coins-bty-exec-"+execaddr+":"+addr1, string(accCoin.execAccountKey(addr1, execaddr)))
}

func TestCheckTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	err := accCoin.CheckTransfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)

	err = accCoin.CheckTransfer(addr3, addr4, 800*1e8)
	require.NoError(t, err)

	err = accCoin.CheckTransfer(addr4, addr1, 701*1e8)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)
	require.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)

	assert.Equal(t, int64(990*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(910*1e8), accCoin.LoadAccount(addr2).Balance)

	_, err = accCoin.Transfer(addr1, addr1, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = accCoin.Transfer(addr1, addr2, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestGenesisInit(t *testing.T) {
	accCoin := GenerAccDb()
	receipt, err := accCoin.GenesisInit(addr1, 5*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, int64(5*1e8), accCoin.LoadAccount(addr1).Balance)

	_, err = accCoin.GenesisInit(addr1, types.MaxCoin-1)
	assert.Equal(t, types.ErrAmount, err)
}
