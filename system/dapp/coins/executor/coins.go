// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供操作：
Transfer -> 转移资产
TransferToExec/Withdraw -> 资产转入合约以及从合约取回
Genesis -> 本地测试时的充值
*/

import (
	"github.com/33cn/arena/common/log"
	drivers "github.com/33cn/arena/system/dapp"
	cty "github.com/33cn/arena/system/dapp/coins/types"
	"github.com/33cn/arena/types"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

var cfg cty.Config

// Init defines a register function
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	cfg = cty.Config{}
	if sub != nil {
		types.MustDecode(sub, &cfg)
	}
	if !isRegistered(driverName) {
		drivers.Register(driverName, newCoins, 0)
	}
}

func isRegistered(name string) bool {
	_, err := drivers.LoadDriver(name, -1)
	return err == nil
}

//初始化过程比较重量级，有很多reflact, 所以弄成全局的
func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Coins{}))
}

// GetName return name string
func GetName() string {
	return newCoins().GetName()
}

// Coins defines coins
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetDriverName get drive name
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx coins 交易的 To 可以是任意地址
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	return drivers.CheckAddress(tx.GetRealToAddr(), c.GetHeight())
}
