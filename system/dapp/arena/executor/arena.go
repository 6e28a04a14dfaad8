// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
arena 双方押注相同金额进行一局公平的随机游戏，合约托管押注并在结束后自动结算。

支持的游戏：
RpsCreate/RpsJoin/RpsCommit/RpsReveal/RpsSettle -> 三局两胜的石头剪刀布，每回合先提交承诺再揭示
FlipCreate/FlipJoin/FlipReveal/FlipSettle -> 掷硬币，结果由双方的 secret 共同决定

押注先通过 coins 的 TransferToExec 转入 arena 合约，创建或加入对局时转入对局的托管地址并冻结，
结算时支付给胜方，手续费转入手续费池，托管地址的余额必须正好为零。
*/

import (
	"github.com/33cn/arena/common/log"
	drivers "github.com/33cn/arena/system/dapp"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
)

var alog = log.New("module", "execs.arena")

var driverName = aty.ArenaX

var cfg aty.Config

// Init 注册 arena 执行器，sub 为 [exec.sub.arena] 配置
func Init(name string, sub []byte) {
	if name != driverName {
		panic("arena dapp can't be rename")
	}
	cfg = aty.Config{}
	if sub != nil {
		types.MustDecode(sub, &cfg)
	}
	if !isRegistered(driverName) {
		drivers.Register(driverName, newArena, 0)
	}
}

func isRegistered(name string) bool {
	_, err := drivers.LoadDriver(name, -1)
	return err == nil
}

func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Arena{}))
}

// GetName return name string
func GetName() string {
	return newArena().GetName()
}

// Arena arena 执行器
type Arena struct {
	drivers.DriverBase
}

func newArena() drivers.Driver {
	a := &Arena{}
	a.SetChild(a)
	a.SetExecutorType(types.LoadExecutorType(driverName))
	return a
}

// GetDriverName get driver name
func (a *Arena) GetDriverName() string {
	return driverName
}
