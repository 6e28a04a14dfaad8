// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
)

// Exec_Initialize 创建 arena
func (a *Arena) Exec_Initialize(payload *aty.ArenaInitialize, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).Initialize(payload)
}

// Exec_Register 注册玩家
func (a *Arena) Exec_Register(payload *aty.ArenaRegister, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).Register(payload)
}

// Exec_RpsCreate 创建猜拳
func (a *Arena) Exec_RpsCreate(payload *aty.RpsCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).RpsCreate(payload)
}

// Exec_RpsJoin 加入猜拳
func (a *Arena) Exec_RpsJoin(payload *aty.RpsJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).RpsJoin(payload)
}

// Exec_RpsCommit 提交出拳承诺
func (a *Arena) Exec_RpsCommit(payload *aty.RpsCommit, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).RpsCommit(payload)
}

// Exec_RpsReveal 揭示出拳
func (a *Arena) Exec_RpsReveal(payload *aty.RpsReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).RpsReveal(payload)
}

// Exec_RpsSettle 结算猜拳
func (a *Arena) Exec_RpsSettle(payload *aty.RpsSettle, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).RpsSettle(payload)
}

// Exec_FlipCreate 创建掷硬币
func (a *Arena) Exec_FlipCreate(payload *aty.FlipCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).FlipCreate(payload)
}

// Exec_FlipJoin 加入掷硬币
func (a *Arena) Exec_FlipJoin(payload *aty.FlipJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).FlipJoin(payload)
}

// Exec_FlipReveal 揭示 secret
func (a *Arena) Exec_FlipReveal(payload *aty.FlipReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).FlipReveal(payload)
}

// Exec_FlipSettle 结算掷硬币
func (a *Arena) Exec_FlipSettle(payload *aty.FlipSettle, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).FlipSettle(payload)
}

// Exec_WithdrawFees 提取手续费
func (a *Arena) Exec_WithdrawFees(payload *aty.ArenaWithdrawFees, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(a, tx, index).WithdrawFees(payload)
}
