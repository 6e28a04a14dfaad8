// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arena/common/address"
	drivers "github.com/33cn/arena/system/dapp"
	cty "github.com/33cn/arena/system/dapp/coins/types"
	"github.com/33cn/arena/types"
)

// Exec_Transfer transfer of exec
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	from := tx.From()
	//to 是 execs 合约地址
	if drivers.IsDriverAddress(tx.GetRealToAddr(), c.GetHeight()) {
		return c.GetCoinsAccount().TransferToExec(from, tx.GetRealToAddr(), transfer.Amount)
	}
	return c.GetCoinsAccount().Transfer(from, tx.GetRealToAddr(), transfer.Amount)
}

// Exec_TransferToExec the transfer to exec address
func (c *Coins) Exec_TransferToExec(transfer *cty.CoinsTransferToExec, tx *types.Transaction, index int) (*types.Receipt, error) {
	from := tx.From()
	//to 是 execs 合约地址
	if !isExecAddrMatch(transfer.ExecName, tx.GetRealToAddr()) {
		return nil, types.ErrToAddrNotSameToExecAddr
	}
	return c.GetCoinsAccount().TransferToExec(from, tx.GetRealToAddr(), transfer.Amount)
}

// Exec_Withdraw withdraw exec
func (c *Coins) Exec_Withdraw(withdraw *cty.CoinsWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	from := tx.From()
	//to 是 execs 合约地址
	if drivers.IsDriverAddress(tx.GetRealToAddr(), c.GetHeight()) || isExecAddrMatch(withdraw.ExecName, tx.GetRealToAddr()) {
		return c.GetCoinsAccount().TransferWithdraw(from, tx.GetRealToAddr(), withdraw.Amount)
	}
	return nil, types.ErrActionNotSupport
}

// Exec_Genesis 只有开启 faucet 时可以充值
func (c *Coins) Exec_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if !cfg.Faucet {
		clog.Error("Exec_Genesis", "from", tx.From(), "err", types.ErrNotAllowDeposit)
		return nil, types.ErrNotAllowDeposit
	}
	addr := genesis.ReturnAddress
	if addr == "" {
		addr = tx.From()
	}
	if err := address.CheckAddress(addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().GenesisInit(addr, genesis.Amount)
}

func isExecAddrMatch(name string, to string) bool {
	toaddr := address.ExecAddress(name)
	return toaddr == to
}
