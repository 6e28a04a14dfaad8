// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/arena/types"
)

// LoadExecAccount 载入 addr 在合约 execaddr 下的账户
func (acc *DB) LoadExecAccount(addr, execaddr string) *types.Account {
	value, err := acc.db.Get(acc.execAccountKey(addr, execaddr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	if err = types.Decode(value, &acc1); err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// SaveExecAccount 写回合约账户
func (acc *DB) SaveExecAccount(execaddr string, acc1 *types.Account) {
	for _, kv := range acc.GetExecKVSet(execaddr, acc1) {
		if err := acc.db.Set(kv.GetKey(), kv.Value); err != nil {
			panic(err)
		}
	}
}

// GetExecKVSet 合约账户对应的存储 kv
func (acc *DB) GetExecKVSet(execaddr string, acc1 *types.Account) []*types.KeyValue {
	return []*types.KeyValue{{Key: acc.execAccountKey(acc1.Addr, execaddr), Value: types.Encode(acc1)}}
}

// key: mavl-coins-bty-exec-<execaddr>:<addr>
func (acc *DB) execAccountKey(addr, execaddr string) []byte {
	key := make([]byte, 0, len(acc.execAccountKeyPerfix)+len(execaddr)+len(addr)+1)
	key = append(key, acc.execAccountKeyPerfix...)
	key = append(key, execaddr...)
	key = append(key, ':')
	return append(key, addr...)
}

// TransferToExec 把 from 的余额转到合约地址，并记入 from 在该合约下的账户
func (acc *DB) TransferToExec(from, execaddr string, amount int64) (*types.Receipt, error) {
	receipt, err := acc.Transfer(from, execaddr, amount)
	if err != nil {
		return nil, err
	}
	deposit, err := acc.ExecDeposit(from, execaddr, amount)
	if err != nil {
		return nil, err
	}
	return mergeReceipt(receipt, deposit), nil
}

// TransferWithdraw 从合约账户取回到 from 的余额
func (acc *DB) TransferWithdraw(from, execaddr string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(execaddr, from, amount); err != nil {
		return nil, err
	}
	receipt, err := acc.ExecWithdraw(execaddr, from, amount)
	if err != nil {
		return nil, err
	}
	back, err := acc.Transfer(execaddr, from, amount)
	if err != nil {
		return nil, err
	}
	return mergeReceipt(receipt, back), nil
}

// ExecFrozen 合约账户 balance -> frozen
func (acc *DB) ExecFrozen(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execAdjust(addr, execaddr, amount, types.TyLogExecFrozen, func(a *types.Account) error {
		if a.Balance < amount {
			alog.Error("ExecFrozen", "addr", addr, "balance", a.Balance, "amount", amount)
			return types.ErrNoBalance
		}
		a.Balance -= amount
		a.Frozen += amount
		return nil
	})
}

// ExecDeposit 合约账户 balance 增加
func (acc *DB) ExecDeposit(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execAdjust(addr, execaddr, amount, types.TyLogExecDeposit, func(a *types.Account) error {
		a.Balance += amount
		return nil
	})
}

// ExecWithdraw 合约账户 balance 减少
func (acc *DB) ExecWithdraw(execaddr, addr string, amount int64) (*types.Receipt, error) {
	return acc.execAdjust(addr, execaddr, amount, types.TyLogExecWithdraw, func(a *types.Account) error {
		if a.Balance < amount {
			return types.ErrNoBalance
		}
		a.Balance -= amount
		return nil
	})
}

// ExecTransfer 合约内转账，from.balance -> to.balance
func (acc *DB) ExecTransfer(from, to, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execMove(from, to, execaddr, amount, false)
}

// ExecTransferFrozen 合约内转账，from.frozen -> to.balance，用于托管地址向赢家派奖
func (acc *DB) ExecTransferFrozen(from, to, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.execMove(from, to, execaddr, amount, true)
}

// execAdjust 单个合约账户的变动，fn 返回错误时不写库
func (acc *DB) execAdjust(addr, execaddr string, amount int64, ty int32, fn func(*types.Account) error) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	prev := *acc1
	if err := fn(acc1); err != nil {
		return nil, err
	}
	acc.SaveExecAccount(execaddr, acc1)
	return acc.execReceipt(ty, &types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: &prev, Current: acc1}), nil
}

func (acc *DB) execMove(from, to, execaddr string, amount int64, fromFrozen bool) (*types.Receipt, error) {
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadExecAccount(from, execaddr)
	accTo := acc.LoadExecAccount(to, execaddr)
	prevFrom, prevTo := *accFrom, *accTo

	src := &accFrom.Balance
	if fromFrozen {
		src = &accFrom.Frozen
	}
	if *src < amount {
		return nil, types.ErrNoBalance
	}
	*src -= amount
	accTo.Balance += amount

	acc.SaveExecAccount(execaddr, accFrom)
	acc.SaveExecAccount(execaddr, accTo)
	return acc.execReceipt(types.TyLogExecTransfer,
		&types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: &prevFrom, Current: accFrom},
		&types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: &prevTo, Current: accTo},
	), nil
}

// execReceipt 每个变动一条日志和一个 kv，顺序一致
func (acc *DB) execReceipt(ty int32, changes ...*types.ReceiptExecAccountTransfer) *types.Receipt {
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, r := range changes {
		receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: ty, Log: types.Encode(r)})
		receipt.KV = append(receipt.KV, acc.GetExecKVSet(r.ExecAddr, r.Current)...)
	}
	return receipt
}

func mergeReceipt(receipt, other *types.Receipt) *types.Receipt {
	receipt.Logs = append(receipt.Logs, other.Logs...)
	receipt.KV = append(receipt.KV, other.KV...)
	return receipt
}
