// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/arena/common/address"
	"github.com/33cn/arena/types"
)

// action
const (
	CoinsActionTransfer       = 1
	CoinsActionGenesis        = 2
	CoinsActionWithdraw       = 3
	CoinsActionTransferToExec = 10
)

var (
	// CoinsX coins exec name
	CoinsX = types.ExecerCoins
	// ExecerCoins execer coins
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer":       CoinsActionTransfer,
		"TransferToExec": CoinsActionTransferToExec,
		"Withdraw":       CoinsActionWithdraw,
		"Genesis":        CoinsActionGenesis,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType defines exec type
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new coinstype
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName  return coins string
func (c *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload  return payload
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

// GetTypeMap return actionname for map
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

// Config [exec.sub.coins]
type Config struct {
	// Faucet 允许 Genesis 交易直接给地址充值，只用于本地测试
	Faucet bool `json:"faucet"`
}

// CreateTransferToExec 构造转入合约的交易，tx.To 是合约地址
func CreateTransferToExec(execName string, amount int64) *types.Transaction {
	action := &CoinsAction{Ty: CoinsActionTransferToExec, TransferToExec: &CoinsTransferToExec{Amount: amount, ExecName: execName}}
	tx := types.CreateFormatTx(CoinsX, types.Encode(action))
	tx.To = address.ExecAddress(execName)
	return tx
}

// CreateWithdraw 构造从合约取回的交易
func CreateWithdraw(execName string, amount int64) *types.Transaction {
	action := &CoinsAction{Ty: CoinsActionWithdraw, Withdraw: &CoinsWithdraw{Amount: amount, ExecName: execName}}
	tx := types.CreateFormatTx(CoinsX, types.Encode(action))
	tx.To = address.ExecAddress(execName)
	return tx
}

// CreateTransfer 构造转账交易
func CreateTransfer(to string, amount int64, note string) *types.Transaction {
	action := &CoinsAction{Ty: CoinsActionTransfer, Transfer: &CoinsTransfer{Amount: amount, Note: note}}
	tx := types.CreateFormatTx(CoinsX, types.Encode(action))
	tx.To = to
	return tx
}

// CreateGenesis 构造充值交易，addr 为空时充值给发送者
func CreateGenesis(addr string, amount int64) *types.Transaction {
	action := &CoinsAction{Ty: CoinsActionGenesis, Genesis: &CoinsGenesis{Amount: amount, ReturnAddress: addr}}
	return types.CreateFormatTx(CoinsX, types.Encode(action))
}
