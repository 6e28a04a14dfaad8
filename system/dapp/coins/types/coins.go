// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/arena/types"
)

// CoinsAction coins 的交易 payload，只有与 Ty 对应的字段有效
type CoinsAction struct {
	Ty             int32
	Transfer       *CoinsTransfer
	Genesis        *CoinsGenesis
	Withdraw       *CoinsWithdraw
	TransferToExec *CoinsTransferToExec
}

// GetTy action type
func (a *CoinsAction) GetTy() int32 {
	return a.Ty
}

// GetActionValue 与 Ty 对应的 action
func (a *CoinsAction) GetActionValue() types.Message {
	switch a.Ty {
	case CoinsActionTransfer:
		if a.Transfer != nil {
			return a.Transfer
		}
	case CoinsActionGenesis:
		if a.Genesis != nil {
			return a.Genesis
		}
	case CoinsActionWithdraw:
		if a.Withdraw != nil {
			return a.Withdraw
		}
	case CoinsActionTransferToExec:
		if a.TransferToExec != nil {
			return a.TransferToExec
		}
	}
	return nil
}

// Marshal encode
func (a *CoinsAction) Marshal() []byte {
	var e types.WireEncoder
	if a.Transfer != nil {
		e.Message(1, a.Transfer)
	}
	if a.Genesis != nil {
		e.Message(2, a.Genesis)
	}
	if a.Withdraw != nil {
		e.Message(3, a.Withdraw)
	}
	if a.TransferToExec != nil {
		e.Message(4, a.TransferToExec)
	}
	e.Int32(5, a.Ty)
	return e.Encoded()
}

// Unmarshal decode
func (a *CoinsAction) Unmarshal(data []byte) error {
	d := types.NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			a.Transfer = &CoinsTransfer{}
			d.Message(typ, a.Transfer)
		case 2:
			a.Genesis = &CoinsGenesis{}
			d.Message(typ, a.Genesis)
		case 3:
			a.Withdraw = &CoinsWithdraw{}
			d.Message(typ, a.Withdraw)
		case 4:
			a.TransferToExec = &CoinsTransferToExec{}
			d.Message(typ, a.TransferToExec)
		case 5:
			a.Ty = d.Int32(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// CoinsTransfer 转账到 tx.To
type CoinsTransfer struct {
	Amount int64
	Note   string
}

// Marshal encode
func (c *CoinsTransfer) Marshal() []byte {
	var e types.WireEncoder
	e.Int64(1, c.Amount)
	e.String(2, c.Note)
	return e.Encoded()
}

// Unmarshal decode
func (c *CoinsTransfer) Unmarshal(data []byte) error {
	d := types.NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			c.Amount = d.Int64(typ)
		case 2:
			c.Note = d.String(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// CoinsGenesis 充值
type CoinsGenesis struct {
	Amount        int64
	ReturnAddress string
}

// Marshal encode
func (c *CoinsGenesis) Marshal() []byte {
	var e types.WireEncoder
	e.Int64(1, c.Amount)
	e.String(2, c.ReturnAddress)
	return e.Encoded()
}

// Unmarshal decode
func (c *CoinsGenesis) Unmarshal(data []byte) error {
	d := types.NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			c.Amount = d.Int64(typ)
		case 2:
			c.ReturnAddress = d.String(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// CoinsWithdraw 从合约中取回
type CoinsWithdraw struct {
	Amount   int64
	ExecName string
}

// Marshal encode
func (c *CoinsWithdraw) Marshal() []byte {
	var e types.WireEncoder
	e.Int64(1, c.Amount)
	e.String(2, c.ExecName)
	return e.Encoded()
}

// Unmarshal decode
func (c *CoinsWithdraw) Unmarshal(data []byte) error {
	d := types.NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			c.Amount = d.Int64(typ)
		case 2:
			c.ExecName = d.String(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// CoinsTransferToExec 转入合约
type CoinsTransferToExec struct {
	Amount   int64
	ExecName string
}

// Marshal encode
func (c *CoinsTransferToExec) Marshal() []byte {
	var e types.WireEncoder
	e.Int64(1, c.Amount)
	e.String(2, c.ExecName)
	return e.Encoded()
}

// Unmarshal decode
func (c *CoinsTransferToExec) Unmarshal(data []byte) error {
	d := types.NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			c.Amount = d.Int64(typ)
		case 2:
			c.ExecName = d.String(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}
