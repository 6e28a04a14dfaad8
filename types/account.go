// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Account 账户余额
type Account struct {
	Currency int32  `json:"currency"`
	Balance  int64  `json:"balance"`
	Frozen   int64  `json:"frozen"`
	Addr     string `json:"addr"`
}

// GetBalance get balance
func (a *Account) GetBalance() int64 {
	if a == nil {
		return 0
	}
	return a.Balance
}

// GetFrozen get frozen
func (a *Account) GetFrozen() int64 {
	if a == nil {
		return 0
	}
	return a.Frozen
}

// Marshal encode
func (a *Account) Marshal() []byte {
	var e WireEncoder
	e.Int32(1, a.Currency)
	e.Int64(2, a.Balance)
	e.Int64(3, a.Frozen)
	e.String(4, a.Addr)
	return e.Encoded()
}

// Unmarshal decode
func (a *Account) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			a.Currency = d.Int32(typ)
		case 2:
			a.Balance = d.Int64(typ)
		case 3:
			a.Frozen = d.Int64(typ)
		case 4:
			a.Addr = d.String(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// ReceiptAccountTransfer 账户余额变化日志
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// Marshal encode
func (r *ReceiptAccountTransfer) Marshal() []byte {
	var e WireEncoder
	e.Message(1, r.Prev)
	e.Message(2, r.Current)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReceiptAccountTransfer) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			r.Prev = &Account{}
			d.Message(typ, r.Prev)
		case 2:
			r.Current = &Account{}
			d.Message(typ, r.Current)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// ReceiptExecAccountTransfer 合约账户余额变化日志
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `json:"execAddr"`
	Prev     *Account `json:"prev"`
	Current  *Account `json:"current"`
}

// Marshal encode
func (r *ReceiptExecAccountTransfer) Marshal() []byte {
	var e WireEncoder
	e.String(1, r.ExecAddr)
	e.Message(2, r.Prev)
	e.Message(3, r.Current)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReceiptExecAccountTransfer) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			r.ExecAddr = d.String(typ)
		case 2:
			r.Prev = &Account{}
			d.Message(typ, r.Prev)
		case 3:
			r.Current = &Account{}
			d.Message(typ, r.Current)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// ReqBalance 余额查询
type ReqBalance struct {
	Addr     string
	Execer   string
	ExecAddr string
}

// Marshal encode
func (r *ReqBalance) Marshal() []byte {
	var e WireEncoder
	e.String(1, r.Addr)
	e.String(2, r.Execer)
	e.String(3, r.ExecAddr)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReqBalance) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			r.Addr = d.String(typ)
		case 2:
			r.Execer = d.String(typ)
		case 3:
			r.ExecAddr = d.String(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}
