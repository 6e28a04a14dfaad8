// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"
	"encoding/json"

	"github.com/33cn/arena/common"
	"github.com/33cn/arena/common/address"
	"github.com/google/uuid"
)

// Transaction 交易。Sender 由外部完成签名校验后填入，执行器只做相等比较
type Transaction struct {
	Execer  []byte
	Payload []byte
	Nonce   int64
	To      string
	Sender  string
}

// Marshal encode
func (tx *Transaction) Marshal() []byte {
	var e WireEncoder
	e.Raw(1, tx.Execer)
	e.Raw(2, tx.Payload)
	e.Int64(3, tx.Nonce)
	e.String(4, tx.To)
	e.String(5, tx.Sender)
	return e.Encoded()
}

// Unmarshal decode
func (tx *Transaction) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			tx.Execer = d.Raw(typ)
		case 2:
			tx.Payload = d.Raw(typ)
		case 3:
			tx.Nonce = d.Int64(typ)
		case 4:
			tx.To = d.String(typ)
		case 5:
			tx.Sender = d.String(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// Hash 交易哈希
func (tx *Transaction) Hash() []byte {
	return common.Sha256(Encode(tx))
}

// From 交易发送者
func (tx *Transaction) From() string {
	return tx.Sender
}

// GetRealToAddr 交易的目标地址，没有填写时为执行器地址
func (tx *Transaction) GetRealToAddr() string {
	if tx.To == "" {
		return address.ExecAddress(string(tx.Execer))
	}
	return tx.To
}

// JSON 交易的 json 表示
func (tx *Transaction) JSON() string {
	type transaction struct {
		Hash    string `json:"hash"`
		Execer  string `json:"execer"`
		Payload string `json:"payload"`
		Nonce   int64  `json:"nonce"`
		To      string `json:"to"`
		From    string `json:"from"`
	}
	t := &transaction{
		Hash:    common.ToHex(tx.Hash()),
		Execer:  string(tx.Execer),
		Payload: common.ToHex(tx.Payload),
		Nonce:   tx.Nonce,
		To:      tx.To,
		From:    tx.Sender,
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// NewNonce 生成随机 nonce
func NewNonce() int64 {
	u := uuid.New()
	return int64(binary.BigEndian.Uint64(u[:8]) >> 1)
}

// CreateFormatTx 构造一个发往执行器的交易
func CreateFormatTx(execer string, payload []byte) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: payload,
		Nonce:   NewNonce(),
		To:      address.ExecAddress(execer),
	}
}
