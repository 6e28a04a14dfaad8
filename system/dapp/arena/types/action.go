// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/arena/types"
	"google.golang.org/protobuf/encoding/protowire"
)

// decodeFields 遍历 data 中的字段，未处理的字段由 f 返回 false 后跳过
func decodeFields(data []byte, f func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool) error {
	d := types.NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		if !f(d, num, typ) {
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// ArenaAction arena 的交易 payload，只有与 Ty 对应的字段有效
type ArenaAction struct {
	Ty           int32
	Initialize   *ArenaInitialize
	Register     *ArenaRegister
	RpsCreate    *RpsCreate
	RpsJoin      *RpsJoin
	RpsCommit    *RpsCommit
	RpsReveal    *RpsReveal
	RpsSettle    *RpsSettle
	FlipCreate   *FlipCreate
	FlipJoin     *FlipJoin
	FlipReveal   *FlipReveal
	FlipSettle   *FlipSettle
	WithdrawFees *ArenaWithdrawFees
}

// GetTy action type
func (a *ArenaAction) GetTy() int32 {
	return a.Ty
}

// GetActionValue 与 Ty 对应的 action
func (a *ArenaAction) GetActionValue() types.Message {
	var v types.Message
	switch a.Ty {
	case ArenaActionInitialize:
		v = nilOr(a.Initialize != nil, a.Initialize)
	case ArenaActionRegister:
		v = nilOr(a.Register != nil, a.Register)
	case ArenaActionRpsCreate:
		v = nilOr(a.RpsCreate != nil, a.RpsCreate)
	case ArenaActionRpsJoin:
		v = nilOr(a.RpsJoin != nil, a.RpsJoin)
	case ArenaActionRpsCommit:
		v = nilOr(a.RpsCommit != nil, a.RpsCommit)
	case ArenaActionRpsReveal:
		v = nilOr(a.RpsReveal != nil, a.RpsReveal)
	case ArenaActionRpsSettle:
		v = nilOr(a.RpsSettle != nil, a.RpsSettle)
	case ArenaActionFlipCreate:
		v = nilOr(a.FlipCreate != nil, a.FlipCreate)
	case ArenaActionFlipJoin:
		v = nilOr(a.FlipJoin != nil, a.FlipJoin)
	case ArenaActionFlipReveal:
		v = nilOr(a.FlipReveal != nil, a.FlipReveal)
	case ArenaActionFlipSettle:
		v = nilOr(a.FlipSettle != nil, a.FlipSettle)
	case ArenaActionWithdrawFees:
		v = nilOr(a.WithdrawFees != nil, a.WithdrawFees)
	}
	return v
}

// 返回真正的 nil 接口，避免 typed nil
func nilOr(ok bool, m types.Message) types.Message {
	if !ok {
		return nil
	}
	return m
}

// Marshal encode
func (a *ArenaAction) Marshal() []byte {
	var e types.WireEncoder
	if a.Initialize != nil {
		e.Message(1, a.Initialize)
	}
	if a.Register != nil {
		e.Message(2, a.Register)
	}
	if a.RpsCreate != nil {
		e.Message(3, a.RpsCreate)
	}
	if a.RpsJoin != nil {
		e.Message(4, a.RpsJoin)
	}
	if a.RpsCommit != nil {
		e.Message(5, a.RpsCommit)
	}
	if a.RpsReveal != nil {
		e.Message(6, a.RpsReveal)
	}
	if a.RpsSettle != nil {
		e.Message(7, a.RpsSettle)
	}
	if a.FlipCreate != nil {
		e.Message(8, a.FlipCreate)
	}
	if a.FlipJoin != nil {
		e.Message(9, a.FlipJoin)
	}
	if a.FlipReveal != nil {
		e.Message(10, a.FlipReveal)
	}
	if a.FlipSettle != nil {
		e.Message(11, a.FlipSettle)
	}
	if a.WithdrawFees != nil {
		e.Message(12, a.WithdrawFees)
	}
	e.Int32(20, a.Ty)
	return e.Encoded()
}

// Unmarshal decode
func (a *ArenaAction) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			a.Initialize = &ArenaInitialize{}
			d.Message(typ, a.Initialize)
		case 2:
			a.Register = &ArenaRegister{}
			d.Message(typ, a.Register)
		case 3:
			a.RpsCreate = &RpsCreate{}
			d.Message(typ, a.RpsCreate)
		case 4:
			a.RpsJoin = &RpsJoin{}
			d.Message(typ, a.RpsJoin)
		case 5:
			a.RpsCommit = &RpsCommit{}
			d.Message(typ, a.RpsCommit)
		case 6:
			a.RpsReveal = &RpsReveal{}
			d.Message(typ, a.RpsReveal)
		case 7:
			a.RpsSettle = &RpsSettle{}
			d.Message(typ, a.RpsSettle)
		case 8:
			a.FlipCreate = &FlipCreate{}
			d.Message(typ, a.FlipCreate)
		case 9:
			a.FlipJoin = &FlipJoin{}
			d.Message(typ, a.FlipJoin)
		case 10:
			a.FlipReveal = &FlipReveal{}
			d.Message(typ, a.FlipReveal)
		case 11:
			a.FlipSettle = &FlipSettle{}
			d.Message(typ, a.FlipSettle)
		case 12:
			a.WithdrawFees = &ArenaWithdrawFees{}
			d.Message(typ, a.WithdrawFees)
		case 20:
			a.Ty = d.Int32(typ)
		default:
			return false
		}
		return true
	})
}

// ArenaInitialize 创建 arena，发送者成为 authority
type ArenaInitialize struct{}

// Marshal encode
func (*ArenaInitialize) Marshal() []byte { return nil }

// Unmarshal decode
func (*ArenaInitialize) Unmarshal(data []byte) error {
	return decodeFields(data, func(*types.WireDecoder, protowire.Number, protowire.Type) bool { return false })
}

// ArenaRegister 注册玩家
type ArenaRegister struct{}

// Marshal encode
func (*ArenaRegister) Marshal() []byte { return nil }

// Unmarshal decode
func (*ArenaRegister) Unmarshal(data []byte) error {
	return decodeFields(data, func(*types.WireDecoder, protowire.Number, protowire.Type) bool { return false })
}

// RpsCreate 创建猜拳对局并押注
type RpsCreate struct {
	Stake int64
}

// Marshal encode
func (r *RpsCreate) Marshal() []byte {
	var e types.WireEncoder
	e.Int64(1, r.Stake)
	return e.Encoded()
}

// Unmarshal decode
func (r *RpsCreate) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		if num == 1 {
			r.Stake = d.Int64(typ)
			return true
		}
		return false
	})
}

// RpsJoin 加入猜拳对局
type RpsJoin struct {
	MatchID string
}

// Marshal encode
func (r *RpsJoin) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, r.MatchID)
	return e.Encoded()
}

// Unmarshal decode
func (r *RpsJoin) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		if num == 1 {
			r.MatchID = d.String(typ)
			return true
		}
		return false
	})
}

// RpsCommit 提交当前回合的承诺 keccak256(choice || salt)
type RpsCommit struct {
	MatchID    string
	Commitment []byte
}

// Marshal encode
func (r *RpsCommit) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, r.MatchID)
	e.Raw(2, r.Commitment)
	return e.Encoded()
}

// Unmarshal decode
func (r *RpsCommit) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			r.MatchID = d.String(typ)
		case 2:
			r.Commitment = d.Raw(typ)
		default:
			return false
		}
		return true
	})
}

// RpsReveal 揭示当前回合的出手
type RpsReveal struct {
	MatchID string
	Choice  int32
	Salt    []byte
}

// Marshal encode
func (r *RpsReveal) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, r.MatchID)
	e.Int32(2, r.Choice)
	e.Raw(3, r.Salt)
	return e.Encoded()
}

// Unmarshal decode
func (r *RpsReveal) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			r.MatchID = d.String(typ)
		case 2:
			r.Choice = d.Int32(typ)
		case 3:
			r.Salt = d.Raw(typ)
		default:
			return false
		}
		return true
	})
}

// RpsSettle 结算已经结束的猜拳对局，任何人都可以发起
type RpsSettle struct {
	MatchID string
}

// Marshal encode
func (r *RpsSettle) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, r.MatchID)
	return e.Encoded()
}

// Unmarshal decode
func (r *RpsSettle) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		if num == 1 {
			r.MatchID = d.String(typ)
			return true
		}
		return false
	})
}

// FlipCreate 创建掷硬币，同时提交 keccak256(secret)
type FlipCreate struct {
	Stake      int64
	Commitment []byte
}

// Marshal encode
func (f *FlipCreate) Marshal() []byte {
	var e types.WireEncoder
	e.Int64(1, f.Stake)
	e.Raw(2, f.Commitment)
	return e.Encoded()
}

// Unmarshal decode
func (f *FlipCreate) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			f.Stake = d.Int64(typ)
		case 2:
			f.Commitment = d.Raw(typ)
		default:
			return false
		}
		return true
	})
}

// FlipJoin 加入掷硬币并提交承诺
type FlipJoin struct {
	FlipID     string
	Commitment []byte
}

// Marshal encode
func (f *FlipJoin) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, f.FlipID)
	e.Raw(2, f.Commitment)
	return e.Encoded()
}

// Unmarshal decode
func (f *FlipJoin) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			f.FlipID = d.String(typ)
		case 2:
			f.Commitment = d.Raw(typ)
		default:
			return false
		}
		return true
	})
}

// FlipReveal 揭示 secret
type FlipReveal struct {
	FlipID string
	Secret []byte
}

// Marshal encode
func (f *FlipReveal) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, f.FlipID)
	e.Raw(2, f.Secret)
	return e.Encoded()
}

// Unmarshal decode
func (f *FlipReveal) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			f.FlipID = d.String(typ)
		case 2:
			f.Secret = d.Raw(typ)
		default:
			return false
		}
		return true
	})
}

// FlipSettle 结算掷硬币
type FlipSettle struct {
	FlipID string
}

// Marshal encode
func (f *FlipSettle) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, f.FlipID)
	return e.Encoded()
}

// Unmarshal decode
func (f *FlipSettle) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		if num == 1 {
			f.FlipID = d.String(typ)
			return true
		}
		return false
	})
}

// ArenaWithdrawFees authority 从手续费池中取出手续费
type ArenaWithdrawFees struct {
	Amount int64
}

// Marshal encode
func (w *ArenaWithdrawFees) Marshal() []byte {
	var e types.WireEncoder
	e.Int64(1, w.Amount)
	return e.Encoded()
}

// Unmarshal decode
func (w *ArenaWithdrawFees) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		if num == 1 {
			w.Amount = d.Int64(typ)
			return true
		}
		return false
	})
}
