// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/arena/types"
	"google.golang.org/protobuf/encoding/protowire"
)

// ReceiptArena arena 记录变化的日志
type ReceiptArena struct {
	Addr         string `json:"addr"`
	Authority    string `json:"authority"`
	TotalMatches int64  `json:"totalMatches"`
	TotalPlayers int64  `json:"totalPlayers"`
	FeeBalance   int64  `json:"feeBalance"`
	Amount       int64  `json:"amount,omitempty"`
}

// Marshal encode
func (r *ReceiptArena) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, r.Addr)
	e.String(2, r.Authority)
	e.Int64(3, r.TotalMatches)
	e.Int64(4, r.TotalPlayers)
	e.Int64(5, r.FeeBalance)
	e.Int64(6, r.Amount)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReceiptArena) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			r.Addr = d.String(typ)
		case 2:
			r.Authority = d.String(typ)
		case 3:
			r.TotalMatches = d.Int64(typ)
		case 4:
			r.TotalPlayers = d.Int64(typ)
		case 5:
			r.FeeBalance = d.Int64(typ)
		case 6:
			r.Amount = d.Int64(typ)
		default:
			return false
		}
		return true
	})
}

// ReceiptArenaGame 对局状态变化的日志，ExecLocal 根据它建立地址索引
type ReceiptArenaGame struct {
	Kind    int32  `json:"kind"`
	ID      string `json:"id"`
	Addr    string `json:"addr"`
	PlayerA string `json:"playerA"`
	PlayerB string `json:"playerB"`
	Stake   int64  `json:"stake"`
	Phase   string `json:"phase"`
	Round   int32  `json:"round"`
	ScoreA  int32  `json:"scoreA"`
	ScoreB  int32  `json:"scoreB"`
	Settled bool   `json:"settled"`
	Heads   bool   `json:"heads"`
}

// Marshal encode
func (r *ReceiptArenaGame) Marshal() []byte {
	var e types.WireEncoder
	e.Int32(1, r.Kind)
	e.String(2, r.ID)
	e.String(3, r.Addr)
	e.String(4, r.PlayerA)
	e.String(5, r.PlayerB)
	e.Int64(6, r.Stake)
	e.String(7, r.Phase)
	e.Int32(8, r.Round)
	e.Int32(9, r.ScoreA)
	e.Int32(10, r.ScoreB)
	e.Bool(11, r.Settled)
	e.Bool(12, r.Heads)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReceiptArenaGame) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			r.Kind = d.Int32(typ)
		case 2:
			r.ID = d.String(typ)
		case 3:
			r.Addr = d.String(typ)
		case 4:
			r.PlayerA = d.String(typ)
		case 5:
			r.PlayerB = d.String(typ)
		case 6:
			r.Stake = d.Int64(typ)
		case 7:
			r.Phase = d.String(typ)
		case 8:
			r.Round = d.Int32(typ)
		case 9:
			r.ScoreA = d.Int32(typ)
		case 10:
			r.ScoreB = d.Int32(typ)
		case 11:
			r.Settled = d.Bool(typ)
		case 12:
			r.Heads = d.Bool(typ)
		default:
			return false
		}
		return true
	})
}

// ReceiptArenaSettle 结算日志
type ReceiptArenaSettle struct {
	Kind         int32  `json:"kind"`
	ID           string `json:"id"`
	Winner       string `json:"winner"`
	Loser        string `json:"loser"`
	Payout       int64  `json:"payout"`
	Fee          int64  `json:"fee"`
	Delta        int32  `json:"delta"`
	WinnerRating int32  `json:"winnerRating"`
	LoserRating  int32  `json:"loserRating"`
}

// Marshal encode
func (r *ReceiptArenaSettle) Marshal() []byte {
	var e types.WireEncoder
	e.Int32(1, r.Kind)
	e.String(2, r.ID)
	e.String(3, r.Winner)
	e.String(4, r.Loser)
	e.Int64(5, r.Payout)
	e.Int64(6, r.Fee)
	e.Int32(7, r.Delta)
	e.Int32(8, r.WinnerRating)
	e.Int32(9, r.LoserRating)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReceiptArenaSettle) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			r.Kind = d.Int32(typ)
		case 2:
			r.ID = d.String(typ)
		case 3:
			r.Winner = d.String(typ)
		case 4:
			r.Loser = d.String(typ)
		case 5:
			r.Payout = d.Int64(typ)
		case 6:
			r.Fee = d.Int64(typ)
		case 7:
			r.Delta = d.Int32(typ)
		case 8:
			r.WinnerRating = d.Int32(typ)
		case 9:
			r.LoserRating = d.Int32(typ)
		default:
			return false
		}
		return true
	})
}

// ArenaRecord 本地数据库中地址索引的值
type ArenaRecord struct {
	Kind   int32  `json:"kind"`
	ID     string `json:"id"`
	Height int64  `json:"height"`
}

// Marshal encode
func (r *ArenaRecord) Marshal() []byte {
	var e types.WireEncoder
	e.Int32(1, r.Kind)
	e.String(2, r.ID)
	e.Int64(3, r.Height)
	return e.Encoded()
}

// Unmarshal decode
func (r *ArenaRecord) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			r.Kind = d.Int32(typ)
		case 2:
			r.ID = d.String(typ)
		case 3:
			r.Height = d.Int64(typ)
		default:
			return false
		}
		return true
	})
}

// ReqArenaList 按地址分页查询参与过的对局，Height 为上一页最后一条的高度
type ReqArenaList struct {
	Addr      string
	Kind      int32
	Count     int32
	Direction int32
	Height    int64
}

// Marshal encode
func (r *ReqArenaList) Marshal() []byte {
	var e types.WireEncoder
	e.String(1, r.Addr)
	e.Int32(2, r.Kind)
	e.Int32(3, r.Count)
	e.Int32(4, r.Direction)
	e.Int64(5, r.Height)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReqArenaList) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		switch num {
		case 1:
			r.Addr = d.String(typ)
		case 2:
			r.Kind = d.Int32(typ)
		case 3:
			r.Count = d.Int32(typ)
		case 4:
			r.Direction = d.Int32(typ)
		case 5:
			r.Height = d.Int64(typ)
		default:
			return false
		}
		return true
	})
}

// ReplyArenaList 对局列表
type ReplyArenaList struct {
	Records []*ArenaRecord `json:"records"`
}

// Marshal encode
func (r *ReplyArenaList) Marshal() []byte {
	var e types.WireEncoder
	for _, record := range r.Records {
		e.Message(1, record)
	}
	return e.Encoded()
}

// Unmarshal decode
func (r *ReplyArenaList) Unmarshal(data []byte) error {
	return decodeFields(data, func(d *types.WireDecoder, num protowire.Number, typ protowire.Type) bool {
		if num == 1 {
			record := &ArenaRecord{}
			d.Message(typ, record)
			r.Records = append(r.Records, record)
			return true
		}
		return false
	})
}
