// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/arena/common/address"
	dbm "github.com/33cn/arena/common/db"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
)

var (
	statePrefix = "mavl-" + aty.ArenaX + "-"
	localPrefix = "LODB-" + aty.ArenaX + "-"
)

func arenaKey() []byte {
	return []byte(statePrefix + "arena")
}

func playerKey(addr string) []byte {
	return []byte(statePrefix + "player-" + addr)
}

func rpsKey(id string) []byte {
	return []byte(statePrefix + "rps-" + id)
}

func flipKey(id string) []byte {
	return []byte(statePrefix + "flip-" + id)
}

// EscrowAddress 对局的托管地址，押注在 arena 合约中以冻结资金的形式保存在这个地址下
func EscrowAddress(id string) string {
	return address.ExecAddress(aty.ArenaX + "-escrow-" + id)
}

// FeePoolAddress 手续费池的地址
func FeePoolAddress() string {
	return address.ExecAddress(aty.ArenaX + "-fee")
}

// 地址索引: addr:kind:height
func calcAddrIndexKey(addr string, kind int32, height int64) []byte {
	return []byte(fmt.Sprintf("%saddr:%s:%d:%018d", localPrefix, addr, kind, height))
}

func calcAddrIndexPrefix(addr string, kind int32) []byte {
	return []byte(fmt.Sprintf("%saddr:%s:%d:", localPrefix, addr, kind))
}

func getRecord(db dbm.KV, key []byte, notFound error, msg types.Message) error {
	value, err := db.Get(key)
	if err == types.ErrNotFound {
		return notFound
	}
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return notFound
	}
	return types.Decode(value, msg)
}

func getArena(db dbm.KV) (*aty.Arena, error) {
	var arena aty.Arena
	if err := getRecord(db, arenaKey(), aty.ErrArenaNotInitialized, &arena); err != nil {
		return nil, err
	}
	return &arena, nil
}

func getPlayer(db dbm.KV, addr string) (*aty.PlayerStats, error) {
	var stats aty.PlayerStats
	if err := getRecord(db, playerKey(addr), aty.ErrPlayerNotRegistered, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func getRpsMatch(db dbm.KV, id string) (*aty.RpsMatch, error) {
	var match aty.RpsMatch
	if err := getRecord(db, rpsKey(id), aty.ErrRecordNotFound, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func getCoinFlip(db dbm.KV, id string) (*aty.CoinFlip, error) {
	var flip aty.CoinFlip
	if err := getRecord(db, flipKey(id), aty.ErrRecordNotFound, &flip); err != nil {
		return nil, err
	}
	return &flip, nil
}

type record interface {
	types.Message
	Validate() error
}

// save 写入状态数据库的缓存，同时返回需要放入 receipt 的 kv。
// 记录不能写成定长编码时返回 ErrInvalidRecord，不写库
func (action *Action) save(key []byte, msg record) ([]*types.KeyValue, error) {
	if err := msg.Validate(); err != nil {
		alog.Error("save", "key", string(key), "err", err)
		return nil, err
	}
	value := types.Encode(msg)
	if err := action.db.Set(key, value); err != nil {
		alog.Error("save", "key", string(key), "err", err)
		return nil, err
	}
	return []*types.KeyValue{{Key: key, Value: value}}, nil
}

func (action *Action) saveArena(arena *aty.Arena) ([]*types.KeyValue, error) {
	return action.save(arenaKey(), arena)
}

func (action *Action) savePlayer(stats *aty.PlayerStats) ([]*types.KeyValue, error) {
	return action.save(playerKey(stats.Owner), stats)
}

func (action *Action) saveRps(match *aty.RpsMatch) ([]*types.KeyValue, error) {
	return action.save(rpsKey(match.ID), match)
}

func (action *Action) saveFlip(flip *aty.CoinFlip) ([]*types.KeyValue, error) {
	return action.save(flipKey(flip.ID), flip)
}

func (action *Action) arenaLog(ty int32, arena *aty.Arena, amount int64) *types.ReceiptLog {
	r := &aty.ReceiptArena{
		Addr:         action.fromaddr,
		Authority:    arena.Authority,
		TotalMatches: int64(arena.TotalMatches),
		TotalPlayers: int64(arena.TotalPlayers),
		FeeBalance:   int64(arena.FeeBalance),
		Amount:       amount,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func (action *Action) rpsLog(ty int32, match *aty.RpsMatch) *types.ReceiptLog {
	r := &aty.ReceiptArenaGame{
		Kind:    aty.KindRps,
		ID:      match.ID,
		Addr:    action.fromaddr,
		PlayerA: match.PlayerA,
		PlayerB: match.PlayerB,
		Stake:   int64(match.Stake),
		Phase:   match.Phase.String(),
		Round:   int32(match.Round),
		ScoreA:  int32(match.Scores[aty.SideA]),
		ScoreB:  int32(match.Scores[aty.SideB]),
		Settled: match.Settled,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func (action *Action) flipLog(ty int32, flip *aty.CoinFlip) *types.ReceiptLog {
	r := &aty.ReceiptArenaGame{
		Kind:    aty.KindFlip,
		ID:      flip.ID,
		Addr:    action.fromaddr,
		PlayerA: flip.PlayerA,
		PlayerB: flip.PlayerB,
		Stake:   int64(flip.Stake),
		Phase:   flip.Phase.String(),
		Settled: flip.Settled,
		Heads:   flip.Heads,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}
