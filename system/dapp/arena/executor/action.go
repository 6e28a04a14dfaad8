// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arena/account"
	"github.com/33cn/arena/common"
	dbm "github.com/33cn/arena/common/db"
	drivers "github.com/33cn/arena/system/dapp"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	rpsCreatedCounter  = go_metrics.GetOrRegisterCounter("arena.rps.created", nil)
	rpsDrawCounter     = go_metrics.GetOrRegisterCounter("arena.rps.draw", nil)
	flipCreatedCounter = go_metrics.GetOrRegisterCounter("arena.flip.created", nil)
	settledCounter     = go_metrics.GetOrRegisterCounter("arena.settled", nil)
	feeCounter         = go_metrics.GetOrRegisterCounter("arena.fee", nil)
)

// Action 一个 arena 交易的执行环境。每个操作都重新从状态数据库读取记录并检查所有前置条件
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
}

// NewAction new action
func NewAction(a *Arena, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: a.GetCoinsAccount(),
		db:           a.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    a.GetBlockTime(),
		height:       a.GetHeight(),
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
		index:        index,
	}
}

// resolveSide 调用者在对局中是哪一方
func resolveSide(playerA, playerB, caller string) (aty.Side, error) {
	switch {
	case caller == "":
		return aty.SideA, aty.ErrNotPlayer
	case caller == playerA:
		return aty.SideA, nil
	case playerB != "" && caller == playerB:
		return aty.SideB, nil
	}
	return aty.SideA, aty.ErrNotPlayer
}

// escrowIn 押注从调用者的合约余额转入对局的托管地址并冻结
func (action *Action) escrowIn(id string, amount int64) (*types.Receipt, error) {
	escrow := EscrowAddress(id)
	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, escrow, action.execaddr, amount)
	if err != nil {
		alog.Error("escrowIn.ExecTransfer", "addr", action.fromaddr, "escrow", escrow, "amount", amount, "err", err)
		return nil, err
	}
	receipt2, err := action.coinsAccount.ExecFrozen(escrow, action.execaddr, amount)
	if err != nil {
		alog.Error("escrowIn.ExecFrozen", "escrow", escrow, "amount", amount, "err", err)
		return nil, err
	}
	receipt.KV = append(receipt.KV, receipt2.KV...)
	receipt.Logs = append(receipt.Logs, receipt2.Logs...)
	return receipt, nil
}

// Initialize 创建 arena，发送者成为 authority
func (action *Action) Initialize(initialize *aty.ArenaInitialize) (*types.Receipt, error) {
	_, err := getArena(action.db)
	if err == nil {
		return nil, aty.ErrArenaExists
	}
	if err != aty.ErrArenaNotInitialized {
		return nil, err
	}
	if cfg.Initializer != "" && cfg.Initializer != action.fromaddr {
		alog.Error("Initialize", "addr", action.fromaddr, "initializer", cfg.Initializer, "err", aty.ErrNotAuthority)
		return nil, aty.ErrNotAuthority
	}
	arena := &aty.Arena{
		Authority:  action.fromaddr,
		FeeRateBps: aty.FeeRateBps,
	}
	kv, err := action.saveArena(arena)
	if err != nil {
		return nil, err
	}
	logs := []*types.ReceiptLog{action.arenaLog(aty.TyLogArenaInit, arena, 0)}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Register 注册玩家，初始积分 1200
func (action *Action) Register(reg *aty.ArenaRegister) (*types.Receipt, error) {
	arena, err := getArena(action.db)
	if err != nil {
		return nil, err
	}
	_, err = getPlayer(action.db, action.fromaddr)
	if err == nil {
		return nil, aty.ErrPlayerExists
	}
	if err != aty.ErrPlayerNotRegistered {
		return nil, err
	}
	stats := &aty.PlayerStats{
		Owner:  action.fromaddr,
		Rating: aty.InitialRating,
	}
	arena.TotalPlayers++
	kv, err := action.savePlayer(stats)
	if err != nil {
		return nil, err
	}
	saved, err := action.saveArena(arena)
	if err != nil {
		return nil, err
	}
	kv = append(kv, saved...)
	logs := []*types.ReceiptLog{action.arenaLog(aty.TyLogArenaRegister, arena, 0)}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// WithdrawFees authority 把手续费池中的资金转到自己的合约余额
func (action *Action) WithdrawFees(withdraw *aty.ArenaWithdrawFees) (*types.Receipt, error) {
	if withdraw.Amount <= 0 {
		return nil, types.ErrAmount
	}
	arena, err := getArena(action.db)
	if err != nil {
		return nil, err
	}
	if arena.Authority != action.fromaddr {
		alog.Error("WithdrawFees", "addr", action.fromaddr, "authority", arena.Authority, "err", aty.ErrNotAuthority)
		return nil, aty.ErrNotAuthority
	}
	if uint64(withdraw.Amount) > arena.FeeBalance {
		return nil, aty.ErrInsufficientFees
	}
	receipt, err := action.coinsAccount.ExecTransfer(FeePoolAddress(), action.fromaddr, action.execaddr, withdraw.Amount)
	if err != nil {
		alog.Error("WithdrawFees.ExecTransfer", "addr", action.fromaddr, "amount", withdraw.Amount, "err", err)
		return nil, err
	}
	arena.FeeBalance -= uint64(withdraw.Amount)
	saved, err := action.saveArena(arena)
	if err != nil {
		return nil, err
	}
	kv := append(receipt.KV, saved...)
	logs := append(receipt.Logs, action.arenaLog(aty.TyLogArenaWithdraw, arena, withdraw.Amount))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// gameID 对局 id 是创建交易的哈希
func (action *Action) gameID() string {
	return common.ToHex(action.txhash)
}

// checkPlayer arena 已经初始化并且调用者已经注册
func (action *Action) checkPlayer() error {
	if _, err := getArena(action.db); err != nil {
		return err
	}
	_, err := getPlayer(action.db, action.fromaddr)
	return err
}
