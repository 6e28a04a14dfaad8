// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
)

const bpsDenominator = 10000

// SplitPot 奖池为两份押注，手续费向下取整，payout + fee 总是等于奖池
func SplitPot(stake uint64, feeRateBps uint16) (payout, fee uint64) {
	pot := 2 * stake
	bps := uint64(feeRateBps)
	//先除后乘，避免 pot*bps 溢出
	fee = (pot/bpsDenominator)*bps + (pot%bpsDenominator)*bps/bpsDenominator
	return pot - fee, fee
}

// RatingDelta 积分变化：积分差限制在 400 以内的线性期望，结果在 [1, 32]
func RatingDelta(winner, loser uint16) int64 {
	w, l := int64(winner), int64(loser)
	diff := w - l
	if diff < 0 {
		diff = -diff
	}
	if diff > aty.RatingMaxDiff {
		diff = aty.RatingMaxDiff
	}
	expected := int64(500) - diff*500/aty.RatingMaxDiff
	if w >= l {
		expected = 500 + diff*500/aty.RatingMaxDiff
	}
	delta := aty.RatingK * (1000 - expected) / 1000
	if delta < 1 {
		delta = 1
	}
	return delta
}

// UpdateRating 胜方加 delta，负方减 delta，结果不低于 100 也不超过 65535
func UpdateRating(winner, loser uint16) (uint16, uint16, int64) {
	delta := RatingDelta(winner, loser)
	return clampRating(int64(winner) + delta), clampRating(int64(loser) - delta), delta
}

func clampRating(r int64) uint16 {
	if r < aty.MinRating {
		return aty.MinRating
	}
	if r > 0xffff {
		return 0xffff
	}
	return uint16(r)
}

// settle 结算引擎，两种游戏共用：托管资金支付给胜方和手续费池，更新双方战绩和 arena 统计
func (action *Action) settle(ty int32, kind int32, id, winner, loser string, stake uint64) ([]*types.KeyValue, []*types.ReceiptLog, error) {
	var kv []*types.KeyValue
	var logs []*types.ReceiptLog
	arena, err := getArena(action.db)
	if err != nil {
		return nil, nil, err
	}
	winnerStats, err := getPlayer(action.db, winner)
	if err != nil {
		return nil, nil, err
	}
	loserStats, err := getPlayer(action.db, loser)
	if err != nil {
		return nil, nil, err
	}
	payout, fee := SplitPot(stake, arena.FeeRateBps)
	escrow := EscrowAddress(id)
	receipt, err := action.coinsAccount.ExecTransferFrozen(escrow, winner, action.execaddr, int64(payout))
	if err != nil {
		alog.Error("settle.payout", "id", id, "winner", winner, "amount", payout, "err", err)
		return nil, nil, err
	}
	kv = append(kv, receipt.KV...)
	logs = append(logs, receipt.Logs...)
	if fee > 0 {
		receipt, err = action.coinsAccount.ExecTransferFrozen(escrow, FeePoolAddress(), action.execaddr, int64(fee))
		if err != nil {
			alog.Error("settle.fee", "id", id, "amount", fee, "err", err)
			return nil, nil, err
		}
		kv = append(kv, receipt.KV...)
		logs = append(logs, receipt.Logs...)
	}
	left := action.coinsAccount.LoadExecAccount(escrow, action.execaddr)
	if left.GetBalance() != 0 || left.GetFrozen() != 0 {
		alog.Error("settle", "id", id, "escrow", escrow, "balance", left.GetBalance(), "frozen", left.GetFrozen(), "err", aty.ErrEscrowNotEmpty)
		return nil, nil, aty.ErrEscrowNotEmpty
	}

	var delta int64
	winnerStats.Rating, loserStats.Rating, delta = UpdateRating(winnerStats.Rating, loserStats.Rating)
	winnerStats.Wins++
	winnerStats.TotalWon += payout
	winnerStats.TotalWagered += stake
	winnerStats.MatchesPlayed++
	loserStats.Losses++
	loserStats.TotalWagered += stake
	loserStats.MatchesPlayed++
	arena.TotalMatches++
	arena.FeeBalance += fee

	for _, stats := range []*aty.PlayerStats{winnerStats, loserStats} {
		saved, err := action.savePlayer(stats)
		if err != nil {
			return nil, nil, err
		}
		kv = append(kv, saved...)
	}
	saved, err := action.saveArena(arena)
	if err != nil {
		return nil, nil, err
	}
	kv = append(kv, saved...)
	r := &aty.ReceiptArenaSettle{
		Kind:         kind,
		ID:           id,
		Winner:       winner,
		Loser:        loser,
		Payout:       int64(payout),
		Fee:          int64(fee),
		Delta:        int32(delta),
		WinnerRating: int32(winnerStats.Rating),
		LoserRating:  int32(loserStats.Rating),
	}
	logs = append(logs, &types.ReceiptLog{Ty: ty, Log: types.Encode(r)})
	settledCounter.Inc(1)
	feeCounter.Inc(int64(fee))
	return kv, logs, nil
}

// RpsSettle 结算已经结束的猜拳对局
func (action *Action) RpsSettle(settle *aty.RpsSettle) (*types.Receipt, error) {
	match, err := getRpsMatch(action.db, settle.MatchID)
	if err != nil {
		return nil, err
	}
	if !match.Settled {
		return nil, aty.ErrNotSettled
	}
	if match.Paid {
		return nil, aty.ErrAlreadyPaid
	}
	winner, ok := match.Winner()
	if !ok {
		return nil, aty.ErrNotSettled
	}
	kv, logs, err := action.settle(aty.TyLogRpsSettle, aty.KindRps, match.ID, match.Player(winner), match.Player(winner.Other()), match.Stake)
	if err != nil {
		return nil, err
	}
	match.Paid = true
	saved, err := action.saveRps(match)
	if err != nil {
		return nil, err
	}
	kv = append(kv, saved...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// FlipSettle 结算已经揭示的掷硬币
func (action *Action) FlipSettle(settle *aty.FlipSettle) (*types.Receipt, error) {
	flip, err := getCoinFlip(action.db, settle.FlipID)
	if err != nil {
		return nil, err
	}
	if !flip.Settled {
		return nil, aty.ErrNotSettled
	}
	if flip.Paid {
		return nil, aty.ErrAlreadyPaid
	}
	winner, _ := flip.Winner()
	kv, logs, err := action.settle(aty.TyLogFlipSettle, aty.KindFlip, flip.ID, flip.Player(winner), flip.Player(winner.Other()), flip.Stake)
	if err != nil {
		return nil, err
	}
	flip.Paid = true
	saved, err := action.saveFlip(flip)
	if err != nil {
		return nil, err
	}
	kv = append(kv, saved...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
