// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
)

// RpsCreate 创建对局，押注转入托管地址
func (action *Action) RpsCreate(create *aty.RpsCreate) (*types.Receipt, error) {
	if create.Stake <= 0 {
		return nil, aty.ErrZeroWager
	}
	if err := action.checkPlayer(); err != nil {
		alog.Error("RpsCreate", "addr", action.fromaddr, "err", err)
		return nil, err
	}
	id := action.gameID()
	receipt, err := action.escrowIn(id, create.Stake)
	if err != nil {
		return nil, err
	}
	match := &aty.RpsMatch{
		ID:        id,
		PlayerA:   action.fromaddr,
		Stake:     uint64(create.Stake),
		Phase:     aty.PhaseOpen,
		CreatedAt: action.blocktime,
	}
	saved, err := action.saveRps(match)
	if err != nil {
		return nil, err
	}
	kv := append(receipt.KV, saved...)
	logs := append(receipt.Logs, action.rpsLog(aty.TyLogRpsCreate, match))
	rpsCreatedCounter.Inc(1)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// RpsJoin 加入对局并押注相同金额
func (action *Action) RpsJoin(join *aty.RpsJoin) (*types.Receipt, error) {
	match, err := getRpsMatch(action.db, join.MatchID)
	if err != nil {
		return nil, err
	}
	next, err := match.Phase.Next(aty.EventJoin)
	if err != nil {
		alog.Error("RpsJoin", "addr", action.fromaddr, "id", join.MatchID, "phase", match.Phase, "err", aty.ErrNotOpen)
		return nil, aty.ErrNotOpen
	}
	if action.fromaddr == match.PlayerA {
		return nil, aty.ErrCantPlaySelf
	}
	if err := action.checkPlayer(); err != nil {
		return nil, err
	}
	receipt, err := action.escrowIn(match.ID, int64(match.Stake))
	if err != nil {
		return nil, err
	}
	match.PlayerB = action.fromaddr
	match.Phase = next
	saved, err := action.saveRps(match)
	if err != nil {
		return nil, err
	}
	kv := append(receipt.KV, saved...)
	logs := append(receipt.Logs, action.rpsLog(aty.TyLogRpsJoin, match))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// RpsCommit 提交当前回合的承诺，双方都提交后进入揭示阶段
func (action *Action) RpsCommit(commit *aty.RpsCommit) (*types.Receipt, error) {
	match, err := getRpsMatch(action.db, commit.MatchID)
	if err != nil {
		return nil, err
	}
	if match.Settled {
		return nil, aty.ErrAlreadySettled
	}
	round := int(match.Round)
	if round >= aty.MaxRounds {
		return nil, aty.ErrInvalidRound
	}
	side, err := resolveSide(match.PlayerA, match.PlayerB, action.fromaddr)
	if err != nil {
		return nil, err
	}
	if !isZero(match.Commits[side][round]) {
		alog.Error("RpsCommit", "addr", action.fromaddr, "id", match.ID, "round", round, "err", aty.ErrAlreadyCommitted)
		return nil, aty.ErrAlreadyCommitted
	}
	if match.Phase != aty.PhaseCommitting {
		return nil, aty.ErrNotCommitting
	}
	digest, ok := toHash(commit.Commitment)
	if !ok || isZero(digest) {
		return nil, aty.ErrInvalidCommitment
	}
	match.Commits[side][round] = digest
	if !isZero(match.Commits[side.Other()][round]) {
		if match.Phase, err = match.Phase.Next(aty.EventBothCommitted); err != nil {
			return nil, err
		}
	}
	kv, err := action.saveRps(match)
	if err != nil {
		return nil, err
	}
	logs := []*types.ReceiptLog{action.rpsLog(aty.TyLogRpsCommit, match)}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// RpsReveal 揭示当前回合的出手，双方都揭示后判定回合
func (action *Action) RpsReveal(reveal *aty.RpsReveal) (*types.Receipt, error) {
	match, err := getRpsMatch(action.db, reveal.MatchID)
	if err != nil {
		return nil, err
	}
	if match.Settled {
		return nil, aty.ErrAlreadySettled
	}
	if reveal.Choice < int32(aty.ChoiceRock) || reveal.Choice > int32(aty.ChoiceScissors) {
		return nil, aty.ErrInvalidChoice
	}
	choice := aty.Choice(reveal.Choice)
	round := int(match.Round)
	if round >= aty.MaxRounds {
		return nil, aty.ErrInvalidRound
	}
	side, err := resolveSide(match.PlayerA, match.PlayerB, action.fromaddr)
	if err != nil {
		return nil, err
	}
	if match.Phase != aty.PhaseRevealing {
		return nil, aty.ErrNotRevealing
	}
	salt, ok := toHash(reveal.Salt)
	if !ok {
		return nil, aty.ErrInvalidSecret
	}
	if !VerifyChoice(match.Commits[side][round], choice, salt) {
		alog.Error("RpsReveal", "addr", action.fromaddr, "id", match.ID, "round", round, "err", aty.ErrCommitmentMismatch)
		return nil, aty.ErrCommitmentMismatch
	}
	if match.Choices[side][round] != aty.ChoiceNone {
		return nil, aty.ErrAlreadyRevealed
	}
	match.Choices[side][round] = choice
	if match.Choices[side.Other()][round] != aty.ChoiceNone {
		if err := resolveMatchRound(match); err != nil {
			return nil, err
		}
	}
	kv, err := action.saveRps(match)
	if err != nil {
		return nil, err
	}
	logs := []*types.ReceiptLog{action.rpsLog(aty.TyLogRpsReveal, match)}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// resolveMatchRound 双方都揭示后判定当前回合。
// 平局清空这个回合的承诺和出手并重新开始，回合数不变；否则胜方得分，回合数加一
func resolveMatchRound(match *aty.RpsMatch) error {
	round := match.Round
	outcome := ResolveRound(match.Choices[aty.SideA][round], match.Choices[aty.SideB][round])
	winner, ok := outcome.Winner()
	if !ok {
		next, err := match.Phase.Next(aty.EventRoundDrawn)
		if err != nil {
			return err
		}
		for _, side := range []aty.Side{aty.SideA, aty.SideB} {
			match.Commits[side][round] = [aty.HashLen]byte{}
			match.Choices[side][round] = aty.ChoiceNone
		}
		match.Phase = next
		rpsDrawCounter.Inc(1)
		return nil
	}
	match.Scores[winner]++
	match.Round++
	if match.Scores[winner] >= aty.WinScore {
		if _, err := match.Phase.Next(aty.EventMatchWon); err != nil {
			return err
		}
		match.Finish()
		return nil
	}
	next, err := match.Phase.Next(aty.EventRoundDecided)
	if err != nil {
		return err
	}
	match.Phase = next
	return nil
}
