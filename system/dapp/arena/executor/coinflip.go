// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
)

// FlipCreate 创建掷硬币，提交创建者的承诺并押注
func (action *Action) FlipCreate(create *aty.FlipCreate) (*types.Receipt, error) {
	if create.Stake <= 0 {
		return nil, aty.ErrZeroWager
	}
	commitment, ok := toHash(create.Commitment)
	if !ok || isZero(commitment) {
		return nil, aty.ErrInvalidCommitment
	}
	if err := action.checkPlayer(); err != nil {
		alog.Error("FlipCreate", "addr", action.fromaddr, "err", err)
		return nil, err
	}
	id := action.gameID()
	receipt, err := action.escrowIn(id, create.Stake)
	if err != nil {
		return nil, err
	}
	flip := &aty.CoinFlip{
		ID:        id,
		PlayerA:   action.fromaddr,
		Stake:     uint64(create.Stake),
		Phase:     aty.FlipAwaitingSecondCommit,
		CreatedAt: action.blocktime,
	}
	flip.Commits[aty.SideA] = commitment
	saved, err := action.saveFlip(flip)
	if err != nil {
		return nil, err
	}
	kv := append(receipt.KV, saved...)
	logs := append(receipt.Logs, action.flipLog(aty.TyLogFlipCreate, flip))
	flipCreatedCounter.Inc(1)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// FlipJoin 加入掷硬币，提交承诺并押注相同金额
func (action *Action) FlipJoin(join *aty.FlipJoin) (*types.Receipt, error) {
	flip, err := getCoinFlip(action.db, join.FlipID)
	if err != nil {
		return nil, err
	}
	next, err := flip.Phase.Next(aty.FlipEventJoin)
	if err != nil || flip.PlayerB != "" {
		alog.Error("FlipJoin", "addr", action.fromaddr, "id", join.FlipID, "phase", flip.Phase, "err", aty.ErrNotOpen)
		return nil, aty.ErrNotOpen
	}
	if action.fromaddr == flip.PlayerA {
		return nil, aty.ErrCantPlaySelf
	}
	commitment, ok := toHash(join.Commitment)
	if !ok || isZero(commitment) {
		return nil, aty.ErrInvalidCommitment
	}
	if err := action.checkPlayer(); err != nil {
		return nil, err
	}
	receipt, err := action.escrowIn(flip.ID, int64(flip.Stake))
	if err != nil {
		return nil, err
	}
	flip.PlayerB = action.fromaddr
	flip.Commits[aty.SideB] = commitment
	flip.Phase = next
	saved, err := action.saveFlip(flip)
	if err != nil {
		return nil, err
	}
	kv := append(receipt.KV, saved...)
	logs := append(receipt.Logs, action.flipLog(aty.TyLogFlipJoin, flip))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// FlipReveal 揭示 secret，双方都揭示后由 keccak256(secretA || secretB) 决定结果
func (action *Action) FlipReveal(reveal *aty.FlipReveal) (*types.Receipt, error) {
	flip, err := getCoinFlip(action.db, reveal.FlipID)
	if err != nil {
		return nil, err
	}
	if flip.Settled {
		return nil, aty.ErrAlreadySettled
	}
	side, err := resolveSide(flip.PlayerA, flip.PlayerB, action.fromaddr)
	if err != nil {
		return nil, err
	}
	if flip.Phase != aty.FlipAwaitingReveals {
		return nil, aty.ErrNotRevealing
	}
	secret, ok := toHash(reveal.Secret)
	if !ok {
		return nil, aty.ErrInvalidSecret
	}
	if flip.Revealed[side] {
		return nil, aty.ErrAlreadyRevealed
	}
	if !VerifySecret(flip.Commits[side], secret) {
		alog.Error("FlipReveal", "addr", action.fromaddr, "id", flip.ID, "err", aty.ErrCommitmentMismatch)
		return nil, aty.ErrCommitmentMismatch
	}
	flip.Secrets[side] = secret
	flip.Revealed[side] = true
	if flip.Revealed[side.Other()] {
		if _, err := flip.Phase.Next(aty.FlipEventBothRevealed); err != nil {
			return nil, err
		}
		flip.Finish(FlipHeads(flip.Secrets[aty.SideA], flip.Secrets[aty.SideB]))
	}
	kv, err := action.saveFlip(flip)
	if err != nil {
		return nil, err
	}
	logs := []*types.ReceiptLog{action.flipLog(aty.TyLogFlipReveal, flip)}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
