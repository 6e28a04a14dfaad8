// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/arena/common"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	commandtypes "github.com/33cn/arena/system/dapp/commands/types"
)

// ArenaResult arena 的显示结构
type ArenaResult struct {
	Authority    string `json:"authority"`
	TotalMatches uint64 `json:"totalMatches"`
	TotalPlayers uint64 `json:"totalPlayers"`
	FeeRateBps   uint16 `json:"feeRateBps"`
	FeeBalance   string `json:"feeBalance"`
}

// RoundResult 一个回合
type RoundResult struct {
	CommitA string `json:"commitA,omitempty"`
	CommitB string `json:"commitB,omitempty"`
	ChoiceA string `json:"choiceA"`
	ChoiceB string `json:"choiceB"`
}

// RpsMatchResult 猜拳对局的显示结构
type RpsMatchResult struct {
	ID        string         `json:"id"`
	PlayerA   string         `json:"playerA"`
	PlayerB   string         `json:"playerB"`
	Stake     string         `json:"stake"`
	Rounds    []*RoundResult `json:"rounds"`
	ScoreA    uint8          `json:"scoreA"`
	ScoreB    uint8          `json:"scoreB"`
	Round     uint8          `json:"round"`
	Phase     string         `json:"phase"`
	Settled   bool           `json:"settled"`
	Paid      bool           `json:"paid"`
	CreatedAt int64          `json:"createdAt"`
}

// CoinFlipResult 掷硬币的显示结构
type CoinFlipResult struct {
	ID        string `json:"id"`
	PlayerA   string `json:"playerA"`
	PlayerB   string `json:"playerB"`
	Stake     string `json:"stake"`
	CommitA   string `json:"commitA"`
	CommitB   string `json:"commitB,omitempty"`
	SecretA   string `json:"secretA,omitempty"`
	SecretB   string `json:"secretB,omitempty"`
	Phase     string `json:"phase"`
	Heads     bool   `json:"heads"`
	Winner    string `json:"winner,omitempty"`
	Settled   bool   `json:"settled"`
	Paid      bool   `json:"paid"`
	CreatedAt int64  `json:"createdAt"`
}

func hexOrEmpty(h [aty.HashLen]byte) string {
	if h == [aty.HashLen]byte{} {
		return ""
	}
	return common.ToHex(h[:])
}

// DecodeArena decode arena
func DecodeArena(a *aty.Arena) *ArenaResult {
	return &ArenaResult{
		Authority:    a.Authority,
		TotalMatches: a.TotalMatches,
		TotalPlayers: a.TotalPlayers,
		FeeRateBps:   a.FeeRateBps,
		FeeBalance:   commandtypes.FormatAmountValue2Display(int64(a.FeeBalance)),
	}
}

// DecodeRpsMatch decode match，只显示已经开始的回合
func DecodeRpsMatch(m *aty.RpsMatch) *RpsMatchResult {
	r := &RpsMatchResult{
		ID:        m.ID,
		PlayerA:   m.PlayerA,
		PlayerB:   m.PlayerB,
		Stake:     commandtypes.FormatAmountValue2Display(int64(m.Stake)),
		ScoreA:    m.Scores[aty.SideA],
		ScoreB:    m.Scores[aty.SideB],
		Round:     m.Round,
		Phase:     m.Phase.String(),
		Settled:   m.Settled,
		Paid:      m.Paid,
		CreatedAt: m.CreatedAt,
	}
	for i := 0; i < aty.MaxRounds; i++ {
		if i > int(m.Round) || (i == int(m.Round) && m.Settled) {
			break
		}
		r.Rounds = append(r.Rounds, &RoundResult{
			CommitA: hexOrEmpty(m.Commits[aty.SideA][i]),
			CommitB: hexOrEmpty(m.Commits[aty.SideB][i]),
			ChoiceA: m.Choices[aty.SideA][i].String(),
			ChoiceB: m.Choices[aty.SideB][i].String(),
		})
	}
	return r
}

// DecodeCoinFlip decode coin flip
func DecodeCoinFlip(f *aty.CoinFlip) *CoinFlipResult {
	r := &CoinFlipResult{
		ID:        f.ID,
		PlayerA:   f.PlayerA,
		PlayerB:   f.PlayerB,
		Stake:     commandtypes.FormatAmountValue2Display(int64(f.Stake)),
		CommitA:   hexOrEmpty(f.Commits[aty.SideA]),
		CommitB:   hexOrEmpty(f.Commits[aty.SideB]),
		Phase:     f.Phase.String(),
		Heads:     f.Heads,
		Settled:   f.Settled,
		Paid:      f.Paid,
		CreatedAt: f.CreatedAt,
	}
	if f.Revealed[aty.SideA] {
		r.SecretA = common.ToHex(f.Secrets[aty.SideA][:])
	}
	if f.Revealed[aty.SideB] {
		r.SecretB = common.ToHex(f.Secrets[aty.SideB][:])
	}
	if winner, ok := f.Winner(); ok {
		r.Winner = f.Player(winner)
	}
	return r
}
