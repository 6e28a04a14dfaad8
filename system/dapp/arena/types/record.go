// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Arena 全局的 arena 记录，由 Initialize 创建
type Arena struct {
	Authority    string
	TotalMatches uint64
	TotalPlayers uint64
	FeeRateBps   uint16
	FeeBalance   uint64
}

const arenaSize = strFieldLen + 8 + 8 + 2 + 8

// Marshal encode
func (a *Arena) Marshal() []byte {
	w := newFixedWriter(arenaSize)
	w.str(a.Authority)
	w.u64(a.TotalMatches)
	w.u64(a.TotalPlayers)
	w.u16(a.FeeRateBps)
	w.u64(a.FeeBalance)
	return w.buf
}

// Validate 字符串字段是否能写入定长记录
func (a *Arena) Validate() error {
	return checkStr(a.Authority)
}

// Unmarshal decode
func (a *Arena) Unmarshal(data []byte) error {
	r := newFixedReader(data, arenaSize)
	a.Authority = r.str()
	a.TotalMatches = r.u64()
	a.TotalPlayers = r.u64()
	a.FeeRateBps = r.u16()
	a.FeeBalance = r.u64()
	return r.err
}

// PlayerStats 玩家的战绩和积分，由 RegisterPlayer 创建，只在结算时修改
type PlayerStats struct {
	Owner         string
	Wins          uint32
	Losses        uint32
	Draws         uint32
	Rating        uint16
	TotalWagered  uint64
	TotalWon      uint64
	MatchesPlayed uint32
}

const playerStatsSize = strFieldLen + 4 + 4 + 4 + 2 + 8 + 8 + 4

// Marshal encode
func (p *PlayerStats) Marshal() []byte {
	w := newFixedWriter(playerStatsSize)
	w.str(p.Owner)
	w.u32(p.Wins)
	w.u32(p.Losses)
	w.u32(p.Draws)
	w.u16(p.Rating)
	w.u64(p.TotalWagered)
	w.u64(p.TotalWon)
	w.u32(p.MatchesPlayed)
	return w.buf
}

// Validate 字符串字段是否能写入定长记录
func (p *PlayerStats) Validate() error {
	return checkStr(p.Owner)
}

// Unmarshal decode
func (p *PlayerStats) Unmarshal(data []byte) error {
	r := newFixedReader(data, playerStatsSize)
	p.Owner = r.str()
	p.Wins = r.u32()
	p.Losses = r.u32()
	p.Draws = r.u32()
	p.Rating = r.u16()
	p.TotalWagered = r.u64()
	p.TotalWon = r.u64()
	p.MatchesPlayed = r.u32()
	return r.err
}

// RpsMatch 三局两胜的猜拳对局。承诺和出手按回合存放，零值表示空
type RpsMatch struct {
	ID        string
	PlayerA   string
	PlayerB   string
	Stake     uint64
	Commits   [2][MaxRounds][HashLen]byte
	Choices   [2][MaxRounds]Choice
	Scores    [2]uint8
	Round     uint8
	Phase     Phase
	Settled   bool
	Paid      bool
	CreatedAt int64
}

const rpsMatchSize = 3*strFieldLen + 8 + 2*MaxRounds*HashLen + 2*MaxRounds + 2 + 1 + 1 + 1 + 1 + 8

// Player 一方的地址
func (m *RpsMatch) Player(side Side) string {
	if side == SideA {
		return m.PlayerA
	}
	return m.PlayerB
}

// Finish 对局结束，Finished 阶段和 settled 标志总是一起设置
func (m *RpsMatch) Finish() {
	m.Phase = PhaseFinished
	m.Settled = true
}

// Winner 结束后的胜方
func (m *RpsMatch) Winner() (Side, bool) {
	if !m.Settled {
		return SideA, false
	}
	if m.Scores[SideA] >= WinScore {
		return SideA, true
	}
	if m.Scores[SideB] >= WinScore {
		return SideB, true
	}
	return SideA, false
}

// Marshal encode
func (m *RpsMatch) Marshal() []byte {
	w := newFixedWriter(rpsMatchSize)
	w.str(m.ID)
	w.str(m.PlayerA)
	w.str(m.PlayerB)
	w.u64(m.Stake)
	for side := 0; side < 2; side++ {
		for round := 0; round < MaxRounds; round++ {
			w.hash(m.Commits[side][round])
		}
	}
	for side := 0; side < 2; side++ {
		for round := 0; round < MaxRounds; round++ {
			w.u8(uint8(m.Choices[side][round]))
		}
	}
	w.u8(m.Scores[SideA])
	w.u8(m.Scores[SideB])
	w.u8(m.Round)
	w.u8(uint8(m.Phase))
	w.flag(m.Settled)
	w.flag(m.Paid)
	w.i64(m.CreatedAt)
	return w.buf
}

// Validate 写入前的检查
func (m *RpsMatch) Validate() error {
	if err := checkStr(m.ID, m.PlayerA, m.PlayerB); err != nil {
		return err
	}
	return m.check()
}

// Unmarshal decode，同时检查阶段和 settled 标志是否一致
func (m *RpsMatch) Unmarshal(data []byte) error {
	r := newFixedReader(data, rpsMatchSize)
	m.ID = r.str()
	m.PlayerA = r.str()
	m.PlayerB = r.str()
	m.Stake = r.u64()
	for side := 0; side < 2; side++ {
		for round := 0; round < MaxRounds; round++ {
			m.Commits[side][round] = r.hash()
		}
	}
	for side := 0; side < 2; side++ {
		for round := 0; round < MaxRounds; round++ {
			m.Choices[side][round] = Choice(r.u8())
		}
	}
	m.Scores[SideA] = r.u8()
	m.Scores[SideB] = r.u8()
	m.Round = r.u8()
	m.Phase = Phase(r.u8())
	m.Settled = r.flag()
	m.Paid = r.flag()
	m.CreatedAt = r.i64()
	if r.err != nil {
		return r.err
	}
	return m.check()
}

func (m *RpsMatch) check() error {
	if !m.Phase.Valid() {
		return ErrInvalidPhase
	}
	if (m.Phase == PhaseFinished) != m.Settled {
		return ErrInconsistentState
	}
	if m.Paid && !m.Settled {
		return ErrInconsistentState
	}
	if m.Round > MaxRounds || m.Scores[SideA] > WinScore || m.Scores[SideB] > WinScore {
		return ErrInvalidRecord
	}
	for side := 0; side < 2; side++ {
		for round := 0; round < MaxRounds; round++ {
			c := m.Choices[side][round]
			if c != ChoiceNone && !c.Valid() {
				return ErrInvalidRecord
			}
		}
	}
	return nil
}

// CoinFlip 掷硬币。双方各自承诺一个 secret，结果由两个 secret 共同决定
type CoinFlip struct {
	ID        string
	PlayerA   string
	PlayerB   string
	Stake     uint64
	Commits   [2][HashLen]byte
	Secrets   [2][HashLen]byte
	Revealed  [2]bool
	Heads     bool
	Phase     FlipPhase
	Settled   bool
	Paid      bool
	CreatedAt int64
}

const coinFlipSize = 3*strFieldLen + 8 + 2*HashLen + 2*HashLen + 2 + 1 + 1 + 1 + 1 + 8

// Player 一方的地址
func (f *CoinFlip) Player(side Side) string {
	if side == SideA {
		return f.PlayerA
	}
	return f.PlayerB
}

// Finish 双方都揭示后写入结果，Settled 阶段和 settled 标志总是一起设置
func (f *CoinFlip) Finish(heads bool) {
	f.Heads = heads
	f.Phase = FlipSettled
	f.Settled = true
}

// Winner 正面 A 胜，反面 B 胜
func (f *CoinFlip) Winner() (Side, bool) {
	if !f.Settled {
		return SideA, false
	}
	if f.Heads {
		return SideA, true
	}
	return SideB, true
}

// Marshal encode
func (f *CoinFlip) Marshal() []byte {
	w := newFixedWriter(coinFlipSize)
	w.str(f.ID)
	w.str(f.PlayerA)
	w.str(f.PlayerB)
	w.u64(f.Stake)
	w.hash(f.Commits[SideA])
	w.hash(f.Commits[SideB])
	w.hash(f.Secrets[SideA])
	w.hash(f.Secrets[SideB])
	w.flag(f.Revealed[SideA])
	w.flag(f.Revealed[SideB])
	w.flag(f.Heads)
	w.u8(uint8(f.Phase))
	w.flag(f.Settled)
	w.flag(f.Paid)
	w.i64(f.CreatedAt)
	return w.buf
}

// Unmarshal decode，同时检查阶段和 settled 标志是否一致
func (f *CoinFlip) Unmarshal(data []byte) error {
	r := newFixedReader(data, coinFlipSize)
	f.ID = r.str()
	f.PlayerA = r.str()
	f.PlayerB = r.str()
	f.Stake = r.u64()
	f.Commits[SideA] = r.hash()
	f.Commits[SideB] = r.hash()
	f.Secrets[SideA] = r.hash()
	f.Secrets[SideB] = r.hash()
	f.Revealed[SideA] = r.flag()
	f.Revealed[SideB] = r.flag()
	f.Heads = r.flag()
	f.Phase = FlipPhase(r.u8())
	f.Settled = r.flag()
	f.Paid = r.flag()
	f.CreatedAt = r.i64()
	if r.err != nil {
		return r.err
	}
	return f.check()
}

// Validate 写入前的检查
func (f *CoinFlip) Validate() error {
	if err := checkStr(f.ID, f.PlayerA, f.PlayerB); err != nil {
		return err
	}
	return f.check()
}

func (f *CoinFlip) check() error {
	if !f.Phase.Valid() {
		return ErrInvalidPhase
	}
	if (f.Phase == FlipSettled) != f.Settled {
		return ErrInconsistentState
	}
	if f.Paid && !f.Settled {
		return ErrInconsistentState
	}
	return nil
}
