// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strings"
	"testing"

	"github.com/33cn/arena/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSize(t *testing.T) {
	m := &RpsMatch{ID: "0x01", PlayerA: "a"}
	assert.Equal(t, rpsMatchSize, len(m.Marshal()))
	assert.Equal(t, rpsMatchSize, len((&RpsMatch{}).Marshal()))
	assert.Equal(t, coinFlipSize, len((&CoinFlip{ID: "0x02"}).Marshal()))
	assert.Equal(t, arenaSize, len((&Arena{Authority: "x"}).Marshal()))
	assert.Equal(t, playerStatsSize, len((&PlayerStats{}).Marshal()))
}

func TestRpsMatchEncode(t *testing.T) {
	m := &RpsMatch{
		ID:        "0x" + strings.Repeat("ab", 32),
		PlayerA:   "1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4",
		PlayerB:   "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR",
		Stake:     1000,
		Round:     1,
		Phase:     PhaseRevealing,
		CreatedAt: 1600000000,
	}
	m.Commits[SideA][1][0] = 7
	m.Commits[SideB][2][31] = 9
	m.Choices[SideA][0] = ChoicePaper
	m.Choices[SideB][0] = ChoiceRock
	m.Scores[SideA] = 1

	var m2 RpsMatch
	require.Nil(t, types.Decode(types.Encode(m), &m2))
	assert.Equal(t, *m, m2)

	m.Finish()
	m.Scores[SideA] = 2
	m.Paid = true
	var m3 RpsMatch
	require.Nil(t, types.Decode(types.Encode(m), &m3))
	assert.Equal(t, PhaseFinished, m3.Phase)
	assert.True(t, m3.Settled)
	side, ok := m3.Winner()
	assert.True(t, ok)
	assert.Equal(t, SideA, side)
}

func TestRpsMatchDecodeCheck(t *testing.T) {
	m := &RpsMatch{ID: "0x01", Phase: PhaseFinished}
	var m2 RpsMatch
	assert.Equal(t, ErrInconsistentState, types.Decode(types.Encode(m), &m2))

	m = &RpsMatch{ID: "0x01", Phase: PhaseCommitting, Settled: true}
	assert.Equal(t, ErrInconsistentState, types.Decode(types.Encode(m), &m2))

	m = &RpsMatch{ID: "0x01", Phase: Phase(7)}
	assert.Equal(t, ErrInvalidPhase, types.Decode(types.Encode(m), &m2))

	m = &RpsMatch{ID: "0x01"}
	m.Choices[SideB][2] = Choice(5)
	assert.Equal(t, ErrInvalidRecord, types.Decode(types.Encode(m), &m2))

	data := (&RpsMatch{}).Marshal()
	assert.Equal(t, ErrInvalidRecord, types.Decode(data[:len(data)-1], &m2))
}

func TestCoinFlipEncode(t *testing.T) {
	f := &CoinFlip{
		ID:      "0x02",
		PlayerA: "a",
		PlayerB: "b",
		Stake:   5,
		Phase:   FlipAwaitingReveals,
	}
	f.Commits[SideA][3] = 1
	f.Secrets[SideB][4] = 2
	f.Revealed[SideB] = true

	var f2 CoinFlip
	require.Nil(t, types.Decode(types.Encode(f), &f2))
	assert.Equal(t, *f, f2)

	f.Finish(false)
	require.Nil(t, types.Decode(types.Encode(f), &f2))
	side, ok := f2.Winner()
	assert.True(t, ok)
	assert.Equal(t, SideB, side)

	f.Settled = false
	assert.Equal(t, ErrInconsistentState, types.Decode(types.Encode(f), &f2))
}

func TestStringFieldTooLong(t *testing.T) {
	long := strings.Repeat("x", MaxStringLen+1)
	a := &Arena{Authority: long}
	assert.Equal(t, ErrInvalidRecord, a.Validate())
	// 超长字段不会 panic，写出的记录解码失败
	data := a.Marshal()
	assert.Len(t, data, arenaSize)
	var a2 Arena
	assert.Equal(t, ErrInvalidRecord, types.Decode(data, &a2))

	assert.Nil(t, (&Arena{Authority: strings.Repeat("x", MaxStringLen)}).Validate())
	assert.Equal(t, ErrInvalidRecord, (&PlayerStats{Owner: long}).Validate())
	assert.Equal(t, ErrInvalidRecord, (&RpsMatch{ID: "0x01", PlayerB: long}).Validate())
	assert.Equal(t, ErrInvalidRecord, (&CoinFlip{ID: long}).Validate())
	assert.Equal(t, ErrInconsistentState, (&CoinFlip{ID: "0x01", Phase: FlipSettled}).Validate())
	assert.Nil(t, (&RpsMatch{ID: "0x01", PlayerA: "a"}).Validate())
}

func TestArenaActionValue(t *testing.T) {
	action := &ArenaAction{Ty: ArenaActionRpsCommit, RpsCommit: &RpsCommit{MatchID: "0x01", Commitment: []byte{1, 2}}}
	var action2 ArenaAction
	require.Nil(t, types.Decode(types.Encode(action), &action2))
	assert.Equal(t, action.RpsCommit, action2.GetActionValue())

	action = &ArenaAction{Ty: ArenaActionRegister, Register: &ArenaRegister{}}
	action2 = ArenaAction{}
	require.Nil(t, types.Decode(types.Encode(action), &action2))
	assert.NotNil(t, action2.GetActionValue())

	action = &ArenaAction{Ty: ArenaActionRpsJoin}
	assert.Nil(t, action.GetActionValue())
}

func TestDecodeActionName(t *testing.T) {
	tx := CreateFlipRevealTx("0x03", []byte{1})
	ety := types.LoadExecutorType(ArenaX)
	require.NotNil(t, ety)
	assert.Equal(t, "FlipReveal", ety.ActionName(tx))
}
