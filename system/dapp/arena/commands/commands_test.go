// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	for s, c := range map[string]aty.Choice{
		"rock":     aty.ChoiceRock,
		"Paper":    aty.ChoicePaper,
		"s":        aty.ChoiceScissors,
		"2":        aty.ChoicePaper,
		"SCISSORS": aty.ChoiceScissors,
	} {
		choice, err := ParseChoice(s)
		require.NoError(t, err, s)
		assert.Equal(t, c, choice, s)
	}
	for _, s := range []string{"", "0", "4", "-1", "lizard"} {
		_, err := ParseChoice(s)
		assert.Equal(t, aty.ErrInvalidChoice, err, s)
	}
}

func TestDecodeRpsMatch(t *testing.T) {
	m := &aty.RpsMatch{ID: "0x01", PlayerA: "a", PlayerB: "b", Stake: 1e8, Round: 1, Phase: aty.PhaseCommitting}
	m.Commits[aty.SideA][0][0] = 1
	m.Commits[aty.SideB][0][0] = 2
	m.Choices[aty.SideA][0] = aty.ChoiceRock
	m.Choices[aty.SideB][0] = aty.ChoiceScissors
	m.Scores[aty.SideA] = 1
	r := DecodeRpsMatch(m)
	assert.Equal(t, "1.0000", r.Stake)
	assert.Equal(t, "Committing", r.Phase)
	require.Len(t, r.Rounds, 2)
	assert.Equal(t, "Rock", r.Rounds[0].ChoiceA)
	assert.Equal(t, "Scissors", r.Rounds[0].ChoiceB)
	assert.Len(t, r.Rounds[0].CommitA, 66)
	assert.Equal(t, "", r.Rounds[1].CommitA)
	assert.Equal(t, "None", r.Rounds[1].ChoiceA)
}

func TestDecodeCoinFlip(t *testing.T) {
	f := &aty.CoinFlip{ID: "0x02", PlayerA: "a", PlayerB: "b", Stake: 5e7}
	f.Commits[aty.SideA][31] = 9
	r := DecodeCoinFlip(f)
	assert.Equal(t, "0.5000", r.Stake)
	assert.Equal(t, "", r.Winner)
	assert.Equal(t, "", r.SecretA)

	f.Revealed = [2]bool{true, true}
	f.Finish(false)
	r = DecodeCoinFlip(f)
	assert.Equal(t, "b", r.Winner)
	assert.Len(t, r.SecretA, 66)
}

func TestArenaCmd(t *testing.T) {
	cmd := ArenaCmd()
	for _, name := range []string{"init", "register", "withdraw", "rps", "flip", "info", "player", "list"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	sub, _, err := cmd.Find([]string{"rps", "commit"})
	require.NoError(t, err)
	assert.NotNil(t, sub.Flags().Lookup("salt"))
}
