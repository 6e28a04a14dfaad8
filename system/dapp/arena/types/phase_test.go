// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseNext(t *testing.T) {
	cases := []struct {
		from  Phase
		event Event
		to    Phase
		err   error
	}{
		{PhaseOpen, EventJoin, PhaseCommitting, nil},
		{PhaseCommitting, EventBothCommitted, PhaseRevealing, nil},
		{PhaseRevealing, EventRoundDrawn, PhaseCommitting, nil},
		{PhaseRevealing, EventRoundDecided, PhaseCommitting, nil},
		{PhaseRevealing, EventMatchWon, PhaseFinished, nil},
		{PhaseOpen, EventBothCommitted, PhaseOpen, ErrInvalidTransition},
		{PhaseCommitting, EventJoin, PhaseCommitting, ErrInvalidTransition},
		{PhaseCommitting, EventMatchWon, PhaseCommitting, ErrInvalidTransition},
		{PhaseFinished, EventJoin, PhaseFinished, ErrInvalidTransition},
		{PhaseFinished, EventRoundDrawn, PhaseFinished, ErrInvalidTransition},
	}
	for _, c := range cases {
		to, err := c.from.Next(c.event)
		assert.Equal(t, c.err, err, "%s %d", c.from, c.event)
		assert.Equal(t, c.to, to, "%s %d", c.from, c.event)
	}
	assert.False(t, Phase(4).Valid())
	assert.Equal(t, "Unknown", Phase(9).String())
}

func TestFlipPhaseNext(t *testing.T) {
	p, err := FlipAwaitingSecondCommit.Next(FlipEventJoin)
	assert.Nil(t, err)
	assert.Equal(t, FlipAwaitingReveals, p)
	p, err = p.Next(FlipEventBothRevealed)
	assert.Nil(t, err)
	assert.Equal(t, FlipSettled, p)

	_, err = FlipAwaitingSecondCommit.Next(FlipEventBothRevealed)
	assert.Equal(t, ErrInvalidTransition, err)
	_, err = FlipAwaitingReveals.Next(FlipEventJoin)
	assert.Equal(t, ErrInvalidTransition, err)
	_, err = FlipSettled.Next(FlipEventJoin)
	assert.Equal(t, ErrInvalidTransition, err)
}

func TestChoiceAndSide(t *testing.T) {
	assert.False(t, ChoiceNone.Valid())
	assert.True(t, ChoiceRock.Valid())
	assert.True(t, ChoiceScissors.Valid())
	assert.False(t, Choice(4).Valid())
	assert.Equal(t, SideB, SideA.Other())
	assert.Equal(t, SideA, SideB.Other())

	side, ok := OutcomeBWins.Winner()
	assert.True(t, ok)
	assert.Equal(t, SideB, side)
	_, ok = OutcomeDraw.Winner()
	assert.False(t, ok)
}
