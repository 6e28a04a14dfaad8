// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Phase 猜拳对局的阶段
type Phase uint8

// 猜拳对局的阶段
const (
	PhaseOpen Phase = iota
	PhaseCommitting
	PhaseRevealing
	PhaseFinished
)

var phaseName = map[Phase]string{
	PhaseOpen:       "Open",
	PhaseCommitting: "Committing",
	PhaseRevealing:  "Revealing",
	PhaseFinished:   "Finished",
}

// Valid 是否为已定义的阶段
func (p Phase) Valid() bool {
	return p <= PhaseFinished
}

func (p Phase) String() string {
	if name, ok := phaseName[p]; ok {
		return name
	}
	return "Unknown"
}

// Event 引起猜拳阶段变化的事件
type Event uint8

// events
const (
	EventJoin Event = iota + 1
	EventBothCommitted
	EventRoundDrawn
	EventRoundDecided
	EventMatchWon
)

// Next 状态转换表，不在表中的转换返回 ErrInvalidTransition
func (p Phase) Next(e Event) (Phase, error) {
	switch {
	case p == PhaseOpen && e == EventJoin:
		return PhaseCommitting, nil
	case p == PhaseCommitting && e == EventBothCommitted:
		return PhaseRevealing, nil
	case p == PhaseRevealing && (e == EventRoundDrawn || e == EventRoundDecided):
		return PhaseCommitting, nil
	case p == PhaseRevealing && e == EventMatchWon:
		return PhaseFinished, nil
	}
	return p, ErrInvalidTransition
}

// FlipPhase 掷硬币的阶段
type FlipPhase uint8

// 掷硬币的阶段
const (
	FlipAwaitingSecondCommit FlipPhase = iota
	FlipAwaitingReveals
	FlipSettled
)

var flipPhaseName = map[FlipPhase]string{
	FlipAwaitingSecondCommit: "AwaitingSecondCommit",
	FlipAwaitingReveals:      "AwaitingReveals",
	FlipSettled:              "Settled",
}

// Valid 是否为已定义的阶段
func (p FlipPhase) Valid() bool {
	return p <= FlipSettled
}

func (p FlipPhase) String() string {
	if name, ok := flipPhaseName[p]; ok {
		return name
	}
	return "Unknown"
}

// FlipEvent 引起掷硬币阶段变化的事件
type FlipEvent uint8

// flip events
const (
	FlipEventJoin FlipEvent = iota + 1
	FlipEventBothRevealed
)

// Next 状态转换表
func (p FlipPhase) Next(e FlipEvent) (FlipPhase, error) {
	switch {
	case p == FlipAwaitingSecondCommit && e == FlipEventJoin:
		return FlipAwaitingReveals, nil
	case p == FlipAwaitingReveals && e == FlipEventBothRevealed:
		return FlipSettled, nil
	}
	return p, ErrInvalidTransition
}

// Side 对局中的一方
type Side uint8

// sides
const (
	SideA Side = iota
	SideB
)

// Other 对手
func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Choice 猜拳的出手，0 表示还没有揭示
type Choice uint8

// choices
const (
	ChoiceNone Choice = iota
	ChoiceRock
	ChoicePaper
	ChoiceScissors
)

// Valid 只有石头、布、剪刀是合法的出手
func (c Choice) Valid() bool {
	return c >= ChoiceRock && c <= ChoiceScissors
}

func (c Choice) String() string {
	switch c {
	case ChoiceRock:
		return "Rock"
	case ChoicePaper:
		return "Paper"
	case ChoiceScissors:
		return "Scissors"
	}
	return "None"
}

// Outcome 一个回合的结果
type Outcome uint8

// outcomes
const (
	OutcomeDraw Outcome = iota
	OutcomeAWins
	OutcomeBWins
)

// Winner 胜方，平局时 ok 为 false
func (o Outcome) Winner() (side Side, ok bool) {
	switch o {
	case OutcomeAWins:
		return SideA, true
	case OutcomeBWins:
		return SideB, true
	}
	return SideA, false
}
