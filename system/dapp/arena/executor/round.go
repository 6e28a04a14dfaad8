// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	aty "github.com/33cn/arena/system/dapp/arena/types"
)

// beats[x] 是 x 能赢的出手：石头赢剪刀，布赢石头，剪刀赢布
var beats = map[aty.Choice]aty.Choice{
	aty.ChoiceRock:     aty.ChoiceScissors,
	aty.ChoicePaper:    aty.ChoiceRock,
	aty.ChoiceScissors: aty.ChoicePaper,
}

// ResolveRound 判定一个回合，两个出手都必须合法
func ResolveRound(a, b aty.Choice) aty.Outcome {
	switch {
	case a == b:
		return aty.OutcomeDraw
	case beats[a] == b:
		return aty.OutcomeAWins
	default:
		return aty.OutcomeBWins
	}
}
