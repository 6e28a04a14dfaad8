// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// ArenaX arena 执行器的名称
const ArenaX = "arena"

// action
const (
	ArenaActionInitialize = iota + 1
	ArenaActionRegister
	ArenaActionRpsCreate
	ArenaActionRpsJoin
	ArenaActionRpsCommit
	ArenaActionRpsReveal
	ArenaActionRpsSettle
	ArenaActionFlipCreate
	ArenaActionFlipJoin
	ArenaActionFlipReveal
	ArenaActionFlipSettle
	ArenaActionWithdrawFees
)

// log ty
const (
	TyLogArenaInit     = 1001
	TyLogArenaRegister = 1002
	TyLogArenaWithdraw = 1003
	TyLogRpsCreate     = 1010
	TyLogRpsJoin       = 1011
	TyLogRpsCommit     = 1012
	TyLogRpsReveal     = 1013
	TyLogRpsSettle     = 1014
	TyLogFlipCreate    = 1020
	TyLogFlipJoin      = 1021
	TyLogFlipReveal    = 1022
	TyLogFlipSettle    = 1023
)

// 对局的种类
const (
	KindRps  = int32(1)
	KindFlip = int32(2)
)

// 规则常量
const (
	// FeeRateBps 手续费 2.5%，初始化后不再改变
	FeeRateBps = uint16(250)
	// InitialRating 新注册玩家的积分
	InitialRating = uint16(1200)
	// MinRating 积分下限
	MinRating = 100
	// RatingK 每局积分变化的上限
	RatingK = 32
	// RatingMaxDiff 计算期望胜率时积分差的上限
	RatingMaxDiff = 400
	// MaxRounds 猜拳最多三个有效回合
	MaxRounds = 3
	// WinScore 先赢两局者胜
	WinScore = 2
	// HashLen 承诺、salt 和 secret 的长度
	HashLen = 32
	// MaxStringLen 记录中地址和 id 字段的最大长度
	MaxStringLen = 80
)

// 查询的默认条数
const (
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)
