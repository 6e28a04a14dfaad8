// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types arena 执行器的交易、记录和日志类型
package types

import (
	"reflect"

	"github.com/33cn/arena/types"
)

var (
	// ExecerArena execer arena
	ExecerArena = []byte(ArenaX)
	actionName  = map[string]int32{
		"Initialize":   ArenaActionInitialize,
		"Register":     ArenaActionRegister,
		"RpsCreate":    ArenaActionRpsCreate,
		"RpsJoin":      ArenaActionRpsJoin,
		"RpsCommit":    ArenaActionRpsCommit,
		"RpsReveal":    ArenaActionRpsReveal,
		"RpsSettle":    ArenaActionRpsSettle,
		"FlipCreate":   ArenaActionFlipCreate,
		"FlipJoin":     ArenaActionFlipJoin,
		"FlipReveal":   ArenaActionFlipReveal,
		"FlipSettle":   ArenaActionFlipSettle,
		"WithdrawFees": ArenaActionWithdrawFees,
	}
	logMap = map[int64]*types.LogInfo{
		TyLogArenaInit:     {Ty: reflect.TypeOf(ReceiptArena{}), Name: "LogArenaInit"},
		TyLogArenaRegister: {Ty: reflect.TypeOf(ReceiptArena{}), Name: "LogArenaRegister"},
		TyLogArenaWithdraw: {Ty: reflect.TypeOf(ReceiptArena{}), Name: "LogArenaWithdraw"},
		TyLogRpsCreate:     {Ty: reflect.TypeOf(ReceiptArenaGame{}), Name: "LogRpsCreate"},
		TyLogRpsJoin:       {Ty: reflect.TypeOf(ReceiptArenaGame{}), Name: "LogRpsJoin"},
		TyLogRpsCommit:     {Ty: reflect.TypeOf(ReceiptArenaGame{}), Name: "LogRpsCommit"},
		TyLogRpsReveal:     {Ty: reflect.TypeOf(ReceiptArenaGame{}), Name: "LogRpsReveal"},
		TyLogRpsSettle:     {Ty: reflect.TypeOf(ReceiptArenaSettle{}), Name: "LogRpsSettle"},
		TyLogFlipCreate:    {Ty: reflect.TypeOf(ReceiptArenaGame{}), Name: "LogFlipCreate"},
		TyLogFlipJoin:      {Ty: reflect.TypeOf(ReceiptArenaGame{}), Name: "LogFlipJoin"},
		TyLogFlipReveal:    {Ty: reflect.TypeOf(ReceiptArenaGame{}), Name: "LogFlipReveal"},
		TyLogFlipSettle:    {Ty: reflect.TypeOf(ReceiptArenaSettle{}), Name: "LogFlipSettle"},
	}
)

func init() {
	types.RegistorExecutor(ArenaX, NewType())
}

// ArenaType defines exec type
type ArenaType struct {
	types.ExecTypeBase
}

// NewType new arena type
func NewType() *ArenaType {
	c := &ArenaType{}
	c.SetChild(c)
	return c
}

// GetName return arena
func (a *ArenaType) GetName() string {
	return ArenaX
}

// GetPayload return payload
func (a *ArenaType) GetPayload() types.Message {
	return &ArenaAction{}
}

// GetTypeMap return actionname for map
func (a *ArenaType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap get log for map
func (a *ArenaType) GetLogMap() map[int64]*types.LogInfo {
	return logMap
}

// Config [exec.sub.arena]
type Config struct {
	// Initializer 不为空时只有这个地址可以初始化 arena
	Initializer string `json:"initializer"`
}

func createTx(action *ArenaAction) *types.Transaction {
	return types.CreateFormatTx(ArenaX, types.Encode(action))
}

// CreateInitializeTx 初始化 arena
func CreateInitializeTx() *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionInitialize, Initialize: &ArenaInitialize{}})
}

// CreateRegisterTx 注册玩家
func CreateRegisterTx() *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionRegister, Register: &ArenaRegister{}})
}

// CreateRpsCreateTx 创建猜拳对局
func CreateRpsCreateTx(stake int64) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionRpsCreate, RpsCreate: &RpsCreate{Stake: stake}})
}

// CreateRpsJoinTx 加入猜拳对局
func CreateRpsJoinTx(matchID string) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionRpsJoin, RpsJoin: &RpsJoin{MatchID: matchID}})
}

// CreateRpsCommitTx 提交承诺
func CreateRpsCommitTx(matchID string, commitment []byte) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionRpsCommit, RpsCommit: &RpsCommit{MatchID: matchID, Commitment: commitment}})
}

// CreateRpsRevealTx 揭示出手
func CreateRpsRevealTx(matchID string, choice Choice, salt []byte) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionRpsReveal, RpsReveal: &RpsReveal{MatchID: matchID, Choice: int32(choice), Salt: salt}})
}

// CreateRpsSettleTx 结算猜拳对局
func CreateRpsSettleTx(matchID string) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionRpsSettle, RpsSettle: &RpsSettle{MatchID: matchID}})
}

// CreateFlipCreateTx 创建掷硬币
func CreateFlipCreateTx(stake int64, commitment []byte) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionFlipCreate, FlipCreate: &FlipCreate{Stake: stake, Commitment: commitment}})
}

// CreateFlipJoinTx 加入掷硬币
func CreateFlipJoinTx(flipID string, commitment []byte) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionFlipJoin, FlipJoin: &FlipJoin{FlipID: flipID, Commitment: commitment}})
}

// CreateFlipRevealTx 揭示 secret
func CreateFlipRevealTx(flipID string, secret []byte) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionFlipReveal, FlipReveal: &FlipReveal{FlipID: flipID, Secret: secret}})
}

// CreateFlipSettleTx 结算掷硬币
func CreateFlipSettleTx(flipID string) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionFlipSettle, FlipSettle: &FlipSettle{FlipID: flipID}})
}

// CreateWithdrawFeesTx 取出手续费
func CreateWithdrawFeesTx(amount int64) *types.Transaction {
	return createTx(&ArenaAction{Ty: ArenaActionWithdrawFees, WithdrawFees: &ArenaWithdrawFees{Amount: amount}})
}
