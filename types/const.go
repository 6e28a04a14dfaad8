// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
)

// DefaultCoinsSymbol 默认的主币名称
const DefaultCoinsSymbol = "bty"

// 执行器名称
const (
	ExecerCoins = "coins"
	ExecerNone  = "none"
)

// log type
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//TyLogTransfer coins
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
)

// exec result
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// EmptyValue 数据库中的空值
var EmptyValue = []byte("FFFFFFFFemptyBVBiCj5jvE15pEiwro8TQRGnJSNsJF")

// CheckAmount 检查金额是否合法
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
