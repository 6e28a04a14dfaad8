// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 命令行公用的结构以及金额格式转换
package types

import (
	"github.com/33cn/arena/common"
	"github.com/33cn/arena/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var coinPrecision = decimal.New(types.Coin, 0)

// DecodeAccount 把账户金额转换为显示值
func DecodeAccount(acc *types.Account) *AccountResult {
	return &AccountResult{
		Addr:     acc.Addr,
		Currency: acc.Currency,
		Balance:  FormatAmountValue2Display(acc.GetBalance()),
		Frozen:   FormatAmountValue2Display(acc.GetFrozen()),
	}
}

// DecodeTxResult 把交易和回执转换为显示结构
func DecodeTxResult(tx *types.Transaction, receipt *types.Receipt, height, blocktime int64) *TxReceiptResult {
	return &TxReceiptResult{
		Hash:      common.ToHex(tx.Hash()),
		Execer:    string(tx.Execer),
		From:      tx.From(),
		To:        tx.To,
		Height:    height,
		BlockTime: blocktime,
		Receipt:   types.ReceiptDataResultOf(string(tx.Execer), receipt),
	}
}

// FormatAmountValue2Display 将传输、计算的amount值格式化成显示值
func FormatAmountValue2Display(amount int64) string {
	return decimal.New(amount, 0).Div(coinPrecision).StringFixed(4)
}

// FormatAmountDisplay2Value 将显示、输入的amount值格式化成传输、计算值，精度超过 1e-8 时报错
func FormatAmountDisplay2Value(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s", amount)
	}
	v := d.Mul(coinPrecision)
	if !v.Equal(v.Truncate(0)) {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s precision", amount)
	}
	return v.IntPart(), nil
}

// GetAmountValue 将命令行中的amount值转换成int64
func GetAmountValue(cmd *cobra.Command, field string) (int64, error) {
	amount, _ := cmd.Flags().GetString(field)
	return FormatAmountDisplay2Value(amount)
}
