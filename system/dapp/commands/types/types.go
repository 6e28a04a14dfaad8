// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/arena/types"
)

// AccountResult defines account result
type AccountResult struct {
	Currency int32  `json:"currency,omitempty"`
	Balance  string `json:"balance,omitempty"`
	Frozen   string `json:"frozen,omitempty"`
	Addr     string `json:"addr,omitempty"`
}

// TxReceiptResult 交易以及执行回执
type TxReceiptResult struct {
	Hash      string                   `json:"hash"`
	Execer    string                   `json:"execer"`
	From      string                   `json:"from"`
	To        string                   `json:"to"`
	Height    int64                    `json:"height,omitempty"`
	BlockTime int64                    `json:"blockTime,omitempty"`
	Receipt   *types.ReceiptDataResult `json:"receipt"`
}
