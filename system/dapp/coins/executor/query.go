// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arena/common/address"
	"github.com/33cn/arena/types"
)

// Query_GetAddrBalance 查询地址余额，Execer 不为空时查询在该合约中的余额
func (c *Coins) Query_GetAddrBalance(in *types.ReqBalance) (types.Message, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	acc := c.GetCoinsAccount()
	if in.ExecAddr != "" {
		return acc.LoadExecAccount(in.Addr, in.ExecAddr), nil
	}
	if in.Execer != "" && in.Execer != driverName {
		return acc.LoadExecAccount(in.Addr, address.ExecAddress(in.Execer)), nil
	}
	return acc.LoadAccount(in.Addr), nil
}
