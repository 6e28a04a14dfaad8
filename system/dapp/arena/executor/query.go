// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arena/common/address"
	dbm "github.com/33cn/arena/common/db"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
)

// Query_GetArena 查询 arena 全局统计
func (a *Arena) Query_GetArena(in *types.ReqNil) (types.Message, error) {
	return getArena(a.GetStateDB())
}

// Query_GetPlayer 查询玩家战绩
func (a *Arena) Query_GetPlayer(in *types.ReqString) (types.Message, error) {
	if err := address.CheckAddress(in.Data); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return getPlayer(a.GetStateDB(), in.Data)
}

// Query_GetRpsMatch 查询猜拳对局
func (a *Arena) Query_GetRpsMatch(in *types.ReqString) (types.Message, error) {
	if in.Data == "" {
		return nil, types.ErrInvalidParam
	}
	return getRpsMatch(a.GetStateDB(), in.Data)
}

// Query_GetCoinFlip 查询掷硬币
func (a *Arena) Query_GetCoinFlip(in *types.ReqString) (types.Message, error) {
	if in.Data == "" {
		return nil, types.ErrInvalidParam
	}
	return getCoinFlip(a.GetStateDB(), in.Data)
}

// Query_ListByAddr 按地址列出参与的对局，Height > 0 时从该高度之后继续翻页
func (a *Arena) Query_ListByAddr(in *aty.ReqArenaList) (types.Message, error) {
	if in.Kind != aty.KindRps && in.Kind != aty.KindFlip {
		return nil, types.ErrInvalidParam
	}
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	count := in.Count
	if count <= 0 {
		count = aty.DefaultCount
	}
	if count > aty.MaxCount {
		count = aty.MaxCount
	}
	direction := dbm.ListDESC
	if in.Direction == dbm.ListASC {
		direction = dbm.ListASC
	}
	var key []byte
	if in.Height > 0 {
		key = calcAddrIndexKey(in.Addr, in.Kind, in.Height)
	}
	values, err := a.GetLocalDB().List(calcAddrIndexPrefix(in.Addr, in.Kind), key, count, direction)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	reply := &aty.ReplyArenaList{}
	for _, value := range values {
		var record aty.ArenaRecord
		if err := types.Decode(value, &record); err != nil {
			alog.Error("Query_ListByAddr", "addr", in.Addr, "err", err)
			continue
		}
		reply.Records = append(reply.Records, &record)
	}
	return reply, nil
}
