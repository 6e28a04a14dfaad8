// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/types"
)

// ExecLocal_RpsCreate 建立创建者到对局的地址索引
func (a *Arena) ExecLocal_RpsCreate(payload *aty.RpsCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return a.indexGames(receipt, aty.TyLogRpsCreate)
}

// ExecLocal_RpsJoin 建立加入者到对局的地址索引
func (a *Arena) ExecLocal_RpsJoin(payload *aty.RpsJoin, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return a.indexGames(receipt, aty.TyLogRpsJoin)
}

// ExecLocal_FlipCreate 建立创建者到掷硬币的地址索引
func (a *Arena) ExecLocal_FlipCreate(payload *aty.FlipCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return a.indexGames(receipt, aty.TyLogFlipCreate)
}

// ExecLocal_FlipJoin 建立加入者到掷硬币的地址索引
func (a *Arena) ExecLocal_FlipJoin(payload *aty.FlipJoin, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return a.indexGames(receipt, aty.TyLogFlipJoin)
}

func (a *Arena) indexGames(receipt *types.ReceiptData, ty int32) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.GetLogs() {
		if item.Ty != ty {
			continue
		}
		var game aty.ReceiptArenaGame
		if err := types.Decode(item.Log, &game); err != nil {
			return nil, err
		}
		record := &aty.ArenaRecord{Kind: game.Kind, ID: game.ID, Height: a.GetHeight()}
		set.KV = append(set.KV, &types.KeyValue{
			Key:   calcAddrIndexKey(game.Addr, game.Kind, a.GetHeight()),
			Value: types.Encode(record),
		})
	}
	return set, nil
}
