// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"
	"testing"

	dbm "github.com/33cn/arena/common/db"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	*dbm.GoMemDB
}

func (memKV) Begin()        {}
func (memKV) Rollback()     {}
func (memKV) Commit() error { return nil }

func TestSaveInvalidRecord(t *testing.T) {
	mdb, err := dbm.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	action := &Action{db: memKV{mdb}}
	long := strings.Repeat("x", aty.MaxStringLen+1)

	kv, err := action.savePlayer(&aty.PlayerStats{Owner: long, Rating: aty.InitialRating})
	assert.Equal(t, aty.ErrInvalidRecord, err)
	assert.Nil(t, kv)
	_, err = mdb.Get(playerKey(long))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	_, err = action.saveRps(&aty.RpsMatch{ID: "0x01", PlayerA: long, Phase: aty.PhaseOpen})
	assert.Equal(t, aty.ErrInvalidRecord, err)
	_, err = action.saveFlip(&aty.CoinFlip{ID: "0x01", Phase: aty.FlipSettled})
	assert.Equal(t, aty.ErrInconsistentState, err)
	_, err = mdb.Get(flipKey("0x01"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	kv, err = action.saveArena(&aty.Arena{Authority: strings.Repeat("a", aty.MaxStringLen), FeeRateBps: aty.FeeRateBps})
	require.NoError(t, err)
	require.Len(t, kv, 1)
	arena, err := getArena(action.db)
	require.NoError(t, err)
	assert.Equal(t, uint16(aty.FeeRateBps), arena.FeeRateBps)
}
