// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/arena/common/db"
	"github.com/33cn/arena/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemDB(t *testing.T) *db.GoMemDB {
	mdb, err := db.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	return mdb
}

func TestStateDBGet(t *testing.T) {
	mdb := newMemDB(t)
	require.NoError(t, mdb.Set([]byte("k0"), []byte("v0")))
	sdb := NewStateDB(mdb)

	v, err := sdb.Get([]byte("k0"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v0"), v)

	err = sdb.Set([]byte("k1"), []byte("v1"))
	assert.Nil(t, err)
	v, err = sdb.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)

	_, err = sdb.Get([]byte("not-exist"))
	assert.Equal(t, types.ErrNotFound, err)

	vs, err := sdb.BatchGet([][]byte{[]byte("k1"), []byte("not-exist")})
	assert.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("v1"), nil}, vs)

	// statedb 不直接写后端数据库
	_, err = mdb.Get([]byte("k1"))
	assert.Equal(t, db.ErrNotFoundInDb, err)
}

func TestStateDBTxRollback(t *testing.T) {
	sdb := NewStateDB(newMemDB(t))
	sdb.Begin()
	err := sdb.Set([]byte("k1"), []byte("v1"))
	assert.Nil(t, err)
	v, err := sdb.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)
	assert.Equal(t, []string{"k1"}, sdb.GetSetKeys())

	sdb.Rollback()
	v, err = sdb.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)
	assert.Nil(t, v)
	assert.Nil(t, sdb.GetSetKeys())
}

func TestStateDBTxCommit(t *testing.T) {
	sdb := NewStateDB(newMemDB(t))
	sdb.Begin()
	assert.Nil(t, sdb.Set([]byte("k1"), []byte("v1")))
	assert.Nil(t, sdb.Commit())
	v, err := sdb.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)

	// 新事务中的修改回滚之后，之前提交的值仍然有效
	sdb.Begin()
	assert.Nil(t, sdb.Set([]byte("k1"), []byte("v2")))
	v, _ = sdb.Get([]byte("k1"))
	assert.Equal(t, []byte("v2"), v)
	sdb.Rollback()
	v, _ = sdb.Get([]byte("k1"))
	assert.Equal(t, []byte("v1"), v)
}

func TestLocalDB(t *testing.T) {
	mdb := newMemDB(t)
	require.NoError(t, mdb.Set([]byte("LODB-a-1"), []byte("1")))
	require.NoError(t, mdb.Set([]byte("LODB-a-2"), []byte("2")))
	require.NoError(t, mdb.Set([]byte("LODB-b-1"), []byte("3")))
	ldb := NewLocalDB(mdb)

	v, err := ldb.Get([]byte("LODB-a-1"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = ldb.Get([]byte("LODB-a-3"))
	assert.Equal(t, types.ErrNotFound, err)

	assert.NoError(t, ldb.Set([]byte("LODB-a-3"), []byte("x")))
	v, err = ldb.Get([]byte("LODB-a-3"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("x"), v)

	values, err := ldb.List([]byte("LODB-a-"), nil, 0, db.ListASC)
	assert.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("1"), []byte("2")}, values)

	values, err = ldb.List([]byte("LODB-a-"), nil, 1, db.ListDESC)
	assert.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("2")}, values)

	_, err = ldb.List([]byte("LODB-c-"), nil, 0, db.ListASC)
	assert.Equal(t, types.ErrNotFound, err)
}

func TestCheckKV(t *testing.T) {
	kvs := []*types.KeyValue{{Key: []byte("mavl-arena-a"), Value: []byte("1")}}
	assert.NoError(t, checkKV([]string{"mavl-arena-a"}, kvs))
	assert.Equal(t, types.ErrNotAllowMemSetKey, checkKV([]string{"mavl-arena-b"}, kvs))
}

func TestCheckPrefix(t *testing.T) {
	assert.NoError(t, checkPrefix([]byte("arena"), []*types.KeyValue{
		{Key: []byte("mavl-arena-a")},
		{Key: []byte("mavl-coins-bty-exec-x:y")},
	}))
	assert.Equal(t, types.ErrExecDBKeyNotAllowed, checkPrefix([]byte("arena"), []*types.KeyValue{{Key: []byte("mavl-other-a")}}))
	assert.Equal(t, types.ErrExecDBKeyNotAllowed, checkPrefix([]byte("arena"), []*types.KeyValue{{Key: []byte("mavl-arenax-a")}}))
}
