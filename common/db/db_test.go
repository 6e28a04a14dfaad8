// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDBs(t *testing.T) map[string]DB {
	dir := t.TempDir()
	dbs := make(map[string]DB)
	for _, backend := range []string{MemDBBackendStr, GoLevelDBBackendStr, GoBadgerDBBackendStr} {
		db, err := NewDB("test-"+backend, backend, dir, 16)
		require.NoError(t, err, backend)
		t.Cleanup(db.Close)
		dbs[backend] = db
	}
	return dbs
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("x", "nosuchdb", t.TempDir(), 16)
	require.Error(t, err)
}

func TestDBGetSetDelete(t *testing.T) {
	for name, db := range newTestDBs(t) {
		_, err := db.Get([]byte("k"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, db.Set([]byte("k"), []byte("v")))
		v, err := db.Get([]byte("k"))
		require.NoError(t, err, name)
		require.Equal(t, []byte("v"), v, name)

		require.NoError(t, db.Delete([]byte("k")))
		_, err = db.Get([]byte("k"))
		require.Equal(t, ErrNotFoundInDb, err, name)
	}
}

func TestDBBatch(t *testing.T) {
	for name, db := range newTestDBs(t) {
		require.NoError(t, db.Set([]byte("old"), []byte("1")))
		batch := db.NewBatch(true)
		batch.Set([]byte("a"), []byte("1"))
		batch.Set([]byte("b"), []byte("22"))
		batch.Delete([]byte("old"))
		require.Equal(t, 4, batch.ValueSize(), name)

		// nothing visible before Write
		_, err := db.Get([]byte("a"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, batch.Write(), name)
		v, err := db.Get([]byte("b"))
		require.NoError(t, err, name)
		require.Equal(t, []byte("22"), v, name)
		_, err = db.Get([]byte("old"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		batch.Reset()
		require.Equal(t, 0, batch.ValueSize(), name)
	}
}

// 迭代测试
func TestDBIterator(t *testing.T) {
	for name, db := range newTestDBs(t) {
		testDBIterator(t, name, db)
	}
}

func testDBIterator(t *testing.T, name string, db DB) {
	db.Set([]byte("aaaaaa/1"), []byte("aaaaaa/1"))
	db.Set([]byte("my_key/1"), []byte("my_key/1"))
	db.Set([]byte("my_key/2"), []byte("my_key/2"))
	db.Set([]byte("my_key/3"), []byte("my_key/3"))
	db.Set([]byte("my_key/4"), []byte("my_key/4"))
	db.Set([]byte("my"), []byte("my"))
	db.Set([]byte("my_"), []byte("my_"))
	db.Set([]byte("zzzzzz/1"), []byte("zzzzzz/1"))
	b, err := hex.DecodeString("ff")
	require.NoError(t, err)
	db.Set(b, []byte("0xff"))

	it := NewListHelper(db)
	list := it.PrefixScan(nil)
	require.Equal(t, [][]byte{[]byte("aaaaaa/1"), []byte("my"), []byte("my_"), []byte("my_key/1"), []byte("my_key/2"), []byte("my_key/3"), []byte("my_key/4"), []byte("zzzzzz/1"), []byte("0xff")}, list, name)

	list = it.IteratorScanFromFirst([]byte("my"), 2)
	require.Equal(t, [][]byte{[]byte("my"), []byte("my_")}, list, name)

	list = it.IteratorScanFromLast([]byte("my"), 100)
	require.Equal(t, [][]byte{[]byte("my_key/4"), []byte("my_key/3"), []byte("my_key/2"), []byte("my_key/1"), []byte("my_"), []byte("my")}, list, name)

	list = it.IteratorScan([]byte("my"), []byte("my_key/3"), 100, ListASC)
	require.Equal(t, [][]byte{[]byte("my_key/4")}, list, name)

	list = it.IteratorScan([]byte("my"), []byte("my_key/3"), 100, ListDESC)
	require.Equal(t, [][]byte{[]byte("my_key/2"), []byte("my_key/1"), []byte("my_"), []byte("my")}, list, name)

	list = it.IteratorScanFromLast(b, 10)
	require.Equal(t, [][]byte{[]byte("0xff")}, list, name)
}
