// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = dlog.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	return db.IteratorScanFromFirst(prefix, 0)
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//List 列表。key 为空时从头(ASC)或从尾(DESC)开始，否则从 key 之后开始，不包含 key 本身
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	if len(key) == 0 {
		if direction == ListASC {
			return db.IteratorScanFromFirst(prefix, count)
		}
		return db.IteratorScanFromLast(prefix, count)
	}
	return db.IteratorScan(prefix, key, count, direction)
}

//IteratorScan 迭代。count <= 0 时不限制数量
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, direction == ListDESC)
	defer it.Close()

	it.Seek(key)
	if it.Valid() && bytes.Equal(it.Key(), key) {
		it.Next()
	}
	return collect(it, count)
}

//IteratorScanFromFirst 从头迭代
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	it.Rewind()
	return collect(it, count)
}

//IteratorScanFromLast 从尾迭代
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()
	it.Rewind()
	return collect(it, count)
}

func collect(it Iterator, count int32) (values [][]byte) {
	var i int32
	for ; it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("collect it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return values
}
