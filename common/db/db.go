// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库接口以及 memdb/goleveldb/gobadgerdb 三种实现
package db

import (
	"errors"
	"fmt"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var dlog = log.New("module", "db")

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV 执行器使用的状态数据库，支持交易内回滚
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
	Begin()
	Rollback()
	Commit() error
}

// KVDB 执行器使用的本地数据库
type KVDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// IteratorDB 可以迭代的数据库
type IteratorDB interface {
	// Iterator 迭代 [start, end)，end 为 nil 时迭代 start 前缀下的所有 key
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

// DB 数据库后端
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	SetSync([]byte, []byte) error
	Delete([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写，Write 原子地提交
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator 迭代器。reverse 时 Next 向前移动，Seek 定位到 <= key 的最后一个 key
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//-----------------------------------------------------------------------------

// backend
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 根据 backend 创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	dbCreator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %s", backend)
	}
	db, err := dbCreator(name, dir, int(cache))
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}

// bytesRange 计算迭代范围，end 为空时取 start 前缀的上界
func bytesRange(start, end []byte) *util.Range {
	if end != nil {
		return &util.Range{Start: start, Limit: end}
	}
	return util.BytesPrefix(start)
}

func inRange(key []byte, r *util.Range) bool {
	if r.Start != nil && string(key) < string(r.Start) {
		return false
	}
	if r.Limit != nil && string(key) >= string(r.Limit) {
		return false
	}
	return true
}

// CopyBytes Returns an exact copy of the provided bytes
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}
