// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"path"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var blog = dlog.New("backend", GoBadgerDBBackendStr)

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badger 的日志转到 log15
type badgerLogger struct{}

func (badgerLogger) Errorf(f string, v ...interface{})   { blog.Error(fmt.Sprintf(f, v...)) }
func (badgerLogger) Warningf(f string, v ...interface{}) { blog.Warn(fmt.Sprintf(f, v...)) }
func (badgerLogger) Infof(f string, v ...interface{})    { blog.Debug(fmt.Sprintf(f, v...)) }
func (badgerLogger) Debugf(f string, v ...interface{})   { blog.Debug(fmt.Sprintf(f, v...)) }

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = badgerLogger{}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "NewGoBadgerDB")
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	// badger 不区分空值和 nil
	if val == nil {
		val = []byte{}
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//SetSync 同步，badger 默认 SyncWrites
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm":  fmt.Sprint(lsm),
		"badger.vlog": fmt.Sprint(vlog),
	}
}

//Iterator 迭代器
func (db *GoBadgerDB) Iterator(start, end []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{txn: txn, it: it, r: bytesRange(start, end), reverse: reverse}
}

type goBadgerDBIt struct {
	txn     *badger.Txn
	it      *badger.Iterator
	r       *util.Range
	reverse bool
	err     error
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if !dbit.reverse {
		if dbit.r.Start == nil {
			dbit.it.Rewind()
		} else {
			dbit.it.Seek(dbit.r.Start)
		}
		return dbit.Valid()
	}
	if dbit.r.Limit == nil {
		dbit.it.Rewind()
		return dbit.Valid()
	}
	dbit.it.Seek(dbit.r.Limit)
	// Limit 不包含在范围内
	if dbit.it.Valid() && bytes.Equal(dbit.it.Item().Key(), dbit.r.Limit) {
		dbit.it.Next()
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Seek(key []byte) bool {
	dbit.it.Seek(key)
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.it.Valid() && inRange(dbit.it.Item().Key(), dbit.r)
}

func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.it.Item().Key()
}

func (dbit *goBadgerDBIt) Value() []byte {
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		dbit.err = err
	}
	return value
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	return dbit.Value()
}

func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{CopyBytes(key), CopyBytes(value), false})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{CopyBytes(key), nil, true})
	mBatch.size++
}

// Write 在一个 badger 事务里提交
func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			var err error
			if kv.del {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return errors.Wrap(err, "goBadgerDBBatch.Write")
	}
	return nil
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
