// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/arena/common/db"
	"github.com/33cn/arena/types"
	"github.com/pkg/errors"
)

//LocalDB 本地数据库，不加入状态。
//数据的get set 主要经过 cache，set 不会落盘
//list 只查询后端数据库中已经写入的数据
type LocalDB struct {
	cache map[string][]byte
	db    dbm.DB
	list  *dbm.ListHelper
}

//NewLocalDB 创建一个新的LocalDB
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{
		cache: make(map[string][]byte),
		db:    db,
		list:  dbm.NewListHelper(db),
	}
}

//Get 获取key
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if value, ok := l.cache[skey]; ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	value, err := l.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		l.cache[skey] = nil
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "LocalDB.Get")
	}
	l.cache[skey] = value
	return value, nil
}

//Set 设置key
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.cache[string(key)] = value
	return nil
}

// List 从数据库中查询数据列表
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := l.list.List(prefix, key, count, direction)
	if values == nil {
		return nil, types.ErrNotFound
	}
	return values, nil
}
