// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行环境：每个交易在 StateDB 的事务中执行，
// 失败时整体回滚，成功时状态数据和本地索引在一个 batch 中写入
package executor

import (
	"bytes"
	"encoding/binary"
	"sync"
	"time"

	"github.com/33cn/arena/common/address"
	dbm "github.com/33cn/arena/common/db"
	"github.com/33cn/arena/common/log"
	drivers "github.com/33cn/arena/system/dapp"
	"github.com/33cn/arena/types"
	"github.com/pkg/errors"
	go_metrics "github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

var (
	execTimer    = go_metrics.GetOrRegisterTimer("executor.exectx", nil)
	txOkCounter  = go_metrics.GetOrRegisterCounter("executor.tx.ok", nil)
	txErrCounter = go_metrics.GetOrRegisterCounter("executor.tx.err", nil)
)

var (
	heightKey = []byte("LODB-executor-height")
	txPrefix  = []byte("LODB-executor-tx-")
)

// Executor 单写者的交易执行器，每个交易占用一个高度
type Executor struct {
	mu     sync.Mutex
	db     dbm.DB
	height int64
	now    func() int64
}

// Option executor option
type Option func(*Executor)

// WithClock 设置区块时间的来源，默认使用系统时间
func WithClock(now func() int64) Option {
	return func(exec *Executor) {
		exec.now = now
	}
}

// New 创建执行器，从数据库中恢复当前高度
func New(db dbm.DB, opts ...Option) (*Executor, error) {
	exec := &Executor{
		db:  db,
		now: func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(exec)
	}
	value, err := db.Get(heightKey)
	if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, errors.Wrap(err, "executor.New")
	}
	if len(value) == 8 {
		exec.height = int64(binary.BigEndian.Uint64(value))
	}
	return exec, nil
}

// Height 已经执行的交易数
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

// ExecTx 执行一个交易，返回的错误表示交易没有产生任何状态变化
func (exec *Executor) ExecTx(tx *types.Transaction) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	defer execTimer.UpdateSince(time.Now())

	receipt, err := exec.execTx(tx)
	if err != nil {
		txErrCounter.Inc(1)
		return nil, err
	}
	txOkCounter.Inc(1)
	return receipt, nil
}

func (exec *Executor) execTx(tx *types.Transaction) (*types.Receipt, error) {
	if tx == nil || len(tx.Execer) == 0 {
		return nil, types.ErrEmptyTx
	}
	if err := address.CheckAddress(tx.From()); err != nil {
		elog.Error("execTx", "from", tx.From(), "err", err)
		return nil, types.ErrFromAddr
	}
	hash := tx.Hash()
	localdb := NewLocalDB(exec.db)
	if _, err := localdb.Get(txKey(hash)); err == nil {
		return nil, types.ErrTxExist
	}
	height := exec.height + 1
	blocktime := exec.now()

	driver, err := drivers.LoadDriver(string(tx.Execer), height)
	if err != nil {
		return nil, err
	}
	statedb := NewStateDB(exec.db)
	driver.SetStateDB(statedb)
	driver.SetLocalDB(localdb)
	driver.SetEnv(height, blocktime)
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}

	statedb.Begin()
	receipt, err := driver.Exec(tx, 0)
	if err == nil && receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	if err == nil {
		//1. statedb 中 Set的 key 必须是 在 receipt.GetKV() 这个集合中
		//2. receipt.GetKV() 中的 key, 必须符合权限控制要求
		err = checkKV(statedb.GetSetKeys(), receipt.GetKV())
	}
	if err == nil {
		err = checkPrefix(tx.Execer, receipt.GetKV())
	}
	if err != nil {
		statedb.Rollback()
		elog.Error("exec tx error", "exec", string(tx.Execer), "action", driver.GetActionName(tx), "err", err)
		return nil, err
	}
	if err := statedb.Commit(); err != nil {
		return nil, err
	}

	rdata := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	lset, err := driver.ExecLocal(tx, rdata, 0)
	if err != nil {
		return nil, err
	}

	batch := exec.db.NewBatch(true)
	writeKVs(batch, receipt.GetKV())
	if lset != nil {
		writeKVs(batch, lset.KV)
	}
	result := &types.TxResult{Height: height, BlockTime: blocktime, Tx: tx, Receipt: rdata}
	batch.Set(txKey(hash), types.Encode(result))
	batch.Set(heightKey, encodeHeight(height))
	if err := batch.Write(); err != nil {
		return nil, errors.Wrap(err, "execTx batch write")
	}
	exec.height = height
	elog.Debug("exec tx", "height", height, "execer", string(tx.Execer), "action", driver.GetActionName(tx))
	return receipt, nil
}

// Query 调用执行器的 Query_ 方法
func (exec *Executor) Query(driverName, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	driver, err := drivers.LoadDriver(driverName, -1)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(NewStateDB(exec.db))
	driver.SetLocalDB(NewLocalDB(exec.db))
	driver.SetEnv(exec.height, exec.now())
	return driver.Query(funcName, types.Encode(param))
}

// GetTxResult 根据交易哈希查询交易和回执
func (exec *Executor) GetTxResult(hash []byte) (*types.TxResult, error) {
	value, err := exec.db.Get(txKey(hash))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "GetTxResult")
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.GetKey())] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			//非法的receipt，交易执行失败
			return types.ErrNotAllowMemSetKey
		}
	}
	return nil
}

// checkPrefix 执行器只能写自己的 key 以及 coins 的资产 key
func checkPrefix(execer []byte, kvs []*types.KeyValue) error {
	own := []byte("mavl-" + string(execer) + "-")
	coins := []byte("mavl-" + types.ExecerCoins + "-")
	for _, kv := range kvs {
		if bytes.HasPrefix(kv.Key, own) || bytes.HasPrefix(kv.Key, coins) {
			continue
		}
		elog.Error("checkPrefix", "execer", string(execer), "key", string(kv.Key))
		return types.ErrExecDBKeyNotAllowed
	}
	return nil
}

func writeKVs(batch dbm.Batch, kvs []*types.KeyValue) {
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
			continue
		}
		batch.Set(kv.Key, kv.Value)
	}
}

func txKey(hash []byte) []byte {
	return append(append([]byte{}, txPrefix...), hash...)
}

func encodeHeight(height int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(height))
	return buf[:]
}
