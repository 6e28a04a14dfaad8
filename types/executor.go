// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"sync"

	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")

// ExecutorType 执行器的类型信息：payload 的编解码，action 与日志的名称映射
type ExecutorType interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	InitFuncList(list map[string]reflect.Method)
	GetFuncMap() map[string]reflect.Method
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
}

// ExecutorAction payload 中的 oneof action
type ExecutorAction interface {
	Message
	GetTy() int32
	GetActionValue() Message
}

// LogInfo 日志类型信息
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

// Decode 根据日志类型解码
func (l *LogInfo) Decode(data []byte) (interface{}, error) {
	msg, ok := reflect.New(l.Ty).Interface().(Message)
	if !ok {
		return nil, ErrLogType
	}
	if err := Decode(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// SystemLog 所有执行器共享的资产日志
var SystemLog = map[int64]*LogInfo{
	TyLogReserved:     {reflect.TypeOf(ReqNil{}), "LogReserved"},
	TyLogTransfer:     {reflect.TypeOf(ReceiptAccountTransfer{}), "LogTransfer"},
	TyLogDeposit:      {reflect.TypeOf(ReceiptAccountTransfer{}), "LogDeposit"},
	TyLogGenesis:      {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesis"},
	TyLogExecTransfer: {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecTransfer"},
	TyLogExecWithdraw: {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecWithdraw"},
	TyLogExecDeposit:  {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecDeposit"},
	TyLogExecFrozen:   {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecFrozen"},
	TyLogExecActive:   {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecActive"},
}

var (
	executorMu  sync.RWMutex
	executorMap = map[string]ExecutorType{}
)

// RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	executorMu.Lock()
	defer executorMu.Unlock()
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType")
	}
	executorMap[exec] = util
}

// LoadExecutorType 加载执行器类型
func LoadExecutorType(exec string) ExecutorType {
	executorMu.RLock()
	defer executorMu.RUnlock()
	if ety, exist := executorMap[exec]; exist {
		return ety
	}
	return nil
}

// LoadLogInfo 查找日志类型，先查系统日志
func LoadLogInfo(exec string, ty int64) *LogInfo {
	if info, ok := SystemLog[ty]; ok {
		return info
	}
	ety := LoadExecutorType(exec)
	if ety == nil {
		return nil
	}
	return ety.GetLogMap()[ty]
}

// ExecTypeBase 执行器类型的公共实现，具体类型通过 SetChild 注入
type ExecTypeBase struct {
	child        ExecutorType
	actionNames  map[int32]string
	execFuncList map[string]reflect.Method
}

// SetChild 设置具体的执行器类型
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionNames = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionNames[ty] = name
	}
}

// InitFuncList 初始化执行器的方法列表
func (base *ExecTypeBase) InitFuncList(list map[string]reflect.Method) {
	base.execFuncList = list
}

// GetFuncMap 获取执行器的方法列表
func (base *ExecTypeBase) GetFuncMap() map[string]reflect.Method {
	return base.execFuncList
}

// GetLogMap 默认没有自定义日志
func (base *ExecTypeBase) GetLogMap() map[int64]*LogInfo {
	return nil
}

// DecodePayload 解码交易的 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	if err := Decode(tx.Payload, payload); err != nil {
		tlog.Debug("DecodePayload", "execer", string(tx.Execer), "err", err)
		return nil, ErrDecode
	}
	return payload, nil
}

// DecodePayloadValue 解码 payload 并返回 action 名称和 action 的值
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", reflect.Value{}, err
	}
	action, ok := payload.(ExecutorAction)
	if !ok {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	name, ok := base.actionNames[action.GetTy()]
	value := action.GetActionValue()
	if !ok || value == nil {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	return name, rv, nil
}

// ActionName 交易的 action 名称
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}
