// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// KeyValue 数据库中的一条记录
type KeyValue struct {
	Key   []byte
	Value []byte
}

// GetKey get key
func (kv *KeyValue) GetKey() []byte {
	if kv == nil {
		return nil
	}
	return kv.Key
}

// GetValue get value
func (kv *KeyValue) GetValue() []byte {
	if kv == nil {
		return nil
	}
	return kv.Value
}

// ReceiptLog 执行日志
type ReceiptLog struct {
	Ty  int32
	Log []byte
}

// Receipt 交易执行的结果：状态数据库的写集合以及日志
type Receipt struct {
	Ty   int32
	KV   []*KeyValue
	Logs []*ReceiptLog
}

// GetKV get kv set
func (r *Receipt) GetKV() []*KeyValue {
	if r == nil {
		return nil
	}
	return r.KV
}

// GetLogs get logs
func (r *Receipt) GetLogs() []*ReceiptLog {
	if r == nil {
		return nil
	}
	return r.Logs
}

// ReceiptData 给 ExecLocal 使用的回执，不包含 KV
type ReceiptData struct {
	Ty   int32
	Logs []*ReceiptLog
}

// GetTy get ty
func (r *ReceiptData) GetTy() int32 {
	if r == nil {
		return 0
	}
	return r.Ty
}

// GetLogs get logs
func (r *ReceiptData) GetLogs() []*ReceiptLog {
	if r == nil {
		return nil
	}
	return r.Logs
}

// LocalDBSet 本地数据库的写集合
type LocalDBSet struct {
	KV []*KeyValue
}

// ReceiptLogResult 解码后的日志
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log"`
}

// ReceiptDataResult 解码后的回执，给命令行显示用
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

// ReceiptDataResultOf 解码 receipt 中的日志
func ReceiptDataResultOf(execer string, r *Receipt) *ReceiptDataResult {
	result := &ReceiptDataResult{Ty: r.Ty}
	switch r.Ty {
	case ExecOk:
		result.TyName = "ExecOk"
	case ExecPack:
		result.TyName = "ExecPack"
	default:
		result.TyName = "ExecErr"
	}
	for _, l := range r.Logs {
		lr := &ReceiptLogResult{Ty: l.Ty, TyName: "LogReserved"}
		if info := LoadLogInfo(execer, int64(l.Ty)); info != nil {
			lr.TyName = info.Name
			if msg, err := info.Decode(l.Log); err == nil {
				lr.Log = msg
			}
		}
		result.Logs = append(result.Logs, lr)
	}
	return result
}

// ReqKey 单个key的查询
type ReqKey struct {
	Key []byte
}

// Marshal encode
func (r *ReqKey) Marshal() []byte {
	var e WireEncoder
	e.Raw(1, r.Key)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReqKey) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		if num == 1 {
			r.Key = d.Raw(typ)
			continue
		}
		d.Skip(num, typ)
	}
	return d.Err()
}

// ReqString 单个字符串参数的查询
type ReqString struct {
	Data string
}

// Marshal encode
func (r *ReqString) Marshal() []byte {
	var e WireEncoder
	e.String(1, r.Data)
	return e.Encoded()
}

// Unmarshal decode
func (r *ReqString) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		if num == 1 {
			r.Data = d.String(typ)
			continue
		}
		d.Skip(num, typ)
	}
	return d.Err()
}

// ReqNil 空参数
type ReqNil struct{}

// Marshal encode
func (r *ReqNil) Marshal() []byte { return nil }

// Unmarshal decode
func (r *ReqNil) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		d.Skip(num, typ)
	}
	return d.Err()
}

// Marshal encode
func (l *ReceiptLog) Marshal() []byte {
	var e WireEncoder
	e.Int32(1, l.Ty)
	e.Raw(2, l.Log)
	return e.Encoded()
}

// Unmarshal decode
func (l *ReceiptLog) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			l.Ty = d.Int32(typ)
		case 2:
			l.Log = d.Raw(typ)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// Marshal encode
func (r *ReceiptData) Marshal() []byte {
	var e WireEncoder
	e.Int32(1, r.Ty)
	for _, l := range r.Logs {
		e.Message(2, l)
	}
	return e.Encoded()
}

// Unmarshal decode
func (r *ReceiptData) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			r.Ty = d.Int32(typ)
		case 2:
			l := &ReceiptLog{}
			d.Message(typ, l)
			r.Logs = append(r.Logs, l)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}

// TxResult 交易以及执行结果，保存在本地数据库
type TxResult struct {
	Height    int64
	BlockTime int64
	Tx        *Transaction
	Receipt   *ReceiptData
}

// Marshal encode
func (r *TxResult) Marshal() []byte {
	var e WireEncoder
	e.Int64(1, r.Height)
	e.Int64(2, r.BlockTime)
	if r.Tx != nil {
		e.Message(3, r.Tx)
	}
	if r.Receipt != nil {
		e.Message(4, r.Receipt)
	}
	return e.Encoded()
}

// Unmarshal decode
func (r *TxResult) Unmarshal(data []byte) error {
	d := NewWireDecoder(data)
	for {
		num, typ, ok := d.Next()
		if !ok {
			break
		}
		switch num {
		case 1:
			r.Height = d.Int64(typ)
		case 2:
			r.BlockTime = d.Int64(typ)
		case 3:
			r.Tx = &Transaction{}
			d.Message(typ, r.Tx)
		case 4:
			r.Receipt = &ReceiptData{}
			d.Message(typ, r.Receipt)
		default:
			d.Skip(num, typ)
		}
	}
	return d.Err()
}
