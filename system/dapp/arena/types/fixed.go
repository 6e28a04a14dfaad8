// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"
)

// 状态数据库中的记录使用定长的大端编码，字符串占用 1 字节长度加 MaxStringLen 字节
const strFieldLen = 1 + MaxStringLen

type fixedWriter struct {
	buf []byte
}

func newFixedWriter(size int) *fixedWriter {
	return &fixedWriter{buf: make([]byte, 0, size)}
}

// str 超长的字符串只写入非法长度，解码时返回 ErrInvalidRecord
func (w *fixedWriter) str(s string) {
	var field [strFieldLen]byte
	if len(s) > MaxStringLen {
		field[0] = MaxStringLen + 1
	} else {
		field[0] = byte(len(s))
		copy(field[1:], s)
	}
	w.buf = append(w.buf, field[:]...)
}

func checkStr(fields ...string) error {
	for _, s := range fields {
		if len(s) > MaxStringLen {
			return ErrInvalidRecord
		}
	}
	return nil
}

func (w *fixedWriter) u64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

func (w *fixedWriter) i64(v int64) {
	w.u64(uint64(v))
}

func (w *fixedWriter) u32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *fixedWriter) u16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

func (w *fixedWriter) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *fixedWriter) flag(v bool) {
	if v {
		w.u8(1)
		return
	}
	w.u8(0)
}

func (w *fixedWriter) hash(h [HashLen]byte) {
	w.buf = append(w.buf, h[:]...)
}

type fixedReader struct {
	buf []byte
	err error
}

func newFixedReader(data []byte, size int) *fixedReader {
	r := &fixedReader{buf: data}
	if len(data) != size {
		r.err = ErrInvalidRecord
	}
	return r
}

func (r *fixedReader) take(n int) []byte {
	if r.err != nil {
		return make([]byte, n)
	}
	if len(r.buf) < n {
		r.err = ErrInvalidRecord
		return make([]byte, n)
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *fixedReader) str() string {
	b := r.take(strFieldLen)
	n := int(b[0])
	if n > MaxStringLen {
		r.err = ErrInvalidRecord
		return ""
	}
	return string(b[1 : 1+n])
}

func (r *fixedReader) u64() uint64 {
	return binary.BigEndian.Uint64(r.take(8))
}

func (r *fixedReader) i64() int64 {
	return int64(r.u64())
}

func (r *fixedReader) u32() uint32 {
	return binary.BigEndian.Uint32(r.take(4))
}

func (r *fixedReader) u16() uint16 {
	return binary.BigEndian.Uint16(r.take(2))
}

func (r *fixedReader) u8() uint8 {
	return r.take(1)[0]
}

func (r *fixedReader) flag() bool {
	v := r.u8()
	if v > 1 {
		r.err = ErrInvalidRecord
	}
	return v == 1
}

func (r *fixedReader) hash() (h [HashLen]byte) {
	copy(h[:], r.take(HashLen))
	return h
}
