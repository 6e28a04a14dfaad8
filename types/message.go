// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Message 所有在链上传输和存储的消息都实现这个接口
type Message interface {
	Marshal() []byte
	Unmarshal(data []byte) error
}

// Encode 编码
func Encode(data Message) []byte {
	if data == nil {
		return nil
	}
	return data.Marshal()
}

// Decode 解码
func Decode(data []byte, msg Message) error {
	return msg.Unmarshal(data)
}

// WireEncoder appends protobuf wire fields. Zero values are omitted like proto3 scalars.
type WireEncoder struct {
	buf []byte
}

// Varint appends an unsigned varint field.
func (e *WireEncoder) Varint(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

// Int64 appends a proto int64 field.
func (e *WireEncoder) Int64(num protowire.Number, v int64) {
	e.Varint(num, uint64(v))
}

// Int32 appends a proto int32 field.
func (e *WireEncoder) Int32(num protowire.Number, v int32) {
	e.Varint(num, uint64(int64(v)))
}

// Bool appends a bool field.
func (e *WireEncoder) Bool(num protowire.Number, v bool) {
	if v {
		e.Varint(num, 1)
	}
}

// Raw appends a length delimited field.
func (e *WireEncoder) Raw(num protowire.Number, v []byte) {
	if len(v) == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, v)
}

// String appends a string field.
func (e *WireEncoder) String(num protowire.Number, s string) {
	e.Raw(num, []byte(s))
}

// Message appends an embedded message. A non-nil empty message is still written so
// that oneof members survive the round trip.
func (e *WireEncoder) Message(num protowire.Number, m Message) {
	if m == nil {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, m.Marshal())
}

// Encoded returns the accumulated buffer.
func (e *WireEncoder) Encoded() []byte {
	return e.buf
}

// WireDecoder walks the fields of a protobuf wire message.
type WireDecoder struct {
	buf []byte
	err error
}

// NewWireDecoder creates a decoder over data.
func NewWireDecoder(data []byte) *WireDecoder {
	return &WireDecoder{buf: data}
}

// Next reads the next field tag. It returns false at the end of input or on error.
func (d *WireDecoder) Next() (protowire.Number, protowire.Type, bool) {
	if d.err != nil || len(d.buf) == 0 {
		return 0, 0, false
	}
	num, typ, n := protowire.ConsumeTag(d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return 0, 0, false
	}
	d.buf = d.buf[n:]
	return num, typ, true
}

// Varint reads a varint field value.
func (d *WireDecoder) Varint(typ protowire.Type) uint64 {
	if !d.expect(typ, protowire.VarintType) {
		return 0
	}
	v, n := protowire.ConsumeVarint(d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return 0
	}
	d.buf = d.buf[n:]
	return v
}

// Int64 reads a proto int64 field value.
func (d *WireDecoder) Int64(typ protowire.Type) int64 {
	return int64(d.Varint(typ))
}

// Int32 reads a proto int32 field value.
func (d *WireDecoder) Int32(typ protowire.Type) int32 {
	return int32(d.Varint(typ))
}

// Bool reads a bool field value.
func (d *WireDecoder) Bool(typ protowire.Type) bool {
	return d.Varint(typ) != 0
}

// Raw reads a length delimited field value. The result is a copy.
func (d *WireDecoder) Raw(typ protowire.Type) []byte {
	if !d.expect(typ, protowire.BytesType) {
		return nil
	}
	v, n := protowire.ConsumeBytes(d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return nil
	}
	d.buf = d.buf[n:]
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

// String reads a string field value.
func (d *WireDecoder) String(typ protowire.Type) string {
	return string(d.Raw(typ))
}

// Message decodes an embedded message into m.
func (d *WireDecoder) Message(typ protowire.Type, m Message) {
	data := d.Raw(typ)
	if d.err != nil {
		return
	}
	if err := m.Unmarshal(data); err != nil {
		d.err = err
	}
}

// Skip discards the value of an unknown field.
func (d *WireDecoder) Skip(num protowire.Number, typ protowire.Type) {
	n := protowire.ConsumeFieldValue(num, typ, d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return
	}
	d.buf = d.buf[n:]
}

// Err returns the first decoding error.
func (d *WireDecoder) Err() error {
	return d.err
}

func (d *WireDecoder) expect(got, want protowire.Type) bool {
	if d.err != nil {
		return false
	}
	if got != want {
		d.err = ErrDecode
		return false
	}
	return true
}
