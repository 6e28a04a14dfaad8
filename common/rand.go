// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"crypto/rand"
	"math/big"
)

// GetRandBytes 获取长度在 [min, max] 之间的随机字节
func GetRandBytes(min, max int) []byte {
	length := max
	if min < max {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
		if err != nil {
			panic(err)
		}
		length = min + int(n.Int64())
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// GetRand32 获取 32 字节的随机数，用于 salt 和 secret
func GetRand32() (out [32]byte) {
	copy(out[:], GetRandBytes(32, 32))
	return
}
