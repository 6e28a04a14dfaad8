// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandBytesLen(t *testing.T) {
	str := GetRandBytes(10, 20)
	if len(str) < 10 || len(str) > 20 {
		t.Error("rand str len")
	}
	assert.Len(t, GetRandBytes(32, 32), 32)
	a := GetRand32()
	b := GetRand32()
	assert.NotEqual(t, a, b)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0a0b", ToHex([]byte{10, 11}))
	b, err := FromHex("0xa0b")
	require.Nil(t, err)
	assert.Equal(t, []byte{10, 11}, b)
	_, err = FromHex("0xzz")
	assert.NotNil(t, err)
}

func TestKeccak256(t *testing.T) {
	// keccak256("") legacy padding, differs from sha3-256("")
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ToHex(ShaKeccak256(nil)))
	assert.Equal(t, ShaKeccak256([]byte("ab")), ShaKeccak256([]byte("a"), []byte("b")))
}

func TestSha2Sum(t *testing.T) {
	once := Sha256([]byte("chain"))
	twice := Sha256(once)
	sum := Sha2Sum([]byte("chain"))
	assert.Equal(t, twice, sum[:])
}
