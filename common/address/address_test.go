// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/33cn/arena/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	assert.Equal(t, "16htvcBNSEA7fZhAdLJphDwQRQJaHpyHTp", ExecAddress("ticket"))
	// cached value matches the uncached derivation
	assert.Equal(t, GetExecAddress("arena").String(), ExecAddress("arena"))
	assert.NotEqual(t, ExecAddress("arena-escrow-1"), ExecAddress("arena-escrow-2"))
}

func TestCheckAddress(t *testing.T) {
	addr := PubKeyToAddress(common.GetRandBytes(33, 33)).String()
	require.NoError(t, CheckAddress(addr))

	a, err := NewAddrFromString(addr)
	require.NoError(t, err)
	assert.Equal(t, addr, a.String())

	// flip the last character to break the checksum
	last := addr[len(addr)-1]
	bad := addr[:len(addr)-1] + "1"
	if last == '1' {
		bad = addr[:len(addr)-1] + "2"
	}
	assert.Error(t, CheckAddress(bad))
	assert.Error(t, CheckAddress("0OIl"))
}

func BenchmarkExecAddress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExecAddress("ticket")
	}
}
