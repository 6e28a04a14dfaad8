// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/arena/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.5000", FormatAmountValue2Display(150000000))
	assert.Equal(t, "0.0000", FormatAmountValue2Display(0))
	assert.Equal(t, "0.0001", FormatAmountValue2Display(10000))

	v, err := FormatAmountDisplay2Value("1.5")
	assert.NoError(t, err)
	assert.Equal(t, int64(150000000), v)

	v, err = FormatAmountDisplay2Value("0.00000001")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = FormatAmountDisplay2Value("0.000000001")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))

	_, err = FormatAmountDisplay2Value("abc")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
}

func TestDecodeAccount(t *testing.T) {
	acc := &types.Account{Addr: "addr", Balance: 2 * types.Coin, Frozen: types.Coin / 2}
	r := DecodeAccount(acc)
	assert.Equal(t, "2.0000", r.Balance)
	assert.Equal(t, "0.5000", r.Frozen)
	assert.Equal(t, "addr", r.Addr)
}
