// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/33cn/arena/common"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/stretchr/testify/assert"
)

func TestCommitment(t *testing.T) {
	var salt [aty.HashLen]byte
	copy(salt[:], "salt-for-round-one")
	c := ChoiceCommitment(aty.ChoiceRock, salt)
	assert.True(t, VerifyChoice(c, aty.ChoiceRock, salt))
	assert.False(t, VerifyChoice(c, aty.ChoicePaper, salt))
	salt[0] ^= 1
	assert.False(t, VerifyChoice(c, aty.ChoiceRock, salt))

	var secret [aty.HashLen]byte
	copy(secret[:], "coin flip secret")
	s := SecretCommitment(secret)
	assert.True(t, VerifySecret(s, secret))
	assert.False(t, VerifySecret(s, salt))
	assert.False(t, isZero(s))
}

func TestFlipHeads(t *testing.T) {
	var a, b [aty.HashLen]byte
	// keccak256(64 个 0 字节) 以 0xb5 结尾，奇数为反面
	assert.Equal(t, "ad3228b676f7d3cd4284a5443f17f1962b36e491b30a40b2405849e597ba5fb5", hex.EncodeToString(common.ShaKeccak256(a[:], b[:])))
	assert.False(t, FlipHeads(a, b))

	// secretA 前两个字节为小端 316，最后一个字节 0x0a，偶数为正面
	binary.LittleEndian.PutUint16(a[:2], 316)
	h := common.ShaKeccak256(a[:], b[:])
	assert.Equal(t, byte(0x0a), h[len(h)-1])
	assert.True(t, FlipHeads(a, b))

	// 交换顺序后以 0x9d 结尾
	assert.False(t, FlipHeads(b, a))
}

func TestToHash(t *testing.T) {
	_, ok := toHash(make([]byte, 31))
	assert.False(t, ok)
	h, ok := toHash(make([]byte, 32))
	assert.True(t, ok)
	assert.True(t, isZero(h))
}

func TestResolveRound(t *testing.T) {
	cases := []struct {
		a, b aty.Choice
		out  aty.Outcome
	}{
		{aty.ChoiceRock, aty.ChoiceScissors, aty.OutcomeAWins},
		{aty.ChoicePaper, aty.ChoiceRock, aty.OutcomeAWins},
		{aty.ChoiceScissors, aty.ChoicePaper, aty.OutcomeAWins},
		{aty.ChoiceScissors, aty.ChoiceRock, aty.OutcomeBWins},
		{aty.ChoiceRock, aty.ChoicePaper, aty.OutcomeBWins},
		{aty.ChoicePaper, aty.ChoiceScissors, aty.OutcomeBWins},
		{aty.ChoicePaper, aty.ChoicePaper, aty.OutcomeDraw},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, ResolveRound(c.a, c.b), "%s vs %s", c.a, c.b)
	}
}

func TestSplitPot(t *testing.T) {
	payout, fee := SplitPot(1000, aty.FeeRateBps)
	assert.Equal(t, uint64(1950), payout)
	assert.Equal(t, uint64(50), fee)

	payout, fee = SplitPot(1, aty.FeeRateBps)
	assert.Equal(t, uint64(2), payout)
	assert.Equal(t, uint64(0), fee)

	big := uint64(1) << 62
	payout, fee = SplitPot(big, aty.FeeRateBps)
	assert.Equal(t, 2*big, payout+fee)
	assert.Equal(t, (2*big)/10000*250+(2*big)%10000*250/10000, fee)
}

func TestUpdateRating(t *testing.T) {
	w, l, d := UpdateRating(1200, 1200)
	assert.Equal(t, uint16(1216), w)
	assert.Equal(t, uint16(1184), l)
	assert.Equal(t, int64(16), d)

	w, l, d = UpdateRating(1600, 1200)
	assert.Equal(t, uint16(1601), w)
	assert.Equal(t, uint16(1199), l)
	assert.Equal(t, int64(1), d)

	w, l, d = UpdateRating(1200, 1600)
	assert.Equal(t, uint16(1232), w)
	assert.Equal(t, uint16(1568), l)
	assert.Equal(t, int64(32), d)

	w, l, _ = UpdateRating(110, 110)
	assert.Equal(t, uint16(126), w)
	assert.Equal(t, uint16(100), l)

	w, _, _ = UpdateRating(65530, 65530)
	assert.Equal(t, uint16(65535), w)
}

func TestResolveSide(t *testing.T) {
	side, err := resolveSide("a", "b", "b")
	assert.NoError(t, err)
	assert.Equal(t, aty.SideB, side)
	_, err = resolveSide("a", "", "")
	assert.Equal(t, aty.ErrNotPlayer, err)
	_, err = resolveSide("a", "", "c")
	assert.Equal(t, aty.ErrNotPlayer, err)
}
