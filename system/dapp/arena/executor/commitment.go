// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/subtle"

	"github.com/33cn/arena/common"
	aty "github.com/33cn/arena/system/dapp/arena/types"
)

// ChoiceCommitment keccak256(choice || salt)，共 33 字节
func ChoiceCommitment(choice aty.Choice, salt [aty.HashLen]byte) (out [aty.HashLen]byte) {
	copy(out[:], common.ShaKeccak256([]byte{byte(choice)}, salt[:]))
	return out
}

// SecretCommitment keccak256(secret)
func SecretCommitment(secret [aty.HashLen]byte) (out [aty.HashLen]byte) {
	copy(out[:], common.ShaKeccak256(secret[:]))
	return out
}

// VerifyChoice 重新计算承诺并比较
func VerifyChoice(commitment [aty.HashLen]byte, choice aty.Choice, salt [aty.HashLen]byte) bool {
	digest := ChoiceCommitment(choice, salt)
	return subtle.ConstantTimeCompare(commitment[:], digest[:]) == 1
}

// VerifySecret 重新计算承诺并比较
func VerifySecret(commitment [aty.HashLen]byte, secret [aty.HashLen]byte) bool {
	digest := SecretCommitment(secret)
	return subtle.ConstantTimeCompare(commitment[:], digest[:]) == 1
}

// FlipHeads keccak256(secretA || secretB) 最后一个字节为偶数时是正面，A 胜
func FlipHeads(secretA, secretB [aty.HashLen]byte) bool {
	h := common.ShaKeccak256(secretA[:], secretB[:])
	return h[len(h)-1]%2 == 0
}

func isZero(h [aty.HashLen]byte) bool {
	return h == [aty.HashLen]byte{}
}

// toHash 参数必须正好 32 字节
func toHash(b []byte) (h [aty.HashLen]byte, ok bool) {
	if len(b) != aty.HashLen {
		return h, false
	}
	copy(h[:], b)
	return h, true
}
