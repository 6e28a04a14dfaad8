// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 参数错误
var (
	ErrZeroWager         = errors.New("ErrZeroWager")
	ErrInvalidChoice     = errors.New("ErrInvalidChoice")
	ErrInvalidRound      = errors.New("ErrInvalidRound")
	ErrInvalidCommitment = errors.New("ErrInvalidCommitment")
	ErrInvalidSecret     = errors.New("ErrInvalidSecret")
)

// 状态错误
var (
	ErrNotOpen             = errors.New("ErrNotOpen")
	ErrNotCommitting       = errors.New("ErrNotCommitting")
	ErrNotRevealing        = errors.New("ErrNotRevealing")
	ErrAlreadyCommitted    = errors.New("ErrAlreadyCommitted")
	ErrAlreadyRevealed     = errors.New("ErrAlreadyRevealed")
	ErrAlreadySettled      = errors.New("ErrAlreadySettled")
	ErrNotSettled          = errors.New("ErrNotSettled")
	ErrAlreadyPaid         = errors.New("ErrAlreadyPaid")
	ErrArenaExists         = errors.New("ErrArenaExists")
	ErrArenaNotInitialized = errors.New("ErrArenaNotInitialized")
	ErrPlayerExists        = errors.New("ErrPlayerExists")
	ErrPlayerNotRegistered = errors.New("ErrPlayerNotRegistered")
	ErrRecordNotFound      = errors.New("ErrRecordNotFound")
	ErrInsufficientFees    = errors.New("ErrInsufficientFees")
	ErrEscrowNotEmpty      = errors.New("ErrEscrowNotEmpty")
	ErrInvalidTransition   = errors.New("ErrInvalidTransition")
)

// 权限错误
var (
	ErrNotPlayer    = errors.New("ErrNotPlayer")
	ErrCantPlaySelf = errors.New("ErrCantPlaySelf")
	ErrNotAuthority = errors.New("ErrNotAuthority")
)

// ErrCommitmentMismatch 揭示的内容与承诺不一致
var ErrCommitmentMismatch = errors.New("ErrCommitmentMismatch")

// 记录解码错误
var (
	ErrInvalidRecord     = errors.New("ErrInvalidRecord")
	ErrInvalidPhase      = errors.New("ErrInvalidPhase")
	ErrInconsistentState = errors.New("ErrInconsistentState")
)
