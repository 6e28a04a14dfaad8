// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 框架通用错误
var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrDecode                  = errors.New("ErrDecode")
	ErrAmount                  = errors.New("ErrAmount")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
	ErrUnknowDriver            = errors.New("ErrUnknowDriver")
	ErrExecNotFound            = errors.New("ErrExecNotFound")
	ErrEmptyTx                 = errors.New("ErrEmptyTx")
	ErrFromAddr                = errors.New("ErrFromAddr")
	ErrTxExist                 = errors.New("ErrTxExist")
	ErrNotAllowDeposit         = errors.New("ErrNotAllowDeposit")
	ErrExecDBKeyNotAllowed     = errors.New("ErrExecDBKeyNotAllowed")
	ErrLogType                 = errors.New("ErrLogType")
	ErrEmpty                   = errors.New("ErrEmpty")
	ErrConfigNotFound          = errors.New("ErrConfigNotFound")
	ErrDupDriverRegistration   = errors.New("ErrDupDriverRegistration")
	ErrMethodReturnType        = errors.New("ErrMethodReturnType")
	ErrMethodNotFound          = errors.New("ErrMethodNotFound")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrNotAllowMemSetKey       = errors.New("ErrNotAllowMemSetKey")
	ErrUnRegistedDriver        = errors.New("ErrUnRegistedDriver")
)
