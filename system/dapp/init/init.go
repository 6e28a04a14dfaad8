// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package init 注册系统内置的执行器插件
package init

import (
	_ "github.com/33cn/arena/system/dapp/arena" //auto gen
	_ "github.com/33cn/arena/system/dapp/coins" //auto gen
)
