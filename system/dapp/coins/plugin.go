// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 系统的主币执行器
package coins

import (
	"github.com/33cn/arena/pluginmgr"
	"github.com/33cn/arena/system/dapp/coins/executor"
	cty "github.com/33cn/arena/system/dapp/coins/types"
	"github.com/33cn/arena/system/dapp/commands"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     cty.CoinsX,
		ExecName: cty.CoinsX,
		Exec:     executor.Init,
		Cmd:      commands.CoinsCmd,
	})
}
