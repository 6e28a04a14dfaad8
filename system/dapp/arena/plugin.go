// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arena 对战押注执行器插件
package arena

import (
	"github.com/33cn/arena/pluginmgr"
	"github.com/33cn/arena/system/dapp/arena/commands"
	"github.com/33cn/arena/system/dapp/arena/executor"
	aty "github.com/33cn/arena/system/dapp/arena/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     aty.ArenaX,
		ExecName: aty.ArenaX,
		Exec:     executor.Init,
		Cmd:      commands.ArenaCmd,
	})
}
