// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 插件注册，插件包在 init 中调用 Register，
// 程序启动时用 InitExec 初始化所有执行器，用 AddCmd 添加命令行
package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/arena/common/log"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	pluginMu    sync.RWMutex
	pluginItems = make(map[string]Plugin)
)

// InitExec 初始化所有插件的执行器
func InitExec(sub *types.ConfigSubModule) {
	var subcfg map[string][]byte
	if sub != nil {
		subcfg = sub.Exec
	}
	for _, item := range items() {
		mgrlog.Debug("InitExec", "plugin", item.GetName(), "exec", item.GetExecutorName())
		item.InitExec(subcfg)
	}
}

// HasExec check is have the name exec
func HasExec(name string) bool {
	for _, item := range items() {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register Register plugin
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	pluginMu.Lock()
	defer pluginMu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd add Command for plugin
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range items() {
		item.AddCmd(rootCmd)
	}
}

// items 按名称排序，保证初始化和命令的顺序固定
func items() []Plugin {
	pluginMu.RLock()
	defer pluginMu.RUnlock()
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]Plugin, 0, len(names))
	for _, name := range names {
		list = append(list, pluginItems[name])
	}
	return list
}
