// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统命令行。命令直接在配置的本地数据库上执行交易，
// 交易的发送者由 --from 指定
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	dbm "github.com/33cn/arena/common/db"
	"github.com/33cn/arena/common/log"
	"github.com/33cn/arena/executor"
	"github.com/33cn/arena/pluginmgr"
	commandtypes "github.com/33cn/arena/system/dapp/commands/types"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

// ExecCtx 命令行的执行环境
type ExecCtx struct {
	Cfg  *types.Config
	DB   dbm.DB
	Exec *executor.Executor
}

// NewExecCtx 根据 --conf 打开执行环境，没有配置文件时使用默认配置
func NewExecCtx(cmd *cobra.Command) (*ExecCtx, error) {
	confPath, _ := cmd.Flags().GetString("conf")
	var (
		cfg *types.Config
		sub *types.ConfigSubModule
		err error
	)
	if confPath == "" {
		cfg, sub, err = types.InitCfgString(types.GetDefaultCfgstring())
	} else {
		cfg, sub, err = types.ReadConfigFile(confPath)
	}
	if err != nil {
		return nil, err
	}
	return NewExecCtxWithConfig(cfg, sub)
}

// NewExecCtxWithConfig 根据配置打开执行环境
func NewExecCtxWithConfig(cfg *types.Config, sub *types.ConfigSubModule, opts ...executor.Option) (*ExecCtx, error) {
	log.SetFileLog(cfg.Log)
	pluginmgr.InitExec(sub)
	db, err := dbm.NewDB("arena", cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, err
	}
	exec, err := executor.New(db, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &ExecCtx{Cfg: cfg, DB: db, Exec: exec}, nil
}

// Close 关闭数据库
func (c *ExecCtx) Close() {
	c.DB.Close()
}

// SendTx 执行交易并输出回执
func (c *ExecCtx) SendTx(tx *types.Transaction, from string) (*commandtypes.TxReceiptResult, error) {
	tx.Sender = from
	receipt, err := c.Exec.ExecTx(tx)
	if err != nil {
		return nil, err
	}
	return commandtypes.DecodeTxResult(tx, receipt, c.Exec.Height(), 0), nil
}

// SendTx 命令行执行交易，发送者来自 --from
func SendTx(cmd *cobra.Command, tx *types.Transaction) {
	ctx, err := NewExecCtx(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer ctx.Close()
	from, _ := cmd.Flags().GetString("from")
	result, err := ctx.SendTx(tx, from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	PrintJSON(result)
}

// Query 命令行查询，返回结果由 convert 转换为显示结构，convert 为空时直接输出
func Query(cmd *cobra.Command, driver, funcName string, param types.Message, convert func(types.Message) interface{}) {
	ctx, err := NewExecCtx(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer ctx.Close()
	reply, err := ctx.Exec.Query(driver, funcName, param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if convert != nil {
		PrintJSON(convert(reply))
		return
	}
	PrintJSON(reply)
}

// PrintJSON 格式化输出
func PrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

// AddFromFlag 交易发送者
func AddFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender account address")
	cmd.MarkFlagRequired("from")
}
