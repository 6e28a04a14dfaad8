// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/arena/common/log"
	"github.com/33cn/arena/metrics"
	"github.com/33cn/arena/pluginmgr"
	_ "github.com/33cn/arena/system"
	"github.com/33cn/arena/system/dapp/commands"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arena-cli",
	Short: "arena client tools",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("loglevel")
		log.SetLogLevel(level)
		return startMetrics(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopMetrics()
	},
}

// reporter 命令运行期间的统计输出，命令结束时 Stop 输出最后一次快照
var reporter *metrics.Reporter

func init() {
	rootCmd.PersistentFlags().String("conf", "", "config file, in-memory default config if empty")
	rootCmd.PersistentFlags().String("loglevel", "error", "console log level")
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.TxCmd(),
		DemoCmd(),
		ServeCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func startMetrics(cmd *cobra.Command) error {
	confPath, _ := cmd.Flags().GetString("conf")
	if confPath == "" {
		return nil
	}
	cfg, _, err := types.ReadConfigFile(confPath)
	if err != nil {
		return err
	}
	reporter = metrics.StartMetrics(cfg.Metrics)
	return nil
}

func stopMetrics() {
	reporter.Stop()
	reporter = nil
}

func main() {
	err := rootCmd.Execute()
	stopMetrics()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
