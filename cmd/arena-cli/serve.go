// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/33cn/arena/common/log"
	"github.com/33cn/arena/metrics"
	"github.com/33cn/arena/system/dapp/commands"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

var clog = log.New("module", "arena-cli")

// ServeCmd 打开账本并保持统计输出，直到收到 SIGINT/SIGTERM
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Open the ledger and keep the metrics endpoint up until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := commands.NewExecCtx(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()
			addr, _ := cmd.Flags().GetString("addr")
			sigctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(sigctx, ctx, addr)
		},
	}
	cmd.Flags().String("addr", "localhost:9101", "prometheus listen address when metrics are not enabled in config")
	return cmd
}

// serve 配置里没有开启统计时，在 addr 上提供 prometheus 接口
func serve(ctx context.Context, exec *commands.ExecCtx, addr string) error {
	if reporter == nil {
		reporter = metrics.StartMetrics(&types.Metrics{
			EnableMetrics: true,
			DataEmitMode:  metrics.EmitModePrometheus,
			ListenAddr:    addr,
		})
	}
	clog.Info("serve", "height", exec.Exec.Height(), "store", exec.Cfg.Store.Driver)
	<-ctx.Done()
	clog.Info("serve stopped", "height", exec.Exec.Height())
	return nil
}
