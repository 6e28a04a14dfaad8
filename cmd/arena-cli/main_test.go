// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/33cn/arena/system/dapp/commands"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	summary, err := runDemo()
	require.NoError(t, err)
	require.Len(t, summary.Players, 2)
	alice, bob := summary.Players[0], summary.Players[1]
	assert.Equal(t, uint32(2), alice.MatchesPlayed)
	assert.Equal(t, uint32(2), bob.MatchesPlayed)
	assert.Equal(t, uint32(2), alice.Wins+bob.Wins)
	assert.True(t, alice.Wins >= 1)
	assert.Equal(t, uint64(2), summary.Arena.TotalMatches)
	fee := uint64(2*types.Coin) * 250 / 10000
	assert.Equal(t, 2*fee, summary.Arena.FeeBalance)
	require.NotEmpty(t, summary.Logs)
	assert.Equal(t, "LogRpsSettle", summary.Logs[len(summary.Logs)-1].TyName)
}

func TestRootCmd(t *testing.T) {
	for _, name := range []string{"arena", "coins", "account", "tx", "demo", "serve"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestStartMetricsConfigError(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("conf", filepath.Join(t.TempDir(), "missing.toml"), "")
	assert.Error(t, startMetrics(cmd))
	assert.Nil(t, reporter)

	cmd = &cobra.Command{}
	cmd.Flags().String("conf", "", "")
	assert.NoError(t, startMetrics(cmd))
}

func TestServe(t *testing.T) {
	cfg, sub, err := types.InitCfgString(types.GetDefaultCfgstring())
	require.NoError(t, err)
	ctx, err := commands.NewExecCtxWithConfig(cfg, sub)
	require.NoError(t, err)
	defer ctx.Close()

	done, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, serve(done, ctx, "127.0.0.1:0"))
	// 配置未开启统计，serve 自己启动 prometheus 接口
	require.NotNil(t, reporter)
	stopMetrics()
	assert.Nil(t, reporter)
}
