// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands arena 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/arena/common"
	arenaexec "github.com/33cn/arena/system/dapp/arena/executor"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/system/dapp/commands"
	commandtypes "github.com/33cn/arena/system/dapp/commands/types"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

// ArenaCmd arena command
func ArenaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Wager games: rock-paper-scissors and coin flip",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitializeCmd(),
		RegisterCmd(),
		WithdrawFeesCmd(),
		RpsCmd(),
		FlipCmd(),
		ArenaInfoCmd(),
		PlayerCmd(),
		ListCmd(),
	)
	return cmd
}

// InitializeCmd 初始化 arena
func InitializeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the arena, the sender becomes the fee authority",
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendTx(cmd, aty.CreateInitializeTx())
		},
	}
	commands.AddFromFlag(cmd)
	return cmd
}

// RegisterCmd 注册玩家
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the sender as a player",
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendTx(cmd, aty.CreateRegisterTx())
		},
	}
	commands.AddFromFlag(cmd)
	return cmd
}

// WithdrawFeesCmd 提取手续费
func WithdrawFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw collected fees to the authority",
		Run:   withdrawFees,
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("amount", "a", "", "withdraw amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func withdrawFees(cmd *cobra.Command, args []string) {
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.SendTx(cmd, aty.CreateWithdrawFeesTx(amount))
}

// ArenaInfoCmd 查询 arena
func ArenaInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show arena totals and fee balance",
		Run: func(cmd *cobra.Command, args []string) {
			commands.Query(cmd, aty.ArenaX, "GetArena", &types.ReqNil{}, func(msg types.Message) interface{} {
				return DecodeArena(msg.(*aty.Arena))
			})
		},
	}
}

// PlayerCmd 查询玩家
func PlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Show player stats",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			commands.Query(cmd, aty.ArenaX, "GetPlayer", &types.ReqString{Data: addr}, nil)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

// ListCmd 按地址列出对局
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games an address created or joined",
		Run:   listGames,
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("kind", "k", "rps", "game kind, rps or flip")
	cmd.Flags().Int32P("count", "c", aty.DefaultCount, "max records")
	cmd.Flags().Int32P("direction", "d", 0, "0: newest first, 1: oldest first")
	cmd.Flags().Int64P("height", "t", 0, "continue after this height")
	return cmd
}

func listGames(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	kind, _ := cmd.Flags().GetString("kind")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	height, _ := cmd.Flags().GetInt64("height")
	req := &aty.ReqArenaList{Addr: addr, Count: count, Direction: direction, Height: height}
	switch kind {
	case "rps":
		req.Kind = aty.KindRps
	case "flip":
		req.Kind = aty.KindFlip
	default:
		fmt.Fprintln(os.Stderr, "kind must be rps or flip")
		return
	}
	commands.Query(cmd, aty.ArenaX, "ListByAddr", req, nil)
}

// hash32 解析 hex 参数，为空时生成随机数并输出
func hash32(cmd *cobra.Command, field string) ([aty.HashLen]byte, error) {
	var h [aty.HashLen]byte
	s, _ := cmd.Flags().GetString(field)
	if s == "" {
		h = common.GetRand32()
		fmt.Fprintf(os.Stderr, "%s: %s (keep it to reveal)\n", field, common.ToHex(h[:]))
		return h, nil
	}
	data, err := common.FromHex(s)
	if err != nil {
		return h, err
	}
	if len(data) != aty.HashLen {
		return h, fmt.Errorf("%s must be %d bytes", field, aty.HashLen)
	}
	copy(h[:], data)
	return h, nil
}

// commitmentOf 计算出手承诺
func commitmentOf(choice aty.Choice, salt [aty.HashLen]byte) []byte {
	c := arenaexec.ChoiceCommitment(choice, salt)
	return c[:]
}

// secretCommitmentOf 计算 secret 承诺
func secretCommitmentOf(secret [aty.HashLen]byte) []byte {
	c := arenaexec.SecretCommitment(secret)
	return c[:]
}
