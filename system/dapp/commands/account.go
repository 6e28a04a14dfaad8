// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/arena/common"
	"github.com/33cn/arena/common/address"
	commandtypes "github.com/33cn/arena/system/dapp/commands/types"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetBalanceCmd(),
		NewRandAccountCmd(),
		ExecAddrCmd(),
	)
	return cmd
}

// GetBalanceCmd get balance of an execer
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("exec", "e", "", "executor name, empty for the coins balance")
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	execer, _ := cmd.Flags().GetString("exec")
	params := &types.ReqBalance{Addr: addr, Execer: execer}
	Query(cmd, types.ExecerCoins, "GetAddrBalance", params, func(reply types.Message) interface{} {
		return commandtypes.DecodeAccount(reply.(*types.Account))
	})
}

// NewRandAccountCmd 随机生成一个地址
func NewRandAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Generate a random account address",
		Run:   randAccount,
	}
	return cmd
}

func randAccount(cmd *cobra.Command, args []string) {
	seed := common.GetRandBytes(33, 33)
	PrintJSON(map[string]string{"addr": address.PubKeyToAddress(seed).String()})
}

// ExecAddrCmd 执行器的地址
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execaddr",
		Short: "Get executor address by name",
		Run:   execAddr,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}

func execAddr(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("exec")
	PrintJSON(map[string]string{"addr": address.ExecAddress(execer)})
}
