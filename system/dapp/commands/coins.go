// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	cty "github.com/33cn/arena/system/dapp/coins/types"
	commandtypes "github.com/33cn/arena/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Construct and execute system coins transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateTransferCmd(),
		CreateWithdrawCmd(),
		CreateSendToExecCmd(),
		CreateGenesisCmd(),
	)
	return cmd
}

// CreateTransferCmd create transfer tx
func CreateTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   createTransfer,
	}
	addCreateTransferFlags(cmd)
	return cmd
}

func addCreateTransferFlags(cmd *cobra.Command) {
	AddFromFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
}

func createTransfer(cmd *cobra.Command, args []string) {
	toAddr, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	SendTx(cmd, cty.CreateTransfer(toAddr, amount, note))
}

// CreateWithdrawCmd create withdraw tx
func CreateWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw coins from executor",
		Run:   createWithdraw,
	}
	addCreateWithdrawFlags(cmd)
	return cmd
}

func addCreateWithdrawFlags(cmd *cobra.Command) {
	AddFromFlag(cmd)
	cmd.Flags().StringP("exec", "e", "", "execer withdrawn from")
	cmd.MarkFlagRequired("exec")
	cmd.Flags().StringP("amount", "a", "", "withdraw amount")
	cmd.MarkFlagRequired("amount")
}

func createWithdraw(cmd *cobra.Command, args []string) {
	exec, _ := cmd.Flags().GetString("exec")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	SendTx(cmd, cty.CreateWithdraw(exec, amount))
}

// CreateSendToExecCmd  send to exec
func CreateSendToExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send_exec",
		Short: "Send coins to executor",
		Run:   sendToExec,
	}
	addCreateWithdrawFlags(cmd)
	return cmd
}

func sendToExec(cmd *cobra.Command, args []string) {
	exec, _ := cmd.Flags().GetString("exec")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	SendTx(cmd, cty.CreateTransferToExec(exec, amount))
}

// CreateGenesisCmd faucet
func CreateGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faucet",
		Short: "Deposit coins to an address (only when [exec.sub.coins] faucet=true)",
		Run:   genesis,
	}
	AddFromFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver address, default the sender")
	cmd.Flags().StringP("amount", "a", "", "deposit amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func genesis(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	SendTx(cmd, cty.CreateGenesis(to, amount))
}
