// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/system/dapp/commands"
	commandtypes "github.com/33cn/arena/system/dapp/commands/types"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

// FlipCmd 掷硬币
func FlipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip",
		Short: "Coin flip decided by both players' secrets",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		flipCreateCmd(),
		flipJoinCmd(),
		flipRevealCmd(),
		flipSettleCmd(),
		flipQueryCmd(),
	)
	return cmd
}

func addSecretFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("secret", "x", "", "32 bytes hex secret, random if empty")
}

func flipCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a coin flip with a secret commitment",
		Run:   flipCreate,
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("stake", "s", "", "stake of each player")
	cmd.MarkFlagRequired("stake")
	addSecretFlag(cmd)
	return cmd
}

func flipCreate(cmd *cobra.Command, args []string) {
	stake, err := commandtypes.GetAmountValue(cmd, "stake")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	secret, err := hash32(cmd, "secret")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.SendTx(cmd, aty.CreateFlipCreateTx(stake, secretCommitmentOf(secret)))
}

func flipJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a coin flip with a secret commitment",
		Run:   flipJoin,
	}
	commands.AddFromFlag(cmd)
	addIDFlag(cmd)
	addSecretFlag(cmd)
	return cmd
}

func flipJoin(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	secret, err := hash32(cmd, "secret")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.SendTx(cmd, aty.CreateFlipJoinTx(id, secretCommitmentOf(secret)))
}

func flipRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed secret",
		Run:   flipReveal,
	}
	commands.AddFromFlag(cmd)
	addIDFlag(cmd)
	addSecretFlag(cmd)
	cmd.MarkFlagRequired("secret")
	return cmd
}

func flipReveal(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	secret, err := hash32(cmd, "secret")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.SendTx(cmd, aty.CreateFlipRevealTx(id, secret[:]))
}

func flipSettleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Pay out a revealed coin flip",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetString("id")
			commands.SendTx(cmd, aty.CreateFlipSettleTx(id))
		},
	}
	commands.AddFromFlag(cmd)
	addIDFlag(cmd)
	return cmd
}

func flipQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Show a coin flip",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetString("id")
			commands.Query(cmd, aty.ArenaX, "GetCoinFlip", &types.ReqString{Data: id}, func(msg types.Message) interface{} {
				return DecodeCoinFlip(msg.(*aty.CoinFlip))
			})
		},
	}
	addIDFlag(cmd)
	return cmd
}
