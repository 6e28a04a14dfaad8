// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	aty "github.com/33cn/arena/system/dapp/arena/types"
	"github.com/33cn/arena/system/dapp/commands"
	commandtypes "github.com/33cn/arena/system/dapp/commands/types"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

// RpsCmd 石头剪刀布
func RpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Best of three rock-paper-scissors",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		rpsCreateCmd(),
		rpsJoinCmd(),
		rpsCommitCmd(),
		rpsRevealCmd(),
		rpsSettleCmd(),
		rpsQueryCmd(),
	)
	return cmd
}

func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("id", "i", "", "game id")
	cmd.MarkFlagRequired("id")
}

func rpsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a match and escrow the stake",
		Run: func(cmd *cobra.Command, args []string) {
			stake, err := commandtypes.GetAmountValue(cmd, "stake")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			commands.SendTx(cmd, aty.CreateRpsCreateTx(stake))
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("stake", "s", "", "stake of each player")
	cmd.MarkFlagRequired("stake")
	return cmd
}

func rpsJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an open match with the same stake",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetString("id")
			commands.SendTx(cmd, aty.CreateRpsJoinTx(id))
		},
	}
	commands.AddFromFlag(cmd)
	addIDFlag(cmd)
	return cmd
}

func rpsCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit to a choice for the current round",
		Run:   rpsCommit,
	}
	commands.AddFromFlag(cmd)
	addIDFlag(cmd)
	addChoiceFlags(cmd)
	return cmd
}

func addChoiceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("choice", "c", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("choice")
	cmd.Flags().StringP("salt", "s", "", "32 bytes hex salt, random if empty")
}

func rpsCommit(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	c, _ := cmd.Flags().GetString("choice")
	choice, err := ParseChoice(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	salt, err := hash32(cmd, "salt")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.SendTx(cmd, aty.CreateRpsCommitTx(id, commitmentOf(choice, salt)))
}

func rpsRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed choice",
		Run:   rpsReveal,
	}
	commands.AddFromFlag(cmd)
	addIDFlag(cmd)
	addChoiceFlags(cmd)
	cmd.MarkFlagRequired("salt")
	return cmd
}

func rpsReveal(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	c, _ := cmd.Flags().GetString("choice")
	choice, err := ParseChoice(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	salt, err := hash32(cmd, "salt")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.SendTx(cmd, aty.CreateRpsRevealTx(id, choice, salt[:]))
}

func rpsSettleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Pay out a finished match",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetString("id")
			commands.SendTx(cmd, aty.CreateRpsSettleTx(id))
		},
	}
	commands.AddFromFlag(cmd)
	addIDFlag(cmd)
	return cmd
}

func rpsQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Show a match",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetString("id")
			commands.Query(cmd, aty.ArenaX, "GetRpsMatch", &types.ReqString{Data: id}, func(msg types.Message) interface{} {
				return DecodeRpsMatch(msg.(*aty.RpsMatch))
			})
		},
	}
	addIDFlag(cmd)
	return cmd
}

// ParseChoice 支持名称或者 1-3
func ParseChoice(s string) (aty.Choice, error) {
	switch strings.ToLower(s) {
	case "rock", "r":
		return aty.ChoiceRock, nil
	case "paper", "p":
		return aty.ChoicePaper, nil
	case "scissors", "s":
		return aty.ChoiceScissors, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !aty.Choice(n).Valid() {
		return aty.ChoiceNone, aty.ErrInvalidChoice
	}
	return aty.Choice(n), nil
}
