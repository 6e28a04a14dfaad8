// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/arena/common"
	"github.com/33cn/arena/common/address"
	arenaexec "github.com/33cn/arena/system/dapp/arena/executor"
	aty "github.com/33cn/arena/system/dapp/arena/types"
	cty "github.com/33cn/arena/system/dapp/coins/types"
	"github.com/33cn/arena/system/dapp/commands"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

// DemoCmd 在内存数据库上完整地进行一局猜拳和一次掷硬币
func DemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Play a rock-paper-scissors match and a coin flip on an in-memory ledger",
		Run: func(cmd *cobra.Command, args []string) {
			summary, err := runDemo()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			commands.PrintJSON(summary)
		},
	}
	return cmd
}

type demoSummary struct {
	Match   string                    `json:"match"`
	Flip    string                    `json:"flip"`
	Heads   bool                      `json:"heads"`
	Players []*aty.PlayerStats        `json:"players"`
	Arena   *aty.Arena                `json:"arena"`
	Logs    []*types.ReceiptLogResult `json:"settleLogs"`
}

type demo struct {
	ctx *commands.ExecCtx
	err error
}

// send 出错后后续交易都不再执行
func (d *demo) send(tx *types.Transaction, from string) string {
	if d.err != nil {
		return ""
	}
	_, d.err = d.ctx.SendTx(tx, from)
	return common.ToHex(tx.Hash())
}

func (d *demo) round(id, alice, bob string, a, b aty.Choice) {
	sa, sb := common.GetRand32(), common.GetRand32()
	ca, cb := arenaexec.ChoiceCommitment(a, sa), arenaexec.ChoiceCommitment(b, sb)
	d.send(aty.CreateRpsCommitTx(id, ca[:]), alice)
	d.send(aty.CreateRpsCommitTx(id, cb[:]), bob)
	d.send(aty.CreateRpsRevealTx(id, a, sa[:]), alice)
	d.send(aty.CreateRpsRevealTx(id, b, sb[:]), bob)
}

func runDemo() (*demoSummary, error) {
	cfg, sub, err := types.InitCfgString(types.GetDefaultCfgstring())
	if err != nil {
		return nil, err
	}
	ctx, err := commands.NewExecCtxWithConfig(cfg, sub)
	if err != nil {
		return nil, err
	}
	defer ctx.Close()
	d := &demo{ctx: ctx}
	alice := address.ExecAddress("demo-alice")
	bob := address.ExecAddress("demo-bob")

	d.send(aty.CreateInitializeTx(), alice)
	for _, addr := range []string{alice, bob} {
		d.send(cty.CreateGenesis("", 10*types.Coin), addr)
		d.send(cty.CreateTransferToExec(aty.ArenaX, 10*types.Coin), addr)
		d.send(aty.CreateRegisterTx(), addr)
	}

	stake := types.Coin
	match := d.send(aty.CreateRpsCreateTx(stake), alice)
	d.send(aty.CreateRpsJoinTx(match), bob)
	d.round(match, alice, bob, aty.ChoiceRock, aty.ChoiceRock)
	d.round(match, alice, bob, aty.ChoiceRock, aty.ChoiceScissors)
	d.round(match, alice, bob, aty.ChoicePaper, aty.ChoiceRock)
	settle := aty.CreateRpsSettleTx(match)
	d.send(settle, bob)

	secretA, secretB := common.GetRand32(), common.GetRand32()
	ca, cb := arenaexec.SecretCommitment(secretA), arenaexec.SecretCommitment(secretB)
	flip := d.send(aty.CreateFlipCreateTx(stake, ca[:]), alice)
	d.send(aty.CreateFlipJoinTx(flip, cb[:]), bob)
	d.send(aty.CreateFlipRevealTx(flip, secretA[:]), alice)
	d.send(aty.CreateFlipRevealTx(flip, secretB[:]), bob)
	d.send(aty.CreateFlipSettleTx(flip), alice)
	if d.err != nil {
		return nil, d.err
	}

	summary := &demoSummary{Match: match, Flip: flip}
	for _, addr := range []string{alice, bob} {
		reply, err := ctx.Exec.Query(aty.ArenaX, "GetPlayer", &types.ReqString{Data: addr})
		if err != nil {
			return nil, err
		}
		summary.Players = append(summary.Players, reply.(*aty.PlayerStats))
	}
	reply, err := ctx.Exec.Query(aty.ArenaX, "GetCoinFlip", &types.ReqString{Data: flip})
	if err != nil {
		return nil, err
	}
	summary.Heads = reply.(*aty.CoinFlip).Heads
	reply, err = ctx.Exec.Query(aty.ArenaX, "GetArena", &types.ReqNil{})
	if err != nil {
		return nil, err
	}
	summary.Arena = reply.(*aty.Arena)
	result, err := ctx.Exec.GetTxResult(settle.Hash())
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: result.Receipt.GetTy(), Logs: result.Receipt.GetLogs()}
	summary.Logs = types.ReceiptDataResultOf(aty.ArenaX, receipt).Logs
	return summary, nil
}
