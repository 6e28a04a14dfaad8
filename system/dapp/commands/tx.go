// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/arena/common"
	commandtypes "github.com/33cn/arena/system/dapp/commands/types"
	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		QueryTxCmd(),
	)
	return cmd
}

// QueryTxCmd  get tx by hash
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction by hash",
		Run:   queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	data, err := common.FromHex(hash)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	ctx, err := NewExecCtx(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer ctx.Close()
	result, err := ctx.Exec.GetTxResult(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	receipt := &types.Receipt{Ty: result.Receipt.GetTy(), Logs: result.Receipt.GetLogs()}
	PrintJSON(commandtypes.DecodeTxResult(result.Tx, receipt, result.Height, result.BlockTime))
}
