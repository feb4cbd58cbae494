// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/bps/common"
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
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

// QueryTxCmd query tx by hash
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction result by hash",
		Run:   queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	hashStr, _ := cmd.Flags().GetString("hash")
	hash, err := common.FromHex(hashStr)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	chain, err := commandtypes.OpenChain(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	defer chain.Close()
	result, err := chain.GetTxResult(hash)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(commandtypes.DecodeTxResult(hash, result))
}
