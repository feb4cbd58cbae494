// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coins 命令
package commands

import (
	cty "github.com/33cn/bps/system/dapp/coins/types"
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Native coins transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TransferCmd(),
	)
	return cmd
}

// TransferCmd transfer coins
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   transfer,
	}
	addTransferFlags(cmd)
	return cmd
}

func addTransferFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	amount, err := commandtypes.GetAmountValue(cmd, "amount", commandtypes.CoinsDecimals)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	txID, err := commandtypes.SendTx(cmd, cty.CreateRawTransferTx(to, amount, note))
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&commandtypes.SendResult{TxID: txID})
}
