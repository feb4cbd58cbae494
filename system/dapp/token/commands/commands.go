// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands token 命令
package commands

import (
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	tty "github.com/33cn/bps/system/dapp/token/types"
	"github.com/33cn/bps/types"
	"github.com/spf13/cobra"
)

// TokenCmd token command
func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Token transactions and queries",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TransferCmd(),
		MintToCmd(),
		GetMintCmd(),
	)
	return cmd
}

func addTokenFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mint", "m", "", "mint symbol or address")
	cmd.MarkFlagRequired("mint")
	cmd.Flags().StringP("to", "t", "", "receiver owner address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "token amount")
	cmd.MarkFlagRequired("amount")
}

// TransferCmd transfer token
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer token to the associated account of an owner",
		Run:   transfer,
	}
	addTokenFlags(cmd)
	return cmd
}

// MintToCmd mint token
func MintToCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint new token, signer must be the mint authority",
		Run:   mintTo,
	}
	addTokenFlags(cmd)
	return cmd
}

// GetMintCmd get mint info
func GetMintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint_info",
		Short: "Get mint info",
		Run:   getMint,
	}
	cmd.Flags().StringP("mint", "m", "", "mint symbol or address")
	cmd.MarkFlagRequired("mint")
	return cmd
}

func loadMint(cmd *cobra.Command) (*types.Mint, error) {
	mint, _ := cmd.Flags().GetString("mint")
	msg, err := commandtypes.Query(cmd, types.TokenX, tty.FuncNameGetMint, &types.ReqString{Data: mint})
	if err != nil {
		return nil, err
	}
	return msg.(*types.Mint), nil
}

func sendToken(cmd *cobra.Command, create func(mint, to string, amount int64) *types.Transaction) {
	m, err := loadMint(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	to, _ := cmd.Flags().GetString("to")
	amount, err := commandtypes.GetAmountValue(cmd, "amount", m.Decimals)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	txID, err := commandtypes.SendTx(cmd, create(m.Addr, to, amount))
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&commandtypes.SendResult{TxID: txID})
}

func transfer(cmd *cobra.Command, args []string) {
	sendToken(cmd, tty.CreateRawTransferTx)
}

func mintTo(cmd *cobra.Command, args []string) {
	sendToken(cmd, tty.CreateRawMintToTx)
}

type mintResult struct {
	Addr      string `json:"addr"`
	Symbol    string `json:"symbol"`
	Authority string `json:"authority"`
	Decimals  int32  `json:"decimals"`
	Supply    string `json:"supply"`
	Burned    string `json:"burned"`
}

func getMint(cmd *cobra.Command, args []string) {
	m, err := loadMint(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&mintResult{
		Addr:      m.Addr,
		Symbol:    m.Symbol,
		Authority: m.Authority,
		Decimals:  m.Decimals,
		Supply:    types.FormatAmount(m.Supply, m.Decimals),
		Burned:    types.FormatAmount(m.Burned, m.Decimals),
	})
}
