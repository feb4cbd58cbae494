// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统级dapp相关命令包
package commands

import (
	"github.com/33cn/bps/account"
	cty "github.com/33cn/bps/system/dapp/coins/types"
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	tty "github.com/33cn/bps/system/dapp/token/types"
	"github.com/33cn/bps/types"
	"github.com/33cn/bps/wallet"
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
		NewAccountCmd(),
		AddressCmd(),
		GetBalanceCmd(),
	)
	return cmd
}

// NewAccountCmd create a random account
func NewAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a random account",
		Run:   createAccount,
	}
	cmd.Flags().StringP("save", "s", "", "save the encrypted key to this file")
	return cmd
}

type accountResult struct {
	Addr    string `json:"addr"`
	Privkey string `json:"privkey,omitempty"`
	File    string `json:"file,omitempty"`
}

func createAccount(cmd *cobra.Command, args []string) {
	save, _ := cmd.Flags().GetString("save")
	password, _ := cmd.Flags().GetString("password")
	w, err := wallet.New()
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	if save == "" {
		commandtypes.PrintJSON(&accountResult{Addr: w.Address(), Privkey: w.PrivKeyHex()})
		return
	}
	if err := w.Save(save, password); err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&accountResult{Addr: w.Address(), File: save})
}

// AddressCmd address of the signer
func AddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Show address of the signer given by --key or --keyfile",
		Run:   showAddress,
	}
}

func showAddress(cmd *cobra.Command, args []string) {
	w, err := commandtypes.LoadWallet(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&accountResult{Addr: w.Address()})
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get coins balance, or token balance when --mint is set",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address, the signer when empty")
	cmd.Flags().StringP("mint", "m", "", "mint symbol or address")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	mint, _ := cmd.Flags().GetString("mint")
	if addr == "" {
		w, err := commandtypes.LoadWallet(cmd)
		if err != nil {
			commandtypes.PrintErr(err)
			return
		}
		addr = w.Address()
	}
	chain, err := commandtypes.OpenChain(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	defer chain.Close()

	if mint == "" {
		msg, err := chain.Query(types.CoinsX, cty.FuncNameGetBalance, &types.ReqString{Data: addr})
		if err != nil {
			commandtypes.PrintErr(err)
			return
		}
		commandtypes.PrintJSON(commandtypes.DecodeAccount(addr, msg.(*types.Account)))
		return
	}
	msg, err := chain.Query(types.TokenX, tty.FuncNameGetMint, &types.ReqString{Data: mint})
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	m := msg.(*types.Mint)
	msg, err = chain.Query(types.TokenX, tty.FuncNameGetTokenAccount, &types.ReqTokenAccount{Owner: addr, Mint: m.Addr})
	if err == types.ErrNotFound {
		ata, _ := account.AssociatedTokenAddress(addr, m.Addr)
		msg, err = &types.TokenAccount{Addr: ata, Owner: addr, Mint: m.Addr}, nil
	}
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(commandtypes.DecodeTokenAccount(msg.(*types.TokenAccount), m.Decimals))
}
