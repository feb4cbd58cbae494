// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	tty "github.com/33cn/bps/system/dapp/token/types"
	"github.com/33cn/bps/types"
	"github.com/spf13/cobra"
)

// StatCmd stat command
func StatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Ledger height and supply of the genesis mints",
		Run:   stat,
	}
}

type mintStat struct {
	Symbol string `json:"symbol"`
	Addr   string `json:"addr"`
	Supply string `json:"supply"`
	Burned string `json:"burned"`
}

type statResult struct {
	Height    int64       `json:"height"`
	BlockTime int64       `json:"blockTime"`
	TxCount   int64       `json:"txCount"`
	Mints     []*mintStat `json:"mints,omitempty"`
}

func stat(cmd *cobra.Command, args []string) {
	cfg, _, err := commandtypes.LoadConfig(cmd)
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
	header, err := chain.LastHeader()
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	result := &statResult{Height: header.Height, BlockTime: header.BlockTime, TxCount: header.TxCount}
	if cfg.Genesis != nil {
		for _, gm := range cfg.Genesis.Mint {
			msg, err := chain.Query(types.TokenX, tty.FuncNameGetMint, &types.ReqString{Data: gm.Symbol})
			if err != nil {
				commandtypes.PrintErr(err)
				return
			}
			m := msg.(*types.Mint)
			result.Mints = append(result.Mints, &mintStat{
				Symbol: m.Symbol,
				Addr:   m.Addr,
				Supply: types.FormatAmount(m.Supply, m.Decimals),
				Burned: types.FormatAmount(m.Burned, m.Decimals),
			})
		}
	}
	commandtypes.PrintJSON(result)
}
