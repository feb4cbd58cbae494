// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bps 本地账本上的石头剪刀布押注游戏
package main

import (
	"fmt"
	"os"

	"github.com/33cn/bps/common/log"
	_ "github.com/33cn/bps/plugin"
	"github.com/33cn/bps/pluginmgr"
	_ "github.com/33cn/bps/system"
	"github.com/33cn/bps/system/dapp/commands"
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bps",
	Short: "bonk paper scissors client tools",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, _, err := commandtypes.LoadConfig(cmd)
		if err != nil {
			return
		}
		log.SetFileLog(cfg.Log)
	},
}

func init() {
	commandtypes.AddGlobalFlags(rootCmd)
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.ConfigCmd(),
		commands.StatCmd(),
		commands.TxCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	log.SetLogLevel("error")
	defer log.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
