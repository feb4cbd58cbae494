// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	"github.com/33cn/bps/types"
	"github.com/spf13/cobra"
)

// ConfigCmd config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default config, or the loaded config as json with --show",
		Run:   config,
	}
	cmd.Flags().Bool("show", false, "show the config loaded from --conf")
	return cmd
}

func config(cmd *cobra.Command, args []string) {
	show, _ := cmd.Flags().GetBool("show")
	if !show {
		fmt.Fprint(commandtypes.Output, types.GetDefaultCfgstring())
		return
	}
	cfg, _, err := commandtypes.LoadConfig(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(cfg)
}
