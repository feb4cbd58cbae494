// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bps 石头剪刀布(bonk/paper/scissors)押注游戏插件
package bps

import (
	"github.com/33cn/bps/plugin/dapp/bps/commands"
	"github.com/33cn/bps/plugin/dapp/bps/executor"
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     bt.PackageName,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.BpsCmd,
	})
}
