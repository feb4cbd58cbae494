// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token 代币插件
package token

import (
	"github.com/33cn/bps/pluginmgr"
	"github.com/33cn/bps/system/dapp/token/commands"
	"github.com/33cn/bps/system/dapp/token/executor"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "token",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.TokenCmd,
	})
}
