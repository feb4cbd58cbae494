// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供一种操作：
EventTransfer -> 转移资产
*/

import (
	"github.com/33cn/bps/executor"
	cty "github.com/33cn/bps/system/dapp/coins/types"
	"github.com/33cn/bps/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")
var driverName = cty.CoinsX

// Init 注册 coins 执行器
func Init(name string) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	executor.Register(driverName, newCoins, 0)
}

// GetName 执行器名
func GetName() string {
	return driverName
}

// Coins 原生币执行器
type Coins struct {
	executor.DriverBase
}

func newCoins(sub []byte) (executor.Driver, error) {
	c := &Coins{}
	c.SetChild(c)
	c.SetName(driverName)
	return c, nil
}

// GetDriverName 驱动名
func (c *Coins) GetDriverName() string {
	return driverName
}

// GetActionName 交易的 action 名
func (c *Coins) GetActionName(tx *types.Transaction) string {
	return cty.ActionName(tx.Payload)
}

// Exec 执行 coins 交易
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action cty.CoinsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, types.ErrDecode
	}
	if action.Ty == cty.CoinsActionTransfer && action.GetTransfer() != nil {
		return c.execTransfer(action.GetTransfer(), tx)
	}
	return nil, types.ErrActionNotSupport
}
