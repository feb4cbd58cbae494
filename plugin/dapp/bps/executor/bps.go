// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bps/executor"
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
	log "github.com/inconshreveable/log15"
)

var glog = log.New("module", "execs.bps")

var driverName = bt.BpsX

// Init 注册 bps 执行器
func Init(name string) {
	driverName = name
	executor.Register(driverName, newBps, 0)
}

// GetName 执行器名
func GetName() string {
	return driverName
}

// Bps 游戏执行器
type Bps struct {
	executor.DriverBase
	cfg *bt.Config
}

func newBps(sub []byte) (executor.Driver, error) {
	cfg, err := bt.ParseConfig(sub)
	if err != nil {
		glog.Error("newBps parse config", "err", err)
		return nil, err
	}
	b := &Bps{cfg: cfg}
	b.SetChild(b)
	b.SetName(driverName)
	return b, nil
}

// GetDriverName 驱动名
func (b *Bps) GetDriverName() string {
	return bt.BpsX
}

// Config 当前配置
func (b *Bps) Config() *bt.Config {
	return b.cfg
}

// GetActionName 交易的 action 名
func (b *Bps) GetActionName(tx *types.Transaction) string {
	return bt.ActionName(tx.Payload)
}

// CheckTx payload 必须可以解码
func (b *Bps) CheckTx(tx *types.Transaction, index int) error {
	var action bt.BpsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return types.ErrDecode
	}
	return nil
}

// Exec 执行 bps 交易
func (b *Bps) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action bt.BpsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, types.ErrDecode
	}
	glog.Debug("exec bps tx", "action", bt.ActionName(tx.Payload), "from", tx.From())
	actiondb := NewAction(b, tx, index)
	if action.Ty == bt.BpsActionFirstMove && action.GetFirstMove() != nil {
		return actiondb.FirstPlayerMove(action.GetFirstMove())
	} else if action.Ty == bt.BpsActionSecondMove && action.GetSecondMove() != nil {
		return actiondb.SecondPlayerMove(action.GetSecondMove())
	} else if action.Ty == bt.BpsActionReveal && action.GetReveal() != nil {
		return actiondb.Reveal(action.GetReveal())
	} else if action.Ty == bt.BpsActionCancel && action.GetCancel() != nil {
		return actiondb.CancelGame(action.GetCancel())
	} else if action.Ty == bt.BpsActionAdminClose && action.GetAdminClose() != nil {
		return actiondb.AdminCloseStaleGame(action.GetAdminClose())
	}
	return nil, types.ErrActionNotSupport
}
