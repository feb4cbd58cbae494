// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bps/account"
	"github.com/33cn/bps/common/address"
	dbm "github.com/33cn/bps/common/db"
	"github.com/33cn/bps/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	SetLocalDB(dbm.KVDBList)
	SetEnv(height, blocktime int64)
	//执行器名称
	GetName() string
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetActionName(tx *types.Transaction) string
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 驱动的公共部分, 具体驱动内嵌并通过 SetChild 设置自己
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDBList
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	child        Driver
}

// SetChild 设置子类
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

// SetName 设置执行器名称
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetName 执行器名称
func (d *DriverBase) GetName() string {
	return d.name
}

// GetExecAddress 执行器地址, 作为程序派生地址的 program
func (d *DriverBase) GetExecAddress() string {
	return address.ExecAddress(d.name)
}

// SetEnv 设置区块高度与时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight 区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// SetStateDB set state db
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	d.coinsaccount = account.NewCoinsAccount(db)
}

// GetStateDB get state db
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set local db
func (d *DriverBase) SetLocalDB(db dbm.KVDBList) {
	d.localdb = db
}

// GetLocalDB get local db
func (d *DriverBase) GetLocalDB() dbm.KVDBList {
	return d.localdb
}

// GetCoinsAccount 原生币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

// GetActionName 默认的 action 名称
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	return "unknown"
}

// CheckTx 默认不检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// ExecLocal 默认没有本地索引
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// Query 默认不支持查询
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	blog.Debug("Query", "exec", d.name, "funcName", funcName)
	return nil, types.ErrQueryNotSupport
}
