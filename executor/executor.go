// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 执行区块中的交易: 状态缓存, 本地索引, 驱动注册与分发
package executor

import (
	"fmt"
	"time"

	"github.com/33cn/bps/account"
	"github.com/33cn/bps/common"
	dbm "github.com/33cn/bps/common/db"
	"github.com/33cn/bps/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// ExecResult 单个交易的执行结果, Err 为空表示成功
type ExecResult struct {
	Hash    []byte
	Index   int
	Receipt *types.ReceiptData
	Err     error
}

// Executor 在 state 与 local 两个后端上执行区块
type Executor struct {
	state   dbm.DB
	local   dbm.DB
	sub     map[string][]byte
	drivers map[string]Driver
	metrics *Metrics
}

// New 创建执行器, sub 为 [exec.sub.*] 的配置
func New(state, local dbm.DB, sub *types.ConfigSubModule) *Executor {
	e := &Executor{
		state:   state,
		local:   local,
		sub:     make(map[string][]byte),
		drivers: make(map[string]Driver),
		metrics: NewMetrics(),
	}
	if sub != nil {
		for k, v := range sub.Exec {
			e.sub[k] = v
		}
	}
	return e
}

// Metrics 执行统计
func (e *Executor) Metrics() *Metrics {
	return e.metrics
}

func (e *Executor) loadDriver(name string) (Driver, error) {
	if d, ok := e.drivers[name]; ok {
		return d, nil
	}
	d, err := LoadDriver(name, -1, e.sub[name])
	if err != nil {
		return nil, err
	}
	e.drivers[name] = d
	return d, nil
}

// LastHeader 最新的区块头, 未执行创世时返回 ErrNotFound
func (e *Executor) LastHeader() (*types.Header, error) {
	value, err := e.local.Get(types.HeaderKey)
	if err != nil {
		return nil, types.ErrNotFound
	}
	var header types.Header
	if err := types.Decode(value, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// ExecGenesis 执行创世配置, 已执行过时不做任何事
func (e *Executor) ExecGenesis(genesis *types.Genesis) error {
	if _, err := e.LastHeader(); err == nil {
		return nil
	}
	state := NewStateDB(e.state)
	if _, err := account.ApplyGenesis(state, genesis); err != nil {
		elog.Error("ExecGenesis", "err", err)
		return err
	}
	if err := state.Flush(); err != nil {
		return err
	}
	var blocktime int64
	if genesis != nil {
		blocktime = genesis.BlockTime
	}
	header := &types.Header{Height: 0, BlockTime: blocktime}
	return e.local.SetSync(types.HeaderKey, types.Encode(header))
}

// ExecBlock 顺序执行区块中的交易. 失败的交易不修改状态, 其错误记录在结果中;
// 只有区块本身不合法或者写入失败时返回 error
func (e *Executor) ExecBlock(block *types.Block) ([]*ExecResult, error) {
	begin := time.Now()
	defer e.metrics.blockTimer.UpdateSince(begin)

	last, err := e.LastHeader()
	if err != nil {
		return nil, err
	}
	if block.Height != last.Height+1 {
		return nil, fmt.Errorf("block height %d, want %d: %w", block.Height, last.Height+1, types.ErrInvalidParam)
	}
	if block.BlockTime < last.BlockTime {
		return nil, types.ErrBlockTime
	}
	if len(block.Txs) >= types.MaxTxsPerBlock {
		return nil, types.ErrTooManyTxs
	}
	state := NewStateDB(e.state)
	local := NewLocalDB(e.local)
	results := make([]*ExecResult, len(block.Txs))
	for i, tx := range block.Txs {
		results[i] = e.execTx(state, local, block, tx, i)
	}
	if err := state.Flush(); err != nil {
		elog.Error("ExecBlock flush state", "height", block.Height, "err", err)
		return nil, err
	}
	header := &types.Header{Height: block.Height, BlockTime: block.BlockTime, TxCount: last.TxCount + int64(len(block.Txs))}
	local.Set(types.HeaderKey, types.Encode(header))
	if err := local.Flush(); err != nil {
		elog.Error("ExecBlock flush local", "height", block.Height, "err", err)
		return nil, err
	}
	elog.Debug("ExecBlock", "height", block.Height, "txs", len(block.Txs), "cost", time.Since(begin))
	return results, nil
}

func (e *Executor) execTx(state *StateDB, local *LocalDB, block *types.Block, tx *types.Transaction, index int) *ExecResult {
	hash := tx.Hash()
	result := &ExecResult{Hash: hash, Index: index}
	receipt, err := e.execTxState(state, local, block, tx, index)
	if err != nil {
		result.Err = err
		result.Receipt = &types.ReceiptData{
			Ty:   types.ExecErr,
			Logs: []*types.ReceiptLog{{Ty: types.TyLogErr, Log: []byte(err.Error())}},
		}
		e.metrics.txErr.Inc(1)
		elog.Info("exec tx failed", "hash", common.ToHex(hash), "execer", string(tx.Execer), "err", err)
	} else {
		result.Receipt = &types.ReceiptData{Ty: types.ExecOk, Logs: receipt.Logs}
		e.metrics.txOk.Inc(1)
		e.execLocal(local, tx, result.Receipt, index)
	}
	txResult := &types.TxResult{
		Height:      block.Height,
		Index:       int32(index),
		Tx:          tx,
		Receiptdate: result.Receipt,
		Blocktime:   block.BlockTime,
	}
	if err != nil {
		txResult.Error = err.Error()
	}
	local.Set(types.CalcTxResultKey(hash), types.Encode(txResult))
	return result
}

func (e *Executor) execTxState(state *StateDB, local *LocalDB, block *types.Block, tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if err := tx.Check(); err != nil {
		return nil, err
	}
	if _, err := state.Get(types.CalcTxKey(tx.Hash())); err == nil {
		return nil, types.ErrTxDup
	}
	driver, err := e.loadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(state)
	driver.SetLocalDB(local)
	driver.SetEnv(block.Height, block.BlockTime)
	if err := driver.CheckTx(tx, index); err != nil {
		return nil, err
	}
	timer := e.metrics.actionTimer(driver.GetName(), driver.GetActionName(tx))
	begin := time.Now()
	defer timer.UpdateSince(begin)

	state.Begin()
	defer func() {
		if r := recover(); r != nil {
			elog.Error("exec tx panic", "execer", string(tx.Execer), "info", r)
			state.Rollback()
			receipt, err = nil, types.ErrActionNotSupport
		}
	}()
	receipt, err = driver.Exec(tx, index)
	if err != nil {
		state.Rollback()
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	state.Set(types.CalcTxKey(tx.Hash()), types.Encode(&types.Int64{Data: block.Height}))
	if err := state.Commit(); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (e *Executor) execLocal(local *LocalDB, tx *types.Transaction, receipt *types.ReceiptData, index int) {
	driver, err := e.loadDriver(string(tx.Execer))
	if err != nil {
		return
	}
	set, err := driver.ExecLocal(tx, receipt, index)
	if err != nil {
		elog.Error("ExecLocal", "execer", string(tx.Execer), "err", err)
		return
	}
	for _, kv := range set.KV {
		local.Set(kv.Key, kv.Value)
	}
}

// Query 在最新状态上调用驱动的查询
func (e *Executor) Query(execer string, funcName string, params []byte) (types.Message, error) {
	driver, err := e.loadDriver(execer)
	if err != nil {
		return nil, err
	}
	header, err := e.LastHeader()
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(NewStateDB(e.state))
	driver.SetLocalDB(NewLocalDB(e.local))
	driver.SetEnv(header.Height, header.BlockTime)
	return driver.Query(funcName, params)
}

// GetTxResult 交易执行结果
func (e *Executor) GetTxResult(hash []byte) (*types.TxResult, error) {
	value, err := e.local.Get(types.CalcTxResultKey(hash))
	if err != nil {
		return nil, types.ErrNotFound
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StateDB 最新状态的只读视图
func (e *Executor) StateDB() dbm.KV {
	return NewStateDB(e.state)
}
