// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockchain 单进程的本地账本: 每次提交打包成一个区块并立即执行
package blockchain

import (
	"context"
	"sync"
	"time"

	"github.com/33cn/bps/common"
	dbm "github.com/33cn/bps/common/db"
	"github.com/33cn/bps/executor"
	"github.com/33cn/bps/pluginmgr"
	"github.com/33cn/bps/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var chainlog = log.New("module", "blockchain")

// ErrChainClosed 账本已关闭
var ErrChainClosed = errors.New("ErrChainClosed")

// Clock 区块时间来源, 返回 unix 秒
type Clock func() int64

// Option 创建参数
type Option func(chain *BlockChain)

// WithClock 替换区块时间来源, 测试中用来快进时间
func WithClock(clock Clock) Option {
	return func(chain *BlockChain) {
		chain.clock = clock
	}
}

// BlockChain 本地账本
type BlockChain struct {
	mtx    sync.Mutex
	cfg    *types.Config
	state  dbm.DB
	local  dbm.DB
	exec   *executor.Executor
	clock  Clock
	closed bool
}

// New 打开存储, 注册执行器并执行创世
func New(cfg *types.Config, sub *types.ConfigSubModule, opts ...Option) (*BlockChain, error) {
	if cfg == nil || cfg.Store == nil || cfg.LocalStore == nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "store config")
	}
	pluginmgr.InitExec()
	state, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	local, err := dbm.NewDB(cfg.LocalStore.Name, cfg.LocalStore.Driver, cfg.LocalStore.DbPath, int(cfg.LocalStore.DbCache))
	if err != nil {
		state.Close()
		return nil, errors.Wrap(err, "open localStore")
	}
	chain := &BlockChain{
		cfg:   cfg,
		state: state,
		local: local,
		exec:  executor.New(state, local, sub),
		clock: func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(chain)
	}
	if err := chain.exec.ExecGenesis(cfg.Genesis); err != nil {
		chain.Close()
		return nil, errors.Wrap(err, "genesis")
	}
	header, _ := chain.exec.LastHeader()
	chainlog.Info("New", "title", cfg.Title, "driver", cfg.Store.Driver, "height", header.GetHeight())
	return chain, nil
}

// Close 关闭存储
func (chain *BlockChain) Close() {
	chain.mtx.Lock()
	defer chain.mtx.Unlock()
	if chain.closed {
		return
	}
	chain.closed = true
	chain.state.Close()
	chain.local.Close()
	chainlog.Info("Close")
}

// blocktime 时钟回拨时沿用上一个区块的时间
func (chain *BlockChain) blocktime(last *types.Header) int64 {
	now := chain.clock()
	if now < last.BlockTime {
		return last.BlockTime
	}
	return now
}

// ExecBlock 把 txs 打包成下一个区块执行
func (chain *BlockChain) ExecBlock(txs []*types.Transaction) ([]*executor.ExecResult, error) {
	chain.mtx.Lock()
	defer chain.mtx.Unlock()
	if chain.closed {
		return nil, ErrChainClosed
	}
	last, err := chain.exec.LastHeader()
	if err != nil {
		return nil, err
	}
	block := &types.Block{Height: last.Height + 1, BlockTime: chain.blocktime(last), Txs: txs}
	results, err := chain.exec.ExecBlock(block)
	if err != nil {
		chainlog.Error("ExecBlock", "height", block.Height, "err", err)
		return nil, err
	}
	chainlog.Debug("ExecBlock", "height", block.Height, "txs", len(txs))
	return results, nil
}

// SendAndConfirm 单笔交易打包执行, 返回交易哈希.
// 交易执行失败时返回执行器给出的错误, 状态不变
func (chain *BlockChain) SendAndConfirm(ctx context.Context, tx *types.Transaction) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	results, err := chain.ExecBlock([]*types.Transaction{tx})
	if err != nil {
		return "", err
	}
	result := results[0]
	txID := common.ToHex(result.Hash)
	if result.Err != nil {
		chainlog.Debug("SendAndConfirm", "tx", txID, "err", result.Err)
		return txID, result.Err
	}
	return txID, nil
}

// Query 调用执行器的查询接口
func (chain *BlockChain) Query(execer, funcName string, params types.Message) (types.Message, error) {
	chain.mtx.Lock()
	defer chain.mtx.Unlock()
	if chain.closed {
		return nil, ErrChainClosed
	}
	var data []byte
	if params != nil {
		data = types.Encode(params)
	}
	return chain.exec.Query(execer, funcName, data)
}

// GetTxResult 按哈希查询交易结果
func (chain *BlockChain) GetTxResult(hash []byte) (*types.TxResult, error) {
	chain.mtx.Lock()
	defer chain.mtx.Unlock()
	if chain.closed {
		return nil, ErrChainClosed
	}
	return chain.exec.GetTxResult(hash)
}

// LastHeader 最新区块头
func (chain *BlockChain) LastHeader() (*types.Header, error) {
	chain.mtx.Lock()
	defer chain.mtx.Unlock()
	if chain.closed {
		return nil, ErrChainClosed
	}
	return chain.exec.LastHeader()
}

// Now 下一个区块将使用的时间
func (chain *BlockChain) Now() int64 {
	return chain.clock()
}

// Metrics 执行统计
func (chain *BlockChain) Metrics() map[string]interface{} {
	return chain.exec.Metrics().Snapshot()
}
