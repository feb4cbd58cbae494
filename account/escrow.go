// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	dbm "github.com/33cn/bps/common/db"
	"github.com/33cn/bps/types"
)

var escrowKeyPrefix = "mavl-escrow-"

// EscrowParam 开启托管账户的参数
type EscrowParam struct {
	// 托管地址, 由调用者按照 (role, game) 派生
	Addr    string
	Program string
	Game    string
	Role    string
	// 出资者, 同时是退款与押金返还的对象
	Payer string
	// 出资的代币账户, 为空时使用 payer 的默认账户
	Funding   string
	Mint      string
	Amount    int64
	Deposit   int64
	BlockTime int64
}

// EscrowDB 程序托管账户
type EscrowDB struct {
	db    dbm.KVDB
	coins *DB
	token *TokenDB
}

// NewEscrowDB new
func NewEscrowDB(db dbm.KVDB) *EscrowDB {
	return &EscrowDB{
		db:    db,
		coins: NewCoinsAccount(db),
		token: NewTokenDB(db),
	}
}

// Token 代币账户操作
func (e *EscrowDB) Token() *TokenDB {
	return e.token
}

func calcEscrowKey(addr string) []byte {
	return []byte(escrowKeyPrefix + addr)
}

// LoadEscrow 读取托管账户, 已关闭的也会返回
func (e *EscrowDB) LoadEscrow(addr string) (*types.Escrow, error) {
	value, err := e.db.Get(calcEscrowKey(addr))
	if err != nil || value == nil {
		return nil, types.ErrNotFound
	}
	var escrow types.Escrow
	if err := types.Decode(value, &escrow); err != nil {
		return nil, err
	}
	return &escrow, nil
}

// Balance 托管账户当前余额, 关闭后为0
func (e *EscrowDB) Balance(addr string) int64 {
	acc, err := e.token.LoadTokenAccount(addr)
	if err != nil {
		return 0
	}
	return acc.Balance
}

func (e *EscrowDB) saveEscrow(ty int32, prev, escrow *types.Escrow) *types.Receipt {
	kv := &types.KeyValue{Key: calcEscrowKey(escrow.Addr), Value: types.Encode(escrow)}
	e.db.Set(kv.Key, kv.Value)
	log := &types.ReceiptLog{Ty: ty, Log: types.Encode(&types.ReceiptEscrow{Prev: prev, Current: escrow})}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}
}

// OpenEscrow 创建托管账户并从出资账户转入 amount
func (e *EscrowDB) OpenEscrow(p *EscrowParam) (*types.Receipt, error) {
	if !types.CheckAmount(p.Amount) {
		return nil, types.ErrAmount
	}
	if _, err := e.LoadEscrow(p.Addr); err == nil {
		return nil, types.ErrEscrowExists
	}
	if _, err := e.token.LoadTokenAccount(p.Addr); err == nil {
		return nil, types.ErrEscrowExists
	}
	funding, err := e.token.FindFundingAccount(p.Payer, p.Mint, p.Funding)
	if err != nil {
		alog.Error("OpenEscrow", "payer", p.Payer, "mint", p.Mint, "funding", p.Funding, "err", err)
		return nil, err
	}
	if funding.Balance < p.Amount {
		return nil, types.ErrInsufficientFunds
	}
	var receipt *types.Receipt
	if p.Deposit > 0 {
		r, err := e.coins.Transfer(p.Payer, p.Addr, p.Deposit)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	r, err := e.token.OpenAccount(p.Addr, p.Program, p.Mint)
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	r, err = e.token.Transfer(funding.Addr, p.Addr, p.Amount)
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	escrow := &types.Escrow{
		Addr:      p.Addr,
		Program:   p.Program,
		Game:      p.Game,
		Role:      p.Role,
		Mint:      p.Mint,
		Owner:     p.Payer,
		Payer:     p.Payer,
		Amount:    p.Amount,
		Deposit:   p.Deposit,
		CreatedAt: p.BlockTime,
	}
	return types.MergeReceipt(receipt, e.saveEscrow(types.TyLogEscrowOpen, nil, escrow)), nil
}

func (e *EscrowDB) loadOpen(addr string) (*types.Escrow, error) {
	escrow, err := e.LoadEscrow(addr)
	if err != nil {
		return nil, err
	}
	if escrow.Closed {
		return nil, types.ErrAccountAlreadyClosed
	}
	return escrow, nil
}

// BurnEscrow 从托管账户销毁 amount
func (e *EscrowDB) BurnEscrow(addr string, amount int64) (*types.Receipt, error) {
	if _, err := e.loadOpen(addr); err != nil {
		return nil, err
	}
	return e.token.Burn(addr, amount)
}

// CloseEscrow 全部余额转给 destination 的默认代币账户, 返还押金, 释放代币账户.
// 返回转出的金额
func (e *EscrowDB) CloseEscrow(addr, destination string, blocktime int64) (*types.Receipt, int64, error) {
	escrow, err := e.loadOpen(addr)
	if err != nil {
		return nil, 0, err
	}
	var receipt *types.Receipt
	balance := e.Balance(addr)
	if balance > 0 {
		dest, r, err := e.token.OpenAssociated(destination, escrow.Mint)
		if err != nil {
			return nil, 0, err
		}
		receipt = types.MergeReceipt(receipt, r)
		r, err = e.token.Transfer(addr, dest, balance)
		if err != nil {
			return nil, 0, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	r, err := e.token.CloseAccount(addr)
	if err != nil {
		return nil, 0, err
	}
	receipt = types.MergeReceipt(receipt, r)
	if escrow.Deposit > 0 {
		r, err := e.coins.Transfer(addr, escrow.Payer, escrow.Deposit)
		if err != nil {
			return nil, 0, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	prev := *escrow
	escrow.Closed = true
	escrow.ClosedAt = blocktime
	receipt = types.MergeReceipt(receipt, e.saveEscrow(types.TyLogEscrowClose, &prev, escrow))
	alog.Debug("CloseEscrow", "addr", addr, "destination", destination, "amount", balance)
	return receipt, balance, nil
}
