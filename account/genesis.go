// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/bps/common/address"
	dbm "github.com/33cn/bps/common/db"
	"github.com/33cn/bps/types"
	"github.com/golang/protobuf/proto"
)

func safeAdd(balance, amount int64) (int64, error) {
	if balance+amount < amount || balance+amount > types.MaxTokenBalance {
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}

// GenesisInit 生成创世地址账户收据
func (acc *DB) GenesisInit(addr string, amount int64) (receipt *types.Receipt, err error) {
	accTo := acc.LoadAccount(addr)
	copyto := *accTo
	accTo.Balance, err = safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	return acc.genesisReceipt(accTo, receiptBalanceTo), nil
}

func (acc *DB) genesisReceipt(accTo *types.Account, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogGenesisTransfer)
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accTo)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log2},
	}
}

// ApplyGenesis 按照配置创建 mint, 分配代币与原生币
func ApplyGenesis(db dbm.KVDB, genesis *types.Genesis) (*types.Receipt, error) {
	if genesis == nil {
		return nil, nil
	}
	var receipt *types.Receipt
	coins := NewCoinsAccount(db)
	token := NewTokenDB(db)
	for _, m := range genesis.Mint {
		if err := address.CheckAddress(m.Authority); err != nil {
			alog.Error("ApplyGenesis mint", "symbol", m.Symbol, "authority", m.Authority, "err", err)
			return nil, types.ErrInvalidAddress
		}
		r, err := token.CreateMint(m.Symbol, m.Authority, m.Decimals)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	for _, a := range genesis.Alloc {
		if err := address.CheckAddress(a.Owner); err != nil {
			alog.Error("ApplyGenesis alloc", "owner", a.Owner, "err", err)
			return nil, types.ErrInvalidAddress
		}
		r, err := token.GenesisAlloc(a.Owner, MintAddress(a.Symbol), a.Amount)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	for _, c := range genesis.Coins {
		if err := address.CheckAddress(c.Addr); err != nil {
			alog.Error("ApplyGenesis coins", "addr", c.Addr, "err", err)
			return nil, types.ErrInvalidAddress
		}
		r, err := coins.GenesisInit(c.Addr, c.Amount)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	return receipt, nil
}
