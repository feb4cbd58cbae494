// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"strings"

	"github.com/33cn/bps/common/address"
	dbm "github.com/33cn/bps/common/db"
	"github.com/33cn/bps/types"
)

var (
	mintKeyPrefix         = "mavl-token-mint-"
	tokenAccountKeyPrefix = "mavl-token-account-"
)

// TokenProgram 代币程序地址
func TokenProgram() string {
	return address.ExecAddress(types.TokenX)
}

// MintAddress symbol 对应的 mint 地址
func MintAddress(symbol string) string {
	return address.MustDeriveAddress([][]byte{[]byte("mint"), []byte(symbol)}, TokenProgram())
}

// ResolveMint 地址原样返回, 否则作为 symbol 计算 mint 地址
func ResolveMint(mint string) string {
	if mint == "" {
		return ""
	}
	if address.CheckAddress(mint) == nil {
		return mint
	}
	return MintAddress(mint)
}

// AssociatedTokenAddress owner 持有 mint 的默认代币账户地址
func AssociatedTokenAddress(owner, mint string) (string, error) {
	return address.DeriveAddress([][]byte{[]byte(owner), []byte(types.TokenX), []byte(mint)}, TokenProgram())
}

// TokenDB 代币与代币账户
type TokenDB struct {
	db dbm.KVDB
}

// NewTokenDB new
func NewTokenDB(db dbm.KVDB) *TokenDB {
	return &TokenDB{db: db}
}

func calcMintKey(addr string) []byte {
	return []byte(mintKeyPrefix + addr)
}

func calcTokenAccountKey(addr string) []byte {
	return []byte(tokenAccountKeyPrefix + addr)
}

// LoadMint 读取 mint
func (t *TokenDB) LoadMint(addr string) (*types.Mint, error) {
	value, err := t.db.Get(calcMintKey(addr))
	if err != nil || value == nil {
		return nil, types.ErrMintNotFound
	}
	var mint types.Mint
	if err := types.Decode(value, &mint); err != nil {
		return nil, err
	}
	return &mint, nil
}

func (t *TokenDB) saveMint(mint *types.Mint) *types.KeyValue {
	kv := &types.KeyValue{Key: calcMintKey(mint.Addr), Value: types.Encode(mint)}
	t.db.Set(kv.Key, kv.Value)
	return kv
}

func mintReceipt(ty int32, prev, current *types.Mint, kv *types.KeyValue) *types.Receipt {
	log := &types.ReceiptLog{Ty: ty, Log: types.Encode(&types.ReceiptMint{Prev: prev, Current: current})}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}
}

// CreateMint 创建代币
func (t *TokenDB) CreateMint(symbol, authority string, decimals int32) (*types.Receipt, error) {
	if symbol == "" || strings.ContainsRune(symbol, '-') || len(symbol) > address.MaxSeedLength {
		return nil, types.ErrSymbolNameNotAllow
	}
	if decimals < 0 || decimals > types.MaxDecimals {
		return nil, types.ErrInvalidParam
	}
	addr := MintAddress(symbol)
	if _, err := t.LoadMint(addr); err == nil {
		return nil, types.ErrMintExists
	}
	mint := &types.Mint{Addr: addr, Symbol: symbol, Authority: authority, Decimals: decimals}
	kv := t.saveMint(mint)
	alog.Debug("CreateMint", "symbol", symbol, "addr", addr)
	return mintReceipt(types.TyLogMint, nil, mint, kv), nil
}

// LoadTokenAccount 读取代币账户
func (t *TokenDB) LoadTokenAccount(addr string) (*types.TokenAccount, error) {
	value, err := t.db.Get(calcTokenAccountKey(addr))
	if err != nil || value == nil {
		return nil, types.ErrNotFound
	}
	var acc types.TokenAccount
	if err := types.Decode(value, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (t *TokenDB) saveTokenAccount(acc *types.TokenAccount) *types.KeyValue {
	kv := &types.KeyValue{Key: calcTokenAccountKey(acc.Addr), Value: types.Encode(acc)}
	t.db.Set(kv.Key, kv.Value)
	return kv
}

func tokenAccountLog(ty int32, prev, current *types.TokenAccount) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(&types.ReceiptTokenAccount{Prev: prev, Current: current})}
}

// OpenAccount 在指定地址开启代币账户
func (t *TokenDB) OpenAccount(addr, owner, mint string) (*types.Receipt, error) {
	if _, err := t.LoadMint(mint); err != nil {
		return nil, err
	}
	if _, err := t.LoadTokenAccount(addr); err == nil {
		return nil, types.ErrAccountExists
	}
	acc := &types.TokenAccount{Addr: addr, Owner: owner, Mint: mint}
	kv := t.saveTokenAccount(acc)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{tokenAccountLog(types.TyLogTokenAccountOpen, nil, acc)},
	}, nil
}

// OpenAssociated 开启 owner 的默认代币账户, 已存在时 receipt 为空
func (t *TokenDB) OpenAssociated(owner, mint string) (string, *types.Receipt, error) {
	addr, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		return "", nil, err
	}
	acc, err := t.LoadTokenAccount(addr)
	if err == nil {
		if acc.Mint != mint {
			return "", nil, types.ErrMintMismatch
		}
		return addr, nil, nil
	}
	receipt, err := t.OpenAccount(addr, owner, mint)
	if err != nil {
		return "", nil, err
	}
	return addr, receipt, nil
}

// FindFundingAccount 检查 owner 用于支付 mint 的代币账户, funding 为空时使用默认账户
func (t *TokenDB) FindFundingAccount(owner, mint, funding string) (*types.TokenAccount, error) {
	if funding == "" {
		addr, err := AssociatedTokenAddress(owner, mint)
		if err != nil {
			return nil, err
		}
		funding = addr
	}
	acc, err := t.LoadTokenAccount(funding)
	if err != nil {
		return nil, types.ErrNoFundingAccount
	}
	if acc.Mint != mint {
		return nil, types.ErrMintMismatch
	}
	if acc.Owner != owner {
		return nil, types.ErrUnauthorized
	}
	return acc, nil
}

// Transfer 同一 mint 的代币账户之间转账
func (t *TokenDB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	accFrom, err := t.LoadTokenAccount(from)
	if err != nil {
		return nil, err
	}
	accTo, err := t.LoadTokenAccount(to)
	if err != nil {
		return nil, err
	}
	if accFrom.Mint != accTo.Mint {
		return nil, types.ErrMintMismatch
	}
	if accFrom.Balance < amount {
		alog.Debug("Transfer token", "from", from, "balance", accFrom.Balance, "amount", amount)
		return nil, types.ErrInsufficientFunds
	}
	prevFrom := *accFrom
	prevTo := *accTo
	accFrom.Balance -= amount
	accTo.Balance, err = safeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	kv1 := t.saveTokenAccount(accFrom)
	kv2 := t.saveTokenAccount(accTo)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{kv1, kv2},
		Logs: []*types.ReceiptLog{
			tokenAccountLog(types.TyLogTokenTransfer, &prevFrom, accFrom),
			tokenAccountLog(types.TyLogTokenTransfer, &prevTo, accTo),
		},
	}, nil
}

// GenesisAlloc 创世时向 owner 的默认账户增发
func (t *TokenDB) GenesisAlloc(owner, mint string, amount int64) (*types.Receipt, error) {
	addr, receipt, err := t.OpenAssociated(owner, mint)
	if err != nil {
		return nil, err
	}
	r, err := t.MintTo(mint, addr, amount)
	if err != nil {
		return nil, err
	}
	return types.MergeReceipt(receipt, r), nil
}

// MintTo 增发到代币账户
func (t *TokenDB) MintTo(mintAddr, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	mint, err := t.LoadMint(mintAddr)
	if err != nil {
		return nil, err
	}
	acc, err := t.LoadTokenAccount(to)
	if err != nil {
		return nil, err
	}
	if acc.Mint != mintAddr {
		return nil, types.ErrMintMismatch
	}
	prevMint := *mint
	prevAcc := *acc
	if mint.Supply, err = safeAdd(mint.Supply, amount); err != nil {
		return nil, err
	}
	if acc.Balance, err = safeAdd(acc.Balance, amount); err != nil {
		return nil, err
	}
	kv1 := t.saveMint(mint)
	kv2 := t.saveTokenAccount(acc)
	receipt := mintReceipt(types.TyLogMint, &prevMint, mint, kv1)
	receipt.KV = append(receipt.KV, kv2)
	receipt.Logs = append(receipt.Logs, tokenAccountLog(types.TyLogTokenGenesis, &prevAcc, acc))
	return receipt, nil
}

// Burn 从代币账户销毁, 同时减少流通量
func (t *TokenDB) Burn(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc, err := t.LoadTokenAccount(addr)
	if err != nil {
		return nil, err
	}
	if acc.Balance < amount {
		return nil, types.ErrInsufficientFunds
	}
	mint, err := t.LoadMint(acc.Mint)
	if err != nil {
		return nil, err
	}
	prevMint := *mint
	prevAcc := *acc
	acc.Balance -= amount
	mint.Supply -= amount
	mint.Burned += amount
	kv1 := t.saveMint(mint)
	kv2 := t.saveTokenAccount(acc)
	receipt := mintReceipt(types.TyLogTokenBurn, &prevMint, mint, kv1)
	receipt.KV = append(receipt.KV, kv2)
	receipt.Logs = append(receipt.Logs, tokenAccountLog(types.TyLogTokenTransfer, &prevAcc, acc))
	return receipt, nil
}

// CloseAccount 释放余额为0的代币账户
func (t *TokenDB) CloseAccount(addr string) (*types.Receipt, error) {
	acc, err := t.LoadTokenAccount(addr)
	if err != nil {
		return nil, types.ErrAccountAlreadyClosed
	}
	if acc.Balance != 0 {
		return nil, types.ErrAccountNotEmpty
	}
	kv := &types.KeyValue{Key: calcTokenAccountKey(addr)}
	t.db.Set(kv.Key, nil)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{tokenAccountLog(types.TyLogTokenAccountClose, acc, nil)},
	}, nil
}
