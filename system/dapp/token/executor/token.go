// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
token 执行器: 代币账户之间的转账, 以及 mint authority 的增发.
mint 本身在创世配置中创建.
*/

import (
	"github.com/33cn/bps/account"
	"github.com/33cn/bps/common/address"
	"github.com/33cn/bps/executor"
	tty "github.com/33cn/bps/system/dapp/token/types"
	"github.com/33cn/bps/types"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "execs.token")
var driverName = tty.TokenX

// Init 注册 token 执行器
func Init(name string) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	executor.Register(driverName, newToken, 0)
}

// GetName 执行器名
func GetName() string {
	return driverName
}

// Token 代币执行器
type Token struct {
	executor.DriverBase
}

func newToken(sub []byte) (executor.Driver, error) {
	t := &Token{}
	t.SetChild(t)
	t.SetName(driverName)
	return t, nil
}

// GetDriverName 驱动名
func (t *Token) GetDriverName() string {
	return driverName
}

// GetActionName 交易的 action 名
func (t *Token) GetActionName(tx *types.Transaction) string {
	return tty.ActionName(tx.Payload)
}

// Exec 执行 token 交易
func (t *Token) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action tty.TokenAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, types.ErrDecode
	}
	tokendb := account.NewTokenDB(t.GetStateDB())
	if action.Ty == tty.TokenActionTransfer && action.GetTransfer() != nil {
		return execTransfer(tokendb, tx.From(), action.GetTransfer())
	} else if action.Ty == tty.TokenActionMintTo && action.GetMintTo() != nil {
		return execMintTo(tokendb, tx.From(), action.GetMintTo())
	}
	return nil, types.ErrActionNotSupport
}

func execTransfer(tokendb *account.TokenDB, from string, transfer *tty.TokenTransfer) (*types.Receipt, error) {
	if err := address.CheckAddress(transfer.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	mint := account.ResolveMint(transfer.Mint)
	if _, err := tokendb.LoadMint(mint); err != nil {
		return nil, err
	}
	funding, err := tokendb.FindFundingAccount(from, mint, transfer.Funding)
	if err != nil {
		tlog.Debug("Transfer", "from", from, "mint", mint, "err", err)
		return nil, err
	}
	dest, receipt, err := tokendb.OpenAssociated(transfer.To, mint)
	if err != nil {
		return nil, err
	}
	r, err := tokendb.Transfer(funding.Addr, dest, transfer.Amount)
	if err != nil {
		return nil, err
	}
	return types.MergeReceipt(receipt, r), nil
}

func execMintTo(tokendb *account.TokenDB, from string, mintTo *tty.TokenMintTo) (*types.Receipt, error) {
	if err := address.CheckAddress(mintTo.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	mintAddr := account.ResolveMint(mintTo.Mint)
	mint, err := tokendb.LoadMint(mintAddr)
	if err != nil {
		return nil, err
	}
	if mint.Authority != from {
		tlog.Error("MintTo", "from", from, "authority", mint.Authority)
		return nil, types.ErrUnauthorized
	}
	dest, receipt, err := tokendb.OpenAssociated(mintTo.To, mintAddr)
	if err != nil {
		return nil, err
	}
	r, err := tokendb.MintTo(mintAddr, dest, mintTo.Amount)
	if err != nil {
		return nil, err
	}
	return types.MergeReceipt(receipt, r), nil
}
