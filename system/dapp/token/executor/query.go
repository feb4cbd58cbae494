// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bps/account"
	tty "github.com/33cn/bps/system/dapp/token/types"
	"github.com/33cn/bps/types"
)

// Query GetTokenAccount(ReqTokenAccount) 查询 owner 的默认账户,
// GetAccount(ReqString) 按地址查询代币账户, GetMint(ReqString) 按地址或 symbol 查询
func (t *Token) Query(funcName string, params []byte) (types.Message, error) {
	tokendb := account.NewTokenDB(t.GetStateDB())
	switch funcName {
	case tty.FuncNameGetTokenAccount:
		var req types.ReqTokenAccount
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrDecode
		}
		addr, err := account.AssociatedTokenAddress(req.Owner, account.ResolveMint(req.Mint))
		if err != nil {
			return nil, types.ErrInvalidParam
		}
		return tokendb.LoadTokenAccount(addr)
	case tty.FuncNameGetAccount:
		var req types.ReqString
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrDecode
		}
		return tokendb.LoadTokenAccount(req.Data)
	case tty.FuncNameGetMint:
		var req types.ReqString
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrDecode
		}
		return tokendb.LoadMint(account.ResolveMint(req.Data))
	}
	return nil, types.ErrQueryNotSupport
}
