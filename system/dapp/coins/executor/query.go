// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bps/common/address"
	cty "github.com/33cn/bps/system/dapp/coins/types"
	"github.com/33cn/bps/types"
)

// Query 支持 GetBalance 与 GetAddrReciver, 参数均为 ReqString
func (c *Coins) Query(funcName string, params []byte) (types.Message, error) {
	var req types.ReqString
	if err := types.Decode(params, &req); err != nil {
		return nil, types.ErrDecode
	}
	if err := address.CheckAddress(req.Data); err != nil {
		return nil, types.ErrInvalidAddress
	}
	switch funcName {
	case cty.FuncNameGetBalance:
		return c.GetCoinsAccount().LoadAccount(req.Data), nil
	case cty.FuncNameGetAddrReciver:
		total, err := c.getAddrReciver(req.Data)
		if err != nil {
			return nil, err
		}
		return &types.Int64{Data: total}, nil
	}
	return nil, types.ErrQueryNotSupport
}
