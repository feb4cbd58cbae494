// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/bps/common/address"
	cty "github.com/33cn/bps/system/dapp/coins/types"
	"github.com/33cn/bps/types"
)

func (c *Coins) execTransfer(transfer *cty.CoinsTransfer, tx *types.Transaction) (*types.Receipt, error) {
	if err := address.CheckAddress(transfer.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	from := tx.From()
	receipt, err := c.GetCoinsAccount().Transfer(from, transfer.To, transfer.Amount)
	if err != nil {
		clog.Debug("Transfer", "from", from, "to", transfer.To, "amount", transfer.Amount, "err", err)
		return nil, err
	}
	return receipt, nil
}

// ExecLocal 累计地址收到的金额
func (c *Coins) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	var action cty.CoinsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	transfer := action.GetTransfer()
	if transfer == nil {
		return set, nil
	}
	kv, err := c.updateAddrReciver(transfer.To, transfer.Amount)
	if err != nil {
		return nil, err
	}
	set.KV = append(set.KV, kv)
	return set, nil
}

func calcAddrKey(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-coins-Addr:%s", addr))
}

func (c *Coins) getAddrReciver(addr string) (int64, error) {
	value, err := c.GetLocalDB().Get(calcAddrKey(addr))
	if err != nil || value == nil {
		return 0, types.ErrEmpty
	}
	var reciver types.Int64
	if err := types.Decode(value, &reciver); err != nil {
		return 0, err
	}
	return reciver.Data, nil
}

func (c *Coins) updateAddrReciver(addr string, amount int64) (*types.KeyValue, error) {
	total, err := c.getAddrReciver(addr)
	if err != nil && err != types.ErrEmpty {
		return nil, err
	}
	total += amount
	return &types.KeyValue{Key: calcAddrKey(addr), Value: types.Encode(&types.Int64{Data: total})}, nil
}
