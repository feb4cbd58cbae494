// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的交易与查询结构
package types

import (
	"github.com/33cn/bps/types"
	"github.com/golang/protobuf/proto"
)

// coins action ty
const (
	CoinsActionTransfer = 1
)

var (
	// CoinsX 执行器名
	CoinsX = types.CoinsX
	// ExecerCoins coins 执行器名字节
	ExecerCoins = []byte(CoinsX)
	actionName  = map[int32]string{
		CoinsActionTransfer: "Transfer",
	}
)

// query func name
const (
	FuncNameGetBalance     = "GetBalance"
	FuncNameGetAddrReciver = "GetAddrReciver"
)

// CoinsTransfer 原生币转账
type CoinsTransfer struct {
	To     string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Note   string `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
}

func (m *CoinsTransfer) Reset()         { *m = CoinsTransfer{} }
func (m *CoinsTransfer) String() string { return proto.CompactTextString(m) }
func (*CoinsTransfer) ProtoMessage()    {}

// CoinsAction coins 交易的 payload
type CoinsAction struct {
	Ty       int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer *CoinsTransfer `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

// GetTransfer nil safe
func (m *CoinsAction) GetTransfer() *CoinsTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

// ActionName action 名称, 未知时为 unknown
func ActionName(payload []byte) string {
	var action CoinsAction
	if err := types.Decode(payload, &action); err != nil {
		return "unknown"
	}
	if name, ok := actionName[action.Ty]; ok {
		return name
	}
	return "unknown"
}

// CreateRawTransferTx 构造未签名的转账交易
func CreateRawTransferTx(to string, amount int64, note string) *types.Transaction {
	action := &CoinsAction{
		Ty:       CoinsActionTransfer,
		Transfer: &CoinsTransfer{To: to, Amount: amount, Note: note},
	}
	return &types.Transaction{Execer: ExecerCoins, Payload: types.Encode(action)}
}
