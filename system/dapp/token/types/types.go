// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types token 执行器的交易与查询结构
package types

import (
	"github.com/33cn/bps/types"
	"github.com/golang/protobuf/proto"
)

// token action ty
const (
	TokenActionTransfer = 1
	TokenActionMintTo   = 2
)

var (
	// TokenX 执行器名
	TokenX = types.TokenX
	// ExecerToken token 执行器名字节
	ExecerToken = []byte(TokenX)
	actionName  = map[int32]string{
		TokenActionTransfer: "Transfer",
		TokenActionMintTo:   "MintTo",
	}
)

// query func name
const (
	FuncNameGetTokenAccount = "GetTokenAccount"
	FuncNameGetAccount      = "GetAccount"
	FuncNameGetMint         = "GetMint"
)

// TokenTransfer 向 to 的默认账户转账, Funding 为空时从发送者的默认账户支付
type TokenTransfer struct {
	Mint    string `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	To      string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Amount  int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Funding string `protobuf:"bytes,4,opt,name=funding,proto3" json:"funding,omitempty"`
}

func (m *TokenTransfer) Reset()         { *m = TokenTransfer{} }
func (m *TokenTransfer) String() string { return proto.CompactTextString(m) }
func (*TokenTransfer) ProtoMessage()    {}

// TokenMintTo mint authority 增发到 to 的默认账户
type TokenMintTo struct {
	Mint   string `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	To     string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TokenMintTo) Reset()         { *m = TokenMintTo{} }
func (m *TokenMintTo) String() string { return proto.CompactTextString(m) }
func (*TokenMintTo) ProtoMessage()    {}

// TokenAction token 交易的 payload
type TokenAction struct {
	Ty       int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer *TokenTransfer `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
	MintTo   *TokenMintTo   `protobuf:"bytes,3,opt,name=mintTo,proto3" json:"mintTo,omitempty"`
}

func (m *TokenAction) Reset()         { *m = TokenAction{} }
func (m *TokenAction) String() string { return proto.CompactTextString(m) }
func (*TokenAction) ProtoMessage()    {}

// GetTransfer nil safe
func (m *TokenAction) GetTransfer() *TokenTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

// GetMintTo nil safe
func (m *TokenAction) GetMintTo() *TokenMintTo {
	if m != nil {
		return m.MintTo
	}
	return nil
}

// ActionName action 名称, 未知时为 unknown
func ActionName(payload []byte) string {
	var action TokenAction
	if err := types.Decode(payload, &action); err != nil {
		return "unknown"
	}
	if name, ok := actionName[action.Ty]; ok {
		return name
	}
	return "unknown"
}

// CreateRawTransferTx 构造未签名的代币转账交易, mint 可以是地址或者 symbol
func CreateRawTransferTx(mint, to string, amount int64) *types.Transaction {
	action := &TokenAction{
		Ty:       TokenActionTransfer,
		Transfer: &TokenTransfer{Mint: mint, To: to, Amount: amount},
	}
	return &types.Transaction{Execer: ExecerToken, Payload: types.Encode(action)}
}

// CreateRawMintToTx 构造未签名的增发交易
func CreateRawMintToTx(mint, to string, amount int64) *types.Transaction {
	action := &TokenAction{
		Ty:     TokenActionMintTo,
		MintTo: &TokenMintTo{Mint: mint, To: to, Amount: amount},
	}
	return &types.Transaction{Execer: ExecerToken, Payload: types.Encode(action)}
}
