// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/golang/protobuf/proto"

//Account 原生币账户, 用于支付 escrow 存储押金
type Account struct {
	Balance int64  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	Frozen  int64  `protobuf:"varint,2,opt,name=frozen,proto3" json:"frozen,omitempty"`
	Addr    string `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

//GetBalance get balance
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

//ReceiptAccountTransfer 账户变化
type ReceiptAccountTransfer struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountTransfer) Reset()         { *m = ReceiptAccountTransfer{} }
func (m *ReceiptAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptAccountTransfer) ProtoMessage()    {}

//Mint 代币定义, supply 为流通量, burned 为累计销毁量
type Mint struct {
	Addr      string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Symbol    string `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Authority string `protobuf:"bytes,3,opt,name=authority,proto3" json:"authority,omitempty"`
	Decimals  int32  `protobuf:"varint,4,opt,name=decimals,proto3" json:"decimals,omitempty"`
	Supply    int64  `protobuf:"varint,5,opt,name=supply,proto3" json:"supply,omitempty"`
	Burned    int64  `protobuf:"varint,6,opt,name=burned,proto3" json:"burned,omitempty"`
}

func (m *Mint) Reset()         { *m = Mint{} }
func (m *Mint) String() string { return proto.CompactTextString(m) }
func (*Mint) ProtoMessage()    {}

//ReceiptMint mint 变化
type ReceiptMint struct {
	Prev    *Mint `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Mint `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptMint) Reset()         { *m = ReceiptMint{} }
func (m *ReceiptMint) String() string { return proto.CompactTextString(m) }
func (*ReceiptMint) ProtoMessage()    {}

//TokenAccount 代币账户, 只持有一种 mint
type TokenAccount struct {
	Addr    string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Owner   string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Mint    string `protobuf:"bytes,3,opt,name=mint,proto3" json:"mint,omitempty"`
	Balance int64  `protobuf:"varint,4,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *TokenAccount) Reset()         { *m = TokenAccount{} }
func (m *TokenAccount) String() string { return proto.CompactTextString(m) }
func (*TokenAccount) ProtoMessage()    {}

//GetBalance get balance
func (m *TokenAccount) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

//ReceiptTokenAccount 代币账户变化, current 为空表示账户被释放
type ReceiptTokenAccount struct {
	Prev    *TokenAccount `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *TokenAccount `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptTokenAccount) Reset()         { *m = ReceiptTokenAccount{} }
func (m *ReceiptTokenAccount) String() string { return proto.CompactTextString(m) }
func (*ReceiptTokenAccount) ProtoMessage()    {}

//Escrow 程序托管账户的元数据, 关闭后保留 closed 记录
type Escrow struct {
	Addr      string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Program   string `protobuf:"bytes,2,opt,name=program,proto3" json:"program,omitempty"`
	Game      string `protobuf:"bytes,3,opt,name=game,proto3" json:"game,omitempty"`
	Role      string `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"`
	Mint      string `protobuf:"bytes,5,opt,name=mint,proto3" json:"mint,omitempty"`
	Owner     string `protobuf:"bytes,6,opt,name=owner,proto3" json:"owner,omitempty"`
	Payer     string `protobuf:"bytes,7,opt,name=payer,proto3" json:"payer,omitempty"`
	Amount    int64  `protobuf:"varint,8,opt,name=amount,proto3" json:"amount,omitempty"`
	Deposit   int64  `protobuf:"varint,9,opt,name=deposit,proto3" json:"deposit,omitempty"`
	Closed    bool   `protobuf:"varint,10,opt,name=closed,proto3" json:"closed,omitempty"`
	CreatedAt int64  `protobuf:"varint,11,opt,name=createdAt,proto3" json:"createdAt,omitempty"`
	ClosedAt  int64  `protobuf:"varint,12,opt,name=closedAt,proto3" json:"closedAt,omitempty"`
}

func (m *Escrow) Reset()         { *m = Escrow{} }
func (m *Escrow) String() string { return proto.CompactTextString(m) }
func (*Escrow) ProtoMessage()    {}

//ReceiptEscrow escrow 变化
type ReceiptEscrow struct {
	Prev    *Escrow `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Escrow `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptEscrow) Reset()         { *m = ReceiptEscrow{} }
func (m *ReceiptEscrow) String() string { return proto.CompactTextString(m) }
func (*ReceiptEscrow) ProtoMessage()    {}
