// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin            int64 = 1e8
	MaxCoin         int64 = 1e17
	MaxTxSize             = 100000 //100K
	MaxTxsPerBlock        = 100000
	TokenPrecision  int64 = 1e8
	MaxTokenBalance int64 = 900 * 1e8 * TokenPrecision //900亿
	MaxDecimals           = 18
)

// 系统执行器
const (
	CoinsX = "coins"
	TokenX = "token"
)

//exec result of receipt
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//log type
const (
	TyLogReserved = 0
	TyLogErr      = 1

	TyLogGenesis         = 2
	TyLogTransfer        = 3
	TyLogGenesisTransfer = 4

	TyLogMint              = 10
	TyLogTokenTransfer     = 11
	TyLogTokenBurn         = 12
	TyLogTokenAccountOpen  = 13
	TyLogTokenAccountClose = 14
	TyLogTokenGenesis      = 15

	TyLogEscrowOpen  = 20
	TyLogEscrowClose = 21
)

// list direction
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// 签名类型
const (
	SECP256K1 = 1
)

// 数据库 key 前缀
var (
	// state db
	StatePrefix = []byte("mavl-")
	// 已执行的交易hash, 用于去重
	TxHashPerfix = []byte("mavl-tx-")
	// local db: 交易执行结果
	TxResultPrefix = []byte("LODB-tx-")
	// local db: 最新区块
	HeaderKey = []byte("LODB-header")
)

// CalcTxKey 已执行交易的 state key
func CalcTxKey(hash []byte) []byte {
	return append(TxHashPerfix[:len(TxHashPerfix):len(TxHashPerfix)], hash...)
}

// CalcTxResultKey 交易结果的 local key
func CalcTxResultKey(hash []byte) []byte {
	return append(TxResultPrefix[:len(TxResultPrefix):len(TxResultPrefix)], hash...)
}
