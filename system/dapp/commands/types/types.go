// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands 公用的结构体和工具函数
package types

// AccountResult 原生币账户
type AccountResult struct {
	Addr    string `json:"addr,omitempty"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

// TokenAccountResult 代币账户
type TokenAccountResult struct {
	Addr    string `json:"addr,omitempty"`
	Owner   string `json:"owner,omitempty"`
	Mint    string `json:"mint,omitempty"`
	Balance string `json:"balance"`
}

// TxResult 交易执行结果
type TxResult struct {
	Hash      string       `json:"hash"`
	Height    int64        `json:"height"`
	Index     int32        `json:"index"`
	Blocktime int64        `json:"blocktime"`
	Execer    string       `json:"execer"`
	From      string       `json:"from,omitempty"`
	Ty        int32        `json:"ty"`
	Error     string       `json:"error,omitempty"`
	Logs      []*LogResult `json:"logs,omitempty"`
}

// LogResult 回执日志
type LogResult struct {
	Ty     int32  `json:"ty"`
	RawLog string `json:"rawLog"`
}

// SendResult 发送交易的结果
type SendResult struct {
	TxID string      `json:"txId"`
	Data interface{} `json:"data,omitempty"`
}
