// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"crypto/rand"

	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// SaltLength 随机 salt 的字节数
const SaltLength = 32

// SaltResult salt 的字节形式和 base58 文本形式, 揭示前由玩家自己保存
type SaltResult struct {
	Bytes  []byte `json:"-"`
	Base58 string `json:"base58"`
}

// NewSalt 生成随机 salt
func NewSalt() (*SaltResult, error) {
	buf := make([]byte, SaltLength)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "NewSalt")
	}
	return &SaltResult{Bytes: buf, Base58: base58.Encode(buf)}, nil
}

// ParseSalt 解析 base58 形式的 salt
func ParseSalt(s string) (*SaltResult, error) {
	buf, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(bt.ErrInvalidSalt, err.Error())
	}
	if err := bt.CheckSalt(buf); err != nil {
		return nil, err
	}
	return &SaltResult{Bytes: buf, Base58: s}, nil
}
