// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/bps/common/address"
	"github.com/33cn/bps/types"
)

// Config [exec.sub.bps]
type Config struct {
	// 可以强制关闭超时游戏的管理员地址
	Admin string `json:"admin"`
	// 接受的 mint, 地址或者 symbol, 为空时不限制
	Mint string `json:"mint"`
	// 单位秒
	RevealWindow  int64 `json:"revealWindow"`
	MinAmount     int64 `json:"minAmount"`
	MaxAmount     int64 `json:"maxAmount"`
	EscrowDeposit int64 `json:"escrowDeposit"`
	DefaultCount  int32 `json:"defaultCount"`
	MaxCount      int32 `json:"maxCount"`
}

// ParseConfig 解析 sub 配置并填充默认值
func ParseConfig(sub []byte) (*Config, error) {
	cfg := &Config{}
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Admin != "" {
		if err := address.CheckAddress(cfg.Admin); err != nil {
			return nil, types.ErrInvalidAddress
		}
	}
	if cfg.RevealWindow <= 0 {
		cfg.RevealWindow = DefaultRevealWindow
	}
	if cfg.MinAmount <= 0 {
		cfg.MinAmount = 1
	}
	if cfg.MaxAmount < 0 || (cfg.MaxAmount > 0 && cfg.MaxAmount < cfg.MinAmount) {
		return nil, types.ErrInvalidParam
	}
	if cfg.EscrowDeposit < 0 {
		return nil, types.ErrInvalidParam
	}
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = 20
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = 100
	}
	return cfg, nil
}

// CheckAmount 是否在 [MinAmount, MaxAmount] 之内, MaxAmount 为0表示不限制
func (c *Config) CheckAmount(amount int64) error {
	if amount < c.MinAmount || (c.MaxAmount > 0 && amount > c.MaxAmount) {
		return ErrInvalidAmount
	}
	return nil
}
