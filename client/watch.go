// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"bytes"
	"context"
	"time"

	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
	"github.com/pkg/errors"
)

// DefaultWatchInterval 轮询间隔
const DefaultWatchInterval = time.Second

// WatchGame 定时读取游戏, 第一次读到以及每次变化时调用 fn.
// 游戏进入终态或 ctx 结束时返回; 游戏还不存在时继续等待
func WatchGame(ctx context.Context, api API, game string, interval time.Duration, fn func(*bt.Game)) error {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var last []byte
	for {
		g, err := GetGame(api, game)
		switch {
		case errors.Cause(err) == bt.ErrGameNotFound:
		case err != nil:
			return errors.Wrap(err, "WatchGame")
		default:
			data := types.Encode(g)
			if !bytes.Equal(data, last) {
				last = data
				fn(g)
			}
			if g.GetState().Terminal() {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// WatchGame 见 WatchGame
func (c *Client) WatchGame(ctx context.Context, game string, interval time.Duration, fn func(*bt.Game)) error {
	return WatchGame(ctx, c.api, game, interval, fn)
}
