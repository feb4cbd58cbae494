// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client 玩家和管理员一侧的游戏流程: 构造交易, 签名, 提交并等待确认
package client

import (
	"context"

	"github.com/33cn/bps/account"
	"github.com/33cn/bps/common/address"
	tty "github.com/33cn/bps/system/dapp/token/types"
	"github.com/33cn/bps/types"
	"github.com/33cn/bps/wallet"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var clog = log.New("module", "client")

// API 账本接口
type API interface {
	// SendAndConfirm 提交交易并等待执行, 交易失败时返回执行错误
	SendAndConfirm(ctx context.Context, tx *types.Transaction) (string, error)
	Query(execer, funcName string, params types.Message) (types.Message, error)
}

// Option 客户端参数
type Option func(c *Client)

// WithAdmin 管理员地址, 用于 IsAdmin
func WithAdmin(admin string) Option {
	return func(c *Client) {
		c.admin = admin
	}
}

// WithMint 下注使用的 mint, symbol 或者地址
func WithMint(mint string) Option {
	return func(c *Client) {
		c.mint = mint
	}
}

// Client 绑定一个钱包的客户端
type Client struct {
	api    API
	wallet *wallet.Wallet
	mint   string
	admin  string
}

// New new client
func New(api API, w *wallet.Wallet, opts ...Option) *Client {
	c := &Client{api: api, wallet: w}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address 钱包地址
func (c *Client) Address() string {
	return c.wallet.Address()
}

// Mint 配置的 mint 地址
func (c *Client) Mint() string {
	return account.ResolveMint(c.mint)
}

// IsAdmin 钱包是否为管理员
func (c *Client) IsAdmin() bool {
	return c.admin != "" && c.admin == c.wallet.Address()
}

func (c *Client) send(ctx context.Context, tx *types.Transaction) (string, error) {
	c.wallet.SignTx(tx)
	txID, err := c.api.SendAndConfirm(ctx, tx)
	if err != nil {
		clog.Debug("send", "addr", c.Address(), "tx", txID, "err", err)
		return txID, err
	}
	return txID, nil
}

// FindTokenAccount owner 持有 mint 的默认代币账户, 不存在时返回 ErrNoFundingAccount
func FindTokenAccount(ctx context.Context, api API, owner, mint string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := address.CheckAddress(owner); err != nil {
		return "", errors.Wrap(types.ErrInvalidAddress, owner)
	}
	if mint == "" {
		return "", errors.Wrap(types.ErrInvalidParam, "empty mint")
	}
	msg, err := api.Query(types.TokenX, tty.FuncNameGetTokenAccount, &types.ReqTokenAccount{Owner: owner, Mint: mint})
	if errors.Cause(err) == types.ErrNotFound {
		return "", types.ErrNoFundingAccount
	}
	if err != nil {
		return "", errors.Wrap(err, "FindTokenAccount")
	}
	acc, ok := msg.(*types.TokenAccount)
	if !ok {
		return "", types.ErrNoFundingAccount
	}
	return acc.Addr, nil
}

// FindTokenAccount 当前钱包的出资账户
func (c *Client) FindTokenAccount(ctx context.Context) (string, error) {
	return FindTokenAccount(ctx, c.api, c.Address(), c.Mint())
}
