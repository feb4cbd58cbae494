// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"context"
	"strings"

	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MoveResult 下注成功后的结果, Choice 和 Salt 需要保存到揭示
type MoveResult struct {
	TxID   string      `json:"txId"`
	Game   string      `json:"game"`
	GameID string      `json:"gameId,omitempty"`
	Choice bt.Choice   `json:"-"`
	Salt   *SaltResult `json:"salt"`
}

// NewGameID 随机的游戏编号
func NewGameID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func checkMove(choice bt.Choice, salt *SaltResult) error {
	if !choice.Valid() {
		return bt.ErrInvalidChoice
	}
	if salt == nil {
		return bt.ErrInvalidSalt
	}
	return bt.CheckSalt(salt.Bytes)
}

// FirstPlayerMove 创建游戏并押注 amount, gameID 为空时随机生成
func (c *Client) FirstPlayerMove(ctx context.Context, gameID string, amount int64, choice bt.Choice, salt *SaltResult) (*MoveResult, error) {
	if err := checkMove(choice, salt); err != nil {
		return nil, err
	}
	if gameID == "" {
		gameID = NewGameID()
	}
	gameAddr, err := bt.GameAddress(c.Address(), gameID)
	if err != nil {
		return nil, err
	}
	funding, err := c.FindTokenAccount(ctx)
	if err != nil {
		return nil, err
	}
	commitment := bt.Commit(salt.Bytes, choice)
	tx := bt.CreateRawFirstMoveTx(&bt.FirstPlayerMove{
		GameId:     gameID,
		Amount:     amount,
		Commitment: commitment[:],
		Mint:       c.Mint(),
		Funding:    funding,
	})
	txID, err := c.send(ctx, tx)
	if err != nil {
		return nil, errors.Wrap(err, "firstPlayerMove")
	}
	clog.Info("FirstPlayerMove", "game", gameAddr, "gameId", gameID, "amount", amount, "tx", txID)
	return &MoveResult{TxID: txID, Game: gameAddr, GameID: gameID, Choice: choice, Salt: salt}, nil
}

// SecondPlayerMove 加入游戏并押注相同数量
func (c *Client) SecondPlayerMove(ctx context.Context, game string, choice bt.Choice, salt *SaltResult) (*MoveResult, error) {
	if err := checkMove(choice, salt); err != nil {
		return nil, err
	}
	funding, err := c.FindTokenAccount(ctx)
	if err != nil {
		return nil, err
	}
	commitment := bt.Commit(salt.Bytes, choice)
	tx := bt.CreateRawSecondMoveTx(&bt.SecondPlayerMove{
		Game:       game,
		Commitment: commitment[:],
		Mint:       c.Mint(),
		Funding:    funding,
	})
	txID, err := c.send(ctx, tx)
	if err != nil {
		return nil, errors.Wrap(err, "secondPlayerMove")
	}
	clog.Info("SecondPlayerMove", "game", game, "tx", txID)
	return &MoveResult{TxID: txID, Game: game, Choice: choice, Salt: salt}, nil
}

// Reveal 揭示自己的 choice 和 salt
func (c *Client) Reveal(ctx context.Context, game string, choice bt.Choice, salt *SaltResult) (string, error) {
	if err := checkMove(choice, salt); err != nil {
		return "", err
	}
	txID, err := c.send(ctx, bt.CreateRawRevealTx(game, salt.Bytes, choice))
	if err != nil {
		return txID, errors.Wrap(err, "reveal")
	}
	return txID, nil
}

// CancelGame 先手取消无人加入的游戏
func (c *Client) CancelGame(ctx context.Context, game string) (string, error) {
	txID, err := c.send(ctx, bt.CreateRawCancelTx(game))
	if err != nil {
		return txID, errors.Wrap(err, "cancelGame")
	}
	return txID, nil
}

// AdminCloseStaleGame 管理员结算揭示超时的游戏
func (c *Client) AdminCloseStaleGame(ctx context.Context, game string) (string, error) {
	txID, err := c.send(ctx, bt.CreateRawAdminCloseTx(game))
	if err != nil {
		return txID, errors.Wrap(err, "adminCloseStaleGame")
	}
	return txID, nil
}

// GetGame 读取游戏
func GetGame(api API, game string) (*bt.Game, error) {
	msg, err := api.Query(bt.BpsX, bt.FuncNameGetGame, &types.ReqString{Data: game})
	if err != nil {
		return nil, err
	}
	g, ok := msg.(*bt.Game)
	if !ok {
		return nil, types.ErrDecode
	}
	return g, nil
}

// GetGame 读取游戏
func (c *Client) GetGame(game string) (*bt.Game, error) {
	return GetGame(c.api, game)
}

// IsGameCreator 钱包是否为游戏的先手
func (c *Client) IsGameCreator(game *bt.Game) bool {
	return game != nil && game.FirstPlayer == c.Address()
}
