// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
)

// Outcome 根据双方揭示的出拳决定结果, 没有揭示的一方为 ChoiceNone
func Outcome(first, second bt.Choice) bt.Result {
	switch {
	case first.Valid() && second.Valid():
		if first == second {
			return bt.ResultDraw
		}
		if first.Beats(second) {
			return bt.ResultFirstPlayerWins
		}
		return bt.ResultSecondPlayerWins
	case first.Valid():
		return bt.ResultSecondPlayerForfeit
	case second.Valid():
		return bt.ResultFirstPlayerForfeit
	}
	return bt.ResultBothForfeit
}

// Split 结算分配: 每个托管账户销毁多少, 剩余转给谁
type Split struct {
	Result bt.Result
	// 各托管账户的销毁量
	FirstBurn  int64
	SecondBurn int64
	// 各托管账户剩余部分的接收角色
	FirstTo  bt.Role
	SecondTo bt.Role
}

// Burned 总销毁量
func (s *Split) Burned() int64 {
	return s.FirstBurn + s.SecondBurn
}

// ComputeSplit pot = 2*amount, 有胜者时销毁 pot/10, 全部从输家的托管账户扣除
func ComputeSplit(result bt.Result, amount int64) *Split {
	burn := 2 * amount / bt.BurnDivisor
	s := &Split{Result: result, FirstTo: bt.RoleFirst, SecondTo: bt.RoleSecond}
	switch result {
	case bt.ResultFirstPlayerWins, bt.ResultSecondPlayerForfeit:
		s.SecondBurn = burn
		s.SecondTo = bt.RoleFirst
	case bt.ResultSecondPlayerWins, bt.ResultFirstPlayerForfeit:
		s.FirstBurn = burn
		s.FirstTo = bt.RoleSecond
	case bt.ResultBothForfeit:
		s.FirstBurn = burn - burn/2
		s.SecondBurn = burn / 2
	}
	return s
}

func playerOf(game *bt.Game, role bt.Role) string {
	if role == bt.RoleFirst {
		return game.FirstPlayer
	}
	return game.SecondPlayer
}

func (action *Action) settleEscrow(game *bt.Game, role bt.Role, burn int64, to bt.Role) (*types.Receipt, error) {
	escrow, err := bt.EscrowAddress(role, game.Address)
	if err != nil {
		return nil, err
	}
	var receipt *types.Receipt
	if burn > 0 {
		r, err := action.escrowdb.BurnEscrow(escrow, burn)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	r, paid, err := action.escrowdb.CloseEscrow(escrow, playerOf(game, to), action.blocktime)
	if err != nil {
		return nil, err
	}
	if to == bt.RoleFirst {
		game.FirstPayout += paid
	} else {
		game.SecondPayout += paid
	}
	return types.MergeReceipt(receipt, r), nil
}

// settle 关闭两个托管账户并把游戏置为 Resolved
func (action *Action) settle(game *bt.Game) (*types.Receipt, error) {
	result := Outcome(bt.Choice(game.FirstChoice), bt.Choice(game.SecondChoice))
	split := ComputeSplit(result, game.AmountToMatch)
	receipt, err := action.settleEscrow(game, bt.RoleFirst, split.FirstBurn, split.FirstTo)
	if err != nil {
		glog.Error("settle first escrow", "game", game.Address, "err", err)
		return nil, err
	}
	r, err := action.settleEscrow(game, bt.RoleSecond, split.SecondBurn, split.SecondTo)
	if err != nil {
		glog.Error("settle second escrow", "game", game.Address, "err", err)
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	game.Result = int32(result)
	game.Burned = split.Burned()
	game.ClosedAt = action.blocktime
	glog.Info("settle", "game", game.Address, "result", result, "first", game.FirstPayout, "second", game.SecondPayout, "burned", game.Burned)
	return action.transition(bt.TyLogBpsResolve, game, bt.GameStateResolved, receipt), nil
}
