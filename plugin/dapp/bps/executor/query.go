// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bps/account"
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
)

// Query GetGame / GetGameByID / ListGames / CountGames / GetEscrow
func (b *Bps) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case bt.FuncNameGetGame:
		var req types.ReqString
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrDecode
		}
		return readGame(b.GetStateDB(), req.Data)
	case bt.FuncNameGetGameByID:
		var req bt.ReqGameByID
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrDecode
		}
		gameAddr, err := bt.GameAddress(req.FirstPlayer, req.GameId)
		if err != nil {
			return nil, err
		}
		return readGame(b.GetStateDB(), gameAddr)
	case bt.FuncNameListGames:
		var req bt.ReqGameList
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrDecode
		}
		return b.listGames(&req)
	case bt.FuncNameCountGames:
		var req bt.ReqGameCount
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrDecode
		}
		return b.countGames(&req)
	case bt.FuncNameGetEscrow:
		var req bt.ReqEscrow
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrDecode
		}
		return b.getEscrow(&req)
	}
	return nil, types.ErrQueryNotSupport
}

func checkQueryState(state int32) error {
	st := bt.GameState(state)
	if st < bt.GameStateCreated || st > bt.GameStateCancelled {
		return bt.ErrInvalidState
	}
	return nil
}

func (b *Bps) listGames(req *bt.ReqGameList) (types.Message, error) {
	if err := checkQueryState(req.State); err != nil {
		return nil, err
	}
	if req.Direction != types.ListDESC && req.Direction != types.ListASC {
		return nil, types.ErrInvalidParam
	}
	count := req.Count
	if count <= 0 {
		count = b.cfg.DefaultCount
	}
	if count > b.cfg.MaxCount {
		count = b.cfg.MaxCount
	}
	var prefix, key []byte
	if req.Addr == "" {
		prefix = calcGameStateIndexPrefix(req.State)
		if req.Index > 0 {
			key = calcGameStateIndexKey(req.State, req.Index)
		}
	} else {
		prefix = calcGameAddrIndexPrefix(req.State, req.Addr)
		if req.Index > 0 {
			key = calcGameAddrIndexKey(req.State, req.Addr, req.Index)
		}
	}
	values, err := b.GetLocalDB().List(prefix, key, count, req.Direction)
	if err != nil {
		if err == types.ErrNotFound {
			return &bt.ReplyGameList{}, nil
		}
		return nil, err
	}
	reply := &bt.ReplyGameList{}
	for _, value := range values {
		var record bt.GameRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		game, err := readGame(b.GetStateDB(), record.Address)
		if err != nil {
			glog.Error("listGames", "addr", record.Address, "err", err)
			continue
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}

func (b *Bps) countGames(req *bt.ReqGameCount) (types.Message, error) {
	if err := checkQueryState(req.State); err != nil {
		return nil, err
	}
	prefix := calcGameStateIndexPrefix(req.State)
	if req.Addr != "" {
		prefix = calcGameAddrIndexPrefix(req.State, req.Addr)
	}
	return &types.Int64{Data: b.GetLocalDB().PrefixCount(prefix)}, nil
}

func (b *Bps) getEscrow(req *bt.ReqEscrow) (types.Message, error) {
	role := bt.Role(req.Role)
	if role != bt.RoleFirst && role != bt.RoleSecond {
		return nil, types.ErrInvalidParam
	}
	addr, err := bt.EscrowAddress(role, req.Game)
	if err != nil {
		return nil, err
	}
	escrowdb := account.NewEscrowDB(b.GetStateDB())
	escrow, err := escrowdb.LoadEscrow(addr)
	if err != nil {
		return nil, err
	}
	return &bt.ReplyEscrow{Escrow: escrow, Balance: escrowdb.Balance(addr)}, nil
}
