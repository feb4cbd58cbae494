// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
)

// ExecLocal 游戏状态变化时更新本地索引
func (b *Bps) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case bt.TyLogBpsCreate, bt.TyLogBpsStart, bt.TyLogBpsResolve, bt.TyLogBpsCancel:
		default:
			continue
		}
		var gamelog bt.ReceiptGame
		if err := types.Decode(item.Log, &gamelog); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, updateIndex(&gamelog)...)
	}
	return set, nil
}

func updateIndex(log *bt.ReceiptGame) (kvs []*types.KeyValue) {
	if log.State == log.PrevState {
		return nil
	}
	prev := bt.GameState(log.PrevState)
	if prev != bt.GameStateNone {
		kvs = append(kvs, delGameStateIndex(log.PrevState, log.PrevIndex))
		kvs = append(kvs, delGameAddrIndex(log.PrevState, log.FirstPlayer, log.PrevIndex))
		//加入之前的状态没有后手的索引
		if prev != bt.GameStateCreated && log.SecondPlayer != "" {
			kvs = append(kvs, delGameAddrIndex(log.PrevState, log.SecondPlayer, log.PrevIndex))
		}
	}
	kvs = append(kvs, addGameStateIndex(log.State, log.Address, log.Index))
	kvs = append(kvs, addGameAddrIndex(log.State, log.Address, log.FirstPlayer, log.Index))
	if log.SecondPlayer != "" {
		kvs = append(kvs, addGameAddrIndex(log.State, log.Address, log.SecondPlayer, log.Index))
	}
	return kvs
}

func calcGameStateIndexKey(state int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-bps-state:%d:%018d", state, index))
}

func calcGameStateIndexPrefix(state int32) []byte {
	return []byte(fmt.Sprintf("LODB-bps-state:%d:", state))
}

func calcGameAddrIndexKey(state int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-bps-addr:%d:%s:%018d", state, addr, index))
}

func calcGameAddrIndexPrefix(state int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-bps-addr:%d:%s:", state, addr))
}

func addGameStateIndex(state int32, gameAddr string, index int64) *types.KeyValue {
	record := &bt.GameRecord{Address: gameAddr, Index: index}
	return &types.KeyValue{Key: calcGameStateIndexKey(state, index), Value: types.Encode(record)}
}

func addGameAddrIndex(state int32, gameAddr, addr string, index int64) *types.KeyValue {
	record := &bt.GameRecord{Address: gameAddr, Index: index}
	return &types.KeyValue{Key: calcGameAddrIndexKey(state, addr, index), Value: types.Encode(record)}
}

func delGameStateIndex(state int32, index int64) *types.KeyValue {
	//value置nil,提交时，会自动执行删除操作
	return &types.KeyValue{Key: calcGameStateIndexKey(state, index)}
}

func delGameAddrIndex(state int32, addr string, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcGameAddrIndexKey(state, addr, index)}
}
