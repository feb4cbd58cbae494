// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/bps/types"
)

func createRawTx(action *BpsAction) *types.Transaction {
	return &types.Transaction{Execer: ExecerBps, Payload: types.Encode(action)}
}

// CreateRawFirstMoveTx 构造未签名的先手交易
func CreateRawFirstMoveTx(move *FirstPlayerMove) *types.Transaction {
	return createRawTx(&BpsAction{Ty: BpsActionFirstMove, FirstMove: move})
}

// CreateRawSecondMoveTx 构造未签名的后手交易
func CreateRawSecondMoveTx(move *SecondPlayerMove) *types.Transaction {
	return createRawTx(&BpsAction{Ty: BpsActionSecondMove, SecondMove: move})
}

// CreateRawRevealTx 构造未签名的揭示交易
func CreateRawRevealTx(game string, salt []byte, choice Choice) *types.Transaction {
	return createRawTx(&BpsAction{Ty: BpsActionReveal, Reveal: &GameReveal{Game: game, Salt: salt, Choice: int32(choice)}})
}

// CreateRawCancelTx 构造未签名的取消交易
func CreateRawCancelTx(game string) *types.Transaction {
	return createRawTx(&BpsAction{Ty: BpsActionCancel, Cancel: &GameCancel{Game: game}})
}

// CreateRawAdminCloseTx 构造未签名的强制关闭交易
func CreateRawAdminCloseTx(game string) *types.Transaction {
	return createRawTx(&BpsAction{Ty: BpsActionAdminClose, AdminClose: &GameAdminClose{Game: game}})
}
