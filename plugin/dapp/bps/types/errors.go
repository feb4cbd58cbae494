// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrGameAlreadyStarted 游戏已经有第二个玩家
	ErrGameAlreadyStarted = errors.New("ErrGameAlreadyStarted")
	// ErrCommitmentMismatch 揭示的 salt 与 choice 和 commitment 不一致
	ErrCommitmentMismatch = errors.New("ErrCommitmentMismatch")
	// ErrNotYetExpired 揭示期限还没有过
	ErrNotYetExpired = errors.New("ErrNotYetExpired")
	// ErrInvalidStateForOperation 当前状态不允许该操作
	ErrInvalidStateForOperation = errors.New("ErrInvalidStateForOperation")
	// ErrGameNotFound 游戏不存在
	ErrGameNotFound = errors.New("ErrGameNotFound")
	// ErrGameExists 同一玩家的 gameId 已经使用
	ErrGameExists = errors.New("ErrGameExists")
	// ErrInvalidGameID gameId 为空或者太长
	ErrInvalidGameID = errors.New("ErrInvalidGameID")
	// ErrInvalidAmount 押注金额超出配置范围
	ErrInvalidAmount = errors.New("ErrInvalidAmount")
	// ErrInvalidCommitment commitment 长度不是32
	ErrInvalidCommitment = errors.New("ErrInvalidCommitment")
	// ErrInvalidChoice 不是 bonk/paper/scissors
	ErrInvalidChoice = errors.New("ErrInvalidChoice")
	// ErrInvalidSalt salt 为空或者太长
	ErrInvalidSalt = errors.New("ErrInvalidSalt")
	// ErrAlreadyRevealed 同一玩家重复揭示
	ErrAlreadyRevealed = errors.New("ErrAlreadyRevealed")
	// ErrInvalidState 无法识别的状态名
	ErrInvalidState = errors.New("ErrInvalidState")
)
