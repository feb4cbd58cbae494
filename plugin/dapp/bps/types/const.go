// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strconv"
	"strings"
)

const (
	// BpsX 执行器名
	BpsX = "bps"
	// PackageName 插件包名
	PackageName = "bps"
)

// ExecerBps 执行器名字节
var ExecerBps = []byte(BpsX)

// bps action ty
const (
	BpsActionFirstMove = iota + 1
	BpsActionSecondMove
	BpsActionReveal
	BpsActionCancel
	BpsActionAdminClose
)

var actionName = map[int32]string{
	BpsActionFirstMove:  "FirstPlayerMove",
	BpsActionSecondMove: "SecondPlayerMove",
	BpsActionReveal:     "Reveal",
	BpsActionCancel:     "CancelGame",
	BpsActionAdminClose: "AdminCloseStaleGame",
}

// log ty
const (
	TyLogBpsCreate  = 601
	TyLogBpsStart   = 602
	TyLogBpsReveal  = 603
	TyLogBpsResolve = 604
	TyLogBpsCancel  = 605
)

// query func name
const (
	FuncNameGetGame     = "GetGame"
	FuncNameGetGameByID = "GetGameByID"
	FuncNameListGames   = "ListGames"
	FuncNameCountGames  = "CountGames"
	FuncNameGetEscrow   = "GetEscrow"
)

const (
	// MaxGameIDLength gameId 的最大长度
	MaxGameIDLength = 32
	// CommitmentLength commitment 的长度
	CommitmentLength = 32
	// MaxSaltLength salt 的最大长度
	MaxSaltLength = 64
	// DefaultRevealWindow 开始后可以强制关闭前的等待时间, 7 天
	DefaultRevealWindow = int64(7 * 24 * 3600)
	// BurnDivisor 有胜者时销毁 pot/BurnDivisor
	BurnDivisor = 10
)

// GameState 游戏状态, 只能向前变化
type GameState int32

// game state
const (
	GameStateNone GameState = iota
	GameStateCreated
	GameStateStarted
	GameStateResolved
	GameStateCancelled
)

func (s GameState) String() string {
	switch s {
	case GameStateCreated:
		return "CreatedAndWaitingForSecondPlayer"
	case GameStateStarted:
		return "StartedAndWaitingForReveal"
	case GameStateResolved:
		return "Resolved"
	case GameStateCancelled:
		return "Cancelled"
	}
	return "None"
}

// Terminal Resolved 和 Cancelled 之后不再有状态变化
func (s GameState) Terminal() bool {
	return s == GameStateResolved || s == GameStateCancelled
}

// ParseGameState 名称或数字, 大小写不敏感
func ParseGameState(s string) (GameState, error) {
	if n, err := strconv.Atoi(s); err == nil && n >= int(GameStateCreated) && n <= int(GameStateCancelled) {
		return GameState(n), nil
	}
	for st := GameStateCreated; st <= GameStateCancelled; st++ {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	switch strings.ToLower(s) {
	case "created":
		return GameStateCreated, nil
	case "started":
		return GameStateStarted, nil
	}
	return GameStateNone, ErrInvalidState
}

// Result 结算结果
type Result int32

// game result
const (
	ResultUnknown Result = iota
	ResultFirstPlayerWins
	ResultSecondPlayerWins
	ResultDraw
	// 先手没有揭示
	ResultFirstPlayerForfeit
	// 后手没有揭示
	ResultSecondPlayerForfeit
	ResultBothForfeit
)

func (r Result) String() string {
	switch r {
	case ResultFirstPlayerWins:
		return "FirstPlayerWins"
	case ResultSecondPlayerWins:
		return "SecondPlayerWins"
	case ResultDraw:
		return "Draw"
	case ResultFirstPlayerForfeit:
		return "FirstPlayerForfeit"
	case ResultSecondPlayerForfeit:
		return "SecondPlayerForfeit"
	case ResultBothForfeit:
		return "BothForfeit"
	}
	return "Unknown"
}

// Role 玩家角色, 用于派生托管地址
type Role int32

// player role
const (
	RoleFirst Role = iota + 1
	RoleSecond
)

// Tag 派生托管地址的种子
func (r Role) Tag() []byte {
	return []byte(r.String())
}

func (r Role) String() string {
	switch r {
	case RoleFirst:
		return "first"
	case RoleSecond:
		return "second"
	}
	return "unknown"
}
