// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/bps/types"
	"github.com/golang/protobuf/proto"
)

// Game 一局游戏, 保存在 mavl-bps-game-<address>
type Game struct {
	GameId           string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Address          string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	FirstPlayer      string `protobuf:"bytes,3,opt,name=firstPlayer,proto3" json:"firstPlayer,omitempty"`
	SecondPlayer     string `protobuf:"bytes,4,opt,name=secondPlayer,proto3" json:"secondPlayer,omitempty"`
	Mint             string `protobuf:"bytes,5,opt,name=mint,proto3" json:"mint,omitempty"`
	AmountToMatch    int64  `protobuf:"varint,6,opt,name=amountToMatch,proto3" json:"amountToMatch,omitempty"`
	FirstCommitment  []byte `protobuf:"bytes,7,opt,name=firstCommitment,proto3" json:"firstCommitment,omitempty"`
	SecondCommitment []byte `protobuf:"bytes,8,opt,name=secondCommitment,proto3" json:"secondCommitment,omitempty"`
	FirstChoice      int32  `protobuf:"varint,9,opt,name=firstChoice,proto3" json:"firstChoice,omitempty"`
	SecondChoice     int32  `protobuf:"varint,10,opt,name=secondChoice,proto3" json:"secondChoice,omitempty"`
	FirstSalt        []byte `protobuf:"bytes,11,opt,name=firstSalt,proto3" json:"firstSalt,omitempty"`
	SecondSalt       []byte `protobuf:"bytes,12,opt,name=secondSalt,proto3" json:"secondSalt,omitempty"`
	State            int32  `protobuf:"varint,13,opt,name=state,proto3" json:"state,omitempty"`
	Result           int32  `protobuf:"varint,14,opt,name=result,proto3" json:"result,omitempty"`
	CreatedAt        int64  `protobuf:"varint,15,opt,name=createdAt,proto3" json:"createdAt,omitempty"`
	StartedAt        int64  `protobuf:"varint,16,opt,name=startedAt,proto3" json:"startedAt,omitempty"`
	ClosedAt         int64  `protobuf:"varint,17,opt,name=closedAt,proto3" json:"closedAt,omitempty"`
	FirstPayout      int64  `protobuf:"varint,18,opt,name=firstPayout,proto3" json:"firstPayout,omitempty"`
	SecondPayout     int64  `protobuf:"varint,19,opt,name=secondPayout,proto3" json:"secondPayout,omitempty"`
	Burned           int64  `protobuf:"varint,20,opt,name=burned,proto3" json:"burned,omitempty"`
	Index            int64  `protobuf:"varint,21,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex        int64  `protobuf:"varint,22,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *Game) Reset()         { *m = Game{} }
func (m *Game) String() string { return proto.CompactTextString(m) }
func (*Game) ProtoMessage()    {}

// GetState 类型化的状态
func (m *Game) GetState() GameState {
	if m != nil {
		return GameState(m.State)
	}
	return GameStateNone
}

// GetResult 类型化的结果
func (m *Game) GetResult() Result {
	if m != nil {
		return Result(m.Result)
	}
	return ResultUnknown
}

// RoleOf addr 在游戏中的角色, 不是玩家时返回 false
func (m *Game) RoleOf(addr string) (Role, bool) {
	if addr == "" {
		return 0, false
	}
	switch addr {
	case m.FirstPlayer:
		return RoleFirst, true
	case m.SecondPlayer:
		return RoleSecond, true
	}
	return 0, false
}

// Pot 两个玩家押注之和
func (m *Game) Pot() int64 {
	if m.SecondPlayer == "" {
		return m.AmountToMatch
	}
	return 2 * m.AmountToMatch
}

// FirstPlayerMove 先手: 创建游戏, 押注并提交 commitment
type FirstPlayerMove struct {
	GameId     string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Amount     int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Commitment []byte `protobuf:"bytes,3,opt,name=commitment,proto3" json:"commitment,omitempty"`
	// mint 地址或者 symbol, 为空时使用配置的 mint
	Mint string `protobuf:"bytes,4,opt,name=mint,proto3" json:"mint,omitempty"`
	// 出资的代币账户, 为空时使用默认账户
	Funding string `protobuf:"bytes,5,opt,name=funding,proto3" json:"funding,omitempty"`
}

func (m *FirstPlayerMove) Reset()         { *m = FirstPlayerMove{} }
func (m *FirstPlayerMove) String() string { return proto.CompactTextString(m) }
func (*FirstPlayerMove) ProtoMessage()    {}

// SecondPlayerMove 后手: 加入游戏, 押注 amountToMatch 并提交 commitment
type SecondPlayerMove struct {
	Game       string `protobuf:"bytes,1,opt,name=game,proto3" json:"game,omitempty"`
	Commitment []byte `protobuf:"bytes,2,opt,name=commitment,proto3" json:"commitment,omitempty"`
	// 可选, 与游戏的 mint 不一致时拒绝
	Mint    string `protobuf:"bytes,3,opt,name=mint,proto3" json:"mint,omitempty"`
	Funding string `protobuf:"bytes,4,opt,name=funding,proto3" json:"funding,omitempty"`
}

func (m *SecondPlayerMove) Reset()         { *m = SecondPlayerMove{} }
func (m *SecondPlayerMove) String() string { return proto.CompactTextString(m) }
func (*SecondPlayerMove) ProtoMessage()    {}

// GameReveal 揭示 salt 和 choice
type GameReveal struct {
	Game   string `protobuf:"bytes,1,opt,name=game,proto3" json:"game,omitempty"`
	Salt   []byte `protobuf:"bytes,2,opt,name=salt,proto3" json:"salt,omitempty"`
	Choice int32  `protobuf:"varint,3,opt,name=choice,proto3" json:"choice,omitempty"`
}

func (m *GameReveal) Reset()         { *m = GameReveal{} }
func (m *GameReveal) String() string { return proto.CompactTextString(m) }
func (*GameReveal) ProtoMessage()    {}

// GameCancel 先手在无人加入时取消
type GameCancel struct {
	Game string `protobuf:"bytes,1,opt,name=game,proto3" json:"game,omitempty"`
}

func (m *GameCancel) Reset()         { *m = GameCancel{} }
func (m *GameCancel) String() string { return proto.CompactTextString(m) }
func (*GameCancel) ProtoMessage()    {}

// GameAdminClose 管理员强制结算超时的游戏
type GameAdminClose struct {
	Game string `protobuf:"bytes,1,opt,name=game,proto3" json:"game,omitempty"`
}

func (m *GameAdminClose) Reset()         { *m = GameAdminClose{} }
func (m *GameAdminClose) String() string { return proto.CompactTextString(m) }
func (*GameAdminClose) ProtoMessage()    {}

// BpsAction bps 交易的 payload, Ty 决定哪个字段有效
type BpsAction struct {
	Ty         int32             `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	FirstMove  *FirstPlayerMove  `protobuf:"bytes,2,opt,name=firstMove,proto3" json:"firstMove,omitempty"`
	SecondMove *SecondPlayerMove `protobuf:"bytes,3,opt,name=secondMove,proto3" json:"secondMove,omitempty"`
	Reveal     *GameReveal       `protobuf:"bytes,4,opt,name=reveal,proto3" json:"reveal,omitempty"`
	Cancel     *GameCancel       `protobuf:"bytes,5,opt,name=cancel,proto3" json:"cancel,omitempty"`
	AdminClose *GameAdminClose   `protobuf:"bytes,6,opt,name=adminClose,proto3" json:"adminClose,omitempty"`
}

func (m *BpsAction) Reset()         { *m = BpsAction{} }
func (m *BpsAction) String() string { return proto.CompactTextString(m) }
func (*BpsAction) ProtoMessage()    {}

// GetFirstMove nil safe
func (m *BpsAction) GetFirstMove() *FirstPlayerMove {
	if m != nil {
		return m.FirstMove
	}
	return nil
}

// GetSecondMove nil safe
func (m *BpsAction) GetSecondMove() *SecondPlayerMove {
	if m != nil {
		return m.SecondMove
	}
	return nil
}

// GetReveal nil safe
func (m *BpsAction) GetReveal() *GameReveal {
	if m != nil {
		return m.Reveal
	}
	return nil
}

// GetCancel nil safe
func (m *BpsAction) GetCancel() *GameCancel {
	if m != nil {
		return m.Cancel
	}
	return nil
}

// GetAdminClose nil safe
func (m *BpsAction) GetAdminClose() *GameAdminClose {
	if m != nil {
		return m.AdminClose
	}
	return nil
}

// ActionName action 名称, 未知时为 unknown
func ActionName(payload []byte) string {
	var action BpsAction
	if err := types.Decode(payload, &action); err != nil {
		return "unknown"
	}
	if name, ok := actionName[action.Ty]; ok {
		return name
	}
	return "unknown"
}

// ReceiptGame 游戏状态变化的日志, 用于本地索引
type ReceiptGame struct {
	GameId       string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Address      string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	State        int32  `protobuf:"varint,3,opt,name=state,proto3" json:"state,omitempty"`
	PrevState    int32  `protobuf:"varint,4,opt,name=prevState,proto3" json:"prevState,omitempty"`
	FirstPlayer  string `protobuf:"bytes,5,opt,name=firstPlayer,proto3" json:"firstPlayer,omitempty"`
	SecondPlayer string `protobuf:"bytes,6,opt,name=secondPlayer,proto3" json:"secondPlayer,omitempty"`
	// 触发本次变化的地址
	Addr      string `protobuf:"bytes,7,opt,name=addr,proto3" json:"addr,omitempty"`
	Index     int64  `protobuf:"varint,8,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex int64  `protobuf:"varint,9,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
	Result    int32  `protobuf:"varint,10,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *ReceiptGame) Reset()         { *m = ReceiptGame{} }
func (m *ReceiptGame) String() string { return proto.CompactTextString(m) }
func (*ReceiptGame) ProtoMessage()    {}

// GameRecord 本地索引的值
type GameRecord struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Index   int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *GameRecord) Reset()         { *m = GameRecord{} }
func (m *GameRecord) String() string { return proto.CompactTextString(m) }
func (*GameRecord) ProtoMessage()    {}

// ReqGameByID 按先手玩家和 gameId 查询
type ReqGameByID struct {
	FirstPlayer string `protobuf:"bytes,1,opt,name=firstPlayer,proto3" json:"firstPlayer,omitempty"`
	GameId      string `protobuf:"bytes,2,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *ReqGameByID) Reset()         { *m = ReqGameByID{} }
func (m *ReqGameByID) String() string { return proto.CompactTextString(m) }
func (*ReqGameByID) ProtoMessage()    {}

// ReqGameList 按状态(和地址)分页查询, Index 为上一页最后一条的 index
type ReqGameList struct {
	State     int32  `protobuf:"varint,1,opt,name=state,proto3" json:"state,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Index     int64  `protobuf:"varint,3,opt,name=index,proto3" json:"index,omitempty"`
	Count     int32  `protobuf:"varint,4,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,5,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *ReqGameList) Reset()         { *m = ReqGameList{} }
func (m *ReqGameList) String() string { return proto.CompactTextString(m) }
func (*ReqGameList) ProtoMessage()    {}

// ReplyGameList 分页结果
type ReplyGameList struct {
	Games []*Game `protobuf:"bytes,1,rep,name=games,proto3" json:"games,omitempty"`
}

func (m *ReplyGameList) Reset()         { *m = ReplyGameList{} }
func (m *ReplyGameList) String() string { return proto.CompactTextString(m) }
func (*ReplyGameList) ProtoMessage()    {}

// ReqGameCount 按状态(和地址)计数
type ReqGameCount struct {
	State int32  `protobuf:"varint,1,opt,name=state,proto3" json:"state,omitempty"`
	Addr  string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqGameCount) Reset()         { *m = ReqGameCount{} }
func (m *ReqGameCount) String() string { return proto.CompactTextString(m) }
func (*ReqGameCount) ProtoMessage()    {}

// ReqEscrow 查询游戏某个角色的托管账户
type ReqEscrow struct {
	Game string `protobuf:"bytes,1,opt,name=game,proto3" json:"game,omitempty"`
	Role int32  `protobuf:"varint,2,opt,name=role,proto3" json:"role,omitempty"`
}

func (m *ReqEscrow) Reset()         { *m = ReqEscrow{} }
func (m *ReqEscrow) String() string { return proto.CompactTextString(m) }
func (*ReqEscrow) ProtoMessage()    {}

// ReplyEscrow 托管账户以及当前余额
type ReplyEscrow struct {
	Escrow  *types.Escrow `protobuf:"bytes,1,opt,name=escrow,proto3" json:"escrow,omitempty"`
	Balance int64         `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *ReplyEscrow) Reset()         { *m = ReplyEscrow{} }
func (m *ReplyEscrow) String() string { return proto.CompactTextString(m) }
func (*ReplyEscrow) ProtoMessage()    {}
