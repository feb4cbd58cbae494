// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bps/account"
	"github.com/33cn/bps/common"
	dbm "github.com/33cn/bps/common/db"
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
)

var gameKeyPrefix = "mavl-" + bt.BpsX + "-game-"

// Key 游戏在状态数据库中的 key
func Key(gameAddr string) []byte {
	return []byte(gameKeyPrefix + gameAddr)
}

// Action 一次交易的执行上下文
type Action struct {
	cfg       *bt.Config
	db        dbm.KV
	escrowdb  *account.EscrowDB
	txhash    []byte
	fromaddr  string
	blocktime int64
	height    int64
	index     int
}

// NewAction new
func NewAction(b *Bps, tx *types.Transaction, index int) *Action {
	db := b.GetStateDB()
	return &Action{
		cfg:       b.cfg,
		db:        db,
		escrowdb:  account.NewEscrowDB(db),
		txhash:    tx.Hash(),
		fromaddr:  tx.From(),
		blocktime: b.GetBlockTime(),
		height:    b.GetHeight(),
		index:     index,
	}
}

// GetIndex height*types.MaxTxsPerBlock + index
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func readGame(db dbm.KVDB, gameAddr string) (*bt.Game, error) {
	value, err := db.Get(Key(gameAddr))
	if err != nil || value == nil {
		return nil, bt.ErrGameNotFound
	}
	var game bt.Game
	if err := types.Decode(value, &game); err != nil {
		glog.Error("readGame decode", "addr", gameAddr, "err", err)
		return nil, err
	}
	return &game, nil
}

func (action *Action) saveGame(game *bt.Game) *types.KeyValue {
	kv := &types.KeyValue{Key: Key(game.Address), Value: types.Encode(game)}
	action.db.Set(kv.Key, kv.Value)
	return kv
}

func (action *Action) receiptLog(ty int32, prevState bt.GameState, game *bt.Game) *types.ReceiptLog {
	r := &bt.ReceiptGame{
		GameId:       game.GameId,
		Address:      game.Address,
		State:        game.State,
		PrevState:    int32(prevState),
		FirstPlayer:  game.FirstPlayer,
		SecondPlayer: game.SecondPlayer,
		Addr:         action.fromaddr,
		Index:        game.Index,
		PrevIndex:    game.PrevIndex,
		Result:       game.Result,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

// transition 保存游戏并记录状态变化
func (action *Action) transition(ty int32, game *bt.Game, to bt.GameState, receipt *types.Receipt) *types.Receipt {
	prev := game.GetState()
	if prev != to {
		game.State = int32(to)
		game.PrevIndex = game.Index
		game.Index = action.GetIndex()
	}
	kv := action.saveGame(game)
	return types.MergeReceipt(receipt, &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{action.receiptLog(ty, prev, game)},
	})
}

func (action *Action) resolveMint(mint string) (string, error) {
	want := account.ResolveMint(action.cfg.Mint)
	got := account.ResolveMint(mint)
	switch {
	case got == "" && want == "":
		return "", types.ErrInvalidParam
	case got == "":
		got = want
	case want != "" && got != want:
		return "", types.ErrMintMismatch
	}
	if _, err := action.escrowdb.Token().LoadMint(got); err != nil {
		return "", err
	}
	return got, nil
}

func (action *Action) openEscrow(game *bt.Game, role bt.Role, funding string) (*types.Receipt, error) {
	addr, err := bt.EscrowAddress(role, game.Address)
	if err != nil {
		return nil, err
	}
	return action.escrowdb.OpenEscrow(&account.EscrowParam{
		Addr:      addr,
		Program:   bt.ProgramAddress(),
		Game:      game.Address,
		Role:      role.String(),
		Payer:     action.fromaddr,
		Funding:   funding,
		Mint:      game.Mint,
		Amount:    game.AmountToMatch,
		Deposit:   action.cfg.EscrowDeposit,
		BlockTime: action.blocktime,
	})
}

// FirstPlayerMove 创建游戏并押注
func (action *Action) FirstPlayerMove(move *bt.FirstPlayerMove) (*types.Receipt, error) {
	if err := bt.CheckGameID(move.GameId); err != nil {
		return nil, err
	}
	if len(move.Commitment) != bt.CommitmentLength {
		return nil, bt.ErrInvalidCommitment
	}
	if err := action.cfg.CheckAmount(move.Amount); err != nil {
		return nil, err
	}
	mint, err := action.resolveMint(move.Mint)
	if err != nil {
		glog.Error("FirstPlayerMove", "addr", action.fromaddr, "mint", move.Mint, "err", err)
		return nil, err
	}
	gameAddr, err := bt.GameAddress(action.fromaddr, move.GameId)
	if err != nil {
		return nil, err
	}
	if _, err := readGame(action.db, gameAddr); err == nil {
		return nil, bt.ErrGameExists
	}
	game := &bt.Game{
		GameId:          move.GameId,
		Address:         gameAddr,
		FirstPlayer:     action.fromaddr,
		Mint:            mint,
		AmountToMatch:   move.Amount,
		FirstCommitment: common.CopyBytes(move.Commitment),
		CreatedAt:       action.blocktime,
	}
	receipt, err := action.openEscrow(game, bt.RoleFirst, move.Funding)
	if err != nil {
		glog.Error("FirstPlayerMove openEscrow", "addr", action.fromaddr, "game", gameAddr, "err", err)
		return nil, err
	}
	return action.transition(bt.TyLogBpsCreate, game, bt.GameStateCreated, receipt), nil
}

// SecondPlayerMove 加入游戏并押注相同金额
func (action *Action) SecondPlayerMove(move *bt.SecondPlayerMove) (*types.Receipt, error) {
	game, err := readGame(action.db, move.Game)
	if err != nil {
		return nil, err
	}
	switch game.GetState() {
	case bt.GameStateCreated:
	case bt.GameStateStarted, bt.GameStateResolved:
		return nil, bt.ErrGameAlreadyStarted
	default:
		return nil, bt.ErrInvalidStateForOperation
	}
	if action.fromaddr == game.FirstPlayer {
		return nil, types.ErrUnauthorized
	}
	if len(move.Commitment) != bt.CommitmentLength {
		return nil, bt.ErrInvalidCommitment
	}
	if move.Mint != "" && account.ResolveMint(move.Mint) != game.Mint {
		return nil, types.ErrMintMismatch
	}
	receipt, err := action.openEscrow(game, bt.RoleSecond, move.Funding)
	if err != nil {
		glog.Error("SecondPlayerMove openEscrow", "addr", action.fromaddr, "game", game.Address, "err", err)
		return nil, err
	}
	game.SecondPlayer = action.fromaddr
	game.SecondCommitment = common.CopyBytes(move.Commitment)
	game.StartedAt = action.blocktime
	return action.transition(bt.TyLogBpsStart, game, bt.GameStateStarted, receipt), nil
}

// Reveal 揭示出拳, 两人都揭示后结算
func (action *Action) Reveal(reveal *bt.GameReveal) (*types.Receipt, error) {
	game, err := readGame(action.db, reveal.Game)
	if err != nil {
		return nil, err
	}
	if game.GetState() != bt.GameStateStarted {
		return nil, bt.ErrInvalidStateForOperation
	}
	role, ok := game.RoleOf(action.fromaddr)
	if !ok {
		return nil, types.ErrUnauthorized
	}
	choice := bt.Choice(reveal.Choice)
	switch role {
	case bt.RoleFirst:
		if game.FirstChoice != 0 {
			return nil, bt.ErrAlreadyRevealed
		}
		if err := bt.VerifyCommitment(game.FirstCommitment, reveal.Salt, choice); err != nil {
			return nil, err
		}
		game.FirstChoice = int32(choice)
		game.FirstSalt = common.CopyBytes(reveal.Salt)
	case bt.RoleSecond:
		if game.SecondChoice != 0 {
			return nil, bt.ErrAlreadyRevealed
		}
		if err := bt.VerifyCommitment(game.SecondCommitment, reveal.Salt, choice); err != nil {
			return nil, err
		}
		game.SecondChoice = int32(choice)
		game.SecondSalt = common.CopyBytes(reveal.Salt)
	}
	receipt := action.transition(bt.TyLogBpsReveal, game, bt.GameStateStarted, nil)
	if game.FirstChoice == 0 || game.SecondChoice == 0 {
		return receipt, nil
	}
	r, err := action.settle(game)
	if err != nil {
		return nil, err
	}
	return types.MergeReceipt(receipt, r), nil
}

// CancelGame 无人加入时先手取消, 押注全额退回
func (action *Action) CancelGame(cancel *bt.GameCancel) (*types.Receipt, error) {
	game, err := readGame(action.db, cancel.Game)
	if err != nil {
		return nil, err
	}
	if action.fromaddr != game.FirstPlayer {
		return nil, types.ErrUnauthorized
	}
	if game.GetState() != bt.GameStateCreated {
		return nil, bt.ErrInvalidStateForOperation
	}
	escrow, err := bt.EscrowAddress(bt.RoleFirst, game.Address)
	if err != nil {
		return nil, err
	}
	receipt, refund, err := action.escrowdb.CloseEscrow(escrow, game.FirstPlayer, action.blocktime)
	if err != nil {
		glog.Error("CancelGame closeEscrow", "game", game.Address, "err", err)
		return nil, err
	}
	game.FirstPayout = refund
	game.ClosedAt = action.blocktime
	return action.transition(bt.TyLogBpsCancel, game, bt.GameStateCancelled, receipt), nil
}

// AdminCloseStaleGame 超过揭示期限后管理员按弃权规则结算
func (action *Action) AdminCloseStaleGame(c *bt.GameAdminClose) (*types.Receipt, error) {
	if action.cfg.Admin == "" || action.fromaddr != action.cfg.Admin {
		return nil, types.ErrUnauthorized
	}
	game, err := readGame(action.db, c.Game)
	if err != nil {
		return nil, err
	}
	if game.GetState() != bt.GameStateStarted {
		return nil, bt.ErrInvalidStateForOperation
	}
	if action.blocktime-game.StartedAt <= action.cfg.RevealWindow {
		glog.Debug("AdminCloseStaleGame", "game", game.Address, "startedAt", game.StartedAt, "now", action.blocktime)
		return nil, bt.ErrNotYetExpired
	}
	return action.settle(game)
}
