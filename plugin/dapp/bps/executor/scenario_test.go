// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/bps/account"
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
	"github.com/33cn/bps/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperBeatsBonk(t *testing.T) {
	env := newTestEnv(t)
	gameAddr := env.startGame("g1", bt.ChoiceBonk, bt.ChoicePaper)
	game := env.game(gameAddr)
	assert.Equal(t, bt.GameStateStarted, game.GetState())
	assert.Equal(t, env.b.Address(), game.SecondPlayer)
	assert.Equal(t, env.blocktime, game.StartedAt)
	assert.Equal(t, initBalance-100, env.balance(env.b, "BONK"))
	assert.Equal(t, int64(100), env.escrowBalance(bt.RoleSecond, gameAddr))
	env.assertConserved()

	env.mustExec(1, reveal(env.a, gameAddr, "salt-a", bt.ChoiceBonk))
	game = env.game(gameAddr)
	assert.Equal(t, bt.GameStateStarted, game.GetState())
	assert.Equal(t, int32(bt.ChoiceBonk), game.FirstChoice)
	assert.Equal(t, []byte("salt-a"), game.FirstSalt)

	env.mustExec(1, reveal(env.b, gameAddr, "salt-b", bt.ChoicePaper))
	game = env.game(gameAddr)
	assert.Equal(t, bt.GameStateResolved, game.GetState())
	assert.Equal(t, bt.ResultSecondPlayerWins, game.GetResult())
	assert.Equal(t, int64(180), game.SecondPayout)
	assert.Equal(t, int64(0), game.FirstPayout)
	assert.Equal(t, int64(20), game.Burned)
	assert.Equal(t, env.blocktime, game.ClosedAt)

	assert.Equal(t, initBalance-100, env.balance(env.a, "BONK"))
	assert.Equal(t, initBalance+80, env.balance(env.b, "BONK"))
	assert.Equal(t, int64(20), env.mint("BONK").Burned)
	assert.Equal(t, int64(0), env.escrowBalance(bt.RoleFirst, gameAddr))
	assert.Equal(t, int64(0), env.escrowBalance(bt.RoleSecond, gameAddr))
	//押金退回
	assert.Equal(t, int64(100), env.coins(env.a))
	assert.Equal(t, int64(100), env.coins(env.b))
	env.assertConserved()

	//终态不能再操作
	assert.Equal(t, bt.ErrInvalidStateForOperation, env.execErr(1, reveal(env.a, gameAddr, "salt-a", bt.ChoiceBonk)))
	assert.Equal(t, bt.ErrGameAlreadyStarted, env.execErr(1, secondMove(env.c, gameAddr, "s", bt.ChoiceBonk)))
	assert.Equal(t, bt.ErrInvalidStateForOperation, env.execErr(week*2, env.admin.SignTx(bt.CreateRawAdminCloseTx(gameAddr))))
}

func TestCancelGame(t *testing.T) {
	env := newTestEnv(t)
	gameAddr, err := bt.GameAddress(env.a.Address(), "g1")
	require.NoError(t, err)
	env.mustExec(1, firstMove(env.a, "g1", 100, "salt-a", bt.ChoiceBonk))

	assert.Equal(t, types.ErrUnauthorized, env.execErr(1, env.b.SignTx(bt.CreateRawCancelTx(gameAddr))))
	env.mustExec(1, env.a.SignTx(bt.CreateRawCancelTx(gameAddr)))

	game := env.game(gameAddr)
	assert.Equal(t, bt.GameStateCancelled, game.GetState())
	assert.Equal(t, int64(100), game.FirstPayout)
	assert.Equal(t, initBalance, env.balance(env.a, "BONK"))
	assert.Equal(t, int64(100), env.coins(env.a))
	assert.Equal(t, int64(0), env.mint("BONK").Burned)

	//托管账户已经关闭
	escrowAddr, err := bt.EscrowAddress(bt.RoleFirst, gameAddr)
	require.NoError(t, err)
	escrowdb := account.NewEscrowDB(env.e.StateDB())
	escrow, err := escrowdb.LoadEscrow(escrowAddr)
	require.NoError(t, err)
	assert.True(t, escrow.Closed)
	_, err = escrowdb.Token().LoadTokenAccount(escrowAddr)
	assert.Equal(t, types.ErrNotFound, err)

	assert.Equal(t, bt.ErrInvalidStateForOperation, env.execErr(1, env.a.SignTx(bt.CreateRawCancelTx(gameAddr))))
	assert.Equal(t, bt.ErrInvalidStateForOperation, env.execErr(1, secondMove(env.b, gameAddr, "s", bt.ChoiceBonk)))
	assert.Equal(t, bt.ErrGameExists, env.execErr(1, firstMove(env.a, "g1", 100, "salt-a", bt.ChoiceBonk)))
	env.assertConserved()
}

func TestCancelAfterStart(t *testing.T) {
	env := newTestEnv(t)
	gameAddr := env.startGame("g1", bt.ChoiceBonk, bt.ChoicePaper)
	assert.Equal(t, bt.ErrInvalidStateForOperation, env.execErr(1, env.a.SignTx(bt.CreateRawCancelTx(gameAddr))))
	assert.Equal(t, bt.GameStateStarted, env.game(gameAddr).GetState())
}

func TestAdminCloseForfeit(t *testing.T) {
	env := newTestEnv(t)
	gameAddr := env.startGame("g1", bt.ChoiceScissors, bt.ChoiceBonk)
	startedAt := env.game(gameAddr).StartedAt
	env.mustExec(1, reveal(env.a, gameAddr, "salt-a", bt.ChoiceScissors))

	env.blocktime = startedAt + 8*24*3600 - 1
	assert.Equal(t, types.ErrUnauthorized, env.execErr(1, env.a.SignTx(bt.CreateRawAdminCloseTx(gameAddr))))
	env.mustExec(1, env.admin.SignTx(bt.CreateRawAdminCloseTx(gameAddr)))

	game := env.game(gameAddr)
	assert.Equal(t, bt.GameStateResolved, game.GetState())
	assert.Equal(t, bt.ResultSecondPlayerForfeit, game.GetResult())
	assert.Equal(t, int64(180), game.FirstPayout)
	assert.Equal(t, int64(20), game.Burned)
	assert.Equal(t, initBalance+80, env.balance(env.a, "BONK"))
	assert.Equal(t, initBalance-100, env.balance(env.b, "BONK"))
	env.assertConserved()
}

func TestAdminCloseBoundary(t *testing.T) {
	env := newTestEnv(t)
	gameAddr := env.startGame("g1", bt.ChoiceBonk, bt.ChoicePaper)
	startedAt := env.game(gameAddr).StartedAt

	env.blocktime = startedAt + week - 1
	assert.Equal(t, bt.ErrNotYetExpired, env.execErr(1, env.admin.SignTx(bt.CreateRawAdminCloseTx(gameAddr))))
	assert.Equal(t, startedAt+week, env.blocktime)
	env.mustExec(1, env.admin.SignTx(bt.CreateRawAdminCloseTx(gameAddr)))
	assert.Equal(t, startedAt+week+1, env.blocktime)

	game := env.game(gameAddr)
	assert.Equal(t, bt.ResultBothForfeit, game.GetResult())
	//都没有揭示: 各自承担一半销毁
	assert.Equal(t, int64(20), game.Burned)
	assert.Equal(t, int64(90), game.FirstPayout)
	assert.Equal(t, int64(90), game.SecondPayout)
	assert.Equal(t, initBalance-10, env.balance(env.a, "BONK"))
	assert.Equal(t, initBalance-10, env.balance(env.b, "BONK"))
	env.assertConserved()
}

func TestAdminCloseNotStarted(t *testing.T) {
	env := newTestEnv(t)
	gameAddr, err := bt.GameAddress(env.a.Address(), "g1")
	require.NoError(t, err)
	env.mustExec(1, firstMove(env.a, "g1", 100, "salt-a", bt.ChoiceBonk))
	assert.Equal(t, bt.ErrInvalidStateForOperation, env.execErr(week*2, env.admin.SignTx(bt.CreateRawAdminCloseTx(gameAddr))))
	assert.Equal(t, bt.ErrGameNotFound, env.execErr(1, env.admin.SignTx(bt.CreateRawAdminCloseTx("nosuch"))))
}

func TestLateRevealBeforeReap(t *testing.T) {
	env := newTestEnv(t)
	gameAddr := env.startGame("g1", bt.ChoiceBonk, bt.ChoiceBonk)
	env.mustExec(week*3, reveal(env.a, gameAddr, "salt-a", bt.ChoiceBonk))
	env.mustExec(1, reveal(env.b, gameAddr, "salt-b", bt.ChoiceBonk))

	game := env.game(gameAddr)
	assert.Equal(t, bt.ResultDraw, game.GetResult())
	assert.Equal(t, int64(0), game.Burned)
	assert.Equal(t, int64(100), game.FirstPayout)
	assert.Equal(t, int64(100), game.SecondPayout)
	assert.Equal(t, initBalance, env.balance(env.a, "BONK"))
	assert.Equal(t, initBalance, env.balance(env.b, "BONK"))
	env.assertConserved()
}

func TestSecondPlayerMintMismatch(t *testing.T) {
	env := newTestEnv(t)
	gameAddr, err := bt.GameAddress(env.a.Address(), "g1")
	require.NoError(t, err)
	env.mustExec(1, firstMove(env.a, "g1", 100, "salt-a", bt.ChoiceBonk))

	move := &bt.SecondPlayerMove{Game: gameAddr, Commitment: commit("salt-b", bt.ChoicePaper), Mint: "USDC"}
	assert.Equal(t, types.ErrMintMismatch, env.execErr(1, env.b.SignTx(bt.CreateRawSecondMoveTx(move))))

	usdc, err := account.AssociatedTokenAddress(env.b.Address(), account.MintAddress("USDC"))
	require.NoError(t, err)
	move = &bt.SecondPlayerMove{Game: gameAddr, Commitment: commit("salt-b", bt.ChoicePaper), Funding: usdc}
	assert.Equal(t, types.ErrMintMismatch, env.execErr(1, env.b.SignTx(bt.CreateRawSecondMoveTx(move))))

	game := env.game(gameAddr)
	assert.Equal(t, bt.GameStateCreated, game.GetState())
	assert.Equal(t, "", game.SecondPlayer)
	assert.Equal(t, initBalance, env.balance(env.b, "BONK"))
	assert.Equal(t, initBalance, env.balance(env.b, "USDC"))
	assert.Equal(t, int64(100), env.coins(env.b))
	_, err = account.NewEscrowDB(env.e.StateDB()).LoadEscrow(mustEscrow(t, bt.RoleSecond, gameAddr))
	assert.Equal(t, types.ErrNotFound, err)
}

func mustEscrow(t *testing.T, role bt.Role, gameAddr string) string {
	addr, err := bt.EscrowAddress(role, gameAddr)
	require.NoError(t, err)
	return addr
}

func TestSecondPlayerMoveErrors(t *testing.T) {
	env := newTestEnv(t)
	gameAddr, err := bt.GameAddress(env.a.Address(), "g1")
	require.NoError(t, err)
	env.mustExec(1, firstMove(env.a, "g1", 100, "salt-a", bt.ChoiceBonk))

	assert.Equal(t, types.ErrUnauthorized, env.execErr(1, secondMove(env.a, gameAddr, "s", bt.ChoiceBonk)))
	assert.Equal(t, bt.ErrGameNotFound, env.execErr(1, secondMove(env.b, "nosuch", "s", bt.ChoiceBonk)))
	bad := &bt.SecondPlayerMove{Game: gameAddr, Commitment: []byte{1, 2, 3}}
	assert.Equal(t, bt.ErrInvalidCommitment, env.execErr(1, env.b.SignTx(bt.CreateRawSecondMoveTx(bad))))
	assert.Equal(t, bt.GameStateCreated, env.game(gameAddr).GetState())
}

func TestJoinRaceInOneBlock(t *testing.T) {
	env := newTestEnv(t)
	gameAddr, err := bt.GameAddress(env.a.Address(), "g1")
	require.NoError(t, err)
	env.mustExec(1, firstMove(env.a, "g1", 100, "salt-a", bt.ChoiceBonk))

	results := env.exec(1, secondMove(env.b, gameAddr, "salt-b", bt.ChoicePaper), secondMove(env.c, gameAddr, "salt-c", bt.ChoiceScissors))
	assert.NoError(t, results[0].Err)
	assert.Equal(t, bt.ErrGameAlreadyStarted, results[1].Err)
	assert.Equal(t, env.b.Address(), env.game(gameAddr).SecondPlayer)
	assert.Equal(t, initBalance, env.balance(env.c, "BONK"))
	assert.Equal(t, int64(100), env.coins(env.c))
	env.assertConserved()
}

func TestRevealErrors(t *testing.T) {
	env := newTestEnv(t)
	gameAddr, err := bt.GameAddress(env.a.Address(), "g1")
	require.NoError(t, err)
	env.mustExec(1, firstMove(env.a, "g1", 100, "salt-a", bt.ChoiceBonk))
	assert.Equal(t, bt.ErrInvalidStateForOperation, env.execErr(1, reveal(env.a, gameAddr, "salt-a", bt.ChoiceBonk)))
	env.mustExec(1, secondMove(env.b, gameAddr, "salt-b", bt.ChoicePaper))

	assert.Equal(t, types.ErrUnauthorized, env.execErr(1, reveal(env.c, gameAddr, "salt-a", bt.ChoiceBonk)))
	assert.Equal(t, bt.ErrCommitmentMismatch, env.execErr(1, reveal(env.a, gameAddr, "salt-a", bt.ChoicePaper)))
	assert.Equal(t, bt.ErrCommitmentMismatch, env.execErr(1, reveal(env.a, gameAddr, "salt-x", bt.ChoiceBonk)))
	assert.Equal(t, bt.ErrInvalidChoice, env.execErr(1, reveal(env.a, gameAddr, "salt-a", bt.Choice(9))))
	assert.Equal(t, bt.ErrInvalidSalt, env.execErr(1, reveal(env.a, gameAddr, "", bt.ChoiceBonk)))
	game := env.game(gameAddr)
	assert.Equal(t, int32(0), game.FirstChoice)
	assert.Nil(t, game.FirstSalt)

	//不匹配之后仍然可以用正确的 salt 揭示
	tx := reveal(env.a, gameAddr, "salt-a", bt.ChoiceBonk)
	env.mustExec(1, tx)
	assert.Equal(t, types.ErrTxDup, env.execErr(1, tx))
	assert.Equal(t, bt.ErrAlreadyRevealed, env.execErr(1, reveal(env.a, gameAddr, "salt-a", bt.ChoiceBonk)))
	assert.Equal(t, bt.GameStateStarted, env.game(gameAddr).GetState())
}

func TestRevealIdempotent(t *testing.T) {
	env := newTestEnv(t)
	gameAddr := env.startGame("g1", bt.ChoiceScissors, bt.ChoicePaper)
	revealA := reveal(env.a, gameAddr, "salt-a", bt.ChoiceScissors)
	revealB := reveal(env.b, gameAddr, "salt-b", bt.ChoicePaper)
	env.mustExec(1, revealA, revealB)
	settled := env.game(gameAddr)
	balanceA := env.balance(env.a, "BONK")

	results := env.exec(1, revealA, revealB)
	assert.Equal(t, types.ErrTxDup, results[0].Err)
	assert.Equal(t, types.ErrTxDup, results[1].Err)
	results = env.exec(1, reveal(env.a, gameAddr, "salt-a", bt.ChoiceScissors))
	assert.Equal(t, bt.ErrInvalidStateForOperation, results[0].Err)

	assert.Equal(t, settled, env.game(gameAddr))
	assert.Equal(t, balanceA, env.balance(env.a, "BONK"))
	assert.Equal(t, initBalance+80, balanceA)
}

func TestRevealOrderInvariance(t *testing.T) {
	outcome := func(firstRevealsFirst bool) (*bt.Game, int64, int64) {
		env := newTestEnv(t)
		gameAddr := env.startGame("g1", bt.ChoicePaper, bt.ChoiceScissors)
		ra := reveal(env.a, gameAddr, "salt-a", bt.ChoicePaper)
		rb := reveal(env.b, gameAddr, "salt-b", bt.ChoiceScissors)
		if firstRevealsFirst {
			env.mustExec(1, ra)
			env.mustExec(1, rb)
		} else {
			env.mustExec(1, rb)
			env.mustExec(1, ra)
		}
		return env.game(gameAddr), env.balance(env.a, "BONK"), env.balance(env.b, "BONK")
	}
	g1, a1, b1 := outcome(true)
	g2, a2, b2 := outcome(false)
	assert.Equal(t, bt.ResultSecondPlayerWins, g1.GetResult())
	assert.Equal(t, g1.GetResult(), g2.GetResult())
	assert.Equal(t, g1.FirstPayout, g2.FirstPayout)
	assert.Equal(t, g1.SecondPayout, g2.SecondPayout)
	assert.Equal(t, g1.Burned, g2.Burned)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestOddPot(t *testing.T) {
	env := newTestEnv(t)
	gameAddr, err := bt.GameAddress(env.a.Address(), "odd")
	require.NoError(t, err)
	env.mustExec(1, firstMove(env.a, "odd", 7, "salt-a", bt.ChoiceBonk))
	env.mustExec(1, secondMove(env.b, gameAddr, "salt-b", bt.ChoiceScissors))
	env.mustExec(1, reveal(env.a, gameAddr, "salt-a", bt.ChoiceBonk), reveal(env.b, gameAddr, "salt-b", bt.ChoiceScissors))
	game := env.game(gameAddr)
	assert.Equal(t, bt.ResultFirstPlayerWins, game.GetResult())
	assert.Equal(t, int64(1), game.Burned)
	assert.Equal(t, int64(13), game.FirstPayout)
	env.assertConserved()
}

func TestListAndCountGames(t *testing.T) {
	env := newTestEnv(t)
	started := env.startGame("g1", bt.ChoiceBonk, bt.ChoicePaper)
	env.mustExec(1, firstMove(env.a, "g2", 10, "s", bt.ChoiceBonk))
	env.mustExec(1, firstMove(env.c, "g3", 10, "s", bt.ChoiceBonk))

	count := func(state bt.GameState, w *wallet.Wallet) int64 {
		req := &bt.ReqGameCount{State: int32(state)}
		if w != nil {
			req.Addr = w.Address()
		}
		reply, err := env.e.Query(bt.BpsX, bt.FuncNameCountGames, types.Encode(req))
		require.NoError(t, err)
		return reply.(*types.Int64).Data
	}
	assert.Equal(t, int64(2), count(bt.GameStateCreated, nil))
	assert.Equal(t, int64(1), count(bt.GameStateCreated, env.a))
	assert.Equal(t, int64(1), count(bt.GameStateStarted, nil))
	assert.Equal(t, int64(1), count(bt.GameStateStarted, env.b))
	assert.Equal(t, int64(0), count(bt.GameStateStarted, env.c))

	list := func(req *bt.ReqGameList) []*bt.Game {
		reply, err := env.e.Query(bt.BpsX, bt.FuncNameListGames, types.Encode(req))
		require.NoError(t, err)
		return reply.(*bt.ReplyGameList).Games
	}
	games := list(&bt.ReqGameList{State: int32(bt.GameStateCreated), Direction: types.ListASC})
	require.Len(t, games, 2)
	assert.Equal(t, "g2", games[0].GameId)
	assert.Equal(t, "g3", games[1].GameId)
	games = list(&bt.ReqGameList{State: int32(bt.GameStateCreated), Count: 1})
	require.Len(t, games, 1)
	assert.Equal(t, "g3", games[0].GameId)
	games = list(&bt.ReqGameList{State: int32(bt.GameStateCreated), Count: 1, Index: games[0].Index})
	require.Len(t, games, 1)
	assert.Equal(t, "g2", games[0].GameId)
	assert.Empty(t, list(&bt.ReqGameList{State: int32(bt.GameStateResolved)}))

	env.mustExec(1, reveal(env.a, started, "salt-a", bt.ChoiceBonk), reveal(env.b, started, "salt-b", bt.ChoicePaper))
	assert.Equal(t, int64(0), count(bt.GameStateStarted, nil))
	assert.Equal(t, int64(0), count(bt.GameStateStarted, env.a))
	assert.Equal(t, int64(1), count(bt.GameStateResolved, env.a))
	assert.Equal(t, int64(1), count(bt.GameStateResolved, env.b))
	games = list(&bt.ReqGameList{State: int32(bt.GameStateResolved), Addr: env.b.Address()})
	require.Len(t, games, 1)
	assert.Equal(t, started, games[0].Address)

	_, err := env.e.Query(bt.BpsX, bt.FuncNameCountGames, types.Encode(&bt.ReqGameCount{State: 9}))
	assert.Equal(t, bt.ErrInvalidState, err)
	_, err = env.e.Query(bt.BpsX, bt.FuncNameListGames, types.Encode(&bt.ReqGameList{State: 1, Direction: 5}))
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestComputeSplit(t *testing.T) {
	s := ComputeSplit(bt.ResultFirstPlayerWins, 100)
	assert.Equal(t, int64(20), s.SecondBurn)
	assert.Equal(t, bt.RoleFirst, s.SecondTo)
	assert.Equal(t, bt.RoleFirst, s.FirstTo)
	s = ComputeSplit(bt.ResultFirstPlayerForfeit, 100)
	assert.Equal(t, int64(20), s.FirstBurn)
	assert.Equal(t, bt.RoleSecond, s.FirstTo)
	s = ComputeSplit(bt.ResultDraw, 100)
	assert.Equal(t, int64(0), s.Burned())
	s = ComputeSplit(bt.ResultBothForfeit, 15)
	assert.Equal(t, int64(2), s.FirstBurn)
	assert.Equal(t, int64(1), s.SecondBurn)

	assert.Equal(t, bt.ResultDraw, Outcome(bt.ChoicePaper, bt.ChoicePaper))
	assert.Equal(t, bt.ResultFirstPlayerWins, Outcome(bt.ChoiceScissors, bt.ChoicePaper))
	assert.Equal(t, bt.ResultFirstPlayerForfeit, Outcome(bt.ChoiceNone, bt.ChoicePaper))
	assert.Equal(t, bt.ResultBothForfeit, Outcome(bt.ChoiceNone, bt.ChoiceNone))
}
