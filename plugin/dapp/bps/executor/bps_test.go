// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/json"
	"testing"

	"github.com/33cn/bps/account"
	dbm "github.com/33cn/bps/common/db"
	"github.com/33cn/bps/executor"
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	"github.com/33cn/bps/types"
	"github.com/33cn/bps/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	genesisTime = int64(1600000000)
	initBalance = int64(1000)
	deposit     = int64(7)
	week        = bt.DefaultRevealWindow
)

func init() {
	Init(bt.BpsX)
}

type testEnv struct {
	t         *testing.T
	e         *executor.Executor
	a, b, c   *wallet.Wallet
	admin     *wallet.Wallet
	poor      *wallet.Wallet
	height    int64
	blocktime int64
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{t: t, blocktime: genesisTime}
	var err error
	for _, w := range []**wallet.Wallet{&env.a, &env.b, &env.c, &env.admin, &env.poor} {
		*w, err = wallet.New()
		require.NoError(t, err)
	}
	sub, err := json.Marshal(&bt.Config{
		Admin:         env.admin.Address(),
		Mint:          "BONK",
		EscrowDeposit: deposit,
	})
	require.NoError(t, err)
	state, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	local, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	env.e = executor.New(state, local, &types.ConfigSubModule{Exec: map[string][]byte{bt.BpsX: sub}})

	genesis := &types.Genesis{
		BlockTime: genesisTime,
		Mint: []*types.GenesisMint{
			{Symbol: "BONK", Authority: env.admin.Address(), Decimals: 5},
			{Symbol: "USDC", Authority: env.admin.Address(), Decimals: 6},
		},
	}
	for _, w := range []*wallet.Wallet{env.a, env.b, env.c} {
		genesis.Alloc = append(genesis.Alloc,
			&types.GenesisAlloc{Owner: w.Address(), Symbol: "BONK", Amount: initBalance},
			&types.GenesisAlloc{Owner: w.Address(), Symbol: "USDC", Amount: initBalance})
		genesis.Coins = append(genesis.Coins, &types.GenesisCoins{Addr: w.Address(), Amount: 100})
	}
	genesis.Alloc = append(genesis.Alloc, &types.GenesisAlloc{Owner: env.poor.Address(), Symbol: "BONK", Amount: initBalance})
	require.NoError(t, env.e.ExecGenesis(genesis))
	return env
}

// exec 在新区块中执行交易, 区块时间前进 elapse 秒
func (env *testEnv) exec(elapse int64, txs ...*types.Transaction) []*executor.ExecResult {
	env.height++
	env.blocktime += elapse
	results, err := env.e.ExecBlock(&types.Block{Height: env.height, BlockTime: env.blocktime, Txs: txs})
	require.NoError(env.t, err)
	return results
}

func (env *testEnv) mustExec(elapse int64, txs ...*types.Transaction) {
	for i, r := range env.exec(elapse, txs...) {
		require.NoError(env.t, r.Err, "tx %d", i)
	}
}

func (env *testEnv) execErr(elapse int64, tx *types.Transaction) error {
	return env.exec(elapse, tx)[0].Err
}

func (env *testEnv) balance(w *wallet.Wallet, symbol string) int64 {
	ata, err := account.AssociatedTokenAddress(w.Address(), account.MintAddress(symbol))
	require.NoError(env.t, err)
	acc, err := account.NewTokenDB(env.e.StateDB()).LoadTokenAccount(ata)
	if err != nil {
		return 0
	}
	return acc.Balance
}

func (env *testEnv) coins(w *wallet.Wallet) int64 {
	return account.NewCoinsAccount(env.e.StateDB()).LoadAccount(w.Address()).Balance
}

func (env *testEnv) mint(symbol string) *types.Mint {
	m, err := account.NewTokenDB(env.e.StateDB()).LoadMint(account.MintAddress(symbol))
	require.NoError(env.t, err)
	return m
}

func (env *testEnv) game(addr string) *bt.Game {
	reply, err := env.e.Query(bt.BpsX, bt.FuncNameGetGame, types.Encode(&types.ReqString{Data: addr}))
	require.NoError(env.t, err)
	return reply.(*bt.Game)
}

func (env *testEnv) escrowBalance(role bt.Role, gameAddr string) int64 {
	addr, err := bt.EscrowAddress(role, gameAddr)
	require.NoError(env.t, err)
	return account.NewEscrowDB(env.e.StateDB()).Balance(addr)
}

func commit(salt string, choice bt.Choice) []byte {
	digest := bt.Commit([]byte(salt), choice)
	return digest[:]
}

func firstMove(w *wallet.Wallet, gameID string, amount int64, salt string, choice bt.Choice) *types.Transaction {
	return w.SignTx(bt.CreateRawFirstMoveTx(&bt.FirstPlayerMove{GameId: gameID, Amount: amount, Commitment: commit(salt, choice)}))
}

func secondMove(w *wallet.Wallet, gameAddr string, salt string, choice bt.Choice) *types.Transaction {
	return w.SignTx(bt.CreateRawSecondMoveTx(&bt.SecondPlayerMove{Game: gameAddr, Commitment: commit(salt, choice)}))
}

func reveal(w *wallet.Wallet, gameAddr string, salt string, choice bt.Choice) *types.Transaction {
	return w.SignTx(bt.CreateRawRevealTx(gameAddr, []byte(salt), choice))
}

// startGame A 创建 100 的游戏, B 加入
func (env *testEnv) startGame(gameID string, first, second bt.Choice) string {
	gameAddr, err := bt.GameAddress(env.a.Address(), gameID)
	require.NoError(env.t, err)
	env.mustExec(1, firstMove(env.a, gameID, 100, "salt-a", first))
	env.mustExec(1, secondMove(env.b, gameAddr, "salt-b", second))
	return gameAddr
}

func (env *testEnv) assertConserved() {
	var total int64
	for _, w := range []*wallet.Wallet{env.a, env.b, env.c, env.poor} {
		total += env.balance(w, "BONK")
	}
	m := env.mint("BONK")
	assert.Equal(env.t, 4*initBalance, total+m.Burned+escrowTotal(env))
	assert.Equal(env.t, m.Supply, 4*initBalance-m.Burned)
}

func escrowTotal(env *testEnv) int64 {
	var total int64
	for _, state := range []bt.GameState{bt.GameStateCreated, bt.GameStateStarted} {
		reply, err := env.e.Query(bt.BpsX, bt.FuncNameListGames, types.Encode(&bt.ReqGameList{State: int32(state), Count: 100}))
		require.NoError(env.t, err)
		for _, g := range reply.(*bt.ReplyGameList).Games {
			total += env.escrowBalance(bt.RoleFirst, g.Address) + env.escrowBalance(bt.RoleSecond, g.Address)
		}
	}
	return total
}

func TestFirstPlayerMove(t *testing.T) {
	env := newTestEnv(t)
	gameAddr, err := bt.GameAddress(env.a.Address(), "g1")
	require.NoError(t, err)
	env.mustExec(1, firstMove(env.a, "g1", 100, "salt", bt.ChoiceBonk))

	game := env.game(gameAddr)
	assert.Equal(t, bt.GameStateCreated, game.GetState())
	assert.Equal(t, env.a.Address(), game.FirstPlayer)
	assert.Equal(t, "", game.SecondPlayer)
	assert.Equal(t, account.MintAddress("BONK"), game.Mint)
	assert.Equal(t, int64(100), game.AmountToMatch)
	assert.Equal(t, commit("salt", bt.ChoiceBonk), game.FirstCommitment)
	assert.Equal(t, env.blocktime, game.CreatedAt)
	assert.Equal(t, int32(0), game.FirstChoice)

	assert.Equal(t, initBalance-100, env.balance(env.a, "BONK"))
	assert.Equal(t, int64(100), env.escrowBalance(bt.RoleFirst, gameAddr))
	assert.Equal(t, int64(100)-deposit, env.coins(env.a))

	reply, err := env.e.Query(bt.BpsX, bt.FuncNameGetGameByID, types.Encode(&bt.ReqGameByID{FirstPlayer: env.a.Address(), GameId: "g1"}))
	require.NoError(t, err)
	assert.Equal(t, gameAddr, reply.(*bt.Game).Address)

	escrowAddr, err := bt.EscrowAddress(bt.RoleFirst, gameAddr)
	require.NoError(t, err)
	reply, err = env.e.Query(bt.BpsX, bt.FuncNameGetEscrow, types.Encode(&bt.ReqEscrow{Game: gameAddr, Role: int32(bt.RoleFirst)}))
	require.NoError(t, err)
	escrow := reply.(*bt.ReplyEscrow)
	assert.Equal(t, escrowAddr, escrow.Escrow.Addr)
	assert.Equal(t, bt.ProgramAddress(), escrow.Escrow.Program)
	assert.Equal(t, int64(100), escrow.Balance)
	assert.Equal(t, deposit, escrow.Escrow.Deposit)

	//同一 gameId 不能重复创建, 其他玩家可以使用
	assert.Equal(t, bt.ErrGameExists, env.execErr(1, firstMove(env.a, "g1", 100, "salt", bt.ChoiceBonk)))
	env.mustExec(1, firstMove(env.b, "g1", 100, "salt", bt.ChoiceBonk))
	env.assertConserved()
}

func TestFirstPlayerMoveErrors(t *testing.T) {
	env := newTestEnv(t)
	cases := []struct {
		move *bt.FirstPlayerMove
		err  error
	}{
		{&bt.FirstPlayerMove{GameId: "", Amount: 1, Commitment: commit("s", bt.ChoiceBonk)}, bt.ErrInvalidGameID},
		{&bt.FirstPlayerMove{GameId: "g", Amount: 1, Commitment: []byte("short")}, bt.ErrInvalidCommitment},
		{&bt.FirstPlayerMove{GameId: "g", Amount: 0, Commitment: commit("s", bt.ChoiceBonk)}, bt.ErrInvalidAmount},
		{&bt.FirstPlayerMove{GameId: "g", Amount: initBalance + 1, Commitment: commit("s", bt.ChoiceBonk)}, types.ErrInsufficientFunds},
		{&bt.FirstPlayerMove{GameId: "g", Amount: 1, Commitment: commit("s", bt.ChoiceBonk), Mint: "USDC"}, types.ErrMintMismatch},
		{&bt.FirstPlayerMove{GameId: "g", Amount: 1, Commitment: commit("s", bt.ChoiceBonk), Funding: env.a.Address()}, types.ErrNoFundingAccount},
	}
	for i, c := range cases {
		err := env.execErr(1, env.a.SignTx(bt.CreateRawFirstMoveTx(c.move)))
		assert.Equal(t, c.err, err, "case %d", i)
	}
	//c 的默认账户由 a 出资: 不是 owner
	cAta, err := account.AssociatedTokenAddress(env.c.Address(), account.MintAddress("BONK"))
	require.NoError(t, err)
	err = env.execErr(1, env.a.SignTx(bt.CreateRawFirstMoveTx(&bt.FirstPlayerMove{GameId: "g", Amount: 1, Commitment: commit("s", bt.ChoiceBonk), Funding: cAta})))
	assert.Equal(t, types.ErrUnauthorized, err)

	//失败的交易没有任何副作用
	assert.Equal(t, initBalance, env.balance(env.a, "BONK"))
	assert.Equal(t, int64(100), env.coins(env.a))
	gameAddr, _ := bt.GameAddress(env.a.Address(), "g")
	_, err = env.e.Query(bt.BpsX, bt.FuncNameGetGame, types.Encode(&types.ReqString{Data: gameAddr}))
	assert.Equal(t, bt.ErrGameNotFound, err)
}

func TestNoCoinsForDeposit(t *testing.T) {
	env := newTestEnv(t)
	//poor 只有代币, 没有支付押金的原生币
	err := env.execErr(1, firstMove(env.poor, "g", 10, "s", bt.ChoiceBonk))
	assert.Equal(t, types.ErrInsufficientFunds, err)
	assert.Equal(t, initBalance, env.balance(env.poor, "BONK"))
}
