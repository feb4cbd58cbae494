// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	"github.com/33cn/bps/types"
	"github.com/spf13/cobra"
)

// GameResult 游戏的显示格式
type GameResult struct {
	*bt.Game
	StateName  string `json:"stateName"`
	ResultName string `json:"resultName,omitempty"`
	FirstMove  string `json:"firstMove,omitempty"`
	SecondMove string `json:"secondMove,omitempty"`
}

// DecodeGame 状态和结果转为名称
func DecodeGame(game *bt.Game) *GameResult {
	result := &GameResult{Game: game, StateName: game.GetState().String()}
	if game.GetResult() != bt.ResultUnknown {
		result.ResultName = game.GetResult().String()
	}
	if c := bt.Choice(game.FirstChoice); c.Valid() {
		result.FirstMove = c.String()
	}
	if c := bt.Choice(game.SecondChoice); c.Valid() {
		result.SecondMove = c.String()
	}
	return result
}

// GetGameCmd get a game
func GetGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Get a game by address, or by creator and game id",
		Run:   getGame,
	}
	cmd.Flags().StringP("game", "g", "", "game address")
	cmd.Flags().StringP("creator", "f", "", "first player address")
	cmd.Flags().StringP("game_id", "i", "", "game id")
	return cmd
}

func getGame(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	creator, _ := cmd.Flags().GetString("creator")
	gameID, _ := cmd.Flags().GetString("game_id")
	var msg types.Message
	var err error
	if game != "" {
		msg, err = commandtypes.Query(cmd, bt.BpsX, bt.FuncNameGetGame, &types.ReqString{Data: game})
	} else {
		msg, err = commandtypes.Query(cmd, bt.BpsX, bt.FuncNameGetGameByID, &bt.ReqGameByID{FirstPlayer: creator, GameId: gameID})
	}
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(DecodeGame(msg.(*bt.Game)))
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("state", "t", "created", "game state: created, started, resolved, cancelled")
	cmd.Flags().StringP("addr", "a", "", "player address")
}

// ListGamesCmd list games
func ListGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by state and player",
		Run:   listGames,
	}
	addListFlags(cmd)
	cmd.Flags().Int64P("index", "x", 0, "index of the last game of the previous page")
	cmd.Flags().Int32P("count", "c", 0, "page size, the configured default when 0")
	cmd.Flags().Int32P("direction", "d", types.ListDESC, "0: newest first, 1: oldest first")
	return cmd
}

func listGames(cmd *cobra.Command, args []string) {
	stateStr, _ := cmd.Flags().GetString("state")
	addr, _ := cmd.Flags().GetString("addr")
	index, _ := cmd.Flags().GetInt64("index")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	state, err := bt.ParseGameState(stateStr)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	req := &bt.ReqGameList{State: int32(state), Addr: addr, Index: index, Count: count, Direction: direction}
	msg, err := commandtypes.Query(cmd, bt.BpsX, bt.FuncNameListGames, req)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	games := make([]*GameResult, 0)
	for _, g := range msg.(*bt.ReplyGameList).Games {
		games = append(games, DecodeGame(g))
	}
	commandtypes.PrintJSON(games)
}

// CountGamesCmd count games
func CountGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count games by state and player",
		Run:   countGames,
	}
	addListFlags(cmd)
	return cmd
}

func countGames(cmd *cobra.Command, args []string) {
	stateStr, _ := cmd.Flags().GetString("state")
	addr, _ := cmd.Flags().GetString("addr")
	state, err := bt.ParseGameState(stateStr)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	msg, err := commandtypes.Query(cmd, bt.BpsX, bt.FuncNameCountGames, &bt.ReqGameCount{State: int32(state), Addr: addr})
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(msg)
}

// GetEscrowCmd get escrow of a player
func GetEscrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "Get the escrow account of a player",
		Run:   getEscrow,
	}
	cmd.Flags().StringP("game", "g", "", "game address")
	cmd.MarkFlagRequired("game")
	cmd.Flags().StringP("role", "r", "first", "first or second")
	return cmd
}

func getEscrow(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	roleStr, _ := cmd.Flags().GetString("role")
	role := bt.RoleFirst
	switch roleStr {
	case "first":
	case "second":
		role = bt.RoleSecond
	default:
		commandtypes.PrintErr(types.ErrInvalidParam)
		return
	}
	msg, err := commandtypes.Query(cmd, bt.BpsX, bt.FuncNameGetEscrow, &bt.ReqEscrow{Game: game, Role: int32(role)})
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(msg)
}
