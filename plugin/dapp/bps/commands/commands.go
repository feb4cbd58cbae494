// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands bps 游戏命令
package commands

import (
	"context"

	"github.com/33cn/bps/blockchain"
	"github.com/33cn/bps/client"
	bt "github.com/33cn/bps/plugin/dapp/bps/types"
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	tty "github.com/33cn/bps/system/dapp/token/types"
	"github.com/33cn/bps/types"
	"github.com/spf13/cobra"
)

// BpsCmd bps command
func BpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bps",
		Short: "Bonk paper scissors game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		SaltCmd(),
		CreateGameCmd(),
		JoinGameCmd(),
		RevealCmd(),
		CancelGameCmd(),
		CloseGameCmd(),
		GetGameCmd(),
		ListGamesCmd(),
		CountGamesCmd(),
		GetEscrowCmd(),
	)
	return cmd
}

// SaltCmd new salt
func SaltCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "salt",
		Short: "Generate a random salt, keep it until reveal",
		Run:   newSalt,
	}
}

func newSalt(cmd *cobra.Command, args []string) {
	salt, err := client.NewSalt()
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(salt)
}

func addMoveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("choice", "c", "", "bonk, paper or scissors")
	cmd.MarkFlagRequired("choice")
	cmd.Flags().StringP("salt", "s", "", "base58 salt, a random one when empty")
	cmd.Flags().StringP("mint", "m", "", "mint symbol or address, the configured mint when empty")
}

// CreateGameCmd first player move
func CreateGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game and commit the first move",
		Run:   createGame,
	}
	addMoveFlags(cmd)
	cmd.Flags().StringP("amount", "a", "", "amount to bet")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("game_id", "i", "", "game id, a random one when empty")
	return cmd
}

// JoinGameCmd second player move
func JoinGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a game and commit the second move",
		Run:   joinGame,
	}
	addMoveFlags(cmd)
	addGameFlag(cmd)
	return cmd
}

// RevealCmd reveal the move
func RevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed choice and salt",
		Run:   reveal,
	}
	addGameFlag(cmd)
	cmd.Flags().StringP("choice", "c", "", "bonk, paper or scissors")
	cmd.MarkFlagRequired("choice")
	cmd.Flags().StringP("salt", "s", "", "base58 salt used by the move")
	cmd.MarkFlagRequired("salt")
	return cmd
}

// CancelGameCmd cancel a game nobody joined
func CancelGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a game nobody joined, first player only",
		Run:   cancelGame,
	}
	addGameFlag(cmd)
	return cmd
}

// CloseGameCmd admin close a stale game
func CloseGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Settle a game whose reveal window expired, admin only",
		Run:   closeGame,
	}
	addGameFlag(cmd)
	return cmd
}

func addGameFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("game", "g", "", "game address")
	cmd.MarkFlagRequired("game")
}

// session 一次命令使用的账本和客户端
type session struct {
	chain  *blockchain.BlockChain
	client *client.Client
	mint   *types.Mint
}

func openSession(cmd *cobra.Command) (*session, error) {
	w, err := commandtypes.LoadWallet(cmd)
	if err != nil {
		return nil, err
	}
	_, sub, err := commandtypes.LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := bt.ParseConfig(sub.Exec[bt.BpsX])
	if err != nil {
		return nil, err
	}
	mint, _ := cmd.Flags().GetString("mint")
	if mint == "" {
		mint = cfg.Mint
	}
	chain, err := commandtypes.OpenChain(cmd)
	if err != nil {
		return nil, err
	}
	s := &session{
		chain:  chain,
		client: client.New(chain, w, client.WithMint(mint), client.WithAdmin(cfg.Admin)),
	}
	if mint != "" {
		msg, err := chain.Query(types.TokenX, tty.FuncNameGetMint, &types.ReqString{Data: mint})
		if err != nil {
			chain.Close()
			return nil, err
		}
		s.mint = msg.(*types.Mint)
	}
	return s, nil
}

func (s *session) Close() {
	s.chain.Close()
}

func getMove(cmd *cobra.Command) (bt.Choice, *client.SaltResult, error) {
	choiceStr, _ := cmd.Flags().GetString("choice")
	saltStr, _ := cmd.Flags().GetString("salt")
	choice, err := bt.ParseChoice(choiceStr)
	if err != nil {
		return bt.ChoiceNone, nil, err
	}
	if saltStr == "" {
		salt, err := client.NewSalt()
		return choice, salt, err
	}
	salt, err := client.ParseSalt(saltStr)
	return choice, salt, err
}

type moveResult struct {
	*client.MoveResult
	Choice string `json:"choice"`
}

func createGame(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetString("game_id")
	choice, salt, err := getMove(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	s, err := openSession(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	defer s.Close()
	if s.mint == nil {
		commandtypes.PrintErr(types.ErrMintNotFound)
		return
	}
	amount, err := commandtypes.GetAmountValue(cmd, "amount", s.mint.Decimals)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	result, err := s.client.FirstPlayerMove(context.Background(), gameID, amount, choice, salt)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&moveResult{MoveResult: result, Choice: choice.String()})
}

func joinGame(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	choice, salt, err := getMove(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	s, err := openSession(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	defer s.Close()
	result, err := s.client.SecondPlayerMove(context.Background(), game, choice, salt)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&moveResult{MoveResult: result, Choice: choice.String()})
}

func reveal(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	choice, salt, err := getMove(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	s, err := openSession(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	defer s.Close()
	txID, err := s.client.Reveal(context.Background(), game, choice, salt)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&commandtypes.SendResult{TxID: txID})
}

func cancelGame(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	s, err := openSession(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	defer s.Close()
	txID, err := s.client.CancelGame(context.Background(), game)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&commandtypes.SendResult{TxID: txID})
}

func closeGame(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	s, err := openSession(cmd)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	defer s.Close()
	if !s.client.IsAdmin() {
		commandtypes.PrintErr(types.ErrUnauthorized)
		return
	}
	txID, err := s.client.AdminCloseStaleGame(context.Background(), game)
	if err != nil {
		commandtypes.PrintErr(err)
		return
	}
	commandtypes.PrintJSON(&commandtypes.SendResult{TxID: txID})
}
