// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/bps/common/log"
	_ "github.com/33cn/bps/plugin"
	"github.com/33cn/bps/plugin/dapp/bps/commands"
	"github.com/33cn/bps/pluginmgr"
	_ "github.com/33cn/bps/system"
	syscommands "github.com/33cn/bps/system/dapp/commands"
	commandtypes "github.com/33cn/bps/system/dapp/commands/types"
	"github.com/33cn/bps/wallet"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cfgTemplate = `
title = "cli"

[store]
driver = "leveldb"
dbPath = "%[1]s"

[localStore]
driver = "leveldb"
dbPath = "%[1]s"

[genesis]
blockTime = 1600000000

[[genesis.mint]]
symbol = "BONK"
authority = "%[2]s"
decimals = 2

[[genesis.alloc]]
owner = "%[3]s"
symbol = "BONK"
amount = 1000

[[genesis.alloc]]
owner = "%[4]s"
symbol = "BONK"
amount = 1000

[[genesis.coins]]
addr = "%[3]s"
amount = 100000000

[[genesis.coins]]
addr = "%[4]s"
amount = 100000000

[exec.sub.bps]
admin = "%[2]s"
mint = "BONK"
escrowDeposit = 1000
`

type cli struct {
	t         *testing.T
	conf      string
	admin     *wallet.Wallet
	a, b      *wallet.Wallet
	blocktime int64
}

func newCli(t *testing.T) *cli {
	log.Discard()
	dir := t.TempDir()
	c := &cli{t: t, conf: filepath.Join(dir, "bps.toml"), blocktime: 1600000100}
	for _, w := range []**wallet.Wallet{&c.admin, &c.a, &c.b} {
		var err error
		*w, err = wallet.New()
		require.NoError(t, err)
	}
	cfg := fmt.Sprintf(cfgTemplate, filepath.Join(dir, "datadir"), c.admin.Address(), c.a.Address(), c.b.Address())
	require.NoError(t, os.WriteFile(c.conf, []byte(cfg), 0600))
	return c
}

// run 每次使用新的命令树, 避免 flag 残留
func (c *cli) run(w *wallet.Wallet, args ...string) (string, string) {
	root := &cobra.Command{Use: "bps"}
	commandtypes.AddGlobalFlags(root)
	root.AddCommand(syscommands.AccountCmd(), syscommands.StatCmd(), syscommands.TxCmd())
	pluginmgr.AddCmd(root)

	var out, errOut bytes.Buffer
	commandtypes.Output = &out
	commandtypes.ErrOutput = &errOut
	defer func() {
		commandtypes.Output = os.Stdout
		commandtypes.ErrOutput = os.Stderr
	}()
	global := []string{"--conf", c.conf, "--time", fmt.Sprint(c.blocktime)}
	if w != nil {
		global = append(global, "--key", w.PrivKeyHex())
	}
	root.SetArgs(append(args, global...))
	require.NoError(c.t, root.Execute())
	return out.String(), errOut.String()
}

func (c *cli) mustRun(w *wallet.Wallet, args ...string) map[string]interface{} {
	out, errOut := c.run(w, args...)
	require.Empty(c.t, errOut, "%v", args)
	var result map[string]interface{}
	require.NoError(c.t, json.Unmarshal([]byte(out), &result), out)
	return result
}

func TestGameCommands(t *testing.T) {
	c := newCli(t)

	created := c.mustRun(c.a, "bps", "create", "--amount", "1", "--choice", "bonk")
	game := created["game"].(string)
	saltA := created["salt"].(map[string]interface{})["base58"].(string)
	assert.Equal(t, "bonk", created["choice"])
	assert.NotEmpty(t, created["txId"])

	g := c.mustRun(nil, "bps", "game", "--game", game)
	assert.Equal(t, "CreatedAndWaitingForSecondPlayer", g["stateName"])
	g = c.mustRun(nil, "bps", "game", "--creator", c.a.Address(), "--game_id", created["gameId"].(string))
	assert.Equal(t, game, g["address"])

	joined := c.mustRun(c.b, "bps", "join", "--game", game, "--choice", "paper")
	saltB := joined["salt"].(map[string]interface{})["base58"].(string)

	_, errOut := c.run(c.a, "bps", "reveal", "--game", game, "--choice", "paper", "--salt", saltA)
	assert.Contains(t, errOut, "ErrCommitmentMismatch")
	c.mustRun(c.a, "bps", "reveal", "--game", game, "--choice", "bonk", "--salt", saltA)
	c.mustRun(c.b, "bps", "reveal", "--game", game, "--choice", "paper", "--salt", saltB)

	g = c.mustRun(nil, "bps", "game", "--game", game)
	assert.Equal(t, "Resolved", g["stateName"])
	assert.Equal(t, "SecondPlayerWins", g["resultName"])
	assert.Equal(t, "bonk", g["firstMove"])
	assert.Equal(t, "paper", g["secondMove"])

	bal := c.mustRun(c.b, "account", "balance", "--mint", "BONK")
	assert.Equal(t, "10.80", bal["balance"])
	bal = c.mustRun(nil, "account", "balance", "--mint", "BONK", "--addr", c.a.Address())
	assert.Equal(t, "9.00", bal["balance"])

	count := c.mustRun(nil, "bps", "count", "--state", "resolved", "--addr", c.b.Address())
	assert.EqualValues(t, 1, count["data"])

	stat := c.mustRun(nil, "stat")
	assert.EqualValues(t, 5, stat["height"])
	mints := stat["mints"].([]interface{})
	require.Len(t, mints, 1)
	assert.Equal(t, "19.80", mints[0].(map[string]interface{})["supply"])
	assert.Equal(t, "0.20", mints[0].(map[string]interface{})["burned"])

	tx := c.mustRun(nil, "tx", "query", "--hash", created["txId"].(string))
	assert.EqualValues(t, 1, tx["height"])
	assert.Equal(t, "bps", tx["execer"])
	assert.Equal(t, c.a.Address(), tx["from"])
}

func TestCancelAndCloseCommands(t *testing.T) {
	c := newCli(t)

	created := c.mustRun(c.a, "bps", "create", "--amount", "2.5", "--choice", "scissors", "--game_id", "g1")
	game := created["game"].(string)
	_, errOut := c.run(c.b, "bps", "cancel", "--game", game)
	assert.Contains(t, errOut, "ErrUnauthorized")
	c.mustRun(c.a, "bps", "cancel", "--game", game)
	bal := c.mustRun(c.a, "account", "balance", "--mint", "BONK")
	assert.Equal(t, "10.00", bal["balance"])

	created = c.mustRun(c.a, "bps", "create", "--amount", "1", "--choice", "scissors", "--game_id", "g2")
	game = created["game"].(string)
	c.mustRun(c.b, "bps", "join", "--game", game, "--choice", "bonk")

	_, errOut = c.run(c.a, "bps", "close", "--game", game)
	assert.Contains(t, errOut, "ErrUnauthorized")
	_, errOut = c.run(c.admin, "bps", "close", "--game", game)
	assert.Contains(t, errOut, "ErrNotYetExpired")

	c.blocktime += 8 * 24 * 3600
	c.mustRun(c.admin, "bps", "close", "--game", game)
	g := c.mustRun(nil, "bps", "game", "--game", game)
	assert.Equal(t, "BothForfeit", g["resultName"])

	escrow := c.mustRun(nil, "bps", "escrow", "--game", game, "--role", "second")
	assert.Equal(t, true, escrow["escrow"].(map[string]interface{})["closed"])

	list, _ := c.run(nil, "bps", "list", "--state", "cancelled", "--addr", c.a.Address())
	var games []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(list), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "g1", games[0]["gameId"])
}

func TestBadArgs(t *testing.T) {
	c := newCli(t)

	_, errOut := c.run(c.a, "bps", "create", "--amount", "1.001", "--choice", "bonk")
	assert.Contains(t, errOut, "ErrAmount")
	_, errOut = c.run(c.a, "bps", "create", "--amount", "1", "--choice", "rock")
	assert.Contains(t, errOut, "ErrInvalidChoice")
	_, errOut = c.run(nil, "bps", "create", "--amount", "1", "--choice", "bonk")
	assert.Contains(t, errOut, "--key or --keyfile required")
	_, errOut = c.run(nil, "bps", "list", "--state", "nope")
	assert.Contains(t, errOut, "ErrInvalidState")

	out, _ := c.run(nil, "bps", "salt")
	var salt map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &salt))
	assert.NotEmpty(t, salt["base58"])
	assert.NotNil(t, commands.BpsCmd())
}
