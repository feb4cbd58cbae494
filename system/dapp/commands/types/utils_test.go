// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"path/filepath"
	"testing"

	"github.com/33cn/bps/types"
	"github.com/33cn/bps/wallet"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd(t *testing.T, args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd)
	cmd.Flags().String("amount", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestGetAmountValue(t *testing.T) {
	amount, err := GetAmountValue(newCmd(t, "--amount", "1.5"), "amount", CoinsDecimals)
	require.NoError(t, err)
	assert.Equal(t, int64(150000000), amount)

	_, err = GetAmountValue(newCmd(t, "--amount", "abc"), "amount", 2)
	assert.ErrorIs(t, err, types.ErrAmount)
	_, err = GetAmountValue(newCmd(t, "--amount", "0.001"), "amount", 2)
	assert.ErrorIs(t, err, types.ErrAmount)
}

func TestLoadWallet(t *testing.T) {
	w, err := wallet.New()
	require.NoError(t, err)

	loaded, err := LoadWallet(newCmd(t, "--key", w.PrivKeyHex()))
	require.NoError(t, err)
	assert.Equal(t, w.Address(), loaded.Address())

	keyfile := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, w.Save(keyfile, "123456"))
	loaded, err = LoadWallet(newCmd(t, "--keyfile", keyfile, "--password", "123456"))
	require.NoError(t, err)
	assert.Equal(t, w.Address(), loaded.Address())

	_, err = LoadWallet(newCmd(t, "--keyfile", keyfile, "--password", "bad"))
	assert.Equal(t, wallet.ErrInputPassword, err)
	_, err = LoadWallet(newCmd(t))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, sub, err := LoadConfig(newCmd(t))
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.NotEmpty(t, sub.Exec["bps"])

	_, _, err = LoadConfig(newCmd(t, "--conf", filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	acc := DecodeAccount("addr", &types.Account{Balance: 123456789})
	assert.Equal(t, "1.23456789", acc.Balance)
	assert.Equal(t, "0.00000000", acc.Frozen)

	tacc := DecodeTokenAccount(&types.TokenAccount{Addr: "a", Owner: "o", Mint: "m", Balance: 1050}, 2)
	assert.Equal(t, "10.50", tacc.Balance)

	tx := &types.Transaction{Execer: []byte("bps")}
	r := DecodeTxResult([]byte{1, 2}, &types.TxResult{
		Height:      3,
		Tx:          tx,
		Receiptdate: &types.ReceiptData{Ty: types.ExecErr, Logs: []*types.ReceiptLog{{Ty: types.TyLogErr, Log: []byte("E")}}},
		Error:       "ErrX",
	})
	assert.Equal(t, "0x0102", r.Hash)
	assert.Equal(t, "bps", r.Execer)
	assert.Equal(t, "ErrX", r.Error)
	require.Len(t, r.Logs, 1)
	assert.Equal(t, "0x45", r.Logs[0].RawLog)
}
