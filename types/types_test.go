// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/bps/common/crypto"
	"github.com/33cn/bps/common/crypto/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	esc := &Escrow{Addr: "e", Game: "g", Role: "first", Amount: 100, Closed: true}
	var esc2 Escrow
	require.NoError(t, Decode(Encode(esc), &esc2))
	assert.Equal(t, esc.Addr, esc2.Addr)
	assert.Equal(t, esc.Amount, esc2.Amount)
	assert.True(t, esc2.Closed)

	receipt := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("k"), Value: []byte("v")}}}
	var receipt2 Receipt
	require.NoError(t, Decode(Encode(receipt), &receipt2))
	assert.Equal(t, []byte("v"), receipt2.KV[0].Value)
	assert.Error(t, Decode([]byte{0xff, 0xff}, &receipt2))
}

func TestTxSign(t *testing.T) {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	tx := &Transaction{Execer: []byte("bps"), Payload: []byte("payload"), Nonce: 1}
	hash := tx.Hash()
	tx.Sign(SECP256K1, priv)
	assert.True(t, tx.CheckSign())
	assert.NoError(t, tx.Check())
	assert.Equal(t, hash, tx.Hash())
	assert.NotEmpty(t, tx.From())

	tx.Payload = []byte("changed")
	assert.False(t, tx.CheckSign())
	assert.Equal(t, ErrSign, tx.Check())

	unsigned := &Transaction{Execer: []byte("bps")}
	assert.False(t, unsigned.CheckSign())
	assert.Equal(t, "", unsigned.From())
	assert.Equal(t, ErrExecNameNotAllow, (&Transaction{}).Check())
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "1.50000", FormatAmount(150000, 5))
	assert.Equal(t, "180", FormatAmount(180, 0))

	v, err := ParseAmount("1.5", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), v)
	_, err = ParseAmount("1.000001", 5)
	assert.Equal(t, ErrAmount, err)
	_, err = ParseAmount("-1", 5)
	assert.Equal(t, ErrAmount, err)
	_, err = ParseAmount("abc", 5)
	assert.Equal(t, ErrAmount, err)

	assert.True(t, CheckAmount(1))
	assert.False(t, CheckAmount(0))
}

func TestDefaultConfig(t *testing.T) {
	cfg, sub, err := InitCfgString(GetDefaultCfgstring())
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, "state", cfg.Store.Name)
	assert.Equal(t, "local", cfg.LocalStore.Name)
	require.Len(t, cfg.Genesis.Mint, 1)
	assert.Equal(t, "BONK", cfg.Genesis.Mint[0].Symbol)
	assert.Equal(t, int32(5), cfg.Genesis.Mint[0].Decimals)
	require.Len(t, cfg.Genesis.Alloc, 1)
	require.Len(t, cfg.Genesis.Coins, 1)

	var bps struct {
		Admin        string `json:"admin"`
		RevealWindow int64  `json:"revealWindow"`
	}
	MustDecode(sub.Exec["bps"], &bps)
	assert.Equal(t, "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt", bps.Admin)
	assert.Equal(t, int64(604800), bps.RevealWindow)

	modified, err := ModifySubConfig(sub.Exec["bps"], "revealWindow", 10)
	require.NoError(t, err)
	MustDecode(modified, &bps)
	assert.Equal(t, int64(10), bps.RevealWindow)
}

func TestConfigDefaults(t *testing.T) {
	cfg, sub, err := InitCfgString(`title="t"`)
	require.NoError(t, err)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "memdb", cfg.LocalStore.Driver)
	assert.NotNil(t, cfg.Log)
	assert.Empty(t, sub.Exec)

	_, _, err = InitCfgString(`title=`)
	assert.Error(t, err)
	_, _, err = InitCfg("/nonexistent/bps.toml")
	assert.Error(t, err)
}
