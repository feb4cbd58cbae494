// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallet

import (
	"path/filepath"
	"testing"

	"github.com/33cn/bps/common/address"
	"github.com/33cn/bps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const privKeyA = "0x6da92a632ab7deb67d38c0f6560bcfed28167998f6496db64c258d5e8393a81b"

func TestNewFromHex(t *testing.T) {
	w, err := NewFromHex(privKeyA)
	require.NoError(t, err)
	assert.Equal(t, "1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4", w.Address())
	assert.NoError(t, address.CheckAddress(w.Address()))
	assert.Equal(t, privKeyA, w.PrivKeyHex())

	_, err = NewFromHex("0x1234")
	assert.Error(t, err)
	_, err = NewFromHex("zz")
	assert.Error(t, err)
}

func TestSignTx(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	tx := w.SignTx(&types.Transaction{Execer: []byte("bps"), Payload: []byte("p")})
	assert.NotZero(t, tx.Nonce)
	assert.True(t, tx.CheckSign())
	assert.Equal(t, w.Address(), tx.From())

	tx2 := w.SignTx(&types.Transaction{Execer: []byte("bps"), Payload: []byte("p")})
	assert.NotEqual(t, tx.Hash(), tx2.Hash())
}

func TestSaveLoad(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, w.Save(path, "secret"))

	w2, err := Load(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, w.Address(), w2.Address())
	assert.True(t, w.PrivKey().Equals(w2.PrivKey()))

	_, err = Load(path, "wrong")
	assert.Equal(t, ErrInputPassword, err)
	_, err = Load(filepath.Join(t.TempDir(), "none.json"), "secret")
	assert.Error(t, err)
}
