// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("bps")
	assert.NoError(t, CheckAddress(addr))
	assert.Equal(t, addr, ExecAddress("bps"))
	assert.NotEqual(t, addr, ExecAddress("token"))
}

func TestDeriveAddress(t *testing.T) {
	program := ExecAddress("bps")
	a1, err := DeriveAddress([][]byte{[]byte("first"), []byte("game1")}, program)
	require.NoError(t, err)
	a2, err := DeriveAddress([][]byte{[]byte("first"), []byte("game1")}, program)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.NoError(t, CheckAddress(a1))

	a3, err := DeriveAddress([][]byte{[]byte("second"), []byte("game1")}, program)
	require.NoError(t, err)
	assert.NotEqual(t, a1, a3)

	//不同切分的种子不能得到同一个地址
	b1, err := DeriveAddress([][]byte{[]byte("ab"), []byte("c")}, program)
	require.NoError(t, err)
	b2, err := DeriveAddress([][]byte{[]byte("a"), []byte("bc")}, program)
	require.NoError(t, err)
	assert.NotEqual(t, b1, b2)

	c1, err := DeriveAddress([][]byte{[]byte("first"), []byte("game1")}, ExecAddress("token"))
	require.NoError(t, err)
	assert.NotEqual(t, a1, c1)
}

func TestDeriveAddressLimits(t *testing.T) {
	_, err := DeriveAddress([][]byte{bytes.Repeat([]byte("x"), MaxSeedLength+1)}, "p")
	assert.Equal(t, ErrSeedTooLong, err)
	seeds := make([][]byte, MaxSeeds+1)
	_, err = DeriveAddress(seeds, "p")
	assert.Equal(t, ErrTooManySeeds, err)
	assert.Panics(t, func() { MustDeriveAddress(seeds, "p") })
}

func TestCheckAddress(t *testing.T) {
	assert.Error(t, CheckAddress("0OIl"))
	assert.Error(t, CheckAddress("1abc"))
	addr := ExecAddress("bps")
	bad := []byte(addr)
	if bad[5] == 'a' {
		bad[5] = 'b'
	} else {
		bad[5] = 'a'
	}
	assert.Error(t, CheckAddress(string(bad)))
}
