// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	"github.com/33cn/bps/common/db"
	"github.com/33cn/bps/types"
	"github.com/33cn/bps/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDemo = errors.New("ErrDemo")

type demo struct {
	DriverBase
}

func newDemo(sub []byte) (Driver, error) {
	d := &demo{}
	d.SetChild(d)
	d.SetName("demo")
	return d, nil
}

func (d *demo) GetDriverName() string { return "demo" }

func (d *demo) GetActionName(tx *types.Transaction) string {
	return string(tx.Payload)
}

func (d *demo) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	kv := &types.KeyValue{Key: []byte("mavl-demo-" + tx.From()), Value: tx.Payload}
	d.GetStateDB().Set(kv.Key, kv.Value)
	switch string(tx.Payload) {
	case "fail":
		return nil, errDemo
	case "panic":
		panic("demo")
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{{Ty: 100, Log: tx.Payload}}}, nil
}

func (d *demo) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-demo-" + string(tx.Payload)), Value: []byte(tx.From())}}}, nil
}

func (d *demo) Query(funcName string, params []byte) (types.Message, error) {
	if funcName != "Get" {
		return nil, types.ErrQueryNotSupport
	}
	value, err := d.GetStateDB().Get([]byte("mavl-demo-" + string(params)))
	if err != nil {
		return nil, err
	}
	return &types.ReqString{Data: string(value)}, nil
}

func init() {
	Register("demo", newDemo, 0)
}

func newExecutor(t *testing.T) *Executor {
	state, err := db.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	local, err := db.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	e := New(state, local, nil)
	require.NoError(t, e.ExecGenesis(&types.Genesis{BlockTime: 100}))
	return e
}

func demoTx(w *wallet.Wallet, payload string) *types.Transaction {
	return w.SignTx(&types.Transaction{Execer: []byte("demo"), Payload: []byte(payload)})
}

func TestExecBlock(t *testing.T) {
	e := newExecutor(t)
	w, err := wallet.New()
	require.NoError(t, err)

	tx1 := demoTx(w, "ok")
	results, err := e.ExecBlock(&types.Block{Height: 1, BlockTime: 101, Txs: []*types.Transaction{tx1}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, int32(types.ExecOk), results[0].Receipt.Ty)

	reply, err := e.Query("demo", "Get", []byte(w.Address()))
	require.NoError(t, err)
	assert.Equal(t, "ok", reply.(*types.ReqString).Data)

	txResult, err := e.GetTxResult(tx1.Hash())
	require.NoError(t, err)
	assert.Equal(t, int64(1), txResult.Height)
	assert.Equal(t, "", txResult.Error)

	header, err := e.LastHeader()
	require.NoError(t, err)
	assert.Equal(t, int64(1), header.Height)
	assert.Equal(t, int64(1), header.TxCount)
	assert.Equal(t, int64(1), e.Metrics().TxOk())
}

func TestExecFailedTxLeavesNoState(t *testing.T) {
	e := newExecutor(t)
	w, err := wallet.New()
	require.NoError(t, err)

	txs := []*types.Transaction{demoTx(w, "fail"), demoTx(w, "panic")}
	results, err := e.ExecBlock(&types.Block{Height: 1, BlockTime: 101, Txs: txs})
	require.NoError(t, err)
	assert.Equal(t, errDemo, results[0].Err)
	assert.Equal(t, types.ErrActionNotSupport, results[1].Err)
	assert.Equal(t, int32(types.ExecErr), results[0].Receipt.Ty)
	assert.Equal(t, "ErrDemo", string(results[0].Receipt.Logs[0].Log))

	_, err = e.Query("demo", "Get", []byte(w.Address()))
	assert.Equal(t, types.ErrNotFound, err)
	assert.Equal(t, int64(2), e.Metrics().TxErr())

	//失败的交易不记录交易哈希, 重新执行不会报 ErrTxDup
	results, err = e.ExecBlock(&types.Block{Height: 2, BlockTime: 102, Txs: txs[:1]})
	require.NoError(t, err)
	assert.Equal(t, errDemo, results[0].Err)
}

func TestExecTxDup(t *testing.T) {
	e := newExecutor(t)
	w, err := wallet.New()
	require.NoError(t, err)
	tx := demoTx(w, "ok")

	results, err := e.ExecBlock(&types.Block{Height: 1, BlockTime: 101, Txs: []*types.Transaction{tx, tx}})
	require.NoError(t, err)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, types.ErrTxDup, results[1].Err)

	results, err = e.ExecBlock(&types.Block{Height: 2, BlockTime: 102, Txs: []*types.Transaction{tx}})
	require.NoError(t, err)
	assert.Equal(t, types.ErrTxDup, results[0].Err)
}

func TestExecBadTx(t *testing.T) {
	e := newExecutor(t)
	w, err := wallet.New()
	require.NoError(t, err)

	unsigned := &types.Transaction{Execer: []byte("demo"), Payload: []byte("ok")}
	unknown := w.SignTx(&types.Transaction{Execer: []byte("nosuch"), Payload: []byte("ok")})
	tampered := demoTx(w, "ok")
	tampered.Payload = []byte("changed")
	results, err := e.ExecBlock(&types.Block{Height: 1, BlockTime: 101, Txs: []*types.Transaction{unsigned, unknown, tampered}})
	require.NoError(t, err)
	assert.Equal(t, types.ErrSign, results[0].Err)
	assert.Equal(t, types.ErrExecNameNotAllow, results[1].Err)
	assert.Equal(t, types.ErrSign, results[2].Err)
}

func TestExecBlockChecks(t *testing.T) {
	e := newExecutor(t)
	_, err := e.ExecBlock(&types.Block{Height: 2, BlockTime: 101})
	assert.ErrorIs(t, err, types.ErrInvalidParam)
	_, err = e.ExecBlock(&types.Block{Height: 1, BlockTime: 99})
	assert.Equal(t, types.ErrBlockTime, err)
	_, err = e.Query("nosuch", "Get", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = e.Query("demo", "Other", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)

	state, _ := db.NewGoMemDB("state", "", 0)
	local, _ := db.NewGoMemDB("local", "", 0)
	_, err = New(state, local, nil).ExecBlock(&types.Block{Height: 1})
	assert.Equal(t, types.ErrNotFound, err)
}

func TestStateDBTx(t *testing.T) {
	mem, err := db.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	require.NoError(t, mem.Set([]byte("a"), []byte("1")))
	s := NewStateDB(mem)

	s.Begin()
	s.Set([]byte("a"), nil)
	s.Set([]byte("b"), []byte("2"))
	_, err = s.Get([]byte("a"))
	assert.Equal(t, types.ErrNotFound, err)
	s.Rollback()
	v, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = s.Get([]byte("b"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	s.Set([]byte("a"), nil)
	s.Set([]byte("b"), []byte("2"))
	require.NoError(t, s.Commit())
	require.NoError(t, s.Flush())
	_, err = mem.Get([]byte("a"))
	assert.Equal(t, db.ErrNotFoundInDb, err)
	v, err = mem.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
}

func TestRegister(t *testing.T) {
	assert.Panics(t, func() { Register("demo", newDemo, 0) })
	assert.Contains(t, GetDriverNames(), "demo")
	_, err := LoadDriver("nosuch", 0, nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
}

func TestMetricsSnapshot(t *testing.T) {
	e := newExecutor(t)
	w, err := wallet.New()
	require.NoError(t, err)
	_, err = e.ExecBlock(&types.Block{Height: 1, BlockTime: 101, Txs: []*types.Transaction{demoTx(w, "ok")}})
	require.NoError(t, err)
	snap := e.Metrics().Snapshot()
	assert.Equal(t, int64(1), snap["exec/tx/ok"])
	assert.Contains(t, snap, "exec/demo/ok")
}
