// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/33cn/bps/blockchain"
	"github.com/33cn/bps/common"
	"github.com/33cn/bps/types"
	"github.com/33cn/bps/wallet"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// CoinsDecimals 原生币精度, 1 coin = 1e8
const CoinsDecimals = int32(8)

// 命令输出, 测试中替换
var (
	Output    io.Writer = os.Stdout
	ErrOutput io.Writer = os.Stderr
)

// AddGlobalFlags 根命令的全局参数
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("conf", "", "config file, default config when empty")
	cmd.PersistentFlags().String("key", "", "hex private key of the signer")
	cmd.PersistentFlags().String("keyfile", "", "encrypted key file of the signer")
	cmd.PersistentFlags().String("password", "", "password of the key file")
	cmd.PersistentFlags().Int64("time", 0, "block time in unix seconds, now when 0")
}

// LoadConfig 读取 --conf 指定的配置
func LoadConfig(cmd *cobra.Command) (*types.Config, *types.ConfigSubModule, error) {
	path, _ := cmd.Flags().GetString("conf")
	if path == "" {
		return types.InitCfgString(types.GetDefaultCfgstring())
	}
	cfg, sub, err := types.InitCfg(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, sub, nil
}

// OpenChain 按配置打开本地账本, 使用后需要 Close
func OpenChain(cmd *cobra.Command) (*blockchain.BlockChain, error) {
	cfg, sub, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	var opts []blockchain.Option
	if blocktime, _ := cmd.Flags().GetInt64("time"); blocktime > 0 {
		opts = append(opts, blockchain.WithClock(func() int64 { return blocktime }))
	}
	return blockchain.New(cfg, sub, opts...)
}

// LoadWallet --key 或者 --keyfile/--password 指定的签名账户
func LoadWallet(cmd *cobra.Command) (*wallet.Wallet, error) {
	key, _ := cmd.Flags().GetString("key")
	if key != "" {
		return wallet.NewFromHex(key)
	}
	keyfile, _ := cmd.Flags().GetString("keyfile")
	if keyfile == "" {
		return nil, errors.New("--key or --keyfile required")
	}
	password, _ := cmd.Flags().GetString("password")
	return wallet.Load(keyfile, password)
}

// SendTx 签名并执行交易, 返回交易哈希
func SendTx(cmd *cobra.Command, tx *types.Transaction) (string, error) {
	w, err := LoadWallet(cmd)
	if err != nil {
		return "", err
	}
	chain, err := OpenChain(cmd)
	if err != nil {
		return "", err
	}
	defer chain.Close()
	return chain.SendAndConfirm(context.Background(), w.SignTx(tx))
}

// Query 打开账本执行一次查询
func Query(cmd *cobra.Command, execer, funcName string, req types.Message) (types.Message, error) {
	chain, err := OpenChain(cmd)
	if err != nil {
		return nil, err
	}
	defer chain.Close()
	return chain.Query(execer, funcName, req)
}

// PrintJSON 缩进输出 JSON
func PrintJSON(v interface{}) {
	var data []byte
	var err error
	if msg, ok := v.(proto.Message); ok {
		data, err = types.PBToJSON(msg)
	} else {
		data, err = json.MarshalIndent(v, "", "    ")
	}
	if err != nil {
		PrintErr(err)
		return
	}
	fmt.Fprintln(Output, string(data))
}

// PrintErr 错误输出
func PrintErr(err error) {
	fmt.Fprintln(ErrOutput, err)
}

// GetAmountValue 解析带小数的金额参数
func GetAmountValue(cmd *cobra.Command, field string, decimals int32) (int64, error) {
	s, _ := cmd.Flags().GetString(field)
	amount, err := types.ParseAmount(s, decimals)
	if err != nil {
		return 0, errors.Wrapf(err, "--%s %s", field, s)
	}
	return amount, nil
}

// DecodeAccount 原生币账户转为显示格式
func DecodeAccount(addr string, acc *types.Account) *AccountResult {
	return &AccountResult{
		Addr:    addr,
		Balance: types.FormatAmount(acc.Balance, CoinsDecimals),
		Frozen:  types.FormatAmount(acc.Frozen, CoinsDecimals),
	}
}

// DecodeTokenAccount 代币账户转为显示格式
func DecodeTokenAccount(acc *types.TokenAccount, decimals int32) *TokenAccountResult {
	return &TokenAccountResult{
		Addr:    acc.Addr,
		Owner:   acc.Owner,
		Mint:    acc.Mint,
		Balance: types.FormatAmount(acc.Balance, decimals),
	}
}

// DecodeTxResult 交易结果转为显示格式
func DecodeTxResult(hash []byte, r *types.TxResult) *TxResult {
	result := &TxResult{
		Hash:      common.ToHex(hash),
		Height:    r.Height,
		Index:     r.Index,
		Blocktime: r.Blocktime,
		Error:     r.Error,
	}
	if r.Tx != nil {
		result.Execer = string(r.Tx.Execer)
		result.From = r.Tx.From()
	}
	if r.Receiptdate != nil {
		result.Ty = r.Receiptdate.Ty
		for _, l := range r.Receiptdate.Logs {
			result.Logs = append(result.Logs, &LogResult{Ty: l.Ty, RawLog: common.ToHex(l.Log)})
		}
	}
	return result
}
