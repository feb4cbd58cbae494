// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wallet 签名身份: secp256k1 私钥, 地址, 交易签名以及加密的私钥文件
package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math/rand"
	"os"
	"sync"

	"github.com/33cn/bps/common"
	"github.com/33cn/bps/common/address"
	"github.com/33cn/bps/common/crypto"
	"github.com/33cn/bps/common/crypto/secp256k1"
	"github.com/33cn/bps/types"
	log "github.com/inconshreveable/log15"
)

var walletlog = log.New("module", "wallet")

// ErrInputPassword 私钥文件的密码错误
var ErrInputPassword = errors.New("ErrInputPassword")

// Wallet 单个私钥的签名身份
type Wallet struct {
	mtx    sync.Mutex
	priv   crypto.PrivKey
	addr   string
	random *rand.Rand
	signTy int32
}

func newWallet(priv crypto.PrivKey) *Wallet {
	seed := int64(binary.BigEndian.Uint64(crypto.CRandBytes(8)))
	return &Wallet{
		priv:   priv,
		addr:   address.PubKeyToAddress(priv.PubKey().Bytes()).String(),
		random: rand.New(rand.NewSource(seed)),
		signTy: types.SECP256K1,
	}
}

// New 随机生成私钥
func New() (*Wallet, error) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	priv, err := c.GenKey()
	if err != nil {
		return nil, err
	}
	return newWallet(priv), nil
}

// NewFromHex 从十六进制私钥创建
func NewFromHex(key string) (*Wallet, error) {
	bkey, err := common.FromHex(key)
	if err != nil {
		return nil, err
	}
	return NewFromBytes(bkey)
}

// NewFromBytes 从私钥字节创建
func NewFromBytes(key []byte) (*Wallet, error) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	priv, err := c.PrivKeyFromBytes(key)
	if err != nil {
		return nil, err
	}
	return newWallet(priv), nil
}

// Address 钱包地址
func (wallet *Wallet) Address() string {
	return wallet.addr
}

// PrivKey 私钥
func (wallet *Wallet) PrivKey() crypto.PrivKey {
	return wallet.priv
}

// PrivKeyHex 十六进制私钥
func (wallet *Wallet) PrivKeyHex() string {
	return common.ToHex(wallet.priv.Bytes())
}

// SignTx nonce 为0时设置随机 nonce, 然后签名
func (wallet *Wallet) SignTx(tx *types.Transaction) *types.Transaction {
	wallet.mtx.Lock()
	defer wallet.mtx.Unlock()
	if tx.Nonce == 0 {
		tx.Nonce = wallet.random.Int63()
	}
	tx.Sign(wallet.signTy, wallet.priv)
	walletlog.Debug("SignTx", "addr", wallet.addr, "hash", common.ToHex(tx.Hash()))
	return tx
}

type keyFile struct {
	Addr    string `json:"addr"`
	Privkey string `json:"privkey"`
}

// Save 使用 password 加密私钥并保存到文件
func (wallet *Wallet) Save(path string, password string) error {
	encrypted := CBCEncrypterPrivkey([]byte(password), wallet.priv.Bytes())
	data, err := json.MarshalIndent(&keyFile{Addr: wallet.addr, Privkey: common.ToHex(encrypted)}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Load 读取 Save 保存的私钥文件
func Load(path string, password string) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, err
	}
	encrypted, err := common.FromHex(kf.Privkey)
	if err != nil {
		return nil, err
	}
	if len(encrypted) == 0 || len(encrypted)%aes.BlockSize != 0 {
		return nil, ErrInputPassword
	}
	w, err := NewFromBytes(CBCDecrypterPrivkey([]byte(password), encrypted))
	if err != nil || w.Address() != kf.Addr {
		return nil, ErrInputPassword
	}
	return w, nil
}

//CBCEncrypterPrivkey 使用password对私钥进行aes cbc加密,返回加密后的privkey
func CBCEncrypterPrivkey(password []byte, privkey []byte) []byte {
	key := common.Sha256(password)
	encrypted := make([]byte, len(privkey))
	block, _ := aes.NewCipher(key)
	iv := key[:block.BlockSize()]
	encrypter := cipher.NewCBCEncrypter(block, iv)
	encrypter.CryptBlocks(encrypted, privkey)
	return encrypted
}

//CBCDecrypterPrivkey 使用password对私钥进行aes cbc解密,返回解密后的privkey
func CBCDecrypterPrivkey(password []byte, privkey []byte) []byte {
	key := common.Sha256(password)
	block, _ := aes.NewCipher(key)
	iv := key[:block.BlockSize()]
	decryptered := make([]byte, len(privkey))
	decrypter := cipher.NewCBCDecrypter(block, iv)
	decrypter.CryptBlocks(decryptered, privkey)
	return decryptered
}
