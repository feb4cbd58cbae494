// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 地址计算: 公钥地址, 执行器地址, 以及由种子派生的程序地址
package address

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/33cn/bps/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var derivedMarker = []byte("ProgramDerivedAddress")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// MaxSeedLength bounds a single derivation seed
const MaxSeedLength = 64

// MaxSeeds bounds the number of derivation seeds
const MaxSeeds = 16

// ErrSeedTooLong seed longer than MaxSeedLength
var ErrSeedTooLong = errors.New("ErrSeedTooLong")

// ErrTooManySeeds more than MaxSeeds seeds
var ErrTooManySeeds = errors.New("ErrTooManySeeds")

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//ExecPubKey 计算执行器公钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

//ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(ExecPubKey(name))
	addrstr := addr.String()
	addressCache.Add(name, addrstr)
	return addrstr
}

// DeriveAddress computes the address owned by program for the given seeds.
// Each seed is length prefixed so ("ab","c") and ("a","bc") never collide.
// The same function runs on the client and inside the executor.
func DeriveAddress(seeds [][]byte, program string) (string, error) {
	if len(seeds) > MaxSeeds {
		return "", ErrTooManySeeds
	}
	var key strings.Builder
	buf := make([]byte, 0, len(addrSeed)+len(program)+len(derivedMarker)+64*len(seeds))
	buf = append(buf, addrSeed...)
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return "", ErrSeedTooLong
		}
		buf = append(buf, byte(len(seed)))
		buf = append(buf, seed...)
	}
	buf = append(buf, []byte(program)...)
	buf = append(buf, derivedMarker...)
	key.Write(buf)
	if value, ok := addressCache.Get(key.String()); ok {
		return value.(string), nil
	}
	hash := common.Sha2Sum(buf)
	addrstr := PubKeyToAddress(hash[:]).String()
	addressCache.Add(key.String(), addrstr)
	return addrstr, nil
}

// MustDeriveAddress panics on bad seeds, for fixed seed layouts only
func MustDeriveAddress(seeds [][]byte, program string) string {
	addr, err := DeriveAddress(seeds, program)
	if err != nil {
		panic(err)
	}
	return addr
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = make([]byte, len(in))
	copy(a.Pubkey[:], in[:])
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//CheckAddress 检查地址
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	dec := base58.Decode(addr)
	if dec == nil {
		e = errors.New("Cannot decode b58 string '" + addr + "'")
		checkAddressCache.Add(addr, e)
		return
	}
	if len(dec) < 25 {
		e = errors.New("Address too short " + hex.EncodeToString(dec))
		checkAddressCache.Add(addr, e)
		return
	}
	if len(dec) == 25 {
		sh := common.Sha2Sum(dec[0:21])
		if !bytes.Equal(sh[:4], dec[21:25]) {
			e = errors.New("Address Checksum error")
		}
	}
	checkAddressCache.Add(addr, e)
	return
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}
