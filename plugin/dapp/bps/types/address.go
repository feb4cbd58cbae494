// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/bps/common/address"
)

// ProgramAddress bps 执行器地址, 也是托管账户的 owner
func ProgramAddress() string {
	return address.ExecAddress(BpsX)
}

// CheckGameID 1..MaxGameIDLength 字节
func CheckGameID(gameID string) error {
	if len(gameID) == 0 || len(gameID) > MaxGameIDLength {
		return ErrInvalidGameID
	}
	return nil
}

// GameAddress 由先手玩家和 gameId 派生游戏地址
func GameAddress(firstPlayer, gameID string) (string, error) {
	if err := CheckGameID(gameID); err != nil {
		return "", err
	}
	return address.DeriveAddress([][]byte{[]byte("game"), []byte(firstPlayer), []byte(gameID)}, ProgramAddress())
}

// EscrowAddress 由角色和游戏地址派生托管地址
func EscrowAddress(role Role, gameAddr string) (string, error) {
	return address.DeriveAddress([][]byte{role.Tag(), []byte(gameAddr)}, ProgramAddress())
}
