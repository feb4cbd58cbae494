// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"strings"

	"github.com/33cn/bps/common"
)

// Choice 出拳
type Choice int32

// choice
const (
	ChoiceNone Choice = iota
	ChoiceBonk
	ChoicePaper
	ChoiceScissors
)

func (c Choice) String() string {
	switch c {
	case ChoiceBonk:
		return "bonk"
	case ChoicePaper:
		return "paper"
	case ChoiceScissors:
		return "scissors"
	}
	return "none"
}

// Valid 是否是三种出拳之一
func (c Choice) Valid() bool {
	return c >= ChoiceBonk && c <= ChoiceScissors
}

// Beats bonk 胜 scissors, scissors 胜 paper, paper 胜 bonk
func (c Choice) Beats(other Choice) bool {
	switch c {
	case ChoiceBonk:
		return other == ChoiceScissors
	case ChoicePaper:
		return other == ChoiceBonk
	case ChoiceScissors:
		return other == ChoicePaper
	}
	return false
}

// ParseChoice 大小写不敏感
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bonk":
		return ChoiceBonk, nil
	case "paper":
		return ChoicePaper, nil
	case "scissors":
		return ChoiceScissors, nil
	}
	return ChoiceNone, ErrInvalidChoice
}

// Commit sha256(salt || choice), choice 用其名称编码
func Commit(salt []byte, choice Choice) [CommitmentLength]byte {
	data := make([]byte, 0, len(salt)+len(choice.String()))
	data = append(data, salt...)
	data = append(data, choice.String()...)
	var out [CommitmentLength]byte
	copy(out[:], common.Sha256(data))
	return out
}

// CheckSalt salt 不能为空, 也不能超过 MaxSaltLength
func CheckSalt(salt []byte) error {
	if len(salt) == 0 || len(salt) > MaxSaltLength {
		return ErrInvalidSalt
	}
	return nil
}

// VerifyCommitment 重新计算 commitment 并比较
func VerifyCommitment(commitment, salt []byte, choice Choice) error {
	if !choice.Valid() {
		return ErrInvalidChoice
	}
	if err := CheckSalt(salt); err != nil {
		return err
	}
	digest := Commit(salt, choice)
	if !bytes.Equal(digest[:], commitment) {
		return ErrCommitmentMismatch
	}
	return nil
}
