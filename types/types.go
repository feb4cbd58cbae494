// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 账本的公共消息, 错误, 常量与配置
package types

import (
	"encoding/json"
	"strings"

	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
	"github.com/shopspring/decimal"
)

var tlog = log.New("module", "types")

// Message 声明proto.Message
type Message proto.Message

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//Clone 深拷贝
func Clone(data proto.Message) proto.Message {
	return proto.Clone(data)
}

//JSONToPB  JSON格式转换成protobuffer格式
func JSONToPB(data []byte, msg proto.Message) error {
	return json.Unmarshal(data, msg)
}

//PBToJSON 消息转为缩进的JSON
func PBToJSON(r proto.Message) ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}

//MustDecode 数据是否已经编码
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

//FormatAmount 最小单位转为带小数的字符串
func FormatAmount(amount int64, decimals int32) string {
	return decimal.New(amount, -decimals).StringFixed(decimals)
}

//ParseAmount 带小数的字符串转为最小单位
func ParseAmount(s string, decimals int32) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrAmount
	}
	v := d.Shift(decimals)
	if !v.Equal(v.Truncate(0)) {
		tlog.Error("ParseAmount", "amount", s, "decimals", decimals)
		return 0, ErrAmount
	}
	if v.Sign() < 0 || v.GreaterThan(decimal.New(MaxTokenBalance, 0)) {
		return 0, ErrAmount
	}
	return v.IntPart(), nil
}

//CheckAmount 金额是否合法
func CheckAmount(amount int64) bool {
	return amount > 0 && amount < MaxTokenBalance
}
