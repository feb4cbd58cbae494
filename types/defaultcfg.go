// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// GetDefaultCfgstring 本地单节点的默认配置
func GetDefaultCfgstring() string {
	return defaultCfgstring
}

var defaultCfgstring = `
title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "info"
logConsoleLevel = "error"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = "logs/bps.log"
# 单个日志文件的最大值（单位：兆）
maxFileSize = 20
# 最多保存的历史日志文件个数
maxBackups = 20
# 最多保存的历史日志消息（单位：天）
maxAge = 28
# 日志文件名是否使用本地时间（否则使用UTC时间）
localTime = true
# 历史日志文件是否压缩（压缩格式为gz）
compress = false
# 是否打印调用源文件和行号
callerFile = false
# 是否打印调用方法
callerFunction = false

[store]
# memdb, leveldb 或 gobadgerdb
driver = "leveldb"
dbPath = "datadir"
dbCache = 64

[localStore]
driver = "leveldb"
dbPath = "datadir"
dbCache = 16

[genesis]
blockTime = 1514533394

[[genesis.mint]]
symbol = "BONK"
authority = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
decimals = 5

[[genesis.alloc]]
owner = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
symbol = "BONK"
amount = 100000000000000

[[genesis.coins]]
addr = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
amount = 10000000000000000

[exec.sub.bps]
admin = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
mint = "BONK"
revealWindow = 604800
minAmount = 1
maxAmount = 0
escrowDeposit = 2039280
defaultCount = 20
maxCount = 100
`
