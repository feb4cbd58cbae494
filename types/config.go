// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
)

// Config 节点配置
type Config struct {
	Title      string   `toml:"title" json:"title,omitempty"`
	Log        *Log     `toml:"log" json:"log,omitempty"`
	Store      *Store   `toml:"store" json:"store,omitempty"`
	LocalStore *Store   `toml:"localStore" json:"localStore,omitempty"`
	Genesis    *Genesis `toml:"genesis" json:"genesis,omitempty"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel" json:"loglevel,omitempty"`
	LogConsoleLevel string `toml:"logConsoleLevel" json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile" json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize" json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups" json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge         uint32 `toml:"maxAge" json:"maxAge,omitempty"`
	LocalTime      bool   `toml:"localTime" json:"localTime,omitempty"`
	Compress       bool   `toml:"compress" json:"compress,omitempty"`
	CallerFile     bool   `toml:"callerFile" json:"callerFile,omitempty"`
	CallerFunction bool   `toml:"callerFunction" json:"callerFunction,omitempty"`
}

// Store 存储配置
type Store struct {
	Name    string `toml:"name" json:"name,omitempty"`
	Driver  string `toml:"driver" json:"driver,omitempty"`
	DbPath  string `toml:"dbPath" json:"dbPath,omitempty"`
	DbCache int32  `toml:"dbCache" json:"dbCache,omitempty"`
}

// Genesis 创世配置
type Genesis struct {
	BlockTime int64           `toml:"blockTime" json:"blockTime,omitempty"`
	Mint      []*GenesisMint  `toml:"mint" json:"mint,omitempty"`
	Alloc     []*GenesisAlloc `toml:"alloc" json:"alloc,omitempty"`
	Coins     []*GenesisCoins `toml:"coins" json:"coins,omitempty"`
}

// GenesisMint 创世代币
type GenesisMint struct {
	Symbol    string `toml:"symbol" json:"symbol,omitempty"`
	Authority string `toml:"authority" json:"authority,omitempty"`
	Decimals  int32  `toml:"decimals" json:"decimals,omitempty"`
}

// GenesisAlloc 创世代币分配
type GenesisAlloc struct {
	Owner  string `toml:"owner" json:"owner,omitempty"`
	Symbol string `toml:"symbol" json:"symbol,omitempty"`
	Amount int64  `toml:"amount" json:"amount,omitempty"`
}

// GenesisCoins 创世原生币分配
type GenesisCoins struct {
	Addr   string `toml:"addr" json:"addr,omitempty"`
	Amount int64  `toml:"amount" json:"amount,omitempty"`
}

// ConfigSubModule 子模块的配置, json 编码
type ConfigSubModule struct {
	Store map[string][]byte
	Exec  map[string][]byte
}

// subModule 子模块结构体
type subModule struct {
	Store map[string]interface{}
	Exec  map[string]interface{}
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return InitCfgString(string(data))
}

// InitCfgString 初始化配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, err
	}
	fillDefaultConfig(&cfg)
	sub, err := initSubModuleString(cfgstring)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, sub, nil
}

// MustInitCfgString 测试中使用
func MustInitCfgString(cfgstring string) (*Config, *ConfigSubModule) {
	cfg, sub, err := InitCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

func fillDefaultConfig(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "state"
	}
	if cfg.LocalStore == nil {
		cfg.LocalStore = &Store{Driver: cfg.Store.Driver, DbPath: cfg.Store.DbPath, DbCache: cfg.Store.DbCache}
	}
	if cfg.LocalStore.Name == "" {
		cfg.LocalStore.Name = "local"
	}
	if cfg.Genesis == nil {
		cfg.Genesis = &Genesis{}
	}
}

func initSubModuleString(cfgstring string) (*ConfigSubModule, error) {
	var cfg subModule
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	return &ConfigSubModule{
		Store: parseItem(cfg.Store),
		Exec:  parseItem(cfg.Exec),
	}, nil
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	for key := range data {
		if key == "sub" {
			subcfg, ok := data[key].(map[string]interface{})
			if !ok {
				continue
			}
			for k := range subcfg {
				subconfig[k], _ = json.Marshal(subcfg[k])
			}
		}
	}
	return subconfig
}

//ModifySubConfig json data modify
func ModifySubConfig(sub []byte, key string, value interface{}) ([]byte, error) {
	var data map[string]interface{}
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, &data); err != nil {
			return nil, err
		}
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	data[key] = value
	return json.Marshal(data)
}
