// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 存储后端: memdb, goleveldb 与 badger, 以及分页迭代辅助
package db

import (
	"errors"
	"fmt"
)

// ErrNotFoundInDb key不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KVDB 执行器使用的读写接口
type KVDB interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

// KV 带事务缓存的读写接口, 执行器的 StateDB 实现
type KV interface {
	KVDB
	Begin()
	Rollback()
	Commit() error
}

// KVDBList 支持分页查询的读写接口, 执行器的 LocalDB 实现
type KVDBList interface {
	KVDB
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixCount(prefix []byte) int64
}

// IteratorDB 可迭代的db
type IteratorDB interface {
	// start 为前缀, end 为空时迭代整个前缀; reverse 为true时从大到小
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

// DB 存储后端
type DB interface {
	KVDB
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Seek(key []byte) bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

// const
const (
	LevelDBBackendStr    = "leveldb"
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 按照 backend 创建 db
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %s", backend)
	}
	return creator(name, dir, cache)
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
