// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bps/common/db"
	"github.com/33cn/bps/types"
)

// LocalDB 本地索引数据库, 写入先进缓存, 区块结束时 Flush.
// List 与 PrefixCount 只读取后端, 查询在区块提交之后进行
type LocalDB struct {
	db    db.DB
	cache map[string][]byte
	list  *db.ListHelper
}

// NewLocalDB new local db
func NewLocalDB(backend db.DB) *LocalDB {
	return &LocalDB{
		db:    backend,
		cache: make(map[string][]byte),
		list:  db.NewListHelper(backend),
	}
}

// Get get
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	if value, ok := l.cache[string(key)]; ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	value, err := l.db.Get(key)
	if err != nil {
		if err == db.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set set, value 为 nil 时删除
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.cache[string(key)] = value
	return nil
}

// List 分页
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := l.list.List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// PrefixCount 前缀计数
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	return l.list.PrefixCount(prefix)
}

// Flush 写入后端
func (l *LocalDB) Flush() error {
	if len(l.cache) == 0 {
		return nil
	}
	batch := l.db.NewBatch(true)
	for k, v := range l.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	l.cache = make(map[string][]byte)
	return nil
}
