// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"
	"sync"

	"github.com/33cn/bps/common/address"
	"github.com/33cn/bps/types"
)

// DriverCreate 按照子模块配置创建驱动
type DriverCreate func(sub []byte) (Driver, error)

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
)

// Register 注册驱动, height 之前的区块不能使用
func Register(name string, create DriverCreate, height int64) {
	mu.Lock()
	defer mu.Unlock()
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = &driverWithHeight{create: create, height: height}
	execAddressNameMap[address.ExecAddress(name)] = name
}

// LoadDriver 创建驱动, height 为 -1 时不检查高度
func LoadDriver(name string, height int64, sub []byte) (Driver, error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrExecNameNotAllow
	}
	if height != -1 && height < c.height {
		return nil, types.ErrExecNameNotAllow
	}
	return c.create(sub)
}

// IsDriverAddress 地址是否为执行器地址
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// GetDriverNames 已注册的驱动
func GetDriverNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
