// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sync"

	"github.com/33cn/arena/common/address"
	"github.com/33cn/arena/common/log"
	"github.com/33cn/arena/types"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	registerMu         sync.RWMutex
	execDrivers        = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
	registedExecDriver = make(map[string]*driverWithHeight)
)

// Register register dcriver height in name
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	registerMu.Lock()
	defer registerMu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	driverHeight := &driverWithHeight{
		create: create,
		height: height,
	}
	registedExecDriver[name] = driverHeight
	addr := registerAddress(name)
	execDrivers[addr] = driverHeight
}

// LoadDriver load driver
func LoadDriver(name string, height int64) (driver Driver, err error) {
	registerMu.RLock()
	c, ok := registedExecDriver[name]
	registerMu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrUnknowDriver
}

// IsDriverAddress whether or not execdrivers by address
func IsDriverAddress(addr string, height int64) bool {
	registerMu.RLock()
	c, ok := execDrivers[addr]
	registerMu.RUnlock()
	if !ok {
		return false
	}
	if height >= c.height || height == -1 {
		return true
	}
	return false
}

// DriverNames 已经注册的执行器名称
func DriverNames() []string {
	registerMu.RLock()
	defer registerMu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	return names
}

func registerAddress(name string) string {
	if len(name) == 0 {
		panic("empty name string")
	}
	addr := address.ExecAddress(name)
	execAddressNameMap[name] = addr
	return addr
}

// ExecAddress return exec address
func ExecAddress(name string) string {
	registerMu.RLock()
	addr, ok := execAddressNameMap[name]
	registerMu.RUnlock()
	if ok {
		return addr
	}
	return address.ExecAddress(name)
}

// CheckAddress 执行器地址或者普通地址
func CheckAddress(addr string, height int64) error {
	if IsDriverAddress(addr, height) {
		return nil
	}
	return address.CheckAddress(addr)
}
