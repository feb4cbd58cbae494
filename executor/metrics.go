// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/rcrowley/go-metrics"
)

// Metrics 执行器的计数与耗时
type Metrics struct {
	registry   metrics.Registry
	txOk       metrics.Counter
	txErr      metrics.Counter
	blockTimer metrics.Timer
}

// NewMetrics new
func NewMetrics() *Metrics {
	r := metrics.NewRegistry()
	return &Metrics{
		registry:   r,
		txOk:       metrics.NewRegisteredCounter("exec/tx/ok", r),
		txErr:      metrics.NewRegisteredCounter("exec/tx/err", r),
		blockTimer: metrics.NewRegisteredTimer("exec/block", r),
	}
}

// Registry 注册表
func (m *Metrics) Registry() metrics.Registry {
	return m.registry
}

func (m *Metrics) actionTimer(execer, action string) metrics.Timer {
	return metrics.GetOrRegisterTimer("exec/"+execer+"/"+action, m.registry)
}

// TxOk 成功的交易数
func (m *Metrics) TxOk() int64 {
	return m.txOk.Count()
}

// TxErr 失败的交易数
func (m *Metrics) TxErr() int64 {
	return m.txErr.Count()
}

// Snapshot 所有指标的快照, 用于命令行输出
func (m *Metrics) Snapshot() map[string]interface{} {
	out := make(map[string]interface{})
	m.registry.Each(func(name string, i interface{}) {
		switch metric := i.(type) {
		case metrics.Counter:
			out[name] = metric.Count()
		case metrics.Timer:
			s := metric.Snapshot()
			out[name] = map[string]interface{}{
				"count": s.Count(),
				"mean":  s.Mean(),
				"max":   s.Max(),
			}
		}
	})
	return out
}
