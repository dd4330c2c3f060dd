// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import "time"

// metricsRecorder tracks metrics for a single dispatch.
type metricsRecorder struct {
	startTime   time.Time
	commandName string
	status      string
}

// newMetricsRecorder initializes a recorder for a single dispatch.
func newMetricsRecorder() *metricsRecorder {
	return &metricsRecorder{startTime: time.Now()}
}

// setCommand sets the command name once resolution succeeds.
func (m *metricsRecorder) setCommand(name string) {
	m.commandName = name
}

// setStatus sets the dispatch outcome.
func (m *metricsRecorder) setStatus(status string) {
	m.status = status
}

// record writes the collected metrics. Dispatches that never resolved a
// command are counted under the empty name so parse failures are visible.
func (m *metricsRecorder) record() {
	name := m.commandName
	if name == "" {
		name = "(unresolved)"
	}
	RecordDispatch(name, m.status)
	if m.commandName != "" {
		RecordDispatchDuration(m.commandName, time.Since(m.startTime))
	}
}
