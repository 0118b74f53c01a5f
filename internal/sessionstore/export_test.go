// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package sessionstore

// StoredEntries reports how many entries m holds, expired ones included.
func (m *Memory) StoredEntries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
