// Package store records which destination files a conversion run produced
// and which must survive pruning. It lives for one run only; the embedded
// hashes in the destination tree are the only state kept between runs.
package store

import (
	"sort"
	"strings"
)

// Manager tracks produced outputs and protected name prefixes.
type Manager struct {
	outputs   map[string]struct{}
	order     []string
	protected []string
}

// NewManager creates an empty run ledger.
func NewManager() *Manager {
	return &Manager{
		outputs: make(map[string]struct{}),
	}
}

// AddOutput records path as produced by this run, either freshly encoded
// or found in place.
func (m *Manager) AddOutput(path string) {
	if _, ok := m.outputs[path]; ok {
		return
	}
	m.outputs[path] = struct{}{}
	m.order = append(m.order, path)
}

// HasOutput reports whether path was recorded by AddOutput.
func (m *Manager) HasOutput(path string) bool {
	_, ok := m.outputs[path]
	return ok
}

// Outputs returns the recorded outputs in the order they were added.
func (m *Manager) Outputs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Protect keeps every destination file starting with prefix, used for
// sources whose conversion failed this run.
func (m *Manager) Protect(prefix string) {
	m.protected = append(m.protected, prefix)
}

// Protected returns the protected prefixes, sorted.
func (m *Manager) Protected() []string {
	out := append([]string(nil), m.protected...)
	sort.Strings(out)
	return out
}

// Retains reports whether path must survive pruning.
func (m *Manager) Retains(path string) bool {
	if m.HasOutput(path) {
		return true
	}
	for _, p := range m.protected {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
