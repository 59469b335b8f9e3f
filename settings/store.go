// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Shared, validated Settings with change hooks.
//
// Concurrency:
//   - Set/Replace/Snapshot are safe for concurrent use.
//   - Hooks run on the caller's goroutine after the lock is released.

package settings

import (
	"fmt"
	"sync"
)

// ChangeHook observes a successful update.
type ChangeHook func(old, updated Settings)

// Store is a mutex-guarded Settings.
type Store struct {
	mu    sync.RWMutex
	cur   Settings
	hooks []ChangeHook
}

// NewStore validates s and wraps it.
func NewStore(s Settings) (*Store, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("NewStore: %w", err)
	}

	return &Store{cur: s}, nil
}

// Snapshot returns a copy of the current settings.
func (st *Store) Snapshot() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.cur
}

// OnChange registers fn; it is called after every successful update.
func (st *Store) OnChange(fn ChangeHook) {
	if fn == nil {
		return
	}
	st.mu.Lock()
	st.hooks = append(st.hooks, fn)
	st.mu.Unlock()
}

// Set assigns one named setting; see Settings.Set.
func (st *Store) Set(name string, value interface{}) error {
	st.mu.Lock()
	old := st.cur
	next := old
	if err := next.Set(name, value); err != nil {
		st.mu.Unlock()
		return err
	}
	st.cur = next
	hooks := append([]ChangeHook(nil), st.hooks...)
	st.mu.Unlock()

	notify(hooks, old, next)

	return nil
}

// Replace validates s and swaps it in.
func (st *Store) Replace(s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("Replace: %w", err)
	}
	st.mu.Lock()
	old := st.cur
	st.cur = s
	hooks := append([]ChangeHook(nil), st.hooks...)
	st.mu.Unlock()

	notify(hooks, old, s)

	return nil
}

func notify(hooks []ChangeHook, old, updated Settings) {
	if old == updated {
		return
	}
	for _, h := range hooks {
		h(old, updated)
	}
}
