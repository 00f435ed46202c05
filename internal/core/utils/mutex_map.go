package utils

import (
	"errors"
	"fmt"
	"sync"
)

var ErrTooManyKeys = errors.New("too many keys locked")

// MutexMap holds one mutex per key, created on first use and released once
// no goroutine holds or waits for it.
type MutexMap struct {
	edit    sync.Mutex
	waiters map[string]int
	mutexes map[string]*sync.Mutex
	maxKeys int
}

func NewMutexMap(maxKeys int) *MutexMap {
	return &MutexMap{
		waiters: make(map[string]int),
		mutexes: make(map[string]*sync.Mutex),
		maxKeys: maxKeys,
	}
}

// Lock blocks until key is free. It fails without blocking when maxKeys
// distinct keys are already in use.
func (m *MutexMap) Lock(key string) error {
	m.edit.Lock()

	mu := m.mutexes[key]
	if mu == nil {
		if len(m.mutexes) >= m.maxKeys {
			m.edit.Unlock()
			return fmt.Errorf("%w: limit is %d", ErrTooManyKeys, m.maxKeys)
		}
		mu = &sync.Mutex{}
		m.mutexes[key] = mu
	}
	m.waiters[key]++
	m.edit.Unlock()

	mu.Lock()
	return nil
}

func (m *MutexMap) Unlock(key string) error {
	m.edit.Lock()
	defer m.edit.Unlock()

	mu := m.mutexes[key]
	if mu == nil {
		return fmt.Errorf("key %s not found", key)
	}

	mu.Unlock()
	m.waiters[key]--
	if m.waiters[key] == 0 {
		delete(m.mutexes, key)
		delete(m.waiters, key)
	}
	return nil
}

// Len is the number of keys currently held or waited on.
func (m *MutexMap) Len() int {
	m.edit.Lock()
	defer m.edit.Unlock()
	return len(m.mutexes)
}
