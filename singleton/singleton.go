// SPDX-License-Identifier: MIT
// Package: patternkit/singleton
//
// singleton.go — the process-wide Database and its once-guarded access point.

package singleton

import (
	"sync"
	"sync/atomic"
)

// Database is a process-wide, lazily constructed key/value store.
//
// There is no exported constructor: Instance is the only way to obtain a
// usable *Database. All record operations are safe for concurrent use.
type Database struct {
	mu      sync.RWMutex
	records map[string]string
}

var (
	once     sync.Once
	instance *Database

	// constructions counts how many times the database was actually built.
	// It exists to make the exactly-once guarantee testable; correct code
	// can never observe a value other than 1 after the first Instance call.
	constructions atomic.Uint64
)

// Instance returns the process-wide Database, constructing it on first call.
//
// Under N concurrent first calls, exactly one construction occurs; every
// caller receives the same pointer. Subsequent calls are lock-free reads of
// the completed sync.Once.
// Complexity: O(1) time amortized, O(1) space.
func Instance() *Database {
	once.Do(func() {
		constructions.Add(1)
		instance = &Database{records: make(map[string]string)}
	})
	return instance
}

// Put stores value under key, overwriting any previous value.
// Safe for concurrent use.
func (db *Database) Put(key, value string) {
	db.mu.Lock()
	db.records[key] = value
	db.mu.Unlock()
}

// Get returns the value stored under key and whether it exists.
// Safe for concurrent use.
func (db *Database) Get(key string) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := db.records[key]
	return v, ok
}

// Len reports the number of stored records.
// Safe for concurrent use.
func (db *Database) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.records)
}
