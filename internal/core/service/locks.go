package service

import (
	"sort"
	"sync"
)

// districtLocks serializes mutations per district. Operations touching two
// districts acquire both locks in ascending id order, so opposite-direction
// transfers between the same pair cannot deadlock.
type districtLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newDistrictLocks() *districtLocks {
	return &districtLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *districtLocks) get(id int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// acquire locks every listed district and returns the matching release
// function. Duplicate ids are collapsed.
func (l *districtLocks) acquire(ids ...int64) func() {
	seen := make(map[int64]bool, len(ids))
	unique := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	held := make([]*sync.Mutex, 0, len(unique))
	for _, id := range unique {
		m := l.get(id)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
