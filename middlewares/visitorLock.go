package middlewares

import (
	"context"
	"sync"
)

type visitorLock struct {
	held chan struct{}
	refs int
}

// visitorLocks hands out one lock per visitor id. Entries are dropped once
// nobody holds or waits for them.
type visitorLocks struct {
	mu    sync.Mutex
	locks map[string]*visitorLock
}

func newVisitorLocks() *visitorLocks {
	return &visitorLocks{locks: make(map[string]*visitorLock)}
}

// Acquire waits for the visitor's lock or for ctx to end. The returned func
// releases the lock.
func (v *visitorLocks) Acquire(ctx context.Context, id string) (func(), error) {
	v.mu.Lock()
	lock, ok := v.locks[id]
	if !ok {
		lock = &visitorLock{held: make(chan struct{}, 1)}
		v.locks[id] = lock
	}
	lock.refs++
	v.mu.Unlock()

	select {
	case lock.held <- struct{}{}:
		return func() {
			<-lock.held
			v.release(id, lock)
		}, nil
	case <-ctx.Done():
		v.release(id, lock)
		return nil, ctx.Err()
	}
}

func (v *visitorLocks) release(id string, lock *visitorLock) {
	v.mu.Lock()
	defer v.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(v.locks, id)
	}
}

func (v *visitorLocks) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.locks)
}
