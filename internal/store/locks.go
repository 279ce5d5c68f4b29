package store

import "sync"

// studentLocks serializes cascade reschedules and bulk adjustments per
// student. Each student's event set is its own contention unit; operations
// on different students never coordinate. Acquisition is non-blocking: a
// second concurrent writer gets ErrConcurrentModification and retries with
// fresh data rather than queueing behind a stale plan.
type studentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newStudentLocks() *studentLocks {
	return &studentLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *studentLocks) lockFor(studentID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[studentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[studentID] = m
	}
	return m
}

// TryAcquire attempts to take the student's lock without blocking.
// Returns ErrConcurrentModification if another bulk operation holds it.
func (l *studentLocks) TryAcquire(studentID string) (release func(), err error) {
	m := l.lockFor(studentID)
	if !m.TryLock() {
		return nil, &ErrConcurrentModification{StudentID: studentID}
	}
	return m.Unlock, nil
}
