package graph

import (
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

// MirrorSeq turns the lower-triangular half of an undirected
// adjacency-list graph (every lists[u] contains only v < u) into the
// full undirected graph, sequentially: for every u, every v < u in
// lists[u] gets u appended to lists[v].
func MirrorSeq(l *List) {
	for u := 0; u < l.n; u++ {
		for _, v := range l.lists[u] {
			if v < u {
				l.lists[v] = append(l.lists[v], u)
			}
		}
	}
}

// MirrorMutex is the same pass as MirrorSeq, but runs one goroutine
// per vertex on a bounded pool, guarding each list with its own mutex.
// Workers for u can't deadlock each other: a worker only ever mutates
// lists[v] for v < u, never its own list[u].
func MirrorMutex(l *List, opts ...Option) error {
	return mirrorLocked(l, opts, func() sync.Locker { return &sync.Mutex{} })
}

// MirrorSpinLock is MirrorMutex with a hand-rolled CAS spin-lock in
// place of sync.Mutex — higher throughput than a mutex under low
// contention, unfair under high contention. No maintained spin-lock
// package appears in the example corpus, so this is a small,
// deliberate atomic construct rather than an imported one.
func MirrorSpinLock(l *List, opts ...Option) error {
	return mirrorLocked(l, opts, func() sync.Locker { return &spinLock{} })
}

func mirrorLocked(l *List, opts []Option, newLock func() sync.Locker) error {
	cfg := newConfig(opts...)

	locks := make([]sync.Locker, l.n)
	for i := range locks {
		locks[i] = newLock()
	}

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for u := 0; u < l.n; u++ {
		u := u
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()

			locks[u].Lock()
			neighbours := append([]Vertex(nil), l.lists[u]...)
			locks[u].Unlock()

			for _, v := range neighbours {
				if v < u {
					locks[v].Lock()
					l.lists[v] = append(l.lists[v], u)
					locks[v].Unlock()
				}
			}
		}); submitErr != nil {
			wg.Done()
			return submitErr
		}
	}
	wg.Wait()

	return nil
}

// spinLock is a minimal CAS-based mutual exclusion lock.
type spinLock struct {
	state atomic.Bool
}

func (s *spinLock) Lock() {
	for !s.state.CompareAndSwap(false, true) {
		// busy-wait
	}
}

func (s *spinLock) Unlock() {
	s.state.Store(false)
}

// MirrorQueue fills the upper-triangular half using one queue per
// vertex: a first parallel pass has every worker for u push u onto
// queues[v] for each v < u in lists[u]; a second parallel pass drains
// each queue into the matching list. Go has no native MPMC queue with
// try-pop the way crossbeam::SegQueue does, so each queue here is a
// mutex-guarded slice — functionally identical in shape, not lock-free
// internally.
func MirrorQueue(l *List, opts ...Option) error {
	cfg := newConfig(opts...)

	queues := make([]struct {
		mu    sync.Mutex
		items []Vertex
	}, l.n)

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for u := 0; u < l.n; u++ {
		u := u
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			for _, v := range l.lists[u] {
				if v < u {
					queues[v].mu.Lock()
					queues[v].items = append(queues[v].items, u)
					queues[v].mu.Unlock()
				}
			}
		}); submitErr != nil {
			wg.Done()
			return submitErr
		}
	}
	wg.Wait()

	for v := 0; v < l.n; v++ {
		v := v
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			l.lists[v] = append(l.lists[v], queues[v].items...)
		}); submitErr != nil {
			wg.Done()
			return submitErr
		}
	}
	wg.Wait()

	return nil
}
