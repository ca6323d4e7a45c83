package usecase

import "sync"

// keyedMutex hands out one mutex per resource id so check-then-act sequences
// (seat admission, slot insertion) run as a single critical section per
// package or per guide calendar without serializing unrelated resources.
type keyedMutex struct {
	mu sync.Map // string -> *sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	v, _ := k.mu.LoadOrStore(key, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
