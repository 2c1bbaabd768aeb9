package reviews

// Allocator issues review IDs that are unique within one merge scope.
// It is a plain monotonic counter: callers claim every externally
// supplied ID first, then Next skips anything already claimed. Owned
// by the request that performs the merge, never shared.
type Allocator struct {
	next int64
	used map[int64]struct{}
}

func NewAllocator(seed int64) *Allocator {
	a := &Allocator{used: make(map[int64]struct{})}
	a.Reset(seed)
	return a
}

// Claim records an externally supplied ID as used and reports whether
// it was free.
func (a *Allocator) Claim(id int64) bool {
	if _, taken := a.used[id]; taken {
		return false
	}
	a.used[id] = struct{}{}
	return true
}

// Used reports whether id has been issued or claimed.
func (a *Allocator) Used(id int64) bool {
	_, taken := a.used[id]
	return taken
}

// Next issues the smallest unclaimed ID at or above the seed.
func (a *Allocator) Next() int64 {
	for {
		id := a.next
		a.next++
		if _, taken := a.used[id]; !taken {
			a.used[id] = struct{}{}
			return id
		}
	}
}

// Reset drops all claimed IDs and restarts the counter at seed.
// Negative seeds clamp to zero; IDs are never negative.
func (a *Allocator) Reset(seed int64) {
	if seed < 0 {
		seed = 0
	}
	a.next = seed
	a.used = make(map[int64]struct{})
}
