package domain

// Pool is the working set of candidate contracts considered for role
// assignment, keyed by address (fetched ABIs) or content hash (ad-hoc ABIs).
// Iteration order is insertion order: assignment outcomes depend on it, so a
// plain map will not do.
type Pool struct {
	keys    []string
	entries map[string]ABI
}

// NewPool creates an empty candidate pool.
func NewPool() *Pool {
	return &Pool{entries: make(map[string]ABI)}
}

// Add inserts an entry at the end of the pool. If the key is already present
// the existing entry wins and Add reports false; duplicate additions are
// idempotent, never an error.
func (p *Pool) Add(key string, abi ABI) bool {
	if _, exists := p.entries[key]; exists {
		return false
	}
	p.keys = append(p.keys, key)
	p.entries[key] = abi
	return true
}

// Get returns the ABI stored under key.
func (p *Pool) Get(key string) (ABI, bool) {
	abi, ok := p.entries[key]
	return abi, ok
}

// Keys returns the pool keys in insertion order.
func (p *Pool) Keys() []string {
	return p.keys
}

// Len returns the number of pool entries.
func (p *Pool) Len() int {
	return len(p.keys)
}
