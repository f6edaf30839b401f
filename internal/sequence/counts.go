package sequence

// Counts is a frequency tally that remembers the order keys were first seen.
// The zero value is not usable; use NewCounts.
type Counts[K comparable] struct {
	order []K
	n     map[K]int
}

// NewCounts returns a tally with each seed key present at zero.
func NewCounts[K comparable](seed ...K) *Counts[K] {
	c := &Counts[K]{}
	c.Reset(seed...)
	return c
}

// Reset drops every key, then re-inserts seed at zero.
func (c *Counts[K]) Reset(seed ...K) {
	c.order = c.order[:0]
	c.n = make(map[K]int, len(seed))
	for _, k := range seed {
		c.Register(k)
	}
}

// Register inserts k at zero if it has not been seen and reports whether it was new.
func (c *Counts[K]) Register(k K) bool {
	if _, ok := c.n[k]; ok {
		return false
	}
	c.n[k] = 0
	c.order = append(c.order, k)
	return true
}

// Add registers k and increments it, returning the new count.
func (c *Counts[K]) Add(k K) int {
	c.Register(k)
	c.n[k]++
	return c.n[k]
}

// Get returns the count for k (zero when absent).
func (c *Counts[K]) Get(k K) int { return c.n[k] }

// Has reports whether k has been registered, even at zero.
func (c *Counts[K]) Has(k K) bool {
	_, ok := c.n[k]
	return ok
}

// Len is the number of distinct keys.
func (c *Counts[K]) Len() int { return len(c.order) }

// Keys returns the keys in first-seen order.
func (c *Counts[K]) Keys() []K { return append([]K(nil), c.order...) }

// Total is the sum of all counts.
func (c *Counts[K]) Total() int {
	t := 0
	for _, v := range c.n {
		t += v
	}
	return t
}

// Each calls fn for every key in first-seen order.
func (c *Counts[K]) Each(fn func(k K, n int)) {
	for _, k := range c.order {
		fn(k, c.n[k])
	}
}

// Clone returns an independent copy.
func (c *Counts[K]) Clone() *Counts[K] {
	cp := &Counts[K]{
		order: append([]K(nil), c.order...),
		n:     make(map[K]int, len(c.n)),
	}
	for k, v := range c.n {
		cp.n[k] = v
	}
	return cp
}
