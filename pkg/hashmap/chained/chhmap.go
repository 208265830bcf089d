package chained

import "github.com/pkg/errors"

const defaultBucketCount = 11

// entryNode is a node in a bucket's singly linked chain
type entryNode[K any, V any] struct {
	key  K
	val  V
	next *entryNode[K, V]
}

// bucket represents a single slot in the HashMap table
type bucket[K Key[K], V any] struct {
	head *entryNode[K, V]
	size int
}

// insert prepends a new entry unless an equal key is already chained,
// in which case the value is replaced in place. It returns the previous
// value and true when an existing entry was updated.
func (b *bucket[K, V]) insert(key K, val V) (V, bool) {
	for current := b.head; current != nil; current = current.next {
		if current.key.Equal(key) {
			old := current.val
			current.val = val
			return old, true
		}
	}
	b.head = &entryNode[K, V]{
		key:  key,
		val:  val,
		next: b.head,
	}
	b.size++
	// no previous value, so return false
	return *new(V), false
}

func (b *bucket[K, V]) search(key K) (V, bool) {
	for current := b.head; current != nil; current = current.next {
		if current.key.Equal(key) {
			return current.val, true
		}
	}
	return *new(V), false
}

func (b *bucket[K, V]) delete(key K) (V, bool) {
	var previous *entryNode[K, V]
	for current := b.head; current != nil; current = current.next {
		if current.key.Equal(key) {
			if previous == nil {
				b.head = current.next
			} else {
				previous.next = current.next
			}
			b.size--
			return current.val, true
		}
		previous = current
	}
	return *new(V), false
}

func (b *bucket[K, V]) scan(it Iterator[K, V]) bool {
	for current := b.head; current != nil; current = current.next {
		if !it(current.key, current.val) {
			return false
		}
	}
	return true
}

// HashMap is a separately chained hashtable with a bucket count that
// is fixed at construction. It never resizes or rehashes, so the chains
// simply grow as the load factor climbs. HashMap is not safe for
// concurrent use.
//
// Keys must honor the Key contract: keys that are Equal have to return
// the same Hash, otherwise lookups will silently miss.
type HashMap[K Key[K], V comparable] struct {
	keys    int
	buckets []bucket[K, V]
}

// New returns a new HashMap with the specified number of buckets.
// A bucketCount below one is rejected with ErrInvalidBucketCount.
func New[K Key[K], V comparable](bucketCount int) (*HashMap[K, V], error) {
	if bucketCount <= 0 {
		return nil, errors.Wrapf(ErrInvalidBucketCount, "got %d", bucketCount)
	}
	return &HashMap[K, V]{
		buckets: make([]bucket[K, V], bucketCount),
	}, nil
}

// NewDefault returns a new HashMap with 11 buckets.
func NewDefault[K Key[K], V comparable]() *HashMap[K, V] {
	return &HashMap[K, V]{
		buckets: make([]bucket[K, V], defaultBucketCount),
	}
}

// index maps the key hash onto [0, BucketCount). The absolute value is
// taken in 64 bits so math.MinInt32 lands on a valid bucket as well.
func (m *HashMap[K, V]) index(key K) int {
	h := int64(key.Hash())
	if h < 0 {
		h = -h
	}
	return int(h % int64(len(m.buckets)))
}

// Put inserts a key value entry and returns the previous value and true
// if the key was already present.
func (m *HashMap[K, V]) Put(key K, val V) (V, bool) {
	old, ok := m.buckets[m.index(key)].insert(key, val)
	if !ok { // means not updated, aka a new one was inserted
		m.keys++
	}
	return old, ok
}

// Get returns a value for a given key, or returns false if none could be found
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	return m.buckets[m.index(key)].search(key)
}

// Remove unlinks the entry for a given key and returns its value, or false
func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	val, ok := m.buckets[m.index(key)].delete(key)
	if ok {
		m.keys--
	}
	return val, ok
}

// Contains reports whether any entry holds val. It visits every chain.
func (m *HashMap[K, V]) Contains(val V) bool {
	_, ok := m.GetKey(val)
	return ok
}

// GetKey returns the key of the first entry holding val, walking the
// buckets in index order and each chain from its head.
func (m *HashMap[K, V]) GetKey(val V) (K, bool) {
	var found K
	var ok bool
	m.Range(func(k K, v V) bool {
		if v == val {
			found, ok = k, true
			return false
		}
		return true
	})
	return found, ok
}

// Iterator is an iterator function type
type Iterator[K any, V any] func(key K, val V) bool

// Range takes an Iterator and ranges the HashMap as long
// as the iterator function continues to be true. Range is not
// safe to perform an insert or remove operation while ranging!
func (m *HashMap[K, V]) Range(it Iterator[K, V]) {
	for i := range m.buckets {
		if !m.buckets[i].scan(it) {
			return
		}
	}
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[K, V]) Len() int {
	return m.keys
}

// BucketCount returns the fixed number of buckets
func (m *HashMap[K, V]) BucketCount() int {
	return len(m.buckets)
}

// BucketSizes returns the chain length of every bucket, indexed by bucket.
func (m *HashMap[K, V]) BucketSizes() []int {
	sizes := make([]int, len(m.buckets))
	for i := range m.buckets {
		sizes[i] = m.buckets[i].size
	}
	return sizes
}

// LoadFactor returns entries per bucket. It is informational only.
func (m *HashMap[K, V]) LoadFactor() float64 {
	return float64(m.keys) / float64(len(m.buckets))
}
