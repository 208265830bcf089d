package bst

// Scan walks the tree in ascending key order (left, self, right) and
// calls fn for every entry until fn returns false. The tree must not
// be modified while scanning.
func (t *Tree[K, V]) Scan(fn func(e Entry[K, V]) bool) {
	var stack []*node[K, V]
	x := t.root
	for x != nil || len(stack) > 0 {
		for x != nil {
			stack = append(stack, x)
			x = x.left
		}
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(Entry[K, V]{Key: x.key, Value: x.val}) {
			return
		}
		x = x.right
	}
}

// Entries returns a snapshot of every entry in ascending key order.
func (t *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.count)
	t.Scan(func(e Entry[K, V]) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Keys returns a snapshot of every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.Scan(func(e Entry[K, V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Iterator is a cursor over a snapshot of the tree taken when the
// iterator was created. Later changes to the tree are not reflected.
//
//	it := tree.Iter()
//	for it.Next() {
//		e := it.Entry()
//	}
type Iterator[K any, V any] struct {
	entries []Entry[K, V]
	pos     int
}

// Iter returns an Iterator positioned before the first entry.
func (t *Tree[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{
		entries: t.Entries(),
		pos:     -1,
	}
}

// Next advances the iterator and reports whether an entry is available.
func (it *Iterator[K, V]) Next() bool {
	if it.pos < len(it.entries) {
		it.pos++
	}
	return it.pos < len(it.entries)
}

// Entry returns the current entry. It is only valid after a call
// to Next has returned true.
func (it *Iterator[K, V]) Entry() Entry[K, V] {
	if it.pos < 0 || it.pos >= len(it.entries) {
		return Entry[K, V]{}
	}
	return it.entries[it.pos]
}

// Reset rewinds the iterator so the same snapshot can be walked again.
func (it *Iterator[K, V]) Reset() {
	it.pos = -1
}

// Len returns the number of entries in the snapshot.
func (it *Iterator[K, V]) Len() int {
	return len(it.entries)
}
