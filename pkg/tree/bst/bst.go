package bst

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Entry represents a key value pair handed out by the tree
// when scanning or iterating over it.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.Key, e.Value)
}

// Comparator must return a negative number when a < b, zero when
// a == b and a positive number when a > b. It has to be a strict
// total order over K, otherwise the tree is in undefined territory.
type Comparator[K any] func(a, b K) int

func ordered[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	}
	if a > b {
		return +1
	}
	return 0
}

type node[K any, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is an unbalanced binary search tree presenting ordered
// map semantics. It is not safe for concurrent use.
type Tree[K any, V any] struct {
	root    *node[K, V]
	count   int
	compare Comparator[K]
}

// New returns an empty tree using the natural ordering of K.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		compare: ordered[K],
	}
}

// NewWithComparator returns an empty tree ordered by the provided
// comparator. It panics if cmp is nil.
func NewWithComparator[K any, V any](cmp Comparator[K]) *Tree[K, V] {
	if cmp == nil {
		panic(ErrNilComparator)
	}
	return &Tree[K, V]{
		compare: cmp,
	}
}

// Put inserts or updates the value stored under key. It returns the
// previous value and true if the key already existed.
func (t *Tree[K, V]) Put(key K, val V) (V, bool) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, val: val}
		t.count++
		return *new(V), false
	}
	var parent *node[K, V]
	var cmp int
	x := t.root
	for x != nil {
		parent = x
		cmp = t.compare(key, x.key)
		switch {
		case cmp < 0:
			x = x.left
		case cmp > 0:
			x = x.right
		default:
			// same key, the shape of the tree does not change
			old := x.val
			x.val = val
			return old, true
		}
	}
	n := &node[K, V]{key: key, val: val}
	if cmp < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.count++
	return *new(V), false
}

// Get returns the value stored under key, or false if none could be found.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if x := t.search(key); x != nil {
		return x.val, true
	}
	return *new(V), false
}

// Has reports whether key is present in the tree.
func (t *Tree[K, V]) Has(key K) bool {
	return t.search(key) != nil
}

func (t *Tree[K, V]) search(key K) *node[K, V] {
	x := t.root
	for x != nil {
		cmp := t.compare(key, x.key)
		switch {
		case cmp < 0:
			x = x.left
		case cmp > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

// Delete removes key from the tree and returns the value it held. If
// the key is not present the tree is left untouched and false is returned.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	var removed V
	var ok bool
	t.root, removed, ok = t.delete(t.root, key)
	if ok {
		t.count--
	}
	return removed, ok
}

// delete removes key from the subtree rooted at x and returns the new
// subtree root. Nodes with two children take the key and value of their
// in-order successor, which is then removed from the right subtree.
func (t *Tree[K, V]) delete(x *node[K, V], key K) (*node[K, V], V, bool) {
	if x == nil {
		return nil, *new(V), false
	}
	var removed V
	var ok bool
	cmp := t.compare(key, x.key)
	switch {
	case cmp < 0:
		x.left, removed, ok = t.delete(x.left, key)
		return x, removed, ok
	case cmp > 0:
		x.right, removed, ok = t.delete(x.right, key)
		return x, removed, ok
	}
	removed = x.val
	// leaf or single child, splice the child (possibly nil) in
	if x.left == nil {
		return x.right, removed, true
	}
	if x.right == nil {
		return x.left, removed, true
	}
	// two children
	succ := minNode(x.right)
	x.key, x.val = succ.key, succ.val
	x.right, _, _ = t.delete(x.right, succ.key)
	return x, removed, true
}

// minNode traverses from x to the left until left is nil
func minNode[K any, V any](x *node[K, V]) *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode traverses from x to the right until right is nil
func maxNode[K any, V any](x *node[K, V]) *node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}
	x := minNode(t.root)
	return Entry[K, V]{Key: x.key, Value: x.val}, true
}

// Max returns the entry with the largest key.
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}
	x := maxNode(t.root)
	return Entry[K, V]{Key: x.key, Value: x.val}, true
}

// Len returns the number of entries currently in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	t.Scan(func(e Entry[K, V]) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
