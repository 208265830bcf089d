package containers

// Map is the behavior shared by the ordered map (pkg/tree/bst) and
// the chained hash map (pkg/hashmap/chained). Neither container is
// safe for concurrent use; callers sharing one across goroutines have
// to guard it with their own lock.
type Map[K any, V any] interface {
	Put(key K, val V) (V, bool)
	Get(key K) (V, bool)
	Len() int
}

// OrderedMap is a Map that can also delete keys and walk its
// entries in ascending key order.
type OrderedMap[K any, V any, E any] interface {
	Map[K, V]
	Delete(key K) (V, bool)
	Scan(fn func(e E) bool)
}

// HashMap is a Map with a fixed set of buckets that can be inspected.
type HashMap[K any, V any] interface {
	Map[K, V]
	Remove(key K) (V, bool)
	Contains(val V) bool
	GetKey(val V) (K, bool)
	BucketCount() int
	BucketSizes() []int
}
