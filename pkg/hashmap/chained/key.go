package chained

import "github.com/cespare/xxhash/v2"

// Key is the contract a HashMap key type has to satisfy. Equal and
// Hash must agree: whenever a.Equal(b) is true, a.Hash() == b.Hash()
// has to hold as well. The HashMap does not check this; a key type
// that breaks it will see lookups and removals miss.
type Key[K any] interface {
	Equal(other K) bool
	Hash() int32
}

// Combine folds parts into seed the usual 31*h+x way, wrapping on
// overflow. It is a convenient Hash for composite keys.
func Combine(seed int32, parts ...int32) int32 {
	h := seed
	for _, p := range parts {
		h = 31*h + p
	}
	return h
}

// StringKey is a Key for plain strings, hashed with xxhash.
type StringKey string

func (s StringKey) Equal(other StringKey) bool {
	return s == other
}

func (s StringKey) Hash() int32 {
	return int32(uint32(xxhash.Sum64String(string(s))))
}

// IntKey is a Key for integers. The hash folds the high word into
// the low one.
type IntKey int64

func (i IntKey) Equal(other IntKey) bool {
	return i == other
}

func (i IntKey) Hash() int32 {
	return int32(uint64(i) ^ uint64(i)>>32)
}
