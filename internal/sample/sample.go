// Package sample holds the key and value types the demo driver feeds
// into the containers, along with a seeded generator for them.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/scottcagno/containers/pkg/hashmap/chained"
)

// FeaturePair is a composite hash map key. Two pairs are equal when
// both features are equal, and equal pairs always share a hash.
type FeaturePair struct {
	F1 int32
	F2 int32
}

var _ chained.Key[FeaturePair] = FeaturePair{}

func (p FeaturePair) Equal(other FeaturePair) bool {
	return p.F1 == other.F1 && p.F2 == other.F2
}

func (p FeaturePair) Hash() int32 {
	return chained.Combine(17, p.F1, p.F2)
}

func (p FeaturePair) String() string {
	return fmt.Sprintf("(%d,%d)", p.F1, p.F2)
}

// Student is the value stored against each FeaturePair.
type Student struct {
	ID   int
	Name string
}

func (s Student) String() string {
	return fmt.Sprintf("%s#%d", s.Name, s.ID)
}

// Generator produces random feature pairs with features in [0, limit).
type Generator struct {
	rnd   *rand.Rand
	limit int
}

func NewGenerator(seed int64, limit int) *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		limit: limit,
	}
}

func (g *Generator) Pair() FeaturePair {
	return FeaturePair{
		F1: int32(g.rnd.Intn(g.limit)),
		F2: int32(g.rnd.Intn(g.limit)),
	}
}

// Student returns the i'th student.
func (g *Generator) Student(i int) Student {
	return Student{ID: i, Name: fmt.Sprintf("Student%d", i)}
}
