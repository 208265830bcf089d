package sample

import (
	"testing"

	"github.com/scottcagno/containers/pkg/hashmap/chained"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturePair_Equal(t *testing.T) {
	tcs := []struct {
		name  string
		a, b  FeaturePair
		equal bool
	}{
		{name: "same", a: FeaturePair{1, 2}, b: FeaturePair{1, 2}, equal: true},
		{name: "first differs", a: FeaturePair{1, 2}, b: FeaturePair{3, 2}},
		{name: "second differs", a: FeaturePair{1, 2}, b: FeaturePair{1, 3}},
		{name: "swapped", a: FeaturePair{1, 2}, b: FeaturePair{2, 1}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, tc.a.Equal(tc.b))
			assert.Equal(t, tc.equal, tc.b.Equal(tc.a))
			if tc.equal {
				assert.Equal(t, tc.a.Hash(), tc.b.Hash())
			}
		})
	}
}

func TestFeaturePair_Hash(t *testing.T) {
	assert.Equal(t, int32(31*(31*17+1)+2), FeaturePair{1, 2}.Hash())
	assert.Equal(t, int32(31*31*17), FeaturePair{0, 0}.Hash())
}

func TestGenerator(t *testing.T) {
	a := NewGenerator(7, 100)
	b := NewGenerator(7, 100)
	for i := 0; i < 50; i++ {
		p := a.Pair()
		assert.Equal(t, p, b.Pair())
		assert.True(t, p.F1 >= 0 && p.F1 < 100)
		assert.True(t, p.F2 >= 0 && p.F2 < 100)
	}
	assert.Equal(t, Student{ID: 3, Name: "Student3"}, a.Student(3))
}

func TestFeaturePair_HashMap(t *testing.T) {
	hm, err := chained.New[FeaturePair, Student](100)
	require.NoError(t, err)
	g := NewGenerator(42, 10000)
	for i := 0; i < 1000; i++ {
		hm.Put(g.Pair(), g.Student(i))
	}
	var total int
	for _, n := range hm.BucketSizes() {
		total += n
	}
	assert.Equal(t, hm.Len(), total)

	// an equal but distinct value finds the stored entry
	hm.Put(FeaturePair{F1: 10001, F2: 5}, Student{ID: -1, Name: "probe"})
	got, ok := hm.Get(FeaturePair{F1: 10001, F2: 5})
	assert.True(t, ok)
	assert.Equal(t, "probe", got.Name)
	k, ok := hm.GetKey(Student{ID: -1, Name: "probe"})
	assert.True(t, ok)
	assert.Equal(t, FeaturePair{F1: 10001, F2: 5}, k)
}
