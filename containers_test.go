package containers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/containers"
	"github.com/scottcagno/containers/pkg/hashmap/chained"
	"github.com/scottcagno/containers/pkg/tree/bst"
)

var (
	_ containers.OrderedMap[int, string, bst.Entry[int, string]] = (*bst.Tree[int, string])(nil)
	_ containers.HashMap[chained.IntKey, string]                  = (*chained.HashMap[chained.IntKey, string])(nil)
)

func TestMap_PutThenGet(t *testing.T) {
	hm, err := chained.New[chained.IntKey, string](7)
	require.NoError(t, err)

	tcs := []struct {
		name string
		m    containers.Map[int, string]
	}{
		{name: "bst", m: bst.New[int, string]()},
		{name: "chained", m: intKeyed{hm}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, 0, tc.m.Len())
			_, ok := tc.m.Get(1)
			assert.False(t, ok)

			for i := 0; i < 100; i++ {
				tc.m.Put(i%40, "v")
			}
			for i := 0; i < 40; i += 3 {
				tc.m.Put(i, "w")
			}
			assert.Equal(t, 40, tc.m.Len())
			for i := 0; i < 40; i++ {
				v, ok := tc.m.Get(i)
				assert.True(t, ok)
				if i%3 == 0 {
					assert.Equal(t, "w", v)
				} else {
					assert.Equal(t, "v", v)
				}
			}
		})
	}
}

// intKeyed adapts a chained map keyed by IntKey to plain int keys
type intKeyed struct {
	*chained.HashMap[chained.IntKey, string]
}

func (m intKeyed) Put(key int, val string) (string, bool) {
	return m.HashMap.Put(chained.IntKey(key), val)
}

func (m intKeyed) Get(key int) (string, bool) {
	return m.HashMap.Get(chained.IntKey(key))
}
