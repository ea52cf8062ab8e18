package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStores(t *testing.T) map[string]Store {
	t.Helper()
	boltStore, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = boltStore.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"bolt":   boltStore,
	}
}

func TestStoreGetUpsertDelete(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get("A")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Upsert("A", []byte{1, 2, 3}))
			data, ok, err := store.Get("A")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte{1, 2, 3}, data)

			// upsert replaces in place
			require.NoError(t, store.Upsert("A", []byte{9}))
			data, _, err = store.Get("A")
			require.NoError(t, err)
			assert.Equal(t, []byte{9}, data)

			require.NoError(t, store.Delete("A"))
			_, ok, err = store.Get("A")
			require.NoError(t, err)
			assert.False(t, ok)

			// deleting an absent key is not an error
			require.NoError(t, store.Delete("A"))
		})
	}
}

func TestStoreTraverseOrder(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Upsert("C", []byte{3}))
			require.NoError(t, store.Upsert("A", []byte{1}))
			require.NoError(t, store.Upsert("B", []byte{2}))
			require.NoError(t, store.Delete("B"))

			var visited []string
			err := store.Traverse(func(pubkey string, data []byte) error {
				visited = append(visited, pubkey)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "C"}, visited)
		})
	}
}

func TestStoreUpsertCopiesData(t *testing.T) {
	store := NewMemoryStore()
	src := []byte{1, 2, 3}
	require.NoError(t, store.Upsert("A", src))
	src[0] = 99
	data, _, err := store.Get("A")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}
