package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
)

func TestProgramDataRoundTrip(t *testing.T) {
	original := []byte{0x7f, 0x45, 0x4c, 0x46, 0, 1, 2, 3}
	compressed, err := CompressProgramData(original)
	require.NoError(t, err)

	back, err := DecompressProgramData(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, back)
}

func TestProgramDataDeterminism(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 251)
	}

	first, err := CompressProgramData(data)
	require.NoError(t, err)
	second, err := CompressProgramData(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAccountsRoundTrip(t *testing.T) {
	store := accounts.NewMemoryStore()
	require.NoError(t, store.Upsert("Whirl1", []byte{1, 2, 3}))
	require.NoError(t, store.Upsert("Abc", []byte{4}))
	require.NoError(t, store.Upsert("zzz", nil))

	compressed, err := CompressAccounts(store)
	require.NoError(t, err)

	restored := accounts.NewMemoryStore()
	require.NoError(t, DecompressAccountsInto(compressed, restored))

	var keys []string
	var values [][]byte
	require.NoError(t, restored.Traverse(func(pubkey string, data []byte) error {
		keys = append(keys, pubkey)
		values = append(values, data)
		return nil
	}))
	assert.Equal(t, []string{"Abc", "Whirl1", "zzz"}, keys)
	assert.Equal(t, []byte{4}, values[0])
	assert.Equal(t, []byte{1, 2, 3}, values[1])
	assert.Empty(t, values[2])
}

func TestAccountsDeterminismAcrossBackings(t *testing.T) {
	mem := accounts.NewMemoryStore()
	boltStore, err := accounts.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer boltStore.Close()

	entries := map[string][]byte{
		"PoolA": {1}, "PoolB": {2}, "Cfg": {3}, "Tick": {4},
	}
	for k, v := range entries {
		require.NoError(t, mem.Upsert(k, v))
		require.NoError(t, boltStore.Upsert(k, v))
	}

	fromMem, err := CompressAccounts(mem)
	require.NoError(t, err)
	fromBolt, err := CompressAccounts(boltStore)
	require.NoError(t, err)
	assert.Equal(t, fromMem, fromBolt)
}

func TestDecompressRejectsGarbage(t *testing.T) {
	_, err := DecompressProgramData([]byte("not gzip"))
	assert.Error(t, err)

	store := accounts.NewMemoryStore()
	assert.Error(t, DecompressAccountsInto([]byte("not gzip"), store))
}
