package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// fakeProgram applies canned writes and records what it saw.
type fakeProgram struct {
	writes       []AccountWrite
	err          error
	deployed     [][]byte
	seenPreState map[string][]byte
}

func (f *fakeProgram) Deploy(programData []byte) error {
	f.deployed = append(f.deployed, programData)
	return nil
}

func (f *fakeProgram) Execute(ix whirlpool.DecodedInstruction, snapshot *WritableAccountSnapshot) ([]AccountWrite, error) {
	f.seenPreState = make(map[string][]byte)
	for _, pubkey := range ix.WritableAccounts() {
		data, exists, err := snapshot.Get(pubkey)
		if err != nil {
			return nil, err
		}
		if exists {
			f.seenPreState[pubkey] = data
		}
	}
	return f.writes, f.err
}

func swapIx() whirlpool.DecodedInstruction {
	return &whirlpool.SwapInstruction{
		KeyWhirlpool:   "POOL",
		KeyTokenVaultA: "VA",
		KeyTokenVaultB: "VB",
		KeyTickArray0:  "TA0",
		KeyTickArray1:  "TA1",
		KeyTickArray2:  "TA2",
		KeyOracle:      "ORACLE",
	}
}

func TestReplayInstructionCommitsWrites(t *testing.T) {
	store := accounts.NewMemoryStore()
	require.NoError(t, store.Upsert("POOL", []byte{1}))

	program := &fakeProgram{writes: []AccountWrite{
		{Pubkey: "POOL", Data: []byte{2}},
		{Pubkey: "TA0", Data: []byte{7}},
	}}
	engine := NewEngine(schema.Slot{Slot: 100, BlockHeight: 10}, nil, store, program)

	snapshot, err := engine.ReplayInstruction(swapIx())
	require.NoError(t, err)

	// the program saw the pre-image
	assert.Equal(t, []byte{1}, program.seenPreState["POOL"])

	// the snapshot still holds the pre-image after the store moved on
	pre, exists, err := snapshot.Get("POOL")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []byte{1}, pre)

	// and the store holds the post-images
	post, _, err := store.Get("POOL")
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, post)
	created, ok, err := store.Get("TA0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{7}, created)
}

func TestReplayInstructionDelete(t *testing.T) {
	store := accounts.NewMemoryStore()
	require.NoError(t, store.Upsert("POOL", []byte{1}))

	program := &fakeProgram{writes: []AccountWrite{{Pubkey: "POOL", Delete: true}}}
	engine := NewEngine(schema.Slot{}, nil, store, program)

	_, err := engine.ReplayInstruction(swapIx())
	require.NoError(t, err)

	_, ok, err := store.Get("POOL")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReplayInstructionRejectsWriteOutsideWritableSet(t *testing.T) {
	program := &fakeProgram{writes: []AccountWrite{{Pubkey: "ELSEWHERE", Data: []byte{1}}}}
	engine := NewEngine(schema.Slot{}, nil, accounts.NewMemoryStore(), program)

	_, err := engine.ReplayInstruction(swapIx())
	assert.Error(t, err)
}

func TestReplayInstructionPropagatesProgramError(t *testing.T) {
	program := &fakeProgram{err: assert.AnError}
	engine := NewEngine(schema.Slot{}, nil, accounts.NewMemoryStore(), program)

	_, err := engine.ReplayInstruction(swapIx())
	assert.Error(t, err)
}

func TestUpdateProgramData(t *testing.T) {
	program := &fakeProgram{}
	engine := NewEngine(schema.Slot{}, []byte{1}, accounts.NewMemoryStore(), program)

	require.NoError(t, engine.UpdateProgramData([]byte{2, 3}))
	assert.Equal(t, []byte{2, 3}, engine.ProgramData())
	require.Len(t, program.deployed, 1)
	assert.Equal(t, []byte{2, 3}, program.deployed[0])
}

func TestUpdateSlot(t *testing.T) {
	engine := NewEngine(schema.Slot{Slot: 100, BlockHeight: 10, BlockTime: 1}, nil,
		accounts.NewMemoryStore(), &fakeProgram{})

	engine.UpdateSlot(101, 11, 2)
	assert.Equal(t, schema.Slot{Slot: 101, BlockHeight: 11, BlockTime: 2}, engine.Slot())
}

func TestSnapshotRejectsForeignAccount(t *testing.T) {
	snapshot, err := NewSnapshot(accounts.NewMemoryStore(), []string{"A"})
	require.NoError(t, err)

	_, _, err = snapshot.Get("B")
	assert.Error(t, err)

	_, exists, err := snapshot.Get("A")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSnapshotDeduplicatesPubkeys(t *testing.T) {
	store := accounts.NewMemoryStore()
	require.NoError(t, store.Upsert("A", []byte{1}))
	snapshot, err := NewSnapshot(store, []string{"A", "A", "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
}
