package accounts

// Store is a keyed byte-blob store with ordered traversal. The replay engine
// exclusively owns its store; snapshots handed to derivation code are
// read-only views valid only for the current slot.
type Store interface {
	// Get returns the current data of pubkey, or ok=false if absent.
	Get(pubkey string) (data []byte, ok bool, err error)

	// Upsert replaces or inserts the data of pubkey.
	Upsert(pubkey string, data []byte) error

	// Delete removes pubkey. Deleting an absent key is not an error.
	Delete(pubkey string) error

	// Traverse visits every live entry exactly once in lexicographic pubkey
	// order. The store must not be mutated during traversal.
	Traverse(fn func(pubkey string, data []byte) error) error

	// Close releases any resources held by the store.
	Close() error
}
