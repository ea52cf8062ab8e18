package replay

import (
	"fmt"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
)

// WritableAccountSnapshot captures the pre-images of every account a single
// instruction may mutate. It is populated immediately before the engine
// applies the instruction and is read-only afterwards; downstream event
// derivation reads old account states from it.
type WritableAccountSnapshot struct {
	pre map[string]preImage
}

type preImage struct {
	data   []byte
	exists bool
}

// NewSnapshot captures the current values of pubkeys from the store.
func NewSnapshot(store accounts.Store, pubkeys []string) (*WritableAccountSnapshot, error) {
	snapshot := &WritableAccountSnapshot{pre: make(map[string]preImage, len(pubkeys))}
	for _, pubkey := range pubkeys {
		if _, seen := snapshot.pre[pubkey]; seen {
			continue
		}
		data, ok, err := store.Get(pubkey)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot %s: %w", pubkey, err)
		}
		snapshot.pre[pubkey] = preImage{data: data, exists: ok}
	}
	return snapshot, nil
}

// Get returns the pre-image of pubkey. Asking for an account outside the
// snapshot set is a data-integrity failure: the instruction's writable set
// was resolved incorrectly.
func (s *WritableAccountSnapshot) Get(pubkey string) ([]byte, bool, error) {
	img, ok := s.pre[pubkey]
	if !ok {
		return nil, false, fmt.Errorf("account %s is not in the writable snapshot", pubkey)
	}
	return img.data, img.exists, nil
}

// Contains reports whether pubkey is part of the snapshot set.
func (s *WritableAccountSnapshot) Contains(pubkey string) bool {
	_, ok := s.pre[pubkey]
	return ok
}

// Len returns the number of snapshotted accounts.
func (s *WritableAccountSnapshot) Len() int {
	return len(s.pre)
}
