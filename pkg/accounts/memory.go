package accounts

import "sort"

// MemoryStore implements Store with an in-process map.
type MemoryStore struct {
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(pubkey string) ([]byte, bool, error) {
	data, ok := s.data[pubkey]
	return data, ok, nil
}

func (s *MemoryStore) Upsert(pubkey string, data []byte) error {
	owned := make([]byte, len(data))
	copy(owned, data)
	s.data[pubkey] = owned
	return nil
}

func (s *MemoryStore) Delete(pubkey string) error {
	delete(s.data, pubkey)
	return nil
}

func (s *MemoryStore) Traverse(fn func(pubkey string, data []byte) error) error {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn(k, s.data[k]); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) Close() error {
	s.data = nil
	return nil
}
