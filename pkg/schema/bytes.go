package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Bytes is a byte blob that serializes as a JSON array of numbers, matching
// the layout of the published state artifacts. encoding/json's default
// base64 string encoding for []byte would change the artifact format.
type Bytes []byte

// MarshalJSON renders the blob as [b0,b1,...].
func (b Bytes) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, len(b)*4+2)
	out = append(out, '[')
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	out = append(out, ']')
	return out, nil
}

// UnmarshalJSON parses [b0,b1,...] back into the blob.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var raw []uint16
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]byte, len(raw))
	for i, v := range raw {
		if v > 0xff {
			return fmt.Errorf("byte value out of range: %d", v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}
