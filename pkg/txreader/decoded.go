package txreader

import (
	"fmt"

	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// DecodedRow is one instruction row decoded into its typed variant, in
// (txid, order) replay order.
type DecodedRow struct {
	Txid  uint64
	Order uint8
	Name  string
	Ix    whirlpool.DecodedInstruction
}

// FetchInstructionsInSlot fetches and decodes every instruction of one slot,
// sorted by (txid, order). A payload that fails to decode is an error; the
// replay engine treats it as fatal.
func (r *Reader) FetchInstructionsInSlot(slot uint64) ([]DecodedRow, error) {
	rows, err := r.fetchInstructionRows(schema.MinTxid(slot), schema.MaxTxid(slot))
	if err != nil {
		return nil, err
	}

	decoded := make([]DecodedRow, 0, len(rows))
	for _, row := range rows {
		ix, err := whirlpool.FromJSON(row.Name, row.Payload)
		if err != nil {
			return nil, fmt.Errorf("txid %d order %d: %w", row.Txid, row.Order, err)
		}
		decoded = append(decoded, DecodedRow{
			Txid:  row.Txid,
			Order: row.Order,
			Name:  row.Name,
			Ix:    ix,
		})
	}
	return decoded, nil
}
