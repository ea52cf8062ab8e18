package checkpoint

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
)

// CompressProgramData encodes the program binary as gzip(base64(bytes)).
// Identical inputs yield byte-identical output: the gzip header carries no
// timestamp and the compression level is fixed.
func CompressProgramData(programData []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(base64.StdEncoding.EncodeToString(programData))); err != nil {
		return nil, fmt.Errorf("failed to compress program data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress program data: %w", err)
	}
	return buf.Bytes(), nil
}

// DecompressProgramData reverses CompressProgramData.
func DecompressProgramData(compressed []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress program data: %w", err)
	}
	defer gz.Close()
	b64, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress program data: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(b64)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode program data: %w", err)
	}
	return data, nil
}

// CompressAccounts encodes the full account set as a gzip-compressed
// headerless CSV of (pubkey, base64(data)) rows in ascending pubkey order.
// The store's lexicographic traversal makes the blob deterministic.
func CompressAccounts(store accounts.Store) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	w := csv.NewWriter(gz)

	err := store.Traverse(func(pubkey string, data []byte) error {
		return w.Write([]string{pubkey, base64.StdEncoding.EncodeToString(data)})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize accounts: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to serialize accounts: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress accounts: %w", err)
	}
	return buf.Bytes(), nil
}

// DecompressAccountsInto loads a compressed account CSV into store.
func DecompressAccountsInto(compressed []byte, store accounts.Store) error {
	gz, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return fmt.Errorf("failed to decompress accounts: %w", err)
	}
	defer gz.Close()

	r := csv.NewReader(gz)
	r.FieldsPerRecord = 2
	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to parse account csv: %w", err)
		}
		data, err := base64.StdEncoding.DecodeString(record[1])
		if err != nil {
			return fmt.Errorf("failed to decode account %s: %w", record[0], err)
		}
		if err := store.Upsert(record[0], data); err != nil {
			return fmt.Errorf("failed to load account %s: %w", record[0], err)
		}
	}
}
