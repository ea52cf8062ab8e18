package convert

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"

	"github.com/everlastingsong/sedimentology/pkg/schema"
)

// jsonl lines hold a whole slot's transactions; allow generously sized ones.
const maxLineBytes = 64 * 1024 * 1024

// LoadStateFile reads a whirlpool-state json.gz file.
func LoadStateFile(path string) (*schema.WhirlpoolState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	defer gz.Close()

	var state schema.WhirlpoolState
	if err := json.NewDecoder(gz).Decode(&state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return &state, nil
}

// LoadTokenFile reads a whirlpool-token json.gz file into a decimals map.
func LoadTokenFile(path string) (map[string]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}
	defer gz.Close()

	var token schema.WhirlpoolToken
	if err := json.NewDecoder(gz).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	decimals := make(map[string]uint8, len(token.Decimals))
	for _, d := range token.Decimals {
		decimals[d.Mint] = d.Decimals
	}
	return decimals, nil
}

// scanJSONLines streams the lines of a jsonl.gz file into fn.
func scanJSONLines(path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 1024*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// jsonlWriter writes gzip-compressed jsonl files.
type jsonlWriter struct {
	file *os.File
	gz   *gzip.Writer
	buf  *bufio.Writer
}

func newJSONLWriter(path string) (*jsonlWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	gz := gzip.NewWriter(f)
	return &jsonlWriter{file: f, gz: gz, buf: bufio.NewWriter(gz)}, nil
}

func (w *jsonlWriter) WriteLine(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.buf.Write(data); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

func (w *jsonlWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return err
	}
	if err := w.gz.Close(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
