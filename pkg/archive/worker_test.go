package archive

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryTransport simulates object storage with a map.
type memoryTransport struct {
	remote  map[string][]byte
	corrupt bool
}

func newMemoryTransport() *memoryTransport {
	return &memoryTransport{remote: make(map[string][]byte)}
}

func (t *memoryTransport) Copy(src, dst string) error {
	if data, ok := t.remote[src]; ok {
		if t.corrupt {
			data = append([]byte{0}, data...)
		}
		return os.WriteFile(dst, data, 0644)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	t.remote[dst] = data
	return nil
}

func newTestWorker(t *testing.T, transport Transport) *Worker {
	t.Helper()
	return &Worker{
		transport:  transport,
		profile:    "alpha",
		remotePath: "r2:sedimentology/alpha",
		workDir:    t.TempDir(),
		logger:     zerolog.New(io.Discard),
	}
}

func writeArtifact(t *testing.T, w *Worker, kind string, content []byte) *artifact {
	t.Helper()
	a := &artifact{kind: kind, ext: "json.gz", tmp: w.tmpPath(kind)}
	require.NoError(t, os.WriteFile(a.tmp, content, 0644))
	hash, err := FileSHA256(a.tmp)
	require.NoError(t, err)
	a.hash = hash
	return a
}

func TestRemoteDest(t *testing.T) {
	w := newTestWorker(t, newMemoryTransport())
	assert.Equal(t,
		"r2:sedimentology/alpha/2024/0101/whirlpool-state-20240101.json.gz",
		w.remoteDest("state", "json.gz", 20240101))
	assert.Equal(t,
		"r2:sedimentology/alpha/2023/1231/whirlpool-transaction-20231231.jsonl.gz",
		w.remoteDest("transaction", "jsonl.gz", 20231231))
}

func TestUploadAndVerifyRoundTrip(t *testing.T) {
	transport := newMemoryTransport()
	w := newTestWorker(t, transport)

	a := writeArtifact(t, w, "token", []byte("artifact-bytes"))
	require.NoError(t, w.uploadAndVerify(20240101, []*artifact{a}))

	// the artifact landed remotely under the dated path
	_, ok := transport.remote["r2:sedimentology/alpha/2024/0101/whirlpool-token-20240101.json.gz"]
	assert.True(t, ok)

	// and the verify download exists locally
	_, err := os.Stat(w.verifyPath("token"))
	assert.NoError(t, err)
}

func TestUploadAndVerifyHashMismatchIsFatal(t *testing.T) {
	transport := newMemoryTransport()
	transport.corrupt = true
	w := newTestWorker(t, transport)

	a := writeArtifact(t, w, "token", []byte("artifact-bytes"))
	err := w.uploadAndVerify(20240101, []*artifact{a})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash mismatch")
}

func TestUploadIsIdempotent(t *testing.T) {
	transport := newMemoryTransport()
	w := newTestWorker(t, transport)

	a := writeArtifact(t, w, "token", []byte("artifact-bytes"))
	require.NoError(t, w.uploadAndVerify(20240101, []*artifact{a}))

	// a retry of the same day overwrites with identical bytes
	first := transport.remote["r2:sedimentology/alpha/2024/0101/whirlpool-token-20240101.json.gz"]
	require.NoError(t, w.uploadAndVerify(20240101, []*artifact{a}))
	second := transport.remote["r2:sedimentology/alpha/2024/0101/whirlpool-token-20240101.json.gz"]
	assert.Equal(t, first, second)
}

func TestFileSHA256(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	hash, err := FileSHA256(path)
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", hash)
}

func TestFetchLatestArchivedDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT latestArchivedDate FROM admArchiverState WHERE profile").
		WithArgs("alpha").
		WillReturnRows(sqlmock.NewRows([]string{"latestArchivedDate"}).AddRow(20231230))

	date, err := FetchLatestArchivedDate(sqlx.NewDb(db, "sqlmock"), "alpha")
	require.NoError(t, err)
	assert.Equal(t, uint32(20231230), date)
}

func TestAdvanceArchiverState(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE admArchiverState SET latestArchivedDate").
		WithArgs(uint32(20231231), "alpha").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, AdvanceArchiverState(sqlx.NewDb(db, "sqlmock"), "alpha", 20231231))
	assert.NoError(t, mock.ExpectationsWereMet())
}
