package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Transport copies files between the local filesystem and object storage.
// Either side of a copy may be a remote path.
type Transport interface {
	Copy(src, dst string) error
}

// RcloneTransport shells out to rclone copyto. Transient failures are
// retried up to 10 times at 60 second intervals, per the transport
// contract; exhaustion is fatal for the day being archived.
type RcloneTransport struct {
	// RetryInterval is overridable for tests.
	RetryInterval time.Duration
}

// NewRcloneTransport builds the production transport.
func NewRcloneTransport() *RcloneTransport {
	return &RcloneTransport{RetryInterval: 60 * time.Second}
}

func (t *RcloneTransport) Copy(src, dst string) error {
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(t.RetryInterval), 10)
	return backoff.Retry(func() error {
		cmd := exec.Command("rclone", "copyto", src, dst)
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("rclone copyto %s %s: %w: %s", src, dst, err, out)
		}
		return nil
	}, policy)
}

// FileSHA256 hashes a file's contents.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
