package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/everlastingsong/sedimentology/pkg/checkpoint"
	"github.com/everlastingsong/sedimentology/pkg/convert"
	"github.com/everlastingsong/sedimentology/pkg/datetime"
	"github.com/everlastingsong/sedimentology/pkg/log"
	"github.com/everlastingsong/sedimentology/pkg/metrics"
	"github.com/everlastingsong/sedimentology/pkg/replay"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

// Deriver produces the derived artifacts of a day from the primary ones.
// Implementations must be pure functions of their file inputs.
type Deriver interface {
	DeriveEvent(previousStatePath, tokenPath, transactionPath, eventPath string) error
	DeriveOHLCV(previousStatePath, tokenPath, eventPath, dailyPath, minutelyPath string) error
}

// ConvertDeriver is the production deriver backed by pkg/convert, replaying
// through the given program executor.
type ConvertDeriver struct {
	Program replay.Program
}

func (d *ConvertDeriver) DeriveEvent(previousStatePath, tokenPath, transactionPath, eventPath string) error {
	return convert.ProcessEvent(previousStatePath, tokenPath, transactionPath, eventPath, d.Program)
}

func (d *ConvertDeriver) DeriveOHLCV(previousStatePath, tokenPath, eventPath, dailyPath, minutelyPath string) error {
	return convert.ProcessOHLCV(previousStatePath, tokenPath, eventPath, dailyPath, minutelyPath)
}

// Worker archives completed days one at a time: export, upload, round-trip
// verify, derive, upload, commit.
type Worker struct {
	db         *sqlx.DB
	reader     *txreader.Reader
	transport  Transport
	deriver    Deriver
	profile    string
	remotePath string
	workDir    string
	sleep      time.Duration
	logger     zerolog.Logger
}

// NewWorker builds an archiver worker for one profile.
func NewWorker(db *sqlx.DB, reader *txreader.Reader, transport Transport, deriver Deriver,
	profile, remotePath, workDir string) *Worker {
	return &Worker{
		db:         db,
		reader:     reader,
		transport:  transport,
		deriver:    deriver,
		profile:    profile,
		remotePath: remotePath,
		workDir:    workDir,
		sleep:      600 * time.Second,
		logger:     log.WithProfile("archiver", profile),
	}
}

// Run archives days until ctx is cancelled. The shutdown signal is checked
// between days only; the current day is not interruptible mid-step, which
// is acceptable because the next start retries the day idempotently.
func (w *Worker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			w.logger.Info().Msg("shutting down")
			return nil
		}

		latestReplayed, err := checkpoint.FetchLatestReplayedDate(w.db)
		if err != nil {
			return err
		}
		latestArchived, err := FetchLatestArchivedDate(w.db, w.profile)
		if err != nil {
			return err
		}

		// >= is fail safe
		isFullArchived := latestArchived >= latestReplayed

		if !isFullArchived {
			date := datetime.NextDate(latestArchived)
			w.logger.Info().Uint32("date", date).Msg("archiving")

			started := time.Now()
			if err := w.archiveDay(date); err != nil {
				return fmt.Errorf("failed to archive %d: %w", date, err)
			}
			metrics.DaysArchivedTotal.WithLabelValues(w.profile).Inc()
			metrics.ArchiveDayDuration.Observe(time.Since(started).Seconds())
			w.logger.Info().Uint32("date", date).Msg("archived")

			isFullArchived = date >= latestReplayed
		}

		if isFullArchived {
			w.logger.Info().Dur("sleep", w.sleep).Msg("sleeping")
			select {
			case <-ctx.Done():
			case <-time.After(w.sleep):
			}
		}
	}
}

// artifact is one uploadable file of a day.
type artifact struct {
	kind string // token, state, transaction, event, ohlcv-daily, ohlcv-minutely
	ext  string // json.gz or jsonl.gz
	tmp  string
	hash string
}

func (w *Worker) tmpPath(kind string) string {
	return filepath.Join(w.workDir, fmt.Sprintf("%s.%s.tmp", w.profile, kind))
}

func (w *Worker) verifyPath(kind string) string {
	return filepath.Join(w.workDir, fmt.Sprintf("%s.%s.verify", w.profile, kind))
}

func (w *Worker) remoteDest(kind, ext string, date uint32) string {
	yyyy := fmt.Sprintf("%04d", date/10000)
	mmdd := fmt.Sprintf("%04d", date%10000)
	return fmt.Sprintf("%s/%s/%s/whirlpool-%s-%d.%s", w.remotePath, yyyy, mmdd, kind, date, ext)
}

// uploadAndVerify copies artifacts to the remote, downloads them back, and
// asserts the round-tripped hashes match. Any mismatch fails the day.
func (w *Worker) uploadAndVerify(date uint32, artifacts []*artifact) error {
	for _, a := range artifacts {
		dest := w.remoteDest(a.kind, a.ext, date)
		w.logger.Info().Str("src", a.tmp).Str("dest", dest).Msg("uploading")
		if err := w.transport.Copy(a.tmp, dest); err != nil {
			return err
		}
	}

	for _, a := range artifacts {
		dest := w.remoteDest(a.kind, a.ext, date)
		verify := w.verifyPath(a.kind)
		w.logger.Info().Str("src", dest).Str("dest", verify).Msg("downloading for verification")
		if err := w.transport.Copy(dest, verify); err != nil {
			return err
		}

		verifyHash, err := FileSHA256(verify)
		if err != nil {
			return err
		}
		if verifyHash != a.hash {
			return fmt.Errorf("%s hash mismatch after round trip: %s != %s", a.kind, a.hash, verifyHash)
		}
	}
	return nil
}

func (w *Worker) archiveDay(date uint32) error {
	// export primary artifacts
	primaries := []*artifact{
		{kind: "token", ext: "json.gz", tmp: w.tmpPath("token")},
		{kind: "state", ext: "json.gz", tmp: w.tmpPath("state")},
		{kind: "transaction", ext: "jsonl.gz", tmp: w.tmpPath("transaction")},
	}

	w.logger.Info().Msg("exporting token")
	if err := ExportToken(w.db, date, primaries[0].tmp); err != nil {
		return err
	}
	w.logger.Info().Msg("exporting state")
	if err := ExportState(w.db, date, primaries[1].tmp); err != nil {
		return err
	}
	w.logger.Info().Msg("exporting transaction")
	if err := ExportTransaction(w.db, w.reader, date, primaries[2].tmp); err != nil {
		return err
	}

	for _, a := range primaries {
		hash, err := FileSHA256(a.tmp)
		if err != nil {
			return err
		}
		a.hash = hash
		w.logger.Info().Str("kind", a.kind).Str("sha256", a.hash).Msg("exported")
	}

	if err := w.uploadAndVerify(date, primaries); err != nil {
		return err
	}

	// derive event & ohlcv from the previous day's state
	previousDate := datetime.PrevDate(date)
	previousStateTmp := w.tmpPath("previous-state")
	w.logger.Info().Uint32("date", previousDate).Msg("exporting previous state")
	if err := ExportState(w.db, previousDate, previousStateTmp); err != nil {
		return err
	}

	derived := []*artifact{
		{kind: "event", ext: "jsonl.gz", tmp: w.tmpPath("event")},
		{kind: "ohlcv-daily", ext: "jsonl.gz", tmp: w.tmpPath("ohlcv-daily")},
		{kind: "ohlcv-minutely", ext: "jsonl.gz", tmp: w.tmpPath("ohlcv-minutely")},
	}

	w.logger.Info().Msg("deriving event")
	err := w.deriver.DeriveEvent(previousStateTmp, primaries[0].tmp, primaries[2].tmp, derived[0].tmp)
	if err != nil {
		return err
	}
	w.logger.Info().Msg("deriving ohlcv")
	err = w.deriver.DeriveOHLCV(previousStateTmp, primaries[0].tmp, derived[0].tmp, derived[1].tmp, derived[2].tmp)
	if err != nil {
		return err
	}

	for _, a := range derived {
		hash, err := FileSHA256(a.tmp)
		if err != nil {
			return err
		}
		a.hash = hash
		w.logger.Info().Str("kind", a.kind).Str("sha256", a.hash).Msg("derived")
	}

	if err := w.uploadAndVerify(date, derived); err != nil {
		return err
	}

	// remove tmp & verify files
	all := append(append([]*artifact{}, primaries...), derived...)
	for _, a := range all {
		if err := os.Remove(a.tmp); err != nil {
			return err
		}
		if err := os.Remove(w.verifyPath(a.kind)); err != nil {
			return err
		}
	}
	if err := os.Remove(previousStateTmp); err != nil {
		return err
	}

	// commit
	w.logger.Info().Uint32("date", date).Msg("advancing latestArchivedDate")
	return AdvanceArchiverState(w.db, w.profile, date)
}

// FetchLatestArchivedDate reads the archiver progress cursor of one profile.
func FetchLatestArchivedDate(db *sqlx.DB, profile string) (uint32, error) {
	var date uint32
	err := db.Get(&date, "SELECT latestArchivedDate FROM admArchiverState WHERE profile = ?", profile)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latestArchivedDate: %w", err)
	}
	return date, nil
}

// AdvanceArchiverState moves the archiver cursor in its own transaction.
func AdvanceArchiverState(db *sqlx.DB, profile string, date uint32) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE admArchiverState SET latestArchivedDate = ? WHERE profile = ?", date, profile); err != nil {
		return fmt.Errorf("failed to advance latestArchivedDate: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit latestArchivedDate: %w", err)
	}
	return nil
}
