package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/icza/backscanner"
	logging "github.com/ipfs/go-log/v2"
)

var (
	panicLog           = logging.Logger("panic-reporter")
	defaultJournalTail = 500
)

// PanicReportingPath is the name of the subdir created within the repoPath
// path provided to GeneratePanicReport
var PanicReportingPath = "panic-reports"

// PanicReportJournalTail is the number of lines captured from the end of
// the node journal to be included in the panic report.
var PanicReportJournalTail = defaultJournalTail

// JournalFile is the journal file being written to, relative to the repo.
var JournalFile = filepath.Join("journal", "lotus-escrow-journal.ndjson")

// GeneratePanicReport produces a timestamped dump of the application state:
// version, stack, goroutine and heap profiles and the tail of the journal.
// Reports go to persistPath when set, else under repoPath. label is included
// next to the report timestamp.
func GeneratePanicReport(persistPath, repoPath, label string) string {
	// make sure we always dump the latest logs on the way out
	// especially since we're probably panicking
	defer panicLog.Sync() //nolint:errcheck

	if persistPath == "" && repoPath == "" {
		panicLog.Warn("missing persist and repo paths, aborting panic report creation")
		return ""
	}

	reportPath := filepath.Join(repoPath, PanicReportingPath, generateReportName(label))
	if persistPath != "" {
		reportPath = filepath.Join(persistPath, generateReportName(label))
	}
	panicLog.Warnf("generating panic report at %s", reportPath)

	tailLen := PanicReportJournalTail
	if tl := os.Getenv("LOTUS_ESCROW_PANIC_JOURNAL_LOOKBACK"); tl != "" {
		if i, err := strconv.Atoi(tl); err == nil {
			tailLen = i
		}
	}

	if err := os.MkdirAll(reportPath, 0755); err != nil {
		panicLog.Error(err.Error())
		return ""
	}

	writeReportFile(filepath.Join(reportPath, "version"), func(w io.Writer) error {
		_, err := fmt.Fprintln(w, UserVersion())
		return err
	})
	writeReportFile(filepath.Join(reportPath, "stacktrace.dump"), func(w io.Writer) error {
		_, err := w.Write(debug.Stack())
		return err
	})
	for _, profile := range []string{"goroutine", "heap"} {
		p := pprof.Lookup(profile)
		if p == nil {
			panicLog.Warnf("%s profile not available", profile)
			continue
		}
		writeReportFile(filepath.Join(reportPath, profile+".pprof.gz"), func(w io.Writer) error {
			return p.WriteTo(w, 0)
		})
	}
	if repoPath != "" {
		writeReportFile(filepath.Join(reportPath, "journal.ndjson"), func(w io.Writer) error {
			return writeJournalTail(w, tailLen, filepath.Join(repoPath, JournalFile))
		})
	}

	return reportPath
}

func writeReportFile(file string, write func(io.Writer) error) {
	f, err := os.Create(file)
	if err != nil {
		panicLog.Error(err.Error())
		return
	}
	defer f.Close() //nolint:errcheck

	if err := write(f); err != nil {
		panicLog.Errorw("writing panic report file", "file", file, "error", err)
	}
}

// writeJournalTail copies the last tailLen lines of the journal, newest first.
func writeJournalTail(w io.Writer, tailLen int, journalPath string) error {
	j, err := os.Open(journalPath)
	if err != nil {
		return err
	}
	defer j.Close() //nolint:errcheck

	js, err := j.Stat()
	if err != nil {
		return err
	}

	jScan := backscanner.New(j, int(js.Size()))
	for written := 0; written < tailLen; written++ {
		line, _, err := jScan.LineBytes()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(line) == 0 {
			written--
			continue
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

func generateReportName(label string) string {
	label = strings.ReplaceAll(label, " ", "")
	return fmt.Sprintf("report_%s_%s", label, time.Now().Format("2006-01-02T150405"))
}
