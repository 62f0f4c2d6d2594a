package fsjournal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raulk/clock"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/journal"
)

func withMockClock(t *testing.T) *clock.Mock {
	mock := clock.NewMock()
	old := build.Clock
	build.Clock = mock
	t.Cleanup(func() { build.Clock = old })
	return mock
}

func TestRollingRemovesOldFiles(t *testing.T) {
	req := require.New(t)
	mock := withMockClock(t)

	base := t.TempDir()
	j, err := openFSJournal(base, nil, 1<<30, 3)
	req.NoError(err)
	defer j.Close() //nolint:errcheck

	dir := filepath.Join(base, "journal")
	for i := 0; i <= j.keep; i++ {
		mock.Add(time.Second)
		files, _ := os.ReadDir(dir)
		// the current file plus one rolled file per previous roll
		req.Lenf(files, i+1, "add one file for every roll before max keep")
		req.NoError(j.rollJournalFile())
	}

	// on the last iteration, one of the rolled files should have been
	// pruned, so only the maximum kept files remain beside the current one.
	files, _ := os.ReadDir(dir)
	req.Lenf(files, j.keep+1, "files are not being pruned from the journal directory")
}

func TestRecordEvent(t *testing.T) {
	req := require.New(t)
	withMockClock(t)

	base := t.TempDir()
	j, err := OpenFSJournalPath(base, journal.DisabledEvents{{System: "test", Event: "off"}})
	req.NoError(err)

	on := j.RegisterEventType("test", "on")
	off := j.RegisterEventType("test", "off")

	j.RecordEvent(on, func() interface{} { return map[string]int{"n": 1} })
	j.RecordEvent(off, func() interface{} {
		t.Fatal("supplier of a disabled event must not run")
		return nil
	})
	j.RecordEvent(on, func() interface{} { panic("boom") })

	req.NoError(j.Close())

	f, err := os.Open(filepath.Join(base, "journal", currentFile))
	req.NoError(err)
	defer f.Close() //nolint:errcheck

	var lines []map[string]interface{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]interface{}
		req.NoError(json.Unmarshal(sc.Bytes(), &m))
		lines = append(lines, m)
	}
	req.Len(lines, 1)
	req.Equal("test", lines[0]["System"])
	req.Equal("on", lines[0]["Event"])
}
