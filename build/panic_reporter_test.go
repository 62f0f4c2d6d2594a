package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanicReportJournalTail(t *testing.T) {
	repoPath := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repoPath, "journal"), 0755))

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, `{"n":`+string(rune('0'+i))+`}`)
	}
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, JournalFile), []byte(strings.Join(lines, "\n")+"\n"), 0644))

	PanicReportJournalTail = 3
	defer func() { PanicReportJournalTail = defaultJournalTail }()

	report := GeneratePanicReport("", repoPath, "test run")
	require.NotEmpty(t, report)
	require.Contains(t, filepath.Base(report), "report_testrun_")

	tail, err := os.ReadFile(filepath.Join(report, "journal.ndjson"))
	require.NoError(t, err)
	require.Equal(t, "{\"n\":9}\n{\"n\":8}\n{\"n\":7}\n", string(tail))

	version, err := os.ReadFile(filepath.Join(report, "version"))
	require.NoError(t, err)
	require.Equal(t, UserVersion()+"\n", string(version))

	_, err = os.Stat(filepath.Join(report, "stacktrace.dump"))
	require.NoError(t, err)
}
