package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrh-151/simplesig/internal/checksum"
	"github.com/jrh-151/simplesig/internal/files/filesystem"
	"github.com/jrh-151/simplesig/internal/files/scanner"
	"github.com/jrh-151/simplesig/internal/logging"
	"github.com/jrh-151/simplesig/internal/sigfile"
	"github.com/jrh-151/simplesig/pkg/simplesig"
)

type stubApprover struct {
	approve bool
	err     error
	called  bool
}

func (a *stubApprover) RequestApproval(_ context.Context, _ string) (bool, error) {
	a.called = true
	return a.approve, a.err
}

// memoryWrites captures written files instead of touching the disk.
type memoryWrites struct {
	files map[string][]byte
}

func (m *memoryWrites) write(path string, data []byte) error {
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[path] = data
	return nil
}

func report(formatID, puid, priorityOverID string) string {
	related := ""
	if priorityOverID != "" {
		related = fmt.Sprintf(`<RelatedFormat>
        <RelationshipType>Has priority over</RelationshipType>
        <RelatedFormatID>%s</RelatedFormatID>
      </RelatedFormat>`, priorityOverID)
	}
	return fmt.Sprintf(`<?xml version="1.0"?>
<PRONOM-Report>
  <report_format_detail>
    <FileFormat>
      <FormatID>%s</FormatID>
      <FormatName>Format %s</FormatName>
      <FileFormatIdentifier>
        <Identifier>%s</Identifier>
        <IdentifierType>PUID</IdentifierType>
      </FileFormatIdentifier>
      <InternalSignature>
        <SignatureID>1</SignatureID>
        <ByteSequence>
          <ByteSequenceID>1</ByteSequenceID>
          <PositionType>Absolute from BOF</PositionType>
          <Offset>0</Offset>
          <ByteSequenceValue>504B0304</ByteSequenceValue>
        </ByteSequence>
      </InternalSignature>
      %s
    </FileFormat>
  </report_format_detail>
</PRONOM-Report>`, formatID, puid, puid, related)
}

func newTestService(t *testing.T, fs *filesystem.MemoryFileSystem, approver *stubApprover) (*Service, *memoryWrites) {
	t.Helper()
	svc := NewService(
		scanner.NewScannerWithFS(checksum.New(), fs),
		approver,
		logging.NewNullLogger(),
		"test",
	)
	writes := &memoryWrites{}
	svc.writeFunc = writes.write
	svc.statFunc = func(string) (os.FileInfo, error) { return nil, os.ErrNotExist }
	return svc, writes
}

func buildConfig() simplesig.BuildConfig {
	return simplesig.BuildConfig{
		InputDir:   "/reports",
		OutputPath: "/out/simple-signature-file.yaml",
	}
}

func TestRun_BuildsSignatureFile(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/reports")
	fs.AddFile("/reports/fmt1.xml", report("1001", "fmt/1", "1002"))
	fs.AddFile("/reports/fmt2.xml", report("1002", "fmt/2", ""))

	svc, writes := newTestService(t, fs, &stubApprover{approve: true})
	summary, rep, err := svc.Run(context.Background(), buildConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ReportsScanned)
	assert.Equal(t, 2, summary.RecordsParsed)
	assert.Equal(t, 0, summary.RecordsFailed)
	assert.Equal(t, 2, summary.Formats)
	assert.Empty(t, rep.Warnings)
	assert.Empty(t, rep.Failures)

	data, ok := writes.files["/out/simple-signature-file.yaml"]
	require.True(t, ok)

	set, err := sigfile.Read(data)
	require.NoError(t, err)
	rec, ok := set.Get("fmt/1")
	require.True(t, ok)
	assert.Equal(t, []string{"fmt/2"}, rec.PriorityOver)
	assert.Equal(t, "504B0304", rec.Signatures[0].Pattern)
}

func TestRun_BadReportExcludedRunContinues(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/reports")
	fs.AddFile("/reports/good.xml", report("1001", "fmt/1", ""))
	fs.AddFile("/reports/broken.xml", "<PRONOM-Report><unclosed")

	svc, writes := newTestService(t, fs, &stubApprover{approve: true})
	summary, rep, err := svc.Run(context.Background(), buildConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ReportsScanned)
	assert.Equal(t, 1, summary.RecordsParsed)
	assert.Equal(t, 1, summary.RecordsFailed)
	assert.Equal(t, 1, summary.Formats)
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, "./broken.xml", rep.Failures[0].Source)
	assert.NotEmpty(t, writes.files)
}

func TestRun_EmptyInputIsFatal(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/reports")
	fs.AddFile("/reports/notes.txt", "not a report")

	svc, writes := newTestService(t, fs, &stubApprover{approve: true})
	_, _, err := svc.Run(context.Background(), buildConfig())

	assert.True(t, errors.Is(err, simplesig.ErrNoReports))
	assert.Empty(t, writes.files)
}

func TestRun_MissingInputDirIsFatal(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/reports")

	svc, _ := newTestService(t, fs, &stubApprover{approve: true})
	cfg := buildConfig()
	cfg.InputDir = "/missing"
	_, _, err := svc.Run(context.Background(), cfg)

	assert.True(t, errors.Is(err, simplesig.ErrInputDirMissing))
}

func TestRun_InvalidConfig(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/reports")
	svc, _ := newTestService(t, fs, &stubApprover{approve: true})

	_, _, err := svc.Run(context.Background(), simplesig.BuildConfig{})
	assert.True(t, errors.Is(err, simplesig.ErrInvalidConfig))
}

func TestRun_OverwriteApproval(t *testing.T) {
	existing := func(string) (os.FileInfo, error) { return nil, nil }

	t.Run("denied", func(t *testing.T) {
		fs := filesystem.NewMemoryFileSystem("/reports")
		fs.AddFile("/reports/fmt1.xml", report("1001", "fmt/1", ""))

		approver := &stubApprover{approve: false}
		svc, writes := newTestService(t, fs, approver)
		svc.statFunc = existing

		_, _, err := svc.Run(context.Background(), buildConfig())
		assert.True(t, errors.Is(err, simplesig.ErrApprovalDenied))
		assert.True(t, approver.called)
		assert.Empty(t, writes.files)
	})

	t.Run("granted", func(t *testing.T) {
		fs := filesystem.NewMemoryFileSystem("/reports")
		fs.AddFile("/reports/fmt1.xml", report("1001", "fmt/1", ""))

		approver := &stubApprover{approve: true}
		svc, writes := newTestService(t, fs, approver)
		svc.statFunc = existing

		_, _, err := svc.Run(context.Background(), buildConfig())
		require.NoError(t, err)
		assert.True(t, approver.called)
		assert.NotEmpty(t, writes.files)
	})

	t.Run("no existing file skips the prompt", func(t *testing.T) {
		fs := filesystem.NewMemoryFileSystem("/reports")
		fs.AddFile("/reports/fmt1.xml", report("1001", "fmt/1", ""))

		approver := &stubApprover{approve: false}
		svc, writes := newTestService(t, fs, approver)

		_, _, err := svc.Run(context.Background(), buildConfig())
		require.NoError(t, err)
		assert.False(t, approver.called)
		assert.NotEmpty(t, writes.files)
	})
}

func TestRun_TimestampUsesResolvedGenerationTime(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/reports")
	fs.AddFile("/reports/fmt1.xml", report("1001", "fmt/1", ""))

	svc, writes := newTestService(t, fs, &stubApprover{approve: true})
	svc.nowFunc = func() time.Time {
		t.Fatal("nowFunc must not be consulted when the config carries the generation time")
		return time.Time{}
	}

	cfg := buildConfig()
	cfg.Timestamp = true
	cfg.GeneratedAt = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	_, _, err := svc.Run(context.Background(), cfg)
	require.NoError(t, err)

	data := writes.files["/out/simple-signature-file.yaml"]
	assert.Contains(t, string(data), "# Created: 2024-03-01T12:30:00Z\n")
}

func TestRun_DeterministicWithoutTimestamp(t *testing.T) {
	run := func() []byte {
		fs := filesystem.NewMemoryFileSystem("/reports")
		fs.AddFile("/reports/fmt2.xml", report("1002", "fmt/2", ""))
		fs.AddFile("/reports/fmt1.xml", report("1001", "fmt/1", "1002"))

		svc, writes := newTestService(t, fs, &stubApprover{approve: true})
		_, _, err := svc.Run(context.Background(), buildConfig())
		require.NoError(t, err)
		return writes.files["/out/simple-signature-file.yaml"]
	}

	assert.Equal(t, run(), run())
}
