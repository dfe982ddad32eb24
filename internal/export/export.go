package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jrh-151/simplesig/internal/aggregate"
	"github.com/jrh-151/simplesig/internal/pronom"
	"github.com/jrh-151/simplesig/internal/sigfile"
	"github.com/jrh-151/simplesig/internal/signature"
	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// Summary describes what a completed build run produced.
type Summary struct {
	// ReportsScanned is the number of XML reports found in the input
	// directory.
	ReportsScanned int

	// RecordsParsed is the number of reports that yielded a usable
	// format record.
	RecordsParsed int

	// RecordsFailed is the number of reports excluded because of a parse
	// or normalization failure.
	RecordsFailed int

	// Formats is the number of format entries in the written file.
	Formats int

	// OutputPath is where the signature file was written.
	OutputPath string

	// Fingerprint identifies the input set the file was built from.
	Fingerprint uuid.UUID
}

// Service builds a simplified signature file from a directory of registry
// export reports.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type Service struct {
	scanner  simplesig.ReportScanner
	approver simplesig.Approver
	logger   simplesig.Logger
	version  string

	// Overridable for tests.
	statFunc  func(string) (os.FileInfo, error)
	writeFunc func(string, []byte) error
	nowFunc   func() time.Time
}

// NewService creates a Service with all dependencies injected. Panics on
// nil dependencies: missing wiring is a programmer error that should fail
// at startup, not mid-run.
func NewService(scanner simplesig.ReportScanner, approver simplesig.Approver, logger simplesig.Logger, version string) *Service {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{
		scanner:   scanner,
		approver:  approver,
		logger:    logger,
		version:   version,
		statFunc:  os.Stat,
		writeFunc: sigfile.WriteAtomic,
		nowFunc:   time.Now,
	}
}

// Run executes one build. The returned RunReport carries record-level
// failures and reference warnings; it is populated even when err is nil,
// and the run succeeds as long as the signature file was written.
func (s *Service) Run(ctx context.Context, cfg simplesig.BuildConfig) (Summary, *simplesig.RunReport, error) {
	report := simplesig.NewRunReport()

	if err := cfg.Validate(); err != nil {
		return Summary{}, report, err
	}

	scan, err := s.scanner.ScanDirectory(cfg.InputDir)
	if err != nil {
		return Summary{}, report, err
	}
	if len(scan.Reports) == 0 {
		return Summary{}, report, fmt.Errorf("%w: no XML reports in %s", simplesig.ErrNoReports, cfg.InputDir)
	}
	s.logger.Verbose("Found %d reports in %s", len(scan.Reports), cfg.InputDir)

	records, checksums := s.collectRecords(ctx, scan.Reports, report)
	if err := ctx.Err(); err != nil {
		return Summary{}, report, err
	}

	set := aggregate.New(report).Build(records)

	meta := sigfile.Metadata{
		Version:     s.version,
		Fingerprint: sigfile.Fingerprint(checksums),
	}
	if cfg.Timestamp {
		meta.GeneratedAt = cfg.GeneratedAt
		if meta.GeneratedAt.IsZero() {
			meta.GeneratedAt = s.nowFunc()
		}
	}

	if err := s.approveOverwrite(ctx, cfg); err != nil {
		return Summary{}, report, err
	}

	data, err := sigfile.Render(set, meta)
	if err != nil {
		return Summary{}, report, err
	}
	if err := s.writeFunc(cfg.OutputPath, data); err != nil {
		return Summary{}, report, err
	}
	s.logger.Verbose("Wrote %d formats to %s", set.Len(), cfg.OutputPath)

	return Summary{
		ReportsScanned: len(scan.Reports),
		RecordsParsed:  len(records),
		RecordsFailed:  len(report.Failures),
		Formats:        set.Len(),
		OutputPath:     cfg.OutputPath,
		Fingerprint:    meta.Fingerprint,
	}, report, nil
}

// collectRecords parses and normalizes every scanned report. A report
// that fails either step is excluded and recorded on the RunReport; the
// rest of the run is unaffected.
func (s *Service) collectRecords(ctx context.Context, reports []simplesig.ReportFile, report *simplesig.RunReport) ([]*simplesig.Record, map[string]string) {
	records := make([]*simplesig.Record, 0, len(reports))
	checksums := make(map[string]string, len(reports))

	for _, file := range reports {
		if ctx.Err() != nil {
			return records, checksums
		}

		rec, err := pronom.Parse(file.Content, file.Path)
		if err != nil {
			s.logger.Verbose("Skipping %s: %v", file.Path, err)
			report.AddFailure(file.Path, err)
			continue
		}

		if err := signature.NormalizeRecord(rec); err != nil {
			s.logger.Verbose("Skipping %s: %v", file.Path, err)
			report.AddFailure(file.Path, err)
			continue
		}

		s.logger.Verbose("Parsed %s (%s)", file.Path, rec.PUID)
		records = append(records, rec)
		// Normalized so reformatting a report leaves the fingerprint alone.
		checksums[rec.PUID] = file.NormalizedChecksum
	}

	return records, checksums
}

// approveOverwrite asks the configured approver for confirmation when
// the output file already exists.
func (s *Service) approveOverwrite(ctx context.Context, cfg simplesig.BuildConfig) error {
	if _, err := s.statFunc(cfg.OutputPath); err != nil {
		// Nothing to overwrite.
		return nil
	}

	approved, err := s.approver.RequestApproval(ctx, cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("%w: %s exists", simplesig.ErrApprovalDenied, cfg.OutputPath)
	}
	return nil
}
