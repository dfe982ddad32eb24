package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jrh-151/simplesig/internal/checksum"
	"github.com/jrh-151/simplesig/internal/files/filesystem"
	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// Scanner discovers registry export reports in a directory tree.
// Safe for concurrent use as long as the provided calculator and provider
// are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.Provider
}

// NewScanner creates a new report scanner with the given checksum
// calculator. Uses the OS filesystem by default.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new report scanner with a custom filesystem
// provider. This is primarily useful for testing with in-memory trees.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.Provider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanDirectory recursively scans inputDir and returns every XML report
// found, in the order the filesystem enumerates them. Non-XML files are
// ignored so the input directory can also hold configuration and notes.
func (s *Scanner) ScanDirectory(inputDir string) (simplesig.ScanResult, error) {
	dir, err := s.fsProvider.Open(inputDir)
	if err != nil {
		return simplesig.ScanResult{}, fmt.Errorf("%w: %v", simplesig.ErrInputDirMissing, err)
	}

	var reports []simplesig.ReportFile

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		if file.Info().IsDir() {
			return nil
		}

		if !isReportExtension(filepath.Ext(file.Info().Name())) {
			return nil
		}

		report, err := s.processReport(file)
		if err != nil {
			return fmt.Errorf("failed to process report %s: %w", file.RelativePath(), err)
		}

		reports = append(reports, report)
		return nil
	})

	if err != nil {
		return simplesig.ScanResult{}, err
	}

	return simplesig.ScanResult{Reports: reports}, nil
}

// processReport reads one report and captures its metadata.
func (s *Scanner) processReport(file filesystem.File) (simplesig.ReportFile, error) {
	content, err := file.ReadContent()
	if err != nil {
		return simplesig.ReportFile{}, fmt.Errorf("failed to read report: %w", err)
	}

	info := file.Info()

	// Unix-style path with ./ prefix, stable across platforms.
	unixPath := filepath.ToSlash(file.RelativePath())
	if !strings.HasPrefix(unixPath, "./") {
		unixPath = "./" + unixPath
	}

	return simplesig.ReportFile{
		Path:               unixPath,
		Name:               info.Name(),
		Content:            content,
		Checksum:           s.calculator.CalculateRaw(content),
		NormalizedChecksum: s.calculator.CalculateNormalized(content),
		SizeBytes:          info.Size(),
		ModifiedAt:         info.ModTime(),
	}, nil
}

// isReportExtension checks if the file extension indicates a registry
// export report.
func isReportExtension(ext string) bool {
	return strings.EqualFold(ext, simplesig.ReportExtension)
}

// Verify Scanner implements the interface at compile time
var _ simplesig.ReportScanner = (*Scanner)(nil)
