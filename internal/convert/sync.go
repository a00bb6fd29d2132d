package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/uraxy/gaaqoo/internal/config"
	"github.com/uraxy/gaaqoo/internal/fileutil"
	"github.com/uraxy/gaaqoo/internal/logging"
	"github.com/uraxy/gaaqoo/internal/store"
)

// Report summarizes a run.
type Report struct {
	Sources   int
	Converted int
	Skipped   int
	Failed    int

	Removed      []string
	RemoveFailed int

	Results  []ConvertResult
	Duration time.Duration
}

// Syncer mirrors the source tree into the destination tree: it converts
// every source that has no output yet, then deletes destination files that
// no current source maps to.
type Syncer struct {
	cfg   *config.Config
	conv  *Converter
	log   logging.Logger
	state State

	// ledger is recreated by every Run.
	ledger *store.Manager
}

// NewSyncer creates a syncer. Run may be called more than once.
func NewSyncer(cfg *config.Config, conv *Converter, log logging.Logger) *Syncer {
	return &Syncer{
		cfg:  cfg,
		conv: conv,
		log:  log,
	}
}

// State returns the phase the syncer is in.
func (s *Syncer) State() State {
	return s.state
}

// Run performs the whole sync. Per-file failures are counted in the report;
// an error is returned only when the run could not proceed.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{}
	s.ledger = store.NewManager()

	s.state = StateEnumerating
	files, err := s.enumerate(ctx)
	if err != nil {
		s.state = StateAborted
		return report, err
	}
	report.Sources = len(files)
	s.log.Info(ctx, "found source files", "count", len(files), "src", s.cfg.SourceDir)

	s.state = StateConverting
	for i, src := range files {
		// Pruning after a partial pass would delete outputs of sources
		// not reached yet.
		if err := ctx.Err(); err != nil {
			s.state = StateAborted
			report.Duration = time.Since(start)
			return report, err
		}
		s.log.Info(ctx, "converting",
			"n", fmt.Sprintf("%d/%d", i+1, len(files)),
			"progress", fmt.Sprintf("%.2f%%", float64(i)/float64(len(files))*100),
			"elapsed", time.Since(start).Round(time.Millisecond),
			"src", src)

		result := s.conv.ConvertFile(src)
		s.record(ctx, report, result)
	}

	s.state = StatePruning
	if err := s.prune(ctx, report); err != nil {
		s.state = StateAborted
		report.Duration = time.Since(start)
		return report, err
	}

	s.state = StateDone
	report.Duration = time.Since(start)
	return report, nil
}

func (s *Syncer) enumerate(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.cfg.SourceDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotDir, s.cfg.SourceDir)
	}

	files, err := fileutil.ListFiles(s.cfg.SourceDir, s.cfg.Suffixes, s.cfg.Excludes, s.skipper(ctx))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSourceFiles, s.cfg.SourceDir)
	}
	return files, nil
}

func (s *Syncer) record(ctx context.Context, report *Report, result ConvertResult) {
	report.Results = append(report.Results, result)

	switch {
	case result.Error != nil:
		report.Failed++
		s.log.Warn(ctx, "conversion failed", "src", result.Source, "err", result.Error)
		if !s.cfg.KeepFailed {
			return
		}
		prefix, err := fileutil.OutputPrefix(s.cfg.SourceDir, s.cfg.DestDir, result.Source)
		if err == nil {
			s.ledger.Protect(prefix)
		}
	case result.Skipped:
		report.Skipped++
		s.ledger.AddOutput(result.Output)
		s.log.Info(ctx, "skip, "+result.Reason, "dst", result.Output)
	default:
		report.Converted++
		s.ledger.AddOutput(result.Output)
		s.log.Debug(ctx, "converted", "dst", result.Output,
			"width", result.Size.X, "height", result.Size.Y,
			"orientation", int(result.Metadata.OrientationOrDefault()),
			"datetime_original", result.Metadata.DateTimeOriginal)
	}
}

// skipper logs directories the walk could not read.
func (s *Syncer) skipper(ctx context.Context) fileutil.SkipFunc {
	return func(dir string, err error) {
		s.log.Warn(ctx, "skipping unreadable directory", "dir", dir, "err", err)
	}
}

// prune deletes every destination file the ledger does not retain.
func (s *Syncer) prune(ctx context.Context, report *Report) error {
	s.log.Debug(ctx, "pruning destination", "dst", s.cfg.DestDir,
		"outputs", len(s.ledger.Outputs()), "protected", s.ledger.Protected())

	existing, err := fileutil.ListFiles(s.cfg.DestDir, nil, nil, s.skipper(ctx))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list destination: %w", err)
	}

	for _, path := range existing {
		if s.ledger.Retains(path) {
			continue
		}
		s.log.Info(ctx, "removing deprecated file", "dst", path)
		if err := os.Remove(path); err != nil {
			report.RemoveFailed++
			s.log.Warn(ctx, "failed to remove file", "dst", path, "err", err)
			continue
		}
		report.Removed = append(report.Removed, path)
	}
	return nil
}
