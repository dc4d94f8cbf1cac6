package scanner

import (
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/projlens/internal/msbuild"
)

// defaultWorkers bounds concurrent file extraction.
const defaultWorkers = 8

// Scanner performs one repository scan: discovery followed by per-file
// metadata extraction. Extraction faults never surface as errors; they are
// isolated into each record's diagnostics.
type Scanner struct {
	// SkipDirs maps directory names that are not descended into.
	SkipDirs map[string]bool

	// Workers bounds parallel extraction; <= 0 uses the default.
	Workers int

	// Logf receives enumeration warnings. Nil drops them.
	Logf func(format string, args ...any)
}

// New returns a Scanner with the default skip list.
func New() *Scanner {
	skip := make(map[string]bool, len(DefaultSkipDirs))
	for _, d := range DefaultSkipDirs {
		skip[d] = true
	}
	return &Scanner{SkipDirs: skip, Workers: defaultWorkers}
}

// Scan discovers project files under root and extracts a record for each.
// Record order follows discovery order regardless of extraction timing.
// A failing walk is logged and the scan proceeds with the paths already
// enumerated; the returned slice is a fresh copy owned by the caller.
func (s *Scanner) Scan(root string) []msbuild.Project {
	paths, err := Discover(root, s.SkipDirs)
	if err != nil {
		s.logf("scan: enumeration stopped early: %v (continuing with %d files)", err, len(paths))
	}

	absRoot, aerr := filepath.Abs(root)
	if aerr != nil {
		absRoot = root
	}

	workers := s.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	// Extraction is fault-isolated, so the group only bounds parallelism;
	// results land at their discovery index to keep order deterministic.
	records := make([]msbuild.Project, len(paths))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			records[i] = msbuild.Extract(path, absRoot)
			return nil
		})
	}
	_ = g.Wait()

	return records
}

func (s *Scanner) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}
