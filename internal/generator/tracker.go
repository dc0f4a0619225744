package generator

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/deicod/scaffolder/internal/observability/metrics"
)

// Output writes rendered files below the project root and remembers which
// generator produced each changed path.
type Output struct {
	root    string
	dryRun  bool
	next    fileWriter
	metrics metrics.Collector
	logger  *zap.Logger
	files   map[string]map[string]struct{}
}

// NewOutput returns an Output honoring the Force and DryRun options.
func NewOutput(root string, opts Options, collector metrics.Collector, logger *zap.Logger) *Output {
	if logger == nil {
		logger = zap.NewNop()
	}
	var next fileWriter = diskWriter{force: opts.Force}
	if opts.DryRun {
		next = planWriter{force: opts.Force}
	}
	return &Output{
		root:    root,
		dryRun:  opts.DryRun,
		next:    next,
		metrics: metrics.WithCollector(collector),
		logger:  logger,
		files:   make(map[string]map[string]struct{}),
	}
}

// DryRun reports whether writes are only planned.
func (o *Output) DryRun() bool { return o.dryRun }

// Write stores content at rel, a slash separated path below the root.
func (o *Output) Write(generator, rel string, content []byte) error {
	rel = path.Clean(filepath.ToSlash(rel))
	if path.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
		return fmt.Errorf("output path %q escapes the project root", rel)
	}
	changed, err := o.next.Write(filepath.Join(o.root, filepath.FromSlash(rel)), content)
	if err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}

	outcome := metrics.FileUnchanged
	switch {
	case changed && o.dryRun:
		outcome = metrics.FilePlanned
	case changed:
		outcome = metrics.FileWritten
	}
	o.metrics.RecordFile(generator, outcome)
	o.logger.Debug("file", zap.String("generator", generator), zap.String("path", rel), zap.String("outcome", string(outcome)))

	if changed {
		if o.files[generator] == nil {
			o.files[generator] = make(map[string]struct{})
		}
		o.files[generator][rel] = struct{}{}
	}
	return nil
}

// Files returns the changed (or planned) paths recorded for generator, sorted.
func (o *Output) Files(generator string) []string {
	entries := o.files[generator]
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for p := range entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// All returns Files for every generator that changed something.
func (o *Output) All() map[string][]string {
	out := make(map[string][]string, len(o.files))
	for name := range o.files {
		out[name] = o.Files(name)
	}
	return out
}
